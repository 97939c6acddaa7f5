package amount

import (
	"fmt"
	"math/big"

	"github.com/purposeinplay/go-invoicewords/numwords"
	"github.com/shopspring/decimal"
)

// Currency codes of the CFA franc.
const (
	// CurrencyXOF is the West African CFA franc.
	CurrencyXOF = "XOF"
	// CurrencyXAF is the Central African CFA franc.
	CurrencyXAF = "XAF"

	// CFADecimals is the number of decimals used for CFA francs,
	// which have no subunit in practice.
	CFADecimals uint = 0
)

// Limits on the unit values accepted by the constructors.
// They keep the subunit conversion from building huge integers.
const (
	MaxUnitStringLen   = 64
	MaxUnitExponent    = 64
	maxCoefficientBits = 256
)

// Amount represents a type storing information
// about an invoiced amount. The zero value is a zero amount
// without currency.
//
// ! The value is stored in its smallest denomination of the currency.
// Example: for euros the amount is stored in cents:
// for 97.23 euros, the value is 9723.
// For CFA francs the smallest denomination is the franc itself.
type Amount struct {
	// value of the amount, stored as an int, in the smallest
	// denomination of the currency.
	value *ValueSubunit

	// number of digits after the decimal point.
	decimals uint

	// shorthand for the currency.
	currencyCode string
}

// New creates a new amount from a *ValueSubunit value.
// The value must be not nil.
func New(
	value *ValueSubunit,
	decimals uint,
	currencyCode string,
) (*Amount, error) {
	if value == nil || !value.IsValid() {
		return nil, fmt.Errorf("%w: nil value", ErrInvalidValue)
	}

	return &Amount{
		value:        value,
		decimals:     decimals,
		currencyCode: currencyCode,
	}, nil
}

// NewCFA creates a new XOF amount of francs.
func NewCFA(francs int64) *Amount {
	return &Amount{
		value:        NewValueSubunitFromInt64(francs),
		decimals:     CFADecimals,
		currencyCode: CurrencyXOF,
	}
}

// NewFromStringValue creates a new amount from a string value
// in the smallest denomination.
// The value must be a valid int.
func NewFromStringValue(
	valueStr string,
	decimals uint,
	currencyCode string,
) (*Amount, error) {
	value, err := NewValueSubunitFromString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("new value from string: %w", err)
	}

	return New(value, decimals, currencyCode)
}

// NewFromUnitString creates a new Amount from a value that
// is in its largest denomination, eg. "75000.50".
//
// The value is multiplied by 10^decimals and the digits that
// do not fit in the smallest denomination are floored.
func NewFromUnitString(
	unitValueStr string,
	decimals uint,
	currencyCode string,
) (*Amount, error) {
	if unitValueStr == "" {
		return nil, fmt.Errorf("%w: empty string value", ErrInvalidValue)
	}

	if len(unitValueStr) > MaxUnitStringLen {
		return nil, fmt.Errorf(
			"%w: string value longer than %d characters",
			ErrTooLarge,
			MaxUnitStringLen,
		)
	}

	units, err := decimal.NewFromString(unitValueStr)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: string value \"%s\"",
			ErrInvalidValue,
			unitValueStr,
		)
	}

	return NewFromUnits(units, decimals, currencyCode)
}

// NewFromUnits creates a new Amount from a decimal value expressed
// in the largest denomination of the currency.
//
// units must pass CheckUnits.
func NewFromUnits(
	units decimal.Decimal,
	decimals uint,
	currencyCode string,
) (*Amount, error) {
	if err := CheckUnits(units); err != nil {
		return nil, err
	}

	if decimals > MaxUnitExponent {
		return nil, fmt.Errorf("%w: %d decimals", ErrTooLarge, decimals)
	}

	subunits := units.Shift(int32(decimals)).Floor()

	return &Amount{
		value:        new(ValueSubunit).SetBigInt(subunits.BigInt()),
		decimals:     decimals,
		currencyCode: currencyCode,
	}, nil
}

// CheckUnits returns ErrTooLarge when the exponent of units is outside
// [-MaxUnitExponent, MaxUnitExponent] or its coefficient does not fit
// in 256 bits. Only the bounds are inspected, units is never expanded.
func CheckUnits(units decimal.Decimal) error {
	if exp := units.Exponent(); exp > MaxUnitExponent || exp < -MaxUnitExponent {
		return fmt.Errorf("%w: exponent %d", ErrTooLarge, exp)
	}

	if units.Coefficient().BitLen() > maxCoefficientBits {
		return fmt.Errorf("%w: more than %d bits", ErrTooLarge, maxCoefficientBits)
	}

	return nil
}

// Must returns Amount if err is nil and panics otherwise.
func Must(amount *Amount, err error) *Amount {
	if err != nil {
		panic(err)
	}

	return amount
}

// Value returns the amount value in its smallest denomination.
func (a Amount) Value() *ValueSubunit {
	return a.value
}

// subunits returns a copy of the value, 0 for the zero Amount.
func (a Amount) subunits() *big.Int {
	if a.value == nil {
		return new(big.Int)
	}

	return a.value.BigInt()
}

// Decimals returns the number of decimals for the amount.
func (a Amount) Decimals() uint {
	return a.decimals
}

// CurrencyCode returns the shorthand for the Currency Code of the Amount.
func (a Amount) CurrencyCode() string {
	return a.currencyCode
}

// Units divides a.value / 10^decimals.
func (a Amount) Units() decimal.Decimal {
	return decimal.NewFromBigInt(a.subunits(), -int32(a.decimals))
}

// WholeUnits returns the floor of the amount expressed in its
// largest denomination: 75000.99 francs is 75000 francs.
func (a Amount) WholeUnits() *big.Int {
	return a.Units().Floor().BigInt()
}

// InWords spells out the whole units of the amount in French.
func (a Amount) InWords() (string, error) {
	words, err := numwords.French(a.WholeUnits())
	if err != nil {
		return "", fmt.Errorf("spell %s amount: %w", a.currencyCode, err)
	}

	return words, nil
}

// String formats the amount in its largest denomination
// followed by the currency code, eg. "75000 XOF".
func (a Amount) String() string {
	return fmt.Sprintf(
		"%s %s",
		a.Units().StringFixed(int32(a.decimals)),
		a.currencyCode,
	)
}
