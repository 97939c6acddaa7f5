package amount

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
	"math/big"
)

var (
	// ensure ValueSubunit implements valuer and scanner interface.
	_ sql.Scanner   = (*ValueSubunit)(nil)
	_ driver.Valuer = (*ValueSubunit)(nil)

	// ensure ValueSubunit implements text marshaller and unmarshaler interface.
	_ encoding.TextMarshaler   = (*ValueSubunit)(nil)
	_ encoding.TextUnmarshaler = (*ValueSubunit)(nil)

	// ensure ValueSubunit implements json marshaller and unmarshaler interface.
	_ json.Unmarshaler = (*ValueSubunit)(nil)
	_ json.Marshaler   = (*ValueSubunit)(nil)
)

const base = 10

// ValueSubunit represents a value stored in its
// smallest denomination form, eg. cents for euros, francs for XOF.
//
// ! This is intended to be used for storage and representation
// rather than for the big.Int behavior.
type ValueSubunit struct {
	bigInt *big.Int
}

// NewValueSubunitFromInt64 returns a new ValueSubunit set to v.
func NewValueSubunitFromInt64(v int64) *ValueSubunit {
	return &ValueSubunit{bigInt: big.NewInt(v)}
}

// NewValueSubunitFromString parses s as a base 10 integer.
func NewValueSubunitFromString(s string) (*ValueSubunit, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string value", ErrInvalidValue)
	}

	v, ok := new(ValueSubunit).SetString(s)
	if !ok {
		return nil, fmt.Errorf(
			"%w: string \"%s\" is not valid",
			ErrInvalidValue,
			s,
		)
	}

	return v, nil
}

// IsValid returns true if the internal big.Int
// value is not nil.
func (v ValueSubunit) IsValid() bool {
	return v.bigInt != nil
}

// Sign returns -1, 0 or +1 depending on the sign of v.
// An invalid value has sign 0.
func (v ValueSubunit) Sign() int {
	if v.bigInt == nil {
		return 0
	}

	return v.bigInt.Sign()
}

// Cmp compares v and x, like (*big.Int).Cmp.
// Invalid values are considered equal to 0.
func (v ValueSubunit) Cmp(x *ValueSubunit) int {
	if x == nil {
		return v.orZero().Sign()
	}

	return v.orZero().Cmp(x.orZero())
}

// BigInt returns a copy of the internal big.Int,
// 0 for an invalid value.
func (v ValueSubunit) BigInt() *big.Int {
	return new(big.Int).Set(v.orZero())
}

// SetBigInt sets the internal big.Int value to a copy of i.
func (v *ValueSubunit) SetBigInt(i *big.Int) *ValueSubunit {
	v.bigInt = new(big.Int).Set(i)

	return v
}

// SetString interprets s as a base 10 integer and returns
// a boolean indicating the operation success.
func (v *ValueSubunit) SetString(s string) (*ValueSubunit, bool) {
	bigInt, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false
	}

	v.bigInt = bigInt

	return v, true
}

// String returns the decimal representation of
// the internal big.Int.
func (v ValueSubunit) String() string {
	return v.orZero().String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (v ValueSubunit) MarshalText() ([]byte, error) {
	return v.orZero().MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (v *ValueSubunit) UnmarshalText(text []byte) error {
	i := new(big.Int)

	if err := i.UnmarshalText(text); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, err)
	}

	v.bigInt = i

	return nil
}

// MarshalJSON implements the json.Marshaler interface.
// The value is encoded as a JSON string so that clients
// parsing numbers as float64 do not lose precision.
func (v ValueSubunit) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both JSON strings and numbers are accepted, null resets the value.
func (v *ValueSubunit) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		v.bigInt = nil

		return nil
	}

	var s string

	if err := json.Unmarshal(data, &s); err == nil {
		return v.UnmarshalText([]byte(s))
	}

	return v.UnmarshalText(data)
}

// Value defines how the value is stored in the database.
func (v ValueSubunit) Value() (driver.Value, error) {
	if v.IsValid() {
		return v.bigInt.String(), nil
	}

	return nil, nil
}

// Scan defines how the value is read from the database.
func (v *ValueSubunit) Scan(value interface{}) error {
	switch t := value.(type) {
	case int64:
		v.bigInt = new(big.Int).SetInt64(t)

	case string:
		return v.scanString(t)

	case []uint8:
		return v.scanString(string(t))

	case nil:
		v.bigInt = nil

	default:
		return fmt.Errorf(
			"%w: could not scan type %T into ValueSubunit",
			ErrInvalidValue,
			t,
		)
	}

	return nil
}

func (v *ValueSubunit) scanString(s string) error {
	if _, ok := v.SetString(s); !ok {
		return fmt.Errorf(
			"%w: failed to scan \"%s\"",
			ErrInvalidValue,
			s,
		)
	}

	return nil
}

func (v ValueSubunit) orZero() *big.Int {
	if v.bigInt == nil {
		return new(big.Int)
	}

	return v.bigInt
}
