package numwords

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxValue is the greatest value the French converters accept.
const MaxValue uint64 = 999_999_999_999

const separator = "-"

var maxValueBig = new(big.Int).SetUint64(MaxValue)

// units holds every numeral spelled with a single word below 17.
var units = [...]string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit",
	"neuf", "dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
}

// tens is indexed by the tens digit, from 2 (vingt) to 6 (soixante).
// 70 and 90 are built on top of 60 and 80.
var tens = [...]string{
	2: "vingt",
	3: "trente",
	4: "quarante",
	5: "cinquante",
	6: "soixante",
}

// scale describes a base-1000 group and how its multiplier is spelled.
type scale struct {
	divisor uint64

	// singular and plural forms of the scale word, empty for the units group.
	singular, plural string

	// elideOne drops the "un" multiplier, eg. "mille" rather than "un-mille".
	elideOne bool

	// agreement is true when "cent" and "vingt" of the multiplier may take
	// their plural "s", which is only the case at the end of the number or
	// before a noun (million, milliard).
	agreement bool
}

var scales = [...]scale{
	{divisor: 1_000_000_000, singular: "milliard", plural: "milliards", agreement: true},
	{divisor: 1_000_000, singular: "million", plural: "millions", agreement: true},
	{divisor: 1_000, singular: "mille", plural: "mille", elideOne: true},
	{divisor: 1, agreement: true},
}

const (
	// a non zero coefficient times 10^12 already exceeds MaxValue.
	maxDecimalExponent = 11
	maxDecimalPlaces   = 64
)

// French returns the French spelling of n.
//
// n must be in the [0, MaxValue] range.
func French(n *big.Int) (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: nil value", ErrInvalidInput)
	}

	if n.Sign() < 0 {
		if !n.IsInt64() {
			return "", fmt.Errorf("%w: negative value", ErrInvalidInput)
		}

		return "", fmt.Errorf("%w: negative value %d", ErrInvalidInput, n.Int64())
	}

	// the value itself is left out of the message, it may have any size.
	if n.BitLen() > maxValueBig.BitLen() || n.Cmp(maxValueBig) > 0 {
		return "", fmt.Errorf("%w: value is greater than %d", ErrOutOfRange, MaxValue)
	}

	return spell(n.Uint64()), nil
}

// FrenchInt64 returns the French spelling of n.
func FrenchInt64(n int64) (string, error) {
	return French(big.NewInt(n))
}

// FrenchFloat64 returns the French spelling of amount.
//
// The amount must hold an integer value: callers are expected to floor
// monetary amounts before spelling them.
func FrenchFloat64(amount float64) (string, error) {
	switch {
	case math.IsNaN(amount), math.IsInf(amount, 0):
		return "", fmt.Errorf("%w: %v is not a number", ErrInvalidInput, amount)

	case amount < 0:
		return "", fmt.Errorf("%w: negative value %v", ErrInvalidInput, amount)

	case math.Trunc(amount) != amount:
		return "", fmt.Errorf("%w: %v is not an integer", ErrInvalidInput, amount)
	}

	n, _ := new(big.Float).SetFloat64(amount).Int(nil)

	return French(n)
}

// FrenchDecimal returns the French spelling of d, which must hold
// an integer value.
func FrenchDecimal(d decimal.Decimal) (string, error) {
	// the exponent is checked before d is expanded to an integer.
	switch exp := d.Exponent(); {
	case d.Sign() == 0:
		return units[0], nil

	case d.Sign() < 0:
		return "", fmt.Errorf("%w: negative value", ErrInvalidInput)

	case d.Sign() > 0 && exp > maxDecimalExponent:
		return "", fmt.Errorf("%w: value is greater than %d", ErrOutOfRange, MaxValue)

	case exp < -maxDecimalPlaces:
		return "", fmt.Errorf("%w: more than %d decimal places", ErrInvalidInput, maxDecimalPlaces)
	}

	if !d.IsInteger() {
		return "", fmt.Errorf("%w: %s is not an integer", ErrInvalidInput, d)
	}

	return French(d.BigInt())
}

// MustFrench returns words if err is nil and panics otherwise.
func MustFrench(words string, err error) string {
	if err != nil {
		panic(err)
	}

	return words
}

func spell(n uint64) string {
	if n == 0 {
		return units[0]
	}

	words := make([]string, 0, 8)

	for _, s := range scales {
		group := n / s.divisor
		n %= s.divisor

		if group == 0 {
			continue
		}

		if !(group == 1 && s.elideOne) {
			words = appendHundreds(words, int(group), s.agreement)
		}

		switch {
		case s.singular == "":
		case group > 1:
			words = append(words, s.plural)
		default:
			words = append(words, s.singular)
		}
	}

	return strings.Join(words, separator)
}

// appendHundreds appends the words of n, in the [1, 999] range.
func appendHundreds(words []string, n int, agreement bool) []string {
	hundreds, rest := n/100, n%100

	if hundreds > 0 {
		if hundreds > 1 {
			words = append(words, units[hundreds])
		}

		if hundreds > 1 && rest == 0 && agreement {
			words = append(words, "cents")
		} else {
			words = append(words, "cent")
		}
	}

	if rest > 0 {
		words = appendTens(words, rest, agreement)
	}

	return words
}

// appendTens appends the words of n, in the [1, 99] range.
func appendTens(words []string, n int, agreement bool) []string {
	switch {
	case n < len(units):
		return append(words, units[n])

	case n < 20:
		return append(words, units[10], units[n-10])

	case n < 70:
		t, u := n/10, n%10

		switch u {
		case 0:
			return append(words, tens[t])
		case 1:
			return append(words, tens[t], "et", units[1])
		default:
			return append(words, tens[t], units[u])
		}

	case n < 80:
		// 70 to 79 count on top of soixante: soixante-dix, soixante-et-onze...
		if n == 71 {
			return append(words, tens[6], "et", units[11])
		}

		return appendTens(append(words, tens[6]), n-60, agreement)

	default:
		// 80 to 99 count on top of quatre-vingt, never with "et".
		if n == 80 {
			if agreement {
				return append(words, units[4], "vingts")
			}

			return append(words, units[4], tens[2])
		}

		return appendTens(append(words, units[4], tens[2]), n-80, agreement)
	}
}
