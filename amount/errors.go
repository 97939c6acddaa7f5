package amount

import (
	"errors"
)

var (
	// ErrInvalidValue is returned when an unexpected value
	// is given to an Amount constructor.
	ErrInvalidValue = errors.New("invalid value")

	// ErrTooLarge is returned when a unit value has too many digits
	// or too large an exponent to be stored as an amount.
	ErrTooLarge = errors.New("value too large")
)
