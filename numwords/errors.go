package numwords

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when the value given to a converter
	// is negative, not an integer or nil.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange is returned when the value given to a converter
	// is greater than MaxValue.
	ErrOutOfRange = errors.New("out of range")
)
