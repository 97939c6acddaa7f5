package invoice

import (
	"errors"
)

var (
	// ErrInvalidInvoice is returned by Invoice.Validate when the
	// invoice cannot be totalled.
	ErrInvalidInvoice = errors.New("invalid invoice")

	// ErrUnsupportedCurrency is returned when the amount to write
	// in letters is not in CFA francs.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
