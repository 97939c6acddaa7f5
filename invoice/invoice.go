package invoice

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/purposeinplay/go-invoicewords/amount"
	"github.com/shopspring/decimal"
)

// Line is an invoiced product or service.
type Line struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Total returns Quantity * UnitPrice.
func (l Line) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Invoice holds the lines billed to a customer for an order.
// Prices are expressed in the largest denomination of Currency.
type Invoice struct {
	Reference uuid.UUID `json:"reference"`
	Customer  string    `json:"customer"`
	Currency  string    `json:"currency"`
	Lines     []Line    `json:"lines"`
}

// New returns an empty XOF invoice with a random reference.
func New(customer string) *Invoice {
	return &Invoice{
		Reference: uuid.New(),
		Customer:  customer,
		Currency:  amount.CurrencyXOF,
	}
}

// AddLine appends a line to the invoice.
func (inv *Invoice) AddLine(description string, quantity, unitPrice decimal.Decimal) {
	inv.Lines = append(inv.Lines, Line{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
}

// Validate checks that the invoice is billed in CFA francs, has lines
// and that none of them has a negative or oversized quantity or price.
func (inv Invoice) Validate() error {
	if !IsCFA(inv.currency()) {
		return fmt.Errorf("%w: %w", ErrInvalidInvoice, ErrUnsupportedCurrency)
	}

	if len(inv.Lines) == 0 {
		return fmt.Errorf("%w: no lines", ErrInvalidInvoice)
	}

	for idx, l := range inv.Lines {
		switch {
		case l.Description == "":
			return fmt.Errorf("%w: line %d: empty description", ErrInvalidInvoice, idx)

		case l.Quantity.IsNegative():
			return fmt.Errorf("%w: line %d: negative quantity", ErrInvalidInvoice, idx)

		case l.UnitPrice.IsNegative():
			return fmt.Errorf("%w: line %d: negative unit price", ErrInvalidInvoice, idx)
		}

		if err := amount.CheckUnits(l.Quantity); err != nil {
			return fmt.Errorf("%w: line %d: quantity: %w", ErrInvalidInvoice, idx, err)
		}

		if err := amount.CheckUnits(l.UnitPrice); err != nil {
			return fmt.Errorf("%w: line %d: unit price: %w", ErrInvalidInvoice, idx, err)
		}
	}

	return nil
}

// Total returns the sum of the line totals.
//
// Call Validate first: the lines are not bounds checked.
func (inv Invoice) Total() decimal.Decimal {
	total := decimal.Zero

	for _, l := range inv.Lines {
		total = total.Add(l.Total())
	}

	return total
}

// Amount validates the invoice and returns its total as an Amount.
// The fractional part of the total is floored.
func (inv Invoice) Amount() (*amount.Amount, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	// CFA francs have no subunit, flooring first keeps the exponent small.
	a, err := amount.NewFromUnits(inv.Total().Floor(), amount.CFADecimals, inv.currency())
	if err != nil {
		return nil, fmt.Errorf("%w: total: %w", ErrInvalidInvoice, err)
	}

	return a, nil
}

// currency defaults to XOF.
func (inv Invoice) currency() string {
	if inv.Currency == "" {
		return amount.CurrencyXOF
	}

	return inv.Currency
}

// IsCFA reports whether currencyCode is one of the CFA francs.
func IsCFA(currencyCode string) bool {
	switch currencyCode {
	case amount.CurrencyXOF, amount.CurrencyXAF:
		return true
	default:
		return false
	}
}
