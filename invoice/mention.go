package invoice

import (
	"fmt"

	"github.com/purposeinplay/go-invoicewords/amount"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrencyLabel is the currency printed after the amount in letters.
const DefaultCurrencyLabel = "Francs CFA"

const mentionFormat = "Arrêtée à la somme de %s %s."

// Mentioner writes the legal sentence stating the invoice total
// in letters, eg.
//
//	Arrêtée à la somme de SOIXANTE-QUINZE-MILLE Francs CFA.
//
// A Mentioner is safe for concurrent use.
type Mentioner struct {
	currencyLabel string
	log           *zap.Logger
}

// MentionerOption configures a Mentioner.
type MentionerOption func(m *Mentioner)

// WithCurrencyLabel overrides DefaultCurrencyLabel.
func WithCurrencyLabel(label string) MentionerOption {
	return func(m *Mentioner) {
		if label != "" {
			m.currencyLabel = label
		}
	}
}

// WithLogger sets the logger used to report the totals
// that could not be spelled out.
func WithLogger(log *zap.Logger) MentionerOption {
	return func(m *Mentioner) {
		if log != nil {
			m.log = log
		}
	}
}

// NewMentioner creates a Mentioner.
func NewMentioner(opts ...MentionerOption) *Mentioner {
	m := &Mentioner{
		currencyLabel: DefaultCurrencyLabel,
		log:           zap.NewNop(),
	}

	for _, o := range opts {
		o(m)
	}

	return m
}

// CurrencyLabel returns the label printed after the amount.
func (m *Mentioner) CurrencyLabel() string {
	return m.currencyLabel
}

// Words returns the upper-cased French spelling of the whole units of a.
// a must be in CFA francs.
func (m *Mentioner) Words(a *amount.Amount) (string, error) {
	if !IsCFA(a.CurrencyCode()) {
		return "", fmt.Errorf("%w %q", ErrUnsupportedCurrency, a.CurrencyCode())
	}

	words, err := a.InWords()
	if err != nil {
		return "", err
	}

	// a Caser keeps state between calls, one is built per call.
	return cases.Upper(language.French).String(words), nil
}

// Mention returns the legal sentence for a.
func (m *Mentioner) Mention(a *amount.Amount) (string, error) {
	words, err := m.Words(a)
	if err != nil {
		return "", fmt.Errorf("mention: %w", err)
	}

	return fmt.Sprintf(mentionFormat, words, m.currencyLabel), nil
}

// MentionOrNumeral returns the legal sentence for a. When a cannot be
// spelled out, the whole units are written with digits instead,
// followed by the currency code when a is not in CFA francs.
func (m *Mentioner) MentionOrNumeral(a *amount.Amount) string {
	mention, err := m.Mention(a)
	if err == nil {
		return mention
	}

	m.log.Warn(
		"amount could not be spelled out, falling back to digits",
		zap.Stringer("amount", a),
		zap.Error(err),
	)

	label := m.currencyLabel
	if !IsCFA(a.CurrencyCode()) {
		label = a.CurrencyCode()
	}

	return fmt.Sprintf(mentionFormat, numeral(a), label)
}

// numeral formats the whole units of a with French digit grouping.
func numeral(a *amount.Amount) string {
	units := a.WholeUnits()

	if !units.IsInt64() {
		return units.String()
	}

	return message.NewPrinter(language.French).Sprintf("%d", units.Int64())
}
