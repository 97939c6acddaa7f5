// Package numwords spells out non-negative integer amounts in French,
// as required for the "amount in letters" printed on invoices.
//
// The output follows the 1990 orthographic rectification: every
// component of a compound numeral is joined with a hyphen, scale words
// included, eg. 1500 is "mille-cinq-cents" and 2023 is
// "deux-mille-vingt-trois".
//
// The functions return lower case words. Callers decide the final
// casing.
//
// Values up to MaxValue (999 999 999 999) are supported. Negative,
// fractional and larger values are rejected with ErrInvalidInput or
// ErrOutOfRange, never truncated.
package numwords
