// Package amount implements an Amount type used to represent
// the monetary totals printed on invoices:
//
// - value, in the lowest denominator form, eg. cents for EUR.
// CFA francs have no subunit in practice, so the value is the
// number of francs.
//
// - decimals, the number of the digits after
// the decimals point, eg. 0 for XOF and XAF.
//
// - currency code, the shorthand for
// the currency, eg. XOF for the West African CFA franc.
//
// An Amount can be spelled out in French with InWords, the whole
// units are used and the fractional remainder is dropped.
package amount
