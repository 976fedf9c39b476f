// Package money renders monetary amounts for display using the es-CR locale
// and the colón (CRC), matching how the office front end shows totals.
package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	colon   = currency.MustParseISO("CRC")
	printer = message.NewPrinter(language.MustParse("es-CR"))
)

// FormatCRC converts a numeric amount into its localized currency string.
// Pure presentation; callers keep working with the raw float.
func FormatCRC(amount float64) string {
	return printer.Sprintf("%v", currency.Symbol(colon.Amount(amount)))
}
