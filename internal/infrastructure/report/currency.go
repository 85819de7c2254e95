package report

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a dollar amount with thousands grouping. Negative
// amounts use accounting notation: ($1,234.56).
func FormatCurrency(amount float64) string {
	formatted := usPrinter.Sprintf("$%v", number.Decimal(
		math.Abs(amount),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	if amount < 0 {
		return "(" + formatted + ")"
	}
	return formatted
}
