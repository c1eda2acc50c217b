package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a monetary amount with thousands grouping and two
// decimals, e.g. 50000 becomes "50,000.00".
func FormatAmount(v float64) string {
	return amountPrinter.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}
