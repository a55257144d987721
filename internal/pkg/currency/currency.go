// Package currency formats PKR amounts the way the donation platform
// displays them: thousands separators, no trailing zeros.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with thousands separators, e.g. 5000 -> "5,000"
func Format(amount float64) string {
	return printer.Sprintf("%v", number.Decimal(amount))
}

// FormatPKR renders an amount with the PKR currency prefix,
// e.g. 5000 -> "PKR 5,000"
func FormatPKR(amount float64) string {
	return "PKR " + Format(amount)
}
