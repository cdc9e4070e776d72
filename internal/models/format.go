package models

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	printer      = message.NewPrinter(language.English)
	dollar       = printer.Sprint(currency.NarrowSymbol(currency.USD))
	centScale, _ = currency.Standard.Rounding(currency.USD)
)

// FormatCurrency renders an amount in dollars with thousands separators,
// e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + dollar + printer.Sprint(number.Decimal(amount, number.Scale(centScale)))
}

// FormatCount abbreviates large counts: 999, 1.2K, 3.4M.
func FormatCount(n int64) string {
	switch {
	case n >= 999_950:
		return abbreviate(float64(n)/1_000_000, "M")
	case n >= 1_000:
		return abbreviate(float64(n)/1_000, "K")
	default:
		return printer.Sprint(number.Decimal(n))
	}
}

func abbreviate(v float64, unit string) string {
	return printer.Sprint(number.Decimal(v, number.Scale(1))) + unit
}
