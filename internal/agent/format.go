package agent

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimals, thousands separators and a currency code,
// e.g. "-1,234.50 EUR".
func FormatMoney(amount decimal.Decimal, currency string) string {
	rounded := amount.Round(2)
	magnitude := rounded.Abs()
	_, frac, _ := strings.Cut(magnitude.StringFixed(2), ".")

	text := humanize.Comma(magnitude.IntPart()) + "." + frac
	if rounded.IsNegative() {
		text = "-" + text
	}
	if currency != "" {
		text += " " + currency
	}
	return text
}
