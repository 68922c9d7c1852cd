package finance

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes amounts in generated text.
const DefaultCurrencySymbol = "₹"

// FormatMoney renders d with thousands separators and two decimals, e.g.
// "₹12,345.60" or "-₹80.00".
func FormatMoney(symbol string, d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + symbol + humanize.FormatFloat("#,###.##", d.Abs().Round(2).InexactFloat64())
}
