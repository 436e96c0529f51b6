package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed sales tax fraction applied to every cart subtotal.
var TaxRate = decimal.RequireFromString("0.07")

// FormatUSD renders an amount as a US dollar string with thousands grouping,
// e.g. 1234.5 -> "$1,234.50".
func FormatUSD(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	whole, cents, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(whole)

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("$")
	b.WriteString(grouped)
	b.WriteString(".")
	b.WriteString(cents)
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
