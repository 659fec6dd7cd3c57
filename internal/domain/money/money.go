// Package money holds the decimal helpers shared by the domain and the
// document templates. Amounts are always kept in reais with two decimals.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FromFloat converts an API amount into a cent-rounded decimal.
func FromFloat(v float64) decimal.Decimal {
	return Cents(decimal.NewFromFloat(v))
}

// Cents rounds to two decimal places, half away from zero.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Sum adds all values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// PercentOf returns pct% of amount rounded to cents.
func PercentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred).Round(2)
}

// Share returns part/total*100 rounded to one decimal, or zero when total is zero.
func Share(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(1)
}

// Ratio returns num/den rounded to cents, or zero when den is zero.
func Ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Round(2)
}

// FormatBRL renders an amount the way pt-BR prints currency: R$ 1.234,56.
func FormatBRL(d decimal.Decimal) string {
	d = Cents(d)
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("R$ ")
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// FormatPercent prints a percentage without trailing zeros (10, 12.5).
func FormatPercent(d decimal.Decimal) string {
	return d.String()
}
