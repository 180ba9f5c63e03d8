package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is reported for carts with no lines.
const DefaultCurrency = "USD"

// Money arithmetic is decimal-exact throughout the application.
// Amounts never pass through float64; totals are sums of decimal.Decimal
// values and the gateway wire format is always rendered with two decimal
// places via AmountString.

// LineTotal returns unitPrice * quantity with no rounding.
func LineTotal(unitPrice decimal.Decimal, quantity int32) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt32(quantity))
}

// SumLineTotals returns the exact sum of unitPrice * quantity over lines.
func SumLineTotals(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line.UnitPrice, line.Quantity))
	}
	return total
}

// AmountString renders an amount with exactly two decimal places, the
// format the payment provider requires ("15.00", "20.20").
func AmountString(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// NormalizeCurrency upper-cases a currency code for storage and comparison.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// SameCurrency compares two currency codes case-insensitively.
func SameCurrency(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
