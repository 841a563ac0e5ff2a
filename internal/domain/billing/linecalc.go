// Package billing provides pure monetary computations shared by
// subscription and invoice lines.
package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ComputeLineAmount computes a line's monetary amount from quantity, unit
// price and optional discount/tax percentages. The discount is applied
// before tax, so tax is charged on the discounted base. The result is
// rounded to 2 decimal places, half away from zero.
//
// Callers guarantee quantity > 0 and unitPrice >= 0.
func ComputeLineAmount(quantity, unitPrice decimal.Decimal, discountPercent, taxPercent *decimal.Decimal) decimal.Decimal {
	amount := quantity.Mul(unitPrice)
	if discountPercent != nil {
		amount = amount.Mul(decimal.NewFromInt(1).Sub(discountPercent.Div(hundred)))
	}
	if taxPercent != nil {
		amount = amount.Mul(decimal.NewFromInt(1).Add(taxPercent.Div(hundred)))
	}
	return amount.Round(2)
}

// ValidPercent reports whether p is within [0, 100].
func ValidPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}
