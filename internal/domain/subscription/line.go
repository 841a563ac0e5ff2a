package subscription

import (
	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/billing"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// Line is a subscription order line. Amount is derived from quantity, unit
// price and the optional discount/tax percentages (discount before tax).
type Line struct {
	ID              uint
	ProductID       uint
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent *decimal.Decimal
	TaxPercent      *decimal.Decimal
	Amount          decimal.Decimal
}

// NewLine validates the inputs and computes the line amount.
func NewLine(productID uint, quantity, unitPrice decimal.Decimal, discountPercent, taxPercent *decimal.Decimal) (Line, error) {
	if productID == 0 {
		return Line{}, apperrors.NewValidationError("line product is required")
	}
	if !quantity.IsPositive() {
		return Line{}, apperrors.NewValidationError("line quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return Line{}, apperrors.NewValidationError("line unit price cannot be negative")
	}
	if discountPercent != nil && !billing.ValidPercent(*discountPercent) {
		return Line{}, apperrors.NewValidationError("line discount percent must be between 0 and 100")
	}
	if taxPercent != nil && taxPercent.IsNegative() {
		return Line{}, apperrors.NewValidationError("line tax percent cannot be negative")
	}

	return Line{
		ProductID:       productID,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		DiscountPercent: discountPercent,
		TaxPercent:      taxPercent,
		Amount:          billing.ComputeLineAmount(quantity, unitPrice, discountPercent, taxPercent),
	}, nil
}

// CopyVerbatim returns a copy of the line with its stored values intact,
// including the already-computed amount. Used by renewal, which must not
// reprice existing lines.
func (l Line) CopyVerbatim() Line {
	return Line{
		ProductID:       l.ProductID,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		DiscountPercent: l.DiscountPercent,
		TaxPercent:      l.TaxPercent,
		Amount:          l.Amount,
	}
}
