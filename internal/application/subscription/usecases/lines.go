package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// LineInput is the caller-facing shape of an order line. UnitPrice falls back
// to the product list price, TaxPercent to the product's linked tax.
type LineInput struct {
	ProductID       uint
	Quantity        decimal.Decimal
	UnitPrice       *decimal.Decimal
	DiscountPercent *decimal.Decimal
	TaxPercent      *decimal.Decimal
}

// lineBuilder resolves line inputs against the product catalog and applies
// an optional discount code. Shared by create, upsell and line replacement.
type lineBuilder struct {
	productRepo catalog.ProductRepository
	taxRepo     catalog.TaxRepository
}

// build turns inputs into computed lines. When disc is non-nil, at least one
// line's product must fall inside the discount scope; the discount percent is
// then written to every in-scope line without an explicit override.
func (b *lineBuilder) build(ctx context.Context, inputs []LineInput, disc *discount.Discount) ([]subscription.Line, error) {
	if len(inputs) == 0 && disc != nil {
		return nil, apperrors.NewPolicyViolationError("discount requires at least one order line")
	}
	if disc != nil && !discountInScope(inputs, disc) {
		return nil, apperrors.NewPolicyViolationError("discount not applicable to any order line")
	}

	ids := make([]uint, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ProductID)
	}
	products, err := b.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]subscription.Line, 0, len(inputs))
	for _, in := range inputs {
		product, ok := products[in.ProductID]
		if !ok {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		if !product.Active {
			return nil, apperrors.NewValidationError("product is not active: " + product.Name)
		}

		unitPrice := product.ListPrice
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}

		taxPercent := in.TaxPercent
		if taxPercent == nil && product.TaxID != nil {
			tax, err := b.taxRepo.GetByID(ctx, *product.TaxID)
			if err != nil {
				return nil, err
			}
			if tax != nil {
				p := tax.Percent
				taxPercent = &p
			}
		}

		discountPercent := in.DiscountPercent
		if discountPercent == nil && disc != nil && disc.AppliesTo(in.ProductID) {
			p := disc.Percent()
			discountPercent = &p
		}

		line, err := subscription.NewLine(in.ProductID, in.Quantity, unitPrice, discountPercent, taxPercent)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// discountInScope reports whether any input line references a product the
// discount covers. Explicit per-line percent overrides do not shrink the
// scope; eligibility depends only on the products ordered.
func discountInScope(inputs []LineInput, disc *discount.Discount) bool {
	for _, in := range inputs {
		if disc.AppliesTo(in.ProductID) {
			return true
		}
	}
	return false
}
