package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/shared/errors"
)

func testLineBuilder(products map[uint]*catalog.Product) lineBuilder {
	return lineBuilder{
		productRepo: &mockProductRepository{
			GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*catalog.Product, error) {
				return products, nil
			},
		},
		taxRepo: &mockTaxRepository{},
	}
}

func TestLineBuilder_UnscopedDiscountWithAllLinesOverridden(t *testing.T) {
	builder := testLineBuilder(map[uint]*catalog.Product{
		7: {ID: 7, Name: "Basic Hosting", ListPrice: dec("50.00"), Active: true},
		9: {ID: 9, Name: "Extra Storage", ListPrice: dec("15.00"), Active: true},
	})
	disc := testDiscount(discount.ReconstructParams{IsActive: true})

	// Every line carries its own percent; the unscoped discount still applies
	// to the order, the overrides just win per line.
	lines, err := builder.build(context.Background(), []LineInput{
		{ProductID: 7, Quantity: dec("1"), DiscountPercent: decPtr("5")},
		{ProductID: 9, Quantity: dec("2"), DiscountPercent: decPtr("15")},
	}, disc)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.NotNil(t, lines[0].DiscountPercent)
	assert.True(t, lines[0].DiscountPercent.Equal(dec("5")))
	require.NotNil(t, lines[1].DiscountPercent)
	assert.True(t, lines[1].DiscountPercent.Equal(dec("15")))
}

func TestLineBuilder_ScopedDiscountEligibleLineOverridden(t *testing.T) {
	builder := testLineBuilder(map[uint]*catalog.Product{
		7: {ID: 7, Name: "Basic Hosting", ListPrice: dec("50.00"), Active: true},
	})
	disc := testDiscount(discount.ReconstructParams{IsActive: true, ProductID: uintPtr(7)})

	lines, err := builder.build(context.Background(), []LineInput{
		{ProductID: 7, Quantity: dec("1"), DiscountPercent: decPtr("5")},
	}, disc)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].DiscountPercent)
	assert.True(t, lines[0].DiscountPercent.Equal(dec("5")))
}

func TestLineBuilder_ScopedDiscountFillsEligibleLines(t *testing.T) {
	builder := testLineBuilder(map[uint]*catalog.Product{
		7: {ID: 7, Name: "Basic Hosting", ListPrice: dec("50.00"), Active: true},
		9: {ID: 9, Name: "Extra Storage", ListPrice: dec("15.00"), Active: true},
	})
	disc := testDiscount(discount.ReconstructParams{IsActive: true, ProductID: uintPtr(7)})

	lines, err := builder.build(context.Background(), []LineInput{
		{ProductID: 7, Quantity: dec("1")},
		{ProductID: 9, Quantity: dec("1")},
	}, disc)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.NotNil(t, lines[0].DiscountPercent)
	assert.True(t, lines[0].DiscountPercent.Equal(dec("10")))
	assert.Nil(t, lines[1].DiscountPercent)
}

func TestLineBuilder_ScopedDiscountWithoutEligibleLine(t *testing.T) {
	builder := testLineBuilder(map[uint]*catalog.Product{
		7: {ID: 7, Name: "Basic Hosting", ListPrice: dec("50.00"), Active: true},
	})
	disc := testDiscount(discount.ReconstructParams{IsActive: true, ProductID: uintPtr(42)})

	lines, err := builder.build(context.Background(), []LineInput{
		{ProductID: 7, Quantity: dec("1")},
	}, disc)

	assert.Nil(t, lines)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypePolicyViolation, appErr.Type)
	assert.Equal(t, "discount not applicable to any order line", appErr.Message)
}
