package discount

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

func reconstruct(t *testing.T, p ReconstructParams) *Discount {
	t.Helper()
	if p.ID == 0 {
		p.ID = 1
	}
	if p.Code == "" {
		p.Code = "WELCOME10"
	}
	if p.Percent.IsZero() {
		p.Percent = decimal.NewFromInt(10)
	}
	d, err := Reconstruct(p)
	require.NoError(t, err)
	return d
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "WELCOME10", NormalizeCode("  welcome10 "))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestNewDiscount_Validation(t *testing.T) {
	_, err := NewDiscount(NewDiscountParams{Code: " ", Percent: decimal.NewFromInt(10)})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = NewDiscount(NewDiscountParams{Code: "X", Percent: decimal.NewFromInt(101)})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = NewDiscount(NewDiscountParams{Code: "X", Percent: decimal.NewFromInt(10), LimitUsage: true})
	assert.True(t, apperrors.IsValidationError(err))

	d, err := NewDiscount(NewDiscountParams{Code: "x", Percent: decimal.NewFromInt(10), IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "X", d.Code())
}

func TestEnsureUsable_CheckOrder(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("inactive", func(t *testing.T) {
		d := reconstruct(t, ReconstructParams{IsActive: false})
		err := d.EnsureUsable(now)
		require.Error(t, err)
		assert.True(t, apperrors.IsPolicyViolationError(err))
	})

	t.Run("not started", func(t *testing.T) {
		d := reconstruct(t, ReconstructParams{IsActive: true, StartsAt: &future})
		assert.Error(t, d.EnsureUsable(now))
	})

	t.Run("expired", func(t *testing.T) {
		d := reconstruct(t, ReconstructParams{IsActive: true, EndsAt: &past})
		assert.Error(t, d.EnsureUsable(now))
	})

	t.Run("misconfigured usage limit", func(t *testing.T) {
		d := reconstruct(t, ReconstructParams{IsActive: true, LimitUsage: true})
		assert.Error(t, d.EnsureUsable(now))
	})

	t.Run("usage cap reached", func(t *testing.T) {
		d := reconstruct(t, ReconstructParams{IsActive: true, LimitUsage: true, UsageLimit: intPtr(1), TimesUsed: 1})
		err := d.EnsureUsable(now)
		require.Error(t, err)
		assert.True(t, apperrors.IsPolicyViolationError(err))
	})

	t.Run("usable", func(t *testing.T) {
		d := reconstruct(t, ReconstructParams{
			IsActive:   true,
			StartsAt:   &past,
			EndsAt:     &future,
			LimitUsage: true,
			UsageLimit: intPtr(5),
			TimesUsed:  4,
		})
		assert.NoError(t, d.EnsureUsable(now))
	})
}

func TestScope(t *testing.T) {
	unscoped := reconstruct(t, ReconstructParams{IsActive: true})
	assert.True(t, unscoped.AppliesTo(7))
	assert.NoError(t, unscoped.EnsureScope(uintPtr(7)))

	scoped := reconstruct(t, ReconstructParams{IsActive: true, ProductID: uintPtr(3)})
	assert.True(t, scoped.AppliesTo(3))
	assert.False(t, scoped.AppliesTo(7))
	assert.NoError(t, scoped.EnsureScope(nil), "scope is not enforced without a concrete product")
	assert.NoError(t, scoped.EnsureScope(uintPtr(3)))
	assert.Error(t, scoped.EnsureScope(uintPtr(7)))
}
