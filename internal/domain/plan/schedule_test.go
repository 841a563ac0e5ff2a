package plan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanWithPrices(t *testing.T, prices ...Price) *RecurringPlan {
	t.Helper()
	p, err := ReconstructRecurringPlan(ReconstructParams{
		ID:          1,
		Name:        "Standard",
		MinQuantity: 1,
		Pausable:    true,
		Renewable:   true,
		Closable:    true,
		Prices:      prices,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextBillingDate_NoPrices(t *testing.T) {
	p := newPlanWithPrices(t)
	assert.Nil(t, p.NextBillingDate(date(2024, time.January, 15)))
}

func TestNextBillingDate_Days(t *testing.T) {
	p := newPlanWithPrices(t, Price{
		Price:              decimal.NewFromInt(10),
		BillingPeriodValue: 14,
		BillingPeriodUnit:  PeriodDay,
		IsDefault:          true,
	})

	next := p.NextBillingDate(date(2024, time.February, 20))
	require.NotNil(t, next)
	assert.Equal(t, date(2024, time.March, 5), *next)
}

func TestNextBillingDate_MonthEndClamping(t *testing.T) {
	p := newPlanWithPrices(t, Price{
		Price:              decimal.NewFromInt(10),
		BillingPeriodValue: 1,
		BillingPeriodUnit:  PeriodMonth,
		IsDefault:          true,
	})

	tests := []struct {
		from, want time.Time
	}{
		// leap-year end-of-month clamp
		{date(2024, time.January, 31), date(2024, time.February, 29)},
		{date(2023, time.January, 31), date(2023, time.February, 28)},
		{date(2024, time.March, 31), date(2024, time.April, 30)},
		{date(2024, time.January, 15), date(2024, time.February, 15)},
		{date(2024, time.December, 31), date(2025, time.January, 31)},
	}
	for _, tt := range tests {
		next := p.NextBillingDate(tt.from)
		require.NotNil(t, next)
		assert.Equal(t, tt.want, *next, "from %s", tt.from)
	}
}

func TestNextBillingDate_Years(t *testing.T) {
	p := newPlanWithPrices(t, Price{
		Price:              decimal.NewFromInt(100),
		BillingPeriodValue: 1,
		BillingPeriodUnit:  PeriodYear,
		IsDefault:          true,
	})

	next := p.NextBillingDate(date(2024, time.February, 29))
	require.NotNil(t, next)
	// 2025 has no Feb 29
	assert.Equal(t, date(2025, time.February, 28), *next)
}

func TestDefaultPrice_FallsBackToFirst(t *testing.T) {
	monthly := Price{Price: decimal.NewFromInt(10), BillingPeriodValue: 1, BillingPeriodUnit: PeriodMonth}
	yearly := Price{Price: decimal.NewFromInt(100), BillingPeriodValue: 1, BillingPeriodUnit: PeriodYear}

	p := newPlanWithPrices(t, monthly, yearly)
	got := p.DefaultPrice()
	require.NotNil(t, got)
	assert.Equal(t, PeriodMonth, got.BillingPeriodUnit)

	yearly.IsDefault = true
	p = newPlanWithPrices(t, monthly, yearly)
	got = p.DefaultPrice()
	require.NotNil(t, got)
	assert.Equal(t, PeriodYear, got.BillingPeriodUnit)
}
