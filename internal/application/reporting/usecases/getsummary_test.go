package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/domain/subscription"
)

func summaryUseCase(cache *mockReportCache, calls *int) *GetSummaryUseCase {
	contactRepo := &mockContactRepository{
		CountFunc: func(ctx context.Context) (int64, error) {
			if calls != nil {
				*calls++
			}
			return 12, nil
		},
	}
	productRepo := &mockProductRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 4, nil },
	}
	planRepo := &mockPlanRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 2, nil },
	}
	subRepo := &mockSubscriptionRepository{
		CountByStateFunc: func(ctx context.Context) (map[subscription.State]int64, error) {
			return map[subscription.State]int64{
				subscription.StateConfirmed: 7,
				subscription.StateDraft:     1,
			}, nil
		},
	}
	invRepo := &mockInvoiceRepository{
		CountByStateFunc: func(ctx context.Context) (map[invoice.State]int64, error) {
			return map[invoice.State]int64{
				invoice.StatePaid: 5,
			}, nil
		},
		PaidRevenueFunc: func(ctx context.Context) (decimal.Decimal, error) {
			return decimal.RequireFromString("1234.5"), nil
		},
	}

	if cache == nil {
		// An untyped nil so the use case takes the cacheless path.
		return NewGetSummaryUseCase(contactRepo, productRepo, planRepo, subRepo, invRepo, nil, 30*time.Second, &mockLogger{})
	}
	return NewGetSummaryUseCase(contactRepo, productRepo, planRepo, subRepo, invRepo, cache, 30*time.Second, &mockLogger{})
}

func TestGetSummaryUseCase_BuildsSummary(t *testing.T) {
	uc := summaryUseCase(nil, nil)

	summary, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, int64(12), summary.Counts.Contacts)
	assert.Equal(t, int64(4), summary.Counts.Products)
	assert.Equal(t, int64(2), summary.Counts.RecurringPlans)
	assert.Equal(t, "1234.50", summary.Revenue.Paid)
	assert.False(t, summary.GeneratedAt.IsZero())

	// Every lifecycle state appears, absent ones as explicit zeroes.
	assert.Len(t, summary.SubscriptionsByState, len(subscription.AllStates()))
	assert.Equal(t, int64(7), summary.SubscriptionsByState[string(subscription.StateConfirmed)])
	assert.Equal(t, int64(0), summary.SubscriptionsByState[string(subscription.StatePaused)])
	assert.Equal(t, int64(0), summary.SubscriptionsByState[string(subscription.StateChurned)])

	assert.Len(t, summary.InvoicesByState, len(invoice.AllStates()))
	assert.Equal(t, int64(5), summary.InvoicesByState[string(invoice.StatePaid)])
	assert.Equal(t, int64(0), summary.InvoicesByState[string(invoice.StateCancelled)])
}

func TestGetSummaryUseCase_CacheHitSkipsRepositories(t *testing.T) {
	cached := &Summary{
		Counts:               SummaryCounts{Contacts: 99},
		SubscriptionsByState: map[string]int64{string(subscription.StateConfirmed): 1},
		InvoicesByState:      map[string]int64{string(invoice.StatePaid): 1},
		Revenue:              SummaryRevenue{Paid: "10.00"},
		GeneratedAt:          time.Now().UTC(),
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	calls := 0
	cache := &mockReportCache{
		GetFunc: func(ctx context.Context, name string) ([]byte, error) {
			assert.Equal(t, "summary", name)
			return payload, nil
		},
	}
	uc := summaryUseCase(cache, &calls)

	summary, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(99), summary.Counts.Contacts)
	assert.Zero(t, calls, "a cache hit must not rebuild the summary")
}

func TestGetSummaryUseCase_CacheFailureDegradesGracefully(t *testing.T) {
	setCalled := false
	cache := &mockReportCache{
		GetFunc: func(ctx context.Context, name string) ([]byte, error) {
			return nil, errors.New("redis: connection refused")
		},
		SetFunc: func(ctx context.Context, name string, payload []byte, ttl time.Duration) error {
			setCalled = true
			assert.Equal(t, 30*time.Second, ttl)
			return errors.New("redis: connection refused")
		},
	}
	uc := summaryUseCase(cache, nil)

	summary, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.Counts.Contacts)
	assert.True(t, setCalled)
}

func TestGetSummaryUseCase_MalformedCacheEntryRebuilt(t *testing.T) {
	cache := &mockReportCache{
		GetFunc: func(ctx context.Context, name string) ([]byte, error) {
			return []byte("{not json"), nil
		},
	}
	uc := summaryUseCase(cache, nil)

	summary, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.Counts.Contacts)
}

func TestGetSummaryUseCase_MissRebuildsAndCaches(t *testing.T) {
	var stored []byte
	cache := &mockReportCache{
		SetFunc: func(ctx context.Context, name string, payload []byte, ttl time.Duration) error {
			stored = payload
			return nil
		},
	}
	uc := summaryUseCase(cache, nil)

	summary, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.NotNil(t, stored)

	var roundTripped Summary
	require.NoError(t, json.Unmarshal(stored, &roundTripped))
	assert.Equal(t, summary.Counts, roundTripped.Counts)
	assert.Equal(t, summary.Revenue, roundTripped.Revenue)
}
