package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/errors"
)

func confirmedSubscription(t *testing.T, lines []subscription.Line) *subscription.Subscription {
	t.Helper()
	orderDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	sub, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:              3,
		Number:          "Sub003",
		ContactID:       1,
		RecurringPlanID: 10,
		State:           subscription.StateConfirmed,
		OrderDate:       &orderDate,
		StartDate:       &orderDate,
		PaymentTermID:   uintPtr(4),
		Lines:           lines,
		CreatedAt:       orderDate,
		UpdatedAt:       orderDate,
	})
	require.NoError(t, err)
	return sub
}

func staleLine() subscription.Line {
	// Amount deliberately does not match a fresh computation from the
	// current catalog; renewal must carry it over untouched.
	return subscription.Line{
		ID:              21,
		ProductID:       7,
		Quantity:        dec("2"),
		UnitPrice:       dec("80.00"),
		DiscountPercent: decPtr("10"),
		TaxPercent:      decPtr("20"),
		Amount:          dec("172.80"),
	}
}

func TestRenewSubscriptionUseCase_Success(t *testing.T) {
	original := confirmedSubscription(t, []subscription.Line{staleLine()})

	var created *subscription.Subscription
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return original, nil
		},
		HighestNumberFunc: func(ctx context.Context, prefix string) (string, error) {
			return "Sub007", nil
		},
		CreateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			created = s
			return s.SetID(8)
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*plan.RecurringPlan, error) {
			return testPlan(true), nil
		},
	}

	uc := NewRenewSubscriptionUseCase(subRepo, planRepo, "Sub", &mockLogger{})

	result, err := uc.Execute(context.Background(), RenewSubscriptionCommand{SubscriptionID: 3})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Same(t, created, result)
	assert.Equal(t, "Sub008", result.Number())
	assert.Equal(t, subscription.StateConfirmed, result.State())
	assert.Equal(t, original.ContactID(), result.ContactID())
	assert.Equal(t, original.RecurringPlanID(), result.RecurringPlanID())
	assert.Equal(t, original.PaymentTermID(), result.PaymentTermID())
	require.NotNil(t, result.NextInvoiceDate())

	require.Len(t, result.Lines(), 1)
	got := result.Lines()[0]
	want := staleLine()
	assert.Zero(t, got.ID)
	assert.Equal(t, want.ProductID, got.ProductID)
	assert.True(t, got.Quantity.Equal(want.Quantity))
	assert.True(t, got.UnitPrice.Equal(want.UnitPrice))
	assert.True(t, got.Amount.Equal(want.Amount), "renewal must not reprice lines")

	// The original stays untouched.
	assert.Equal(t, uint(3), original.ID())
	assert.Equal(t, "Sub003", original.Number())
}

func TestRenewSubscriptionUseCase_NumberCollisionRetries(t *testing.T) {
	original := confirmedSubscription(t, []subscription.Line{staleLine()})

	attempts := 0
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return original, nil
		},
		HighestNumberFunc: func(ctx context.Context, prefix string) (string, error) {
			if attempts == 0 {
				return "Sub007", nil
			}
			return "Sub008", nil
		},
		CreateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			attempts++
			if attempts == 1 {
				return errors.NewInternalError("Duplicate entry 'Sub008' for key 'subscriptions.uni_subscriptions_number'")
			}
			return s.SetID(9)
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*plan.RecurringPlan, error) {
			return testPlan(true), nil
		},
	}

	uc := NewRenewSubscriptionUseCase(subRepo, planRepo, "Sub", &mockLogger{})

	result, err := uc.Execute(context.Background(), RenewSubscriptionCommand{SubscriptionID: 3})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "Sub009", result.Number())
}

func TestRenewSubscriptionUseCase_PlanNotRenewable(t *testing.T) {
	original := confirmedSubscription(t, []subscription.Line{staleLine()})

	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return original, nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*plan.RecurringPlan, error) {
			return testPlan(false), nil
		},
	}

	uc := NewRenewSubscriptionUseCase(subRepo, planRepo, "Sub", &mockLogger{})

	result, err := uc.Execute(context.Background(), RenewSubscriptionCommand{SubscriptionID: 3})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsPolicyViolationError(err))
}

func TestRenewSubscriptionUseCase_DraftNotRenewable(t *testing.T) {
	draft, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:              3,
		Number:          "Sub003",
		ContactID:       1,
		RecurringPlanID: 10,
		State:           subscription.StateDraft,
		Lines:           []subscription.Line{staleLine()},
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	})
	require.NoError(t, err)

	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return draft, nil
		},
	}

	uc := NewRenewSubscriptionUseCase(subRepo, &mockPlanRepository{}, "Sub", &mockLogger{})

	result, err := uc.Execute(context.Background(), RenewSubscriptionCommand{SubscriptionID: 3})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestRenewSubscriptionUseCase_NotFound(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return nil, nil
		},
	}

	uc := NewRenewSubscriptionUseCase(subRepo, &mockPlanRepository{}, "Sub", &mockLogger{})

	result, err := uc.Execute(context.Background(), RenewSubscriptionCommand{SubscriptionID: 99})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
