package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/errors"
)

func TestGetSubscriptionUseCase_ContactScope(t *testing.T) {
	owned := confirmedSubscription(t, []subscription.Line{staleLine()})
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return owned, nil
		},
	}

	uc := NewGetSubscriptionUseCase(subRepo, &mockLogger{})

	t.Run("unscoped read returns any subscription", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetSubscriptionCommand{SubscriptionID: 3})

		require.NoError(t, err)
		assert.Same(t, owned, result)
	})

	t.Run("owning contact passes", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetSubscriptionCommand{
			SubscriptionID: 3,
			ContactID:      uintPtr(owned.ContactID()),
		})

		require.NoError(t, err)
		assert.Same(t, owned, result)
	})

	t.Run("other contact is denied", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetSubscriptionCommand{
			SubscriptionID: 3,
			ContactID:      uintPtr(99),
		})

		assert.Nil(t, result)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})
}

func TestGetSubscriptionUseCase_NotFound(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return nil, nil
		},
	}

	uc := NewGetSubscriptionUseCase(subRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetSubscriptionCommand{SubscriptionID: 99})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListSubscriptionsUseCase_ContactFilter(t *testing.T) {
	var gotFilter subscription.ListFilter
	subRepo := &mockSubscriptionRepository{
		ListFunc: func(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	uc := NewListSubscriptionsUseCase(subRepo, &mockLogger{})

	_, _, err := uc.Execute(context.Background(), ListSubscriptionsCommand{ContactID: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(7), gotFilter.ContactID)
}
