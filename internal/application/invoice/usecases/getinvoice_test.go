package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/shared/errors"
)

func TestGetInvoiceUseCase_ContactScope(t *testing.T) {
	owned := invoiceInState(t, invoice.StateConfirmed)
	invoiceRepo := &mockInvoiceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*invoice.Invoice, error) {
			return owned, nil
		},
	}

	uc := NewGetInvoiceUseCase(invoiceRepo, &mockLogger{})

	t.Run("unscoped read returns any invoice", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetInvoiceCommand{InvoiceID: 14})

		require.NoError(t, err)
		assert.Same(t, owned, result)
	})

	t.Run("owning contact passes", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetInvoiceCommand{
			InvoiceID: 14,
			ContactID: uintPtr(owned.ContactID()),
		})

		require.NoError(t, err)
		assert.Same(t, owned, result)
	})

	t.Run("other contact is denied", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetInvoiceCommand{
			InvoiceID: 14,
			ContactID: uintPtr(99),
		})

		assert.Nil(t, result)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})
}

func TestListInvoicesUseCase_ContactFilter(t *testing.T) {
	var gotFilter invoice.ListFilter
	invoiceRepo := &mockInvoiceRepository{
		ListFunc: func(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	uc := NewListInvoicesUseCase(invoiceRepo, &mockLogger{})

	_, _, err := uc.Execute(context.Background(), ListInvoicesCommand{SubscriptionID: 5, ContactID: 2})

	require.NoError(t, err)
	assert.Equal(t, uint(5), gotFilter.SubscriptionID)
	assert.Equal(t, uint(2), gotFilter.ContactID)
}
