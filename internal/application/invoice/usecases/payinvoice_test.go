package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/shared/errors"
)

func invoiceInState(t *testing.T, state invoice.State) *invoice.Invoice {
	t.Helper()
	invoiceDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	inv, err := invoice.Reconstruct(invoice.ReconstructParams{
		ID:             14,
		Number:         "INV014",
		SubscriptionID: 5,
		ContactID:      2,
		InvoiceDate:    invoiceDate,
		DueDate:        invoiceDate.AddDate(0, 0, 30),
		State:          state,
		Lines: []invoice.Line{
			{ID: 41, ProductID: 7, Description: "Basic Hosting", Quantity: dec("1"), UnitPrice: dec("50.00"), Amount: dec("50.00")},
		},
		CreatedAt: invoiceDate,
		UpdatedAt: invoiceDate,
	})
	require.NoError(t, err)
	return inv
}

func TestPayInvoiceUseCase_Success(t *testing.T) {
	inv := invoiceInState(t, invoice.StateConfirmed)

	var updated *invoice.Invoice
	invoiceRepo := &mockInvoiceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*invoice.Invoice, error) {
			return inv, nil
		},
		UpdateFunc: func(ctx context.Context, i *invoice.Invoice) error {
			updated = i
			return nil
		},
	}

	uc := NewPayInvoiceUseCase(invoiceRepo, &mockLogger{})

	method := invoice.PaymentBankTransfer
	paymentDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	result, err := uc.Execute(context.Background(), PayInvoiceCommand{
		InvoiceID:     14,
		PaymentMethod: &method,
		PaymentDate:   &paymentDate,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Same(t, updated, result)
	assert.Equal(t, invoice.StatePaid, result.State())
	require.NotNil(t, result.PaymentMethod())
	assert.Equal(t, invoice.PaymentBankTransfer, *result.PaymentMethod())
	require.NotNil(t, result.PaymentDate())
	assert.True(t, result.PaymentDate().Equal(paymentDate))
}

func TestPayInvoiceUseCase_OnlyConfirmedPayable(t *testing.T) {
	for _, state := range []invoice.State{invoice.StateDraft, invoice.StatePaid, invoice.StateCancelled} {
		t.Run(string(state), func(t *testing.T) {
			inv := invoiceInState(t, state)
			invoiceRepo := &mockInvoiceRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*invoice.Invoice, error) {
					return inv, nil
				},
			}

			uc := NewPayInvoiceUseCase(invoiceRepo, &mockLogger{})

			result, err := uc.Execute(context.Background(), PayInvoiceCommand{InvoiceID: 14})

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidStateError(err))
		})
	}
}

func TestPayInvoiceUseCase_InvalidMethod(t *testing.T) {
	inv := invoiceInState(t, invoice.StateConfirmed)
	invoiceRepo := &mockInvoiceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*invoice.Invoice, error) {
			return inv, nil
		},
	}

	uc := NewPayInvoiceUseCase(invoiceRepo, &mockLogger{})

	method := invoice.PaymentMethod("CRYPTO")
	result, err := uc.Execute(context.Background(), PayInvoiceCommand{
		InvoiceID:     14,
		PaymentMethod: &method,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
