package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type GetInvoiceCommand struct {
	InvoiceID uint
	// ContactID limits the read to one contact's invoices; the handler sets
	// it for portal callers. Nil reads across all contacts.
	ContactID *uint
}

type GetInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewGetInvoiceUseCase(
	invoiceRepo invoice.Repository,
	logger logger.Interface,
) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (uc *GetInvoiceUseCase) Execute(ctx context.Context, cmd GetInvoiceCommand) (*invoice.Invoice, error) {
	entity, err := uc.invoiceRepo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "error", err, "id", cmd.InvoiceID)
		return nil, apperrors.NewInternalError("failed to get invoice")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("invoice not found")
	}

	if cmd.ContactID != nil && entity.ContactID() != *cmd.ContactID {
		return nil, apperrors.NewForbiddenError("access denied")
	}

	return entity, nil
}
