package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type CancelInvoiceCommand struct {
	InvoiceID uint
}

type CancelInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewCancelInvoiceUseCase(
	invoiceRepo invoice.Repository,
	logger logger.Interface,
) *CancelInvoiceUseCase {
	return &CancelInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (uc *CancelInvoiceUseCase) Execute(ctx context.Context, cmd CancelInvoiceCommand) (*invoice.Invoice, error) {
	entity, err := uc.invoiceRepo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "error", err, "id", cmd.InvoiceID)
		return nil, apperrors.NewInternalError("failed to get invoice")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("invoice not found")
	}

	if err := entity.Cancel(); err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.Update(ctx, entity); err != nil {
		return nil, apperrors.NewInternalError("failed to update invoice")
	}

	uc.logger.Infow("invoice cancelled", "id", entity.ID(), "number", entity.Number())
	return entity, nil
}
