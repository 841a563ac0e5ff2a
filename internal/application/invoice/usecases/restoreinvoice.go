package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type RestoreInvoiceCommand struct {
	InvoiceID uint
}

type RestoreInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewRestoreInvoiceUseCase(
	invoiceRepo invoice.Repository,
	logger logger.Interface,
) *RestoreInvoiceUseCase {
	return &RestoreInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (uc *RestoreInvoiceUseCase) Execute(ctx context.Context, cmd RestoreInvoiceCommand) (*invoice.Invoice, error) {
	entity, err := uc.invoiceRepo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "error", err, "id", cmd.InvoiceID)
		return nil, apperrors.NewInternalError("failed to get invoice")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("invoice not found")
	}

	if err := entity.RestoreToDraft(); err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.Update(ctx, entity); err != nil {
		return nil, apperrors.NewInternalError("failed to update invoice")
	}

	uc.logger.Infow("invoice restored to draft", "id", entity.ID(), "number", entity.Number())
	return entity, nil
}
