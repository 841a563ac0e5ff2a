package usecases

import (
	"context"
	"time"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type PayInvoiceCommand struct {
	InvoiceID     uint
	PaymentMethod *invoice.PaymentMethod
	PaymentDate   *time.Time
}

type PayInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewPayInvoiceUseCase(
	invoiceRepo invoice.Repository,
	logger logger.Interface,
) *PayInvoiceUseCase {
	return &PayInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (uc *PayInvoiceUseCase) Execute(ctx context.Context, cmd PayInvoiceCommand) (*invoice.Invoice, error) {
	entity, err := uc.invoiceRepo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "error", err, "id", cmd.InvoiceID)
		return nil, apperrors.NewInternalError("failed to get invoice")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("invoice not found")
	}

	if err := entity.MarkPaid(cmd.PaymentMethod, cmd.PaymentDate); err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.Update(ctx, entity); err != nil {
		return nil, apperrors.NewInternalError("failed to update invoice")
	}

	uc.logger.Infow("invoice paid", "id", entity.ID(), "number", entity.Number())
	return entity, nil
}
