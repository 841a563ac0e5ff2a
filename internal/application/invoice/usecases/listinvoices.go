package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type ListInvoicesCommand struct {
	SubscriptionID uint
	// ContactID filters to one contact's invoices; the handler pins it for
	// portal callers. Zero lists across all contacts.
	ContactID  uint
	State      string
	Pagination utils.Pagination
}

type ListInvoicesUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewListInvoicesUseCase(
	invoiceRepo invoice.Repository,
	logger logger.Interface,
) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, cmd ListInvoicesCommand) ([]*invoice.Invoice, int64, error) {
	state := invoice.State(cmd.State)
	if cmd.State != "" && !invoice.ValidStates[state] {
		return nil, 0, apperrors.NewValidationError("invalid invoice state: " + cmd.State)
	}

	entities, total, err := uc.invoiceRepo.List(ctx, invoice.ListFilter{
		SubscriptionID: cmd.SubscriptionID,
		ContactID:      cmd.ContactID,
		State:          state,
		Offset:         cmd.Pagination.Offset(),
		Limit:          cmd.Pagination.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list invoices", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list invoices")
	}

	return entities, total, nil
}
