package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type CreatePaymentTermCommand struct {
	Name         string
	DueAfterDays int
}

type CreatePaymentTermUseCase struct {
	paymentTermRepo catalog.PaymentTermRepository
	logger          logger.Interface
}

func NewCreatePaymentTermUseCase(
	paymentTermRepo catalog.PaymentTermRepository,
	logger logger.Interface,
) *CreatePaymentTermUseCase {
	return &CreatePaymentTermUseCase{paymentTermRepo: paymentTermRepo, logger: logger}
}

func (uc *CreatePaymentTermUseCase) Execute(ctx context.Context, cmd CreatePaymentTermCommand) (*catalog.PaymentTerm, error) {
	term := &catalog.PaymentTerm{
		Name:         cmd.Name,
		DueAfterDays: cmd.DueAfterDays,
	}
	if err := term.Validate(); err != nil {
		return nil, err
	}

	if err := uc.paymentTermRepo.Create(ctx, term); err != nil {
		return nil, apperrors.NewInternalError("failed to create payment term")
	}

	uc.logger.Infow("payment term created", "id", term.ID, "name", term.Name)
	return term, nil
}

type UpdatePaymentTermCommand struct {
	PaymentTermID uint
	Name          *string
	DueAfterDays  *int
}

type UpdatePaymentTermUseCase struct {
	paymentTermRepo catalog.PaymentTermRepository
	logger          logger.Interface
}

func NewUpdatePaymentTermUseCase(
	paymentTermRepo catalog.PaymentTermRepository,
	logger logger.Interface,
) *UpdatePaymentTermUseCase {
	return &UpdatePaymentTermUseCase{paymentTermRepo: paymentTermRepo, logger: logger}
}

func (uc *UpdatePaymentTermUseCase) Execute(ctx context.Context, cmd UpdatePaymentTermCommand) (*catalog.PaymentTerm, error) {
	term, err := uc.paymentTermRepo.GetByID(ctx, cmd.PaymentTermID)
	if err != nil {
		uc.logger.Errorw("failed to get payment term", "error", err, "id", cmd.PaymentTermID)
		return nil, apperrors.NewInternalError("failed to get payment term")
	}
	if term == nil {
		return nil, apperrors.NewNotFoundError("payment term not found")
	}

	if cmd.Name != nil {
		term.Name = *cmd.Name
	}
	if cmd.DueAfterDays != nil {
		term.DueAfterDays = *cmd.DueAfterDays
	}
	if err := term.Validate(); err != nil {
		return nil, err
	}

	if err := uc.paymentTermRepo.Update(ctx, term); err != nil {
		return nil, apperrors.NewInternalError("failed to update payment term")
	}

	uc.logger.Infow("payment term updated", "id", term.ID, "name", term.Name)
	return term, nil
}

type DeletePaymentTermCommand struct {
	PaymentTermID uint
}

type DeletePaymentTermUseCase struct {
	paymentTermRepo catalog.PaymentTermRepository
	logger          logger.Interface
}

func NewDeletePaymentTermUseCase(
	paymentTermRepo catalog.PaymentTermRepository,
	logger logger.Interface,
) *DeletePaymentTermUseCase {
	return &DeletePaymentTermUseCase{paymentTermRepo: paymentTermRepo, logger: logger}
}

func (uc *DeletePaymentTermUseCase) Execute(ctx context.Context, cmd DeletePaymentTermCommand) error {
	term, err := uc.paymentTermRepo.GetByID(ctx, cmd.PaymentTermID)
	if err != nil {
		uc.logger.Errorw("failed to get payment term", "error", err, "id", cmd.PaymentTermID)
		return apperrors.NewInternalError("failed to get payment term")
	}
	if term == nil {
		return apperrors.NewNotFoundError("payment term not found")
	}

	if err := uc.paymentTermRepo.Delete(ctx, cmd.PaymentTermID); err != nil {
		return apperrors.NewInternalError("failed to delete payment term")
	}

	uc.logger.Infow("payment term deleted", "id", cmd.PaymentTermID)
	return nil
}

type GetPaymentTermCommand struct {
	PaymentTermID uint
}

type GetPaymentTermUseCase struct {
	paymentTermRepo catalog.PaymentTermRepository
	logger          logger.Interface
}

func NewGetPaymentTermUseCase(
	paymentTermRepo catalog.PaymentTermRepository,
	logger logger.Interface,
) *GetPaymentTermUseCase {
	return &GetPaymentTermUseCase{paymentTermRepo: paymentTermRepo, logger: logger}
}

func (uc *GetPaymentTermUseCase) Execute(ctx context.Context, cmd GetPaymentTermCommand) (*catalog.PaymentTerm, error) {
	term, err := uc.paymentTermRepo.GetByID(ctx, cmd.PaymentTermID)
	if err != nil {
		uc.logger.Errorw("failed to get payment term", "error", err, "id", cmd.PaymentTermID)
		return nil, apperrors.NewInternalError("failed to get payment term")
	}
	if term == nil {
		return nil, apperrors.NewNotFoundError("payment term not found")
	}

	return term, nil
}

type ListPaymentTermsCommand struct {
	Pagination utils.Pagination
}

type ListPaymentTermsUseCase struct {
	paymentTermRepo catalog.PaymentTermRepository
	logger          logger.Interface
}

func NewListPaymentTermsUseCase(
	paymentTermRepo catalog.PaymentTermRepository,
	logger logger.Interface,
) *ListPaymentTermsUseCase {
	return &ListPaymentTermsUseCase{paymentTermRepo: paymentTermRepo, logger: logger}
}

func (uc *ListPaymentTermsUseCase) Execute(ctx context.Context, cmd ListPaymentTermsCommand) ([]*catalog.PaymentTerm, int64, error) {
	terms, total, err := uc.paymentTermRepo.List(ctx, cmd.Pagination.Offset(), cmd.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list payment terms", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list payment terms")
	}

	return terms, total, nil
}
