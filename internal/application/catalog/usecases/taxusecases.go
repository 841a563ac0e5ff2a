package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type CreateTaxCommand struct {
	Name    string
	Percent decimal.Decimal
}

type CreateTaxUseCase struct {
	taxRepo catalog.TaxRepository
	logger  logger.Interface
}

func NewCreateTaxUseCase(
	taxRepo catalog.TaxRepository,
	logger logger.Interface,
) *CreateTaxUseCase {
	return &CreateTaxUseCase{taxRepo: taxRepo, logger: logger}
}

func (uc *CreateTaxUseCase) Execute(ctx context.Context, cmd CreateTaxCommand) (*catalog.Tax, error) {
	tax := &catalog.Tax{
		Name:    cmd.Name,
		Percent: cmd.Percent,
	}
	if err := tax.Validate(); err != nil {
		return nil, err
	}

	if err := uc.taxRepo.Create(ctx, tax); err != nil {
		return nil, apperrors.NewInternalError("failed to create tax")
	}

	uc.logger.Infow("tax created", "id", tax.ID, "name", tax.Name)
	return tax, nil
}

type UpdateTaxCommand struct {
	TaxID   uint
	Name    *string
	Percent *decimal.Decimal
}

type UpdateTaxUseCase struct {
	taxRepo catalog.TaxRepository
	logger  logger.Interface
}

func NewUpdateTaxUseCase(
	taxRepo catalog.TaxRepository,
	logger logger.Interface,
) *UpdateTaxUseCase {
	return &UpdateTaxUseCase{taxRepo: taxRepo, logger: logger}
}

func (uc *UpdateTaxUseCase) Execute(ctx context.Context, cmd UpdateTaxCommand) (*catalog.Tax, error) {
	tax, err := uc.taxRepo.GetByID(ctx, cmd.TaxID)
	if err != nil {
		uc.logger.Errorw("failed to get tax", "error", err, "id", cmd.TaxID)
		return nil, apperrors.NewInternalError("failed to get tax")
	}
	if tax == nil {
		return nil, apperrors.NewNotFoundError("tax not found")
	}

	if cmd.Name != nil {
		tax.Name = *cmd.Name
	}
	if cmd.Percent != nil {
		tax.Percent = *cmd.Percent
	}
	if err := tax.Validate(); err != nil {
		return nil, err
	}

	if err := uc.taxRepo.Update(ctx, tax); err != nil {
		return nil, apperrors.NewInternalError("failed to update tax")
	}

	uc.logger.Infow("tax updated", "id", tax.ID, "name", tax.Name)
	return tax, nil
}

type DeleteTaxCommand struct {
	TaxID uint
}

type DeleteTaxUseCase struct {
	taxRepo catalog.TaxRepository
	logger  logger.Interface
}

func NewDeleteTaxUseCase(
	taxRepo catalog.TaxRepository,
	logger logger.Interface,
) *DeleteTaxUseCase {
	return &DeleteTaxUseCase{taxRepo: taxRepo, logger: logger}
}

func (uc *DeleteTaxUseCase) Execute(ctx context.Context, cmd DeleteTaxCommand) error {
	tax, err := uc.taxRepo.GetByID(ctx, cmd.TaxID)
	if err != nil {
		uc.logger.Errorw("failed to get tax", "error", err, "id", cmd.TaxID)
		return apperrors.NewInternalError("failed to get tax")
	}
	if tax == nil {
		return apperrors.NewNotFoundError("tax not found")
	}

	if err := uc.taxRepo.Delete(ctx, cmd.TaxID); err != nil {
		return apperrors.NewInternalError("failed to delete tax")
	}

	uc.logger.Infow("tax deleted", "id", cmd.TaxID)
	return nil
}

type GetTaxCommand struct {
	TaxID uint
}

type GetTaxUseCase struct {
	taxRepo catalog.TaxRepository
	logger  logger.Interface
}

func NewGetTaxUseCase(
	taxRepo catalog.TaxRepository,
	logger logger.Interface,
) *GetTaxUseCase {
	return &GetTaxUseCase{taxRepo: taxRepo, logger: logger}
}

func (uc *GetTaxUseCase) Execute(ctx context.Context, cmd GetTaxCommand) (*catalog.Tax, error) {
	tax, err := uc.taxRepo.GetByID(ctx, cmd.TaxID)
	if err != nil {
		uc.logger.Errorw("failed to get tax", "error", err, "id", cmd.TaxID)
		return nil, apperrors.NewInternalError("failed to get tax")
	}
	if tax == nil {
		return nil, apperrors.NewNotFoundError("tax not found")
	}

	return tax, nil
}

type ListTaxesCommand struct {
	Pagination utils.Pagination
}

type ListTaxesUseCase struct {
	taxRepo catalog.TaxRepository
	logger  logger.Interface
}

func NewListTaxesUseCase(
	taxRepo catalog.TaxRepository,
	logger logger.Interface,
) *ListTaxesUseCase {
	return &ListTaxesUseCase{taxRepo: taxRepo, logger: logger}
}

func (uc *ListTaxesUseCase) Execute(ctx context.Context, cmd ListTaxesCommand) ([]*catalog.Tax, int64, error) {
	taxes, total, err := uc.taxRepo.List(ctx, cmd.Pagination.Offset(), cmd.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list taxes", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list taxes")
	}

	return taxes, total, nil
}
