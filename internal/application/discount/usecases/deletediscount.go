package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/discount"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type DeleteDiscountCommand struct {
	DiscountID uint
}

type DeleteDiscountUseCase struct {
	discountRepo discount.Repository
	logger       logger.Interface
}

func NewDeleteDiscountUseCase(
	discountRepo discount.Repository,
	logger logger.Interface,
) *DeleteDiscountUseCase {
	return &DeleteDiscountUseCase{
		discountRepo: discountRepo,
		logger:       logger,
	}
}

func (uc *DeleteDiscountUseCase) Execute(ctx context.Context, cmd DeleteDiscountCommand) error {
	entity, err := uc.discountRepo.GetByID(ctx, cmd.DiscountID)
	if err != nil {
		uc.logger.Errorw("failed to get discount", "error", err, "id", cmd.DiscountID)
		return apperrors.NewInternalError("failed to get discount")
	}
	if entity == nil {
		return apperrors.NewNotFoundError("discount not found")
	}

	if err := uc.discountRepo.Delete(ctx, cmd.DiscountID); err != nil {
		return apperrors.NewInternalError("failed to delete discount")
	}

	uc.logger.Infow("discount deleted", "id", cmd.DiscountID, "code", entity.Code())
	return nil
}
