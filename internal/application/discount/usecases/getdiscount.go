package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/discount"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type GetDiscountCommand struct {
	DiscountID uint
}

type GetDiscountUseCase struct {
	discountRepo discount.Repository
	logger       logger.Interface
}

func NewGetDiscountUseCase(
	discountRepo discount.Repository,
	logger logger.Interface,
) *GetDiscountUseCase {
	return &GetDiscountUseCase{
		discountRepo: discountRepo,
		logger:       logger,
	}
}

func (uc *GetDiscountUseCase) Execute(ctx context.Context, cmd GetDiscountCommand) (*discount.Discount, error) {
	entity, err := uc.discountRepo.GetByID(ctx, cmd.DiscountID)
	if err != nil {
		uc.logger.Errorw("failed to get discount", "error", err, "id", cmd.DiscountID)
		return nil, apperrors.NewInternalError("failed to get discount")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("discount not found")
	}

	return entity, nil
}
