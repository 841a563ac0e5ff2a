package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/discount"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type UpdateDiscountCommand struct {
	DiscountID uint
	Code       *string
	Percent    *decimal.Decimal
	IsActive   *bool
	StartsAt   **time.Time
	EndsAt     **time.Time
	ProductID  **uint
	LimitUsage *bool
	UsageLimit *int
}

type UpdateDiscountUseCase struct {
	discountRepo discount.Repository
	logger       logger.Interface
}

func NewUpdateDiscountUseCase(
	discountRepo discount.Repository,
	logger logger.Interface,
) *UpdateDiscountUseCase {
	return &UpdateDiscountUseCase{
		discountRepo: discountRepo,
		logger:       logger,
	}
}

func (uc *UpdateDiscountUseCase) Execute(ctx context.Context, cmd UpdateDiscountCommand) (*discount.Discount, error) {
	entity, err := uc.discountRepo.GetByID(ctx, cmd.DiscountID)
	if err != nil {
		uc.logger.Errorw("failed to get discount", "error", err, "id", cmd.DiscountID)
		return nil, apperrors.NewInternalError("failed to get discount")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("discount not found")
	}

	if err := entity.Update(discount.UpdateParams{
		Code:       cmd.Code,
		Percent:    cmd.Percent,
		IsActive:   cmd.IsActive,
		StartsAt:   cmd.StartsAt,
		EndsAt:     cmd.EndsAt,
		ProductID:  cmd.ProductID,
		LimitUsage: cmd.LimitUsage,
		UsageLimit: cmd.UsageLimit,
	}); err != nil {
		return nil, err
	}

	if err := uc.discountRepo.Update(ctx, entity); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewValidationError("discount code already exists")
		}
		return nil, apperrors.NewInternalError("failed to update discount")
	}

	uc.logger.Infow("discount updated", "id", entity.ID(), "code", entity.Code())
	return entity, nil
}
