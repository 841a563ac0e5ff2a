package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/discount"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type CreateDiscountCommand struct {
	Code       string
	Percent    decimal.Decimal
	IsActive   bool
	StartsAt   *time.Time
	EndsAt     *time.Time
	ProductID  *uint
	LimitUsage bool
	UsageLimit *int
}

type CreateDiscountUseCase struct {
	discountRepo discount.Repository
	logger       logger.Interface
}

func NewCreateDiscountUseCase(
	discountRepo discount.Repository,
	logger logger.Interface,
) *CreateDiscountUseCase {
	return &CreateDiscountUseCase{
		discountRepo: discountRepo,
		logger:       logger,
	}
}

func (uc *CreateDiscountUseCase) Execute(ctx context.Context, cmd CreateDiscountCommand) (*discount.Discount, error) {
	existing, err := uc.discountRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to check discount code", "error", err, "code", cmd.Code)
		return nil, apperrors.NewInternalError("failed to check discount code")
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("discount code already exists")
	}

	entity, err := discount.NewDiscount(discount.NewDiscountParams{
		Code:       cmd.Code,
		Percent:    cmd.Percent,
		IsActive:   cmd.IsActive,
		StartsAt:   cmd.StartsAt,
		EndsAt:     cmd.EndsAt,
		ProductID:  cmd.ProductID,
		LimitUsage: cmd.LimitUsage,
		UsageLimit: cmd.UsageLimit,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.discountRepo.Create(ctx, entity); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewValidationError("discount code already exists")
		}
		return nil, apperrors.NewInternalError("failed to create discount")
	}

	uc.logger.Infow("discount created", "id", entity.ID(), "code", entity.Code())
	return entity, nil
}
