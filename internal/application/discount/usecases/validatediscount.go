package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/shared/biztime"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type ValidateDiscountCommand struct {
	Code string
	// ProductID scopes the check to a concrete product; nil skips the scope
	// check (it is then enforced at subscription creation).
	ProductID *uint
}

// ValidateDiscountUseCase runs the full eligibility check without consuming
// usage. The checks run in a fixed order so the caller always learns the
// first failing rule.
type ValidateDiscountUseCase struct {
	discountRepo discount.Repository
	logger       logger.Interface
}

func NewValidateDiscountUseCase(
	discountRepo discount.Repository,
	logger logger.Interface,
) *ValidateDiscountUseCase {
	return &ValidateDiscountUseCase{
		discountRepo: discountRepo,
		logger:       logger,
	}
}

func (uc *ValidateDiscountUseCase) Execute(ctx context.Context, cmd ValidateDiscountCommand) (*discount.Discount, error) {
	if discount.NormalizeCode(cmd.Code) == "" {
		return nil, apperrors.NewValidationError("discount code is required")
	}

	entity, err := uc.discountRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to get discount", "error", err, "code", cmd.Code)
		return nil, apperrors.NewInternalError("failed to get discount")
	}
	if entity == nil {
		return nil, apperrors.NewPolicyViolationError("invalid discount code")
	}

	if err := entity.EnsureUsable(biztime.NowUTC()); err != nil {
		return nil, err
	}
	if err := entity.EnsureScope(cmd.ProductID); err != nil {
		return nil, err
	}

	return entity, nil
}
