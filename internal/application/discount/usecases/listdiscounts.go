package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/discount"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type ListDiscountsCommand struct {
	Pagination utils.Pagination
}

type ListDiscountsUseCase struct {
	discountRepo discount.Repository
	logger       logger.Interface
}

func NewListDiscountsUseCase(
	discountRepo discount.Repository,
	logger logger.Interface,
) *ListDiscountsUseCase {
	return &ListDiscountsUseCase{
		discountRepo: discountRepo,
		logger:       logger,
	}
}

func (uc *ListDiscountsUseCase) Execute(ctx context.Context, cmd ListDiscountsCommand) ([]*discount.Discount, int64, error) {
	entities, total, err := uc.discountRepo.List(ctx, cmd.Pagination.Offset(), cmd.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list discounts", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list discounts")
	}

	return entities, total, nil
}
