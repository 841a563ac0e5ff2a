package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/plan"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type ListPlansCommand struct {
	Pagination utils.Pagination
}

type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(
	planRepo plan.Repository,
	logger logger.Interface,
) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, cmd ListPlansCommand) ([]*plan.RecurringPlan, int64, error) {
	entities, total, err := uc.planRepo.List(ctx, cmd.Pagination.Offset(), cmd.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list plans")
	}

	return entities, total, nil
}
