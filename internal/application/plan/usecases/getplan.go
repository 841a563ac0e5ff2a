package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/plan"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type GetPlanCommand struct {
	PlanID uint
}

type GetPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetPlanUseCase(
	planRepo plan.Repository,
	logger logger.Interface,
) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, cmd GetPlanCommand) (*plan.RecurringPlan, error) {
	entity, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "id", cmd.PlanID)
		return nil, apperrors.NewInternalError("failed to get plan")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("recurring plan not found")
	}

	return entity, nil
}
