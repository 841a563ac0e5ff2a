package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type DeletePlanCommand struct {
	PlanID uint
}

type DeletePlanUseCase struct {
	planRepo         plan.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewDeletePlanUseCase(
	planRepo plan.Repository,
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) error {
	entity, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "id", cmd.PlanID)
		return apperrors.NewInternalError("failed to get plan")
	}
	if entity == nil {
		return apperrors.NewNotFoundError("recurring plan not found")
	}

	// A plan referenced by any subscription stays.
	_, total, err := uc.subscriptionRepo.List(ctx, subscription.ListFilter{RecurringPlanID: cmd.PlanID, Limit: 1})
	if err != nil {
		return apperrors.NewInternalError("failed to check plan usage")
	}
	if total > 0 {
		return apperrors.NewInvalidStateError("cannot delete plan with linked subscriptions")
	}

	if err := uc.planRepo.Delete(ctx, cmd.PlanID); err != nil {
		return apperrors.NewInternalError("failed to delete plan")
	}

	uc.logger.Infow("recurring plan deleted", "id", cmd.PlanID, "name", entity.Name())
	return nil
}
