package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type PauseSubscriptionCommand struct {
	SubscriptionID uint
}

type PauseSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	planRepo         plan.Repository
	logger           logger.Interface
}

func NewPauseSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *PauseSubscriptionUseCase {
	return &PauseSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *PauseSubscriptionUseCase) Execute(ctx context.Context, cmd PauseSubscriptionCommand) (*subscription.Subscription, error) {
	entity, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to get subscription")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	recurringPlan, err := uc.planRepo.GetByID(ctx, entity.RecurringPlanID())
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", entity.RecurringPlanID())
		return nil, apperrors.NewInternalError("failed to get plan")
	}
	if recurringPlan == nil {
		return nil, apperrors.NewNotFoundError("recurring plan not found")
	}
	if !recurringPlan.Pausable() {
		return nil, apperrors.NewPolicyViolationError("plan does not allow pausing")
	}

	if err := entity.Pause(); err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Update(ctx, entity); err != nil {
		return nil, apperrors.NewInternalError("failed to update subscription")
	}

	uc.logger.Infow("subscription paused", "id", entity.ID(), "number", entity.Number())
	return entity, nil
}
