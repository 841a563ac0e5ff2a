package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type CloseSubscriptionCommand struct {
	SubscriptionID uint
}

type CloseSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	planRepo         plan.Repository
	logger           logger.Interface
}

func NewCloseSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *CloseSubscriptionUseCase {
	return &CloseSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *CloseSubscriptionUseCase) Execute(ctx context.Context, cmd CloseSubscriptionCommand) (*subscription.Subscription, error) {
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
	if !recurringPlan.Closable() {
		return nil, apperrors.NewPolicyViolationError("plan does not allow closing")
	}

	if err := entity.Close(); err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Update(ctx, entity); err != nil {
		return nil, apperrors.NewInternalError("failed to update subscription")
	}

	uc.logger.Infow("subscription closed", "id", entity.ID(), "number", entity.Number())
	return entity, nil
}
