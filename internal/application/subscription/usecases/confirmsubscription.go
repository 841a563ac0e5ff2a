package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/biztime"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type ConfirmSubscriptionCommand struct {
	SubscriptionID uint
}

type ConfirmSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	planRepo         plan.Repository
	logger           logger.Interface
}

func NewConfirmSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *ConfirmSubscriptionUseCase {
	return &ConfirmSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *ConfirmSubscriptionUseCase) Execute(ctx context.Context, cmd ConfirmSubscriptionCommand) (*subscription.Subscription, error) {
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

	now := biztime.NowUTC()
	orderDate := now
	if entity.OrderDate() != nil {
		orderDate = *entity.OrderDate()
	}
	nextInvoiceDate := recurringPlan.NextBillingDate(orderDate)

	if err := entity.Confirm(now, nextInvoiceDate); err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Update(ctx, entity); err != nil {
		return nil, apperrors.NewInternalError("failed to update subscription")
	}

	uc.logger.Infow("subscription confirmed", "id", entity.ID(), "number", entity.Number())
	return entity, nil
}
