package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/numbering"
	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/biztime"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type RenewSubscriptionCommand struct {
	SubscriptionID uint
}

// RenewSubscriptionUseCase creates a fresh CONFIRMED subscription carrying
// the original's lines verbatim. The original subscription is not modified.
type RenewSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	planRepo         plan.Repository
	numberPrefix     string
	logger           logger.Interface
}

func NewRenewSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	planRepo plan.Repository,
	numberPrefix string,
	logger logger.Interface,
) *RenewSubscriptionUseCase {
	return &RenewSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		numberPrefix:     numberPrefix,
		logger:           logger,
	}
}

func (uc *RenewSubscriptionUseCase) Execute(ctx context.Context, cmd RenewSubscriptionCommand) (*subscription.Subscription, error) {
	original, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to get subscription")
	}
	if original == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	if err := original.EnsureRenewable(); err != nil {
		return nil, err
	}

	recurringPlan, err := uc.planRepo.GetByID(ctx, original.RecurringPlanID())
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", original.RecurringPlanID())
		return nil, apperrors.NewInternalError("failed to get plan")
	}
	if recurringPlan == nil {
		return nil, apperrors.NewNotFoundError("recurring plan not found")
	}
	if !recurringPlan.Renewable() {
		return nil, apperrors.NewPolicyViolationError("plan does not allow renewal")
	}

	// Stored amounts carry over untouched; renewal never reprices.
	lines := make([]subscription.Line, 0, len(original.Lines()))
	for _, l := range original.Lines() {
		lines = append(lines, l.CopyVerbatim())
	}

	now := biztime.NowUTC()
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		highest, err := uc.subscriptionRepo.HighestNumber(ctx, uc.numberPrefix)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to allocate subscription number")
		}
		number := numbering.Next(highest, uc.numberPrefix)

		orderDate := now
		entity, err := subscription.NewSubscription(subscription.NewParams{
			Number:          number,
			ContactID:       original.ContactID(),
			RecurringPlanID: original.RecurringPlanID(),
			OrderDate:       &orderDate,
			PaymentTermID:   original.PaymentTermID(),
			SalespersonID:   original.SalespersonID(),
			Lines:           lines,
		})
		if err != nil {
			return nil, err
		}
		if err := entity.Confirm(now, recurringPlan.NextBillingDate(now)); err != nil {
			return nil, err
		}

		err = uc.subscriptionRepo.Create(ctx, entity)
		if err == nil {
			uc.logger.Infow("subscription renewed", "original_id", original.ID(), "new_id", entity.ID(), "number", entity.Number())
			return entity, nil
		}
		if apperrors.IsDuplicateError(err) {
			uc.logger.Warnw("subscription number collision, retrying", "number", number, "attempt", attempt+1)
			continue
		}
		return nil, err
	}

	return nil, apperrors.NewInternalError("failed to allocate subscription number after retries")
}
