package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/numbering"
	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/biztime"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type UpsellSubscriptionCommand struct {
	SubscriptionID  uint
	RecurringPlanID *uint
	Lines           []LineInput
}

// UpsellSubscriptionUseCase creates a fresh CONFIRMED subscription with newly
// supplied lines, priced against the current catalog. The original
// subscription is not modified.
type UpsellSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	planRepo         plan.Repository
	lines            lineBuilder
	numberPrefix     string
	logger           logger.Interface
}

func NewUpsellSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	planRepo plan.Repository,
	productRepo catalog.ProductRepository,
	taxRepo catalog.TaxRepository,
	numberPrefix string,
	logger logger.Interface,
) *UpsellSubscriptionUseCase {
	return &UpsellSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		lines:            lineBuilder{productRepo: productRepo, taxRepo: taxRepo},
		numberPrefix:     numberPrefix,
		logger:           logger,
	}
}

func (uc *UpsellSubscriptionUseCase) Execute(ctx context.Context, cmd UpsellSubscriptionCommand) (*subscription.Subscription, error) {
	if len(cmd.Lines) == 0 {
		return nil, apperrors.NewValidationError("upsell requires at least one order line")
	}

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

	planID := original.RecurringPlanID()
	if cmd.RecurringPlanID != nil {
		planID = *cmd.RecurringPlanID
	}
	recurringPlan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", planID)
		return nil, apperrors.NewInternalError("failed to get plan")
	}
	if recurringPlan == nil {
		return nil, apperrors.NewNotFoundError("recurring plan not found")
	}

	lines, err := uc.lines.build(ctx, cmd.Lines, nil)
	if err != nil {
		return nil, err
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
			RecurringPlanID: planID,
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
			uc.logger.Infow("subscription upsold", "original_id", original.ID(), "new_id", entity.ID(), "number", entity.Number())
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
