package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type DeleteSubscriptionCommand struct {
	SubscriptionID uint
}

type DeleteSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	invoiceRepo      invoice.Repository
	logger           logger.Interface
}

func NewDeleteSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	invoiceRepo invoice.Repository,
	logger logger.Interface,
) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		invoiceRepo:      invoiceRepo,
		logger:           logger,
	}
}

func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, cmd DeleteSubscriptionCommand) error {
	entity, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "id", cmd.SubscriptionID)
		return apperrors.NewInternalError("failed to get subscription")
	}
	if entity == nil {
		return apperrors.NewNotFoundError("subscription not found")
	}

	invoiceCount, err := uc.invoiceRepo.CountBySubscription(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to count invoices", "error", err, "subscription_id", cmd.SubscriptionID)
		return apperrors.NewInternalError("failed to count invoices")
	}

	if err := entity.EnsureDeletable(invoiceCount); err != nil {
		return err
	}

	if err := uc.subscriptionRepo.Delete(ctx, cmd.SubscriptionID); err != nil {
		return apperrors.NewInternalError("failed to delete subscription")
	}

	uc.logger.Infow("subscription deleted", "id", cmd.SubscriptionID, "number", entity.Number())
	return nil
}
