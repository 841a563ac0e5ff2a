package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/subscription"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type GetSubscriptionCommand struct {
	SubscriptionID uint
	// ContactID limits the read to one contact's subscriptions; the handler
	// sets it for portal callers. Nil reads across all contacts.
	ContactID *uint
}

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, cmd GetSubscriptionCommand) (*subscription.Subscription, error) {
	entity, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to get subscription")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	if cmd.ContactID != nil && entity.ContactID() != *cmd.ContactID {
		return nil, apperrors.NewForbiddenError("access denied")
	}

	return entity, nil
}
