package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/subscription"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type ResumeSubscriptionCommand struct {
	SubscriptionID uint
}

type ResumeSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewResumeSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ResumeSubscriptionUseCase {
	return &ResumeSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ResumeSubscriptionUseCase) Execute(ctx context.Context, cmd ResumeSubscriptionCommand) (*subscription.Subscription, error) {
	entity, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to get subscription")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	if err := entity.Resume(); err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Update(ctx, entity); err != nil {
		return nil, apperrors.NewInternalError("failed to update subscription")
	}

	uc.logger.Infow("subscription resumed", "id", entity.ID(), "number", entity.Number())
	return entity, nil
}
