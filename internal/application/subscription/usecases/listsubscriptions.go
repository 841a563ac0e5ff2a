package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/subscription"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type ListSubscriptionsCommand struct {
	// ContactID filters to one contact's subscriptions; the handler pins it
	// for portal callers. Zero lists across all contacts.
	ContactID  uint
	State      string
	Pagination utils.Pagination
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, cmd ListSubscriptionsCommand) ([]*subscription.Subscription, int64, error) {
	state := subscription.State(cmd.State)
	if cmd.State != "" && !subscription.ValidStates[state] {
		return nil, 0, apperrors.NewValidationError("invalid subscription state: " + cmd.State)
	}

	entities, total, err := uc.subscriptionRepo.List(ctx, subscription.ListFilter{
		ContactID: cmd.ContactID,
		State:     state,
		Offset:    cmd.Pagination.Offset(),
		Limit:     cmd.Pagination.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list subscriptions")
	}

	return entities, total, nil
}
