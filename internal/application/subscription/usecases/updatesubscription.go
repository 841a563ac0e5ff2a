package usecases

import (
	"context"
	"time"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/db"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type UpdateSubscriptionCommand struct {
	SubscriptionID      uint
	ContactID           *uint
	RecurringPlanID     *uint
	ExpirationDate      **time.Time
	QuotationTemplateID **uint
	OrderDate           **time.Time
	PaymentTermID       **uint
	SalespersonID       **uint
	// Lines, when non-nil, replaces the whole line collection. Amounts are
	// recomputed from the current catalog.
	Lines *[]LineInput
}

type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	contactRepo      catalog.ContactRepository
	lines            lineBuilder
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	contactRepo catalog.ContactRepository,
	productRepo catalog.ProductRepository,
	taxRepo catalog.TaxRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		contactRepo:      contactRepo,
		lines:            lineBuilder{productRepo: productRepo, taxRepo: taxRepo},
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*subscription.Subscription, error) {
	entity, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to get subscription")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	if cmd.ContactID != nil {
		contact, err := uc.contactRepo.GetByID(ctx, *cmd.ContactID)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to get contact")
		}
		if contact == nil {
			return nil, apperrors.NewNotFoundError("contact not found")
		}
	}

	var newLines []subscription.Line
	if cmd.Lines != nil {
		newLines, err = uc.lines.build(ctx, *cmd.Lines, nil)
		if err != nil {
			return nil, err
		}
		if err := entity.ReplaceLines(newLines); err != nil {
			return nil, err
		}
	}

	entity.Update(subscription.UpdateParams{
		ContactID:           cmd.ContactID,
		RecurringPlanID:     cmd.RecurringPlanID,
		ExpirationDate:      cmd.ExpirationDate,
		QuotationTemplateID: cmd.QuotationTemplateID,
		OrderDate:           cmd.OrderDate,
		PaymentTermID:       cmd.PaymentTermID,
		SalespersonID:       cmd.SalespersonID,
	})

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.subscriptionRepo.Update(txCtx, entity); err != nil {
			return err
		}
		if cmd.Lines != nil {
			return uc.subscriptionRepo.ReplaceLines(txCtx, entity.ID(), newLines)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update subscription")
	}

	// Reload so replaced lines come back with their persisted IDs.
	updated, err := uc.subscriptionRepo.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to reload subscription")
	}

	uc.logger.Infow("subscription updated", "id", entity.ID(), "number", entity.Number())
	return updated, nil
}
