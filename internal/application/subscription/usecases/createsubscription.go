package usecases

import (
	"context"
	"time"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/domain/numbering"
	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/biztime"
	"github.com/subflow-io/subflow/internal/shared/db"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	ContactID           uint
	RecurringPlanID     uint
	ExpirationDate      *time.Time
	QuotationTemplateID *uint
	OrderDate           *time.Time
	PaymentTermID       *uint
	SalespersonID       *uint
	Lines               []LineInput
	DiscountCode        string
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	contactRepo      catalog.ContactRepository
	planRepo         plan.Repository
	discountRepo     discount.Repository
	lines            lineBuilder
	txManager        *db.TransactionManager
	numberPrefix     string
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	contactRepo catalog.ContactRepository,
	planRepo plan.Repository,
	discountRepo discount.Repository,
	productRepo catalog.ProductRepository,
	taxRepo catalog.TaxRepository,
	txManager *db.TransactionManager,
	numberPrefix string,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		contactRepo:      contactRepo,
		planRepo:         planRepo,
		discountRepo:     discountRepo,
		lines:            lineBuilder{productRepo: productRepo, taxRepo: taxRepo},
		txManager:        txManager,
		numberPrefix:     numberPrefix,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*subscription.Subscription, error) {
	contact, err := uc.contactRepo.GetByID(ctx, cmd.ContactID)
	if err != nil {
		uc.logger.Errorw("failed to get contact", "error", err, "contact_id", cmd.ContactID)
		return nil, apperrors.NewInternalError("failed to get contact")
	}
	if contact == nil {
		return nil, apperrors.NewNotFoundError("contact not found")
	}

	recurringPlan, err := uc.planRepo.GetByID(ctx, cmd.RecurringPlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.RecurringPlanID)
		return nil, apperrors.NewInternalError("failed to get plan")
	}
	if recurringPlan == nil {
		return nil, apperrors.NewNotFoundError("recurring plan not found")
	}

	var disc *discount.Discount
	if cmd.DiscountCode != "" {
		disc, err = uc.discountRepo.GetByCode(ctx, cmd.DiscountCode)
		if err != nil {
			uc.logger.Errorw("failed to get discount", "error", err, "code", cmd.DiscountCode)
			return nil, apperrors.NewInternalError("failed to get discount")
		}
		if disc == nil {
			return nil, apperrors.NewPolicyViolationError("invalid discount code")
		}
		if err := disc.EnsureUsable(biztime.NowUTC()); err != nil {
			return nil, err
		}
	}

	lines, err := uc.lines.build(ctx, cmd.Lines, disc)
	if err != nil {
		return nil, err
	}

	// Number allocation races with concurrent creates; a duplicate-key
	// failure rolls the transaction back and the loop re-reads the highest
	// number.
	var created *subscription.Subscription
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		highest, err := uc.subscriptionRepo.HighestNumber(ctx, uc.numberPrefix)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to allocate subscription number")
		}
		number := numbering.Next(highest, uc.numberPrefix)

		entity, err := subscription.NewSubscription(subscription.NewParams{
			Number:              number,
			ContactID:           cmd.ContactID,
			RecurringPlanID:     cmd.RecurringPlanID,
			ExpirationDate:      cmd.ExpirationDate,
			QuotationTemplateID: cmd.QuotationTemplateID,
			OrderDate:           cmd.OrderDate,
			PaymentTermID:       cmd.PaymentTermID,
			SalespersonID:       cmd.SalespersonID,
			Lines:               lines,
		})
		if err != nil {
			return nil, err
		}

		err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			if disc != nil {
				reserved, err := uc.discountRepo.ReserveUsage(txCtx, disc.ID())
				if err != nil {
					return err
				}
				if !reserved {
					return apperrors.NewPolicyViolationError("discount usage limit reached")
				}
			}
			return uc.subscriptionRepo.Create(txCtx, entity)
		})
		if err == nil {
			created = entity
			break
		}
		if apperrors.IsDuplicateError(err) {
			uc.logger.Warnw("subscription number collision, retrying", "number", number, "attempt", attempt+1)
			continue
		}
		return nil, err
	}
	if created == nil {
		return nil, apperrors.NewInternalError("failed to allocate subscription number after retries")
	}

	uc.logger.Infow("subscription created", "id", created.ID(), "number", created.Number(), "contact_id", cmd.ContactID)
	return created, nil
}
