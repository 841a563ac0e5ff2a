package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/domain/numbering"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/biztime"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type CreateInvoiceCommand struct {
	SubscriptionID uint
}

// CreateInvoiceUseCase snapshots a subscription's lines into a new draft
// invoice. Later subscription edits never touch the snapshot.
type CreateInvoiceUseCase struct {
	invoiceRepo      invoice.Repository
	subscriptionRepo subscription.Repository
	productRepo      catalog.ProductRepository
	paymentTermRepo  catalog.PaymentTermRepository
	numberPrefix     string
	defaultDueDays   int
	logger           logger.Interface
}

func NewCreateInvoiceUseCase(
	invoiceRepo invoice.Repository,
	subscriptionRepo subscription.Repository,
	productRepo catalog.ProductRepository,
	paymentTermRepo catalog.PaymentTermRepository,
	numberPrefix string,
	defaultDueDays int,
	logger logger.Interface,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo:      invoiceRepo,
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		paymentTermRepo:  paymentTermRepo,
		numberPrefix:     numberPrefix,
		defaultDueDays:   defaultDueDays,
		logger:           logger,
	}
}

func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, cmd CreateInvoiceCommand) (*invoice.Invoice, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to get subscription")
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	if err := sub.EnsureInvoiceable(); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(sub.Lines()))
	for _, l := range sub.Lines() {
		ids = append(ids, l.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to get products", "error", err)
		return nil, apperrors.NewInternalError("failed to get products")
	}

	lines := make([]invoice.Line, 0, len(sub.Lines()))
	for _, l := range sub.Lines() {
		description := ""
		if product, ok := products[l.ProductID]; ok {
			description = product.Name
		}
		lines = append(lines, invoice.Line{
			ProductID:   l.ProductID,
			Description: description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxPercent:  l.TaxPercent,
			Amount:      l.Amount,
		})
	}

	dueDays := uc.defaultDueDays
	if sub.PaymentTermID() != nil {
		term, err := uc.paymentTermRepo.GetByID(ctx, *sub.PaymentTermID())
		if err != nil {
			uc.logger.Errorw("failed to get payment term", "error", err, "id", *sub.PaymentTermID())
			return nil, apperrors.NewInternalError("failed to get payment term")
		}
		if term != nil {
			dueDays = term.DueAfterDays
		}
	}

	invoiceDate := biztime.NowUTC()
	dueDate := invoiceDate.AddDate(0, 0, dueDays)

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		highest, err := uc.invoiceRepo.HighestNumber(ctx, uc.numberPrefix)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to allocate invoice number")
		}
		number := numbering.Next(highest, uc.numberPrefix)

		entity, err := invoice.NewInvoice(invoice.NewParams{
			Number:         number,
			SubscriptionID: sub.ID(),
			ContactID:      sub.ContactID(),
			InvoiceDate:    invoiceDate,
			DueDate:        dueDate,
			Lines:          lines,
		})
		if err != nil {
			return nil, err
		}

		err = uc.invoiceRepo.Create(ctx, entity)
		if err == nil {
			uc.logger.Infow("invoice created", "id", entity.ID(), "number", entity.Number(), "subscription_id", sub.ID())
			return entity, nil
		}
		if apperrors.IsDuplicateError(err) {
			uc.logger.Warnw("invoice number collision, retrying", "number", number, "attempt", attempt+1)
			continue
		}
		return nil, err
	}

	return nil, apperrors.NewInternalError("failed to allocate invoice number after retries")
}
