package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/infrastructure/cache"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

const summaryCacheKey = "summary"

// Summary is the back-office dashboard payload.
type Summary struct {
	Counts               SummaryCounts    `json:"counts"`
	SubscriptionsByState map[string]int64 `json:"subscriptionsByState"`
	InvoicesByState      map[string]int64 `json:"invoicesByState"`
	Revenue              SummaryRevenue   `json:"revenue"`
	GeneratedAt          time.Time        `json:"generatedAt"`
}

type SummaryCounts struct {
	Contacts       int64 `json:"contacts"`
	Products       int64 `json:"products"`
	RecurringPlans int64 `json:"recurringPlans"`
}

type SummaryRevenue struct {
	Paid string `json:"paid"`
}

type GetSummaryUseCase struct {
	contactRepo      catalog.ContactRepository
	productRepo      catalog.ProductRepository
	planRepo         plan.Repository
	subscriptionRepo subscription.Repository
	invoiceRepo      invoice.Repository
	reportCache      cache.ReportCache
	cacheTTL         time.Duration
	logger           logger.Interface
}

func NewGetSummaryUseCase(
	contactRepo catalog.ContactRepository,
	productRepo catalog.ProductRepository,
	planRepo plan.Repository,
	subscriptionRepo subscription.Repository,
	invoiceRepo invoice.Repository,
	reportCache cache.ReportCache,
	cacheTTL time.Duration,
	logger logger.Interface,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		contactRepo:      contactRepo,
		productRepo:      productRepo,
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		invoiceRepo:      invoiceRepo,
		reportCache:      reportCache,
		cacheTTL:         cacheTTL,
		logger:           logger,
	}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*Summary, error) {
	if uc.reportCache != nil {
		cached, err := uc.reportCache.Get(ctx, summaryCacheKey)
		if err != nil {
			// A broken cache must not take the report down.
			uc.logger.Warnw("report cache read failed", "error", err)
		} else if cached != nil {
			var summary Summary
			if err := json.Unmarshal(cached, &summary); err == nil {
				return &summary, nil
			}
			uc.logger.Warnw("discarding malformed cached summary", "error", err)
		}
	}

	summary, err := uc.build(ctx)
	if err != nil {
		return nil, err
	}

	if uc.reportCache != nil {
		payload, err := json.Marshal(summary)
		if err == nil {
			if err := uc.reportCache.Set(ctx, summaryCacheKey, payload, uc.cacheTTL); err != nil {
				uc.logger.Warnw("report cache write failed", "error", err)
			}
		}
	}

	return summary, nil
}

func (uc *GetSummaryUseCase) build(ctx context.Context) (*Summary, error) {
	contacts, err := uc.contactRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count contacts", "error", err)
		return nil, apperrors.NewInternalError("failed to build summary")
	}

	products, err := uc.productRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count products", "error", err)
		return nil, apperrors.NewInternalError("failed to build summary")
	}

	plans, err := uc.planRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count plans", "error", err)
		return nil, apperrors.NewInternalError("failed to build summary")
	}

	subsByState, err := uc.subscriptionRepo.CountByState(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count subscriptions by state", "error", err)
		return nil, apperrors.NewInternalError("failed to build summary")
	}

	invoicesByState, err := uc.invoiceRepo.CountByState(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count invoices by state", "error", err)
		return nil, apperrors.NewInternalError("failed to build summary")
	}

	paidRevenue, err := uc.invoiceRepo.PaidRevenue(ctx)
	if err != nil {
		uc.logger.Errorw("failed to sum paid revenue", "error", err)
		return nil, apperrors.NewInternalError("failed to build summary")
	}

	// Absent states show up as explicit zeroes so the dashboard never has
	// to guess which states exist.
	subs := make(map[string]int64, len(subscription.AllStates()))
	for _, state := range subscription.AllStates() {
		subs[string(state)] = subsByState[state]
	}
	invoices := make(map[string]int64, len(invoice.AllStates()))
	for _, state := range invoice.AllStates() {
		invoices[string(state)] = invoicesByState[state]
	}

	return &Summary{
		Counts: SummaryCounts{
			Contacts:       contacts,
			Products:       products,
			RecurringPlans: plans,
		},
		SubscriptionsByState: subs,
		InvoicesByState:      invoices,
		Revenue: SummaryRevenue{
			Paid: paidRevenue.StringFixed(2),
		},
		GeneratedAt: time.Now().UTC(),
	}, nil
}
