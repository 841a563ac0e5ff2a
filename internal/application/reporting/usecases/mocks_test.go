package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type mockContactRepository struct {
	catalog.ContactRepository
	CountFunc func(ctx context.Context) (int64, error)
}

func (m *mockContactRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockProductRepository struct {
	catalog.ProductRepository
	CountFunc func(ctx context.Context) (int64, error)
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockPlanRepository struct {
	plan.Repository
	CountFunc func(ctx context.Context) (int64, error)
}

func (m *mockPlanRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockSubscriptionRepository struct {
	subscription.Repository
	CountByStateFunc func(ctx context.Context) (map[subscription.State]int64, error)
}

func (m *mockSubscriptionRepository) CountByState(ctx context.Context) (map[subscription.State]int64, error) {
	if m.CountByStateFunc != nil {
		return m.CountByStateFunc(ctx)
	}
	return nil, nil
}

type mockInvoiceRepository struct {
	invoice.Repository
	CountByStateFunc func(ctx context.Context) (map[invoice.State]int64, error)
	PaidRevenueFunc  func(ctx context.Context) (decimal.Decimal, error)
}

func (m *mockInvoiceRepository) CountByState(ctx context.Context) (map[invoice.State]int64, error) {
	if m.CountByStateFunc != nil {
		return m.CountByStateFunc(ctx)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) PaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	if m.PaidRevenueFunc != nil {
		return m.PaidRevenueFunc(ctx)
	}
	return decimal.Zero, nil
}

type mockReportCache struct {
	GetFunc        func(ctx context.Context, name string) ([]byte, error)
	SetFunc        func(ctx context.Context, name string, payload []byte, ttl time.Duration) error
	InvalidateFunc func(ctx context.Context, name string) error
}

func (m *mockReportCache) Get(ctx context.Context, name string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockReportCache) Set(ctx context.Context, name string, payload []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, name, payload, ttl)
	}
	return nil
}

func (m *mockReportCache) Invalidate(ctx context.Context, name string) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, name)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
