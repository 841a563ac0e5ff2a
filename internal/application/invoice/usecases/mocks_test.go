package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type mockInvoiceRepository struct {
	CreateFunc              func(ctx context.Context, inv *invoice.Invoice) error
	UpdateFunc              func(ctx context.Context, inv *invoice.Invoice) error
	GetByIDFunc             func(ctx context.Context, id uint) (*invoice.Invoice, error)
	ListFunc                func(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, int64, error)
	CountBySubscriptionFunc func(ctx context.Context, subscriptionID uint) (int64, error)
	HighestNumberFunc       func(ctx context.Context, prefix string) (string, error)
	CountByStateFunc        func(ctx context.Context) (map[invoice.State]int64, error)
	PaidRevenueFunc         func(ctx context.Context) (decimal.Decimal, error)
}

func (m *mockInvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, inv)
	}
	return nil
}

func (m *mockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inv)
	}
	return nil
}

func (m *mockInvoiceRepository) GetByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockInvoiceRepository) CountBySubscription(ctx context.Context, subscriptionID uint) (int64, error) {
	if m.CountBySubscriptionFunc != nil {
		return m.CountBySubscriptionFunc(ctx, subscriptionID)
	}
	return 0, nil
}

func (m *mockInvoiceRepository) HighestNumber(ctx context.Context, prefix string) (string, error) {
	if m.HighestNumberFunc != nil {
		return m.HighestNumberFunc(ctx, prefix)
	}
	return "", nil
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

type mockSubscriptionRepository struct {
	CreateFunc        func(ctx context.Context, s *subscription.Subscription) error
	UpdateFunc        func(ctx context.Context, s *subscription.Subscription) error
	ReplaceLinesFunc  func(ctx context.Context, subscriptionID uint, lines []subscription.Line) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*subscription.Subscription, error)
	GetByNumberFunc   func(ctx context.Context, number string) (*subscription.Subscription, error)
	ListFunc          func(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error)
	HighestNumberFunc func(ctx context.Context, prefix string) (string, error)
	CountByStateFunc  func(ctx context.Context) (map[subscription.State]int64, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) ReplaceLines(ctx context.Context, subscriptionID uint, lines []subscription.Line) error {
	if m.ReplaceLinesFunc != nil {
		return m.ReplaceLinesFunc(ctx, subscriptionID, lines)
	}
	return nil
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByNumber(ctx context.Context, number string) (*subscription.Subscription, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) List(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockSubscriptionRepository) HighestNumber(ctx context.Context, prefix string) (string, error) {
	if m.HighestNumberFunc != nil {
		return m.HighestNumberFunc(ctx, prefix)
	}
	return "", nil
}

func (m *mockSubscriptionRepository) CountByState(ctx context.Context) (map[subscription.State]int64, error) {
	if m.CountByStateFunc != nil {
		return m.CountByStateFunc(ctx)
	}
	return nil, nil
}

type mockProductRepository struct {
	CreateFunc   func(ctx context.Context, product *catalog.Product) error
	UpdateFunc   func(ctx context.Context, product *catalog.Product) error
	DeleteFunc   func(ctx context.Context, id uint) error
	GetByIDFunc  func(ctx context.Context, id uint) (*catalog.Product, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*catalog.Product, error)
	ListFunc     func(ctx context.Context, offset, limit int) ([]*catalog.Product, int64, error)
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *mockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*catalog.Product, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*catalog.Product{}, nil
}

func (m *mockProductRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockPaymentTermRepository struct {
	CreateFunc  func(ctx context.Context, term *catalog.PaymentTerm) error
	UpdateFunc  func(ctx context.Context, term *catalog.PaymentTerm) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.PaymentTerm, error)
	ListFunc    func(ctx context.Context, offset, limit int) ([]*catalog.PaymentTerm, int64, error)
}

func (m *mockPaymentTermRepository) Create(ctx context.Context, term *catalog.PaymentTerm) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, term)
	}
	return nil
}

func (m *mockPaymentTermRepository) Update(ctx context.Context, term *catalog.PaymentTerm) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, term)
	}
	return nil
}

func (m *mockPaymentTermRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPaymentTermRepository) GetByID(ctx context.Context, id uint) (*catalog.PaymentTerm, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPaymentTermRepository) List(ctx context.Context, offset, limit int) ([]*catalog.PaymentTerm, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
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

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func uintPtr(v uint) *uint { return &v }
