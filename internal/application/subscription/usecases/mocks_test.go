package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

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

type mockPlanRepository struct {
	CreateFunc  func(ctx context.Context, p *plan.RecurringPlan) error
	UpdateFunc  func(ctx context.Context, p *plan.RecurringPlan) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*plan.RecurringPlan, error)
	ListFunc    func(ctx context.Context, offset, limit int) ([]*plan.RecurringPlan, int64, error)
	CountFunc   func(ctx context.Context) (int64, error)
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.RecurringPlan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) Update(ctx context.Context, p *plan.RecurringPlan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*plan.RecurringPlan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) List(ctx context.Context, offset, limit int) ([]*plan.RecurringPlan, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockPlanRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockContactRepository struct {
	CreateFunc      func(ctx context.Context, contact *catalog.Contact) error
	UpdateFunc      func(ctx context.Context, contact *catalog.Contact) error
	DeleteFunc      func(ctx context.Context, id uint) error
	GetByIDFunc     func(ctx context.Context, id uint) (*catalog.Contact, error)
	GetByUserIDFunc func(ctx context.Context, userID uint) (*catalog.Contact, error)
	ListFunc        func(ctx context.Context, offset, limit int) ([]*catalog.Contact, int64, error)
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *mockContactRepository) Create(ctx context.Context, contact *catalog.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	return nil
}

func (m *mockContactRepository) Update(ctx context.Context, contact *catalog.Contact) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, contact)
	}
	return nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id uint) (*catalog.Contact, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockContactRepository) GetByUserID(ctx context.Context, userID uint) (*catalog.Contact, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockContactRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Contact, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockContactRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
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

type mockTaxRepository struct {
	CreateFunc  func(ctx context.Context, tax *catalog.Tax) error
	UpdateFunc  func(ctx context.Context, tax *catalog.Tax) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.Tax, error)
	ListFunc    func(ctx context.Context, offset, limit int) ([]*catalog.Tax, int64, error)
}

func (m *mockTaxRepository) Create(ctx context.Context, tax *catalog.Tax) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tax)
	}
	return nil
}

func (m *mockTaxRepository) Update(ctx context.Context, tax *catalog.Tax) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tax)
	}
	return nil
}

func (m *mockTaxRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTaxRepository) GetByID(ctx context.Context, id uint) (*catalog.Tax, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaxRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Tax, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

type mockDiscountRepository struct {
	CreateFunc       func(ctx context.Context, d *discount.Discount) error
	UpdateFunc       func(ctx context.Context, d *discount.Discount) error
	DeleteFunc       func(ctx context.Context, id uint) error
	GetByIDFunc      func(ctx context.Context, id uint) (*discount.Discount, error)
	GetByCodeFunc    func(ctx context.Context, code string) (*discount.Discount, error)
	ListFunc         func(ctx context.Context, offset, limit int) ([]*discount.Discount, int64, error)
	ReserveUsageFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockDiscountRepository) Create(ctx context.Context, d *discount.Discount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDiscountRepository) Update(ctx context.Context, d *discount.Discount) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDiscountRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDiscountRepository) GetByID(ctx context.Context, id uint) (*discount.Discount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDiscountRepository) GetByCode(ctx context.Context, code string) (*discount.Discount, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockDiscountRepository) List(ctx context.Context, offset, limit int) ([]*discount.Discount, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockDiscountRepository) ReserveUsage(ctx context.Context, id uint) (bool, error) {
	if m.ReserveUsageFunc != nil {
		return m.ReserveUsageFunc(ctx, id)
	}
	return true, nil
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
func intPtr(v int) *int    { return &v }
