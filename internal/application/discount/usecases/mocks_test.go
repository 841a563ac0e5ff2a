package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

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

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }
