package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/shared/db"
	"github.com/subflow-io/subflow/internal/shared/errors"
)

func testContact() *catalog.Contact {
	return &catalog.Contact{ID: 1, Name: "Acme Corp"}
}

func testPlan(renewable bool) *plan.RecurringPlan {
	p, err := plan.ReconstructRecurringPlan(plan.ReconstructParams{
		ID:          10,
		Name:        "Monthly",
		MinQuantity: 1,
		Pausable:    true,
		Renewable:   renewable,
		Closable:    true,
		Prices: []plan.Price{
			{ID: 1, Price: dec("29.99"), BillingPeriodValue: 1, BillingPeriodUnit: plan.PeriodMonth, IsDefault: true},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		panic(err)
	}
	return p
}

func testDiscount(p discount.ReconstructParams) *discount.Discount {
	if p.ID == 0 {
		p.ID = 5
	}
	if p.Code == "" {
		p.Code = "SAVE10"
	}
	if p.Percent.IsZero() {
		p.Percent = dec("10")
	}
	d, err := discount.Reconstruct(p)
	if err != nil {
		panic(err)
	}
	return d
}

func newCreateSubscriptionUseCase(
	subRepo *mockSubscriptionRepository,
	contactRepo *mockContactRepository,
	planRepo *mockPlanRepository,
	discountRepo *mockDiscountRepository,
	productRepo *mockProductRepository,
	taxRepo *mockTaxRepository,
) *CreateSubscriptionUseCase {
	return NewCreateSubscriptionUseCase(
		subRepo, contactRepo, planRepo, discountRepo, productRepo, taxRepo,
		db.NewTransactionManager(nil), "Sub", &mockLogger{},
	)
}

func TestCreateSubscriptionUseCase_ContactNotFound(t *testing.T) {
	contactRepo := &mockContactRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Contact, error) {
			return nil, nil
		},
	}

	uc := newCreateSubscriptionUseCase(
		&mockSubscriptionRepository{}, contactRepo, &mockPlanRepository{},
		&mockDiscountRepository{}, &mockProductRepository{}, &mockTaxRepository{},
	)

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{ContactID: 99, RecurringPlanID: 10})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateSubscriptionUseCase_PlanNotFound(t *testing.T) {
	contactRepo := &mockContactRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Contact, error) {
			return testContact(), nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*plan.RecurringPlan, error) {
			return nil, nil
		},
	}

	uc := newCreateSubscriptionUseCase(
		&mockSubscriptionRepository{}, contactRepo, planRepo,
		&mockDiscountRepository{}, &mockProductRepository{}, &mockTaxRepository{},
	)

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{ContactID: 1, RecurringPlanID: 99})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateSubscriptionUseCase_DiscountPolicy(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name     string
		discount *discount.Discount
		wantErr  string
	}{
		{
			name:     "unknown code",
			discount: nil,
			wantErr:  "invalid discount code",
		},
		{
			name:     "inactive code",
			discount: testDiscount(discount.ReconstructParams{IsActive: false}),
			wantErr:  "invalid discount code",
		},
		{
			name:     "not started yet",
			discount: testDiscount(discount.ReconstructParams{IsActive: true, StartsAt: &future}),
			wantErr:  "discount not active yet",
		},
		{
			name:     "expired",
			discount: testDiscount(discount.ReconstructParams{IsActive: true, EndsAt: &past}),
			wantErr:  "discount expired",
		},
		{
			name: "usage cap exhausted",
			discount: testDiscount(discount.ReconstructParams{
				IsActive: true, LimitUsage: true, UsageLimit: intPtr(3), TimesUsed: 3,
			}),
			wantErr: "discount usage limit reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contactRepo := &mockContactRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Contact, error) {
					return testContact(), nil
				},
			}
			planRepo := &mockPlanRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*plan.RecurringPlan, error) {
					return testPlan(true), nil
				},
			}
			discountRepo := &mockDiscountRepository{
				GetByCodeFunc: func(ctx context.Context, code string) (*discount.Discount, error) {
					return tt.discount, nil
				},
			}

			uc := newCreateSubscriptionUseCase(
				&mockSubscriptionRepository{}, contactRepo, planRepo,
				discountRepo, &mockProductRepository{}, &mockTaxRepository{},
			)

			result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
				ContactID:       1,
				RecurringPlanID: 10,
				DiscountCode:    "SAVE10",
				Lines:           []LineInput{{ProductID: 7, Quantity: dec("1")}},
			})

			assert.Nil(t, result)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypePolicyViolation, appErr.Type)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestCreateSubscriptionUseCase_ScopedDiscountWithoutEligibleLine(t *testing.T) {
	contactRepo := &mockContactRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Contact, error) {
			return testContact(), nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*plan.RecurringPlan, error) {
			return testPlan(true), nil
		},
	}
	discountRepo := &mockDiscountRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*discount.Discount, error) {
			return testDiscount(discount.ReconstructParams{IsActive: true, ProductID: uintPtr(42)}), nil
		},
	}
	productRepo := &mockProductRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*catalog.Product, error) {
			return map[uint]*catalog.Product{
				7: {ID: 7, Name: "Basic Hosting", ListPrice: dec("50.00"), Active: true},
			}, nil
		},
	}

	uc := newCreateSubscriptionUseCase(
		&mockSubscriptionRepository{}, contactRepo, planRepo,
		discountRepo, productRepo, &mockTaxRepository{},
	)

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		ContactID:       1,
		RecurringPlanID: 10,
		DiscountCode:    "SAVE10",
		Lines:           []LineInput{{ProductID: 7, Quantity: dec("1")}},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypePolicyViolation, appErr.Type)
	assert.Equal(t, "discount not applicable to any order line", appErr.Message)
}

func TestCreateSubscriptionUseCase_InactiveProduct(t *testing.T) {
	contactRepo := &mockContactRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Contact, error) {
			return testContact(), nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*plan.RecurringPlan, error) {
			return testPlan(true), nil
		},
	}
	productRepo := &mockProductRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*catalog.Product, error) {
			return map[uint]*catalog.Product{
				7: {ID: 7, Name: "Legacy Plan", ListPrice: dec("50.00"), Active: false},
			}, nil
		},
	}

	uc := newCreateSubscriptionUseCase(
		&mockSubscriptionRepository{}, contactRepo, planRepo,
		&mockDiscountRepository{}, productRepo, &mockTaxRepository{},
	)

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		ContactID:       1,
		RecurringPlanID: 10,
		Lines:           []LineInput{{ProductID: 7, Quantity: dec("1")}},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
