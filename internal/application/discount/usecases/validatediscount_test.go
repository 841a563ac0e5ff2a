package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/shared/errors"
)

func reconstructDiscount(t *testing.T, p discount.ReconstructParams) *discount.Discount {
	t.Helper()
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
	require.NoError(t, err)
	return d
}

func TestValidateDiscountUseCase_Valid(t *testing.T) {
	entity := reconstructDiscount(t, discount.ReconstructParams{IsActive: true})
	repo := &mockDiscountRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*discount.Discount, error) {
			assert.Equal(t, "SAVE10", code)
			return entity, nil
		},
	}

	uc := NewValidateDiscountUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ValidateDiscountCommand{Code: "SAVE10"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "SAVE10", result.Code())
	assert.True(t, result.Percent().Equal(dec("10")))
}

func TestValidateDiscountUseCase_ChecksRunInOrder(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	tests := []struct {
		name    string
		params  discount.ReconstructParams
		wantErr string
	}{
		{
			name:    "inactive",
			params:  discount.ReconstructParams{IsActive: false},
			wantErr: "invalid discount code",
		},
		{
			// Inactivity wins even when the window would also fail.
			name:    "inactive and expired",
			params:  discount.ReconstructParams{IsActive: false, EndsAt: &past},
			wantErr: "invalid discount code",
		},
		{
			name:    "before window",
			params:  discount.ReconstructParams{IsActive: true, StartsAt: &future},
			wantErr: "discount not active yet",
		},
		{
			name:    "after window",
			params:  discount.ReconstructParams{IsActive: true, EndsAt: &past},
			wantErr: "discount expired",
		},
		{
			name: "usage cap reached",
			params: discount.ReconstructParams{
				IsActive: true, LimitUsage: true, UsageLimit: intPtr(5), TimesUsed: 5,
			},
			wantErr: "discount usage limit reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity := reconstructDiscount(t, tt.params)
			repo := &mockDiscountRepository{
				GetByCodeFunc: func(ctx context.Context, code string) (*discount.Discount, error) {
					return entity, nil
				},
			}

			uc := NewValidateDiscountUseCase(repo, &mockLogger{})

			result, err := uc.Execute(context.Background(), ValidateDiscountCommand{Code: "SAVE10"})

			assert.Nil(t, result)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypePolicyViolation, appErr.Type)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestValidateDiscountUseCase_BlankCode(t *testing.T) {
	repo := &mockDiscountRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*discount.Discount, error) {
			t.Fatal("blank code must not reach the repository")
			return nil, nil
		},
	}

	uc := NewValidateDiscountUseCase(repo, &mockLogger{})

	for _, code := range []string{"", "   ", "\t"} {
		result, err := uc.Execute(context.Background(), ValidateDiscountCommand{Code: code})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestValidateDiscountUseCase_UnknownCode(t *testing.T) {
	repo := &mockDiscountRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*discount.Discount, error) {
			return nil, nil
		},
	}

	uc := NewValidateDiscountUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ValidateDiscountCommand{Code: "NOPE"})

	assert.Nil(t, result)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypePolicyViolation, appErr.Type)
	assert.Equal(t, "invalid discount code", appErr.Message)
}

func TestValidateDiscountUseCase_ProductScope(t *testing.T) {
	scoped := func() *discount.Discount {
		return reconstructDiscount(t, discount.ReconstructParams{IsActive: true, ProductID: uintPtr(7)})
	}

	t.Run("matching product passes", func(t *testing.T) {
		repo := &mockDiscountRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*discount.Discount, error) {
				return scoped(), nil
			},
		}
		uc := NewValidateDiscountUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background(), ValidateDiscountCommand{Code: "SAVE10", ProductID: uintPtr(7)})

		require.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("other product rejected", func(t *testing.T) {
		repo := &mockDiscountRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*discount.Discount, error) {
				return scoped(), nil
			},
		}
		uc := NewValidateDiscountUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background(), ValidateDiscountCommand{Code: "SAVE10", ProductID: uintPtr(8)})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsPolicyViolationError(err))
	})

	t.Run("no product skips scope check", func(t *testing.T) {
		repo := &mockDiscountRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*discount.Discount, error) {
				return scoped(), nil
			},
		}
		uc := NewValidateDiscountUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background(), ValidateDiscountCommand{Code: "SAVE10"})

		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}
