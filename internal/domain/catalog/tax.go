package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/billing"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// Tax is a named percentage applied on top of discounted line amounts.
type Tax struct {
	ID        uint
	Name      string
	Percent   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Tax) Validate() error {
	if t.Name == "" {
		return apperrors.NewValidationError("tax name is required")
	}
	if !billing.ValidPercent(t.Percent) {
		return apperrors.NewValidationError("tax percent must be between 0 and 100")
	}
	return nil
}

type TaxRepository interface {
	Create(ctx context.Context, tax *Tax) error
	Update(ctx context.Context, tax *Tax) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil when no tax exists with the given ID.
	GetByID(ctx context.Context, id uint) (*Tax, error)
	List(ctx context.Context, offset, limit int) ([]*Tax, int64, error)
}
