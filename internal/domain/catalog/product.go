package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// Product is a sellable item. ListPrice seeds new subscription lines when
// the caller does not override the unit price.
type Product struct {
	ID          uint
	Name        string
	Description string
	ListPrice   decimal.Decimal
	TaxID       *uint
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return apperrors.NewValidationError("product name is required")
	}
	if p.ListPrice.IsNegative() {
		return apperrors.NewValidationError("product list price cannot be negative")
	}
	return nil
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil when no product exists with the given ID.
	GetByID(ctx context.Context, id uint) (*Product, error)
	// GetByIDs loads several products at once, keyed by ID. Missing IDs
	// are simply absent from the result.
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Product, error)
	List(ctx context.Context, offset, limit int) ([]*Product, int64, error)
	Count(ctx context.Context) (int64, error)
}
