package catalog

import (
	"context"
	"time"

	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// PaymentTerm defines how many days after the invoice date payment is due.
type PaymentTerm struct {
	ID           uint
	Name         string
	DueAfterDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *PaymentTerm) Validate() error {
	if p.Name == "" {
		return apperrors.NewValidationError("payment term name is required")
	}
	if p.DueAfterDays < 0 {
		return apperrors.NewValidationError("due after days cannot be negative")
	}
	return nil
}

type PaymentTermRepository interface {
	Create(ctx context.Context, term *PaymentTerm) error
	Update(ctx context.Context, term *PaymentTerm) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil when no payment term exists with the given ID.
	GetByID(ctx context.Context, id uint) (*PaymentTerm, error)
	List(ctx context.Context, offset, limit int) ([]*PaymentTerm, int64, error)
}
