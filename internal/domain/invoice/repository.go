package invoice

import (
	"context"

	"github.com/shopspring/decimal"
)

// ListFilter narrows invoice listings. Zero values mean "no filter".
type ListFilter struct {
	SubscriptionID uint
	ContactID      uint
	State          State
	Offset         int
	Limit          int
}

// Repository is the persistence port for invoices.
type Repository interface {
	// Create persists the invoice and its snapshot lines.
	Create(ctx context.Context, inv *Invoice) error
	// Update persists state and payment fields; lines are immutable.
	Update(ctx context.Context, inv *Invoice) error
	// GetByID returns nil when no invoice exists with the given ID.
	GetByID(ctx context.Context, id uint) (*Invoice, error)
	List(ctx context.Context, filter ListFilter) ([]*Invoice, int64, error)
	// CountBySubscription counts invoices linked to a subscription.
	CountBySubscription(ctx context.Context, subscriptionID uint) (int64, error)
	// HighestNumber returns the numerically highest number carrying the
	// prefix, or "" when none exist.
	HighestNumber(ctx context.Context, prefix string) (string, error)
	// CountByState returns a state histogram over all invoices.
	CountByState(ctx context.Context) (map[State]int64, error)
	// PaidRevenue sums line amounts across PAID invoices.
	PaidRevenue(ctx context.Context) (decimal.Decimal, error)
}
