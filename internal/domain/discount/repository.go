package discount

import "context"

// Repository is the persistence port for discount codes.
type Repository interface {
	Create(ctx context.Context, d *Discount) error
	Update(ctx context.Context, d *Discount) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil when no discount exists with the given ID.
	GetByID(ctx context.Context, id uint) (*Discount, error)
	// GetByCode looks up a discount by normalized code; returns nil on miss.
	GetByCode(ctx context.Context, code string) (*Discount, error)
	List(ctx context.Context, offset, limit int) ([]*Discount, int64, error)
	// ReserveUsage atomically increments times_used, enforcing the usage
	// cap for limited codes. Returns false when the cap has been reached.
	// Must be called inside the same transaction as the subscription create
	// that consumes the discount.
	ReserveUsage(ctx context.Context, id uint) (bool, error)
}
