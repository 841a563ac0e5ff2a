package plan

import "context"

// Repository is the persistence port for recurring plans.
type Repository interface {
	Create(ctx context.Context, p *RecurringPlan) error
	Update(ctx context.Context, p *RecurringPlan) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil when no plan exists with the given ID.
	GetByID(ctx context.Context, id uint) (*RecurringPlan, error)
	List(ctx context.Context, offset, limit int) ([]*RecurringPlan, int64, error)
	Count(ctx context.Context) (int64, error)
}
