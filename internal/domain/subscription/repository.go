package subscription

import "context"

// ListFilter narrows subscription listings. Zero values mean "no filter".
type ListFilter struct {
	ContactID       uint
	RecurringPlanID uint
	State           State
	Offset          int
	Limit           int
}

// Repository is the persistence port for subscriptions.
type Repository interface {
	// Create persists the subscription and its lines.
	Create(ctx context.Context, s *Subscription) error
	// Update persists scalar fields and state; lines are untouched.
	Update(ctx context.Context, s *Subscription) error
	// ReplaceLines deletes all lines of the subscription and recreates the
	// given collection. Runs inside the ambient transaction when present.
	ReplaceLines(ctx context.Context, subscriptionID uint, lines []Line) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil when no subscription exists with the given ID.
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetByNumber returns nil on miss.
	GetByNumber(ctx context.Context, number string) (*Subscription, error)
	List(ctx context.Context, filter ListFilter) ([]*Subscription, int64, error)
	// HighestNumber returns the numerically highest number carrying the
	// prefix, or "" when none exist.
	HighestNumber(ctx context.Context, prefix string) (string, error)
	// CountByState returns a state histogram over all subscriptions.
	CountByState(ctx context.Context) (map[State]int64, error)
}
