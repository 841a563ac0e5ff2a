// Package catalog holds the billing reference data: contacts, products,
// taxes and payment terms. These are plain records with CRUD semantics;
// the lifecycle aggregates reference them by ID.
package catalog

import (
	"context"
	"time"

	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// Contact is a customer a subscription bills to. UserID links a portal
// login to the contact it may see.
type Contact struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	UserID    *uint
	CreatedAt time.Time
	UpdatedAt time.Time

	// ActiveSubscriptions is derived on reads and never persisted.
	ActiveSubscriptions int64
}

func (c *Contact) Validate() error {
	if c.Name == "" {
		return apperrors.NewValidationError("contact name is required")
	}
	return nil
}

type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil when no contact exists with the given ID.
	GetByID(ctx context.Context, id uint) (*Contact, error)
	// GetByUserID resolves the contact a portal login belongs to.
	GetByUserID(ctx context.Context, userID uint) (*Contact, error)
	List(ctx context.Context, offset, limit int) ([]*Contact, int64, error)
	Count(ctx context.Context) (int64, error)
}
