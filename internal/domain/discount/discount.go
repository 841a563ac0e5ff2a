// Package discount holds the discount-code entity and its validation
// rules: activity window, usage cap and product scope. Validation never
// consumes usage; the reservation happens inside the subscription-create
// transaction.
package discount

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/billing"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// Discount represents a percent-off code.
type Discount struct {
	id         uint
	code       string
	percent    decimal.Decimal
	isActive   bool
	startsAt   *time.Time
	endsAt     *time.Time
	productID  *uint
	limitUsage bool
	usageLimit *int
	timesUsed  int
	createdAt  time.Time
	updatedAt  time.Time
}

// NormalizeCode trims and upper-cases a discount code. Codes are stored and
// matched case-insensitively.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewDiscountParams holds the inputs for creating a discount.
type NewDiscountParams struct {
	Code       string
	Percent    decimal.Decimal
	IsActive   bool
	StartsAt   *time.Time
	EndsAt     *time.Time
	ProductID  *uint
	LimitUsage bool
	UsageLimit *int
}

// NewDiscount creates a new discount code.
func NewDiscount(p NewDiscountParams) (*Discount, error) {
	code := NormalizeCode(p.Code)
	if code == "" {
		return nil, apperrors.NewValidationError("discount code is required")
	}
	if !billing.ValidPercent(p.Percent) {
		return nil, apperrors.NewValidationError("discount percent must be between 0 and 100")
	}
	if p.LimitUsage && (p.UsageLimit == nil || *p.UsageLimit < 1) {
		return nil, apperrors.NewValidationError("usageLimit must be >= 1 when limitUsage is enabled")
	}
	if !p.LimitUsage {
		p.UsageLimit = nil
	}

	now := time.Now().UTC()
	return &Discount{
		code:       code,
		percent:    p.Percent,
		isActive:   p.IsActive,
		startsAt:   p.StartsAt,
		endsAt:     p.EndsAt,
		productID:  p.ProductID,
		limitUsage: p.LimitUsage,
		usageLimit: p.UsageLimit,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructParams holds persisted state for rebuilding a discount.
type ReconstructParams struct {
	ID         uint
	Code       string
	Percent    decimal.Decimal
	IsActive   bool
	StartsAt   *time.Time
	EndsAt     *time.Time
	ProductID  *uint
	LimitUsage bool
	UsageLimit *int
	TimesUsed  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Reconstruct rebuilds a discount from persistence.
func Reconstruct(p ReconstructParams) (*Discount, error) {
	if p.ID == 0 {
		return nil, apperrors.NewInternalError("discount ID cannot be zero")
	}
	return &Discount{
		id:         p.ID,
		code:       p.Code,
		percent:    p.Percent,
		isActive:   p.IsActive,
		startsAt:   p.StartsAt,
		endsAt:     p.EndsAt,
		productID:  p.ProductID,
		limitUsage: p.LimitUsage,
		usageLimit: p.UsageLimit,
		timesUsed:  p.TimesUsed,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}, nil
}

func (d *Discount) ID() uint                 { return d.id }
func (d *Discount) Code() string             { return d.code }
func (d *Discount) Percent() decimal.Decimal { return d.percent }
func (d *Discount) IsActive() bool           { return d.isActive }
func (d *Discount) StartsAt() *time.Time     { return d.startsAt }
func (d *Discount) EndsAt() *time.Time       { return d.endsAt }
func (d *Discount) ProductID() *uint         { return d.productID }
func (d *Discount) LimitUsage() bool         { return d.limitUsage }
func (d *Discount) UsageLimit() *int         { return d.usageLimit }
func (d *Discount) TimesUsed() int           { return d.timesUsed }
func (d *Discount) CreatedAt() time.Time     { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time     { return d.updatedAt }

// SetID sets the discount ID (only for persistence layer use)
func (d *Discount) SetID(id uint) error {
	if d.id != 0 {
		return apperrors.NewInternalError("discount ID is already set")
	}
	d.id = id
	return nil
}

// EnsureUsable checks the code against its activity flag, window and usage
// cap, in that order. The first failing check determines the error.
func (d *Discount) EnsureUsable(now time.Time) error {
	if !d.isActive {
		return apperrors.NewPolicyViolationError("invalid discount code")
	}
	if d.startsAt != nil && now.Before(*d.startsAt) {
		return apperrors.NewPolicyViolationError("discount not active yet")
	}
	if d.endsAt != nil && now.After(*d.endsAt) {
		return apperrors.NewPolicyViolationError("discount expired")
	}
	if d.limitUsage {
		if d.usageLimit == nil || *d.usageLimit < 1 {
			return apperrors.NewPolicyViolationError("discount misconfigured: usageLimit missing")
		}
		if d.timesUsed >= *d.usageLimit {
			return apperrors.NewPolicyViolationError("discount usage limit reached")
		}
	}
	return nil
}

// AppliesTo reports whether the discount's percent applies to the given
// product. An unscoped discount applies to every product.
func (d *Discount) AppliesTo(productID uint) bool {
	return d.productID == nil || *d.productID == productID
}

// EnsureScope enforces the product scope against a concrete product. A nil
// productID means no eligible line was supplied yet; scope is only enforced
// at subscription-creation time, not during standalone validation.
func (d *Discount) EnsureScope(productID *uint) error {
	if d.productID != nil && productID != nil && *d.productID != *productID {
		return apperrors.NewPolicyViolationError("discount not applicable to this product")
	}
	return nil
}

// UpdateParams holds a partial update to a discount.
type UpdateParams struct {
	Code       *string
	Percent    *decimal.Decimal
	IsActive   *bool
	StartsAt   **time.Time
	EndsAt     **time.Time
	ProductID  **uint
	LimitUsage *bool
	UsageLimit *int
}

// Update applies a partial update, revalidating invariants.
func (d *Discount) Update(u UpdateParams) error {
	if u.Code != nil {
		code := NormalizeCode(*u.Code)
		if code == "" {
			return apperrors.NewValidationError("discount code is required")
		}
		d.code = code
	}
	if u.Percent != nil {
		if !billing.ValidPercent(*u.Percent) {
			return apperrors.NewValidationError("discount percent must be between 0 and 100")
		}
		d.percent = *u.Percent
	}
	if u.IsActive != nil {
		d.isActive = *u.IsActive
	}
	if u.StartsAt != nil {
		d.startsAt = *u.StartsAt
	}
	if u.EndsAt != nil {
		d.endsAt = *u.EndsAt
	}
	if u.ProductID != nil {
		d.productID = *u.ProductID
	}
	if u.LimitUsage != nil {
		if *u.LimitUsage && u.UsageLimit == nil && d.usageLimit == nil {
			return apperrors.NewValidationError("usageLimit must be >= 1 when limitUsage is enabled")
		}
		d.limitUsage = *u.LimitUsage
		if !d.limitUsage {
			d.usageLimit = nil
		}
	}
	if u.UsageLimit != nil {
		if *u.UsageLimit < 1 {
			return apperrors.NewValidationError("usageLimit must be >= 1")
		}
		d.usageLimit = u.UsageLimit
	}
	d.updatedAt = time.Now().UTC()
	return nil
}
