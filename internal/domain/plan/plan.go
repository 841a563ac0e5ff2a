// Package plan holds the recurring plan aggregate: a billing template
// defining cadence (price tiers + billing period) and the lifecycle flags
// subscriptions built on it must respect.
package plan

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// RecurringPlan represents the recurring plan aggregate root
type RecurringPlan struct {
	id                    uint
	name                  string
	minQuantity           int
	startDate             *time.Time
	endDate               *time.Time
	autoClose             bool
	autoCloseValidityDays *int
	pausable              bool
	renewable             bool
	closable              bool
	prices                []Price
	createdAt             time.Time
	updatedAt             time.Time
}

// NewPlanParams holds the inputs for creating a recurring plan.
type NewPlanParams struct {
	Name                  string
	MinQuantity           int
	StartDate             *time.Time
	EndDate               *time.Time
	AutoClose             bool
	AutoCloseValidityDays *int
	Pausable              bool
	Renewable             bool
	Closable              bool
	Prices                []Price
}

// NewRecurringPlan creates a new recurring plan
func NewRecurringPlan(p NewPlanParams) (*RecurringPlan, error) {
	if p.Name == "" {
		return nil, apperrors.NewValidationError("plan name is required")
	}
	if p.MinQuantity < 1 {
		p.MinQuantity = 1
	}
	for _, price := range p.Prices {
		if err := price.validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	return &RecurringPlan{
		name:                  p.Name,
		minQuantity:           p.MinQuantity,
		startDate:             p.StartDate,
		endDate:               p.EndDate,
		autoClose:             p.AutoClose,
		autoCloseValidityDays: p.AutoCloseValidityDays,
		pausable:              p.Pausable,
		renewable:             p.Renewable,
		closable:              p.Closable,
		prices:                p.Prices,
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

// ReconstructParams holds persisted state for rebuilding a plan.
type ReconstructParams struct {
	ID                    uint
	Name                  string
	MinQuantity           int
	StartDate             *time.Time
	EndDate               *time.Time
	AutoClose             bool
	AutoCloseValidityDays *int
	Pausable              bool
	Renewable             bool
	Closable              bool
	Prices                []Price
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ReconstructRecurringPlan rebuilds a plan from persistence
func ReconstructRecurringPlan(p ReconstructParams) (*RecurringPlan, error) {
	if p.ID == 0 {
		return nil, apperrors.NewInternalError("plan ID cannot be zero")
	}
	return &RecurringPlan{
		id:                    p.ID,
		name:                  p.Name,
		minQuantity:           p.MinQuantity,
		startDate:             p.StartDate,
		endDate:               p.EndDate,
		autoClose:             p.AutoClose,
		autoCloseValidityDays: p.AutoCloseValidityDays,
		pausable:              p.Pausable,
		renewable:             p.Renewable,
		closable:              p.Closable,
		prices:                p.Prices,
		createdAt:             p.CreatedAt,
		updatedAt:             p.UpdatedAt,
	}, nil
}

func (p *RecurringPlan) ID() uint                    { return p.id }
func (p *RecurringPlan) Name() string                { return p.name }
func (p *RecurringPlan) MinQuantity() int            { return p.minQuantity }
func (p *RecurringPlan) StartDate() *time.Time       { return p.startDate }
func (p *RecurringPlan) EndDate() *time.Time         { return p.endDate }
func (p *RecurringPlan) AutoClose() bool             { return p.autoClose }
func (p *RecurringPlan) AutoCloseValidityDays() *int { return p.autoCloseValidityDays }
func (p *RecurringPlan) Pausable() bool              { return p.pausable }
func (p *RecurringPlan) Renewable() bool             { return p.renewable }
func (p *RecurringPlan) Closable() bool              { return p.closable }
func (p *RecurringPlan) Prices() []Price             { return p.prices }
func (p *RecurringPlan) CreatedAt() time.Time        { return p.createdAt }
func (p *RecurringPlan) UpdatedAt() time.Time        { return p.updatedAt }

// SetID sets the plan ID (only for persistence layer use)
func (p *RecurringPlan) SetID(id uint) error {
	if p.id != 0 {
		return apperrors.NewInternalError("plan ID is already set")
	}
	p.id = id
	return nil
}

// Update applies a partial update to the plan's scalar fields.
type UpdateParams struct {
	Name                  *string
	MinQuantity           *int
	StartDate             *time.Time
	EndDate               *time.Time
	AutoClose             *bool
	AutoCloseValidityDays *int
	Pausable              *bool
	Renewable             *bool
	Closable              *bool
}

func (p *RecurringPlan) Update(u UpdateParams) {
	if u.Name != nil {
		p.name = *u.Name
	}
	if u.MinQuantity != nil && *u.MinQuantity >= 1 {
		p.minQuantity = *u.MinQuantity
	}
	if u.StartDate != nil {
		p.startDate = u.StartDate
	}
	if u.EndDate != nil {
		p.endDate = u.EndDate
	}
	if u.AutoClose != nil {
		p.autoClose = *u.AutoClose
	}
	if u.AutoCloseValidityDays != nil {
		p.autoCloseValidityDays = u.AutoCloseValidityDays
	}
	if u.Pausable != nil {
		p.pausable = *u.Pausable
	}
	if u.Renewable != nil {
		p.renewable = *u.Renewable
	}
	if u.Closable != nil {
		p.closable = *u.Closable
	}
	p.updatedAt = time.Now().UTC()
}

// ReplacePrices swaps the full price tier collection.
func (p *RecurringPlan) ReplacePrices(prices []Price) error {
	for _, price := range prices {
		if err := price.validate(); err != nil {
			return err
		}
	}
	p.prices = prices
	p.updatedAt = time.Now().UTC()
	return nil
}

// DefaultPrice returns the tier used for schedule projection: the
// default-marked tier, falling back to the first tier, or nil when the plan
// has no prices at all.
func (p *RecurringPlan) DefaultPrice() *Price {
	for i := range p.prices {
		if p.prices[i].IsDefault {
			return &p.prices[i]
		}
	}
	if len(p.prices) > 0 {
		return &p.prices[0]
	}
	return nil
}

// Price is a plan price tier.
type Price struct {
	ID                 uint
	Price              decimal.Decimal
	BillingPeriodValue int
	BillingPeriodUnit  BillingPeriodUnit
	IsDefault          bool
}

func (pr Price) validate() error {
	if pr.Price.IsNegative() {
		return apperrors.NewValidationError("plan price cannot be negative")
	}
	if pr.BillingPeriodValue < 1 {
		return apperrors.NewValidationError("billing period value must be at least 1")
	}
	if !pr.BillingPeriodUnit.IsValid() {
		return apperrors.NewValidationError("invalid billing period unit: " + string(pr.BillingPeriodUnit))
	}
	return nil
}

// BillingPeriodUnit is the unit of a price tier's billing cadence.
type BillingPeriodUnit string

const (
	PeriodDay   BillingPeriodUnit = "DAY"
	PeriodMonth BillingPeriodUnit = "MONTH"
	PeriodYear  BillingPeriodUnit = "YEAR"
)

func (u BillingPeriodUnit) String() string {
	return string(u)
}

func (u BillingPeriodUnit) IsValid() bool {
	return u == PeriodDay || u == PeriodMonth || u == PeriodYear
}
