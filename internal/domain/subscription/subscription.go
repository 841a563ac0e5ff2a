// Package subscription holds the subscription aggregate: a customer order
// for recurring billing progressing through quotation, confirmation, pause
// and close states, owning an ordered collection of lines.
package subscription

import (
	"time"

	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// Subscription represents the subscription aggregate root
type Subscription struct {
	id                  uint
	number              string
	contactID           uint
	recurringPlanID     uint
	state               State
	expirationDate      *time.Time
	quotationTemplateID *uint
	orderDate           *time.Time
	startDate           *time.Time
	nextInvoiceDate     *time.Time
	paymentTermID       *uint
	salespersonID       *uint
	lines               []Line
	createdAt           time.Time
	updatedAt           time.Time
}

// NewParams holds the inputs for creating a subscription quotation.
type NewParams struct {
	Number              string
	ContactID           uint
	RecurringPlanID     uint
	ExpirationDate      *time.Time
	QuotationTemplateID *uint
	OrderDate           *time.Time
	PaymentTermID       *uint
	SalespersonID       *uint
	Lines               []Line
}

// NewSubscription creates a subscription in DRAFT state.
func NewSubscription(p NewParams) (*Subscription, error) {
	if p.Number == "" {
		return nil, apperrors.NewInternalError("subscription number is required")
	}
	if p.ContactID == 0 {
		return nil, apperrors.NewValidationError("contact is required")
	}
	if p.RecurringPlanID == 0 {
		return nil, apperrors.NewValidationError("recurring plan is required")
	}

	now := time.Now().UTC()
	return &Subscription{
		number:              p.Number,
		contactID:           p.ContactID,
		recurringPlanID:     p.RecurringPlanID,
		state:               StateDraft,
		expirationDate:      p.ExpirationDate,
		quotationTemplateID: p.QuotationTemplateID,
		orderDate:           p.OrderDate,
		paymentTermID:       p.PaymentTermID,
		salespersonID:       p.SalespersonID,
		lines:               p.Lines,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructParams holds persisted state for rebuilding a subscription.
type ReconstructParams struct {
	ID                  uint
	Number              string
	ContactID           uint
	RecurringPlanID     uint
	State               State
	ExpirationDate      *time.Time
	QuotationTemplateID *uint
	OrderDate           *time.Time
	StartDate           *time.Time
	NextInvoiceDate     *time.Time
	PaymentTermID       *uint
	SalespersonID       *uint
	Lines               []Line
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Reconstruct rebuilds a subscription from persistence.
func Reconstruct(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, apperrors.NewInternalError("subscription ID cannot be zero")
	}
	if !ValidStates[p.State] {
		return nil, apperrors.NewInternalError("invalid subscription state: " + string(p.State))
	}
	return &Subscription{
		id:                  p.ID,
		number:              p.Number,
		contactID:           p.ContactID,
		recurringPlanID:     p.RecurringPlanID,
		state:               p.State,
		expirationDate:      p.ExpirationDate,
		quotationTemplateID: p.QuotationTemplateID,
		orderDate:           p.OrderDate,
		startDate:           p.StartDate,
		nextInvoiceDate:     p.NextInvoiceDate,
		paymentTermID:       p.PaymentTermID,
		salespersonID:       p.SalespersonID,
		lines:               p.Lines,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                   { return s.id }
func (s *Subscription) Number() string             { return s.number }
func (s *Subscription) ContactID() uint            { return s.contactID }
func (s *Subscription) RecurringPlanID() uint      { return s.recurringPlanID }
func (s *Subscription) State() State               { return s.state }
func (s *Subscription) ExpirationDate() *time.Time { return s.expirationDate }
func (s *Subscription) QuotationTemplateID() *uint { return s.quotationTemplateID }
func (s *Subscription) OrderDate() *time.Time      { return s.orderDate }
func (s *Subscription) StartDate() *time.Time      { return s.startDate }
func (s *Subscription) NextInvoiceDate() *time.Time {
	return s.nextInvoiceDate
}
func (s *Subscription) PaymentTermID() *uint  { return s.paymentTermID }
func (s *Subscription) SalespersonID() *uint  { return s.salespersonID }
func (s *Subscription) Lines() []Line         { return s.lines }
func (s *Subscription) CreatedAt() time.Time  { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time  { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return apperrors.NewInternalError("subscription ID is already set")
	}
	if id == 0 {
		return apperrors.NewInternalError("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// Send transitions a draft quotation to QUOTATION_SENT.
func (s *Subscription) Send() error {
	if s.state != StateDraft {
		return apperrors.NewInvalidStateError("only draft subscriptions can be sent")
	}
	s.state = StateQuotationSent
	s.touch()
	return nil
}

// Confirm transitions the subscription to CONFIRMED, fixing the order and
// start dates and the projected next invoice date. When no order date was
// recorded, now becomes the order date.
func (s *Subscription) Confirm(now time.Time, nextInvoiceDate *time.Time) error {
	if s.state != StateDraft && s.state != StateQuotationSent {
		return apperrors.NewInvalidStateError("only draft or quotation-sent subscriptions can be confirmed")
	}
	orderDate := now
	if s.orderDate != nil {
		orderDate = *s.orderDate
	}
	s.orderDate = &orderDate
	s.startDate = &orderDate
	s.nextInvoiceDate = nextInvoiceDate
	s.state = StateConfirmed
	s.touch()
	return nil
}

// Pause transitions a confirmed subscription to PAUSED.
func (s *Subscription) Pause() error {
	if s.state != StateConfirmed {
		return apperrors.NewInvalidStateError("only confirmed subscriptions can be paused")
	}
	s.state = StatePaused
	s.touch()
	return nil
}

// Resume transitions a paused subscription back to CONFIRMED. Dates are not
// recomputed.
func (s *Subscription) Resume() error {
	if s.state != StatePaused {
		return apperrors.NewInvalidStateError("only paused subscriptions can be resumed")
	}
	s.state = StateConfirmed
	s.touch()
	return nil
}

// Close transitions a confirmed or paused subscription to CLOSED.
func (s *Subscription) Close() error {
	if s.state != StateConfirmed && s.state != StatePaused {
		return apperrors.NewInvalidStateError("only confirmed or paused subscriptions can be closed")
	}
	s.state = StateClosed
	s.touch()
	return nil
}

// EnsureRenewable checks that the subscription's state permits renewal or
// upsell (the plan flags are checked by the caller, which holds the plan).
func (s *Subscription) EnsureRenewable() error {
	if s.state != StateConfirmed && s.state != StatePaused {
		return apperrors.NewInvalidStateError("only confirmed or paused subscriptions can be renewed")
	}
	return nil
}

// EnsureInvoiceable checks that an invoice may be generated from this
// subscription.
func (s *Subscription) EnsureInvoiceable() error {
	if s.state != StateConfirmed && s.state != StatePaused {
		return apperrors.NewInvalidStateError("invoices can only be created for confirmed or paused subscriptions")
	}
	if len(s.lines) == 0 {
		return apperrors.NewValidationError("subscription has no order lines to invoice")
	}
	return nil
}

// EnsureDeletable checks that the subscription may be removed: only
// quotations (DRAFT or QUOTATION_SENT) without linked invoices.
func (s *Subscription) EnsureDeletable(invoiceCount int64) error {
	if !s.state.IsDeletable() {
		return apperrors.NewInvalidStateError("only draft or quotation-sent subscriptions can be deleted")
	}
	if invoiceCount > 0 {
		return apperrors.NewInvalidStateError("cannot delete subscription with linked invoices")
	}
	return nil
}

// UpdateParams holds a partial scalar-field update. Field updates carry no
// state guard; reassigning a salesperson on a confirmed subscription is
// legitimate.
type UpdateParams struct {
	ContactID           *uint
	RecurringPlanID     *uint
	ExpirationDate      **time.Time
	QuotationTemplateID **uint
	OrderDate           **time.Time
	PaymentTermID       **uint
	SalespersonID       **uint
}

// Update applies a partial scalar update.
func (s *Subscription) Update(u UpdateParams) {
	if u.ContactID != nil {
		s.contactID = *u.ContactID
	}
	if u.RecurringPlanID != nil {
		s.recurringPlanID = *u.RecurringPlanID
	}
	if u.ExpirationDate != nil {
		s.expirationDate = *u.ExpirationDate
	}
	if u.QuotationTemplateID != nil {
		s.quotationTemplateID = *u.QuotationTemplateID
	}
	if u.OrderDate != nil {
		s.orderDate = *u.OrderDate
	}
	if u.PaymentTermID != nil {
		s.paymentTermID = *u.PaymentTermID
	}
	if u.SalespersonID != nil {
		s.salespersonID = *u.SalespersonID
	}
	s.touch()
}

// ReplaceLines swaps the full line collection. The replacement is atomic at
// the persistence layer (delete-all-then-recreate in one transaction).
// Terminal subscriptions keep their lines immutable.
func (s *Subscription) ReplaceLines(lines []Line) error {
	if s.state.IsTerminal() {
		return apperrors.NewInvalidStateError("cannot replace lines of a " + string(s.state) + " subscription")
	}
	s.lines = lines
	s.touch()
	return nil
}

func (s *Subscription) touch() {
	s.updatedAt = time.Now().UTC()
}
