// Package invoice holds the invoice aggregate: a billing document generated
// from a subscription's lines, with its own draft/confirm/pay/cancel
// lifecycle. Lines are a point-in-time snapshot; later subscription edits
// never change an existing invoice.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
)

// PaymentMethod identifies how an invoice was settled.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCard         PaymentMethod = "CARD"
	PaymentCash         PaymentMethod = "CASH"
	PaymentOther        PaymentMethod = "OTHER"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentBankTransfer || m == PaymentCard || m == PaymentCash || m == PaymentOther
}

// Line is an immutable snapshot of a subscription line at invoice-creation
// time.
type Line struct {
	ID          uint
	ProductID   uint
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxPercent  *decimal.Decimal
	Amount      decimal.Decimal
}

// Invoice represents the invoice aggregate root
type Invoice struct {
	id             uint
	number         string
	subscriptionID uint
	contactID      uint
	invoiceDate    time.Time
	dueDate        time.Time
	state          State
	paymentMethod  *PaymentMethod
	paymentDate    *time.Time
	lines          []Line
	createdAt      time.Time
	updatedAt      time.Time
}

// NewParams holds the inputs for creating an invoice from a subscription.
type NewParams struct {
	Number         string
	SubscriptionID uint
	ContactID      uint
	InvoiceDate    time.Time
	DueDate        time.Time
	Lines          []Line
}

// NewInvoice creates an invoice in DRAFT state.
func NewInvoice(p NewParams) (*Invoice, error) {
	if p.Number == "" {
		return nil, apperrors.NewInternalError("invoice number is required")
	}
	if p.SubscriptionID == 0 {
		return nil, apperrors.NewValidationError("subscription is required")
	}
	if p.ContactID == 0 {
		return nil, apperrors.NewValidationError("contact is required")
	}
	if len(p.Lines) == 0 {
		return nil, apperrors.NewValidationError("invoice requires at least one line")
	}

	now := time.Now().UTC()
	return &Invoice{
		number:         p.Number,
		subscriptionID: p.SubscriptionID,
		contactID:      p.ContactID,
		invoiceDate:    p.InvoiceDate,
		dueDate:        p.DueDate,
		state:          StateDraft,
		lines:          p.Lines,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructParams holds persisted state for rebuilding an invoice.
type ReconstructParams struct {
	ID             uint
	Number         string
	SubscriptionID uint
	ContactID      uint
	InvoiceDate    time.Time
	DueDate        time.Time
	State          State
	PaymentMethod  *PaymentMethod
	PaymentDate    *time.Time
	Lines          []Line
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reconstruct rebuilds an invoice from persistence.
func Reconstruct(p ReconstructParams) (*Invoice, error) {
	if p.ID == 0 {
		return nil, apperrors.NewInternalError("invoice ID cannot be zero")
	}
	if !ValidStates[p.State] {
		return nil, apperrors.NewInternalError("invalid invoice state: " + string(p.State))
	}
	return &Invoice{
		id:             p.ID,
		number:         p.Number,
		subscriptionID: p.SubscriptionID,
		contactID:      p.ContactID,
		invoiceDate:    p.InvoiceDate,
		dueDate:        p.DueDate,
		state:          p.State,
		paymentMethod:  p.PaymentMethod,
		paymentDate:    p.PaymentDate,
		lines:          p.Lines,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func (i *Invoice) ID() uint                      { return i.id }
func (i *Invoice) Number() string                { return i.number }
func (i *Invoice) SubscriptionID() uint          { return i.subscriptionID }
func (i *Invoice) ContactID() uint               { return i.contactID }
func (i *Invoice) InvoiceDate() time.Time        { return i.invoiceDate }
func (i *Invoice) DueDate() time.Time            { return i.dueDate }
func (i *Invoice) State() State                  { return i.state }
func (i *Invoice) PaymentMethod() *PaymentMethod { return i.paymentMethod }
func (i *Invoice) PaymentDate() *time.Time       { return i.paymentDate }
func (i *Invoice) Lines() []Line                 { return i.lines }
func (i *Invoice) CreatedAt() time.Time          { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time          { return i.updatedAt }

// SetID sets the invoice ID (only for persistence layer use)
func (i *Invoice) SetID(id uint) error {
	if i.id != 0 {
		return apperrors.NewInternalError("invoice ID is already set")
	}
	if id == 0 {
		return apperrors.NewInternalError("invoice ID cannot be zero")
	}
	i.id = id
	return nil
}

// Total returns the sum of line amounts.
func (i *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range i.lines {
		total = total.Add(l.Amount)
	}
	return total
}

// Confirm transitions a draft invoice to CONFIRMED.
func (i *Invoice) Confirm() error {
	if i.state != StateDraft {
		return apperrors.NewInvalidStateError("only draft invoices can be confirmed")
	}
	i.state = StateConfirmed
	i.touch()
	return nil
}

// Cancel transitions the invoice to CANCELLED and clears payment fields.
// Paid invoices cannot be cancelled; cancelling twice fails.
func (i *Invoice) Cancel() error {
	if i.state == StatePaid {
		return apperrors.NewInvalidStateError("paid invoices cannot be cancelled")
	}
	if i.state == StateCancelled {
		return apperrors.NewInvalidStateError("invoice already cancelled")
	}
	i.state = StateCancelled
	i.paymentMethod = nil
	i.paymentDate = nil
	i.touch()
	return nil
}

// RestoreToDraft transitions a cancelled invoice back to DRAFT.
func (i *Invoice) RestoreToDraft() error {
	if i.state != StateCancelled {
		return apperrors.NewInvalidStateError("only cancelled invoices can be restored")
	}
	i.state = StateDraft
	i.touch()
	return nil
}

// MarkPaid transitions a confirmed invoice to PAID, recording the optional
// payment method and date.
func (i *Invoice) MarkPaid(method *PaymentMethod, paymentDate *time.Time) error {
	if i.state != StateConfirmed {
		return apperrors.NewInvalidStateError("only confirmed invoices can be marked paid")
	}
	if method != nil && !method.IsValid() {
		return apperrors.NewValidationError("invalid payment method: " + string(*method))
	}
	i.state = StatePaid
	i.paymentMethod = method
	i.paymentDate = paymentDate
	i.touch()
	return nil
}

func (i *Invoice) touch() {
	i.updatedAt = time.Now().UTC()
}
