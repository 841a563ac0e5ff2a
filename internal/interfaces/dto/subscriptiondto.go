package dto

import (
	"time"

	"github.com/subflow-io/subflow/internal/domain/subscription"
)

// SubscriptionDTO is the wire representation of a subscription. Monetary
// values render as fixed two-decimal strings.
type SubscriptionDTO struct {
	ID                  uint                  `json:"id"`
	Number              string                `json:"number"`
	ContactID           uint                  `json:"contact_id"`
	RecurringPlanID     uint                  `json:"recurring_plan_id"`
	State               string                `json:"state"`
	ExpirationDate      *time.Time            `json:"expiration_date,omitempty"`
	QuotationTemplateID *uint                 `json:"quotation_template_id,omitempty"`
	OrderDate           *time.Time            `json:"order_date,omitempty"`
	StartDate           *time.Time            `json:"start_date,omitempty"`
	NextInvoiceDate     *time.Time            `json:"next_invoice_date,omitempty"`
	PaymentTermID       *uint                 `json:"payment_term_id,omitempty"`
	SalespersonID       *uint                 `json:"salesperson_id,omitempty"`
	Lines               []SubscriptionLineDTO `json:"lines"`
	Total               string                `json:"total"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

type SubscriptionLineDTO struct {
	ID              uint    `json:"id"`
	ProductID       uint    `json:"product_id"`
	Quantity        string  `json:"quantity"`
	UnitPrice       string  `json:"unit_price"`
	DiscountPercent *string `json:"discount_percent,omitempty"`
	TaxPercent      *string `json:"tax_percent,omitempty"`
	Amount          string  `json:"amount"`
}

func FromSubscription(s *subscription.Subscription) SubscriptionDTO {
	lines := make([]SubscriptionLineDTO, 0, len(s.Lines()))
	total := "0.00"
	if len(s.Lines()) > 0 {
		sum := s.Lines()[0].Amount
		lines = append(lines, fromSubscriptionLine(s.Lines()[0]))
		for _, l := range s.Lines()[1:] {
			sum = sum.Add(l.Amount)
			lines = append(lines, fromSubscriptionLine(l))
		}
		total = sum.StringFixed(2)
	}

	return SubscriptionDTO{
		ID:                  s.ID(),
		Number:              s.Number(),
		ContactID:           s.ContactID(),
		RecurringPlanID:     s.RecurringPlanID(),
		State:               s.State().String(),
		ExpirationDate:      s.ExpirationDate(),
		QuotationTemplateID: s.QuotationTemplateID(),
		OrderDate:           s.OrderDate(),
		StartDate:           s.StartDate(),
		NextInvoiceDate:     s.NextInvoiceDate(),
		PaymentTermID:       s.PaymentTermID(),
		SalespersonID:       s.SalespersonID(),
		Lines:               lines,
		Total:               total,
		CreatedAt:           s.CreatedAt(),
		UpdatedAt:           s.UpdatedAt(),
	}
}

func FromSubscriptions(subs []*subscription.Subscription) []SubscriptionDTO {
	out := make([]SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubscription(s))
	}
	return out
}

func fromSubscriptionLine(l subscription.Line) SubscriptionLineDTO {
	dto := SubscriptionLineDTO{
		ID:        l.ID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity.String(),
		UnitPrice: l.UnitPrice.StringFixed(2),
		Amount:    l.Amount.StringFixed(2),
	}
	if l.DiscountPercent != nil {
		v := l.DiscountPercent.String()
		dto.DiscountPercent = &v
	}
	if l.TaxPercent != nil {
		v := l.TaxPercent.String()
		dto.TaxPercent = &v
	}
	return dto
}
