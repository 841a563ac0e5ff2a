package dto

import (
	"time"

	"github.com/subflow-io/subflow/internal/domain/invoice"
)

type InvoiceDTO struct {
	ID             uint             `json:"id"`
	Number         string           `json:"number"`
	SubscriptionID uint             `json:"subscription_id"`
	ContactID      uint             `json:"contact_id"`
	InvoiceDate    time.Time        `json:"invoice_date"`
	DueDate        time.Time        `json:"due_date"`
	State          string           `json:"state"`
	PaymentMethod  *string          `json:"payment_method,omitempty"`
	PaymentDate    *time.Time       `json:"payment_date,omitempty"`
	Lines          []InvoiceLineDTO `json:"lines"`
	Total          string           `json:"total"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type InvoiceLineDTO struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	TaxPercent  *string `json:"tax_percent,omitempty"`
	Amount      string  `json:"amount"`
}

func FromInvoice(inv *invoice.Invoice) InvoiceDTO {
	lines := make([]InvoiceLineDTO, 0, len(inv.Lines()))
	for _, l := range inv.Lines() {
		dto := InvoiceLineDTO{
			ID:          l.ID,
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity.String(),
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Amount:      l.Amount.StringFixed(2),
		}
		if l.TaxPercent != nil {
			v := l.TaxPercent.String()
			dto.TaxPercent = &v
		}
		lines = append(lines, dto)
	}

	out := InvoiceDTO{
		ID:             inv.ID(),
		Number:         inv.Number(),
		SubscriptionID: inv.SubscriptionID(),
		ContactID:      inv.ContactID(),
		InvoiceDate:    inv.InvoiceDate(),
		DueDate:        inv.DueDate(),
		State:          inv.State().String(),
		PaymentDate:    inv.PaymentDate(),
		Lines:          lines,
		Total:          inv.Total().StringFixed(2),
		CreatedAt:      inv.CreatedAt(),
		UpdatedAt:      inv.UpdatedAt(),
	}
	if inv.PaymentMethod() != nil {
		v := string(*inv.PaymentMethod())
		out.PaymentMethod = &v
	}
	return out
}

func FromInvoices(invoices []*invoice.Invoice) []InvoiceDTO {
	out := make([]InvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
