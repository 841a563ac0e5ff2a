package dto

import (
	"time"

	"github.com/subflow-io/subflow/internal/domain/catalog"
)

type ContactDTO struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	UserID              *uint     `json:"user_id,omitempty"`
	ActiveSubscriptions int64     `json:"active_subscriptions"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromContact(c *catalog.Contact) ContactDTO {
	return ContactDTO{
		ID:                  c.ID,
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		UserID:              c.UserID,
		ActiveSubscriptions: c.ActiveSubscriptions,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func FromContacts(contacts []*catalog.Contact) []ContactDTO {
	out := make([]ContactDTO, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, FromContact(c))
	}
	return out
}

type ProductDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ListPrice   string    `json:"list_price"`
	TaxID       *uint     `json:"tax_id,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProduct(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ListPrice:   p.ListPrice.StringFixed(2),
		TaxID:       p.TaxID,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProducts(products []*catalog.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type TaxDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Percent   string    `json:"percent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTax(t *catalog.Tax) TaxDTO {
	return TaxDTO{
		ID:        t.ID,
		Name:      t.Name,
		Percent:   t.Percent.String(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTaxes(taxes []*catalog.Tax) []TaxDTO {
	out := make([]TaxDTO, 0, len(taxes))
	for _, t := range taxes {
		out = append(out, FromTax(t))
	}
	return out
}

type PaymentTermDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	DueAfterDays int       `json:"due_after_days"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromPaymentTerm(t *catalog.PaymentTerm) PaymentTermDTO {
	return PaymentTermDTO{
		ID:           t.ID,
		Name:         t.Name,
		DueAfterDays: t.DueAfterDays,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func FromPaymentTerms(terms []*catalog.PaymentTerm) []PaymentTermDTO {
	out := make([]PaymentTermDTO, 0, len(terms))
	for _, t := range terms {
		out = append(out, FromPaymentTerm(t))
	}
	return out
}
