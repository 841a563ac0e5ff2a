package dto

import (
	"time"

	"github.com/subflow-io/subflow/internal/domain/discount"
)

type DiscountDTO struct {
	ID         uint       `json:"id"`
	Code       string     `json:"code"`
	Percent    string     `json:"percent"`
	IsActive   bool       `json:"is_active"`
	StartsAt   *time.Time `json:"starts_at,omitempty"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	ProductID  *uint      `json:"product_id,omitempty"`
	LimitUsage bool       `json:"limit_usage"`
	UsageLimit *int       `json:"usage_limit,omitempty"`
	TimesUsed  int        `json:"times_used"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromDiscount(d *discount.Discount) DiscountDTO {
	return DiscountDTO{
		ID:         d.ID(),
		Code:       d.Code(),
		Percent:    d.Percent().String(),
		IsActive:   d.IsActive(),
		StartsAt:   d.StartsAt(),
		EndsAt:     d.EndsAt(),
		ProductID:  d.ProductID(),
		LimitUsage: d.LimitUsage(),
		UsageLimit: d.UsageLimit(),
		TimesUsed:  d.TimesUsed(),
		CreatedAt:  d.CreatedAt(),
		UpdatedAt:  d.UpdatedAt(),
	}
}

func FromDiscounts(discounts []*discount.Discount) []DiscountDTO {
	out := make([]DiscountDTO, 0, len(discounts))
	for _, d := range discounts {
		out = append(out, FromDiscount(d))
	}
	return out
}

// DiscountValidationDTO is the response for the standalone validation
// endpoint. It carries only what a checkout flow needs.
type DiscountValidationDTO struct {
	Valid   bool   `json:"valid"`
	Code    string `json:"code"`
	Percent string `json:"percent"`
}

func FromDiscountValidation(d *discount.Discount) DiscountValidationDTO {
	return DiscountValidationDTO{
		Valid:   true,
		Code:    d.Code(),
		Percent: d.Percent().String(),
	}
}
