package dto

import (
	"time"

	"github.com/subflow-io/subflow/internal/domain/plan"
)

type PlanDTO struct {
	ID                    uint           `json:"id"`
	Name                  string         `json:"name"`
	MinQuantity           int            `json:"min_quantity"`
	StartDate             *time.Time     `json:"start_date,omitempty"`
	EndDate               *time.Time     `json:"end_date,omitempty"`
	AutoClose             bool           `json:"auto_close"`
	AutoCloseValidityDays *int           `json:"auto_close_validity_days,omitempty"`
	Pausable              bool           `json:"pausable"`
	Renewable             bool           `json:"renewable"`
	Closable              bool           `json:"closable"`
	Prices                []PlanPriceDTO `json:"prices"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

type PlanPriceDTO struct {
	ID                 uint   `json:"id"`
	Price              string `json:"price"`
	BillingPeriodValue int    `json:"billing_period_value"`
	BillingPeriodUnit  string `json:"billing_period_unit"`
	IsDefault          bool   `json:"is_default"`
}

func FromPlan(p *plan.RecurringPlan) PlanDTO {
	prices := make([]PlanPriceDTO, 0, len(p.Prices()))
	for _, pr := range p.Prices() {
		prices = append(prices, PlanPriceDTO{
			ID:                 pr.ID,
			Price:              pr.Price.StringFixed(2),
			BillingPeriodValue: pr.BillingPeriodValue,
			BillingPeriodUnit:  pr.BillingPeriodUnit.String(),
			IsDefault:          pr.IsDefault,
		})
	}

	return PlanDTO{
		ID:                    p.ID(),
		Name:                  p.Name(),
		MinQuantity:           p.MinQuantity(),
		StartDate:             p.StartDate(),
		EndDate:               p.EndDate(),
		AutoClose:             p.AutoClose(),
		AutoCloseValidityDays: p.AutoCloseValidityDays(),
		Pausable:              p.Pausable(),
		Renewable:             p.Renewable(),
		Closable:              p.Closable(),
		Prices:                prices,
		CreatedAt:             p.CreatedAt(),
		UpdatedAt:             p.UpdatedAt(),
	}
}

func FromPlans(plans []*plan.RecurringPlan) []PlanDTO {
	out := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromPlan(p))
	}
	return out
}
