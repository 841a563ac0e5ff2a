package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/plan"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

// PriceInput is the caller-facing shape of a plan price tier.
type PriceInput struct {
	Price              decimal.Decimal
	BillingPeriodValue int
	BillingPeriodUnit  string
	IsDefault          bool
}

type CreatePlanCommand struct {
	Name                  string
	MinQuantity           int
	StartDate             *time.Time
	EndDate               *time.Time
	AutoClose             bool
	AutoCloseValidityDays *int
	Pausable              bool
	Renewable             bool
	Closable              bool
	Prices                []PriceInput
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(
	planRepo plan.Repository,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func toPrices(inputs []PriceInput) []plan.Price {
	prices := make([]plan.Price, 0, len(inputs))
	for _, in := range inputs {
		prices = append(prices, plan.Price{
			Price:              in.Price,
			BillingPeriodValue: in.BillingPeriodValue,
			BillingPeriodUnit:  plan.BillingPeriodUnit(in.BillingPeriodUnit),
			IsDefault:          in.IsDefault,
		})
	}
	return prices
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*plan.RecurringPlan, error) {
	entity, err := plan.NewRecurringPlan(plan.NewPlanParams{
		Name:                  cmd.Name,
		MinQuantity:           cmd.MinQuantity,
		StartDate:             cmd.StartDate,
		EndDate:               cmd.EndDate,
		AutoClose:             cmd.AutoClose,
		AutoCloseValidityDays: cmd.AutoCloseValidityDays,
		Pausable:              cmd.Pausable,
		Renewable:             cmd.Renewable,
		Closable:              cmd.Closable,
		Prices:                toPrices(cmd.Prices),
	})
	if err != nil {
		return nil, err
	}

	if err := uc.planRepo.Create(ctx, entity); err != nil {
		return nil, apperrors.NewInternalError("failed to create plan")
	}

	uc.logger.Infow("recurring plan created", "id", entity.ID(), "name", entity.Name())
	return entity, nil
}
