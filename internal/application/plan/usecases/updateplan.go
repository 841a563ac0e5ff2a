package usecases

import (
	"context"
	"time"

	"github.com/subflow-io/subflow/internal/domain/plan"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanID                uint
	Name                  *string
	MinQuantity           *int
	StartDate             *time.Time
	EndDate               *time.Time
	AutoClose             *bool
	AutoCloseValidityDays *int
	Pausable              *bool
	Renewable             *bool
	Closable              *bool
	// Prices, when non-nil, replaces the whole tier collection.
	Prices *[]PriceInput
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(
	planRepo plan.Repository,
	logger logger.Interface,
) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*plan.RecurringPlan, error) {
	entity, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "id", cmd.PlanID)
		return nil, apperrors.NewInternalError("failed to get plan")
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("recurring plan not found")
	}

	entity.Update(plan.UpdateParams{
		Name:                  cmd.Name,
		MinQuantity:           cmd.MinQuantity,
		StartDate:             cmd.StartDate,
		EndDate:               cmd.EndDate,
		AutoClose:             cmd.AutoClose,
		AutoCloseValidityDays: cmd.AutoCloseValidityDays,
		Pausable:              cmd.Pausable,
		Renewable:             cmd.Renewable,
		Closable:              cmd.Closable,
	})

	if cmd.Prices != nil {
		if err := entity.ReplacePrices(toPrices(*cmd.Prices)); err != nil {
			return nil, err
		}
	}

	if err := uc.planRepo.Update(ctx, entity); err != nil {
		return nil, apperrors.NewInternalError("failed to update plan")
	}

	uc.logger.Infow("recurring plan updated", "id", entity.ID(), "name", entity.Name())
	return entity, nil
}
