package mappers

import (
	"fmt"

	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/mapper"
)

type RecurringPlanMapper interface {
	ToEntity(model *models.RecurringPlanModel) (*plan.RecurringPlan, error)
	ToModel(entity *plan.RecurringPlan) (*models.RecurringPlanModel, error)
	ToEntities(models []*models.RecurringPlanModel) ([]*plan.RecurringPlan, error)
	ToPriceModels(planID uint, prices []plan.Price) []models.RecurringPlanPriceModel
}

type RecurringPlanMapperImpl struct{}

func NewRecurringPlanMapper() RecurringPlanMapper {
	return &RecurringPlanMapperImpl{}
}

func (m *RecurringPlanMapperImpl) ToEntity(model *models.RecurringPlanModel) (*plan.RecurringPlan, error) {
	if model == nil {
		return nil, nil
	}

	prices := make([]plan.Price, 0, len(model.Prices))
	for _, pm := range model.Prices {
		unit := plan.BillingPeriodUnit(pm.BillingPeriodUnit)
		if !unit.IsValid() {
			return nil, fmt.Errorf("invalid billing period unit: %s", pm.BillingPeriodUnit)
		}
		prices = append(prices, plan.Price{
			ID:                 pm.ID,
			Price:              pm.Price,
			BillingPeriodValue: pm.BillingPeriodValue,
			BillingPeriodUnit:  unit,
			IsDefault:          pm.IsDefault,
		})
	}

	entity, err := plan.ReconstructRecurringPlan(plan.ReconstructParams{
		ID:                    model.ID,
		Name:                  model.Name,
		MinQuantity:           model.MinQuantity,
		StartDate:             model.StartDate,
		EndDate:               model.EndDate,
		AutoClose:             model.AutoClose,
		AutoCloseValidityDays: model.AutoCloseValidityDays,
		Pausable:              model.Pausable,
		Renewable:             model.Renewable,
		Closable:              model.Closable,
		Prices:                prices,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}

func (m *RecurringPlanMapperImpl) ToModel(entity *plan.RecurringPlan) (*models.RecurringPlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.RecurringPlanModel{
		ID:                    entity.ID(),
		Name:                  entity.Name(),
		MinQuantity:           entity.MinQuantity(),
		StartDate:             entity.StartDate(),
		EndDate:               entity.EndDate(),
		AutoClose:             entity.AutoClose(),
		AutoCloseValidityDays: entity.AutoCloseValidityDays(),
		Pausable:              entity.Pausable(),
		Renewable:             entity.Renewable(),
		Closable:              entity.Closable(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
		Prices:                m.ToPriceModels(entity.ID(), entity.Prices()),
	}, nil
}

// ToPriceModels maps the price tiers separately so tier replacement can write
// rows without touching the plan header.
func (m *RecurringPlanMapperImpl) ToPriceModels(planID uint, prices []plan.Price) []models.RecurringPlanPriceModel {
	result := make([]models.RecurringPlanPriceModel, 0, len(prices))
	for _, p := range prices {
		result = append(result, models.RecurringPlanPriceModel{
			ID:                 p.ID,
			RecurringPlanID:    planID,
			Price:              p.Price,
			BillingPeriodValue: p.BillingPeriodValue,
			BillingPeriodUnit:  p.BillingPeriodUnit.String(),
			IsDefault:          p.IsDefault,
		})
	}
	return result
}

func (m *RecurringPlanMapperImpl) ToEntities(modelList []*models.RecurringPlanModel) ([]*plan.RecurringPlan, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.RecurringPlanModel) uint { return model.ID })
}
