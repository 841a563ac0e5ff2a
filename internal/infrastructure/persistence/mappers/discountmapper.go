package mappers

import (
	"fmt"

	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/mapper"
)

type DiscountMapper interface {
	ToEntity(model *models.DiscountModel) (*discount.Discount, error)
	ToModel(entity *discount.Discount) (*models.DiscountModel, error)
	ToEntities(models []*models.DiscountModel) ([]*discount.Discount, error)
}

type DiscountMapperImpl struct{}

func NewDiscountMapper() DiscountMapper {
	return &DiscountMapperImpl{}
}

func (m *DiscountMapperImpl) ToEntity(model *models.DiscountModel) (*discount.Discount, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := discount.Reconstruct(discount.ReconstructParams{
		ID:         model.ID,
		Code:       model.Code,
		Percent:    model.Percent,
		IsActive:   model.IsActive,
		StartsAt:   model.StartsAt,
		EndsAt:     model.EndsAt,
		ProductID:  model.ProductID,
		LimitUsage: model.LimitUsage,
		UsageLimit: model.UsageLimit,
		TimesUsed:  model.TimesUsed,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct discount entity: %w", err)
	}

	return entity, nil
}

func (m *DiscountMapperImpl) ToModel(entity *discount.Discount) (*models.DiscountModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DiscountModel{
		ID:         entity.ID(),
		Code:       entity.Code(),
		Percent:    entity.Percent(),
		IsActive:   entity.IsActive(),
		StartsAt:   entity.StartsAt(),
		EndsAt:     entity.EndsAt(),
		ProductID:  entity.ProductID(),
		LimitUsage: entity.LimitUsage(),
		UsageLimit: entity.UsageLimit(),
		TimesUsed:  entity.TimesUsed(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *DiscountMapperImpl) ToEntities(modelList []*models.DiscountModel) ([]*discount.Discount, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.DiscountModel) uint { return model.ID })
}
