package mappers

import (
	"fmt"

	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
	ToLineModels(subscriptionID uint, lines []subscription.Line) []models.SubscriptionLineModel
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	state := subscription.State(model.State)
	if !subscription.ValidStates[state] {
		return nil, fmt.Errorf("invalid subscription state: %s", model.State)
	}

	lines := make([]subscription.Line, 0, len(model.Lines))
	for _, lm := range model.Lines {
		lines = append(lines, subscription.Line{
			ID:              lm.ID,
			ProductID:       lm.ProductID,
			Quantity:        lm.Quantity,
			UnitPrice:       lm.UnitPrice,
			DiscountPercent: lm.DiscountPercent,
			TaxPercent:      lm.TaxPercent,
			Amount:          lm.Amount,
		})
	}

	entity, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:                  model.ID,
		Number:              model.Number,
		ContactID:           model.ContactID,
		RecurringPlanID:     model.RecurringPlanID,
		State:               state,
		ExpirationDate:      model.ExpirationDate,
		QuotationTemplateID: model.QuotationTemplateID,
		OrderDate:           model.OrderDate,
		StartDate:           model.StartDate,
		NextInvoiceDate:     model.NextInvoiceDate,
		PaymentTermID:       model.PaymentTermID,
		SalespersonID:       model.SalespersonID,
		Lines:               lines,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:                  entity.ID(),
		Number:              entity.Number(),
		ContactID:           entity.ContactID(),
		RecurringPlanID:     entity.RecurringPlanID(),
		State:               entity.State().String(),
		ExpirationDate:      entity.ExpirationDate(),
		QuotationTemplateID: entity.QuotationTemplateID(),
		OrderDate:           entity.OrderDate(),
		StartDate:           entity.StartDate(),
		NextInvoiceDate:     entity.NextInvoiceDate(),
		PaymentTermID:       entity.PaymentTermID(),
		SalespersonID:       entity.SalespersonID(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
		Lines:               m.ToLineModels(entity.ID(), entity.Lines()),
	}, nil
}

// ToLineModels maps the line collection separately so line replacement can
// write rows without touching the subscription header.
func (m *SubscriptionMapperImpl) ToLineModels(subscriptionID uint, lines []subscription.Line) []models.SubscriptionLineModel {
	result := make([]models.SubscriptionLineModel, 0, len(lines))
	for _, l := range lines {
		result = append(result, models.SubscriptionLineModel{
			ID:              l.ID,
			SubscriptionID:  subscriptionID,
			ProductID:       l.ProductID,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			TaxPercent:      l.TaxPercent,
			Amount:          l.Amount,
		})
	}
	return result
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}
