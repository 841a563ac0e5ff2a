package mappers

import (
	"fmt"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/mapper"
)

type InvoiceMapper interface {
	ToEntity(model *models.InvoiceModel) (*invoice.Invoice, error)
	ToModel(entity *invoice.Invoice) (*models.InvoiceModel, error)
	ToEntities(models []*models.InvoiceModel) ([]*invoice.Invoice, error)
}

type InvoiceMapperImpl struct{}

func NewInvoiceMapper() InvoiceMapper {
	return &InvoiceMapperImpl{}
}

func (m *InvoiceMapperImpl) ToEntity(model *models.InvoiceModel) (*invoice.Invoice, error) {
	if model == nil {
		return nil, nil
	}

	state := invoice.State(model.State)
	if !invoice.ValidStates[state] {
		return nil, fmt.Errorf("invalid invoice state: %s", model.State)
	}

	var method *invoice.PaymentMethod
	if model.PaymentMethod != nil {
		pm := invoice.PaymentMethod(*model.PaymentMethod)
		if !pm.IsValid() {
			return nil, fmt.Errorf("invalid payment method: %s", *model.PaymentMethod)
		}
		method = &pm
	}

	lines := make([]invoice.Line, 0, len(model.Lines))
	for _, lm := range model.Lines {
		lines = append(lines, invoice.Line{
			ID:          lm.ID,
			ProductID:   lm.ProductID,
			Description: lm.Description,
			Quantity:    lm.Quantity,
			UnitPrice:   lm.UnitPrice,
			TaxPercent:  lm.TaxPercent,
			Amount:      lm.Amount,
		})
	}

	entity, err := invoice.Reconstruct(invoice.ReconstructParams{
		ID:             model.ID,
		Number:         model.Number,
		SubscriptionID: model.SubscriptionID,
		ContactID:      model.ContactID,
		InvoiceDate:    model.InvoiceDate,
		DueDate:        model.DueDate,
		State:          state,
		PaymentMethod:  method,
		PaymentDate:    model.PaymentDate,
		Lines:          lines,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct invoice entity: %w", err)
	}

	return entity, nil
}

func (m *InvoiceMapperImpl) ToModel(entity *invoice.Invoice) (*models.InvoiceModel, error) {
	if entity == nil {
		return nil, nil
	}

	var method *string
	if pm := entity.PaymentMethod(); pm != nil {
		s := string(*pm)
		method = &s
	}

	lines := make([]models.InvoiceLineModel, 0, len(entity.Lines()))
	for _, l := range entity.Lines() {
		lines = append(lines, models.InvoiceLineModel{
			ID:          l.ID,
			InvoiceID:   entity.ID(),
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxPercent:  l.TaxPercent,
			Amount:      l.Amount,
		})
	}

	return &models.InvoiceModel{
		ID:             entity.ID(),
		Number:         entity.Number(),
		SubscriptionID: entity.SubscriptionID(),
		ContactID:      entity.ContactID(),
		InvoiceDate:    entity.InvoiceDate(),
		DueDate:        entity.DueDate(),
		State:          entity.State().String(),
		PaymentMethod:  method,
		PaymentDate:    entity.PaymentDate(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
		Lines:          lines,
	}, nil
}

func (m *InvoiceMapperImpl) ToEntities(modelList []*models.InvoiceModel) ([]*invoice.Invoice, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.InvoiceModel) uint { return model.ID })
}
