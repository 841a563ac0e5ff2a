package mappers

import (
	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
)

// Catalog records are plain structs on both sides, so their mappers are
// simple field copies without error paths.

func ContactToEntity(model *models.ContactModel) *catalog.Contact {
	if model == nil {
		return nil
	}
	return &catalog.Contact{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		UserID:    model.UserID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ContactToModel(entity *catalog.Contact) *models.ContactModel {
	if entity == nil {
		return nil
	}
	return &models.ContactModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Email:     entity.Email,
		Phone:     entity.Phone,
		UserID:    entity.UserID,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func ProductToEntity(model *models.ProductModel) *catalog.Product {
	if model == nil {
		return nil
	}
	return &catalog.Product{
		ID:        model.ID,
		Name:      model.Name,
		ListPrice: model.ListPrice,
		TaxID:     model.TaxID,
		Active:    model.Active,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ProductToModel(entity *catalog.Product) *models.ProductModel {
	if entity == nil {
		return nil
	}
	return &models.ProductModel{
		ID:        entity.ID,
		Name:      entity.Name,
		ListPrice: entity.ListPrice,
		TaxID:     entity.TaxID,
		Active:    entity.Active,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func TaxToEntity(model *models.TaxModel) *catalog.Tax {
	if model == nil {
		return nil
	}
	return &catalog.Tax{
		ID:        model.ID,
		Name:      model.Name,
		Percent:   model.Percent,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func TaxToModel(entity *catalog.Tax) *models.TaxModel {
	if entity == nil {
		return nil
	}
	return &models.TaxModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Percent:   entity.Percent,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func PaymentTermToEntity(model *models.PaymentTermModel) *catalog.PaymentTerm {
	if model == nil {
		return nil
	}
	return &catalog.PaymentTerm{
		ID:           model.ID,
		Name:         model.Name,
		DueAfterDays: model.DueAfterDays,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func PaymentTermToModel(entity *catalog.PaymentTerm) *models.PaymentTermModel {
	if entity == nil {
		return nil
	}
	return &models.PaymentTermModel{
		ID:           entity.ID,
		Name:         entity.Name,
		DueAfterDays: entity.DueAfterDays,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}
