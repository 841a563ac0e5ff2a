package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/mappers"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/db"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type TaxRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTaxRepository(
	db *gorm.DB,
	logger logger.Interface,
) catalog.TaxRepository {
	return &TaxRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *TaxRepositoryImpl) Create(ctx context.Context, tax *catalog.Tax) error {
	model := mappers.TaxToModel(tax)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create tax in database", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create tax: %w", err)
	}

	tax.ID = model.ID
	tax.CreatedAt = model.CreatedAt
	tax.UpdatedAt = model.UpdatedAt

	r.logger.Infow("tax created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *TaxRepositoryImpl) Update(ctx context.Context, tax *catalog.Tax) error {
	model := mappers.TaxToModel(tax)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update tax in database", "id", tax.ID, "error", err)
		return fmt.Errorf("failed to update tax: %w", err)
	}

	return nil
}

func (r *TaxRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TaxModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete tax", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete tax: %w", result.Error)
	}

	r.logger.Infow("tax deleted", "id", id)
	return nil
}

func (r *TaxRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Tax, error) {
	var model models.TaxModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tax by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get tax: %w", err)
	}

	return mappers.TaxToEntity(&model), nil
}

func (r *TaxRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*catalog.Tax, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TaxModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count taxes", "error", err)
		return nil, 0, fmt.Errorf("failed to count taxes: %w", err)
	}

	var modelList []*models.TaxModel
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list taxes", "error", err)
		return nil, 0, fmt.Errorf("failed to list taxes: %w", err)
	}

	taxes := make([]*catalog.Tax, 0, len(modelList))
	for _, m := range modelList {
		taxes = append(taxes, mappers.TaxToEntity(m))
	}
	return taxes, total, nil
}
