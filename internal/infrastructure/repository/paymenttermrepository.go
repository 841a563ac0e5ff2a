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

type PaymentTermRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPaymentTermRepository(
	db *gorm.DB,
	logger logger.Interface,
) catalog.PaymentTermRepository {
	return &PaymentTermRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PaymentTermRepositoryImpl) Create(ctx context.Context, term *catalog.PaymentTerm) error {
	model := mappers.PaymentTermToModel(term)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create payment term in database", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create payment term: %w", err)
	}

	term.ID = model.ID
	term.CreatedAt = model.CreatedAt
	term.UpdatedAt = model.UpdatedAt

	r.logger.Infow("payment term created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *PaymentTermRepositoryImpl) Update(ctx context.Context, term *catalog.PaymentTerm) error {
	model := mappers.PaymentTermToModel(term)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update payment term in database", "id", term.ID, "error", err)
		return fmt.Errorf("failed to update payment term: %w", err)
	}

	return nil
}

func (r *PaymentTermRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PaymentTermModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete payment term", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete payment term: %w", result.Error)
	}

	r.logger.Infow("payment term deleted", "id", id)
	return nil
}

func (r *PaymentTermRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.PaymentTerm, error) {
	var model models.PaymentTermModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get payment term by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get payment term: %w", err)
	}

	return mappers.PaymentTermToEntity(&model), nil
}

func (r *PaymentTermRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*catalog.PaymentTerm, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PaymentTermModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count payment terms", "error", err)
		return nil, 0, fmt.Errorf("failed to count payment terms: %w", err)
	}

	var modelList []*models.PaymentTermModel
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list payment terms", "error", err)
		return nil, 0, fmt.Errorf("failed to list payment terms: %w", err)
	}

	terms := make([]*catalog.PaymentTerm, 0, len(modelList))
	for _, m := range modelList {
		terms = append(terms, mappers.PaymentTermToEntity(m))
	}
	return terms, total, nil
}
