package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/subflow-io/subflow/internal/domain/discount"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/mappers"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/db"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type DiscountRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DiscountMapper
	logger logger.Interface
}

func NewDiscountRepository(
	db *gorm.DB,
	logger logger.Interface,
) discount.Repository {
	return &DiscountRepositoryImpl{
		db:     db,
		mapper: mappers.NewDiscountMapper(),
		logger: logger,
	}
}

func (r *DiscountRepositoryImpl) Create(ctx context.Context, entity *discount.Discount) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map discount entity to model", "error", err)
		return fmt.Errorf("failed to map discount entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create discount in database", "code", model.Code, "error", err)
		return fmt.Errorf("failed to create discount: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set discount ID", "error", err)
		return fmt.Errorf("failed to set discount ID: %w", err)
	}

	r.logger.Infow("discount created", "id", model.ID, "code", model.Code)
	return nil
}

func (r *DiscountRepositoryImpl) Update(ctx context.Context, entity *discount.Discount) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map discount entity to model", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to map discount entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update discount in database", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to update discount: %w", err)
	}

	return nil
}

func (r *DiscountRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.DiscountModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete discount", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete discount: %w", result.Error)
	}

	r.logger.Infow("discount deleted", "id", id)
	return nil
}

func (r *DiscountRepositoryImpl) GetByID(ctx context.Context, id uint) (*discount.Discount, error) {
	var model models.DiscountModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get discount by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map discount model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map discount: %w", err)
	}

	return entity, nil
}

func (r *DiscountRepositoryImpl) GetByCode(ctx context.Context, code string) (*discount.Discount, error) {
	var model models.DiscountModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("code = ?", discount.NormalizeCode(code)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get discount by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map discount model to entity", "code", code, "error", err)
		return nil, fmt.Errorf("failed to map discount: %w", err)
	}

	return entity, nil
}

func (r *DiscountRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*discount.Discount, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.DiscountModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count discounts", "error", err)
		return nil, 0, fmt.Errorf("failed to count discounts: %w", err)
	}

	var modelList []*models.DiscountModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list discounts", "error", err)
		return nil, 0, fmt.Errorf("failed to list discounts: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map discount models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map discounts: %w", err)
	}

	return entities, total, nil
}

// ReserveUsage increments times_used in a single conditional UPDATE that
// enforces the cap for usage-limited codes. Two concurrent reservations for
// the last slot race on the row lock; the loser sees zero affected rows and
// reports false.
func (r *DiscountRepositoryImpl) ReserveUsage(ctx context.Context, id uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.DiscountModel{}).
		Where("id = ? AND (limit_usage = ? OR times_used < usage_limit)", id, false).
		UpdateColumn("times_used", gorm.Expr("times_used + 1"))
	if result.Error != nil {
		r.logger.Errorw("failed to reserve discount usage", "id", id, "error", result.Error)
		return false, fmt.Errorf("failed to reserve discount usage: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Infow("discount usage reservation rejected", "id", id)
		return false, nil
	}
	return true, nil
}
