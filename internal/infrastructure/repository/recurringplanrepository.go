package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/subflow-io/subflow/internal/domain/plan"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/mappers"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/db"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type RecurringPlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RecurringPlanMapper
	logger logger.Interface
}

func NewRecurringPlanRepository(
	db *gorm.DB,
	logger logger.Interface,
) plan.Repository {
	return &RecurringPlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewRecurringPlanMapper(),
		logger: logger,
	}
}

func (r *RecurringPlanRepositoryImpl) Create(ctx context.Context, entity *plan.RecurringPlan) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan in database", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set plan ID", "error", err)
		return fmt.Errorf("failed to set plan ID: %w", err)
	}

	r.logger.Infow("recurring plan created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *RecurringPlanRepositoryImpl) Update(ctx context.Context, entity *plan.RecurringPlan) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit("Prices").Save(model).Error; err != nil {
		r.logger.Errorw("failed to update plan in database", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to update plan: %w", err)
	}

	// Price tiers are replaced wholesale on every update.
	if err := tx.Where("recurring_plan_id = ?", entity.ID()).Delete(&models.RecurringPlanPriceModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete plan prices", "plan_id", entity.ID(), "error", err)
		return fmt.Errorf("failed to delete plan prices: %w", err)
	}

	priceModels := r.mapper.ToPriceModels(entity.ID(), entity.Prices())
	for i := range priceModels {
		priceModels[i].ID = 0
	}
	if len(priceModels) > 0 {
		if err := tx.Create(&priceModels).Error; err != nil {
			r.logger.Errorw("failed to recreate plan prices", "plan_id", entity.ID(), "error", err)
			return fmt.Errorf("failed to recreate plan prices: %w", err)
		}
	}

	return nil
}

func (r *RecurringPlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("recurring_plan_id = ?", id).Delete(&models.RecurringPlanPriceModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete plan prices", "plan_id", id, "error", err)
		return fmt.Errorf("failed to delete plan prices: %w", err)
	}

	result := tx.Delete(&models.RecurringPlanModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}

	r.logger.Infow("recurring plan deleted", "id", id)
	return nil
}

func (r *RecurringPlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*plan.RecurringPlan, error) {
	var model models.RecurringPlanModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Prices", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map plan model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map plan: %w", err)
	}

	return entity, nil
}

func (r *RecurringPlanRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*plan.RecurringPlan, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.RecurringPlanModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	var modelList []*models.RecurringPlanModel
	err := query.
		Preload("Prices", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map plan models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map plans: %w", err)
	}

	return entities, total, nil
}

func (r *RecurringPlanRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RecurringPlanModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count plans", "error", err)
		return 0, fmt.Errorf("failed to count plans: %w", err)
	}
	return count, nil
}
