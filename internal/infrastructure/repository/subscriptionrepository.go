package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/mappers"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/db"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(
	db *gorm.DB,
	logger logger.Interface,
) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, entity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "number", model.Number, "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set subscription ID", "error", err)
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created", "id", model.ID, "number", model.Number, "contact_id", model.ContactID)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, entity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	// Omit lines; they change only through ReplaceLines.
	if err := db.GetTxFromContext(ctx, r.db).Omit("Lines").Save(model).Error; err != nil {
		r.logger.Errorw("failed to update subscription in database", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) ReplaceLines(ctx context.Context, subscriptionID uint, lines []subscription.Line) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("subscription_id = ?", subscriptionID).Delete(&models.SubscriptionLineModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete subscription lines", "subscription_id", subscriptionID, "error", err)
		return fmt.Errorf("failed to delete subscription lines: %w", err)
	}

	lineModels := r.mapper.ToLineModels(subscriptionID, lines)
	for i := range lineModels {
		lineModels[i].ID = 0
	}
	if len(lineModels) > 0 {
		if err := tx.Create(&lineModels).Error; err != nil {
			r.logger.Errorw("failed to recreate subscription lines", "subscription_id", subscriptionID, "error", err)
			return fmt.Errorf("failed to recreate subscription lines: %w", err)
		}
	}

	return nil
}

// Delete removes the subscription and its lines in one transaction so a
// failure after the line delete leaves both intact.
func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subscription_id = ?", id).Delete(&models.SubscriptionLineModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete subscription lines: %w", err)
		}
		if err := tx.Delete(&models.SubscriptionModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to delete subscription", "id", id, "error", err)
		return err
	}

	r.logger.Infow("subscription deleted", "id", id)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}

	return entity, nil
}

func (r *SubscriptionRepositoryImpl) GetByNumber(ctx context.Context, number string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Where("number = ?", number).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by number", "number", number, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model to entity", "number", number, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}

	return entity, nil
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{})

	if filter.ContactID != 0 {
		query = query.Where("contact_id = ?", filter.ContactID)
	}
	if filter.RecurringPlanID != 0 {
		query = query.Where("recurring_plan_id = ?", filter.RecurringPlanID)
	}
	if filter.State != "" {
		query = query.Where("state = ?", string(filter.State))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	var modelList []*models.SubscriptionModel
	err := query.
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map subscription models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map subscriptions: %w", err)
	}

	return entities, total, nil
}

func (r *SubscriptionRepositoryImpl) HighestNumber(ctx context.Context, prefix string) (string, error) {
	var number string

	// Length-first ordering keeps Sub1000 above Sub999 despite the string sort.
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Select("number").
		Where("number LIKE ?", prefix+"%").
		Order("CHAR_LENGTH(number) DESC, number DESC").
		Limit(1).
		Scan(&number).Error
	if err != nil {
		r.logger.Errorw("failed to get highest subscription number", "prefix", prefix, "error", err)
		return "", fmt.Errorf("failed to get highest subscription number: %w", err)
	}

	return number, nil
}

func (r *SubscriptionRepositoryImpl) CountByState(ctx context.Context) (map[subscription.State]int64, error) {
	var rows []struct {
		State string
		Count int64
	}

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Select("state, COUNT(*) as count").
		Group("state").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count subscriptions by state", "error", err)
		return nil, fmt.Errorf("failed to count subscriptions by state: %w", err)
	}

	counts := make(map[subscription.State]int64, len(rows))
	for _, row := range rows {
		counts[subscription.State(row.State)] = row.Count
	}
	return counts, nil
}
