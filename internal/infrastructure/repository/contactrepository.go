package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/mappers"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/db"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type ContactRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewContactRepository(
	db *gorm.DB,
	logger logger.Interface,
) catalog.ContactRepository {
	return &ContactRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *catalog.Contact) error {
	model := mappers.ContactToModel(contact)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create contact in database", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create contact: %w", err)
	}

	contact.ID = model.ID
	contact.CreatedAt = model.CreatedAt
	contact.UpdatedAt = model.UpdatedAt

	r.logger.Infow("contact created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *ContactRepositoryImpl) Update(ctx context.Context, contact *catalog.Contact) error {
	model := mappers.ContactToModel(contact)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update contact in database", "id", contact.ID, "error", err)
		return fmt.Errorf("failed to update contact: %w", err)
	}

	return nil
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ContactModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete contact", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}

	r.logger.Infow("contact deleted", "id", id)
	return nil
}

func (r *ContactRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Contact, error) {
	var model models.ContactModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get contact by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	contact := mappers.ContactToEntity(&model)
	if err := r.fillActiveSubscriptions(ctx, []*catalog.Contact{contact}); err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *ContactRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*catalog.Contact, error) {
	var model models.ContactModel

	err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get contact by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return mappers.ContactToEntity(&model), nil
}

func (r *ContactRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*catalog.Contact, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ContactModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count contacts", "error", err)
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	var modelList []*models.ContactModel
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list contacts", "error", err)
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts := make([]*catalog.Contact, 0, len(modelList))
	for _, m := range modelList {
		contacts = append(contacts, mappers.ContactToEntity(m))
	}

	if err := r.fillActiveSubscriptions(ctx, contacts); err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *ContactRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ContactModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count contacts", "error", err)
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return count, nil
}

// fillActiveSubscriptions derives the running subscription count (CONFIRMED
// and PAUSED) for the given contacts in one grouped query.
func (r *ContactRepositoryImpl) fillActiveSubscriptions(ctx context.Context, contacts []*catalog.Contact) error {
	if len(contacts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.ID)
	}

	var rows []struct {
		ContactID uint
		Count     int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Select("contact_id, COUNT(*) as count").
		Where("contact_id IN ? AND state IN ?", ids, []string{
			string(subscription.StateConfirmed),
			string(subscription.StatePaused),
		}).
		Group("contact_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count active subscriptions per contact", "error", err)
		return fmt.Errorf("failed to count active subscriptions: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ContactID] = row.Count
	}
	for _, c := range contacts {
		c.ActiveSubscriptions = counts[c.ID]
	}
	return nil
}
