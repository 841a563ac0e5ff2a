package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/mappers"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/constants"
	"github.com/subflow-io/subflow/internal/shared/db"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type InvoiceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.InvoiceMapper
	logger logger.Interface
}

func NewInvoiceRepository(
	db *gorm.DB,
	logger logger.Interface,
) invoice.Repository {
	return &InvoiceRepositoryImpl{
		db:     db,
		mapper: mappers.NewInvoiceMapper(),
		logger: logger,
	}
}

func (r *InvoiceRepositoryImpl) Create(ctx context.Context, entity *invoice.Invoice) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map invoice entity to model", "error", err)
		return fmt.Errorf("failed to map invoice entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create invoice in database", "number", model.Number, "error", err)
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set invoice ID", "error", err)
		return fmt.Errorf("failed to set invoice ID: %w", err)
	}

	r.logger.Infow("invoice created", "id", model.ID, "number", model.Number, "subscription_id", model.SubscriptionID)
	return nil
}

func (r *InvoiceRepositoryImpl) Update(ctx context.Context, entity *invoice.Invoice) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map invoice entity to model", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to map invoice entity: %w", err)
	}

	// Lines are a creation-time snapshot and never change. Payment fields are
	// updated with Select so clearing them on cancel persists the NULLs.
	err = db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{ID: model.ID}).
		Select("state", "payment_method", "payment_date", "updated_at").
		Updates(map[string]interface{}{
			"state":          model.State,
			"payment_method": model.PaymentMethod,
			"payment_date":   model.PaymentDate,
			"updated_at":     model.UpdatedAt,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update invoice in database", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	return nil
}

func (r *InvoiceRepositoryImpl) GetByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	var model models.InvoiceModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get invoice by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map invoice model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map invoice: %w", err)
	}

	return entity, nil
}

func (r *InvoiceRepositoryImpl) List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.InvoiceModel{})

	if filter.SubscriptionID != 0 {
		query = query.Where("subscription_id = ?", filter.SubscriptionID)
	}
	if filter.ContactID != 0 {
		query = query.Where("contact_id = ?", filter.ContactID)
	}
	if filter.State != "" {
		query = query.Where("state = ?", string(filter.State))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count invoices", "error", err)
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var modelList []*models.InvoiceModel
	err := query.
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list invoices", "error", err)
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map invoice models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map invoices: %w", err)
	}

	return entities, total, nil
}

func (r *InvoiceRepositoryImpl) CountBySubscription(ctx context.Context, subscriptionID uint) (int64, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Where("subscription_id = ?", subscriptionID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count invoices by subscription", "subscription_id", subscriptionID, "error", err)
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	return count, nil
}

func (r *InvoiceRepositoryImpl) HighestNumber(ctx context.Context, prefix string) (string, error) {
	var number string

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Select("number").
		Where("number LIKE ?", prefix+"%").
		Order("CHAR_LENGTH(number) DESC, number DESC").
		Limit(1).
		Scan(&number).Error
	if err != nil {
		r.logger.Errorw("failed to get highest invoice number", "prefix", prefix, "error", err)
		return "", fmt.Errorf("failed to get highest invoice number: %w", err)
	}

	return number, nil
}

func (r *InvoiceRepositoryImpl) CountByState(ctx context.Context) (map[invoice.State]int64, error) {
	var rows []struct {
		State string
		Count int64
	}

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Select("state, COUNT(*) as count").
		Group("state").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count invoices by state", "error", err)
		return nil, fmt.Errorf("failed to count invoices by state: %w", err)
	}

	counts := make(map[invoice.State]int64, len(rows))
	for _, row := range rows {
		counts[invoice.State(row.State)] = row.Count
	}
	return counts, nil
}

func (r *InvoiceRepositoryImpl) PaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableInvoiceLines).
		Select("SUM("+constants.TableInvoiceLines+".amount)").
		Joins("JOIN "+constants.TableInvoices+" ON "+constants.TableInvoices+".id = "+constants.TableInvoiceLines+".invoice_id").
		Where(constants.TableInvoices+".state = ?", string(invoice.StatePaid)).
		Scan(&total).Error
	if err != nil {
		r.logger.Errorw("failed to sum paid revenue", "error", err)
		return decimal.Zero, fmt.Errorf("failed to sum paid revenue: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
