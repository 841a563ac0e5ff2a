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

type ProductRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewProductRepository(
	db *gorm.DB,
	logger logger.Interface,
) catalog.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *catalog.Product) error {
	model := mappers.ProductToModel(product)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create product in database", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}

	product.ID = model.ID
	product.CreatedAt = model.CreatedAt
	product.UpdatedAt = model.UpdatedAt

	r.logger.Infow("product created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *catalog.Product) error {
	model := mappers.ProductToModel(product)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update product in database", "id", product.ID, "error", err)
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete product", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}

	r.logger.Infow("product deleted", "id", id)
	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var model models.ProductModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get product by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return mappers.ProductToEntity(&model), nil
}

func (r *ProductRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*catalog.Product, error) {
	if len(ids) == 0 {
		return map[uint]*catalog.Product{}, nil
	}

	var modelList []*models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get products by IDs", "error", err)
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	result := make(map[uint]*catalog.Product, len(modelList))
	for _, m := range modelList {
		result[m.ID] = mappers.ProductToEntity(m)
	}
	return result, nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*catalog.Product, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count products", "error", err)
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var modelList []*models.ProductModel
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*catalog.Product, 0, len(modelList))
	for _, m := range modelList {
		products = append(products, mappers.ProductToEntity(m))
	}
	return products, total, nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count products", "error", err)
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
