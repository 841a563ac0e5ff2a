package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type CreateProductCommand struct {
	Name        string
	Description string
	ListPrice   decimal.Decimal
	TaxID       *uint
	Active      bool
}

type CreateProductUseCase struct {
	productRepo catalog.ProductRepository
	taxRepo     catalog.TaxRepository
	logger      logger.Interface
}

func NewCreateProductUseCase(
	productRepo catalog.ProductRepository,
	taxRepo catalog.TaxRepository,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo, taxRepo: taxRepo, logger: logger}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*catalog.Product, error) {
	product := &catalog.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		ListPrice:   cmd.ListPrice,
		TaxID:       cmd.TaxID,
		Active:      cmd.Active,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := checkTaxExists(ctx, uc.taxRepo, cmd.TaxID); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, apperrors.NewInternalError("failed to create product")
	}

	uc.logger.Infow("product created", "id", product.ID, "name", product.Name)
	return product, nil
}

func checkTaxExists(ctx context.Context, taxRepo catalog.TaxRepository, taxID *uint) error {
	if taxID == nil {
		return nil
	}
	tax, err := taxRepo.GetByID(ctx, *taxID)
	if err != nil {
		return apperrors.NewInternalError("failed to get tax")
	}
	if tax == nil {
		return apperrors.NewNotFoundError("tax not found")
	}
	return nil
}

type UpdateProductCommand struct {
	ProductID   uint
	Name        *string
	Description *string
	ListPrice   *decimal.Decimal
	TaxID       **uint
	Active      *bool
}

type UpdateProductUseCase struct {
	productRepo catalog.ProductRepository
	taxRepo     catalog.TaxRepository
	logger      logger.Interface
}

func NewUpdateProductUseCase(
	productRepo catalog.ProductRepository,
	taxRepo catalog.TaxRepository,
	logger logger.Interface,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo, taxRepo: taxRepo, logger: logger}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*catalog.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "id", cmd.ProductID)
		return nil, apperrors.NewInternalError("failed to get product")
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	if cmd.Name != nil {
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.ListPrice != nil {
		product.ListPrice = *cmd.ListPrice
	}
	if cmd.TaxID != nil {
		product.TaxID = *cmd.TaxID
	}
	if cmd.Active != nil {
		product.Active = *cmd.Active
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := checkTaxExists(ctx, uc.taxRepo, product.TaxID); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, apperrors.NewInternalError("failed to update product")
	}

	uc.logger.Infow("product updated", "id", product.ID, "name", product.Name)
	return product, nil
}

type DeleteProductCommand struct {
	ProductID uint
}

type DeleteProductUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewDeleteProductUseCase(
	productRepo catalog.ProductRepository,
	logger logger.Interface,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo, logger: logger}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, cmd DeleteProductCommand) error {
	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "id", cmd.ProductID)
		return apperrors.NewInternalError("failed to get product")
	}
	if product == nil {
		return apperrors.NewNotFoundError("product not found")
	}

	if err := uc.productRepo.Delete(ctx, cmd.ProductID); err != nil {
		return apperrors.NewInternalError("failed to delete product")
	}

	uc.logger.Infow("product deleted", "id", cmd.ProductID)
	return nil
}

type GetProductCommand struct {
	ProductID uint
}

type GetProductUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewGetProductUseCase(
	productRepo catalog.ProductRepository,
	logger logger.Interface,
) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo, logger: logger}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, cmd GetProductCommand) (*catalog.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "id", cmd.ProductID)
		return nil, apperrors.NewInternalError("failed to get product")
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	return product, nil
}

type ListProductsCommand struct {
	Pagination utils.Pagination
}

type ListProductsUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewListProductsUseCase(
	productRepo catalog.ProductRepository,
	logger logger.Interface,
) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo, logger: logger}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, cmd ListProductsCommand) ([]*catalog.Product, int64, error) {
	products, total, err := uc.productRepo.List(ctx, cmd.Pagination.Offset(), cmd.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list products")
	}

	return products, total, nil
}
