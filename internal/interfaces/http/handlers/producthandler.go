package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/application/catalog/usecases"
	"github.com/subflow-io/subflow/internal/interfaces/dto"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type ProductHandler struct {
	createUC *usecases.CreateProductUseCase
	updateUC *usecases.UpdateProductUseCase
	deleteUC *usecases.DeleteProductUseCase
	getUC    *usecases.GetProductUseCase
	listUC   *usecases.ListProductsUseCase
	logger   logger.Interface
}

func NewProductHandler(
	createUC *usecases.CreateProductUseCase,
	updateUC *usecases.UpdateProductUseCase,
	deleteUC *usecases.DeleteProductUseCase,
	getUC *usecases.GetProductUseCase,
	listUC *usecases.ListProductsUseCase,
	logger logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ListPrice   string `json:"list_price" binding:"required"`
	TaxID       *uint  `json:"tax_id"`
	Active      *bool  `json:"active"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ListPrice   *string `json:"list_price"`
	TaxID       **uint  `json:"tax_id"`
	Active      *bool   `json:"active"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	listPrice, err := decimal.NewFromString(req.ListPrice)
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid list_price: "+req.ListPrice))
		return
	}

	// New products default to active unless explicitly disabled.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		ListPrice:   listPrice,
		TaxID:       req.TaxID,
		Active:      active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromProduct(result), "Product created successfully")
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update product", "product_id", id, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.UpdateProductCommand{
		ProductID:   id,
		Name:        req.Name,
		Description: req.Description,
		TaxID:       req.TaxID,
		Active:      req.Active,
	}
	if req.ListPrice != nil {
		listPrice, err := decimal.NewFromString(*req.ListPrice)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid list_price: "+*req.ListPrice))
			return
		}
		cmd.ListPrice = &listPrice
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromProduct(result))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteProductCommand{ProductID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetProductCommand{ProductID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromProduct(result))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	products, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListProductsCommand{Pagination: pagination})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.FromProducts(products), total, pagination.Page, pagination.PageSize)
}
