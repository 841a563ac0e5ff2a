package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/application/discount/usecases"
	"github.com/subflow-io/subflow/internal/interfaces/dto"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type DiscountHandler struct {
	createUC   *usecases.CreateDiscountUseCase
	updateUC   *usecases.UpdateDiscountUseCase
	deleteUC   *usecases.DeleteDiscountUseCase
	getUC      *usecases.GetDiscountUseCase
	listUC     *usecases.ListDiscountsUseCase
	validateUC *usecases.ValidateDiscountUseCase
	logger     logger.Interface
}

func NewDiscountHandler(
	createUC *usecases.CreateDiscountUseCase,
	updateUC *usecases.UpdateDiscountUseCase,
	deleteUC *usecases.DeleteDiscountUseCase,
	getUC *usecases.GetDiscountUseCase,
	listUC *usecases.ListDiscountsUseCase,
	validateUC *usecases.ValidateDiscountUseCase,
	logger logger.Interface,
) *DiscountHandler {
	return &DiscountHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		getUC:      getUC,
		listUC:     listUC,
		validateUC: validateUC,
		logger:     logger,
	}
}

type CreateDiscountRequest struct {
	Code       string     `json:"code" binding:"required"`
	Percent    string     `json:"percent" binding:"required"`
	IsActive   bool       `json:"is_active"`
	StartsAt   *time.Time `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
	ProductID  *uint      `json:"product_id"`
	LimitUsage bool       `json:"limit_usage"`
	UsageLimit *int       `json:"usage_limit"`
}

type UpdateDiscountRequest struct {
	Code       *string     `json:"code"`
	Percent    *string     `json:"percent"`
	IsActive   *bool       `json:"is_active"`
	StartsAt   **time.Time `json:"starts_at"`
	EndsAt     **time.Time `json:"ends_at"`
	ProductID  **uint      `json:"product_id"`
	LimitUsage *bool       `json:"limit_usage"`
	UsageLimit *int        `json:"usage_limit"`
}

type ValidateDiscountRequest struct {
	Code      string `json:"code" binding:"required"`
	ProductID *uint  `json:"product_id"`
}

func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create discount", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	percent, err := decimal.NewFromString(req.Percent)
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid percent: "+req.Percent))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateDiscountCommand{
		Code:       req.Code,
		Percent:    percent,
		IsActive:   req.IsActive,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		ProductID:  req.ProductID,
		LimitUsage: req.LimitUsage,
		UsageLimit: req.UsageLimit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromDiscount(result), "Discount created successfully")
}

func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "discount")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update discount", "discount_id", id, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.UpdateDiscountCommand{
		DiscountID: id,
		Code:       req.Code,
		IsActive:   req.IsActive,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		ProductID:  req.ProductID,
		LimitUsage: req.LimitUsage,
		UsageLimit: req.UsageLimit,
	}
	if req.Percent != nil {
		percent, err := decimal.NewFromString(*req.Percent)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid percent: "+*req.Percent))
			return
		}
		cmd.Percent = &percent
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromDiscount(result))
}

func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "discount")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDiscountCommand{DiscountID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Discount deleted successfully", nil)
}

func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "discount")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetDiscountCommand{DiscountID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromDiscount(result))
}

func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	discounts, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListDiscountsCommand{Pagination: pagination})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.FromDiscounts(discounts), total, pagination.Page, pagination.PageSize)
}

// ValidateDiscount checks a code without consuming usage.
func (h *DiscountHandler) ValidateDiscount(c *gin.Context) {
	var req ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for validate discount", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.validateUC.Execute(c.Request.Context(), usecases.ValidateDiscountCommand{
		Code:      req.Code,
		ProductID: req.ProductID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromDiscountValidation(result))
}
