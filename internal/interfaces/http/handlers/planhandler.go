package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/application/plan/usecases"
	"github.com/subflow-io/subflow/internal/interfaces/dto"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type PlanHandler struct {
	createUC *usecases.CreatePlanUseCase
	updateUC *usecases.UpdatePlanUseCase
	deleteUC *usecases.DeletePlanUseCase
	getUC    *usecases.GetPlanUseCase
	listUC   *usecases.ListPlansUseCase
	logger   logger.Interface
}

func NewPlanHandler(
	createUC *usecases.CreatePlanUseCase,
	updateUC *usecases.UpdatePlanUseCase,
	deleteUC *usecases.DeletePlanUseCase,
	getUC *usecases.GetPlanUseCase,
	listUC *usecases.ListPlansUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type PlanPriceRequest struct {
	Price              string `json:"price" binding:"required"`
	BillingPeriodValue int    `json:"billing_period_value" binding:"required,min=1"`
	BillingPeriodUnit  string `json:"billing_period_unit" binding:"required,oneof=DAY MONTH YEAR"`
	IsDefault          bool   `json:"is_default"`
}

type CreatePlanRequest struct {
	Name                  string             `json:"name" binding:"required"`
	MinQuantity           int                `json:"min_quantity"`
	StartDate             *time.Time         `json:"start_date"`
	EndDate               *time.Time         `json:"end_date"`
	AutoClose             bool               `json:"auto_close"`
	AutoCloseValidityDays *int               `json:"auto_close_validity_days"`
	Pausable              bool               `json:"pausable"`
	Renewable             bool               `json:"renewable"`
	Closable              bool               `json:"closable"`
	Prices                []PlanPriceRequest `json:"prices" binding:"required,min=1"`
}

type UpdatePlanRequest struct {
	Name                  *string             `json:"name"`
	MinQuantity           *int                `json:"min_quantity"`
	StartDate             *time.Time          `json:"start_date"`
	EndDate               *time.Time          `json:"end_date"`
	AutoClose             *bool               `json:"auto_close"`
	AutoCloseValidityDays *int                `json:"auto_close_validity_days"`
	Pausable              *bool               `json:"pausable"`
	Renewable             *bool               `json:"renewable"`
	Closable              *bool               `json:"closable"`
	Prices                *[]PlanPriceRequest `json:"prices"`
}

func parsePriceInputs(reqs []PlanPriceRequest) ([]usecases.PriceInput, error) {
	inputs := make([]usecases.PriceInput, 0, len(reqs))
	for _, req := range reqs {
		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid price: " + req.Price)
		}
		inputs = append(inputs, usecases.PriceInput{
			Price:              price,
			BillingPeriodValue: req.BillingPeriodValue,
			BillingPeriodUnit:  req.BillingPeriodUnit,
			IsDefault:          req.IsDefault,
		})
	}
	return inputs, nil
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	prices, err := parsePriceInputs(req.Prices)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:                  req.Name,
		MinQuantity:           req.MinQuantity,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		AutoClose:             req.AutoClose,
		AutoCloseValidityDays: req.AutoCloseValidityDays,
		Pausable:              req.Pausable,
		Renewable:             req.Renewable,
		Closable:              req.Closable,
		Prices:                prices,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromPlan(result), "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_id", id, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.UpdatePlanCommand{
		PlanID:                id,
		Name:                  req.Name,
		MinQuantity:           req.MinQuantity,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		AutoClose:             req.AutoClose,
		AutoCloseValidityDays: req.AutoCloseValidityDays,
		Pausable:              req.Pausable,
		Renewable:             req.Renewable,
		Closable:              req.Closable,
	}
	if req.Prices != nil {
		prices, err := parsePriceInputs(*req.Prices)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.Prices = &prices
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromPlan(result))
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeletePlanCommand{PlanID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deleted successfully", nil)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPlanCommand{PlanID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromPlan(result))
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	plans, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListPlansCommand{Pagination: pagination})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.FromPlans(plans), total, pagination.Page, pagination.PageSize)
}
