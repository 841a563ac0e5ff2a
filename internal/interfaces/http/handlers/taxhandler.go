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

type TaxHandler struct {
	createUC *usecases.CreateTaxUseCase
	updateUC *usecases.UpdateTaxUseCase
	deleteUC *usecases.DeleteTaxUseCase
	getUC    *usecases.GetTaxUseCase
	listUC   *usecases.ListTaxesUseCase
	logger   logger.Interface
}

func NewTaxHandler(
	createUC *usecases.CreateTaxUseCase,
	updateUC *usecases.UpdateTaxUseCase,
	deleteUC *usecases.DeleteTaxUseCase,
	getUC *usecases.GetTaxUseCase,
	listUC *usecases.ListTaxesUseCase,
	logger logger.Interface,
) *TaxHandler {
	return &TaxHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type CreateTaxRequest struct {
	Name    string `json:"name" binding:"required"`
	Percent string `json:"percent" binding:"required"`
}

type UpdateTaxRequest struct {
	Name    *string `json:"name"`
	Percent *string `json:"percent"`
}

func (h *TaxHandler) CreateTax(c *gin.Context) {
	var req CreateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create tax", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	percent, err := decimal.NewFromString(req.Percent)
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid percent: "+req.Percent))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTaxCommand{
		Name:    req.Name,
		Percent: percent,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromTax(result), "Tax created successfully")
}

func (h *TaxHandler) UpdateTax(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tax")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update tax", "tax_id", id, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.UpdateTaxCommand{
		TaxID: id,
		Name:  req.Name,
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

	utils.OKResponse(c, dto.FromTax(result))
}

func (h *TaxHandler) DeleteTax(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tax")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTaxCommand{TaxID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tax deleted successfully", nil)
}

func (h *TaxHandler) GetTax(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tax")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTaxCommand{TaxID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromTax(result))
}

func (h *TaxHandler) ListTaxes(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	taxes, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListTaxesCommand{Pagination: pagination})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.FromTaxes(taxes), total, pagination.Page, pagination.PageSize)
}
