package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/application/catalog/usecases"
	"github.com/subflow-io/subflow/internal/interfaces/dto"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type PaymentTermHandler struct {
	createUC *usecases.CreatePaymentTermUseCase
	updateUC *usecases.UpdatePaymentTermUseCase
	deleteUC *usecases.DeletePaymentTermUseCase
	getUC    *usecases.GetPaymentTermUseCase
	listUC   *usecases.ListPaymentTermsUseCase
	logger   logger.Interface
}

func NewPaymentTermHandler(
	createUC *usecases.CreatePaymentTermUseCase,
	updateUC *usecases.UpdatePaymentTermUseCase,
	deleteUC *usecases.DeletePaymentTermUseCase,
	getUC *usecases.GetPaymentTermUseCase,
	listUC *usecases.ListPaymentTermsUseCase,
	logger logger.Interface,
) *PaymentTermHandler {
	return &PaymentTermHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type CreatePaymentTermRequest struct {
	Name         string `json:"name" binding:"required"`
	DueAfterDays int    `json:"due_after_days" binding:"min=0"`
}

type UpdatePaymentTermRequest struct {
	Name         *string `json:"name"`
	DueAfterDays *int    `json:"due_after_days"`
}

func (h *PaymentTermHandler) CreatePaymentTerm(c *gin.Context) {
	var req CreatePaymentTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create payment term", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePaymentTermCommand{
		Name:         req.Name,
		DueAfterDays: req.DueAfterDays,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromPaymentTerm(result), "Payment term created successfully")
}

func (h *PaymentTermHandler) UpdatePaymentTerm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "payment term")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePaymentTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update payment term", "payment_term_id", id, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePaymentTermCommand{
		PaymentTermID: id,
		Name:          req.Name,
		DueAfterDays:  req.DueAfterDays,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromPaymentTerm(result))
}

func (h *PaymentTermHandler) DeletePaymentTerm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "payment term")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeletePaymentTermCommand{PaymentTermID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment term deleted successfully", nil)
}

func (h *PaymentTermHandler) GetPaymentTerm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "payment term")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPaymentTermCommand{PaymentTermID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromPaymentTerm(result))
}

func (h *PaymentTermHandler) ListPaymentTerms(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	terms, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListPaymentTermsCommand{Pagination: pagination})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.FromPaymentTerms(terms), total, pagination.Page, pagination.PageSize)
}
