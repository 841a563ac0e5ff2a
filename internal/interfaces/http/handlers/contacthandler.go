package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/application/catalog/usecases"
	"github.com/subflow-io/subflow/internal/interfaces/dto"
	"github.com/subflow-io/subflow/internal/shared/authorization"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type ContactHandler struct {
	createUC *usecases.CreateContactUseCase
	updateUC *usecases.UpdateContactUseCase
	deleteUC *usecases.DeleteContactUseCase
	getUC    *usecases.GetContactUseCase
	listUC   *usecases.ListContactsUseCase
	logger   logger.Interface
}

func NewContactHandler(
	createUC *usecases.CreateContactUseCase,
	updateUC *usecases.UpdateContactUseCase,
	deleteUC *usecases.DeleteContactUseCase,
	getUC *usecases.GetContactUseCase,
	listUC *usecases.ListContactsUseCase,
	logger logger.Interface,
) *ContactHandler {
	return &ContactHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type CreateContactRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	UserID *uint  `json:"user_id"`
}

type UpdateContactRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	UserID **uint  `json:"user_id"`
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create contact", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateContactCommand{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		UserID: req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromContact(result), "Contact created successfully")
}

func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update contact", "contact_id", id, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateContactCommand{
		ContactID: id,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		UserID:    req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromContact(result))
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteContactCommand{ContactID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contact deleted successfully", nil)
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing principal")
		return
	}

	cmd := usecases.GetContactCommand{ContactID: id}
	// Portal callers only ever see their own contact record.
	if principal.IsPortal() {
		cmd.ScopeContactID = &principal.ContactID
	}

	result, err := h.getUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromContact(result))
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	contacts, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListContactsCommand{Pagination: pagination})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.FromContacts(contacts), total, pagination.Page, pagination.PageSize)
}
