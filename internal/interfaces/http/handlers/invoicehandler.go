package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/application/invoice/usecases"
	"github.com/subflow-io/subflow/internal/domain/invoice"
	"github.com/subflow-io/subflow/internal/interfaces/dto"
	"github.com/subflow-io/subflow/internal/shared/authorization"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type InvoiceHandler struct {
	createUC  *usecases.CreateInvoiceUseCase
	getUC     *usecases.GetInvoiceUseCase
	listUC    *usecases.ListInvoicesUseCase
	confirmUC *usecases.ConfirmInvoiceUseCase
	cancelUC  *usecases.CancelInvoiceUseCase
	restoreUC *usecases.RestoreInvoiceUseCase
	payUC     *usecases.PayInvoiceUseCase
	logger    logger.Interface
}

func NewInvoiceHandler(
	createUC *usecases.CreateInvoiceUseCase,
	getUC *usecases.GetInvoiceUseCase,
	listUC *usecases.ListInvoicesUseCase,
	confirmUC *usecases.ConfirmInvoiceUseCase,
	cancelUC *usecases.CancelInvoiceUseCase,
	restoreUC *usecases.RestoreInvoiceUseCase,
	payUC *usecases.PayInvoiceUseCase,
	logger logger.Interface,
) *InvoiceHandler {
	return &InvoiceHandler{
		createUC:  createUC,
		getUC:     getUC,
		listUC:    listUC,
		confirmUC: confirmUC,
		cancelUC:  cancelUC,
		restoreUC: restoreUC,
		payUC:     payUC,
		logger:    logger,
	}
}

type PayInvoiceRequest struct {
	PaymentMethod *string    `json:"payment_method"`
	PaymentDate   *time.Time `json:"payment_date"`
}

// CreateInvoice generates a draft invoice snapshotting the subscription's
// current lines.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	subscriptionID, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateInvoiceCommand{SubscriptionID: subscriptionID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromInvoice(result), "Invoice created successfully")
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing principal")
		return
	}

	cmd := usecases.GetInvoiceCommand{InvoiceID: id}
	// Portal callers only ever see their own contact's invoices.
	if principal.IsPortal() {
		cmd.ContactID = &principal.ContactID
	}

	result, err := h.getUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromInvoice(result))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	principal, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing principal")
		return
	}

	subscriptionID, err := utils.ParseQueryUint(c, "subscription_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	contactID, err := utils.ParseQueryUint(c, "contact_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ListInvoicesCommand{
		State:      c.Query("state"),
		Pagination: utils.ParsePagination(c),
	}
	if subscriptionID != nil {
		cmd.SubscriptionID = *subscriptionID
	}
	if contactID != nil {
		cmd.ContactID = *contactID
	}
	// Portal callers only ever see their own contact's invoices.
	if principal.IsPortal() {
		cmd.ContactID = principal.ContactID
	}

	invoices, total, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.FromInvoices(invoices), total, cmd.Pagination.Page, cmd.Pagination.PageSize)
}

func (h *InvoiceHandler) ConfirmInvoice(c *gin.Context) {
	h.transition(c, func(id uint) (*invoice.Invoice, error) {
		return h.confirmUC.Execute(c.Request.Context(), usecases.ConfirmInvoiceCommand{InvoiceID: id})
	})
}

func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	h.transition(c, func(id uint) (*invoice.Invoice, error) {
		return h.cancelUC.Execute(c.Request.Context(), usecases.CancelInvoiceCommand{InvoiceID: id})
	})
}

func (h *InvoiceHandler) RestoreInvoice(c *gin.Context) {
	h.transition(c, func(id uint) (*invoice.Invoice, error) {
		return h.restoreUC.Execute(c.Request.Context(), usecases.RestoreInvoiceCommand{InvoiceID: id})
	})
}

func (h *InvoiceHandler) PayInvoice(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for pay invoice", "invoice_id", id, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.PayInvoiceCommand{
		InvoiceID:   id,
		PaymentDate: req.PaymentDate,
	}
	if req.PaymentMethod != nil {
		method := invoice.PaymentMethod(*req.PaymentMethod)
		cmd.PaymentMethod = &method
	}

	result, err := h.payUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromInvoice(result))
}

func (h *InvoiceHandler) transition(c *gin.Context, run func(id uint) (*invoice.Invoice, error)) {
	id, err := utils.ParseIDParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := run(id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromInvoice(result))
}
