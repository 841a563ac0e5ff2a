package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/application/subscription/usecases"
	"github.com/subflow-io/subflow/internal/interfaces/dto"
	"github.com/subflow-io/subflow/internal/shared/authorization"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type SubscriptionHandler struct {
	createUC  *usecases.CreateSubscriptionUseCase
	updateUC  *usecases.UpdateSubscriptionUseCase
	deleteUC  *usecases.DeleteSubscriptionUseCase
	getUC     *usecases.GetSubscriptionUseCase
	listUC    *usecases.ListSubscriptionsUseCase
	sendUC    *usecases.SendSubscriptionUseCase
	confirmUC *usecases.ConfirmSubscriptionUseCase
	pauseUC   *usecases.PauseSubscriptionUseCase
	resumeUC  *usecases.ResumeSubscriptionUseCase
	closeUC   *usecases.CloseSubscriptionUseCase
	renewUC   *usecases.RenewSubscriptionUseCase
	upsellUC  *usecases.UpsellSubscriptionUseCase
	logger    logger.Interface
}

func NewSubscriptionHandler(
	createUC *usecases.CreateSubscriptionUseCase,
	updateUC *usecases.UpdateSubscriptionUseCase,
	deleteUC *usecases.DeleteSubscriptionUseCase,
	getUC *usecases.GetSubscriptionUseCase,
	listUC *usecases.ListSubscriptionsUseCase,
	sendUC *usecases.SendSubscriptionUseCase,
	confirmUC *usecases.ConfirmSubscriptionUseCase,
	pauseUC *usecases.PauseSubscriptionUseCase,
	resumeUC *usecases.ResumeSubscriptionUseCase,
	closeUC *usecases.CloseSubscriptionUseCase,
	renewUC *usecases.RenewSubscriptionUseCase,
	upsellUC *usecases.UpsellSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		getUC:     getUC,
		listUC:    listUC,
		sendUC:    sendUC,
		confirmUC: confirmUC,
		pauseUC:   pauseUC,
		resumeUC:  resumeUC,
		closeUC:   closeUC,
		renewUC:   renewUC,
		upsellUC:  upsellUC,
		logger:    logger,
	}
}

type SubscriptionLineRequest struct {
	ProductID       uint    `json:"product_id" binding:"required"`
	Quantity        string  `json:"quantity" binding:"required"`
	UnitPrice       *string `json:"unit_price"`
	DiscountPercent *string `json:"discount_percent"`
	TaxPercent      *string `json:"tax_percent"`
}

type CreateSubscriptionRequest struct {
	ContactID           uint                      `json:"contact_id" binding:"required"`
	RecurringPlanID     uint                      `json:"recurring_plan_id" binding:"required"`
	ExpirationDate      *time.Time                `json:"expiration_date"`
	QuotationTemplateID *uint                     `json:"quotation_template_id"`
	OrderDate           *time.Time                `json:"order_date"`
	PaymentTermID       *uint                     `json:"payment_term_id"`
	SalespersonID       *uint                     `json:"salesperson_id"`
	Lines               []SubscriptionLineRequest `json:"lines" binding:"required,min=1"`
	DiscountCode        string                    `json:"discount_code"`
}

type UpdateSubscriptionRequest struct {
	ContactID           *uint                      `json:"contact_id"`
	RecurringPlanID     *uint                      `json:"recurring_plan_id"`
	ExpirationDate      **time.Time                `json:"expiration_date"`
	QuotationTemplateID **uint                     `json:"quotation_template_id"`
	OrderDate           **time.Time                `json:"order_date"`
	PaymentTermID       **uint                     `json:"payment_term_id"`
	SalespersonID       **uint                     `json:"salesperson_id"`
	Lines               *[]SubscriptionLineRequest `json:"lines"`
}

type UpsellSubscriptionRequest struct {
	RecurringPlanID *uint                     `json:"recurring_plan_id"`
	Lines           []SubscriptionLineRequest `json:"lines" binding:"required,min=1"`
}

func parseLineInputs(reqs []SubscriptionLineRequest) ([]usecases.LineInput, error) {
	inputs := make([]usecases.LineInput, 0, len(reqs))
	for _, req := range reqs {
		qty, err := decimal.NewFromString(req.Quantity)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid line quantity: " + req.Quantity)
		}
		input := usecases.LineInput{
			ProductID: req.ProductID,
			Quantity:  qty,
		}
		if input.UnitPrice, err = parseOptionalDecimal(req.UnitPrice, "unit_price"); err != nil {
			return nil, err
		}
		if input.DiscountPercent, err = parseOptionalDecimal(req.DiscountPercent, "discount_percent"); err != nil {
			return nil, err
		}
		if input.TaxPercent, err = parseOptionalDecimal(req.TaxPercent, "tax_percent"); err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func parseOptionalDecimal(raw *string, field string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	v, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid " + field + ": " + *raw)
	}
	return &v, nil
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	lines, err := parseLineInputs(req.Lines)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateSubscriptionCommand{
		ContactID:           req.ContactID,
		RecurringPlanID:     req.RecurringPlanID,
		ExpirationDate:      req.ExpirationDate,
		QuotationTemplateID: req.QuotationTemplateID,
		OrderDate:           req.OrderDate,
		PaymentTermID:       req.PaymentTermID,
		SalespersonID:       req.SalespersonID,
		Lines:               lines,
		DiscountCode:        req.DiscountCode,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromSubscription(result), "Subscription created successfully")
}

func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update subscription", "subscription_id", id, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.UpdateSubscriptionCommand{
		SubscriptionID:      id,
		ContactID:           req.ContactID,
		RecurringPlanID:     req.RecurringPlanID,
		ExpirationDate:      req.ExpirationDate,
		QuotationTemplateID: req.QuotationTemplateID,
		OrderDate:           req.OrderDate,
		PaymentTermID:       req.PaymentTermID,
		SalespersonID:       req.SalespersonID,
	}
	if req.Lines != nil {
		lines, err := parseLineInputs(*req.Lines)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.Lines = &lines
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromSubscription(result))
}

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteSubscriptionCommand{SubscriptionID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription deleted successfully", nil)
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing principal")
		return
	}

	cmd := usecases.GetSubscriptionCommand{SubscriptionID: id}
	// Portal callers only ever see their own contact's subscriptions.
	if principal.IsPortal() {
		cmd.ContactID = &principal.ContactID
	}

	result, err := h.getUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromSubscription(result))
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	principal, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing principal")
		return
	}

	contactID, err := utils.ParseQueryUint(c, "contact_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ListSubscriptionsCommand{
		State:      c.Query("state"),
		Pagination: utils.ParsePagination(c),
	}
	if contactID != nil {
		cmd.ContactID = *contactID
	}
	// Portal callers only ever see their own contact's subscriptions.
	if principal.IsPortal() {
		cmd.ContactID = principal.ContactID
	}

	subs, total, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.FromSubscriptions(subs), total, cmd.Pagination.Page, cmd.Pagination.PageSize)
}

func (h *SubscriptionHandler) SendSubscription(c *gin.Context) {
	h.transition(c, func(id uint) (interface{}, error) {
		result, err := h.sendUC.Execute(c.Request.Context(), usecases.SendSubscriptionCommand{SubscriptionID: id})
		if err != nil {
			return nil, err
		}
		return dto.FromSubscription(result), nil
	})
}

func (h *SubscriptionHandler) ConfirmSubscription(c *gin.Context) {
	h.transition(c, func(id uint) (interface{}, error) {
		result, err := h.confirmUC.Execute(c.Request.Context(), usecases.ConfirmSubscriptionCommand{SubscriptionID: id})
		if err != nil {
			return nil, err
		}
		return dto.FromSubscription(result), nil
	})
}

func (h *SubscriptionHandler) PauseSubscription(c *gin.Context) {
	h.transition(c, func(id uint) (interface{}, error) {
		result, err := h.pauseUC.Execute(c.Request.Context(), usecases.PauseSubscriptionCommand{SubscriptionID: id})
		if err != nil {
			return nil, err
		}
		return dto.FromSubscription(result), nil
	})
}

func (h *SubscriptionHandler) ResumeSubscription(c *gin.Context) {
	h.transition(c, func(id uint) (interface{}, error) {
		result, err := h.resumeUC.Execute(c.Request.Context(), usecases.ResumeSubscriptionCommand{SubscriptionID: id})
		if err != nil {
			return nil, err
		}
		return dto.FromSubscription(result), nil
	})
}

func (h *SubscriptionHandler) CloseSubscription(c *gin.Context) {
	h.transition(c, func(id uint) (interface{}, error) {
		result, err := h.closeUC.Execute(c.Request.Context(), usecases.CloseSubscriptionCommand{SubscriptionID: id})
		if err != nil {
			return nil, err
		}
		return dto.FromSubscription(result), nil
	})
}

// RenewSubscription creates a fresh confirmed subscription copying the
// original's lines. The original is left untouched.
func (h *SubscriptionHandler) RenewSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renewUC.Execute(c.Request.Context(), usecases.RenewSubscriptionCommand{SubscriptionID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromSubscription(result), "Subscription renewed successfully")
}

// UpsellSubscription creates a fresh confirmed subscription with a new line
// set priced against the current catalog.
func (h *SubscriptionHandler) UpsellSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpsellSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upsell subscription", "subscription_id", id, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	lines, err := parseLineInputs(req.Lines)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.upsellUC.Execute(c.Request.Context(), usecases.UpsellSubscriptionCommand{
		SubscriptionID:  id,
		RecurringPlanID: req.RecurringPlanID,
		Lines:           lines,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FromSubscription(result), "Subscription upsold successfully")
}

func (h *SubscriptionHandler) transition(c *gin.Context, run func(id uint) (interface{}, error)) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := run(id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
