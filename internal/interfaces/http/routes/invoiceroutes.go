package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/interfaces/http/handlers"
	"github.com/subflow-io/subflow/internal/interfaces/http/middleware"
	"github.com/subflow-io/subflow/internal/shared/authorization"
)

// InvoiceRouteConfig holds dependencies for invoice routes.
type InvoiceRouteConfig struct {
	InvoiceHandler *handlers.InvoiceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupInvoiceRoutes configures invoice routes. Invoice creation lives under
// /subscriptions/:id/invoices since invoices are always generated from a
// subscription.
func SetupInvoiceRoutes(engine *gin.Engine, cfg *InvoiceRouteConfig) {
	invoices := engine.Group("/invoices")
	invoices.Use(cfg.AuthMiddleware.RequireAuth())
	{
		invoices.GET("", cfg.InvoiceHandler.ListInvoices)
		invoices.GET("/:id", cfg.InvoiceHandler.GetInvoice)

		backOffice := invoices.Group("")
		backOffice.Use(authorization.RequireBackOffice())
		{
			backOffice.POST("/:id/confirm", cfg.InvoiceHandler.ConfirmInvoice)
			backOffice.POST("/:id/cancel", cfg.InvoiceHandler.CancelInvoice)
			backOffice.POST("/:id/restore", cfg.InvoiceHandler.RestoreInvoice)
			backOffice.POST("/:id/pay", cfg.InvoiceHandler.PayInvoice)
		}
	}
}
