package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/interfaces/http/handlers"
	"github.com/subflow-io/subflow/internal/interfaces/http/middleware"
	"github.com/subflow-io/subflow/internal/shared/authorization"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	InvoiceHandler      *handlers.InvoiceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures subscription routes. Reads are open to
// portal callers (scoped to their contact by the use cases); writes are back
// office only.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subscriptions := engine.Group("/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions.GET("", cfg.SubscriptionHandler.ListSubscriptions)
		subscriptions.GET("/:id", cfg.SubscriptionHandler.GetSubscription)

		backOffice := subscriptions.Group("")
		backOffice.Use(authorization.RequireBackOffice())
		{
			backOffice.POST("", cfg.SubscriptionHandler.CreateSubscription)
			backOffice.PUT("/:id", cfg.SubscriptionHandler.UpdateSubscription)
			backOffice.DELETE("/:id", cfg.SubscriptionHandler.DeleteSubscription)

			backOffice.POST("/:id/send", cfg.SubscriptionHandler.SendSubscription)
			backOffice.POST("/:id/confirm", cfg.SubscriptionHandler.ConfirmSubscription)
			backOffice.POST("/:id/pause", cfg.SubscriptionHandler.PauseSubscription)
			backOffice.POST("/:id/resume", cfg.SubscriptionHandler.ResumeSubscription)
			backOffice.POST("/:id/close", cfg.SubscriptionHandler.CloseSubscription)
			backOffice.POST("/:id/renew", cfg.SubscriptionHandler.RenewSubscription)
			backOffice.POST("/:id/upsell", cfg.SubscriptionHandler.UpsellSubscription)

			backOffice.POST("/:id/invoices", cfg.InvoiceHandler.CreateInvoice)
		}
	}
}
