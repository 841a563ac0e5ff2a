package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/interfaces/http/handlers"
	"github.com/subflow-io/subflow/internal/interfaces/http/middleware"
	"github.com/subflow-io/subflow/internal/shared/authorization"
)

// DiscountRouteConfig holds dependencies for discount routes.
type DiscountRouteConfig struct {
	DiscountHandler *handlers.DiscountHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupDiscountRoutes configures discount routes. Validation is open to any
// authenticated caller (checkout flows run it); management is back office.
func SetupDiscountRoutes(engine *gin.Engine, cfg *DiscountRouteConfig) {
	discounts := engine.Group("/discounts")
	discounts.Use(cfg.AuthMiddleware.RequireAuth())
	{
		discounts.POST("/validate", cfg.DiscountHandler.ValidateDiscount)

		backOffice := discounts.Group("")
		backOffice.Use(authorization.RequireBackOffice())
		{
			backOffice.GET("", cfg.DiscountHandler.ListDiscounts)
			backOffice.GET("/:id", cfg.DiscountHandler.GetDiscount)
			backOffice.POST("", cfg.DiscountHandler.CreateDiscount)
			backOffice.PUT("/:id", cfg.DiscountHandler.UpdateDiscount)
			backOffice.DELETE("/:id", cfg.DiscountHandler.DeleteDiscount)
		}
	}
}
