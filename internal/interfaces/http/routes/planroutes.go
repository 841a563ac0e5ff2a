package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/interfaces/http/handlers"
	"github.com/subflow-io/subflow/internal/interfaces/http/middleware"
	"github.com/subflow-io/subflow/internal/shared/authorization"
)

// PlanRouteConfig holds dependencies for recurring plan routes.
type PlanRouteConfig struct {
	PlanHandler    *handlers.PlanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPlanRoutes configures recurring plan routes.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/plans")
	plans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.GET("/:id", cfg.PlanHandler.GetPlan)

		backOffice := plans.Group("")
		backOffice.Use(authorization.RequireBackOffice())
		{
			backOffice.POST("", cfg.PlanHandler.CreatePlan)
			backOffice.PUT("/:id", cfg.PlanHandler.UpdatePlan)
			backOffice.DELETE("/:id", cfg.PlanHandler.DeletePlan)
		}
	}
}
