package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/interfaces/http/handlers"
	"github.com/subflow-io/subflow/internal/interfaces/http/middleware"
	"github.com/subflow-io/subflow/internal/shared/authorization"
)

// ReportRouteConfig holds dependencies for reporting routes.
type ReportRouteConfig struct {
	ReportHandler  *handlers.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupReportRoutes configures reporting routes.
func SetupReportRoutes(engine *gin.Engine, cfg *ReportRouteConfig) {
	reports := engine.Group("/reports")
	reports.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireBackOffice())
	{
		reports.GET("/summary", cfg.ReportHandler.GetSummary)
	}
}
