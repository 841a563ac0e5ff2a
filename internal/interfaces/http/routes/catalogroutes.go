package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/interfaces/http/handlers"
	"github.com/subflow-io/subflow/internal/interfaces/http/middleware"
	"github.com/subflow-io/subflow/internal/shared/authorization"
)

// CatalogRouteConfig holds dependencies for catalog routes (contacts,
// products, taxes, payment terms).
type CatalogRouteConfig struct {
	ContactHandler     *handlers.ContactHandler
	ProductHandler     *handlers.ProductHandler
	TaxHandler         *handlers.TaxHandler
	PaymentTermHandler *handlers.PaymentTermHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures catalog routes. A portal caller may read its
// own contact; everything else is back office.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	contacts := engine.Group("/contacts")
	contacts.Use(cfg.AuthMiddleware.RequireAuth())
	{
		contacts.GET("/:id", cfg.ContactHandler.GetContact)

		backOffice := contacts.Group("")
		backOffice.Use(authorization.RequireBackOffice())
		{
			backOffice.GET("", cfg.ContactHandler.ListContacts)
			backOffice.POST("", cfg.ContactHandler.CreateContact)
			backOffice.PUT("/:id", cfg.ContactHandler.UpdateContact)
			backOffice.DELETE("/:id", cfg.ContactHandler.DeleteContact)
		}
	}

	products := engine.Group("/products")
	products.Use(cfg.AuthMiddleware.RequireAuth())
	{
		products.GET("", cfg.ProductHandler.ListProducts)
		products.GET("/:id", cfg.ProductHandler.GetProduct)

		backOffice := products.Group("")
		backOffice.Use(authorization.RequireBackOffice())
		{
			backOffice.POST("", cfg.ProductHandler.CreateProduct)
			backOffice.PUT("/:id", cfg.ProductHandler.UpdateProduct)
			backOffice.DELETE("/:id", cfg.ProductHandler.DeleteProduct)
		}
	}

	taxes := engine.Group("/taxes")
	taxes.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireBackOffice())
	{
		taxes.GET("", cfg.TaxHandler.ListTaxes)
		taxes.GET("/:id", cfg.TaxHandler.GetTax)
		taxes.POST("", cfg.TaxHandler.CreateTax)
		taxes.PUT("/:id", cfg.TaxHandler.UpdateTax)
		taxes.DELETE("/:id", cfg.TaxHandler.DeleteTax)
	}

	paymentTerms := engine.Group("/payment-terms")
	paymentTerms.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireBackOffice())
	{
		paymentTerms.GET("", cfg.PaymentTermHandler.ListPaymentTerms)
		paymentTerms.GET("/:id", cfg.PaymentTermHandler.GetPaymentTerm)
		paymentTerms.POST("", cfg.PaymentTermHandler.CreatePaymentTerm)
		paymentTerms.PUT("/:id", cfg.PaymentTermHandler.UpdatePaymentTerm)
		paymentTerms.DELETE("/:id", cfg.PaymentTermHandler.DeletePaymentTerm)
	}
}
