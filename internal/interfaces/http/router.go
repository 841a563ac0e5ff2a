package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogusecases "github.com/subflow-io/subflow/internal/application/catalog/usecases"
	discountusecases "github.com/subflow-io/subflow/internal/application/discount/usecases"
	invoiceusecases "github.com/subflow-io/subflow/internal/application/invoice/usecases"
	planusecases "github.com/subflow-io/subflow/internal/application/plan/usecases"
	reportingusecases "github.com/subflow-io/subflow/internal/application/reporting/usecases"
	subscriptionusecases "github.com/subflow-io/subflow/internal/application/subscription/usecases"
	"github.com/subflow-io/subflow/internal/infrastructure/auth"
	"github.com/subflow-io/subflow/internal/infrastructure/cache"
	"github.com/subflow-io/subflow/internal/infrastructure/config"
	"github.com/subflow-io/subflow/internal/infrastructure/repository"
	"github.com/subflow-io/subflow/internal/interfaces/http/handlers"
	"github.com/subflow-io/subflow/internal/interfaces/http/middleware"
	"github.com/subflow-io/subflow/internal/interfaces/http/routes"
	"github.com/subflow-io/subflow/internal/shared/db"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine *gin.Engine

	subscriptionHandler *handlers.SubscriptionHandler
	invoiceHandler      *handlers.InvoiceHandler
	discountHandler     *handlers.DiscountHandler
	planHandler         *handlers.PlanHandler
	contactHandler      *handlers.ContactHandler
	productHandler      *handlers.ProductHandler
	taxHandler          *handlers.TaxHandler
	paymentTermHandler  *handlers.PaymentTermHandler
	reportHandler       *handlers.ReportHandler

	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	contactRepo := repository.NewContactRepository(gormDB, log)
	productRepo := repository.NewProductRepository(gormDB, log)
	taxRepo := repository.NewTaxRepository(gormDB, log)
	paymentTermRepo := repository.NewPaymentTermRepository(gormDB, log)
	discountRepo := repository.NewDiscountRepository(gormDB, log)
	planRepo := repository.NewRecurringPlanRepository(gormDB, log)
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB, log)
	invoiceRepo := repository.NewInvoiceRepository(gormDB, log)

	txManager := db.NewTransactionManager(gormDB)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret)

	var reportCache cache.ReportCache
	if redisClient != nil {
		reportCache = cache.NewRedisReportCache(redisClient, log)
	}

	subPrefix := cfg.Billing.SubscriptionNumberPrefix
	invPrefix := cfg.Billing.InvoiceNumberPrefix

	subscriptionHandler := handlers.NewSubscriptionHandler(
		subscriptionusecases.NewCreateSubscriptionUseCase(subscriptionRepo, contactRepo, planRepo, discountRepo, productRepo, taxRepo, txManager, subPrefix, log),
		subscriptionusecases.NewUpdateSubscriptionUseCase(subscriptionRepo, contactRepo, productRepo, taxRepo, txManager, log),
		subscriptionusecases.NewDeleteSubscriptionUseCase(subscriptionRepo, invoiceRepo, log),
		subscriptionusecases.NewGetSubscriptionUseCase(subscriptionRepo, log),
		subscriptionusecases.NewListSubscriptionsUseCase(subscriptionRepo, log),
		subscriptionusecases.NewSendSubscriptionUseCase(subscriptionRepo, log),
		subscriptionusecases.NewConfirmSubscriptionUseCase(subscriptionRepo, planRepo, log),
		subscriptionusecases.NewPauseSubscriptionUseCase(subscriptionRepo, planRepo, log),
		subscriptionusecases.NewResumeSubscriptionUseCase(subscriptionRepo, log),
		subscriptionusecases.NewCloseSubscriptionUseCase(subscriptionRepo, planRepo, log),
		subscriptionusecases.NewRenewSubscriptionUseCase(subscriptionRepo, planRepo, subPrefix, log),
		subscriptionusecases.NewUpsellSubscriptionUseCase(subscriptionRepo, planRepo, productRepo, taxRepo, subPrefix, log),
		log,
	)

	invoiceHandler := handlers.NewInvoiceHandler(
		invoiceusecases.NewCreateInvoiceUseCase(invoiceRepo, subscriptionRepo, productRepo, paymentTermRepo, invPrefix, cfg.Billing.DefaultDueDays, log),
		invoiceusecases.NewGetInvoiceUseCase(invoiceRepo, log),
		invoiceusecases.NewListInvoicesUseCase(invoiceRepo, log),
		invoiceusecases.NewConfirmInvoiceUseCase(invoiceRepo, log),
		invoiceusecases.NewCancelInvoiceUseCase(invoiceRepo, log),
		invoiceusecases.NewRestoreInvoiceUseCase(invoiceRepo, log),
		invoiceusecases.NewPayInvoiceUseCase(invoiceRepo, log),
		log,
	)

	discountHandler := handlers.NewDiscountHandler(
		discountusecases.NewCreateDiscountUseCase(discountRepo, log),
		discountusecases.NewUpdateDiscountUseCase(discountRepo, log),
		discountusecases.NewDeleteDiscountUseCase(discountRepo, log),
		discountusecases.NewGetDiscountUseCase(discountRepo, log),
		discountusecases.NewListDiscountsUseCase(discountRepo, log),
		discountusecases.NewValidateDiscountUseCase(discountRepo, log),
		log,
	)

	planHandler := handlers.NewPlanHandler(
		planusecases.NewCreatePlanUseCase(planRepo, log),
		planusecases.NewUpdatePlanUseCase(planRepo, log),
		planusecases.NewDeletePlanUseCase(planRepo, subscriptionRepo, log),
		planusecases.NewGetPlanUseCase(planRepo, log),
		planusecases.NewListPlansUseCase(planRepo, log),
		log,
	)

	contactHandler := handlers.NewContactHandler(
		catalogusecases.NewCreateContactUseCase(contactRepo, log),
		catalogusecases.NewUpdateContactUseCase(contactRepo, log),
		catalogusecases.NewDeleteContactUseCase(contactRepo, subscriptionRepo, log),
		catalogusecases.NewGetContactUseCase(contactRepo, log),
		catalogusecases.NewListContactsUseCase(contactRepo, log),
		log,
	)

	productHandler := handlers.NewProductHandler(
		catalogusecases.NewCreateProductUseCase(productRepo, taxRepo, log),
		catalogusecases.NewUpdateProductUseCase(productRepo, taxRepo, log),
		catalogusecases.NewDeleteProductUseCase(productRepo, log),
		catalogusecases.NewGetProductUseCase(productRepo, log),
		catalogusecases.NewListProductsUseCase(productRepo, log),
		log,
	)

	taxHandler := handlers.NewTaxHandler(
		catalogusecases.NewCreateTaxUseCase(taxRepo, log),
		catalogusecases.NewUpdateTaxUseCase(taxRepo, log),
		catalogusecases.NewDeleteTaxUseCase(taxRepo, log),
		catalogusecases.NewGetTaxUseCase(taxRepo, log),
		catalogusecases.NewListTaxesUseCase(taxRepo, log),
		log,
	)

	paymentTermHandler := handlers.NewPaymentTermHandler(
		catalogusecases.NewCreatePaymentTermUseCase(paymentTermRepo, log),
		catalogusecases.NewUpdatePaymentTermUseCase(paymentTermRepo, log),
		catalogusecases.NewDeletePaymentTermUseCase(paymentTermRepo, log),
		catalogusecases.NewGetPaymentTermUseCase(paymentTermRepo, log),
		catalogusecases.NewListPaymentTermsUseCase(paymentTermRepo, log),
		log,
	)

	reportHandler := handlers.NewReportHandler(
		reportingusecases.NewGetSummaryUseCase(
			contactRepo, productRepo, planRepo, subscriptionRepo, invoiceRepo,
			reportCache,
			time.Duration(cfg.Billing.ReportCacheTTLSeconds)*time.Second,
			log,
		),
		log,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, contactRepo, log)

	return &Router{
		engine:              engine,
		subscriptionHandler: subscriptionHandler,
		invoiceHandler:      invoiceHandler,
		discountHandler:     discountHandler,
		planHandler:         planHandler,
		contactHandler:      contactHandler,
		productHandler:      productHandler,
		taxHandler:          taxHandler,
		paymentTermHandler:  paymentTermHandler,
		reportHandler:       reportHandler,
		authMiddleware:      authMiddleware,
		allowedOrigins:      cfg.Server.AllowedOrigins,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		InvoiceHandler:      r.invoiceHandler,
		AuthMiddleware:      r.authMiddleware,
	})
	routes.SetupInvoiceRoutes(r.engine, &routes.InvoiceRouteConfig{
		InvoiceHandler: r.invoiceHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupDiscountRoutes(r.engine, &routes.DiscountRouteConfig{
		DiscountHandler: r.discountHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupPlanRoutes(r.engine, &routes.PlanRouteConfig{
		PlanHandler:    r.planHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		ContactHandler:     r.contactHandler,
		ProductHandler:     r.productHandler,
		TaxHandler:         r.taxHandler,
		PaymentTermHandler: r.paymentTermHandler,
		AuthMiddleware:     r.authMiddleware,
	})
	routes.SetupReportRoutes(r.engine, &routes.ReportRouteConfig{
		ReportHandler:  r.reportHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
