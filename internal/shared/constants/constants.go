package constants

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Table names
const (
	TableContacts            = "contacts"
	TableProducts            = "products"
	TableTaxes               = "taxes"
	TablePaymentTerms        = "payment_terms"
	TableDiscounts           = "discounts"
	TableRecurringPlans      = "recurring_plans"
	TableRecurringPlanPrices = "recurring_plan_prices"
	TableSubscriptions       = "subscriptions"
	TableSubscriptionLines   = "subscription_lines"
	TableInvoices            = "invoices"
	TableInvoiceLines        = "invoice_lines"
)

// Context keys set by the auth middleware
const (
	CtxPrincipal = "principal"
)
