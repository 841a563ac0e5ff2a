package migration

import (
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ContactModel{},
		&models.ProductModel{},
		&models.TaxModel{},
		&models.PaymentTermModel{},
		&models.DiscountModel{},
		&models.RecurringPlanModel{},
		&models.RecurringPlanPriceModel{},
		&models.SubscriptionModel{},
		&models.SubscriptionLineModel{},
		&models.InvoiceModel{},
		&models.InvoiceLineModel{},
	}
}
