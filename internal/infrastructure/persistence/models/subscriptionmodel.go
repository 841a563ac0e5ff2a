package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions
// This is the anti-corruption layer between domain and database
type SubscriptionModel struct {
	ID                  uint   `gorm:"primarykey"`
	Number              string `gorm:"uniqueIndex:idx_subscription_number;not null;size:32"`
	ContactID           uint   `gorm:"not null;index:idx_subscription_contact"`
	RecurringPlanID     uint   `gorm:"not null;index:idx_subscription_plan"`
	State               string `gorm:"not null;size:20;index:idx_subscription_state"`
	ExpirationDate      *time.Time
	QuotationTemplateID *uint
	OrderDate           *time.Time
	StartDate           *time.Time
	NextInvoiceDate     *time.Time `gorm:"index:idx_subscription_next_invoice"`
	PaymentTermID       *uint
	SalespersonID       *uint
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Lines []SubscriptionLineModel `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// SubscriptionLineModel represents a subscription order line row
type SubscriptionLineModel struct {
	ID              uint            `gorm:"primarykey"`
	SubscriptionID  uint            `gorm:"not null;index:idx_subscription_line_sub"`
	ProductID       uint            `gorm:"not null;index:idx_subscription_line_product"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountPercent *decimal.Decimal `gorm:"type:decimal(5,2)"`
	TaxPercent      *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionLineModel) TableName() string {
	return constants.TableSubscriptionLines
}
