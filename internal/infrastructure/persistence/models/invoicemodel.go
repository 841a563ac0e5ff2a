package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/shared/constants"
)

// InvoiceModel represents the database persistence model for invoices
type InvoiceModel struct {
	ID             uint      `gorm:"primarykey"`
	Number         string    `gorm:"uniqueIndex:idx_invoice_number;not null;size:32"`
	SubscriptionID uint      `gorm:"not null;index:idx_invoice_subscription"`
	ContactID      uint      `gorm:"not null;index:idx_invoice_contact"`
	InvoiceDate    time.Time `gorm:"not null"`
	DueDate        time.Time `gorm:"not null"`
	State          string    `gorm:"not null;size:20;index:idx_invoice_state"`
	PaymentMethod  *string   `gorm:"size:20"`
	PaymentDate    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Lines []InvoiceLineModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (InvoiceModel) TableName() string {
	return constants.TableInvoices
}

// InvoiceLineModel represents an invoice line snapshot row. Rows are written
// once at invoice creation and never updated.
type InvoiceLineModel struct {
	ID          uint             `gorm:"primarykey"`
	InvoiceID   uint             `gorm:"not null;index:idx_invoice_line_invoice"`
	ProductID   uint             `gorm:"not null"`
	Description string           `gorm:"size:500"`
	Quantity    decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	UnitPrice   decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	TaxPercent  *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Amount      decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (InvoiceLineModel) TableName() string {
	return constants.TableInvoiceLines
}
