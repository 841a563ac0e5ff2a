package models

import (
	"time"

	"github.com/subflow-io/subflow/internal/shared/constants"
)

// PaymentTermModel represents the database persistence model for payment terms
type PaymentTermModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	DueAfterDays int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (PaymentTermModel) TableName() string {
	return constants.TablePaymentTerms
}
