package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/shared/constants"
)

// TaxModel represents the database persistence model for taxes
type TaxModel struct {
	ID        uint            `gorm:"primarykey"`
	Name      string          `gorm:"not null;size:100"`
	Percent   decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TaxModel) TableName() string {
	return constants.TableTaxes
}
