package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/shared/constants"
)

// ProductModel represents the database persistence model for products
type ProductModel struct {
	ID        uint            `gorm:"primarykey"`
	Name      string          `gorm:"not null;size:255"`
	ListPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TaxID     *uint           `gorm:"index:idx_product_tax"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}
