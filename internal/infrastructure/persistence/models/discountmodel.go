package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/shared/constants"
)

// DiscountModel represents the database persistence model for discount codes
type DiscountModel struct {
	ID         uint            `gorm:"primarykey"`
	Code       string          `gorm:"uniqueIndex:idx_discount_code;not null;size:64;comment:stored trimmed and upper-cased"`
	Percent    decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	IsActive   bool            `gorm:"not null;default:true"`
	StartsAt   *time.Time
	EndsAt     *time.Time
	ProductID  *uint `gorm:"index:idx_discount_product"`
	LimitUsage bool  `gorm:"not null;default:false"`
	UsageLimit *int
	TimesUsed  int `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (DiscountModel) TableName() string {
	return constants.TableDiscounts
}
