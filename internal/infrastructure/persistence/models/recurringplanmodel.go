package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/subflow-io/subflow/internal/shared/constants"
)

// RecurringPlanModel represents the database persistence model for recurring plans
type RecurringPlanModel struct {
	ID                    uint   `gorm:"primarykey"`
	Name                  string `gorm:"not null;size:255"`
	MinQuantity           int    `gorm:"not null;default:1"`
	StartDate             *time.Time
	EndDate               *time.Time
	AutoClose             bool `gorm:"not null;default:false"`
	AutoCloseValidityDays *int
	Pausable              bool `gorm:"not null;default:true"`
	Renewable             bool `gorm:"not null;default:true"`
	Closable              bool `gorm:"not null;default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Prices []RecurringPlanPriceModel `gorm:"foreignKey:RecurringPlanID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (RecurringPlanModel) TableName() string {
	return constants.TableRecurringPlans
}

// RecurringPlanPriceModel represents a plan price tier row
type RecurringPlanPriceModel struct {
	ID                 uint            `gorm:"primarykey"`
	RecurringPlanID    uint            `gorm:"not null;index:idx_plan_price_plan"`
	Price              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BillingPeriodValue int             `gorm:"not null;default:1"`
	BillingPeriodUnit  string          `gorm:"not null;size:10"`
	IsDefault          bool            `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (RecurringPlanPriceModel) TableName() string {
	return constants.TableRecurringPlanPrices
}
