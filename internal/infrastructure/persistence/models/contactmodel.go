package models

import (
	"time"

	"github.com/subflow-io/subflow/internal/shared/constants"
)

// ContactModel represents the database persistence model for contacts
// This is the anti-corruption layer between domain and database
type ContactModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255"`
	Email     string `gorm:"size:255;index:idx_contact_email"`
	Phone     string `gorm:"size:50"`
	UserID    *uint  `gorm:"uniqueIndex:idx_contact_user"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return constants.TableContacts
}
