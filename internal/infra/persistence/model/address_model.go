package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel mirrors the 'addresses' table of client delivery addresses.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Label       string    `gorm:"type:varchar(50);not null"`
	FullAddress string    `gorm:"type:varchar(500);not null"`
	City        string    `gorm:"type:varchar(100)"`
	Quarter     string    `gorm:"type:varchar(100)"`
	Details     string    `gorm:"type:text"`
	IsDefault   bool      `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *AddressModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
