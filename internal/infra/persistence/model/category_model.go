package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel mirrors the 'categories' table. Name uniqueness is enforced
// case-insensitively by an expression index created during migration.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:varchar(500)"`
	SortOrder   int       `gorm:"column:sort_order;not null"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
