package model

import (
	"time"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. List columns are stored as JSON text;
// tags are also kept one per row in 'product_tags' for search.
type ProductModel struct {
	ID              uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name            string                 `gorm:"type:varchar(200);not null"`
	Description     string                 `gorm:"type:text;not null"`
	Price           float64                `gorm:"type:numeric(12,2);not null"`
	ComparePrice    *float64               `gorm:"type:numeric(12,2)"`
	Stock           int                    `gorm:"not null"`
	Image           string                 `gorm:"type:varchar(500)"`
	Images          []string               `gorm:"type:text;serializer:json"`
	CategoryID      uuid.UUID              `gorm:"type:uuid;index;not null"`
	MerchantID      uuid.UUID              `gorm:"type:uuid;index;not null"`
	Status          string                 `gorm:"type:varchar(20);index;not null"`
	IsApproved      bool                   `gorm:"not null"`
	IsActive        bool                   `gorm:"not null"`
	RejectionReason string                 `gorm:"type:varchar(500)"`
	Tags            []string               `gorm:"type:text;serializer:json"`
	Specifications  []entity.Specification `gorm:"type:text;serializer:json"`
	Views           int64                  `gorm:"not null"`
	SoldCount       int64                  `gorm:"not null"`
	CreatedAt       time.Time              `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ProductTagModel mirrors the 'product_tags' table, one row per distinct tag of a product.
type ProductTagModel struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tag       string    `gorm:"type:text;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (ProductTagModel) TableName() string {
	return "product_tags"
}
