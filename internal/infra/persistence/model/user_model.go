// Package model holds the GORM persistence models. They mirror the database
// tables and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. IDs are generated by the application
// so the same schema runs on PostgreSQL and SQLite.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Phone        string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	Password     string     `gorm:"type:varchar(255);not null"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Email        *string    `gorm:"type:varchar(255);uniqueIndex"`
	Role         string     `gorm:"type:varchar(20);index;not null"`
	Avatar       string     `gorm:"type:varchar(500)"`
	IsActive     bool       `gorm:"not null"`
	FCMToken     string     `gorm:"column:fcm_token;type:varchar(500)"`
	OTPCode      string     `gorm:"column:otp_code;type:varchar(10)"`
	OTPExpiresAt *time.Time `gorm:"column:otp_expires_at"`
	CreatedAt    time.Time  `gorm:"index"`
	UpdatedAt    time.Time

	MerchantProfile *MerchantProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DeliveryProfile *DeliveryProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Addresses       []AddressModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *UserModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// MerchantProfileModel mirrors the 'merchant_profiles' table. UserID references users.id.
type MerchantProfileModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopName        string    `gorm:"type:varchar(150)"`
	ShopDescription string    `gorm:"type:text"`
	ShopAddress     string    `gorm:"type:varchar(500)"`
	ShopPhone       string    `gorm:"type:varchar(20)"`
	IsApproved      bool      `gorm:"index;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantProfileModel) TableName() string {
	return "merchant_profiles"
}

// DeliveryProfileModel mirrors the 'delivery_profiles' table. UserID references users.id.
type DeliveryProfileModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleType   string    `gorm:"type:varchar(20)"`
	VehicleNumber string    `gorm:"type:varchar(50)"`
	IsApproved    bool      `gorm:"index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryProfileModel) TableName() string {
	return "delivery_profiles"
}
