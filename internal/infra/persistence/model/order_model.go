package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber   string     `gorm:"type:varchar(30);uniqueIndex;not null"`
	ClientID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	DeliveryID    *uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount   float64    `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string     `gorm:"type:varchar(30);not null"`
	Status        string     `gorm:"type:varchar(20);index;not null"`
	Note          string     `gorm:"type:text"`

	DeliveryAddress OrderAddressModel `gorm:"embedded;embeddedPrefix:delivery_"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Items   []OrderItemModel         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []OrderStatusChangeModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *OrderModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// OrderAddressModel is the delivery address snapshot embedded in orders.
type OrderAddressModel struct {
	Label       string `gorm:"type:varchar(50)"`
	FullAddress string `gorm:"type:varchar(500)"`
	City        string `gorm:"type:varchar(100)"`
	Quarter     string `gorm:"type:varchar(100)"`
	Details     string `gorm:"type:text"`
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null"`
	MerchantID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string    `gorm:"type:varchar(200);not null"`
	Price      float64   `gorm:"type:numeric(12,2);not null"`
	Quantity   int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *OrderItemModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// OrderStatusChangeModel mirrors the 'order_status_changes' audit table.
type OrderStatusChangeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	FromStatus string    `gorm:"type:varchar(20)"`
	ToStatus   string    `gorm:"type:varchar(20);not null"`
	ChangedBy  uuid.UUID `gorm:"type:uuid"`
	Note       string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusChangeModel) TableName() string {
	return "order_status_changes"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *OrderStatusChangeModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
