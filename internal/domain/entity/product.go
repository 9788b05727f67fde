package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRejectionReason is stored when an admin rejects without a reason.
const DefaultRejectionReason = "Non conforme aux règles de la plateforme"

// ProductStatus is the position of a product in the approval workflow.
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"
	ProductStatusInactive ProductStatus = "inactive"
)

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusPending, ProductStatusApproved, ProductStatusRejected, ProductStatusInactive:
		return true
	default:
		return false
	}
}

// Specification is a free-form key/value attribute of a product.
type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Product is a merchant-owned listing.
type Product struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Price           float64
	ComparePrice    *float64
	Stock           int
	Image           string
	Images          []string
	CategoryID      uuid.UUID
	MerchantID      uuid.UUID
	Status          ProductStatus
	IsApproved      bool // mirrors Status == ProductStatusApproved
	IsActive        bool
	RejectionReason string
	Tags            []string
	Specifications  []Specification
	Views           int64
	SoldCount       int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SetStatus moves the product to status and keeps IsApproved in sync.
// Every status write goes through here.
func (p *Product) SetStatus(status ProductStatus) {
	p.Status = status
	p.IsApproved = status == ProductStatusApproved
}

// Approve publishes the product and clears any previous rejection reason.
func (p *Product) Approve() {
	p.SetStatus(ProductStatusApproved)
	p.RejectionReason = ""
}

// Reject refuses the product. An empty reason stores DefaultRejectionReason.
func (p *Product) Reject(reason string) {
	if reason == "" {
		reason = DefaultRejectionReason
	}
	p.SetStatus(ProductStatusRejected)
	p.RejectionReason = reason
}

// RequireReview sends the product back to the approval queue.
func (p *Product) RequireReview() {
	p.SetStatus(ProductStatusPending)
}

// IsPubliclyVisible reports whether anonymous buyers may see the product.
func (p *Product) IsPubliclyVisible() bool {
	return p.IsApproved && p.IsActive && p.Status == ProductStatusApproved
}

// ProductView is a product enriched with display names for listings.
type ProductView struct {
	Product
	CategoryName string
	MerchantName string
}
