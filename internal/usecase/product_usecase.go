package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput carries product fields. Nil fields are left unchanged on update.
// MerchantID, Status and RejectionReason are honoured on the admin path only.
type ProductInput struct {
	Name            *string
	Description     *string
	Price           *float64
	ComparePrice    *float64
	Stock           *int
	Image           *string
	Images          *[]string
	CategoryID      *uuid.UUID
	MerchantID      *uuid.UUID
	Tags            *[]string
	Specifications  *[]entity.Specification
	IsActive        *bool
	Status          *entity.ProductStatus
	RejectionReason *string
}

// AdminProductQuery filters the admin product listing.
// Status is a bucket: pending, approved, rejected, or empty for all.
type AdminProductQuery struct {
	Status     string
	CategoryID *uuid.UUID
	MerchantID *uuid.UUID
	Search     string
}

// MerchantProductQuery filters a merchant's own listing.
type MerchantProductQuery struct {
	Status string
	Search string
}

// PublicProductQuery filters the public catalogue.
type PublicProductQuery struct {
	CategoryID *uuid.UUID
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       string
	Page       entity.PageRequest
}

// ProductPage is one page of the public catalogue.
type ProductPage struct {
	Products   []*entity.ProductView
	Pagination entity.Pagination
}

// ProductUsecase defines the product lifecycle across the admin, merchant and public paths.
type ProductUsecase interface {
	AdminList(ctx context.Context, query AdminProductQuery) ([]*entity.ProductView, error)
	AdminGet(ctx context.Context, id uuid.UUID) (*entity.ProductView, error)
	AdminCreate(ctx context.Context, input ProductInput) (*entity.Product, error)
	AdminUpdate(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)
	AdminDelete(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*entity.Product, error)

	MerchantList(ctx context.Context, merchantID uuid.UUID, query MerchantProductQuery) ([]*entity.ProductView, error)
	MerchantCreate(ctx context.Context, merchantID uuid.UUID, input ProductInput) (*entity.Product, error)
	MerchantUpdate(ctx context.Context, merchantID, id uuid.UUID, input ProductInput) (*entity.Product, error)
	MerchantDelete(ctx context.Context, merchantID, id uuid.UUID) error

	PublicList(ctx context.Context, query PublicProductQuery) (*ProductPage, error)
	PublicGet(ctx context.Context, id uuid.UUID) (*entity.ProductView, error)
}
