package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no product matches the lookup.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a stock reservation cannot be covered.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductSort selects the ordering of product listings.
type ProductSort string

const (
	ProductSortNewest    ProductSort = ""
	ProductSortPriceAsc  ProductSort = "price_asc"
	ProductSortPriceDesc ProductSort = "price_desc"
	ProductSortPopular   ProductSort = "popular"
)

// ProductFilter narrows product listings. Nil and zero fields do not filter.
type ProductFilter struct {
	Status     *entity.ProductStatus
	IsApproved *bool
	IsActive   *bool
	CategoryID *uuid.UUID
	MerchantID *uuid.UUID
	Search     string // case-insensitive substring over name and description
	SearchTags bool   // also match Search against tags
	MinPrice   *float64
	MaxPrice   *float64
	Sort       ProductSort
	Offset     int
	Limit      int // 0 returns every match
}

// ProductRepository defines the persistence of products.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update saves every field of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDAndMerchant retrieves a product only if merchantID owns it.
	FindByIDAndMerchant(ctx context.Context, id, merchantID uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the products with the given IDs. Missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List returns one page of matching products and the total match count.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// Count returns the number of products matching filter. Paging fields are ignored.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// Delete removes a product permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByIDAndMerchant removes a product only if merchantID owns it.
	DeleteByIDAndMerchant(ctx context.Context, id, merchantID uuid.UUID) error

	// IncrementViews atomically adds one to the view counter.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// ReserveStock atomically decrements stock and increments the sold count.
	// Returns ErrInsufficientStock when stock is lower than quantity.
	ReserveStock(ctx context.Context, id uuid.UUID, quantity int) error

	// ReleaseStock reverts a previous reservation.
	ReleaseStock(ctx context.Context, id uuid.UUID, quantity int) error
}
