package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryAlreadyExists is returned on a case-insensitive name collision.
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// CategoryRepository defines the persistence of categories.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update saves every field of an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByIDs retrieves the categories with the given IDs. Missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error)

	// List returns categories sorted by order then name.
	List(ctx context.Context, activeOnly bool) ([]*entity.Category, error)

	// ExistsByName reports whether another category already uses name,
	// compared case-insensitively. excludeID is ignored when uuid.Nil.
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	// Count returns the number of categories.
	Count(ctx context.Context) (int64, error)

	// Delete removes a category permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
