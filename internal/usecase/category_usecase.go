package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput carries category fields. Nil fields are left unchanged on update.
type CategoryInput struct {
	Name        *string
	Description *string
	Image       *string
	Order       *int
	IsActive    *bool
}

// CategoryUsecase defines category management. Every write invalidates the
// cached public listing.
type CategoryUsecase interface {
	List(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Create(ctx context.Context, input CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleStatus(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}
