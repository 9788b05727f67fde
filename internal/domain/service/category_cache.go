package service

import (
	"context"

	"market/internal/domain/entity"
)

// CategoryCache stores the public (active) category listing.
type CategoryCache interface {
	// GetActive returns the cached listing. found is false on a cache miss.
	GetActive(ctx context.Context) (categories []*entity.Category, found bool, err error)

	// SetActive replaces the cached listing.
	SetActive(ctx context.Context, categories []*entity.Category) error

	// Invalidate drops the cached listing.
	Invalidate(ctx context.Context) error
}
