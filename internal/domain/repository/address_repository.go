package repository

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressRepository defines the persistence of client delivery addresses.
type AddressRepository interface {
	// CreateAddress persists a new address.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// ClearDefault unsets the default flag on every address of the user.
	ClearDefault(ctx context.Context, userID uuid.UUID) error

	// ListByUser returns the user's addresses in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Address, error)
}
