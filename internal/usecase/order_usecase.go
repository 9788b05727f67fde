package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput describes a client order. When Address is nil the
// client's default address is used.
type PlaceOrderInput struct {
	Items   []OrderItemInput
	Address *AddressInput
	Note    string
}

// UpdateOrderStatusInput is an admin status change. DeliveryID assigns a
// courier and is only accepted when moving to picked.
type UpdateOrderStatusInput struct {
	Status     entity.OrderStatus
	Note       string
	DeliveryID *uuid.UUID
}

// OrderUsecase defines order placement and the status workflow.
type OrderUsecase interface {
	Place(ctx context.Context, clientID uuid.UUID, input PlaceOrderInput) (*entity.Order, error)
	ListMine(ctx context.Context, clientID uuid.UUID) ([]*entity.Order, error)
	GetMine(ctx context.Context, clientID, id uuid.UUID) (*entity.Order, error)
	CancelMine(ctx context.Context, clientID, id uuid.UUID) (*entity.Order, error)

	// AdminList returns every order newest first. An empty status disables the filter.
	AdminList(ctx context.Context, status string) ([]*entity.Order, error)
	AdminGet(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	AdminUpdateStatus(ctx context.Context, actorID, id uuid.UUID, input UpdateOrderStatusInput) (*entity.Order, error)
}
