package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderStatusChanged is returned when the stored status no longer matches
	// the status a change was computed from.
	ErrOrderStatusChanged = errors.New("order status changed concurrently")
)

// OrderFilter narrows order listings. Nil fields do not filter.
type OrderFilter struct {
	ClientID *uuid.UUID
	Status   *entity.OrderStatus
}

// OrderRepository defines the persistence of orders, their items and status history.
type OrderRepository interface {
	// Create persists an order with its items and history.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with items and history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders matching filter, newest first, with items loaded.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// Count returns the number of orders matching filter.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// SumTotal returns the sum of order totals matching filter.
	SumTotal(ctx context.Context, filter OrderFilter) (float64, error)

	// UpdateStatus saves the order status and delivery assignment and
	// appends change to the status history. The write only applies while the
	// stored status still equals change.From, else ErrOrderStatusChanged.
	UpdateStatus(ctx context.Context, order *entity.Order, change entity.OrderStatusChange) error
}
