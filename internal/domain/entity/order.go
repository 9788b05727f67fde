package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the states of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusPicked     OrderStatus = "picked"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRejected   OrderStatus = "rejected"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
		OrderStatusPicked, OrderStatusDelivering, OrderStatusDelivered, OrderStatusCancelled,
		OrderStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves the status.
func (s OrderStatus) IsTerminal() bool {
	return len(NextOrderStatuses(s)) == 0
}

// ReleasesStock reports whether entering the status returns reserved stock.
func (s OrderStatus) ReleasesStock() bool {
	return s == OrderStatusCancelled || s == OrderStatusRejected
}

// OrderActor identifies who requests a status change.
type OrderActor string

const (
	OrderActorAdmin  OrderActor = "admin"
	OrderActorClient OrderActor = "client"
)

type orderTransition struct {
	From  OrderStatus
	To    OrderStatus
	Actor OrderActor
}

var orderTransitions = []orderTransition{
	{From: OrderStatusPending, To: OrderStatusConfirmed, Actor: OrderActorAdmin},
	{From: OrderStatusPending, To: OrderStatusRejected, Actor: OrderActorAdmin},
	{From: OrderStatusPending, To: OrderStatusCancelled, Actor: OrderActorAdmin},
	{From: OrderStatusPending, To: OrderStatusCancelled, Actor: OrderActorClient},
	{From: OrderStatusConfirmed, To: OrderStatusPreparing, Actor: OrderActorAdmin},
	{From: OrderStatusConfirmed, To: OrderStatusCancelled, Actor: OrderActorAdmin},
	{From: OrderStatusConfirmed, To: OrderStatusCancelled, Actor: OrderActorClient},
	{From: OrderStatusPreparing, To: OrderStatusReady, Actor: OrderActorAdmin},
	{From: OrderStatusPreparing, To: OrderStatusCancelled, Actor: OrderActorAdmin},
	{From: OrderStatusReady, To: OrderStatusPicked, Actor: OrderActorAdmin},
	{From: OrderStatusPicked, To: OrderStatusDelivering, Actor: OrderActorAdmin},
	{From: OrderStatusDelivering, To: OrderStatusDelivered, Actor: OrderActorAdmin},
}

var orderTransitionSet = func() map[orderTransition]struct{} {
	m := make(map[orderTransition]struct{}, len(orderTransitions))
	for _, t := range orderTransitions {
		m[t] = struct{}{}
	}

	return m
}()

// CanTransitionOrder checks whether actor may move an order from one status to another.
func CanTransitionOrder(from, to OrderStatus, actor OrderActor) bool {
	_, ok := orderTransitionSet[orderTransition{From: from, To: to, Actor: actor}]

	return ok
}

// NextOrderStatuses returns the statuses reachable from status by any actor.
func NextOrderStatuses(status OrderStatus) []OrderStatus {
	var next []OrderStatus
	seen := make(map[OrderStatus]bool)
	for _, t := range orderTransitions {
		if t.From == status && !seen[t.To] {
			next = append(next, t.To)
			seen[t.To] = true
		}
	}

	return next
}

// PaymentMethodCashOnDelivery is the only supported payment method.
const PaymentMethodCashOnDelivery = "cash_on_delivery"

// OrderItem is a product line with name and price captured at order time.
type OrderItem struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	ProductID  uuid.UUID
	MerchantID uuid.UUID
	Name       string
	Price      float64
	Quantity   int
}

// Subtotal returns price times quantity.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// OrderAddress is the delivery address captured at order time.
type OrderAddress struct {
	Label       string
	FullAddress string
	City        string
	Quarter     string
	Details     string
}

// OrderStatusChange is one entry of an order's audit trail.
type OrderStatusChange struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	From      OrderStatus // empty for the initial entry
	To        OrderStatus
	ChangedBy uuid.UUID
	Note      string
	CreatedAt time.Time
}

// Order is a client purchase paid on delivery.
type Order struct {
	ID              uuid.UUID
	OrderNumber     string
	ClientID        uuid.UUID
	DeliveryID      *uuid.UUID
	Items           []OrderItem
	TotalAmount     float64
	DeliveryAddress OrderAddress
	Note            string
	PaymentMethod   string
	Status          OrderStatus
	StatusHistory   []OrderStatusChange
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecalculateTotal sums the item subtotals into TotalAmount.
func (o *Order) RecalculateTotal() {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	o.TotalAmount = total
}

// Transition moves the order to status on behalf of actor and records the
// change. It returns false, leaving the order untouched, when the move is not allowed.
func (o *Order) Transition(to OrderStatus, actor OrderActor, changedBy uuid.UUID, note string, now time.Time) bool {
	if !CanTransitionOrder(o.Status, to, actor) {
		return false
	}

	o.StatusHistory = append(o.StatusHistory, OrderStatusChange{
		ID:        uuid.New(),
		OrderID:   o.ID,
		From:      o.Status,
		To:        to,
		ChangedBy: changedBy,
		Note:      note,
		CreatedAt: now,
	})
	o.Status = to
	o.UpdatedAt = now

	return true
}

// NewOrderNumber builds a human readable order reference such as ORD-20260102-1A2B3C.
func NewOrderNumber(id uuid.UUID, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:6])

	return "ORD-" + now.Format("20060102") + "-" + suffix
}
