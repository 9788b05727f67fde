package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/http/response"
	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the client and admin order routes.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	Product  uuid.UUID `json:"product" validate:"required"`
	Quantity int       `json:"quantity" validate:"gte=1"`
}

// PlaceOrderRequest is the body of POST /api/orders. Without a delivery
// address the client's default address is used.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress *AddressRequest    `json:"deliveryAddress"`
	Note            string             `json:"note" validate:"max=500"`
}

// UpdateOrderStatusRequest is the body of PUT /api/admin/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status   string     `json:"status" validate:"required"`
	Note     string     `json:"note" validate:"max=500"`
	Delivery *uuid.UUID `json:"delivery"`
}

// Place creates an order for the current client.
func (h *OrderHandler) Place(c echo.Context) error {
	clientID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := usecase.PlaceOrderInput{
		Items: make([]usecase.OrderItemInput, 0, len(req.Items)),
		Note:  req.Note,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{ProductID: item.Product, Quantity: item.Quantity})
	}
	if req.DeliveryAddress != nil {
		addr := req.DeliveryAddress.toInput()
		input.Address = &addr
	}

	order, err := h.orderUC.Place(c.Request().Context(), clientID, input)
	if err != nil {
		return err
	}

	return response.Created(c, map[string]OrderResponse{"order": presentOrder(order)}, "Commande passée")
}

// ListMine returns the current client's orders.
func (h *OrderHandler) ListMine(c echo.Context) error {
	clientID, err := currentUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListMine(c.Request().Context(), clientID)
	if err != nil {
		return err
	}

	return response.OK(c, map[string][]OrderResponse{"orders": presentOrders(orders)})
}

// GetMine returns one of the current client's orders.
func (h *OrderHandler) GetMine(c echo.Context) error {
	clientID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetMine(c.Request().Context(), clientID, id)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]OrderResponse{"order": presentOrder(order)})
}

// CancelMine cancels one of the current client's orders.
func (h *OrderHandler) CancelMine(c echo.Context) error {
	clientID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.CancelMine(c.Request().Context(), clientID, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]OrderResponse{"order": presentOrder(order)}, "Commande annulée")
}

// AdminList returns every order, optionally filtered by ?status=.
func (h *OrderHandler) AdminList(c echo.Context) error {
	orders, err := h.orderUC.AdminList(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}

	return response.OK(c, map[string][]OrderResponse{"orders": presentOrders(orders)})
}

// AdminGet returns any order.
func (h *OrderHandler) AdminGet(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.AdminGet(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]OrderResponse{"order": presentOrder(order)})
}

// AdminUpdateStatus moves an order along the workflow.
func (h *OrderHandler) AdminUpdateStatus(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.AdminUpdateStatus(c.Request().Context(), actorID, id, usecase.UpdateOrderStatusInput{
		Status:     entity.OrderStatus(req.Status),
		Note:       req.Note,
		DeliveryID: req.Delivery,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]OrderResponse{"order": presentOrder(order)}, "Statut de la commande mis à jour")
}
