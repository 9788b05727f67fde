package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/http/response"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserAdminHandlerParams holds dependencies for UserAdminHandler, injected by Fx.
type UserAdminHandlerParams struct {
	fx.In

	UserAdminUC usecase.UserAdminUsecase
	Logger      *slog.Logger
}

// UserAdminHandler serves the back-office user, merchant and courier routes.
type UserAdminHandler struct {
	userAdminUC usecase.UserAdminUsecase
	logger      *slog.Logger
}

// NewUserAdminHandler is the constructor for UserAdminHandler.
func NewUserAdminHandler(params UserAdminHandlerParams) *UserAdminHandler {
	return &UserAdminHandler{
		userAdminUC: params.UserAdminUC,
		logger:      params.Logger,
	}
}

// UserRequest is the body of the admin user create and update routes.
type UserRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role" validate:"omitempty,oneof=client merchant delivery admin"`
	Avatar     *string `json:"avatar"`
	IsActive   *bool   `json:"isActive"`
	IsApproved *bool   `json:"isApproved"`

	ShopName        *string `json:"shopName"`
	ShopDescription *string `json:"shopDescription"`
	ShopAddress     *string `json:"shopAddress"`
	ShopPhone       *string `json:"shopPhone"`

	VehicleType   *string `json:"vehicleType" validate:"omitempty,oneof=moto velo voiture"`
	VehicleNumber *string `json:"vehicleNumber"`
}

func (r UserRequest) toInput() usecase.UserInput {
	return usecase.UserInput{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Password:        r.Password,
		Role:            r.Role,
		Avatar:          r.Avatar,
		IsActive:        r.IsActive,
		IsApproved:      r.IsApproved,
		ShopName:        r.ShopName,
		ShopDescription: r.ShopDescription,
		ShopAddress:     r.ShopAddress,
		ShopPhone:       r.ShopPhone,
		VehicleType:     r.VehicleType,
		VehicleNumber:   r.VehicleNumber,
	}
}

// ListUsers returns every user, optionally filtered by ?role=.
func (h *UserAdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userAdminUC.ListUsers(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return err
	}

	return response.OK(c, map[string][]UserResponse{"users": presentUsers(users)})
}

// GetUser returns a single user.
func (h *UserAdminHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userAdminUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]UserResponse{"user": presentUser(user)})
}

// CreateUser creates an account with any role.
func (h *UserAdminHandler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userAdminUC.CreateUser(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, map[string]UserResponse{"user": presentUser(user)}, "Utilisateur créé")
}

// UpdateUser applies the supplied fields to a user.
func (h *UserAdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userAdminUC.UpdateUser(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]UserResponse{"user": presentUser(user)}, "Utilisateur mis à jour")
}

// ToggleUserStatus flips the active flag of a user.
func (h *UserAdminHandler) ToggleUserStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userAdminUC.ToggleUserStatus(c.Request().Context(), id)
	if err != nil {
		return err
	}

	message := "Utilisateur désactivé"
	if user.IsActive {
		message = "Utilisateur activé"
	}

	return response.Success(c, http.StatusOK, map[string]UserResponse{"user": presentUser(user)}, message)
}

// DeleteUser removes a user.
func (h *UserAdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userAdminUC.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, "Utilisateur supprimé")
}

// ListMerchants returns merchants, optionally filtered by ?approved=.
func (h *UserAdminHandler) ListMerchants(c echo.Context) error {
	approved, err := queryBool(c, "approved")
	if err != nil {
		return err
	}

	merchants, err := h.userAdminUC.ListMerchants(c.Request().Context(), approved)
	if err != nil {
		return err
	}

	return response.OK(c, map[string][]UserResponse{"users": presentUsers(merchants)})
}

// ApproveMerchant lets a merchant start selling.
func (h *UserAdminHandler) ApproveMerchant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userAdminUC.ApproveMerchant(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]UserResponse{"user": presentUser(user)}, "Marchand approuvé")
}

// RejectMerchant revokes a merchant's approval.
func (h *UserAdminHandler) RejectMerchant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userAdminUC.RejectMerchant(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]UserResponse{"user": presentUser(user)}, "Marchand rejeté")
}

// ListDeliveryUsers returns every courier.
func (h *UserAdminHandler) ListDeliveryUsers(c echo.Context) error {
	users, err := h.userAdminUC.ListDeliveryUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, map[string][]UserResponse{"users": presentUsers(users)})
}
