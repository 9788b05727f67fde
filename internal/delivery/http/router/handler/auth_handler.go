package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/http/response"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves account and session routes.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Phone string `json:"phone"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Phone       string `json:"phone"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// UpdateProfileRequest is the body of PUT /api/auth/profile. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`

	ShopName        *string `json:"shopName"`
	ShopDescription *string `json:"shopDescription"`
	ShopAddress     *string `json:"shopAddress"`
	ShopPhone       *string `json:"shopPhone"`

	VehicleType   *string `json:"vehicleType"`
	VehicleNumber *string `json:"vehicleNumber"`
}

// UpdatePasswordRequest is the body of PUT /api/auth/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AddressRequest describes a delivery address.
type AddressRequest struct {
	Label       string `json:"label"`
	FullAddress string `json:"fullAddress"`
	City        string `json:"city"`
	Quarter     string `json:"quarter"`
	Details     string `json:"details"`
	IsDefault   bool   `json:"isDefault"`
}

func (r AddressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		Label:       r.Label,
		FullAddress: r.FullAddress,
		City:        r.City,
		Quarter:     r.Quarter,
		Details:     r.Details,
		IsDefault:   r.IsDefault,
	}
}

// FCMTokenRequest is the body of POST /api/auth/fcm-token.
type FCMTokenRequest struct {
	FCMToken string `json:"fcmToken"`
}

// AuthResponse carries a fresh token and the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register opens an account and signs the user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Phone:    req.Phone,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return response.Created(c, AuthResponse{Token: out.Token, User: presentUser(out.User)}, "Inscription réussie")
}

// Login exchanges credentials for a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, AuthResponse{Token: out.Token, User: presentUser(out.User)}, "Connexion réussie")
}

// ForgotPassword issues a password reset code.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	otp, err := h.authUC.ForgotPassword(c.Request().Context(), req.Phone)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"otp": otp}, "Code OTP envoyé")
}

// ResetPassword consumes a reset code and sets a new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := h.authUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Phone:       req.Phone,
		OTP:         req.OTP,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Mot de passe réinitialisé avec succès")
}

// GetMe returns the authenticated user's profile.
func (h *AuthHandler) GetMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]UserResponse{"user": presentUser(user)})
}

// UpdateProfile edits the authenticated user's own profile.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		Avatar:          req.Avatar,
		ShopName:        req.ShopName,
		ShopDescription: req.ShopDescription,
		ShopAddress:     req.ShopAddress,
		ShopPhone:       req.ShopPhone,
		VehicleType:     req.VehicleType,
		VehicleNumber:   req.VehicleNumber,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]UserResponse{"user": presentUser(user)}, "Profil mis à jour avec succès")
}

// UpdatePassword changes the password and returns a new token.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdatePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := h.authUC.UpdatePassword(c.Request().Context(), userID, usecase.UpdatePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Mot de passe mis à jour avec succès")
}

// AddAddress stores a delivery address for a client.
func (h *AuthHandler) AddAddress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddressRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	addresses, err := h.authUC.AddAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, map[string][]AddressResponse{"addresses": nonNil(presentAddresses(addresses))}, "Adresse ajoutée avec succès")
}

// UpdateFCMToken registers the device token used for push notifications.
func (h *AuthHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req FCMTokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authUC.UpdateFCMToken(c.Request().Context(), userID, req.FCMToken); err != nil {
		return err
	}

	return response.Message(c, "Token FCM mis à jour")
}
