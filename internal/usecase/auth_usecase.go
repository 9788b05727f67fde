// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
// Role is optional; admin or unknown roles fall back to client.
type RegisterInput struct {
	Phone    string
	Password string
	Name     string
	Email    string
	Role     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Phone    string
	Password string
}

// ResetPasswordInput carries the OTP proof and the replacement password.
type ResetPasswordInput struct {
	Phone       string
	OTP         string
	NewPassword string
}

// UpdateProfileInput lists the self-editable profile fields. Nil fields are left unchanged.
// Shop fields apply to merchants only and vehicle fields to delivery users only.
type UpdateProfileInput struct {
	Name   *string
	Email  *string
	Avatar *string

	ShopName        *string
	ShopDescription *string
	ShopAddress     *string
	ShopPhone       *string

	VehicleType   *string
	VehicleNumber *string
}

// UpdatePasswordInput defines a password change by the account owner.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// AddressInput describes a delivery address.
type AddressInput struct {
	Label       string
	FullAddress string
	City        string
	Quarter     string
	Details     string
	IsDefault   bool
}

// --- Output DTOs ---

// AuthOutput returns a signed access token and the authenticated user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines account and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// ForgotPassword stores a fresh OTP on the account and returns it.
	ForgotPassword(ctx context.Context, phone string) (string, error)

	// ResetPassword consumes the OTP and returns a new access token.
	ResetPassword(ctx context.Context, input ResetPasswordInput) (string, error)

	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)

	// UpdatePassword returns a new access token once the password changed.
	UpdatePassword(ctx context.Context, userID uuid.UUID, input UpdatePasswordInput) (string, error)

	// AddAddress returns the full address list after the insert.
	AddAddress(ctx context.Context, userID uuid.UUID, input AddressInput) ([]entity.Address, error)

	UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error

	// Authenticate resolves a bearer token to an active user.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
