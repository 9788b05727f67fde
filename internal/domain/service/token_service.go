package service

import (
	"market/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation failures, distinguished so callers can report expiry separately.
var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Role   string    `json:"role"`
	Phone  string    `json:"phone"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(userID uuid.UUID, role, phone string) (string, error)

	// ValidateToken checks a token string. It returns ErrTokenExpired or
	// ErrTokenInvalid on failure.
	ValidateToken(tokenString string) (*Claims, error)
}
