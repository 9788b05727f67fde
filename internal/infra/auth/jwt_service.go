// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"market/config"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// fallbackSecret is only accepted outside production, see config.New.
const fallbackSecret = "market-dev-secret-change-me"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration is required")
	}

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("jwt secret must be provided")
		}
		secret = fallbackSecret
	}

	ttl := cfg.Auth.JWTExpiry
	if ttl <= 0 {
		return nil, errors.New("jwt expiry must be positive")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed HS256 token embedding id, role and phone.
func (s *jwtService) GenerateToken(userID uuid.UUID, role, phone string) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: userID,
		Role:   role,
		Phone:  phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken parses and verifies a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return claims, nil
}
