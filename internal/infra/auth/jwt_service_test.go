package auth

import (
	"testing"
	"time"

	"market/config"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret: "test_secret_key_very_long_for_testing",
			JWTExpiry: 7 * 24 * time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "merchant", "+237611111111")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "merchant", claims.Role)
	assert.Equal(t, "+237611111111", claims.Phone)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.Auth.JWTSecret = "another_secret_key_very_long_for_testing"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateToken(uuid.New(), "client", "+237611111111")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	token, err := svc.GenerateToken(uuid.New(), "client", "+237611111111")
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
	assert.False(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims := service.Claims{
		UserID: uuid.New(),
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestNewJWTService_Secrets(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Auth.JWTSecret = ""

	svc, err := NewJWTService(cfg)
	require.NoError(t, err, "development falls back to a built-in secret")
	assert.NotNil(t, svc)

	cfg.Env.Env = config.EnvProduction
	_, err = NewJWTService(cfg)
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}
