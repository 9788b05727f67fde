package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Authenticate resolves the bearer token to an active user and stores the
// identity in the echo and request contexts.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, found := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)
		if !found {
			token = ""
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, deliverycontext.AuthUser{ID: user.ID, Role: user.Role, Phone: user.Phone})

		reqLogger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			With(slog.String("user_id", user.ID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), reqLogger)))

		return next(c)
	}
}

// Authorize rejects users whose role is not in roles. It must run after Authenticate.
func (m *AuthMiddleware) Authorize(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := deliverycontext.GetRole(c)
			if !ok || !allowed.Contains(role) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Role not allowed",
					slog.String("role", role.String()),
					slog.Any("allowed", allowed.ToStrings()),
				)

				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
