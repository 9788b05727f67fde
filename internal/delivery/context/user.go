package context

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUser is the key of the authenticated caller.
const KeyUser ContextKey = "user"

// AuthUser is the caller resolved from a bearer token.
type AuthUser struct {
	ID    uuid.UUID
	Role  entity.Role
	Phone string
}

// SetUser stores the authenticated caller in echo.Context and in the request context.
func SetUser(c echo.Context, user AuthUser) {
	c.Set(string(KeyUser), user)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), KeyUser, user)))
}

// GetUser returns the caller stored by the auth middleware.
func GetUser(c echo.Context) (AuthUser, bool) {
	user, ok := c.Get(string(KeyUser)).(AuthUser)

	return user, ok && user.ID != uuid.Nil
}

func GetUserID(c echo.Context) (uuid.UUID, bool) {
	user, ok := GetUser(c)

	return user.ID, ok
}

func GetRole(c echo.Context) (entity.Role, bool) {
	user, ok := GetUser(c)

	return user.Role, ok
}
