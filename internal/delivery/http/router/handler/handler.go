// Package handler contains the HTTP handlers for the application.
package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "market/internal/delivery/context"
	"market/internal/delivery/http/response"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bind decodes the request into req and runs its validation rules.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(err)
	}

	return c.Validate(req)
}

// currentUserID returns the user stored by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// pathID parses a UUID path parameter. A malformed ID cannot name an
// existing resource, so it is reported as not found.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}

	return id, nil
}

// queryUUID parses an optional UUID query parameter.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError("Identifiant invalide: " + name)
	}

	return &id, nil
}

// queryFloat parses an optional finite float query parameter.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, domainerrors.NewValidationError("Nombre invalide: " + name)
	}

	return &v, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError("Booléen invalide: " + name)
	}

	return &v, nil
}
