package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/delivery/http/response"
	"market/internal/delivery/http/validator"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"

	playvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Internal
// details are only exposed outside production.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		validationErrs playvalidator.ValidationErrors
		bindErr        *echo.BindingError
		appErr         domainerrors.AppError
		httpErr        *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErrs):
		_ = response.Error(c, http.StatusBadRequest, domainerrors.ErrValidation.ErrorCode(), validator.Join(validationErrs), "")

	case errors.As(err, &bindErr):
		message := fmt.Sprintf("Paramètre invalide: %s", bindErr.Field)
		_ = response.Error(c, http.StatusBadRequest, domainerrors.ErrValidation.ErrorCode(), message, m.details(bindErr.Internal))

	case errors.Is(err, gorm.ErrDuplicatedKey):
		dup := domainerrors.ErrDuplicateResource
		_ = response.Error(c, dup.HTTPCode(), dup.ErrorCode(), dup.Message(), "")

	case errors.As(err, &appErr):
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
			details = m.details(err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

	case errors.As(err, &httpErr):
		m.handleEchoError(c, httpErr)

	default:
		m.logUnhandled(c, err)
		internal := domainerrors.ErrInternalError
		_ = response.Error(c, internal.HTTPCode(), internal.ErrorCode(), internal.Message(), m.details(err))
	}
}

// handleEchoError renders errors raised by echo itself. Request binding
// failures surface as 400 and are reported as validation errors.
func (m *ErrorMiddleware) handleEchoError(c echo.Context, httpErr *echo.HTTPError) {
	if httpErr.Code == http.StatusBadRequest {
		_ = response.Error(c, http.StatusBadRequest, domainerrors.ErrValidation.ErrorCode(),
			domainerrors.ErrValidation.Message(), m.details(httpErr.Internal))

		return
	}

	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// details renders the full error chain, stack included, outside production.
func (m *ErrorMiddleware) details(err error) string {
	if m.production || err == nil {
		return ""
	}

	return fmt.Sprintf("%+v", err)
}
