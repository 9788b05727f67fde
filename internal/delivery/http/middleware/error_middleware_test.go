package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"market/config"
	"market/internal/delivery/http/response"
	"market/internal/delivery/http/validator"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newErrorMiddleware(env string) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.Env.Env = env

	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func renderError(t *testing.T, mw *ErrorMiddleware, err error) (int, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

type orderLine struct {
	Items []int  `json:"items" validate:"required,min=1"`
	Note  string `json:"note" validate:"max=5"`
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	validationErr := validator.New().Validate(&orderLine{Note: "much too long"})
	require.Error(t, validationErr)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "app error",
			err:         domainerrors.ErrProductNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    domainerrors.ErrProductNotFound.ErrorCode(),
			wantMessage: domainerrors.ErrProductNotFound.Message(),
		},
		{
			name:        "wrapped app error",
			err:         errors.Wrap(domainerrors.NewCategoryInUseError(2), "failed to delete category"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "CATEGORY_IN_USE",
			wantMessage: "Impossible de supprimer: 2 produit(s) utilisent cette catégorie",
		},
		{
			name:        "validator errors are joined",
			err:         validationErr,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "items est requis, note ne doit pas dépasser 5 caractères",
		},
		{
			name:        "query binding error",
			err:         echo.NewBindingError("page", []string{"abc"}, "failed to bind field value to int", nil),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "Paramètre invalide: page",
		},
		{
			name:        "duplicate key escaping a repository",
			err:         errors.WithStack(gorm.ErrDuplicatedKey),
			wantStatus:  http.StatusBadRequest,
			wantCode:    domainerrors.ErrDuplicateResource.ErrorCode(),
			wantMessage: domainerrors.ErrDuplicateResource.Message(),
		},
		{
			name:        "malformed body",
			err:         echo.NewHTTPError(http.StatusBadRequest, "Syntax error"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: domainerrors.ErrValidation.Message(),
		},
		{
			name:        "echo route not found",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Not Found",
		},
		{
			name:        "unexpected error",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Erreur serveur",
		},
	}

	mw := newErrorMiddleware("development")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := renderError(t, mw, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestErrorMiddleware_InternalDetails(t *testing.T) {
	err := errors.Wrap(errors.New("connection reset"), "failed to list products")

	t.Run("exposed outside production", func(t *testing.T) {
		_, body := renderError(t, newErrorMiddleware("development"), err)

		require.NotNil(t, body.Error)
		assert.Contains(t, body.Error.Details, "connection reset")
		assert.Contains(t, body.Error.Details, "failed to list products")
	})

	t.Run("hidden in production", func(t *testing.T) {
		_, body := renderError(t, newErrorMiddleware(config.EnvProduction), err)

		require.NotNil(t, body.Error)
		assert.Empty(t, body.Error.Details)
	})
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	newErrorMiddleware("development").HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
