package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"market/config"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret:  "test-secret",
			JWTExpiry:  time.Hour,
			BcryptCost: 4,
			OTPTTL:     10 * time.Minute,
		},
	}
}

// expectTransaction makes txManager run the callback against factory and
// return whatever the callback returns.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func ptr[T any](v T) *T {
	return &v
}

func requireAppErrorCode(t *testing.T, err error, code string) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())

	return appErr
}
