package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"
	mockrepository "market/internal/mocks/repository"
	mockservice "market/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var seedConfig = &config.SeedConfig{
	AdminPhone:    "+237600000000",
	AdminPassword: "admin123",
	AdminName:     "Super Admin",
	AdminEmail:    "Admin@FavelaMarket.com",
}

func isAdminFilter(f repository.UserFilter) bool {
	return f.Role != nil && *f.Role == entity.RoleAdmin
}

func TestSeedAdmin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("creates the admin", func(t *testing.T) {
		userRepo := mockrepository.NewMockUserRepository(t)
		hasher := mockservice.NewMockPasswordHasher(t)

		userRepo.EXPECT().Count(mock.Anything, mock.MatchedBy(isAdminFilter)).Return(int64(0), nil)
		hasher.EXPECT().Hash("admin123").Return("hashed", nil)
		userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin &&
				u.Phone == "+237600000000" &&
				u.PasswordHash == "hashed" &&
				u.Name == "Super Admin" &&
				u.Email == "admin@favelamarket.com" &&
				u.IsActive && u.IsApproved()
		})).Return(nil)

		require.NoError(t, seedAdmin(context.Background(), userRepo, hasher, seedConfig, logger))
	})

	t.Run("skips when an admin exists", func(t *testing.T) {
		userRepo := mockrepository.NewMockUserRepository(t)
		hasher := mockservice.NewMockPasswordHasher(t)

		userRepo.EXPECT().Count(mock.Anything, mock.MatchedBy(isAdminFilter)).Return(int64(1), nil)

		require.NoError(t, seedAdmin(context.Background(), userRepo, hasher, seedConfig, logger))
	})

	t.Run("create failure", func(t *testing.T) {
		userRepo := mockrepository.NewMockUserRepository(t)
		hasher := mockservice.NewMockPasswordHasher(t)

		userRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(0), nil)
		hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrUserAlreadyExists)

		err := seedAdmin(context.Background(), userRepo, hasher, seedConfig, logger)

		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrUserAlreadyExists))
	})
}
