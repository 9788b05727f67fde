// Command seed creates the bootstrap administrator account.
package main

import (
	"context"
	"log/slog"
	"os"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/infra/auth"
	logs "market/internal/infra/log"
	"market/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config   *config.Config
	Logger   *slog.Logger
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
		),
		fx.Invoke(runSeed),
	).Run()
}

// runSeed seeds once the database hooks have started, then stops the app.
func runSeed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				if err := seedAdmin(context.Background(), params.UserRepo, params.Hasher, params.Config.Seed, params.Logger); err != nil {
					params.Logger.Error("Failed to seed admin", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}

// seedAdmin creates the configured admin unless an admin already exists.
func seedAdmin(ctx context.Context, userRepo repository.UserRepository, hasher service.PasswordHasher, cfg *config.SeedConfig, logger *slog.Logger) error {
	adminRole := entity.RoleAdmin
	count, err := userRepo.Count(ctx, repository.UserFilter{Role: &adminRole})
	if err != nil {
		return errors.Wrap(err, "failed to count admins")
	}
	if count > 0 {
		logger.Info("Admin already exists, nothing to seed", slog.Int64("admins", count))

		return nil
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		ID:           uuid.New(),
		Phone:        cfg.AdminPhone,
		PasswordHash: hash,
		Name:         cfg.AdminName,
		Email:        entity.NormalizeEmail(cfg.AdminEmail),
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create admin")
	}

	logger.Info("Admin account created",
		slog.String("user_id", admin.ID.String()),
		slog.String("phone", admin.Phone),
	)

	return nil
}
