// Package cache implements read-through caches on Redis.
package cache

import (
	"context"
	"log/slog"

	"market/config"
	"market/internal/domain/lifecycle"
	"market/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisParams holds dependencies for the Redis client, injected by Fx
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to Redis when configured. It returns a nil client
// otherwise, and callers fall back to uncached reads.
func NewRedisClient(params RedisParams) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, caching disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client
}
