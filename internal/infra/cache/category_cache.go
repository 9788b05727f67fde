package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const activeCategoriesKey = "market:categories:active"

type cachedCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type redisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// noopCategoryCache always misses.
type noopCategoryCache struct{}

func (noopCategoryCache) GetActive(context.Context) ([]*entity.Category, bool, error) {
	return nil, false, nil
}

func (noopCategoryCache) SetActive(context.Context, []*entity.Category) error { return nil }

func (noopCategoryCache) Invalidate(context.Context) error { return nil }

// CategoryCacheParams holds dependencies for the category cache, injected by Fx
type CategoryCacheParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewCategoryCache returns a Redis backed cache, or a cache that always
// misses when Redis is disabled.
func NewCategoryCache(params CategoryCacheParams) service.CategoryCache {
	if params.Client == nil {
		return noopCategoryCache{}
	}

	return NewRedisCategoryCache(params.Client, params.Config.Redis.CategoryTTL)
}

// NewRedisCategoryCache builds the Redis implementation directly.
func NewRedisCategoryCache(client *redis.Client, ttl time.Duration) service.CategoryCache {
	return &redisCategoryCache{client: client, ttl: ttl}
}

func (c *redisCategoryCache) GetActive(ctx context.Context) ([]*entity.Category, bool, error) {
	raw, err := c.client.Get(ctx, activeCategoriesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read category cache")
	}

	var cached []cachedCategory
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode category cache")
	}

	categories := make([]*entity.Category, len(cached))
	for i, cc := range cached {
		categories[i] = &entity.Category{
			ID:          cc.ID,
			Name:        cc.Name,
			Description: cc.Description,
			Image:       cc.Image,
			Order:       cc.Order,
			IsActive:    cc.IsActive,
			CreatedAt:   cc.CreatedAt,
			UpdatedAt:   cc.UpdatedAt,
		}
	}

	return categories, true, nil
}

func (c *redisCategoryCache) SetActive(ctx context.Context, categories []*entity.Category) error {
	cached := make([]cachedCategory, len(categories))
	for i, category := range categories {
		cached[i] = cachedCategory{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			Image:       category.Image,
			Order:       category.Order,
			IsActive:    category.IsActive,
			CreatedAt:   category.CreatedAt,
			UpdatedAt:   category.UpdatedAt,
		}
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return errors.Wrap(err, "failed to encode category cache")
	}

	return errors.Wrap(c.client.Set(ctx, activeCategoriesKey, raw, c.ttl).Err(), "failed to write category cache")
}

func (c *redisCategoryCache) Invalidate(ctx context.Context) error {
	return errors.Wrap(c.client.Del(ctx, activeCategoriesKey).Err(), "failed to invalidate category cache")
}
