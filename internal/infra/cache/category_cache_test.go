package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"market/config"
	"market/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, client
}

func TestRedisCategoryCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	cache := NewRedisCategoryCache(client, time.Minute)

	_, found, err := cache.GetActive(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	categories := []*entity.Category{
		{ID: uuid.New(), Name: "Chaussures", Order: 1, IsActive: true},
		{ID: uuid.New(), Name: "Vêtements", Order: 2, IsActive: true},
	}
	require.NoError(t, cache.SetActive(ctx, categories))
	assert.Equal(t, time.Minute, server.TTL(activeCategoriesKey))

	got, found, err := cache.GetActive(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 2)
	assert.Equal(t, categories[0].ID, got[0].ID)
	assert.Equal(t, "Vêtements", got[1].Name)

	require.NoError(t, cache.Invalidate(ctx))
	_, found, err = cache.GetActive(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCategoryCache_EmptyListIsAHit(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	cache := NewRedisCategoryCache(client, time.Minute)

	require.NoError(t, cache.SetActive(ctx, nil))

	got, found, err := cache.GetActive(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestRedisCategoryCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	cache := NewRedisCategoryCache(client, time.Minute)

	require.NoError(t, server.Set(activeCategoriesKey, "{not json"))

	_, found, err := cache.GetActive(ctx)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestNewCategoryCache_NoopWithoutClient(t *testing.T) {
	cache := NewCategoryCache(CategoryCacheParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, cache.SetActive(context.Background(), []*entity.Category{{Name: "x"}}))
	_, found, err := cache.GetActive(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, cache.Invalidate(context.Background()))
}
