package tests

import (
	"context"
	"testing"
	"time"

	"tableside/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newOccupancyCache(t *testing.T) (*storage.OccupancyCache, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return storage.NewOccupancyCache(client, 24*time.Hour), server
}

func TestOccupancyCache_SetAndGet(t *testing.T) {
	cache, _ := newOccupancyCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.SetOccupied(ctx, "user1", "t5", "order_1"))

	orderID, err := cache.GetOccupant(ctx, "user1", "t5")
	assert.NoError(t, err)
	assert.Equal(t, "order_1", orderID)
}

func TestOccupancyCache_GetOccupant_EmptyTable(t *testing.T) {
	cache, _ := newOccupancyCache(t)

	orderID, err := cache.GetOccupant(context.Background(), "user1", "t9")
	assert.NoError(t, err)
	assert.Empty(t, orderID)
}

func TestOccupancyCache_ClearOccupied(t *testing.T) {
	cache, _ := newOccupancyCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.SetOccupied(ctx, "user1", "t5", "order_1"))
	assert.NoError(t, cache.ClearOccupied(ctx, "user1", "t5"))

	orderID, err := cache.GetOccupant(ctx, "user1", "t5")
	assert.NoError(t, err)
	assert.Empty(t, orderID)
}

func TestOccupancyCache_MarkerExpires(t *testing.T) {
	cache, server := newOccupancyCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.SetOccupied(ctx, "user1", "t5", "order_1"))
	server.FastForward(25 * time.Hour)

	orderID, err := cache.GetOccupant(ctx, "user1", "t5")
	assert.NoError(t, err)
	assert.Empty(t, orderID)
}

func TestOccupancyCache_ListOccupied(t *testing.T) {
	cache, _ := newOccupancyCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.SetOccupied(ctx, "user1", "t1", "order_1"))
	assert.NoError(t, cache.SetOccupied(ctx, "user1", "t2", "order_2"))
	assert.NoError(t, cache.SetOccupied(ctx, "other-user", "t1", "order_9"))

	occupied, err := cache.ListOccupied(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"t1": "order_1", "t2": "order_2"}, occupied)
}

func TestMenuCache_RoundTrip(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := storage.NewMenuCache(client, time.Hour)
	ctx := context.Background()

	payload := []byte(`[{"id":"dish_1","name":"Pizza"}]`)
	assert.NoError(t, cache.SetMenu(ctx, "user1", payload))

	got, err := cache.GetMenu(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestMenuCache_GetMenu_Missing(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := storage.NewMenuCache(client, time.Hour)

	got, err := cache.GetMenu(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
