package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// OccupancyCache tracks which order is seated at which table. The mapping is
// advisory only, so markers carry a TTL and a stale entry self-heals.
type OccupancyCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewOccupancyCache(client *redis.Client, ttl time.Duration) *OccupancyCache {
	return &OccupancyCache{Client: client, TTL: ttl}
}

func (c *OccupancyCache) OccupancyKey(userID, tableID string) string {
	return "occupancy:" + userID + ":" + tableID
}

func (c *OccupancyCache) SetOccupied(ctx context.Context, userID, tableID, orderID string) error {
	return c.Client.Set(ctx, c.OccupancyKey(userID, tableID), orderID, c.TTL).Err()
}

func (c *OccupancyCache) ClearOccupied(ctx context.Context, userID, tableID string) error {
	return c.Client.Del(ctx, c.OccupancyKey(userID, tableID)).Err()
}

func (c *OccupancyCache) GetOccupant(ctx context.Context, userID, tableID string) (string, error) {
	orderID, err := c.Client.Get(ctx, c.OccupancyKey(userID, tableID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return orderID, nil
}

// ListOccupied returns tableID -> orderID for every occupied table of a user.
func (c *OccupancyCache) ListOccupied(ctx context.Context, userID string) (map[string]string, error) {
	prefix := "occupancy:" + userID + ":"
	occupied := map[string]string{}

	var cursor uint64
	for {
		keys, next, err := c.Client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			orderID, err := c.Client.Get(ctx, key).Result()
			if err != nil {
				continue
			}
			occupied[key[len(prefix):]] = orderID
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return occupied, nil
}

// MenuCache holds a warmed copy of a user's menu, refreshed by the import
// consumer so other views pick up a fresh catalog without hitting Postgres.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func (c *MenuCache) MenuCacheKey(userID string) string {
	return "menucache:" + userID
}

func (c *MenuCache) SetMenu(ctx context.Context, userID string, payload []byte) error {
	return c.Client.Set(ctx, c.MenuCacheKey(userID), payload, c.TTL).Err()
}

func (c *MenuCache) GetMenu(ctx context.Context, userID string) ([]byte, error) {
	payload, err := c.Client.Get(ctx, c.MenuCacheKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return payload, err
}
