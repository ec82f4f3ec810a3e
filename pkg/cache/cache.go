package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small Redis-backed read cache for hot endpoints (streak
// snapshot, stats). A nil *Cache is valid and disables caching, so callers
// never need to branch on whether Redis is configured.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func New(addr, password, prefix string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

// Get reads a cached value into dest. Returns false on miss or any error,
// so a broken cache degrades to reading through.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.prefix+key, data, c.ttl)
}

// Invalidate drops all cached entries for a user. Called after any write
// that changes streak, ledger or achievement state.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	c.client.Del(ctx, full...)
}
