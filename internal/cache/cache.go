package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is an optional response cache backed by redis. A nil *Cache is
// valid and performs no caching, so callers never need to branch on
// whether caching is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis at redisURL. An empty URL disables caching and
// returns a nil cache.
func New(redisURL string, ttl time.Duration) (*Cache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Get returns the cached payload for key, if any. Redis errors are
// treated as a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores a payload under key for the configured TTL, best effort.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, payload, c.ttl)
}

// Close releases the underlying redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
