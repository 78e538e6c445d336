package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Cache keeps a last-good copy of read-only data so stylist reads can
// degrade to stale data instead of an empty state when the database is
// unreachable. Write paths never touch it.
type Cache struct {
	client *redis.Client
	log    zerolog.Logger
	ttl    time.Duration
}

// New returns nil when addr is empty; a nil *Cache is a no-op.
func New(addr string, log zerolog.Logger) *Cache {
	if addr == "" {
		return nil
	}

	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		log:    log,
		ttl:    24 * time.Hour,
	}
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// GetJSON reports whether a cached value was found and decoded into v.
func (c *Cache) GetJSON(ctx context.Context, key string, v any) bool {
	if c == nil {
		return false
	}

	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}

	return json.Unmarshal(b, v) == nil
}
