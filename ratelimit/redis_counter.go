package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCounter implements Counter against a Redis INCR/EXPIRE pair:
// the gateway's only consumer of the go-redis client.
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter dials (lazily; go-redis connects on first command)
// a Redis instance at addr.
func NewRedisCounter(addr string) *RedisCounter {
	return &RedisCounter{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// IncrementWindow increments key and, on the window's first hit, sets
// it to expire after window. The expire is set after the increment
// rather than with SET...NX to keep the hot path a single round trip
// in the common (already-created) case.
func (c *RedisCounter) IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}
