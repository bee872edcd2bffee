package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces rendered-view entries so unrelated keys survive
// invalidation.
const keyPrefix = "view:"

// RedisInvalidator drops the cached rendering of a view from Redis.
type RedisInvalidator struct {
	rdb *redis.Client
}

func NewRedisInvalidator(rdb *redis.Client) *RedisInvalidator {
	return &RedisInvalidator{rdb: rdb}
}

func (c *RedisInvalidator) Invalidate(ctx context.Context, path string) error {
	return c.rdb.Del(ctx, viewKey(path)).Err()
}

func viewKey(path string) string {
	return keyPrefix + path
}
