package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EntityCache defines the caching operations for one entity type keyed by
// an integer identifier.
type EntityCache[T any] interface {
	// Get retrieves an entity from cache by key.
	// Returns nil if the entity is not cached.
	Get(ctx context.Context, key int) (*T, error)

	// Set stores an entity in cache with the configured TTL.
	Set(ctx context.Context, key int, entity *T) error

	// Delete removes entities from cache by key.
	Delete(ctx context.Context, keys ...int) error
}

// RedisEntityCache implements EntityCache using Redis as the backing store.
type RedisEntityCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisEntityCache creates a new Redis-backed cache. Keys are rendered
// as "<prefix>:<key>".
func NewRedisEntityCache[T any](client *redis.Client, prefix string, ttl time.Duration, log *zap.Logger) *RedisEntityCache[T] {
	return &RedisEntityCache[T]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		log:    log.With(zap.String("cache", prefix)),
	}
}

// cacheKey generates a Redis key for an entity key.
func (c *RedisEntityCache[T]) cacheKey(key int) string {
	return fmt.Sprintf("%s:%d", c.prefix, key)
}

// Get retrieves an entity from Redis.
func (c *RedisEntityCache[T]) Get(ctx context.Context, key int) (*T, error) {
	data, err := c.client.Get(ctx, c.cacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.log.Debug("cache miss", zap.Int("key", key))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.Int("key", key), zap.Error(err))
		return nil, err
	}

	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		c.log.Error("failed to unmarshal cached entity", zap.Int("key", key), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.Int("key", key))
	return &entity, nil
}

// Set stores an entity in Redis with TTL.
func (c *RedisEntityCache[T]) Set(ctx context.Context, key int, entity *T) error {
	if entity == nil {
		return fmt.Errorf("cannot cache nil %s", c.prefix)
	}

	data, err := json.Marshal(entity)
	if err != nil {
		c.log.Error("failed to marshal entity for cache", zap.Int("key", key), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, c.cacheKey(key), data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.Int("key", key), zap.Error(err))
		return err
	}

	c.log.Debug("cached entity", zap.Int("key", key), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes entities from Redis.
func (c *RedisEntityCache[T]) Delete(ctx context.Context, keys ...int) error {
	if len(keys) == 0 {
		return nil
	}

	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = c.cacheKey(k)
	}

	if err := c.client.Del(ctx, redisKeys...).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.Ints("keys", keys), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.Ints("keys", keys))
	return nil
}
