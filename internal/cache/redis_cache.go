package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/diet-tracker/internal/config"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) Cache {
	return &redisCache{
		client: client,
		cfg:    cfg,
	}
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	cacheCtx, cancel := utils.WithCacheTimeout(ctx)
	defer cancel()

	data, err := r.client.Get(cacheCtx, key).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)

	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.cfg.DefaultTTL
	}

	cacheCtx, cancel := utils.WithCacheTimeout(ctx)
	defer cancel()

	if err := r.client.Set(cacheCtx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil

}

func (r *redisCache) Delete(ctx context.Context, keys ...string) error {

	if len(keys) == 0 {
		return nil
	}

	cacheCtx, cancel := utils.WithCacheTimeout(ctx)
	defer cancel()

	if err := r.client.Del(cacheCtx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys %v from redis: %w", keys, err)
	}

	return nil

}

// the client is owned by main
func (r *redisCache) Close() error {
	return nil
}

// GetOrLoad reads key through c. On a miss load is called and its result
// stored with ttl. Cache failures are logged and never fail the read.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {

	var cached T

	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		slog.WarnContext(ctx, "Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return value, nil
}
