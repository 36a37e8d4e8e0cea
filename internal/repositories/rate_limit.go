package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/diet-tracker/internal/api/middleware"
	"github.com/aaravmahajanofficial/diet-tracker/internal/config"
	"github.com/redis/go-redis/v9"
)

// RateLimitRepository counts login attempts in a sliding window.
type RateLimitRepository interface {
	// CheckLoginRateLimit records an attempt for identifier and reports whether
	// it is allowed, how many attempts remain and how many seconds to wait.
	CheckLoginRateLimit(ctx context.Context, identifier string) (bool, int, int, error)
}

var errNoAttempts = errors.New("attempt window is empty")

type redisRepository struct {
	client *redis.Client
	cfg    *config.Config
	now    func() time.Time
}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg, now: time.Now}
}

func loginAttemptsKey(identifier string) string {
	return "login_attempts:" + identifier
}

func (r *redisRepository) CheckLoginRateLimit(ctx context.Context, identifier string) (bool, int, int, error) {
	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsKey(identifier)
	window := r.cfg.RateConfig.WindowSize
	limit := r.cfg.RateConfig.MaxAttempts
	now := r.now().Unix()

	attempts, err := r.recordAttempt(ctx, key, now, window)
	if err != nil {
		logger.Error("Rate limit pipeline failed", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	if attempts < limit {
		logger.Debug("Rate limit check passed", slog.String("identifier", identifier), slog.Int64("attempts", attempts))
		return true, int(limit - attempts), 0, nil
	}

	wait, err := r.retryAfter(ctx, key, now, window)
	if err != nil {
		logger.Error("Failed to read oldest login attempt", slog.String("key", key), slog.Any("error", err))
		return false, 0, int(window.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
	}

	logger.Warn("Rate limit exceeded", slog.String("identifier", identifier), slog.Int64("attempts", attempts))

	return false, 0, wait, nil
}

// recordAttempt drops attempts older than the window, adds this one and
// returns the count inside the window.
func (r *redisRepository) recordAttempt(ctx context.Context, key string, now int64, window time.Duration) (int64, error) {
	windowStart := now - int64(window.Seconds())

	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return count.Val(), nil
}

// retryAfter is the number of seconds until the oldest attempt leaves the window.
func (r *redisRepository) retryAfter(ctx context.Context, key string, now int64, window time.Duration) (int, error) {
	oldest, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
	if err != nil {
		return 0, err
	}

	if len(oldest) == 0 {
		return 0, errNoAttempts
	}

	return int(max(int64(oldest[0].Score)+int64(window.Seconds())-now, 0)), nil
}
