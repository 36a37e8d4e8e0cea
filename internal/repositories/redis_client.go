package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/diet-tracker/internal/config"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient dials the configured Redis, attaches tracing hooks and
// fails unless the server answers a PING.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rc := cfg.RedisConnect

	slog.Info("Connecting to Redis", slog.String("addr", rc.Host+":"+rc.Port), slog.Int("db", rc.DB))

	opt, err := redis.ParseURL(rc.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.DB = rc.DB

	client := redis.NewClient(opt)

	if err := redisotel.InstrumentTracing(client); err != nil {
		slog.Warn("Failed to instrument Redis tracing", slog.Any("error", err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}
