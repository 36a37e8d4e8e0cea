package utils

import (
	"context"
	"time"
)

const DefaultDBTimeout = 5 * time.Second

const DefaultCacheTimeout = 500 * time.Millisecond

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

func WithCacheTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultCacheTimeout)
}
