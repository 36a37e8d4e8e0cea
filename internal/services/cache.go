package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/diet-tracker/internal/cache"
)

// invalidate is shared by the services that read through the cache. A failed
// delete only leaves a stale entry until its TTL runs out.
func invalidate(ctx context.Context, c cache.Cache, keys ...string) {
	if err := c.Delete(ctx, keys...); err != nil {
		slog.WarnContext(ctx, "Cache invalidation failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}
