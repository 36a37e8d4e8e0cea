package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

const (
	ProductKeyPrefix = "product"
	MealKeyPrefix    = "meal"
	UserKeyPrefix    = "user"
)

func Key(prefix string, id uuid.UUID) string {
	return prefix + ":" + id.String()
}
