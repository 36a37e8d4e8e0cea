package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/diet-tracker/internal/cache"
	"github.com/aaravmahajanofficial/diet-tracker/internal/config"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 10 * time.Minute,
	}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func testProduct() models.Product {
	return models.Product{
		ID:     uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Name:   "Banana",
		Kcal:   89,
		Amount: 100,
	}
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	product := testProduct()
	key := cache.Key(cache.ProductKeyPrefix, product.ID)
	data, err := json.Marshal(product)
	require.NoError(t, err)

	t.Run("Success - Hit", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(data))

		var got models.Product

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, product, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Miss", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var got models.Product

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(key).SetErr(expectedErr)

		var got models.Product

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.ErrorContains(t, err, "failed to get key "+key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(`{"kcal": "lots"}`)

		var got models.Product

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		assert.False(t, found)

		var jsonErr *json.UnmarshalTypeError

		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	product := testProduct()
	key := cache.Key(cache.ProductKeyPrefix, product.ID)
	data, err := json.Marshal(product)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectSet(key, data, time.Minute).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, product, time.Minute)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Default TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock, cfg := setup(t)
		mock.ExpectSet(key, data, cfg.DefaultTTL).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, product, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		// Act
		err := redisCache.Set(ctx, key, make(chan int), time.Minute)

		// Assert
		var jsonErr *json.UnsupportedTypeError

		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis SET failed")
		mock.ExpectSet(key, data, time.Minute).SetErr(expectedErr)

		// Act
		err := redisCache.Set(ctx, key, product, time.Minute)

		// Assert
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	productKey := cache.Key(cache.ProductKeyPrefix, uuid.New())
	mealKey := cache.Key(cache.MealKeyPrefix, uuid.New())

	t.Run("Success - Multiple Keys", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectDel(productKey, mealKey).SetVal(2)

		// Act
		err := redisCache.Delete(ctx, productKey, mealKey)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Keys", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		// Act
		err := redisCache.Delete(ctx)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis DEL failed")
		mock.ExpectDel(productKey).SetErr(expectedErr)

		// Act
		err := redisCache.Delete(ctx, productKey)

		// Assert
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetOrLoad(t *testing.T) {
	ctx := t.Context()
	product := testProduct()
	key := cache.Key(cache.ProductKeyPrefix, product.ID)
	data, err := json.Marshal(product)
	require.NoError(t, err)

	t.Run("Success - Hit Skips Loader", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(data))

		// Act
		got, err := cache.GetOrLoad(ctx, redisCache, key, time.Minute, func(context.Context) (models.Product, error) {
			t.Fatal("loader must not run on a hit")
			return models.Product{}, nil
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, product, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Miss Loads And Stores", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)
		mock.ExpectSet(key, data, time.Minute).SetVal("OK")

		// Act
		got, err := cache.GetOrLoad(ctx, redisCache, key, time.Minute, func(context.Context) (models.Product, error) {
			return product, nil
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, product, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Redis Down Falls Back To Loader", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(errors.New("connection refused"))
		mock.ExpectSet(key, data, time.Minute).SetErr(errors.New("connection refused"))

		// Act
		got, err := cache.GetOrLoad(ctx, redisCache, key, time.Minute, func(context.Context) (models.Product, error) {
			return product, nil
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Failure - Loader Error Is Not Cached", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		loadErr := errors.New("not found")
		mock.ExpectGet(key).SetErr(redis.Nil)

		// Act
		_, err := cache.GetOrLoad(ctx, redisCache, key, time.Minute, func(context.Context) (models.Product, error) {
			return models.Product{}, loadErr
		})

		// Assert
		assert.ErrorIs(t, err, loadErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClose(t *testing.T) {
	redisCache, _, _ := setup(t)
	assert.NoError(t, redisCache.Close())
}

func TestKey(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	assert.Equal(t, "product:123e4567-e89b-12d3-a456-426614174000", cache.Key(cache.ProductKeyPrefix, id))
	assert.Equal(t, "meal:123e4567-e89b-12d3-a456-426614174000", cache.Key(cache.MealKeyPrefix, id))
	assert.Equal(t, "user:00000000-0000-0000-0000-000000000000", cache.Key(cache.UserKeyPrefix, uuid.Nil))
}
