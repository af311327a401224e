package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zetherabarter/Rec-Backend2/internal/cache"
	"github.com/zetherabarter/Rec-Backend2/internal/testutils/containers"
)

func TestCache(t *testing.T) {
	ctx := context.Background()

	redisContainer, closer, err := containers.NewRedisContainer(ctx)

	if err != nil {
		t.Fatal(err)
		return
	}

	defer closer()

	redisClient, err := cache.NewRedisClient(ctx, redisContainer)

	if err != nil {
		t.Fatal(err)
		return
	}

	redisCache := cache.NewRedisCache(redisClient)

	t.Run("Can set/get value", func(t *testing.T) {
		key := cache.Key("test-key")
		value := "test-value"

		err := redisCache.Set(ctx, key, value, time.Hour)
		assert.Nil(t, err)

		got, err, exists := redisCache.Get(ctx, key)
		assert.Nil(t, err)
		assert.True(t, exists)
		assert.Equal(t, value, got)
	})

	t.Run("Get non-existent key returns no error", func(t *testing.T) {
		key := cache.Key("non-existent-key")

		got, err, exists := redisCache.Get(ctx, key)
		assert.Nil(t, err)
		assert.False(t, exists)
		assert.Equal(t, "", got)
	})

	t.Run("Can delete values", func(t *testing.T) {
		key1 := cache.Key("test-key-delete:1")
		key2 := cache.Key("test-key-delete:2")

		err := redisCache.Set(ctx, key1, "value1", time.Hour)
		assert.Nil(t, err)

		err = redisCache.Set(ctx, key2, "value2", time.Hour)
		assert.Nil(t, err)

		err = redisCache.Del(ctx, key1, key2)
		assert.Nil(t, err)

		_, err, exists := redisCache.Get(ctx, key1)
		assert.Nil(t, err)
		assert.False(t, exists)

		_, err, exists = redisCache.Get(ctx, key2)
		assert.Nil(t, err)
		assert.False(t, exists)
	})
}
