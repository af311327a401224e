package cache

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	redis "github.com/redis/go-redis/v9"
)

type Key string

type RedisConfigurator interface {
	GetRedisUrl() (string, error)
}

type Cache interface {
	Get(ctx context.Context, key Key) (string, error, bool)
	Set(ctx context.Context, key Key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...Key) error
}

type Redis struct {
	client *redis.Client
}

// GetEndpointKey builds the cache key for a GET endpoint response.
func GetEndpointKey(u *url.URL) Key {
	return Key(fmt.Sprintf("endpoints:%s", u.RequestURI()))
}

func (r *Redis) Get(ctx context.Context, key Key) (string, error, bool) {

	value, err := r.client.Get(ctx, string(key)).Result()

	if err == redis.Nil {
		return "", nil, false
	} else if err != nil {
		return "", fmt.Errorf("failed to retrieve key %s - %w", key, err), false
	}

	return value, nil, true
}

func (r *Redis) Set(ctx context.Context, key Key, value string, ttl time.Duration) error {

	_, err := r.client.Set(ctx, string(key), value, ttl).Result()

	if err != nil {
		return fmt.Errorf("failed to set key %s - %w", key, err)
	}

	return nil
}

func (r *Redis) Del(ctx context.Context, keys ...Key) error {

	strKeys := make([]string, 0, len(keys))

	for _, key := range keys {
		strKeys = append(strKeys, string(key))
	}

	_, err := r.client.Del(ctx, strKeys...).Result()

	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to delete keys - %w", err)
	}

	return nil
}

func NewRedisClient(ctx context.Context, c RedisConfigurator) (*redis.Client, error) {

	redisUrl, err := c.GetRedisUrl()

	if err != nil {
		return nil, err
	}

	opt, err := redis.ParseURL(redisUrl)

	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url - %w", err)
	}

	client := redis.NewClient(opt)

	ping := func() error {
		return client.Ping(ctx).Err()
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(ping, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to reach redis - %w", err)
	}

	return client, nil
}

func NewRedisCache(client *redis.Client) *Redis {
	return &Redis{client: client}
}
