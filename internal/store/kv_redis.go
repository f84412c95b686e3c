package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisKV is a [KeyValue] stored in Redis under the plain key names.
type redisKV struct {
	client *redis.Client
}

// NewRedisKV connects to the Redis server described by url
// (redis://[user:pass@]host:port/db) and pings it.
func NewRedisKV(ctx context.Context, url string, log *logger.Logger) (KeyValue, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Err(err).Str("func", "NewRedisKV").Msg("invalid redis url")
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisKV").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Info().Str("func", "NewRedisKV").Msg("connected to redis successfully")

	return &redisKV{client: client}, nil
}

func (r *redisKV) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (r *redisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *redisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *redisKV) Close() error {
	return r.client.Close()
}
