package keystore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps caller-supplied keys in redis so every process in a
// multi-instance deployment sees the same overrides.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		ttl:    DefaultTTL,
	}
}

func redisKey(scope string) string {
	return "apikeys:" + scope
}

func (s *RedisStore) Set(ctx context.Context, scope string, keys Keys) error {
	fields := make(map[string]any, len(keys))
	for provider, key := range keys {
		if key != "" {
			fields[provider] = key
		}
	}
	if len(fields) == 0 {
		return nil
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, redisKey(scope), fields)
	pipe.Expire(ctx, redisKey(scope), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context, scope, provider string) (string, error) {
	val, err := s.client.HGet(ctx, redisKey(scope), provider).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
