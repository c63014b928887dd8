package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	Client *redis.Client
}

func NewRedis(opt *redis.Options) *RedisStore {
	return &RedisStore{Client: redis.NewClient(opt)}
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	v, err := s.Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores value with no expiry.
func (s *RedisStore) Set(key, value string) error {
	return s.Client.Set(context.Background(), key, value, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.Client.Close()
}
