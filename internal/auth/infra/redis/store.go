package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/adoption-portal/internal/auth"
)

const DefaultKeyPrefix = "adoption-portal:credential:"

type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store keeps tokens as plain Redis strings without TTL.
type Store struct {
	client Client
	prefix string
}

func NewStore(client Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &Store{
		client: client,
		prefix: prefix,
	}
}

func (s *Store) Get(ctx context.Context, key auth.Key) (auth.Token, bool, error) {
	token, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}

	return auth.Token(token), true, nil
}

func (s *Store) Set(ctx context.Context, key auth.Key, token auth.Token) error {
	err := s.client.Set(ctx, s.redisKey(key), string(token), 0).Err()
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

func (s *Store) Remove(ctx context.Context, key auth.Key) error {
	err := s.client.Del(ctx, s.redisKey(key)).Err()
	if err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}

	return nil
}

func (s *Store) redisKey(key auth.Key) string {
	return s.prefix + string(key)
}
