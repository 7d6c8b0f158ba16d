package store

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

var _ Store = (*RedisStore)(nil)

// RedisStore keeps values in Redis, one string value per effective key.
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Get(ctx context.Context, userID, key string) ([]byte, error) {
	value, err := s.redisClient.Get(ctx, UserKey(userID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, userID, key string, value []byte) error {
	return s.redisClient.Set(ctx, UserKey(userID, key), value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, userID, key string) error {
	return s.redisClient.Del(ctx, UserKey(userID, key)).Err()
}

func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	userKeys := make([]string, 0, len(Keys))
	for _, key := range Keys {
		userKeys = append(userKeys, UserKey(userID, key))
	}
	return s.redisClient.Del(ctx, userKeys...).Err()
}
