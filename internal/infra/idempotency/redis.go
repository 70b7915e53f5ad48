package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient cria o cliente a partir de uma URL redis://.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func (s *RedisStore) Claim(ctx context.Context, token string) (string, bool, error) {
	k := key(token)

	ok, err := s.client.SetNX(ctx, k, Pending, s.ttl).Result()
	if err != nil {
		return "", false, err
	}
	if ok {
		return "", true, nil
	}

	existing, err := s.client.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// expirou entre o SETNX e o GET; tenta de novo uma vez
		ok, err = s.client.SetNX(ctx, k, Pending, s.ttl).Result()
		if err != nil {
			return "", false, err
		}
		if ok {
			return "", true, nil
		}
		return Pending, false, nil
	}
	if err != nil {
		return "", false, err
	}

	return existing, false, nil
}

func (s *RedisStore) Complete(ctx context.Context, token, appointmentID string) error {
	return s.client.Set(ctx, key(token), appointmentID, s.ttl).Err()
}

func (s *RedisStore) Release(ctx context.Context, token string) error {
	return s.client.Del(ctx, key(token)).Err()
}

var _ Store = (*RedisStore)(nil)
