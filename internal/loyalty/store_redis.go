package loyalty

import (
	"context"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	p := strings.TrimSpace(prefix)
	if p == "" {
		p = "barberapp:loyalty:"
	}
	return &RedisStore{client: client, prefix: p}
}

func (s *RedisStore) key(userID uuid.UUID) string {
	return s.prefix + userID.String()
}

func (s *RedisStore) GetBaseline(ctx context.Context, userID uuid.UUID) (int64, error) {
	v, err := s.client.Get(ctx, s.key(userID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return v, nil
}

func (s *RedisStore) SetBaseline(ctx context.Context, userID uuid.UUID, value int64) error {
	return s.client.Set(ctx, s.key(userID), value, 0).Err()
}
