package attempts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/config"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

// RedisStore persists attempts as JSON values under a key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects and pings the server before returning.
func NewRedisStore(ctx context.Context, cfg config.Attempts) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "attempt:"
	}
	return &RedisStore{client: client, prefix: prefix, ttl: cfg.TTL}, nil
}

func (s *RedisStore) Save(ctx context.Context, payload []byte) (domain.Attempt, error) {
	attempt := domain.Attempt{
		ID:        uuid.NewString(),
		Payload:   append([]byte(nil), payload...),
		CreatedAt: time.Now().UnixMilli(),
	}

	value, err := json.Marshal(attempt)
	if err != nil {
		return domain.Attempt{}, fmt.Errorf("marshal attempt: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+attempt.ID, value, s.ttl).Err(); err != nil {
		return domain.Attempt{}, fmt.Errorf("save attempt: %w", err)
	}
	return attempt, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (domain.Attempt, error) {
	value, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if err == redis.Nil {
		return domain.Attempt{}, ErrNotFound
	}
	if err != nil {
		return domain.Attempt{}, fmt.Errorf("load attempt: %w", err)
	}

	var attempt domain.Attempt
	if err := json.Unmarshal(value, &attempt); err != nil {
		return domain.Attempt{}, fmt.Errorf("decode attempt: %w", err)
	}
	return attempt, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
