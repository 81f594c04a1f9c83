// README: Selection store backed by Redis string keys "<prefix>:<session>".
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	redis  *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore stores under prefix (DefaultPersistKey when empty). A zero
// ttl keeps selections forever.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultPersistKey
	}
	return &RedisStore{redis: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + ":" + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	raw, err := s.redis.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSelection
	}
	if err != nil {
		return nil, fmt.Errorf("booking: load selection: %w", err)
	}
	return raw, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, raw []byte) error {
	if err := s.redis.Set(ctx, s.key(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("booking: save selection: %w", err)
	}
	return nil
}
