package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"dochub/pkg/platform/sentinel"
)

const (
	keyPrefix           = "profile:"
	fieldPreferredState = "preferred_state"
)

// RedisStore keeps preferences in a hash per user: profile:<userID>.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore creates a store backed by client.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func profileKey(userID string) string {
	return keyPrefix + userID
}

func (s *RedisStore) PreferredState(ctx context.Context, userID string) (string, error) {
	state, err := s.client.HGet(ctx, profileKey(userID), fieldPreferredState).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read preferred state: %w: %w", sentinel.ErrUnavailable, err)
	}
	return state, nil
}

// SetPreferredState stores state; an empty state removes the field.
func (s *RedisStore) SetPreferredState(ctx context.Context, userID, state string) error {
	var err error
	if state == "" {
		err = s.client.HDel(ctx, profileKey(userID), fieldPreferredState).Err()
	} else {
		err = s.client.HSet(ctx, profileKey(userID), fieldPreferredState, state).Err()
	}
	if err != nil {
		return fmt.Errorf("write preferred state: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}
