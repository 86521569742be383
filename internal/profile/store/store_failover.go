package store

import (
	"context"
	"log/slog"

	"dochub/pkg/platform/circuit"
)

// Backend is the storage contract shared by every profile store.
type Backend interface {
	PreferredState(ctx context.Context, userID string) (string, error)
	SetPreferredState(ctx context.Context, userID, state string) error
}

// FailoverStore serves from primary and mirrors every successful read and
// write into an in-memory copy. Once the breaker opens, primary errors are
// absorbed and the copy answers instead. Primary is still attempted on each
// call so the breaker can observe recovery.
type FailoverStore struct {
	primary  Backend
	fallback *InMemoryStore
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

// NewFailoverStore wraps primary. A nil breaker gets the package defaults.
func NewFailoverStore(primary Backend, breaker *circuit.Breaker, logger *slog.Logger) *FailoverStore {
	if breaker == nil {
		breaker = circuit.New("profile-store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FailoverStore{
		primary:  primary,
		fallback: NewInMemoryStore(),
		breaker:  breaker,
		logger:   logger,
	}
}

// Degraded reports whether reads and writes are currently served locally.
func (s *FailoverStore) Degraded() bool {
	return s.breaker.IsOpen()
}

func (s *FailoverStore) PreferredState(ctx context.Context, userID string) (string, error) {
	state, err := s.primary.PreferredState(ctx, userID)
	if err == nil {
		s.recordSuccess(ctx)
		_ = s.fallback.SetPreferredState(ctx, userID, state)
		return state, nil
	}
	if !s.recordFailure(ctx, err) {
		return "", err
	}
	return s.fallback.PreferredState(ctx, userID)
}

func (s *FailoverStore) SetPreferredState(ctx context.Context, userID, state string) error {
	err := s.primary.SetPreferredState(ctx, userID, state)
	if err == nil {
		s.recordSuccess(ctx)
		return s.fallback.SetPreferredState(ctx, userID, state)
	}
	if !s.recordFailure(ctx, err) {
		return err
	}
	return s.fallback.SetPreferredState(ctx, userID, state)
}

func (s *FailoverStore) recordSuccess(ctx context.Context) {
	if _, change := s.breaker.RecordSuccess(); change.Closed {
		s.logger.InfoContext(ctx, "profile store recovered, circuit closed",
			"breaker", s.breaker.Name(),
		)
	}
}

func (s *FailoverStore) recordFailure(ctx context.Context, err error) bool {
	useFallback, change := s.breaker.RecordFailure()
	if change.Opened {
		s.logger.WarnContext(ctx, "profile store unavailable, circuit opened",
			"breaker", s.breaker.Name(),
			"error", err,
		)
	}
	return useFallback
}
