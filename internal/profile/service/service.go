package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	dErrors "dochub/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=../mocks/mocks.go -package=mocks Store

// Store is the persistence port for user preferences.
type Store interface {
	PreferredState(ctx context.Context, userID string) (string, error)
	SetPreferredState(ctx context.Context, userID, state string) error
}

var stateCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// Service reads and updates the profile fields the application shell needs.
type Service struct {
	store  Store
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs a Service. The store is required.
func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("profile store is required")
	}
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// PreferredState returns the user's preferred state, "" when unset.
func (s *Service) PreferredState(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	state, err := s.store.PreferredState(ctx, userID)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to load profile")
	}
	return state, nil
}

// NormalizeStateCode upper-cases and trims a state code and checks it is two
// letters. An empty input is allowed and means "no preference".
func NormalizeStateCode(raw string) (string, error) {
	state := strings.ToUpper(strings.TrimSpace(raw))
	if state == "" {
		return "", nil
	}
	if !stateCodePattern.MatchString(state) {
		return "", dErrors.New(dErrors.CodeValidation, "preferred_state must be a two-letter state code")
	}
	return state, nil
}

// SetPreferredState validates and stores the user's preferred state.
// Returns the normalized value that was stored.
func (s *Service) SetPreferredState(ctx context.Context, userID, raw string) (string, error) {
	if userID == "" {
		return "", dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	state, err := NormalizeStateCode(raw)
	if err != nil {
		return "", err
	}
	if err := s.store.SetPreferredState(ctx, userID, state); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to update profile")
	}
	s.logger.InfoContext(ctx, "preferred state updated",
		"user_id", userID,
		"cleared", state == "",
	)
	return state, nil
}
