package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services and transport can translate them without knowing the
// backing technology.
//
//   - ErrNotFound: entity does not exist in the store
//   - ErrUnavailable: backing service (Redis) could not be reached
//
// For validation failures use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
