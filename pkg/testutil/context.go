package testutil

import (
	"net/http"

	"dochub/pkg/requestcontext"
)

// WithUserID adds a user ID to the request context, as RequireAuth would for
// an authenticated request.
func WithUserID(req *http.Request, userID string) *http.Request {
	return req.WithContext(requestcontext.WithUserID(req.Context(), userID))
}

// WithAuth adds both user and session IDs to the request context.
func WithAuth(req *http.Request, userID, sessionID string) *http.Request {
	ctx := requestcontext.WithUserID(req.Context(), userID)
	ctx = requestcontext.WithSessionID(ctx, sessionID)
	return req.WithContext(ctx)
}
