package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"dochub/pkg/requestcontext"
	"dochub/pkg/testutil"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return s.claims, s.err
}

func newAuthed(v JWTValidator, seen *string) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return RequireAuth(v, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = requestcontext.UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestRequireAuth(t *testing.T) {
	testutil.Given(t, "a valid bearer token", func(t *testing.T) {
		var seen string
		h := newAuthed(stubValidator{claims: &JWTClaims{UserID: "u1", SessionID: "s1"}}, &seen)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc")

		rr := testutil.DoRequest(h, req)
		testutil.Then(t, "the user id reaches the handler", func(t *testing.T) {
			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Equal(t, "u1", seen)
		})
	})

	testutil.Given(t, "no authorization header", func(t *testing.T) {
		var seen string
		h := newAuthed(stubValidator{}, &seen)

		rr := testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/", nil))
		testutil.Then(t, "the request is rejected", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
			assert.Empty(t, seen)
		})
	})

	testutil.Given(t, "a non-bearer scheme", func(t *testing.T) {
		var seen string
		h := newAuthed(stubValidator{claims: &JWTClaims{UserID: "u1"}}, &seen)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		rr := testutil.DoRequest(h, req)
		testutil.Then(t, "the request is rejected", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
		})
	})

	testutil.Given(t, "a token the validator rejects", func(t *testing.T) {
		var seen string
		h := newAuthed(stubValidator{err: errors.New("expired")}, &seen)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc")

		rr := testutil.DoRequest(h, req)
		testutil.Then(t, "the request is rejected", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
			assert.Empty(t, seen)
		})
	})

	testutil.Given(t, "a token without a subject", func(t *testing.T) {
		var seen string
		h := newAuthed(stubValidator{claims: &JWTClaims{}}, &seen)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc")

		rr := testutil.DoRequest(h, req)
		testutil.Then(t, "the request is rejected", func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	})
}
