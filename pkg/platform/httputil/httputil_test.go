package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "dochub/pkg/domain-errors"
	"dochub/pkg/platform/sentinel"
)

type echoRequest struct {
	Name string `json:"name"`
}

func (r *echoRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"domain error", dErrors.New(dErrors.CodeInvalidInput, "invalid topic"), http.StatusBadRequest, "invalid_input"},
		{"wrapped sentinel not found", fmt.Errorf("load: %w", sentinel.ErrNotFound), http.StatusNotFound, "not_found"},
		{"sentinel unavailable", sentinel.ErrUnavailable, http.StatusServiceUnavailable, "service_unavailable"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tc.code, decodeError(t, rec).Error)
		})
	}
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("valid body is trimmed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"  credit "}`))
		rec := httptest.NewRecorder()

		got, ok := DecodeAndPrepare[echoRequest](rec, req, logger, context.Background(), "req-1")
		require.True(t, ok)
		assert.Equal(t, "credit", got.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{`))
		rec := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[echoRequest](rec, req, logger, context.Background(), "req-2")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decodeError(t, rec).Error)
	})

	t.Run("validation failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":" "}`))
		rec := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[echoRequest](rec, req, logger, context.Background(), "req-3")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", decodeError(t, rec).Error)
	})
}
