package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"dochub/internal/platform/metrics"
	"dochub/internal/profile/service"
	"dochub/internal/profile/store"
	apptest "dochub/pkg/testutil"
)

// HandlerSuite uses the real service over the in-memory store.
type HandlerSuite struct {
	suite.Suite
	router  http.Handler
	store   *store.InMemoryStore
	metrics *metrics.Metrics
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.store = store.NewInMemoryStore()
	svc, err := service.New(s.store, service.WithLogger(logger))
	s.Require().NoError(err)
	s.metrics = metrics.New(prometheus.NewRegistry())

	r := chi.NewRouter()
	New(svc, logger, s.metrics).Register(r)
	s.router = r
}

func (s *HandlerSuite) do(method, body, userID string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, "/me/preferred-state", reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req = apptest.WithAuth(req, userID, "session-"+userID)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestPutThenGet() {
	rec := s.do(http.MethodPut, `{"preferred_state":"ca"}`, "u1")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"preferred_state":"CA"}`, rec.Body.String())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PreferredStateUpdates))

	rec = s.do(http.MethodGet, "", "u1")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"preferred_state":"CA"}`, rec.Body.String())
}

func (s *HandlerSuite) TestGetUnsetIsEmpty() {
	rec := s.do(http.MethodGet, "", "u2")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"preferred_state":""}`, rec.Body.String())
}

func (s *HandlerSuite) TestPutInvalidState() {
	rec := s.do(http.MethodPut, `{"preferred_state":"California"}`, "u1")
	apptest.AssertStatusAndError(s.T(), rec, http.StatusBadRequest, "validation_error")
}

func (s *HandlerSuite) TestPutMalformedBody() {
	rec := s.do(http.MethodPut, `{`, "u1")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestMissingUserIsUnauthorized() {
	rec := s.do(http.MethodGet, "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}
