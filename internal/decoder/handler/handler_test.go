package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"dochub/internal/platform/metrics"
	"dochub/pkg/domain"
)

// HandlerSuite exercises the decoder endpoints against the real registry.
type HandlerSuite struct {
	suite.Suite
	router  http.Handler
	metrics *metrics.Metrics
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.metrics = metrics.New(prometheus.NewRegistry())
	r := chi.NewRouter()
	New(slog.New(slog.NewTextHandler(io.Discard, nil)), s.metrics).Register(r)
	s.router = r
}

func (s *HandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func (s *HandlerSuite) TestCatalog() {
	rec := s.do(http.MethodGet, "/decoder/topics", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := decode[CatalogResponse](s.T(), rec)
	s.Require().Len(resp.Categories, 2)
	s.Equal("credit", resp.Categories[0].Category)
	s.Equal("criminal_eviction", resp.Categories[1].Category)

	total := 0
	for _, c := range resp.Categories {
		total += len(c.Topics)
		for _, topic := range c.Topics {
			s.NotEmpty(topic.Label)
			s.Equal(c.Category, topic.Category)
		}
	}
	s.Equal(len(domain.AllTopics()), total)
}

func (s *HandlerSuite) TestCategoryTopicsPreserveOrder() {
	rec := s.do(http.MethodGet, "/decoder/credit/topics", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := decode[CategoryResponse](s.T(), rec)
	credit := domain.CreditTopics()
	s.Require().Len(resp.Topics, len(credit))
	for i, topic := range credit {
		s.Equal(string(topic), resp.Topics[i].ID)
	}
	s.Equal("source_of_income", resp.Topics[0].ID)
	s.True(resp.Topics[0].HighRisk)
	s.True(resp.Topics[0].Required)
	s.Len(resp.Required, len(domain.RequiredCreditTopics()))
}

func (s *HandlerSuite) TestUnknownCategory() {
	rec := s.do(http.MethodGet, "/decoder/housing/topics", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "invalid_input")
}

func (s *HandlerSuite) TestValidateTopics() {
	rec := s.do(http.MethodPost, "/decoder/credit/topics/validate",
		`{"topics":["source_of_income","security_deposit_limits","arrest_records","not_a_real_topic"]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := decode[ValidateTopicsResponse](s.T(), rec)
	s.Equal([]string{"source_of_income", "security_deposit_limits"}, resp.Valid)
	s.Equal([]string{"arrest_records", "not_a_real_topic"}, resp.Rejected)
	s.Equal(2.0, testutil.ToFloat64(s.metrics.TopicRejections.WithLabelValues("credit")))
}

func (s *HandlerSuite) TestValidateTopicsEmptyList() {
	rec := s.do(http.MethodPost, "/decoder/criminal_eviction/topics/validate", `{"topics":[]}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"category":"criminal_eviction","valid":[],"rejected":[]}`, rec.Body.String())
}

func (s *HandlerSuite) TestValidateTopicsTooMany() {
	topics := make([]string, maxTopicsPerRequest+1)
	for i := range topics {
		topics[i] = "source_of_income"
	}
	body, err := json.Marshal(ValidateTopicsRequest{Topics: topics})
	s.Require().NoError(err)

	rec := s.do(http.MethodPost, "/decoder/credit/topics/validate", string(body))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestValidateTopicsMalformed() {
	rec := s.do(http.MethodPost, "/decoder/credit/topics/validate", `{"topics":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestReadiness() {
	rec := s.do(http.MethodPost, "/decoder/criminal_eviction/readiness",
		`{"authored_topics":["criminal_history_lookback","individualized_assessment","eviction_history_lookback","source_of_income"]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := decode[ReadinessResponse](s.T(), rec)
	s.True(resp.Ready)
	s.Empty(resp.Missing)
	s.Equal([]string{"source_of_income"}, resp.Rejected)

	ids := make([]string, 0, len(resp.MissingHighRisk))
	for _, topic := range resp.MissingHighRisk {
		ids = append(ids, topic.ID)
		s.True(topic.HighRisk)
		s.False(topic.Required)
	}
	s.Equal([]string{"arrest_records", "sealed_eviction_records"}, ids)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ReadinessChecks.WithLabelValues("criminal_eviction", "true")))
}

func (s *HandlerSuite) TestReadinessNotReady() {
	rec := s.do(http.MethodPost, "/decoder/credit/readiness", `{"authored_topics":[]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := decode[ReadinessResponse](s.T(), rec)
	s.False(resp.Ready)
	s.Len(resp.Missing, len(domain.RequiredCreditTopics()))
	s.Equal([]string{}, resp.Rejected)
}

func (s *HandlerSuite) TestPaddedTopicsAreRejectedAsSent() {
	rec := s.do(http.MethodPost, "/decoder/credit/topics/validate",
		`{"topics":[" source_of_income\t","income_requirements "]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	validated := decode[ValidateTopicsResponse](s.T(), rec)
	s.Empty(validated.Valid)
	s.Equal([]string{" source_of_income\t", "income_requirements "}, validated.Rejected)
	s.False(domain.IsTopicForDecoder(" source_of_income\t", domain.DecoderCredit))

	rec = s.do(http.MethodPost, "/decoder/credit/readiness",
		`{"authored_topics":["source_of_income ","income_requirements ","security_deposit_limits "]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	readiness := decode[ReadinessResponse](s.T(), rec)
	s.False(readiness.Ready)
	s.Len(readiness.Missing, len(domain.RequiredCreditTopics()))
	s.Equal([]string{"source_of_income ", "income_requirements ", "security_deposit_limits "}, readiness.Rejected)
}
