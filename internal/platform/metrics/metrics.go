package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Header resolution outcomes.
const (
	OutcomeRoute  = "route"
	OutcomeWizard = "wizard"
	OutcomeNone   = "none"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	HeaderResolutions     *prometheus.CounterVec
	HeaderBadges          prometheus.Counter
	TopicRejections       *prometheus.CounterVec
	ReadinessChecks       *prometheus.CounterVec
	PreferredStateUpdates prometheus.Counter
	RequestLatency        *prometheus.HistogramVec
}

// New creates all metrics and registers them on reg. Tests pass a fresh
// prometheus.NewRegistry so repeated construction does not collide.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HeaderResolutions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dochub_header_resolutions_total",
			Help: "Header resolutions by outcome (route, wizard, none)",
		}, []string{"outcome"}),
		HeaderBadges: f.NewCounter(prometheus.CounterOpts{
			Name: "dochub_header_state_badges_total",
			Help: "Headers rendered with a preferred-state badge",
		}),
		TopicRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dochub_decoder_topic_rejections_total",
			Help: "Topic identifiers rejected by decoder validation",
		}, []string{"category"}),
		ReadinessChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dochub_decoder_readiness_checks_total",
			Help: "Decoder readiness evaluations by result",
		}, []string{"category", "ready"}),
		PreferredStateUpdates: f.NewCounter(prometheus.CounterOpts{
			Name: "dochub_profile_preferred_state_updates_total",
			Help: "Preferred state updates accepted",
		}),
		RequestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dochub_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

// IncrementHeaderResolution counts one resolution with the given outcome.
func (m *Metrics) IncrementHeaderResolution(outcome string) {
	m.HeaderResolutions.WithLabelValues(outcome).Inc()
}

// IncrementHeaderBadge counts a header rendered with a state badge.
func (m *Metrics) IncrementHeaderBadge() {
	m.HeaderBadges.Inc()
}

// AddTopicRejections counts n rejected topic identifiers for category.
func (m *Metrics) AddTopicRejections(category string, n int) {
	if n <= 0 {
		return
	}
	m.TopicRejections.WithLabelValues(category).Add(float64(n))
}

// IncrementReadinessCheck counts one readiness evaluation.
func (m *Metrics) IncrementReadinessCheck(category string, ready bool) {
	m.ReadinessChecks.WithLabelValues(category, strconv.FormatBool(ready)).Inc()
}

// IncrementPreferredStateUpdates counts an accepted preferred state change.
func (m *Metrics) IncrementPreferredStateUpdates() {
	m.PreferredStateUpdates.Inc()
}

// ObserveRequestLatency implements request.LatencyObserver.
func (m *Metrics) ObserveRequestLatency(route, method string, status int, d time.Duration) {
	m.RequestLatency.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}
