package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	decoderhandler "dochub/internal/decoder/handler"
	headerhandler "dochub/internal/header/handler"
	"dochub/internal/platform/metrics"
	profilehandler "dochub/internal/profile/handler"
	authmw "dochub/pkg/platform/middleware/auth"
	"dochub/pkg/platform/middleware/metadata"
	"dochub/pkg/platform/middleware/request"
)

// Deps carries everything the router mounts. Handlers stay thin and
// delegate to their packages; this file only decides paths and middleware.
type Deps struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	JWTValidator   authmw.JWTValidator
	RequestTimeout time.Duration
	Header         *headerhandler.Handler
	Decoder        *decoderhandler.Handler
	Profile        *profilehandler.Handler
}

// NewRouter wires all public endpoints.
//
//	GET  /healthz
//	GET  /metrics
//	GET  /api/v1/header?path=...            (auth)
//	GET  /api/v1/header/routes              (auth)
//	GET  /api/v1/me/preferred-state         (auth)
//	PUT  /api/v1/me/preferred-state         (auth)
//	GET  /api/v1/decoder/topics
//	GET  /api/v1/decoder/{category}/topics
//	POST /api/v1/decoder/{category}/topics/validate
//	POST /api/v1/decoder/{category}/readiness
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(request.Logger(d.Logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	timeout := d.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(request.Timeout(timeout))
		api.Use(request.ContentTypeJSON)
		if d.Metrics != nil {
			api.Use(request.Latency(d.Metrics))
		}

		api.Group(func(pub chi.Router) {
			d.Decoder.Register(pub)
		})

		api.Group(func(authed chi.Router) {
			authed.Use(authmw.RequireAuth(d.JWTValidator, d.Logger))
			d.Header.Register(authed)
			d.Profile.Register(authed)
		})
	})

	return r
}
