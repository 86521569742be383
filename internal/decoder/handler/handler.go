package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"dochub/internal/platform/metrics"
	"dochub/pkg/domain"
	"dochub/pkg/platform/httputil"
	"dochub/pkg/requestcontext"
)

var tracer = otel.Tracer("dochub/internal/decoder")

// Handler exposes the decoder topic registry to the admin UI and to the
// services that persist jurisdiction notes.
type Handler struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a decoder Handler.
func New(logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, metrics: metrics}
}

// Register mounts decoder endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Get("/decoder/topics", h.HandleCatalog)
	r.Route("/decoder/{category}", func(r chi.Router) {
		r.Get("/topics", h.HandleCategoryTopics)
		r.Post("/topics/validate", h.HandleValidateTopics)
		r.Post("/readiness", h.HandleReadiness)
	})
}

// HandleCatalog handles GET /decoder/topics.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	resp := CatalogResponse{}
	for _, c := range domain.DecoderCategories() {
		resp.Categories = append(resp.Categories, categoryResponse(c))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleCategoryTopics handles GET /decoder/{category}/topics.
func (h *Handler) HandleCategoryTopics(w http.ResponseWriter, r *http.Request) {
	category, ok := h.parseCategory(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, categoryResponse(category))
}

// HandleValidateTopics handles POST /decoder/{category}/topics/validate.
// Rejections are reported in the body, not as an error status: the caller
// decides whether to refuse its write.
func (h *Handler) HandleValidateTopics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	category, ok := h.parseCategory(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ValidateTopicsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	resp := ValidateTopicsResponse{Category: category.String(), Valid: []string{}, Rejected: []string{}}
	for _, t := range req.Topics {
		if domain.IsTopicForDecoder(t, category) {
			resp.Valid = append(resp.Valid, t)
		} else {
			resp.Rejected = append(resp.Rejected, t)
		}
	}

	if len(resp.Rejected) > 0 {
		h.logger.InfoContext(ctx, "decoder topics rejected",
			"request_id", requestID,
			"category", category,
			"rejected", resp.Rejected,
		)
		if h.metrics != nil {
			h.metrics.AddTopicRejections(category.String(), len(resp.Rejected))
		}
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleReadiness handles POST /decoder/{category}/readiness.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	category, ok := h.parseCategory(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReadinessRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	_, span := tracer.Start(ctx, "decoder.readiness")
	readiness := domain.EvaluateReadiness(category, req.AuthoredTopics)
	span.SetAttributes(
		attribute.String("decoder.category", category.String()),
		attribute.Bool("decoder.ready", readiness.Ready),
		attribute.Int("decoder.missing", len(readiness.Missing)),
	)
	span.End()

	if h.metrics != nil {
		h.metrics.IncrementReadinessCheck(category.String(), readiness.Ready)
		h.metrics.AddTopicRejections(category.String(), len(readiness.Rejected))
	}
	httputil.WriteJSON(w, http.StatusOK, fromReadiness(readiness))
}

func (h *Handler) parseCategory(w http.ResponseWriter, r *http.Request) (domain.DecoderCategory, bool) {
	category, err := domain.ParseDecoderCategory(chi.URLParam(r, "category"))
	if err != nil {
		ctx := r.Context()
		h.logger.WarnContext(ctx, "invalid decoder category",
			"request_id", requestcontext.RequestID(ctx),
			"category", chi.URLParam(r, "category"),
		)
		httputil.WriteError(w, err)
		return "", false
	}
	return category, true
}
