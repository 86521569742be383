package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dochub/internal/platform/metrics"
	dErrors "dochub/pkg/domain-errors"
	"dochub/pkg/platform/httputil"
	"dochub/pkg/requestcontext"
)

// Service defines the profile operations exposed over HTTP.
type Service interface {
	PreferredState(ctx context.Context, userID string) (string, error)
	SetPreferredState(ctx context.Context, userID, raw string) (string, error)
}

// Handler serves the caller's own profile preferences.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a profile Handler.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{service: service, logger: logger, metrics: metrics}
}

// Register mounts profile endpoints. The router must already require auth.
func (h *Handler) Register(r chi.Router) {
	r.Get("/me/preferred-state", h.HandleGetPreferredState)
	r.Put("/me/preferred-state", h.HandlePutPreferredState)
}

// PreferredStateRequest is the body of PUT /me/preferred-state.
type PreferredStateRequest struct {
	PreferredState string `json:"preferred_state"`
}

// Validate implements httputil.Validatable. Format checks happen in the
// service so every caller gets the same rules.
func (r *PreferredStateRequest) Validate() error {
	if len(r.PreferredState) > 16 {
		return dErrors.New(dErrors.CodeValidation, "preferred_state is too long")
	}
	return nil
}

// PreferredStateResponse is returned by both endpoints.
type PreferredStateResponse struct {
	PreferredState string `json:"preferred_state"`
}

// HandleGetPreferredState handles GET /me/preferred-state.
func (h *Handler) HandleGetPreferredState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID := requestcontext.UserID(ctx)

	state, err := h.service.PreferredState(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load preferred state",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PreferredStateResponse{PreferredState: state})
}

// HandlePutPreferredState handles PUT /me/preferred-state.
func (h *Handler) HandlePutPreferredState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID := requestcontext.UserID(ctx)

	req, ok := httputil.DecodeAndPrepare[PreferredStateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	state, err := h.service.SetPreferredState(ctx, userID, req.PreferredState)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			h.logger.WarnContext(ctx, "invalid preferred state",
				"request_id", requestID,
				"error", err,
			)
		} else {
			h.logger.ErrorContext(ctx, "failed to update preferred state",
				"request_id", requestID,
				"user_id", userID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.IncrementPreferredStateUpdates()
	}
	httputil.WriteJSON(w, http.StatusOK, PreferredStateResponse{PreferredState: state})
}
