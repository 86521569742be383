package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"dochub/internal/header"
	"dochub/internal/platform/metrics"
	dErrors "dochub/pkg/domain-errors"
	"dochub/pkg/platform/httputil"
	"dochub/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks ProfileReader

var tracer = otel.Tracer("dochub/internal/header")

// ProfileReader supplies the authenticated user's preferred state.
type ProfileReader interface {
	PreferredState(ctx context.Context, userID string) (string, error)
}

// Handler serves the page header for the application shell.
type Handler struct {
	resolver *header.Resolver
	profiles ProfileReader
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// New creates a header Handler.
func New(resolver *header.Resolver, profiles ProfileReader, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		resolver: resolver,
		profiles: profiles,
		logger:   logger,
		metrics:  metrics,
	}
}

// Register mounts header endpoints. The router must already require auth.
func (h *Handler) Register(r chi.Router) {
	r.Get("/header", h.HandleGetHeader)
	r.Get("/header/routes", h.HandleListRoutes)
}

// RouteEntry is one row of the route table listing.
type RouteEntry struct {
	Path string `json:"path"`
	header.RouteDescriptor
}

// RoutesResponse is the JSON body of GET /header/routes.
type RoutesResponse struct {
	Routes []RouteEntry `json:"routes"`
}

// HandleListRoutes handles GET /header/routes: the exact-match route table,
// sorted by path, for the admin pages.
func (h *Handler) HandleListRoutes(w http.ResponseWriter, r *http.Request) {
	paths := h.resolver.Routes()
	resp := RoutesResponse{Routes: make([]RouteEntry, 0, len(paths))}
	for _, p := range paths {
		desc, _ := h.resolver.Lookup(p)
		resp.Routes = append(resp.Routes, RouteEntry{Path: p, RouteDescriptor: desc})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// Response is the JSON body of GET /header.
type Response struct {
	Path string `json:"path"`
	header.View
}

// HandleGetHeader handles GET /header?path=<current path>.
//
// A failed profile lookup degrades to "no badge" instead of failing the
// request; the header itself never depends on the profile.
func (h *Handler) HandleGetHeader(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID := requestcontext.UserID(ctx)

	query := r.URL.Query()
	if !query.Has("path") {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "path query parameter is required"))
		return
	}
	path := query.Get("path")

	ctx, span := tracer.Start(ctx, "header.resolve")
	defer span.End()

	desc, match := h.resolver.Lookup(path)
	span.SetAttributes(
		attribute.String("header.path", path),
		attribute.String("header.match", match.String()),
	)

	var state string
	if desc.ShowState {
		var err error
		state, err = h.profiles.PreferredState(ctx, userID)
		if err != nil {
			h.logger.WarnContext(ctx, "preferred state unavailable, rendering header without badge",
				"request_id", requestID,
				"user_id", userID,
				"session_id", requestcontext.SessionID(ctx),
				"error", err,
			)
			state = ""
		}
	}

	view := header.Render(desc, state)
	if h.metrics != nil {
		h.metrics.IncrementHeaderResolution(match.String())
		if view.Badge != "" {
			h.metrics.IncrementHeaderBadge()
		}
	}

	h.logger.DebugContext(ctx, "header resolved",
		"request_id", requestID,
		"path", path,
		"match", match.String(),
		"badge", view.Badge != "",
	)

	if wantsHTML(r) {
		fragment, err := view.HTML()
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to render header fragment",
				"request_id", requestID,
				"error", err,
			)
			httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render header"))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(fragment))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, Response{Path: path, View: view})
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
