package api

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kirychukyurii/deck-status/internal/healthcheck"
	"github.com/kirychukyurii/deck-status/internal/service"
	"github.com/kirychukyurii/deck-status/internal/session"
	"github.com/kirychukyurii/deck-status/ui"
)

// HealthReporter exposes upstream health for the status endpoint
type HealthReporter interface {
	State() healthcheck.State
}

// Handler holds the HTTP handlers and dependencies
type Handler struct {
	updater   service.DeckStatusUpdater
	sessions  *session.Store
	health    HealthReporter
	deckAPI   string
	templates *template.Template
	logger    *slog.Logger
	basePath  string
}

// NewHandler creates a new HTTP handler
func NewHandler(
	updater service.DeckStatusUpdater,
	sessions *session.Store,
	health HealthReporter,
	deckAPI string,
	basePath string,
	logger *slog.Logger,
) (*Handler, error) {
	templates, err := ui.Templates()
	if err != nil {
		return nil, err
	}

	return &Handler{
		updater:   updater,
		sessions:  sessions,
		health:    health,
		deckAPI:   deckAPI,
		templates: templates,
		logger:    logger,
		basePath:  basePath,
	}, nil
}

// Router creates and configures the HTTP router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.loggingMiddleware)
	r.Use(middleware.Recoverer)

	routesHandler := h.createRoutes()

	// If base path is configured, mount routes on that path
	if h.basePath != "" {
		r.Mount(h.basePath, routesHandler)
	} else {
		r.Mount("/", routesHandler)
	}

	return r
}

// createRoutes creates the API and UI routes
func (h *Handler) createRoutes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/deck", h.GetDeck)
		r.Post("/deck/refresh", h.RefreshDeck)
		r.Get("/status", h.GetStatus)
	})

	r.Get("/", h.ServePage)
	r.Post("/refresh", h.ServePage)
	r.Handle("/static/*", h.ServeStatic())

	return r
}

// loggingMiddleware logs HTTP requests
func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		next.ServeHTTP(w, r)
	})
}

// errorResponse represents an error response
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response
func (h *Handler) respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response",
			slog.String("error", err.Error()),
		)
	}
}

// respondError writes an error response
func (h *Handler) respondError(w http.ResponseWriter, statusCode int, message string) {
	h.respondJSON(w, statusCode, errorResponse{Error: message})
}
