package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const platformParam = "platform"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrMethodNotAllowed)
	})

	// routes without authorization
	router.Get("/healthz", h.healthz)
	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/style-profile/{"+platformParam+"}", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(withGZip)

		r.With(h.withExtractRateLimit).Post("/extract", h.extractStyleProfile)
		r.Get("/", h.getStyleProfile)
		r.Get("/refresh", h.needsRefresh)
		r.Get("/metadata", h.getProfileMetadata)
		r.Post("/usage", h.recordUsage)
	})

	return router
}
