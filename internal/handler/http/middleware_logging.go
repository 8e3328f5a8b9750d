package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log line per request. The matched route
// pattern is logged instead of the raw path so that account references in
// the URL never reach the logs.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		event := log.Info()
		if route == "/healthz" {
			event = log.Debug()
		}
		event.
			Str("route", route).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
