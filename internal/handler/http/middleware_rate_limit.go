package http

import "net/http"

// withExtractRateLimit rejects requests with 429 once the extraction token
// bucket is empty.
func (h *Handler) withExtractRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.extractLimiter.Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, r, ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
