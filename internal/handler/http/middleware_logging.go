package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-fraud-guard/internal/logger"
)

// withLogging writes one access-log line per request. Request bodies are
// never logged: they carry passwords, API keys and user messages.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("uri", r.URL.Path).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
