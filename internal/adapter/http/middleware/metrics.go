package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/deepakkode/scrap-marketplace/internal/platform/metrics"
)

// Metrics records request latency and 5xx counts per method and route
// pattern. A nil manager disables recording.
func Metrics(m *metrics.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			m.APILatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
			if ww.Status() >= http.StatusInternalServerError {
				m.APIErrorsTotal.WithLabelValues(r.Method, route).Inc()
			}
		})
	}
}
