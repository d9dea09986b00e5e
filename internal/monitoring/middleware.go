package monitoring

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Middleware records request counts, durations and active connections.
// The path label uses the chi route pattern (e.g. /api/posts/{id}) so
// per-resource ids don't blow up label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			// Skip collecting metrics from metrics endpoint itself
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ActiveConnections.Inc()
		// Deferred so a panicking handler (recovered further up the chain)
		// cannot leave the gauge inflated.
		defer ActiveConnections.Dec()

		next.ServeHTTP(w, r)

		// The route pattern is only resolved after chi has matched, so
		// labels are read post-processing.
		path := routePattern(r)
		HttpRequestsTotal.WithLabelValues(r.Method, path).Inc()
		HttpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
