package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/metacore/ads-performance-api/pkg/metrics"
)

// MetricsMiddleware registra contagem e duração das requisições no Prometheus.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			m.RecordHTTPRequest(
				r.Method,
				r.URL.Path,
				strconv.Itoa(lrw.statusCode),
				time.Since(startTime),
			)
		})
	}
}
