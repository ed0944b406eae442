package controller

import (
	"net/http"
	"strconv"
	"time"

	"cookbook/pkg/metrics"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording the duration of every request in
// the http.server.request.duration histogram, labelled by method, route
// pattern and status code.
func WithMetrics(meter metric.Meter) (func(http.Handler) http.Handler, error) {
	duration, err := metrics.DurationHistogram(meter, "http.server.request.duration", "Duration of HTTP server requests.")
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			// the route is only known once the router has matched the request
			duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", routePattern(r)),
				attribute.String("http.response.status_code", strconv.Itoa(status)),
			))
		})
	}, nil
}
