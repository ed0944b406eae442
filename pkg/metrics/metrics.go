package metrics

import "go.opentelemetry.io/otel/metric"

// LatencyBuckets are histogram boundaries in seconds for request and job latencies.
var LatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// DurationHistogram creates a histogram measured in seconds using LatencyBuckets.
func DurationHistogram(meter metric.Meter, name, description string) (metric.Float64Histogram, error) {
	return meter.Float64Histogram(name, //nolint: wrapcheck
		metric.WithUnit("s"),
		metric.WithDescription(description),
		metric.WithExplicitBucketBoundaries(LatencyBuckets...),
	)
}
