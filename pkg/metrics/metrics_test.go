package metrics_test

import (
	"context"
	"testing"

	"cookbook/pkg/metrics"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestDurationHistogram(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	hist, err := metrics.DurationHistogram(provider.Meter("test"), "job.duration", "Duration of jobs.")
	require.NoError(t, err)
	hist.Record(context.Background(), 0.2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	require.Equal(t, "s", m.Unit)

	data, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, data.DataPoints, 1)
	require.Equal(t, metrics.LatencyBuckets, data.DataPoints[0].Bounds)
	require.EqualValues(t, 1, data.DataPoints[0].Count)
}
