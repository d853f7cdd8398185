package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountsByOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSearch("ok")
	m.ObserveSearch("ok")
	m.ObserveSearch("invalid_address")
	m.ObserveGeocode("no_result")
	m.ObserveRateLimited()

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("ok")), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("invalid_address")), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.geocodes.WithLabelValues("no_result")), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.rateLimited), 0.001)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveSearch("ok")
		m.ObserveGeocode("ok")
		m.ObserveRateLimited()
	})
}

func TestMetrics_RegistersCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)
	m.ObserveSearch("ok")

	count, err := testutil.GatherAndCount(registry, "pouringat_searches_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
