// Package metrics holds the Prometheus collectors for search traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pouringat"

// Metrics is safe to use as a nil pointer, in which case nothing is recorded.
type Metrics struct {
	searches    *prometheus.CounterVec
	geocodes    *prometheus.CounterVec
	rateLimited prometheus.Counter
}

func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Venue searches by outcome.",
		}, []string{"outcome"}),
		geocodes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding provider calls by outcome.",
		}, []string{"outcome"}),
		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
}

func (m *Metrics) ObserveSearch(outcome string) {
	if m == nil {
		return
	}

	m.searches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveGeocode(outcome string) {
	if m == nil {
		return
	}

	m.geocodes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}

	m.rateLimited.Inc()
}
