package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// flood-zone engine.
type Metrics struct {
	GeometryRequests *prometheus.CounterVec // labels: outcome={served,invalid}
	CacheLookups     *prometheus.CounterVec // labels: result={hit,miss}
	DepthQueries     prometheus.Counter

	GenerationDuration prometheus.Histogram
	GenerationFailures prometheus.Counter
	FeaturesGenerated  prometheus.Histogram

	EventsPublished *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all engine metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		GeometryRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jal_setu",
			Name:      "geometry_requests_total",
			Help:      "Flood geometry requests by validation outcome.",
		}, []string{"outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jal_setu",
			Name:      "geometry_cache_total",
			Help:      "Geometry cache lookups by result.",
		}, []string{"result"}),
		DepthQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jal_setu",
			Name:      "depth_queries_total",
			Help:      "Total point depth queries answered.",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jal_setu",
			Name:      "generation_duration_seconds",
			Help:      "Duration of one flood-zone generation pass.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.2, 0.5},
		}),
		GenerationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jal_setu",
			Name:      "generation_failures_total",
			Help:      "Generations that degraded to an empty-feature response.",
		}),
		FeaturesGenerated: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jal_setu",
			Name:      "features_generated",
			Help:      "Number of polygon features per generated response.",
			Buckets:   []float64{0, 5, 10, 20, 40, 60, 80, 120},
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jal_setu",
			Name:      "events_published_total",
			Help:      "Generation audit events by publish outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.GeometryRequests,
		m.CacheLookups,
		m.DepthQueries,
		m.GenerationDuration,
		m.GenerationFailures,
		m.FeaturesGenerated,
		m.EventsPublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		GeometryRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "jal_setu", Name: "geometry_requests_total"}, []string{"outcome"}),
		CacheLookups:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "jal_setu", Name: "geometry_cache_total"}, []string{"result"}),
		DepthQueries:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "jal_setu", Name: "depth_queries_total"}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "jal_setu", Name: "generation_duration_seconds"}),
		GenerationFailures: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "jal_setu", Name: "generation_failures_total"}),
		FeaturesGenerated:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "jal_setu", Name: "features_generated"}),
		EventsPublished:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "jal_setu", Name: "events_published_total"}, []string{"outcome"}),
	}
}
