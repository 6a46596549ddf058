package sim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the simulation's operational counters.
type Metrics struct {
	ChunksLoaded     prometheus.Gauge
	MeshQueueDepth   prometheus.Gauge
	MeshBuilds       prometheus.Counter
	MeshResultsStale prometheus.Counter
	MeshBuildSeconds prometheus.Histogram
	TickSeconds      prometheus.Histogram
}

// NewMetrics registers the simulation metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChunksLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxeld",
			Name:      "chunks_loaded",
			Help:      "Number of chunks currently resident in the store.",
		}),
		MeshQueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxeld",
			Name:      "mesh_queue_depth",
			Help:      "Mesh builds currently in flight.",
		}),
		MeshBuilds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "voxeld",
			Name:      "mesh_builds_total",
			Help:      "Completed chunk mesh builds.",
		}),
		MeshResultsStale: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "voxeld",
			Name:      "mesh_results_stale_total",
			Help:      "Mesh results discarded because the chunk was evicted.",
		}),
		MeshBuildSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxeld",
			Name:      "mesh_build_seconds",
			Help:      "Wall time of a single chunk mesh build.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		TickSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxeld",
			Name:      "tick_seconds",
			Help:      "Wall time of a simulation tick.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
}
