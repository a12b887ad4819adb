package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kruskalviz_runs_total",
			Help: "Total number of vertex sets generated or loaded",
		},
		[]string{"source"},
	)

	r.MSTDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kruskalviz_mst_duration_seconds",
			Help:    "Time spent selecting MST edges",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.MSTEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kruskalviz_mst_edges",
			Help:    "Number of edges in each selected tree",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 2000},
		},
	)

	r.MSTErrorsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "kruskalviz_mst_errors_total",
			Help: "Total number of failed edge selections",
		},
	)

	r.CommandsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kruskalviz_commands_total",
			Help: "Total number of playback commands issued",
		},
		[]string{"command"},
	)

	r.PlaybacksCompleted = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "kruskalviz_playbacks_completed_total",
			Help: "Total number of animations that reached the last edge",
		},
	)

	r.LastRunVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "kruskalviz_last_run_vertices",
			Help: "Vertex count of the most recent run",
		},
	)

	r.LastRunWeight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "kruskalviz_last_run_weight",
			Help: "Total tree weight of the most recent run",
		},
	)
}

func (r *Registry) initCacheMetrics() {
	r.CacheRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kruskalviz_cache_requests_total",
			Help: "Export cache lookups by artifact type and result",
		},
		[]string{"key_type", "result"},
	)

	r.CacheBytesWritten = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kruskalviz_cache_bytes_written_total",
			Help: "Bytes written to the export cache",
		},
		[]string{"key_type"},
	)
}
