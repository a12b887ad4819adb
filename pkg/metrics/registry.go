// Package metrics exports run and cache statistics in Prometheus format.
//
// A [Registry] owns a private prometheus.Registry, so several registries can
// coexist in tests. It implements [observability.RunHooks] and
// [observability.CacheHooks]; register it at startup and serve [Registry.Handler]
// to expose the numbers:
//
//	reg := metrics.NewRegistry()
//	observability.SetRunHooks(reg)
//	observability.SetCacheHooks(reg)
//	http.Handle("/metrics", reg.Handler())
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all kruskalviz metrics.
type Registry struct {
	// Run metrics
	RunsTotal          *prometheus.CounterVec
	MSTDuration        prometheus.Histogram
	MSTEdges           prometheus.Histogram
	MSTErrorsTotal     prometheus.Counter
	CommandsTotal      *prometheus.CounterVec
	PlaybacksCompleted prometheus.Counter
	LastRunVertices    prometheus.Gauge
	LastRunWeight      prometheus.Gauge

	// Cache metrics
	CacheRequestsTotal *prometheus.CounterVec
	CacheBytesWritten  *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initRunMetrics()
	r.initCacheMetrics()
	return r
}

// Handler serves the registry in the Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
