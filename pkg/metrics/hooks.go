package metrics

import (
	"context"
	"time"

	"github.com/derian-c/MATH478-FinalProject/pkg/observability"
)

var (
	_ observability.RunHooks   = (*Registry)(nil)
	_ observability.CacheHooks = (*Registry)(nil)
)

func (r *Registry) OnGenerate(_ context.Context, _, source string, vertices int) {
	r.RunsTotal.WithLabelValues(source).Inc()
	r.LastRunVertices.Set(float64(vertices))
}

func (r *Registry) OnMSTComplete(_ context.Context, _ string, edges int, weight float64, duration time.Duration, err error) {
	r.MSTDuration.Observe(duration.Seconds())
	if err != nil {
		r.MSTErrorsTotal.Inc()
		return
	}
	r.MSTEdges.Observe(float64(edges))
	r.LastRunWeight.Set(weight)
}

func (r *Registry) OnCommand(_ context.Context, _, command string) {
	r.CommandsTotal.WithLabelValues(command).Inc()
}

func (r *Registry) OnPlaybackComplete(context.Context, string, int) {
	r.PlaybacksCompleted.Inc()
}

func (r *Registry) OnCacheHit(_ context.Context, keyType string) {
	r.CacheRequestsTotal.WithLabelValues(keyType, "hit").Inc()
}

func (r *Registry) OnCacheMiss(_ context.Context, keyType string) {
	r.CacheRequestsTotal.WithLabelValues(keyType, "miss").Inc()
}

func (r *Registry) OnCacheSet(_ context.Context, keyType string, size int) {
	r.CacheBytesWritten.WithLabelValues(keyType).Add(float64(size))
}
