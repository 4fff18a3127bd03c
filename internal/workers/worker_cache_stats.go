package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// cacheSizer is the part of service.CacheService the worker needs.
type cacheSizer interface {
	Len() int
}

// CacheStatsWorker periodically publishes the number of response cache
// entries to the blog_response_cache_entries gauge and the log. The cache
// has no eviction, so this is how its growth is observed.
type CacheStatsWorker struct {
	cache    cacheSizer
	entries  prometheus.Gauge
	interval time.Duration

	logger *logger.Logger
}

func NewCacheStatsWorker(cache cacheSizer, m *metrics.Metrics, interval time.Duration, logger *logger.Logger) *CacheStatsWorker {
	return &CacheStatsWorker{
		cache:    cache,
		entries:  m.CacheEntries,
		interval: interval,
		logger:   logger,
	}
}

func (w *CacheStatsWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("cache stats worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.publish()
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("cache stats worker stopped")
			return
		case <-ticker.C:
			w.publish()
		}
	}
}

func (w *CacheStatsWorker) publish() {
	n := w.cache.Len()
	w.entries.Set(float64(n))
	w.logger.Debug().Int("entries", n).Msg("response cache size")
}
