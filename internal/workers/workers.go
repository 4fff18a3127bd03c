package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the workers enabled by cfg. A zero interval disables
// the corresponding worker.
func NewWorkers(services *service.Services, m *metrics.Metrics, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.CacheReportInterval > 0 {
		ws.workers = append(ws.workers, NewCacheStatsWorker(services.CacheService, m, cfg.CacheReportInterval, logger))
	}

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run starts every worker in its own goroutine and blocks until all of them
// returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
