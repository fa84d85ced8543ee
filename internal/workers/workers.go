package workers

import (
	"context"

	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/security"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the workers enabled by cfg. A zero interval disables the
// corresponding worker.
func NewWorkers(denylist *security.Denylist, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.DenylistCleanupInterval > 0 {
		w.workers = append(w.workers, NewDenylistCleanupWorker(denylist, cfg.DenylistCleanupInterval, logger))
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
