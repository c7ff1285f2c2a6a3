package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers returns the workers enabled by cfg. The migration worker
// processes the notes of userID.
func NewWorkers(services *service.Services, userID string, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.MigrationInterval > 0 {
		w.workers = append(w.workers, NewMigrationWorker(services.NoteContentService, userID, cfg, logger))
	}

	return w
}

// Run starts every worker and returns once all of them stopped. The first
// worker that fails cancels the others and its error is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
