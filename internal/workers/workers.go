// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/service"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg: the annotated output
// importer when an import dir is set, the transient file sweeper when a
// sweep interval is set.
func NewWorkers(services *service.Services, storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ImportDir != "" {
		w.workers = append(w.workers, NewImporter(services.UploadRecordService, cfg.ImportDir, cfg.ImportInterval, logger))
	}
	if cfg.SweepInterval > 0 {
		w.workers = append(w.workers, NewSweeper(storages.TransientFileStorage, cfg.SweepInterval, cfg.SweepMaxAge, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker on its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}
