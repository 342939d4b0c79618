// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
)

// Sweeper periodically removes transient upload files older than maxAge.
// Those are only left behind when the process died mid-upload.
type Sweeper struct {
	files    store.TransientFileStorage
	interval time.Duration
	maxAge   time.Duration

	now func() time.Time

	logger *logger.Logger
}

func NewSweeper(files store.TransientFileStorage, interval, maxAge time.Duration, logger *logger.Logger) *Sweeper {
	return &Sweeper{
		files:    files,
		interval: interval,
		maxAge:   maxAge,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Dur("max_age", s.maxAge).Msg("sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.files.Sweep(ctx, s.now().Add(-s.maxAge))
	if err != nil {
		s.logger.Err(err).Msg("sweeping transient files failed")
		return
	}
	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("stale transient files removed")
	}
}
