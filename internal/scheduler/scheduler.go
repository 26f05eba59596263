// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/academy-go/internal/cache"
	"github.com/olegiv/academy-go/internal/demo"
	"github.com/olegiv/academy-go/internal/store"
)

// sweepSpec runs the cache sweep every ten minutes.
const sweepSpec = "*/10 * * * *"

// Scheduler handles periodic tasks: the demo data reset and the cache
// sweep.
type Scheduler struct {
	mem           *store.Memory
	cache         *cache.Cache
	cron          *cron.Cron
	logger        *slog.Logger
	resetInterval time.Duration
}

// New creates a new scheduler instance. A zero resetInterval disables the
// demo reset job.
func New(mem *store.Memory, c *cache.Cache, logger *slog.Logger, resetInterval time.Duration) *Scheduler {
	return &Scheduler{
		mem:           mem,
		cache:         c,
		cron:          cron.New(),
		logger:        logger,
		resetInterval: resetInterval,
	}
}

// Start registers the jobs and begins the scheduler.
func (s *Scheduler) Start() error {
	if s.resetInterval > 0 {
		spec := fmt.Sprintf("@every %s", s.resetInterval)
		if _, err := s.cron.AddFunc(spec, func() {
			if err := s.resetDemo(); err != nil {
				s.logger.Error("demo reset failed", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("scheduling demo reset: %w", err)
		}
	}

	if _, err := s.cron.AddFunc(sweepSpec, s.sweepCache); err != nil {
		return fmt.Errorf("scheduling cache sweep: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) resetDemo() error {
	return demo.Reset(s.mem, s.cache, s.logger)
}

func (s *Scheduler) sweepCache() {
	s.cache.Sweep()
	stats := s.cache.Stats()
	s.logger.Debug("cache swept",
		"items", stats.Items,
		"hits", stats.Hits,
		"misses", stats.Misses,
	)
}
