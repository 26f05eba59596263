// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package demo restores the mock backend to its pristine fixture state.
// The deployment is a shared demo: visitors mutate the data freely and a
// periodic reset wipes their changes.
package demo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/academy-go/internal/cache"
	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/store"
)

// Reset reseeds every collection from the embedded fixtures and clears
// the cache. The event log survives the reset and records it.
func Reset(mem *store.Memory, c *cache.Cache, logger *slog.Logger) error {
	if err := mem.Seed(); err != nil {
		return fmt.Errorf("reseeding demo data: %w", err)
	}
	if c != nil {
		c.Clear()
	}

	_, err := mem.Events.Append(context.Background(), model.Event{
		Level:    model.EventLevelInfo,
		Category: model.EventCategorySystem,
		Message:  "demo data reset",
	})
	if err != nil {
		logger.Warn("failed to record demo reset", "error", err)
	}

	logger.Info("demo data reset")
	return nil
}
