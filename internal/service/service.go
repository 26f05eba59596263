// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic services on top of the entity
// store: validation, content rendering, composite page loads, featured
// list caching and change notifications.
package service

import (
	"log/slog"

	"github.com/olegiv/academy-go/internal/events"
)

// publishChange sends an entity change notification. Publishing is best
// effort: a failed publish is logged and never fails the mutation that
// already happened.
func publishChange(bus *events.Bus, logger *slog.Logger, kind, op string, id int64, slug string) {
	if bus == nil {
		return
	}
	if err := bus.Publish(events.EntityChanged{Kind: kind, Op: op, ID: id, Slug: slug}); err != nil {
		logger.Warn("failed to publish entity change",
			"kind", kind, "op", op, "id", id, "error", err)
	}
}
