// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/store"
)

// LogSink subscribes to entity changes and records them in the audit
// event log.
type LogSink struct {
	bus    *Bus
	events store.Events
	logger *slog.Logger
}

// NewLogSink creates a sink writing change notifications to the given
// event log.
func NewLogSink(bus *Bus, events store.Events, logger *slog.Logger) *LogSink {
	return &LogSink{bus: bus, events: events, logger: logger}
}

// Run consumes change notifications until ctx is canceled or the bus is
// closed. It blocks and is meant to run in its own goroutine.
func (s *LogSink) Run(ctx context.Context) error {
	changes, err := s.bus.Changes(ctx)
	if err != nil {
		return err
	}

	for ev := range changes {
		_, err := s.events.Append(ctx, model.Event{
			Level:    model.EventLevelInfo,
			Category: categoryFor(ev.Kind),
			Message:  fmt.Sprintf("%s %s", ev.Kind, ev.Op),
			Metadata: map[string]any{
				"kind": ev.Kind,
				"op":   ev.Op,
				"id":   ev.ID,
				"slug": ev.Slug,
			},
		})
		if err != nil {
			s.logger.Warn("failed to record entity change", "kind", ev.Kind, "op", ev.Op, "error", err)
		}
	}
	return nil
}

func categoryFor(kind string) string {
	switch kind {
	case KindProgram, KindLecture:
		return model.EventCategoryCatalog
	case KindPost:
		return model.EventCategoryInsight
	case KindReview:
		return model.EventCategoryReview
	case KindUser:
		return model.EventCategoryUser
	default:
		return model.EventCategorySystem
	}
}
