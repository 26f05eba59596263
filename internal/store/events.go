// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"sync"
	"time"

	"github.com/olegiv/academy-go/internal/model"
)

// maxEvents caps the in-memory audit log. The oldest entries are dropped
// first; the log is an operational aid, not durable storage.
const maxEvents = 1000

// EventStore is the in-memory audit event log. Appends skip the simulated
// latency: the log is written from logging hot paths.
type EventStore struct {
	mu     sync.RWMutex
	items  []model.Event
	lastID int64
	now    func() time.Time
}

// Append stores the event, assigning an id and a creation time when the
// caller left them zero.
func (s *EventStore) Append(_ context.Context, ev model.Event) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	ev.ID = s.lastID
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = s.now()
	}

	s.items = append(s.items, ev)
	if len(s.items) > maxEvents {
		s.items = s.items[len(s.items)-maxEvents:]
	}
	return ev, nil
}

// List returns the most recent events, newest first, capped at limit
// (all retained events when limit is not positive).
func (s *EventStore) List(_ context.Context, limit int) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.items) {
		limit = len(s.items)
	}
	out := make([]model.Event, 0, limit)
	for i := len(s.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.items[i])
	}
	return out, nil
}
