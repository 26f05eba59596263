// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"time"
)

// Memory bundles the in-memory collections behind the store ports.
// Construct one per process with New, then seed it from fixtures.
type Memory struct {
	Programs *ProgramStore
	Lectures *LectureStore
	Posts    *PostStore
	Reviews  *ReviewStore
	Users    *UserStore
	Events   *EventStore
}

// Option configures a Memory store.
type Option func(*options)

type options struct {
	latency Latency
	now     func() time.Time
}

// WithLatency sets the simulated per-operation latency window.
func WithLatency(l Latency) Option {
	return func(o *options) { o.latency = l }
}

// WithClock sets the time source used to stamp created_at fields.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates an empty in-memory store. Without options it uses the
// default 200-400ms latency window and the wall clock.
func New(opts ...Option) *Memory {
	o := options{latency: DefaultLatency, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Memory{
		Programs: &ProgramStore{latency: o.latency},
		Lectures: &LectureStore{latency: o.latency},
		Posts:    &PostStore{latency: o.latency, now: o.now},
		Reviews:  &ReviewStore{latency: o.latency, now: o.now},
		Users:    &UserStore{latency: o.latency},
		Events:   &EventStore{now: o.now},
	}
}

// nextID assigns ids as max(existing)+1. The first id in an empty
// collection is 1.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
