// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"math/rand/v2"
	"time"
)

// Latency simulates the round-trip time of a remote call. Each Wait sleeps
// for a uniformly random duration in [Min, Max]. A zero Latency waits not
// at all, which is what tests inject.
//
// Waits always run to completion: the mock backend models no cancellation
// or abort path, so the context is accepted only to keep the port contract
// shaped like a real network client.
type Latency struct {
	Min time.Duration
	Max time.Duration
}

// DefaultLatency mirrors the 200-400ms window of the original mock backend.
var DefaultLatency = Latency{Min: 200 * time.Millisecond, Max: 400 * time.Millisecond}

// Wait blocks for one simulated round trip.
func (l Latency) Wait(_ context.Context) {
	d := l.Min
	if l.Max > l.Min {
		d += rand.N(l.Max - l.Min)
	}
	if d > 0 {
		time.Sleep(d)
	}
}
