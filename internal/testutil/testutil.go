// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for the academy project.
package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/olegiv/academy-go/internal/store"
)

// TestLogger creates a silent test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestStore creates a fixture-seeded in-memory store with the simulated
// latency disabled so tests run fast.
func TestStore(t *testing.T) *store.Memory {
	t.Helper()

	m := store.New(store.WithLatency(store.Latency{}))
	if err := m.Seed(); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	return m
}
