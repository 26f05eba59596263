// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package demo

import (
	"context"
	"testing"
	"time"

	"github.com/olegiv/academy-go/internal/cache"
	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/testutil"
)

func TestResetRestoresFixtures(t *testing.T) {
	mem := testutil.TestStore(t)
	ctx := context.Background()

	// Mutate the data the way a demo visitor would.
	if _, err := mem.Programs.Create(ctx, model.ProgramDraft{Title: "Scribbled On"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := mem.Reviews.ToggleLike(ctx, 4, "vandal"); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	c := cache.New(time.Minute)
	t.Cleanup(c.Stop)
	c.Set("featured:posts:3", "stale")

	if err := Reset(mem, c, testutil.TestLogger()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	programs, err := mem.Programs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(programs) != 4 {
		t.Errorf("programs after reset = %d, want 4", len(programs))
	}

	r, err := mem.Reviews.GetByID(ctx, 4)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if r.Likes.Count() != 0 {
		t.Errorf("review 4 kept %d likes through reset", r.Likes.Count())
	}

	if _, ok := c.Get("featured:posts:3"); ok {
		t.Error("cache survived reset")
	}
}

func TestResetRecordsEvent(t *testing.T) {
	mem := testutil.TestStore(t)

	if err := Reset(mem, nil, testutil.TestLogger()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	events, err := mem.Events.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 1 || events[0].Message != "demo data reset" {
		t.Fatalf("event log after reset: %+v", events)
	}
}
