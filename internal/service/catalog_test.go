// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/olegiv/academy-go/internal/cache"
	"github.com/olegiv/academy-go/internal/events"
	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/store"
	"github.com/olegiv/academy-go/internal/testutil"
	"github.com/olegiv/academy-go/internal/validate"
)

// newFixture wires every service over a seeded zero-latency store.
// The bus is nil: change publishing has its own test.
func newFixture(t *testing.T) (*store.Memory, *CatalogService, *InsightService, *ReviewService, *UserService) {
	t.Helper()

	mem := testutil.TestStore(t)
	v := validate.New()
	c := cache.New(time.Minute)
	t.Cleanup(c.Stop)
	logger := testutil.TestLogger()

	insight := NewInsightService(mem.Posts, v, c, 0, nil, logger)
	reviews := NewReviewService(mem.Reviews, v, c, 0, nil, logger)
	catalog := NewCatalogService(mem.Programs, mem.Lectures, insight, reviews, v, nil, logger)
	users := NewUserService(mem.Users, v, nil, logger)
	return mem, catalog, insight, reviews, users
}

func TestListProgramsFilters(t *testing.T) {
	_, catalog, _, _, _ := newFixture(t)
	ctx := context.Background()

	got, err := catalog.ListPrograms(ctx, "career", "all")
	if err != nil {
		t.Fatalf("ListPrograms: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "career-accelerator" {
		t.Errorf("search career -> %+v", got)
	}

	common, err := catalog.ListPrograms(ctx, "", "common")
	if err != nil {
		t.Fatalf("ListPrograms: %v", err)
	}
	if len(common) != 2 {
		t.Errorf("common-course filter -> %d programs, want 2", len(common))
	}
	for _, p := range common {
		if !p.HasCommonCourse {
			t.Errorf("program %q has no common course", p.Slug)
		}
	}
}

func TestCreateProgramValidation(t *testing.T) {
	_, catalog, _, _, _ := newFixture(t)

	_, err := catalog.CreateProgram(context.Background(), model.ProgramDraft{Title: ""})
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestCreateProgramDuplicateTitle(t *testing.T) {
	_, catalog, _, _, _ := newFixture(t)

	_, err := catalog.CreateProgram(context.Background(), model.ProgramDraft{Title: "Web Development"})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestCreateLectureRejectsUnknownLevel(t *testing.T) {
	_, catalog, _, _, _ := newFixture(t)

	_, err := catalog.CreateLecture(context.Background(), model.LectureDraft{
		ProgramSlug: "web-development",
		Title:       "Bonus Session",
		Level:       "platinum",
	})
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestLoadProgramDetailPartitions(t *testing.T) {
	_, catalog, _, _, _ := newFixture(t)
	ctx := context.Background()

	member := &model.User{ID: 2, Role: model.RoleMember}
	detail, err := catalog.LoadProgramDetail(ctx, "web-development", member)
	if err != nil {
		t.Fatalf("LoadProgramDetail: %v", err)
	}

	if detail.Program.Slug != "web-development" {
		t.Errorf("program = %q", detail.Program.Slug)
	}
	if len(detail.Lectures) != 4 {
		t.Fatalf("lectures = %d, want 4", len(detail.Lectures))
	}

	// Members see free and membership lectures; master stays locked.
	wantAccessible := []int64{1, 2, 3}
	if len(detail.Accessible) != len(wantAccessible) {
		t.Fatalf("accessible = %+v", detail.Accessible)
	}
	for i, l := range detail.Accessible {
		if l.ID != wantAccessible[i] {
			t.Errorf("accessible[%d] = %d, want %d", i, l.ID, wantAccessible[i])
		}
	}
	if len(detail.Locked) != 1 || detail.Locked[0].ID != 4 {
		t.Errorf("locked = %+v, want only lecture 4", detail.Locked)
	}
}

func TestLoadProgramDetailAnonymous(t *testing.T) {
	_, catalog, _, _, _ := newFixture(t)

	detail, err := catalog.LoadProgramDetail(context.Background(), "web-development", nil)
	if err != nil {
		t.Fatalf("LoadProgramDetail: %v", err)
	}
	if len(detail.Accessible) != 2 || len(detail.Locked) != 2 {
		t.Errorf("anonymous split = %d accessible, %d locked, want 2/2",
			len(detail.Accessible), len(detail.Locked))
	}
}

func TestLoadProgramDetailUnknownSlug(t *testing.T) {
	_, catalog, _, _, _ := newFixture(t)

	_, err := catalog.LoadProgramDetail(context.Background(), "no-such-program", nil)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadHome(t *testing.T) {
	_, catalog, _, _, _ := newFixture(t)

	home, err := catalog.LoadHome(context.Background())
	if err != nil {
		t.Fatalf("LoadHome: %v", err)
	}

	if len(home.Programs) != 4 {
		t.Errorf("programs = %d, want 4", len(home.Programs))
	}

	// Featured posts: three most recent.
	wantPosts := []int64{1, 2, 3}
	if len(home.FeaturedPosts) != len(wantPosts) {
		t.Fatalf("featured posts = %+v", home.FeaturedPosts)
	}
	for i, p := range home.FeaturedPosts {
		if p.ID != wantPosts[i] {
			t.Errorf("featured post[%d] = %d, want %d", i, p.ID, wantPosts[i])
		}
	}

	// Featured reviews: by descending like count.
	if len(home.FeaturedReviews) != 6 {
		t.Fatalf("featured reviews = %d, want 6", len(home.FeaturedReviews))
	}
	if home.FeaturedReviews[0].ID != 3 || home.FeaturedReviews[1].ID != 1 {
		t.Errorf("top reviews = %d, %d, want 3, 1",
			home.FeaturedReviews[0].ID, home.FeaturedReviews[1].ID)
	}
	for i := 1; i < len(home.FeaturedReviews); i++ {
		if home.FeaturedReviews[i].Likes.Count() > home.FeaturedReviews[i-1].Likes.Count() {
			t.Errorf("featured reviews not in descending like order at %d", i)
		}
	}
}

func TestMutationsPublishChanges(t *testing.T) {
	mem := testutil.TestStore(t)
	v := validate.New()
	logger := testutil.TestLogger()

	bus := events.NewBus(logger)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes, err := bus.Changes(ctx)
	if err != nil {
		t.Fatalf("Changes: %v", err)
	}

	catalog := NewCatalogService(mem.Programs, mem.Lectures, nil, nil, v, bus, logger)
	created, err := catalog.CreateProgram(ctx, model.ProgramDraft{Title: "Cloud Engineering"})
	if err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}

	select {
	case ev := <-changes:
		if ev.Kind != events.KindProgram || ev.Op != events.OpCreated || ev.ID != created.ID {
			t.Errorf("change = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no change notification for create")
	}
}
