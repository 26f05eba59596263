// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/util"
)

// ProgramStore is the in-memory program collection.
type ProgramStore struct {
	mu      sync.RWMutex
	items   []model.Program
	latency Latency
}

// List returns a copy of all programs in insertion order.
func (s *ProgramStore) List(ctx context.Context) ([]model.Program, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Program, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetBySlug returns the program with the given slug.
func (s *ProgramStore) GetBySlug(ctx context.Context, slug string) (model.Program, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.Program{}, fmt.Errorf("program %q: %w", slug, ErrNotFound)
}

// Create assigns a new id, derives the slug from the title and appends the
// program. Slugs are unique: a colliding title fails with ErrConflict.
func (s *ProgramStore) Create(ctx context.Context, draft model.ProgramDraft) (model.Program, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	slug := util.Slugify(draft.Title)
	if slug == "" {
		return model.Program{}, fmt.Errorf("program title %q produces an empty slug", draft.Title)
	}
	for _, p := range s.items {
		if p.Slug == slug {
			return model.Program{}, fmt.Errorf("program slug %q: %w", slug, ErrConflict)
		}
	}

	p := model.Program{
		ID:               nextID(programIDs(s.items)),
		Slug:             slug,
		Title:            draft.Title,
		DescriptionShort: draft.DescriptionShort,
		DescriptionLong:  draft.DescriptionLong,
		ThumbnailURL:     draft.ThumbnailURL,
		HasCommonCourse:  draft.HasCommonCourse,
	}
	s.items = append(s.items, p)
	return p, nil
}

// Update merges the patch into the stored program. The slug is never
// re-derived, even when the title changes.
func (s *ProgramStore) Update(ctx context.Context, id int64, patch model.ProgramPatch) (model.Program, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			patch.Apply(&s.items[i])
			return s.items[i], nil
		}
	}
	return model.Program{}, fmt.Errorf("program %d: %w", id, ErrNotFound)
}

// Delete removes the program and returns it. Lectures referencing the
// program's slug are left in place: the reference is weak.
func (s *ProgramStore) Delete(ctx context.Context, id int64) (model.Program, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			removed := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			return removed, nil
		}
	}
	return model.Program{}, fmt.Errorf("program %d: %w", id, ErrNotFound)
}

// ReplaceAll swaps the collection contents. Used by seeding and demo reset.
func (s *ProgramStore) ReplaceAll(items []model.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]model.Program, len(items))
	copy(s.items, items)
}

func programIDs(items []model.Program) []int64 {
	ids := make([]int64, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	return ids
}
