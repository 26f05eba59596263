// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/olegiv/academy-go/internal/model"
)

// LectureStore is the in-memory lecture collection.
type LectureStore struct {
	mu      sync.RWMutex
	items   []model.Lecture
	latency Latency
}

// List returns a copy of all lectures in insertion order.
func (s *LectureStore) List(ctx context.Context) ([]model.Lecture, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Lecture, len(s.items))
	copy(out, s.items)
	return out, nil
}

// ListByProgramSlug returns the lectures of one program ordered by
// ascending sort_order. Ties keep insertion order.
func (s *LectureStore) ListByProgramSlug(ctx context.Context, programSlug string) ([]model.Lecture, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Lecture
	for _, l := range s.items {
		if l.ProgramSlug == programSlug {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out, nil
}

// GetByID returns the lecture with the given id.
func (s *LectureStore) GetByID(ctx context.Context, id int64) (model.Lecture, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.items {
		if l.ID == id {
			return l, nil
		}
	}
	return model.Lecture{}, fmt.Errorf("lecture %d: %w", id, ErrNotFound)
}

// Create assigns a new id and appends the lecture.
func (s *LectureStore) Create(ctx context.Context, draft model.LectureDraft) (model.Lecture, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	l := model.Lecture{
		ID:           nextID(lectureIDs(s.items)),
		ProgramSlug:  draft.ProgramSlug,
		Title:        draft.Title,
		Category:     draft.Category,
		Level:        draft.Level,
		CohortNumber: draft.CohortNumber,
		SortOrder:    draft.SortOrder,
		EmbedURL:     draft.EmbedURL,
	}
	s.items = append(s.items, l)
	return l, nil
}

// Update merges the patch into the stored lecture.
func (s *LectureStore) Update(ctx context.Context, id int64, patch model.LecturePatch) (model.Lecture, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			patch.Apply(&s.items[i])
			return s.items[i], nil
		}
	}
	return model.Lecture{}, fmt.Errorf("lecture %d: %w", id, ErrNotFound)
}

// Delete removes the lecture and returns it.
func (s *LectureStore) Delete(ctx context.Context, id int64) (model.Lecture, error) {
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
	return model.Lecture{}, fmt.Errorf("lecture %d: %w", id, ErrNotFound)
}

// ReplaceAll swaps the collection contents. Used by seeding and demo reset.
func (s *LectureStore) ReplaceAll(items []model.Lecture) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]model.Lecture, len(items))
	copy(s.items, items)
}

func lectureIDs(items []model.Lecture) []int64 {
	ids := make([]int64, len(items))
	for i, l := range items {
		ids[i] = l.ID
	}
	return ids
}
