// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/olegiv/academy-go/internal/model"
)

// DefaultFeaturedReviews is the featured limit when callers pass none.
const DefaultFeaturedReviews = 6

// ReviewStore is the in-memory student review collection.
type ReviewStore struct {
	mu      sync.RWMutex
	items   []model.Review
	latency Latency
	now     func() time.Time
}

// List returns a copy of all reviews, most recent first.
func (s *ReviewStore) List(ctx context.Context) ([]model.Review, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := cloneReviews(s.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID returns the review with the given id.
func (s *ReviewStore) GetByID(ctx context.Context, id int64) (model.Review, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.items {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return model.Review{}, fmt.Errorf("review %d: %w", id, ErrNotFound)
}

// Featured returns the reviews with the most likes, capped at limit
// (DefaultFeaturedReviews when limit is not positive).
func (s *ReviewStore) Featured(ctx context.Context, limit int) ([]model.Review, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultFeaturedReviews
	}
	out := cloneReviews(s.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Likes.Count() > out[j].Likes.Count()
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Create assigns a new id, stamps the creation time and appends the review
// with an empty like set.
func (s *ReviewStore) Create(ctx context.Context, draft model.ReviewDraft) (model.Review, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.Review{
		ID:        nextID(reviewIDs(s.items)),
		Text:      draft.Text,
		AuthorID:  draft.AuthorID,
		CreatedAt: s.now(),
		Likes:     model.LikeSet{},
	}
	s.items = append(s.items, r)
	return r.Clone(), nil
}

// ToggleLike flips userID's membership in the review's like set and
// returns the full updated review so callers can resynchronize derived
// state from one source of truth. Two identical toggles restore the
// original set.
func (s *ReviewStore) ToggleLike(ctx context.Context, reviewID int64, userID string) (model.Review, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == reviewID {
			if s.items[i].Likes == nil {
				s.items[i].Likes = model.LikeSet{}
			}
			s.items[i].Likes.Toggle(userID)
			return s.items[i].Clone(), nil
		}
	}
	return model.Review{}, fmt.Errorf("review %d: %w", reviewID, ErrNotFound)
}

// Delete removes the review and returns it.
func (s *ReviewStore) Delete(ctx context.Context, id int64) (model.Review, error) {
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
	return model.Review{}, fmt.Errorf("review %d: %w", id, ErrNotFound)
}

// ReplaceAll swaps the collection contents. Used by seeding and demo reset.
func (s *ReviewStore) ReplaceAll(items []model.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = cloneReviews(items)
}

func cloneReviews(items []model.Review) []model.Review {
	out := make([]model.Review, len(items))
	for i, r := range items {
		out[i] = r.Clone()
	}
	return out
}

func reviewIDs(items []model.Review) []int64 {
	ids := make([]int64, len(items))
	for i, r := range items {
		ids[i] = r.ID
	}
	return ids
}
