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
	"github.com/olegiv/academy-go/internal/util"
)

// DefaultFeaturedPosts is the featured limit when callers pass none.
const DefaultFeaturedPosts = 3

// PostStore is the in-memory insight post collection.
type PostStore struct {
	mu      sync.RWMutex
	items   []model.Post
	latency Latency
	now     func() time.Time
}

// List returns a copy of all posts, most recent first.
func (s *PostStore) List(ctx context.Context) ([]model.Post, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedByRecency(s.items), nil
}

// GetBySlug returns the post with the given slug.
func (s *PostStore) GetBySlug(ctx context.Context, slug string) (model.Post, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.Post{}, fmt.Errorf("post %q: %w", slug, ErrNotFound)
}

// Featured returns the most recent posts, capped at limit
// (DefaultFeaturedPosts when limit is not positive).
func (s *PostStore) Featured(ctx context.Context, limit int) ([]model.Post, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultFeaturedPosts
	}
	out := sortedByRecency(s.items)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Create assigns a new id, derives the slug from the title, stamps the
// creation time and appends the post. Draft content must already be
// rendered and sanitized HTML. Colliding slugs fail with ErrConflict.
func (s *PostStore) Create(ctx context.Context, draft model.PostDraft) (model.Post, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	slug := util.Slugify(draft.Title)
	if slug == "" {
		return model.Post{}, fmt.Errorf("post title %q produces an empty slug", draft.Title)
	}
	for _, p := range s.items {
		if p.Slug == slug {
			return model.Post{}, fmt.Errorf("post slug %q: %w", slug, ErrConflict)
		}
	}

	p := model.Post{
		ID:              nextID(postIDs(s.items)),
		Slug:            slug,
		Title:           draft.Title,
		Excerpt:         draft.Excerpt,
		ContentRichtext: draft.Content,
		ThumbnailURL:    draft.ThumbnailURL,
		CreatedAt:       s.now(),
	}
	s.items = append(s.items, p)
	return p, nil
}

// Update merges the patch into the stored post. Neither the slug nor the
// creation time is re-derived.
func (s *PostStore) Update(ctx context.Context, id int64, patch model.PostPatch) (model.Post, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			patch.Apply(&s.items[i])
			return s.items[i], nil
		}
	}
	return model.Post{}, fmt.Errorf("post %d: %w", id, ErrNotFound)
}

// Delete removes the post and returns it.
func (s *PostStore) Delete(ctx context.Context, id int64) (model.Post, error) {
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
	return model.Post{}, fmt.Errorf("post %d: %w", id, ErrNotFound)
}

// ReplaceAll swaps the collection contents. Used by seeding and demo reset.
func (s *PostStore) ReplaceAll(items []model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]model.Post, len(items))
	copy(s.items, items)
}

// sortedByRecency copies items and orders them by descending created_at.
// The stored slice keeps insertion order.
func sortedByRecency(items []model.Post) []model.Post {
	out := make([]model.Post, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func postIDs(items []model.Post) []int64 {
	ids := make([]int64, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	return ids
}
