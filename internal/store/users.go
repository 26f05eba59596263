// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/olegiv/academy-go/internal/model"
)

// UserStore is the in-memory user collection.
type UserStore struct {
	mu      sync.RWMutex
	items   []model.User
	latency Latency
}

// List returns a copy of all users in insertion order.
func (s *UserStore) List(ctx context.Context) ([]model.User, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetByID returns the user with the given id.
func (s *UserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	s.latency.Wait(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.items {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
}

// Update merges the patch into the stored user.
func (s *UserStore) Update(ctx context.Context, id int64, patch model.UserPatch) (model.User, error) {
	s.latency.Wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			patch.Apply(&s.items[i])
			return s.items[i], nil
		}
	}
	return model.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
}

// Delete removes the user and returns it.
func (s *UserStore) Delete(ctx context.Context, id int64) (model.User, error) {
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
	return model.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
}

// ReplaceAll swaps the collection contents. Used by seeding and demo reset.
func (s *UserStore) ReplaceAll(items []model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]model.User, len(items))
	copy(s.items, items)
}
