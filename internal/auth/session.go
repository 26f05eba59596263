// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/store"
)

// ErrNoSession is returned when a token does not map to a live session.
var ErrNoSession = errors.New("no active session")

// Manager is the mock session layer. There are no credentials: a login
// names a fixture user and receives an opaque token, which is all the
// front-end needs to exercise role gating. A real authentication service
// would replace this wholesale behind the same methods.
type Manager struct {
	users store.Users

	mu       sync.RWMutex
	sessions map[string]int64 // token -> user id
}

// NewManager creates a session manager backed by the user store.
func NewManager(users store.Users) *Manager {
	return &Manager{
		users:    users,
		sessions: make(map[string]int64),
	}
}

// Login resolves the user through the store (simulated latency included)
// and issues a session token.
func (m *Manager) Login(ctx context.Context, userID int64) (string, model.User, error) {
	u, err := m.users.GetByID(ctx, userID)
	if err != nil {
		return "", model.User{}, fmt.Errorf("login: %w", err)
	}

	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = u.ID
	m.mu.Unlock()

	return token, u, nil
}

// UserFromToken returns the current user for a session token. The user is
// re-read from the store so role changes made by an admin take effect on
// the next check.
func (m *Manager) UserFromToken(ctx context.Context, token string) (model.User, error) {
	m.mu.RLock()
	id, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return model.User{}, ErrNoSession
	}

	u, err := m.users.GetByID(ctx, id)
	if err != nil {
		// The account was deleted out from under the session.
		m.Logout(token)
		return model.User{}, fmt.Errorf("session user: %w", err)
	}
	return u, nil
}

// Logout drops the session. Unknown tokens are a no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
