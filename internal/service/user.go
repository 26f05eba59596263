// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/olegiv/academy-go/internal/events"
	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/query"
	"github.com/olegiv/academy-go/internal/store"
	"github.com/olegiv/academy-go/internal/validate"
)

// UserService manages user accounts. Accounts come from fixtures; the
// admin surface can update and remove them but not create new ones.
type UserService struct {
	users    store.Users
	validate *validator.Validate
	bus      *events.Bus
	logger   *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(users store.Users, v *validator.Validate, bus *events.Bus, logger *slog.Logger) *UserService {
	return &UserService{users: users, validate: v, bus: bus, logger: logger}
}

// ListUsers returns users matching the free-text search and the role
// filter. Empty or "all" values bypass their filter.
func (s *UserService) ListUsers(ctx context.Context, search, role string) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(users,
		query.UserSearch(search),
		query.UserRole(role),
	), nil
}

// GetUser returns one user by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (model.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateUser validates and applies a partial update. Role changes take
// effect on the next policy check; sessions are not invalidated.
func (s *UserService) UpdateUser(ctx context.Context, id int64, patch model.UserPatch) (model.User, error) {
	if err := validate.Struct(s.validate, patch); err != nil {
		return model.User{}, err
	}

	u, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return model.User{}, err
	}
	publishChange(s.bus, s.logger, events.KindUser, events.OpUpdated, u.ID, "")
	return u, nil
}

// DeleteUser removes the account. Existing sessions for the user become
// invalid on their next lookup.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	u, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	publishChange(s.bus, s.logger, events.KindUser, events.OpDeleted, u.ID, "")
	return nil
}
