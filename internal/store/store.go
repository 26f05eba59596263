// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store provides the entity store ports and their in-memory,
// fixture-seeded implementation. Every collection lives for the process
// lifetime only; operations simulate a remote call boundary with an
// injectable artificial latency so the whole store can later be swapped
// for a real network client without touching callers.
package store

import (
	"context"
	"errors"

	"github.com/olegiv/academy-go/internal/model"
)

// ErrNotFound is returned when a lookup, update or delete targets an
// id or slug that does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a create would collide with an existing
// unique key (program or post slug).
var ErrConflict = errors.New("already exists")

// Programs is the port for the program collection.
type Programs interface {
	List(ctx context.Context) ([]model.Program, error)
	GetBySlug(ctx context.Context, slug string) (model.Program, error)
	Create(ctx context.Context, draft model.ProgramDraft) (model.Program, error)
	Update(ctx context.Context, id int64, patch model.ProgramPatch) (model.Program, error)
	Delete(ctx context.Context, id int64) (model.Program, error)
}

// Lectures is the port for the lecture collection.
type Lectures interface {
	List(ctx context.Context) ([]model.Lecture, error)
	ListByProgramSlug(ctx context.Context, programSlug string) ([]model.Lecture, error)
	GetByID(ctx context.Context, id int64) (model.Lecture, error)
	Create(ctx context.Context, draft model.LectureDraft) (model.Lecture, error)
	Update(ctx context.Context, id int64, patch model.LecturePatch) (model.Lecture, error)
	Delete(ctx context.Context, id int64) (model.Lecture, error)
}

// Posts is the port for the insight post collection.
// Draft content must already be rendered and sanitized by the caller.
type Posts interface {
	List(ctx context.Context) ([]model.Post, error)
	GetBySlug(ctx context.Context, slug string) (model.Post, error)
	Featured(ctx context.Context, limit int) ([]model.Post, error)
	Create(ctx context.Context, draft model.PostDraft) (model.Post, error)
	Update(ctx context.Context, id int64, patch model.PostPatch) (model.Post, error)
	Delete(ctx context.Context, id int64) (model.Post, error)
}

// Reviews is the port for the student review collection.
type Reviews interface {
	List(ctx context.Context) ([]model.Review, error)
	GetByID(ctx context.Context, id int64) (model.Review, error)
	Featured(ctx context.Context, limit int) ([]model.Review, error)
	Create(ctx context.Context, draft model.ReviewDraft) (model.Review, error)
	ToggleLike(ctx context.Context, reviewID int64, userID string) (model.Review, error)
	Delete(ctx context.Context, id int64) (model.Review, error)
}

// Users is the port for the user collection. Users are provisioned from
// fixtures; there is no create path in the mock backend.
type Users interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	Update(ctx context.Context, id int64, patch model.UserPatch) (model.User, error)
	Delete(ctx context.Context, id int64) (model.User, error)
}

// Events is the port for the audit event log. Appends are synchronous and
// skip the artificial latency: the log is an internal sink, not a page load.
type Events interface {
	Append(ctx context.Context, ev model.Event) (model.Event, error)
	List(ctx context.Context, limit int) ([]model.Event, error)
}
