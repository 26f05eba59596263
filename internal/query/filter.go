// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package query implements the filter pipeline used by catalog, insight
// and admin listings: free-text search, exact-match filters with an "all"
// sentinel, and the keyword category classifier for posts.
//
// Filters are independent predicates combined with logical AND, so the
// application order never changes the result set. The pipeline preserves
// the input order and never re-sorts: callers sort the source list first.
package query

import (
	"strings"

	"github.com/olegiv/academy-go/internal/model"
)

// All is the sentinel value that bypasses an exact-match filter.
const All = "all"

// Predicate reports whether an item passes one filter.
type Predicate[T any] func(T) bool

// Apply filters items through all predicates, preserving input order.
// Nil predicates are skipped. The result is always a fresh slice.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

// And combines predicates into one. Nil predicates are skipped.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		return matchesAll(item, preds)
	}
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// containsFold is a case-insensitive substring match.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// LectureSearch matches the query against title and category.
// An empty or whitespace-only query matches everything.
func LectureSearch(q string) Predicate[model.Lecture] {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return func(l model.Lecture) bool {
		return containsFold(l.Title, q) || containsFold(l.Category, q)
	}
}

// PostSearch matches the query against title and excerpt.
func PostSearch(q string) Predicate[model.Post] {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return func(p model.Post) bool {
		return containsFold(p.Title, q) || containsFold(p.Excerpt, q)
	}
}

// ProgramSearch matches the query against title and short description.
func ProgramSearch(q string) Predicate[model.Program] {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return func(p model.Program) bool {
		return containsFold(p.Title, q) || containsFold(p.DescriptionShort, q)
	}
}

// UserSearch matches the query against name and email.
func UserSearch(q string) Predicate[model.User] {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return func(u model.User) bool {
		return containsFold(u.Name, q) || containsFold(u.Email, q)
	}
}

// LectureLevel keeps lectures with exactly the given level. The All
// sentinel bypasses the filter.
func LectureLevel(level string) Predicate[model.Lecture] {
	if level == All || level == "" {
		return nil
	}
	return func(l model.Lecture) bool { return l.Level == level }
}

// LectureProgram keeps lectures belonging to the given program slug.
func LectureProgram(programSlug string) Predicate[model.Lecture] {
	if programSlug == All || programSlug == "" {
		return nil
	}
	return func(l model.Lecture) bool { return l.ProgramSlug == programSlug }
}

// UserRole keeps users with exactly the given role.
func UserRole(role string) Predicate[model.User] {
	if role == All || role == "" {
		return nil
	}
	return func(u model.User) bool { return u.Role == role }
}

// Program common-course filter values.
const (
	ProgramsCommon  = "common"
	ProgramsRegular = "regular"
)

// ProgramCommonCourse keeps programs by their has_common_course flag:
// ProgramsCommon keeps flagged programs, ProgramsRegular the rest, and
// anything else bypasses the filter.
func ProgramCommonCourse(kind string) Predicate[model.Program] {
	switch kind {
	case ProgramsCommon:
		return func(p model.Program) bool { return p.HasCommonCourse }
	case ProgramsRegular:
		return func(p model.Program) bool { return !p.HasCommonCourse }
	default:
		return nil
	}
}
