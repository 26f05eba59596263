// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Access levels a lecture can require. Stored lectures may carry levels
// outside this list (imported legacy data); readers treat those as open.
const (
	LevelFree         = "free"
	LevelMembership   = "membership"
	LevelMaster       = "master"
	LevelMasterCommon = "master_common"
)

// ValidLevel reports whether level is one of the known access levels.
// New lectures must use a known level; see the validate package.
func ValidLevel(level string) bool {
	switch level {
	case LevelFree, LevelMembership, LevelMaster, LevelMasterCommon:
		return true
	}
	return false
}

// Lecture represents a single lecture within a program. Lectures reference
// their program by slug; the reference is weak and survives program deletes.
type Lecture struct {
	ID           int64  `json:"Id"`
	ProgramSlug  string `json:"program_slug"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Level        string `json:"level"`
	CohortNumber int    `json:"cohort_number,omitempty"`
	SortOrder    int    `json:"sort_order"`
	EmbedURL     string `json:"embed_url"`
}

// LectureDraft holds the fields an admin supplies when creating a lecture.
type LectureDraft struct {
	ProgramSlug  string `json:"program_slug" validate:"required,slug"`
	Title        string `json:"title" validate:"required,min=1"`
	Category     string `json:"category"`
	Level        string `json:"level" validate:"required,level"`
	CohortNumber int    `json:"cohort_number" validate:"omitempty,min=0"`
	SortOrder    int    `json:"sort_order" validate:"omitempty,min=0"`
	EmbedURL     string `json:"embed_url" validate:"omitempty,url"`
}

// LecturePatch is a partial update for a Lecture.
type LecturePatch struct {
	ProgramSlug  *string `json:"program_slug,omitempty" validate:"omitempty,slug"`
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Category     *string `json:"category,omitempty"`
	Level        *string `json:"level,omitempty" validate:"omitempty,level"`
	CohortNumber *int    `json:"cohort_number,omitempty" validate:"omitempty,min=0"`
	SortOrder    *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
	EmbedURL     *string `json:"embed_url,omitempty" validate:"omitempty,url"`
}

// Apply merges the patch into l.
func (p LecturePatch) Apply(l *Lecture) {
	if p.ProgramSlug != nil {
		l.ProgramSlug = *p.ProgramSlug
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.Level != nil {
		l.Level = *p.Level
	}
	if p.CohortNumber != nil {
		l.CohortNumber = *p.CohortNumber
	}
	if p.SortOrder != nil {
		l.SortOrder = *p.SortOrder
	}
	if p.EmbedURL != nil {
		l.EmbedURL = *p.EmbedURL
	}
}
