// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Program represents a learning program (a course track). The slug is
// derived from the title at creation time and never changes afterwards.
type Program struct {
	ID               int64  `json:"Id"`
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	DescriptionShort string `json:"description_short"`
	DescriptionLong  string `json:"description_long"`
	ThumbnailURL     string `json:"thumbnail_url"`
	HasCommonCourse  bool   `json:"has_common_course"`
}

// ProgramDraft holds the fields an admin supplies when creating a program.
// ID and slug are assigned by the store.
type ProgramDraft struct {
	Title            string `json:"title" validate:"required,min=1"`
	DescriptionShort string `json:"description_short"`
	DescriptionLong  string `json:"description_long"`
	ThumbnailURL     string `json:"thumbnail_url" validate:"omitempty,url"`
	HasCommonCourse  bool   `json:"has_common_course"`
}

// ProgramPatch is a partial update for a Program. The slug is not
// patchable: lectures reference programs by slug.
type ProgramPatch struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=1"`
	DescriptionShort *string `json:"description_short,omitempty"`
	DescriptionLong  *string `json:"description_long,omitempty"`
	ThumbnailURL     *string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	HasCommonCourse  *bool   `json:"has_common_course,omitempty"`
}

// Apply merges the patch into pr.
func (p ProgramPatch) Apply(pr *Program) {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.DescriptionShort != nil {
		pr.DescriptionShort = *p.DescriptionShort
	}
	if p.DescriptionLong != nil {
		pr.DescriptionLong = *p.DescriptionLong
	}
	if p.ThumbnailURL != nil {
		pr.ThumbnailURL = *p.ThumbnailURL
	}
	if p.HasCommonCourse != nil {
		pr.HasCommonCourse = *p.HasCommonCourse
	}
}
