// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Post body formats accepted at creation time. Markdown bodies are rendered
// to HTML before storage; HTML bodies are stored after sanitization.
const (
	PostFormatHTML     = "html"
	PostFormatMarkdown = "markdown"
)

// Post represents a blog-style insight article. ContentRichtext is
// sanitized HTML. Listing order is descending CreatedAt.
type Post struct {
	ID              int64     `json:"Id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Excerpt         string    `json:"excerpt"`
	ContentRichtext string    `json:"content_richtext"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReadTime returns the estimated reading time in minutes. This is a crude
// length heuristic over the rendered HTML, not a word count: one minute
// per started kilobyte of content.
func (p Post) ReadTime() int {
	return (len(p.ContentRichtext) + 999) / 1000
}

// PostDraft holds the fields an admin supplies when creating a post.
// Slug and CreatedAt are assigned by the store.
type PostDraft struct {
	Title        string `json:"title" validate:"required,min=1"`
	Excerpt      string `json:"excerpt"`
	Content      string `json:"content"`
	Format       string `json:"format" validate:"omitempty,oneof=html markdown"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
}

// PostPatch is a partial update for a Post. Content passed here is treated
// as HTML and sanitized; the slug and creation time are not patchable.
type PostPatch struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Excerpt      *string `json:"excerpt,omitempty"`
	Content      *string `json:"content,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
}

// Apply merges the patch into po.
func (p PostPatch) Apply(po *Post) {
	if p.Title != nil {
		po.Title = *p.Title
	}
	if p.Excerpt != nil {
		po.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		po.ContentRichtext = *p.Content
	}
	if p.ThumbnailURL != nil {
		po.ThumbnailURL = *p.ThumbnailURL
	}
}
