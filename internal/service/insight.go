// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/olegiv/academy-go/internal/cache"
	"github.com/olegiv/academy-go/internal/events"
	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/query"
	"github.com/olegiv/academy-go/internal/store"
	"github.com/olegiv/academy-go/internal/validate"
)

// htmlSanitizer provides a reusable HTML sanitization policy for post
// content. It uses bluemonday's UGCPolicy which allows safe HTML tags
// while stripping dangerous elements like <script> and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

const featuredPostsPrefix = "featured:posts:"

// InsightService manages insight posts: listing, keyword classification,
// markdown rendering, sanitization and the cached featured list.
type InsightService struct {
	posts    store.Posts
	validate *validator.Validate
	cache    *cache.Cache
	featured cache.Typed[[]model.Post]
	limit    int
	bus      *events.Bus
	logger   *slog.Logger
}

// NewInsightService creates an InsightService. featuredLimit caps the
// featured list; values below one fall back to the default.
func NewInsightService(
	posts store.Posts,
	v *validator.Validate,
	c *cache.Cache,
	featuredLimit int,
	bus *events.Bus,
	logger *slog.Logger,
) *InsightService {
	if featuredLimit < 1 {
		featuredLimit = store.DefaultFeaturedPosts
	}
	return &InsightService{
		posts:    posts,
		validate: v,
		cache:    c,
		featured: cache.NewTyped[[]model.Post](c),
		limit:    featuredLimit,
		bus:      bus,
		logger:   logger,
	}
}

// ListPosts returns posts matching the free-text search and the keyword
// category, newest first. Empty or "all" values bypass their filter.
func (s *InsightService) ListPosts(ctx context.Context, search, category string) ([]model.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(posts,
		query.PostSearch(search),
		query.PostCategory(category),
	), nil
}

// GetPost returns one post by slug.
func (s *InsightService) GetPost(ctx context.Context, slug string) (model.Post, error) {
	return s.posts.GetBySlug(ctx, slug)
}

// Featured returns the most recent posts, served from cache when warm.
func (s *InsightService) Featured(ctx context.Context) ([]model.Post, error) {
	key := fmt.Sprintf("%s%d", featuredPostsPrefix, s.limit)
	return s.featured.GetOrSet(key, func() ([]model.Post, error) {
		return s.posts.Featured(ctx, s.limit)
	})
}

// Related returns up to limit posts sharing a keyword category with the
// post at slug, excluding the post itself. Posts that classify into no
// category fall back to the most recent others.
func (s *InsightService) Related(ctx context.Context, slug string, limit int) ([]model.Post, error) {
	current, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	all, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	var cats []string
	for _, cat := range query.Categories() {
		if query.MatchesCategory(current, cat) {
			cats = append(cats, cat)
		}
	}

	var out []model.Post
	for _, p := range all {
		if p.Slug == slug {
			continue
		}
		if len(cats) == 0 || sharesCategory(p, cats) {
			out = append(out, p)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func sharesCategory(p model.Post, cats []string) bool {
	for _, cat := range cats {
		if query.MatchesCategory(p, cat) {
			return true
		}
	}
	return false
}

// CreatePost validates the draft, renders markdown bodies to HTML,
// sanitizes the result and stores the post.
func (s *InsightService) CreatePost(ctx context.Context, draft model.PostDraft) (model.Post, error) {
	if err := validate.Struct(s.validate, draft); err != nil {
		return model.Post{}, err
	}

	rendered, err := renderContent(draft.Content, draft.Format)
	if err != nil {
		return model.Post{}, err
	}
	draft.Content = rendered

	p, err := s.posts.Create(ctx, draft)
	if err != nil {
		return model.Post{}, err
	}

	s.invalidateFeatured()
	publishChange(s.bus, s.logger, events.KindPost, events.OpCreated, p.ID, p.Slug)
	return p, nil
}

// UpdatePost validates and applies a partial update. Patched content is
// treated as HTML and sanitized before storage.
func (s *InsightService) UpdatePost(ctx context.Context, id int64, patch model.PostPatch) (model.Post, error) {
	if err := validate.Struct(s.validate, patch); err != nil {
		return model.Post{}, err
	}

	if patch.Content != nil {
		sanitized := htmlSanitizer.Sanitize(*patch.Content)
		patch.Content = &sanitized
	}

	p, err := s.posts.Update(ctx, id, patch)
	if err != nil {
		return model.Post{}, err
	}

	s.invalidateFeatured()
	publishChange(s.bus, s.logger, events.KindPost, events.OpUpdated, p.ID, p.Slug)
	return p, nil
}

// DeletePost removes the post.
func (s *InsightService) DeletePost(ctx context.Context, id int64) error {
	p, err := s.posts.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.invalidateFeatured()
	publishChange(s.bus, s.logger, events.KindPost, events.OpDeleted, p.ID, p.Slug)
	return nil
}

func (s *InsightService) invalidateFeatured() {
	s.cache.DeletePrefix(featuredPostsPrefix)
}

// renderContent converts a draft body to sanitized HTML. Markdown bodies
// are rendered first; everything else is treated as HTML.
func renderContent(content, format string) (string, error) {
	if format == model.PostFormatMarkdown {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("rendering markdown: %w", err)
		}
		content = buf.String()
	}
	return htmlSanitizer.Sanitize(content), nil
}
