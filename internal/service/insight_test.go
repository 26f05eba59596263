// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/store"
)

func TestListPostsByCategory(t *testing.T) {
	_, _, insight, _, _ := newFixture(t)
	ctx := context.Background()

	career, err := insight.ListPosts(ctx, "", "career")
	require.NoError(t, err)
	require.NotEmpty(t, career)
	for _, p := range career {
		assert.Contains(t, []int64{4, 5}, p.ID, "post %d is not a career post", p.ID)
	}

	all, err := insight.ListPosts(ctx, "", "all")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// Listing is newest first.
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt), "posts out of order at %d", i)
	}
}

func TestCreatePostRendersMarkdown(t *testing.T) {
	_, _, insight, _, _ := newFixture(t)

	p, err := insight.CreatePost(context.Background(), model.PostDraft{
		Title:   "Go Generics In Practice",
		Excerpt: "what changed",
		Content: "Some **bold** advice.",
		Format:  model.PostFormatMarkdown,
	})
	require.NoError(t, err)

	assert.Contains(t, p.ContentRichtext, "<strong>bold</strong>")
	assert.Equal(t, "go-generics-in-practice", p.Slug)
}

func TestCreatePostSanitizesHTML(t *testing.T) {
	_, _, insight, _, _ := newFixture(t)

	p, err := insight.CreatePost(context.Background(), model.PostDraft{
		Title:   "A Post With Teeth",
		Content: `<p>fine</p><script>alert("xss")</script>`,
		Format:  model.PostFormatHTML,
	})
	require.NoError(t, err)

	assert.Contains(t, p.ContentRichtext, "<p>fine</p>")
	assert.NotContains(t, p.ContentRichtext, "<script")
}

func TestUpdatePostSanitizesContent(t *testing.T) {
	_, _, insight, _, _ := newFixture(t)

	content := `<p onclick="steal()">hello</p>`
	p, err := insight.UpdatePost(context.Background(), 1, model.PostPatch{Content: &content})
	require.NoError(t, err)

	assert.NotContains(t, p.ContentRichtext, "onclick")
	assert.Contains(t, p.ContentRichtext, "hello")
}

func TestCreatePostValidation(t *testing.T) {
	_, _, insight, _, _ := newFixture(t)

	_, err := insight.CreatePost(context.Background(), model.PostDraft{Title: ""})
	require.Error(t, err)

	_, err = insight.CreatePost(context.Background(), model.PostDraft{
		Title:  "Bad Format",
		Format: "docx",
	})
	require.Error(t, err)
}

func TestFeaturedCacheInvalidatedOnCreate(t *testing.T) {
	_, _, insight, _, _ := newFixture(t)
	ctx := context.Background()

	first, err := insight.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, int64(1), first[0].ID)

	// A new post is stamped with the current time, making it the most
	// recent; the cached list must not survive the create.
	created, err := insight.CreatePost(ctx, model.PostDraft{
		Title:   "Fresh Off The Press",
		Content: "<p>news</p>",
	})
	require.NoError(t, err)

	second, err := insight.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, created.ID, second[0].ID)
}

func TestRelatedSharesCategoryAndExcludesSelf(t *testing.T) {
	_, _, insight, _, _ := newFixture(t)

	// The react post classifies as web development (react, javascript, web)
	// and mobile (the excerpt mentions apps). Only the mobile post shares
	// a category with it.
	related, err := insight.Related(context.Background(), "react-hooks-deep-dive", 10)
	require.NoError(t, err)

	require.Len(t, related, 1)
	assert.Equal(t, "shipping-your-first-mobile-app", related[0].Slug)
	for _, p := range related {
		assert.NotEqual(t, "react-hooks-deep-dive", p.Slug)
	}
}

func TestRelatedUnknownSlug(t *testing.T) {
	_, _, insight, _, _ := newFixture(t)

	_, err := insight.Related(context.Background(), "nope", 3)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestReadTimeScalesWithContent(t *testing.T) {
	p := model.Post{ContentRichtext: strings.Repeat("a", 2500)}
	assert.Equal(t, 3, p.ReadTime())

	assert.Equal(t, 0, model.Post{}.ReadTime())
}
