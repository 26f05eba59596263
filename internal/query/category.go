// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package query

import (
	"strings"

	"github.com/olegiv/academy-go/internal/model"
)

// Insight post categories. There is no stored category field: a post is
// classified on every filter pass by testing its lowercased title,
// excerpt and content against a fixed keyword list per category. The
// classification is deterministic; identical text always lands in the
// same categories.
const (
	CategoryWebDevelopment = "web-development"
	CategoryDataScience    = "data-science"
	CategoryMobile         = "mobile"
	CategoryAI             = "ai"
	CategoryCareer         = "career"
)

var categoryKeywords = map[string][]string{
	CategoryWebDevelopment: {"web", "react", "javascript"},
	CategoryDataScience:    {"data", "analytics", "python"},
	CategoryMobile:         {"mobile", "app", "ios", "android"},
	CategoryAI:             {"ai", "machine learning", "artificial"},
	CategoryCareer:         {"career", "job", "skill"},
}

// Categories returns the known category keys in display order.
func Categories() []string {
	return []string{
		CategoryWebDevelopment,
		CategoryDataScience,
		CategoryMobile,
		CategoryAI,
		CategoryCareer,
	}
}

// MatchesCategory reports whether the post classifies into the category.
// Unknown categories match everything, mirroring the behavior of the
// level filter's All sentinel.
func MatchesCategory(p model.Post, category string) bool {
	keywords, ok := categoryKeywords[category]
	if !ok {
		return true
	}
	haystack := strings.ToLower(p.Title + " " + p.Excerpt + " " + p.ContentRichtext)
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// PostCategory keeps posts classifying into the given category. The All
// sentinel bypasses the filter.
func PostCategory(category string) Predicate[model.Post] {
	if category == All || category == "" {
		return nil
	}
	return func(p model.Post) bool { return MatchesCategory(p, category) }
}
