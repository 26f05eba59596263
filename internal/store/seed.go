// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/olegiv/academy-go/internal/model"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// Seed replaces every collection with the embedded fixture data. It is
// called once at startup and again by the demo reset job, restoring the
// store to its pristine state.
func (m *Memory) Seed() error {
	var programs []model.Program
	if err := loadFixture("fixtures/programs.json", &programs); err != nil {
		return err
	}
	var lectures []model.Lecture
	if err := loadFixture("fixtures/lectures.json", &lectures); err != nil {
		return err
	}
	var posts []model.Post
	if err := loadFixture("fixtures/posts.json", &posts); err != nil {
		return err
	}
	var reviews []model.Review
	if err := loadFixture("fixtures/reviews.json", &reviews); err != nil {
		return err
	}
	var users []model.User
	if err := loadFixture("fixtures/users.json", &users); err != nil {
		return err
	}

	m.Programs.ReplaceAll(programs)
	m.Lectures.ReplaceAll(lectures)
	m.Posts.ReplaceAll(posts)
	m.Reviews.ReplaceAll(reviews)
	m.Users.ReplaceAll(users)
	return nil
}

func loadFixture(name string, v any) error {
	data, err := fixturesFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing fixture %s: %w", name, err)
	}
	return nil
}
