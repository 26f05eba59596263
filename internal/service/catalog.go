// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/olegiv/academy-go/internal/auth"
	"github.com/olegiv/academy-go/internal/events"
	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/query"
	"github.com/olegiv/academy-go/internal/store"
	"github.com/olegiv/academy-go/internal/validate"
)

// CatalogService manages programs and lectures and assembles the
// composite home and program detail views.
type CatalogService struct {
	programs store.Programs
	lectures store.Lectures
	insight  *InsightService
	reviews  *ReviewService
	validate *validator.Validate
	bus      *events.Bus
	logger   *slog.Logger
}

// NewCatalogService creates a CatalogService. The insight and review
// services are only needed for LoadHome and may be nil in tests that do
// not touch it.
func NewCatalogService(
	programs store.Programs,
	lectures store.Lectures,
	insight *InsightService,
	reviews *ReviewService,
	v *validator.Validate,
	bus *events.Bus,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		programs: programs,
		lectures: lectures,
		insight:  insight,
		reviews:  reviews,
		validate: v,
		bus:      bus,
		logger:   logger,
	}
}

// ListPrograms returns programs matching the free-text search and the
// common-course filter. Empty or "all" values bypass their filter.
func (s *CatalogService) ListPrograms(ctx context.Context, search, commonKind string) ([]model.Program, error) {
	programs, err := s.programs.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(programs,
		query.ProgramSearch(search),
		query.ProgramCommonCourse(commonKind),
	), nil
}

// GetProgram returns one program by slug.
func (s *CatalogService) GetProgram(ctx context.Context, slug string) (model.Program, error) {
	return s.programs.GetBySlug(ctx, slug)
}

// CreateProgram validates the draft and creates the program.
func (s *CatalogService) CreateProgram(ctx context.Context, draft model.ProgramDraft) (model.Program, error) {
	if err := validate.Struct(s.validate, draft); err != nil {
		return model.Program{}, err
	}

	p, err := s.programs.Create(ctx, draft)
	if err != nil {
		return model.Program{}, err
	}
	publishChange(s.bus, s.logger, events.KindProgram, events.OpCreated, p.ID, p.Slug)
	return p, nil
}

// UpdateProgram validates and applies a partial update.
func (s *CatalogService) UpdateProgram(ctx context.Context, id int64, patch model.ProgramPatch) (model.Program, error) {
	if err := validate.Struct(s.validate, patch); err != nil {
		return model.Program{}, err
	}

	p, err := s.programs.Update(ctx, id, patch)
	if err != nil {
		return model.Program{}, err
	}
	publishChange(s.bus, s.logger, events.KindProgram, events.OpUpdated, p.ID, p.Slug)
	return p, nil
}

// DeleteProgram removes the program. Its lectures stay in place and keep
// referencing the dead slug.
func (s *CatalogService) DeleteProgram(ctx context.Context, id int64) error {
	p, err := s.programs.Delete(ctx, id)
	if err != nil {
		return err
	}
	publishChange(s.bus, s.logger, events.KindProgram, events.OpDeleted, p.ID, p.Slug)
	return nil
}

// LectureFilter selects lectures in ListLectures. Zero values and the
// "all" sentinel bypass the corresponding filter.
type LectureFilter struct {
	Search      string
	Level       string
	ProgramSlug string
}

// ListLectures returns lectures matching the filter, in store order.
func (s *CatalogService) ListLectures(ctx context.Context, f LectureFilter) ([]model.Lecture, error) {
	lectures, err := s.lectures.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(lectures,
		query.LectureSearch(f.Search),
		query.LectureLevel(f.Level),
		query.LectureProgram(f.ProgramSlug),
	), nil
}

// GetLecture returns one lecture by id.
func (s *CatalogService) GetLecture(ctx context.Context, id int64) (model.Lecture, error) {
	return s.lectures.GetByID(ctx, id)
}

// CreateLecture validates the draft and creates the lecture.
func (s *CatalogService) CreateLecture(ctx context.Context, draft model.LectureDraft) (model.Lecture, error) {
	if err := validate.Struct(s.validate, draft); err != nil {
		return model.Lecture{}, err
	}

	l, err := s.lectures.Create(ctx, draft)
	if err != nil {
		return model.Lecture{}, err
	}
	publishChange(s.bus, s.logger, events.KindLecture, events.OpCreated, l.ID, l.ProgramSlug)
	return l, nil
}

// UpdateLecture validates and applies a partial update.
func (s *CatalogService) UpdateLecture(ctx context.Context, id int64, patch model.LecturePatch) (model.Lecture, error) {
	if err := validate.Struct(s.validate, patch); err != nil {
		return model.Lecture{}, err
	}

	l, err := s.lectures.Update(ctx, id, patch)
	if err != nil {
		return model.Lecture{}, err
	}
	publishChange(s.bus, s.logger, events.KindLecture, events.OpUpdated, l.ID, l.ProgramSlug)
	return l, nil
}

// DeleteLecture removes the lecture.
func (s *CatalogService) DeleteLecture(ctx context.Context, id int64) error {
	l, err := s.lectures.Delete(ctx, id)
	if err != nil {
		return err
	}
	publishChange(s.bus, s.logger, events.KindLecture, events.OpDeleted, l.ID, l.ProgramSlug)
	return nil
}

// ProgramDetail is the composite program page: the program, its lectures
// in sort order, and the same lectures partitioned by the viewer's access.
type ProgramDetail struct {
	Program    model.Program
	Lectures   []model.Lecture
	Accessible []model.Lecture
	Locked     []model.Lecture
}

// LoadProgramDetail fetches the program and its lectures concurrently and
// partitions the lectures by the viewer's access level. A nil user is an
// anonymous visitor.
func (s *CatalogService) LoadProgramDetail(ctx context.Context, slug string, u *model.User) (ProgramDetail, error) {
	var (
		program  model.Program
		lectures []model.Lecture
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		program, err = s.programs.GetBySlug(ctx, slug)
		return err
	})
	g.Go(func() error {
		var err error
		lectures, err = s.lectures.ListByProgramSlug(ctx, slug)
		return err
	})
	if err := g.Wait(); err != nil {
		return ProgramDetail{}, err
	}

	accessible, locked := PartitionLectures(lectures, u)
	return ProgramDetail{
		Program:    program,
		Lectures:   lectures,
		Accessible: accessible,
		Locked:     locked,
	}, nil
}

// PartitionLectures splits lectures into those the user may watch and
// those gated behind a higher tier, preserving order within each group.
func PartitionLectures(lectures []model.Lecture, u *model.User) (accessible, locked []model.Lecture) {
	for _, l := range lectures {
		if auth.CanAccessLevel(u, l.Level) {
			accessible = append(accessible, l)
		} else {
			locked = append(locked, l)
		}
	}
	return accessible, locked
}

// Home is the composite landing page payload.
type Home struct {
	Programs        []model.Program
	FeaturedPosts   []model.Post
	FeaturedReviews []model.Review
}

// LoadHome fetches programs, featured posts and featured reviews
// concurrently.
func (s *CatalogService) LoadHome(ctx context.Context) (Home, error) {
	var home Home

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		home.Programs, err = s.programs.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		home.FeaturedPosts, err = s.insight.Featured(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		home.FeaturedReviews, err = s.reviews.Featured(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Home{}, err
	}
	return home, nil
}
