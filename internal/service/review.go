// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/olegiv/academy-go/internal/cache"
	"github.com/olegiv/academy-go/internal/events"
	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/store"
	"github.com/olegiv/academy-go/internal/validate"
)

// ErrAnonymousLike is returned when a like toggle arrives without a user id.
var ErrAnonymousLike = errors.New("liking requires a signed-in user")

const featuredReviewsPrefix = "featured:reviews:"

// ReviewService manages student reviews and their like toggles.
type ReviewService struct {
	reviews  store.Reviews
	validate *validator.Validate
	cache    *cache.Cache
	featured cache.Typed[[]model.Review]
	limit    int
	bus      *events.Bus
	logger   *slog.Logger
}

// NewReviewService creates a ReviewService. featuredLimit caps the
// featured list; values below one fall back to the default.
func NewReviewService(
	reviews store.Reviews,
	v *validator.Validate,
	c *cache.Cache,
	featuredLimit int,
	bus *events.Bus,
	logger *slog.Logger,
) *ReviewService {
	if featuredLimit < 1 {
		featuredLimit = store.DefaultFeaturedReviews
	}
	return &ReviewService{
		reviews:  reviews,
		validate: v,
		cache:    c,
		featured: cache.NewTyped[[]model.Review](c),
		limit:    featuredLimit,
		bus:      bus,
		logger:   logger,
	}
}

// ListReviews returns all reviews in store order.
func (s *ReviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviews.List(ctx)
}

// GetReview returns one review by id.
func (s *ReviewService) GetReview(ctx context.Context, id int64) (model.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

// Featured returns the most liked reviews, served from cache when warm.
func (s *ReviewService) Featured(ctx context.Context) ([]model.Review, error) {
	key := fmt.Sprintf("%s%d", featuredReviewsPrefix, s.limit)
	return s.featured.GetOrSet(key, func() ([]model.Review, error) {
		return s.reviews.Featured(ctx, s.limit)
	})
}

// CreateReview validates the draft and creates the review with an empty
// like set.
func (s *ReviewService) CreateReview(ctx context.Context, draft model.ReviewDraft) (model.Review, error) {
	if err := validate.Struct(s.validate, draft); err != nil {
		return model.Review{}, err
	}

	r, err := s.reviews.Create(ctx, draft)
	if err != nil {
		return model.Review{}, err
	}

	s.invalidateFeatured()
	publishChange(s.bus, s.logger, events.KindReview, events.OpCreated, r.ID, "")
	return r, nil
}

// ToggleLike flips the user's like on the review and returns the updated
// review. Toggling twice restores the original state.
func (s *ReviewService) ToggleLike(ctx context.Context, reviewID int64, userID string) (model.Review, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Review{}, ErrAnonymousLike
	}

	r, err := s.reviews.ToggleLike(ctx, reviewID, userID)
	if err != nil {
		return model.Review{}, err
	}

	// Like counts drive the featured ordering.
	s.invalidateFeatured()
	publishChange(s.bus, s.logger, events.KindReview, events.OpLiked, r.ID, "")
	return r, nil
}

// DeleteReview removes the review.
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	r, err := s.reviews.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.invalidateFeatured()
	publishChange(s.bus, s.logger, events.KindReview, events.OpDeleted, r.ID, "")
	return nil
}

func (s *ReviewService) invalidateFeatured() {
	s.cache.DeletePrefix(featuredReviewsPrefix)
}
