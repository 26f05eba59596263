// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"sort"
	"time"
)

// MaxReviewTextLen is the maximum length of a review body in bytes.
const MaxReviewTextLen = 500

// LikeSet is a set of user ids that liked a review. It serializes as a
// sorted JSON array so fixture data and API payloads stay deterministic.
type LikeSet map[string]struct{}

// Has reports whether userID is in the set.
func (s LikeSet) Has(userID string) bool {
	_, ok := s[userID]
	return ok
}

// Count returns the number of likes.
func (s LikeSet) Count() int { return len(s) }

// Toggle flips membership of userID and reports whether the id is present
// after the call. Toggling twice restores the original set.
func (s LikeSet) Toggle(userID string) bool {
	if _, ok := s[userID]; ok {
		delete(s, userID)
		return false
	}
	s[userID] = struct{}{}
	return true
}

// Clone returns an independent copy of the set.
func (s LikeSet) Clone() LikeSet {
	out := make(LikeSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// UserIDs returns the members in sorted order.
func (s LikeSet) UserIDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarshalJSON implements json.Marshaler.
func (s LikeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.UserIDs())
}

// UnmarshalJSON implements json.Unmarshaler. Duplicate ids in the input
// collapse to a single membership.
func (s *LikeSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	set := make(LikeSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	*s = set
	return nil
}

// Review represents a student review. Featured ordering is descending by
// like count.
type Review struct {
	ID        int64     `json:"Id"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	Likes     LikeSet   `json:"likes"`
}

// Clone returns a deep copy of the review; the like set is independent.
func (r Review) Clone() Review {
	out := r
	out.Likes = r.Likes.Clone()
	return out
}

// ReviewDraft holds the fields supplied when creating a review.
// The like set starts empty and CreatedAt is assigned by the store.
type ReviewDraft struct {
	Text     string `json:"text" validate:"required,min=1,max=500"`
	AuthorID string `json:"author_id" validate:"required"`
}
