// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"

	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/store"
)

// EventService provides event logging for audit trails.
type EventService struct {
	events store.Events
}

// NewEventService creates an EventService.
func NewEventService(events store.Events) *EventService {
	return &EventService{events: events}
}

// LogEvent creates a new event log entry.
func (s *EventService) LogEvent(ctx context.Context, level, category, message string, userID int64, metadata map[string]any) error {
	_, err := s.events.Append(ctx, model.Event{
		Level:    level,
		Category: category,
		Message:  message,
		UserID:   userID,
		Metadata: metadata,
	})
	return err
}

// LogInfo logs an info-level event.
func (s *EventService) LogInfo(ctx context.Context, category, message string, userID int64, metadata map[string]any) error {
	return s.LogEvent(ctx, model.EventLevelInfo, category, message, userID, metadata)
}

// LogWarning logs a warning-level event.
func (s *EventService) LogWarning(ctx context.Context, category, message string, userID int64, metadata map[string]any) error {
	return s.LogEvent(ctx, model.EventLevelWarning, category, message, userID, metadata)
}

// LogError logs an error-level event.
func (s *EventService) LogError(ctx context.Context, category, message string, userID int64, metadata map[string]any) error {
	return s.LogEvent(ctx, model.EventLevelError, category, message, userID, metadata)
}

// Recent returns the most recent events, newest first.
func (s *EventService) Recent(ctx context.Context, limit int) ([]model.Event, error) {
	return s.events.List(ctx, limit)
}
