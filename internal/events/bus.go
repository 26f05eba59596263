// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package events carries entity change notifications between the service
// layer and in-process consumers over a Watermill gochannel pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicEntityChanged is the single topic all change notifications use.
const TopicEntityChanged = "entity.changed"

// Entity kinds carried in change notifications.
const (
	KindProgram = "program"
	KindLecture = "lecture"
	KindPost    = "post"
	KindReview  = "review"
	KindUser    = "user"
)

// Operations carried in change notifications.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
	OpLiked   = "liked"
)

// EntityChanged describes a single mutation of a stored entity.
type EntityChanged struct {
	Kind       string    `json:"kind"`
	Op         string    `json:"op"`
	ID         int64     `json:"id"`
	Slug       string    `json:"slug,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Bus is an in-process publish/subscribe channel for entity changes.
type Bus struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

// NewBus creates a bus backed by a buffered gochannel pub/sub.
func NewBus(logger *slog.Logger) *Bus {
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, watermill.NewSlogLogger(logger))

	return &Bus{pubSub: pubSub, logger: logger}
}

// Publish sends a change notification. The occurred-at timestamp is
// stamped here if the caller left it zero.
func (b *Bus) Publish(ev EntityChanged) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal entity change: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubSub.Publish(TopicEntityChanged, msg); err != nil {
		return fmt.Errorf("publish entity change: %w", err)
	}
	return nil
}

// Changes subscribes to entity change notifications. The returned channel
// closes when ctx is canceled or the bus is closed. Malformed payloads
// are logged and skipped.
func (b *Bus) Changes(ctx context.Context) (<-chan EntityChanged, error) {
	msgs, err := b.pubSub.Subscribe(ctx, TopicEntityChanged)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", TopicEntityChanged, err)
	}

	out := make(chan EntityChanged)
	go func() {
		defer close(out)
		for msg := range msgs {
			var ev EntityChanged
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				b.logger.Warn("skipping malformed entity change", "error", err)
				msg.Ack()
				continue
			}
			select {
			case out <- ev:
				msg.Ack()
			case <-ctx.Done():
				msg.Nack()
				return
			}
		}
	}()
	return out, nil
}

// Close shuts the underlying pub/sub down, closing all subscriptions.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}
