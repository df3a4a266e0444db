// Package events publishes domain events on a Redis pub/sub channel so that
// downstream consumers (feed fan-out, notifications) can react without the
// API server knowing about them.
package events

import (
	"context"
	"encoding/json"
	"time"

	"ripple/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Event types published by the API server.
const (
	PostCreated    = "post.created"
	PostDeleted    = "post.deleted"
	CommentCreated = "comment.created"
	PostLiked      = "post.liked"
	PostUnliked    = "post.unliked"
	UserFollowed   = "user.followed"
	UserUnfollowed = "user.unfollowed"
)

// Event is the envelope for every published domain event.
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// Publisher publishes domain events into a Redis channel.
// A Publisher with a nil client is a no-op, so callers never need to guard.
type Publisher struct {
	rdb     *redis.Client
	channel string
}

// NewPublisher creates a Publisher for the given channel.
func NewPublisher(rdb *redis.Client, channel string) *Publisher {
	return &Publisher{rdb: rdb, channel: channel}
}

// Publish sends a single event. Failures are logged and swallowed: event
// delivery is best-effort and must never fail the originating request.
func (p *Publisher) Publish(ctx context.Context, eventType string, data map[string]any) {
	if p == nil || p.rdb == nil {
		return
	}

	payload, err := json.Marshal(Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to marshal event", "type", eventType, "error", err.Error())
		return
	}

	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to publish event", "type", eventType, "error", err.Error())
	}
}

// Subscribe starts a goroutine delivering every event on the channel to
// onEvent until ctx is cancelled. Used by consumers and tests.
func (p *Publisher) Subscribe(ctx context.Context, onEvent func(Event)) error {
	if p == nil || p.rdb == nil {
		return nil
	}

	sub := p.rdb.Subscribe(ctx, p.channel)
	// Wait for the subscription to be established before returning.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return err
	}
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					middleware.Logger.Warn("dropping malformed event", "error", err.Error())
					continue
				}
				onEvent(ev)
			}
		}
	}()

	return nil
}
