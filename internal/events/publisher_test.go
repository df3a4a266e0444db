package events

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	pub := NewPublisher(rdb, "ripple:events")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Event, 1)
	require.NoError(t, pub.Subscribe(ctx, func(ev Event) {
		received <- ev
	}))

	pub.Publish(ctx, PostLiked, map[string]any{"post_id": float64(7), "user_id": float64(2)})

	select {
	case ev := <-received:
		assert.Equal(t, PostLiked, ev.Type)
		assert.Equal(t, float64(7), ev.Data["post_id"])
		assert.False(t, ev.OccurredAt.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestPublisher_NilClientIsNoop(t *testing.T) {
	var pub *Publisher
	pub.Publish(context.Background(), PostCreated, nil)

	pub = NewPublisher(nil, "ripple:events")
	pub.Publish(context.Background(), PostCreated, nil)
	assert.NoError(t, pub.Subscribe(context.Background(), func(Event) {}))
}
