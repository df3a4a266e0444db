package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPost struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	fetchCalls := 0
	fetch := func(dest *cachedPost) func() error {
		return func() error {
			fetchCalls++
			dest.ID = 1
			dest.Content = "hello"
			return nil
		}
	}

	var first cachedPost
	require.NoError(t, Aside(ctx, PostKey(1), &first, PostTTL, fetch(&first)))
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, "hello", first.Content)

	// Second read is served from cache without hitting the source.
	var second cachedPost
	require.NoError(t, Aside(ctx, PostKey(1), &second, PostTTL, fetch(&second)))
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, first, second)
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	boom := errors.New("db down")
	var dest cachedPost
	err := Aside(ctx, PostKey(2), &dest, PostTTL, func() error { return boom })
	assert.ErrorIs(t, err, boom)

	// A later successful fetch populates the cache normally.
	err = Aside(ctx, PostKey(2), &dest, PostTTL, func() error {
		dest.ID = 2
		return nil
	})
	require.NoError(t, err)

	found, err := GetJSON(ctx, PostKey(2), &cachedPost{})
	require.NoError(t, err)
	assert.True(t, found)
}

func TestAside_NoClientFallsThrough(t *testing.T) {
	SetClient(nil)

	fetchCalls := 0
	var dest cachedPost
	err := Aside(context.Background(), PostKey(3), &dest, PostTTL, func() error {
		fetchCalls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCalls)
}

func TestInvalidate(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(4), cachedPost{ID: 4}, time.Minute))
	require.True(t, mr.Exists(PostKey(4)))

	InvalidatePost(ctx, 4)
	assert.False(t, mr.Exists(PostKey(4)))
}
