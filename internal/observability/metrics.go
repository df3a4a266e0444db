package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PostsCreated counts successfully created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_posts_created_total",
		Help: "Total number of posts created",
	})

	// CommentsCreated counts successfully created comments.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_comments_created_total",
		Help: "Total number of comments created",
	})

	// LikeToggles counts like toggles by resulting state (liked/unliked).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_like_toggles_total",
		Help: "Total number of like toggles by resulting state",
	}, []string{"state"})

	// FollowToggles counts follow toggles by resulting state (following/unfollowed).
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_follow_toggles_total",
		Help: "Total number of follow toggles by resulting state",
	}, []string{"state"})

	// CacheHits counts cache-aside outcomes by key prefix and result (hit/miss).
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_cache_requests_total",
		Help: "Total cache-aside lookups by key prefix and result",
	}, []string{"prefix", "result"})
)
