package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal counts account registration attempts by outcome
	// (created, duplicate, error).
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gsvblog_registrations_total",
		Help: "Total number of account registration attempts by outcome",
	}, []string{"outcome"})

	// LoginsTotal counts authentication attempts by outcome (success, failure).
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gsvblog_logins_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// PostsCreatedTotal counts created posts.
	PostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gsvblog_posts_created_total",
		Help: "Total number of posts created",
	})

	// PostsDeletedTotal counts deleted posts.
	PostsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gsvblog_posts_deleted_total",
		Help: "Total number of posts deleted",
	})

	// CommentsCreatedTotal counts created comments.
	CommentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gsvblog_comments_created_total",
		Help: "Total number of comments created",
	})

	// LikeTransitionsTotal counts like-state transitions by direction
	// (like, unlike) and outcome (ok, rejected).
	LikeTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gsvblog_like_transitions_total",
		Help: "Total number of like/unlike transitions by direction and outcome",
	}, []string{"direction", "outcome"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gsvblog_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
