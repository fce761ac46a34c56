// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track feed aggregation operations
var (
	// FeedsSubscribed tracks the current number of subscribed feeds
	FeedsSubscribed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feeds_subscribed",
			Help: "Current number of subscribed feeds",
		},
	)

	// ArticlesAggregated tracks the size of the merged article collection
	ArticlesAggregated = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_aggregated",
			Help: "Number of articles in the merged collection",
		},
	)

	// FeedFetchesTotal counts feed fetch attempts by outcome
	FeedFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_fetches_total",
			Help: "Total number of feed fetch attempts",
		},
		[]string{"outcome"},
	)

	// FeedFetchErrors counts fetch failures by error kind
	FeedFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_fetch_errors_total",
			Help: "Total number of feed fetch errors",
		},
		[]string{"kind"},
	)

	// RefreshDuration measures the duration of a full refresh cycle
	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "refresh_cycle_duration_seconds",
			Help:    "Time taken for a full refresh cycle across all feeds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)
)
