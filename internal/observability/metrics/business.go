package metrics

import "time"

// RecordFeedFetch records the outcome of a single feed fetch attempt.
// Outcome should be "success" or "failure".
func RecordFeedFetch(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	FeedFetchesTotal.WithLabelValues(outcome).Inc()
}

// RecordFetchError records a fetch failure by its classified kind.
func RecordFetchError(kind string) {
	FeedFetchErrors.WithLabelValues(kind).Inc()
}

// RecordRefreshCycle records the duration of a full refresh cycle.
func RecordRefreshCycle(duration time.Duration) {
	RefreshDuration.Observe(duration.Seconds())
}

// UpdateSubscriptionTotals updates the feed and article gauges after a mutation.
func UpdateSubscriptionTotals(feeds, articles int) {
	FeedsSubscribed.Set(float64(feeds))
	ArticlesAggregated.Set(float64(articles))
}
