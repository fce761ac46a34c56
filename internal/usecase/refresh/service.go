// Package refresh implements the aggregation engine: one refresh cycle fetches
// every subscribed feed concurrently and collects per-feed outcomes.
package refresh

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"feeddeck/internal/domain/entity"
	"feeddeck/internal/observability/metrics"
	"feeddeck/internal/usecase/fetch"
)

// Fetcher fetches a single feed and returns its canonical form.
type Fetcher interface {
	FetchFeed(ctx context.Context, url string) (entity.Feed, []entity.Article, error)
}

// Result is the outcome of one feed's fetch within a refresh cycle.
// Exactly one of Err or (Feed, Articles) is meaningful.
type Result struct {
	URL      string
	Feed     entity.Feed
	Articles []entity.Article
	Err      error
}

// Service orchestrates concurrent fetches across the subscription list.
type Service struct {
	Fetcher Fetcher
}

// RefreshAll fetches all given feeds concurrently, with no cap on fan-out, and
// returns one Result per feed in subscription order. Each feed's outcome is
// independent: a failing feed is logged and contributes an error Result, but
// never aborts the other in-flight fetches. The join is a plain fan-in barrier
// with no early exit; per-fetch timeouts are the fetcher's concern.
//
// Goroutines write only their own indexed slot, so no further synchronization
// is needed at the join point.
func (s *Service) RefreshAll(ctx context.Context, feeds []entity.Feed) []Result {
	logger := slog.Default()
	start := time.Now()

	results := make([]Result, len(feeds))

	var g errgroup.Group
	for i, f := range feeds {
		g.Go(func() error {
			feed, articles, err := s.Fetcher.FetchFeed(ctx, f.URL)
			results[i] = Result{URL: f.URL, Feed: feed, Articles: articles, Err: err}
			return nil
		})
	}
	// Goroutines never return errors; Wait is purely the fan-in barrier.
	_ = g.Wait()

	for _, res := range results {
		metrics.RecordFeedFetch(res.Err == nil)
		if res.Err != nil {
			var fetchErr *fetch.FetchError
			if errors.As(res.Err, &fetchErr) {
				metrics.RecordFetchError(string(fetchErr.Kind))
			}
			logger.Warn("feed refresh failed, keeping previous state",
				slog.String("url", res.URL),
				slog.Any("error", res.Err))
		}
	}

	duration := time.Since(start)
	metrics.RecordRefreshCycle(duration)
	logger.Info("refresh cycle completed",
		slog.Int("feeds", len(feeds)),
		slog.Int("failed", countFailed(results)),
		slog.Duration("duration", duration))

	return results
}

// Merge concatenates the articles of all successful results in subscription
// order. Failed feeds contribute nothing to the merged collection.
func Merge(results []Result) []entity.Article {
	var merged []entity.Article
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		merged = append(merged, res.Articles...)
	}
	return merged
}

func countFailed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
