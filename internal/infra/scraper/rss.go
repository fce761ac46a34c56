// Package scraper provides the transport implementation for fetching RSS/Atom feeds.
// It uses the gofeed library to download and parse feed content with reliability patterns.
package scraper

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"feeddeck/internal/resilience/circuitbreaker"
	"feeddeck/internal/resilience/retry"
)

const userAgent = "feeddeck/1.0"

// RSSFetcher implements the fetch.Transport interface using the gofeed library.
// It includes circuit breaker and retry logic for improved reliability.
type RSSFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// NewRSSFetcher creates a new RSSFetcher with the given HTTP client.
// It automatically configures circuit breaker and retry logic.
// Pass nil to use a default client with a 30 second timeout.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &RSSFetcher{
		client:         client,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FeedFetchConfig(),
	}
}

// Fetch retrieves and parses an RSS/Atom feed from the given URL.
// It uses circuit breaker and retry logic for improved reliability.
// Returns the parsed feed document; classification of failures is the caller's
// concern, so the raw gofeed error is passed through.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	var doc *gofeed.Feed

	retryErr := retry.WithBackoff(ctx, f.retryConfig, func() error {
		cbResult, err := f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, feedURL)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("service", "feed-fetch"),
					slog.String("url", feedURL),
					slog.String("state", f.circuitBreaker.State().String()))
			}
			return err
		}

		doc = cbResult.(*gofeed.Feed)
		return nil
	})

	if retryErr != nil {
		return nil, retryErr
	}

	return doc, nil
}

// doFetch performs the actual feed fetch without retry or circuit breaker.
func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = f.client

	return fp.ParseURLWithContext(feedURL, ctx)
}
