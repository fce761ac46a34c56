package subscription

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"feeddeck/internal/domain/entity"
	"feeddeck/internal/observability/metrics"
	"feeddeck/internal/repository"
	"feeddeck/internal/usecase/refresh"
)

// Fetcher fetches a single feed and returns its canonical form.
type Fetcher interface {
	FetchFeed(ctx context.Context, url string) (entity.Feed, []entity.Article, error)
}

// Refresher runs one refresh cycle over the given feeds.
type Refresher interface {
	RefreshAll(ctx context.Context, feeds []entity.Feed) []refresh.Result
}

// Store owns the subscription list and the merged article collection.
// All mutation goes through its methods under a single mutex, so it is safe
// under real parallelism; the feed list keeps insertion (add) order.
//
// Articles are linked to their feed by FeedURL, not by display title, so
// removing one of two identically-titled feeds never prunes the survivor's
// articles.
type Store struct {
	fetcher   Fetcher
	refresher Refresher
	repo      repository.FeedRepository

	mu       sync.Mutex
	feeds    []entity.Feed
	articles []entity.Article
}

// NewStore creates a Store with the given collaborators.
func NewStore(fetcher Fetcher, refresher Refresher, repo repository.FeedRepository) *Store {
	return &Store{
		fetcher:   fetcher,
		refresher: refresher,
		repo:      repo,
	}
}

// Restore loads the persisted subscription list at process start.
// An unparseable or unreadable payload resets to an empty feed list and logs
// the condition; load failure is never fatal.
func (s *Store) Restore(ctx context.Context) {
	feeds, err := s.repo.Load(ctx)
	if err != nil {
		slog.Warn("failed to restore persisted feeds, starting empty",
			slog.Any("error", err))
		feeds = []entity.Feed{}
	}

	s.mu.Lock()
	s.feeds = feeds
	s.mu.Unlock()

	metrics.UpdateSubscriptionTotals(len(feeds), 0)
	slog.Info("subscription list restored", slog.Int("feeds", len(feeds)))
}

// AddFeed subscribes to the feed at url. It fails with a validation error if
// the URL is empty or already subscribed (checked before any I/O), and with
// the fetcher's classified error when the fetch itself fails. On success the
// new feed and its articles are appended and the feed list is persisted.
func (s *Store) AddFeed(ctx context.Context, url string) (entity.Feed, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return entity.Feed{}, &entity.ValidationError{Field: "url", Message: "URL is required"}
	}

	s.mu.Lock()
	dup := s.findFeed(url) >= 0
	s.mu.Unlock()
	if dup {
		return entity.Feed{}, ErrDuplicateFeed
	}

	feed, articles, err := s.fetcher.FetchFeed(ctx, url)
	if err != nil {
		return entity.Feed{}, err
	}

	s.mu.Lock()
	// Re-check: a concurrent add of the same URL may have won the race.
	if s.findFeed(url) >= 0 {
		s.mu.Unlock()
		return entity.Feed{}, ErrDuplicateFeed
	}
	s.feeds = append(s.feeds, feed)
	s.articles = append(s.articles, articles...)
	nFeeds, nArticles := len(s.feeds), len(s.articles)
	s.persistLocked(ctx)
	s.mu.Unlock()

	metrics.UpdateSubscriptionTotals(nFeeds, nArticles)
	slog.Info("feed added",
		slog.String("url", feed.URL),
		slog.String("title", feed.Title),
		slog.Int("items", feed.ItemCount))

	return feed, nil
}

// RemoveFeed unsubscribes the feed with the given URL and prunes every article
// that no longer belongs to a remaining feed. The updated feed list is
// persisted. Returns ErrFeedNotFound when no feed matches.
func (s *Store) RemoveFeed(ctx context.Context, url string) error {
	s.mu.Lock()

	idx := s.findFeed(url)
	if idx < 0 {
		s.mu.Unlock()
		return ErrFeedNotFound
	}

	s.feeds = append(s.feeds[:idx], s.feeds[idx+1:]...)

	remaining := make(map[string]struct{}, len(s.feeds))
	for _, f := range s.feeds {
		remaining[f.URL] = struct{}{}
	}
	kept := s.articles[:0]
	for _, a := range s.articles {
		if _, ok := remaining[a.FeedURL]; ok {
			kept = append(kept, a)
		}
	}
	s.articles = kept

	nFeeds, nArticles := len(s.feeds), len(s.articles)
	s.persistLocked(ctx)
	s.mu.Unlock()

	metrics.UpdateSubscriptionTotals(nFeeds, nArticles)
	slog.Info("feed removed", slog.String("url", url))
	return nil
}

// RefreshAll runs one refresh cycle over every subscribed feed and replaces
// the article collection wholesale with the merged result. Succeeded feeds get
// this cycle's item count; failed feeds keep their stale count and stay
// subscribed. Concurrent refreshes are not mutually excluded: the last cycle
// to commit wins.
func (s *Store) RefreshAll(ctx context.Context) {
	s.mu.Lock()
	snapshot := make([]entity.Feed, len(s.feeds))
	copy(snapshot, s.feeds)
	s.mu.Unlock()

	if len(snapshot) == 0 {
		return
	}

	results := s.refresher.RefreshAll(ctx, snapshot)

	s.mu.Lock()
	// Feeds may have been removed while the cycle was in flight; commit only
	// what is still subscribed so removal semantics hold.
	current := make(map[string]int, len(s.feeds))
	for i, f := range s.feeds {
		current[f.URL] = i
	}

	live := make([]refresh.Result, 0, len(results))
	for _, res := range results {
		i, subscribed := current[res.URL]
		if !subscribed {
			continue
		}
		if res.Err == nil {
			s.feeds[i].ItemCount = len(res.Articles)
		}
		live = append(live, res)
	}
	s.articles = refresh.Merge(live)

	nFeeds, nArticles := len(s.feeds), len(s.articles)
	s.persistLocked(ctx)
	s.mu.Unlock()

	metrics.UpdateSubscriptionTotals(nFeeds, nArticles)
}

// Feeds returns a copy of the subscription list in insertion order.
func (s *Store) Feeds() []entity.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Feed, len(s.feeds))
	copy(out, s.feeds)
	return out
}

// Articles returns the merged article collection sorted by descending
// publication time, most recent first. Ordering is computed at read time;
// the stored collection is an unordered bag. The sort is stable so articles
// with equal timestamps keep their merge order.
func (s *Store) Articles() []entity.Article {
	s.mu.Lock()
	out := make([]entity.Article, len(s.articles))
	copy(out, s.articles)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

// findFeed returns the index of the feed with the given URL, -1 when absent.
// Callers must hold s.mu.
func (s *Store) findFeed(url string) int {
	for i, f := range s.feeds {
		if f.URL == url {
			return i
		}
	}
	return -1
}

// persistLocked serializes the current feed list to the repository.
// Persistence failure is logged, not surfaced: the in-memory state stays
// authoritative and the next successful save catches up. Callers must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) {
	feeds := make([]entity.Feed, len(s.feeds))
	copy(feeds, s.feeds)
	if err := s.repo.Save(ctx, feeds); err != nil {
		slog.Error("failed to persist feed list", slog.Any("error", err))
	}
}
