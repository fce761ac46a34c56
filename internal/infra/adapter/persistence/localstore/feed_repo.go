package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"feeddeck/internal/domain/entity"
)

// feedsKey is the single key under which the subscription list is persisted,
// as a JSON array of Feed objects. The persisted ItemCount may be stale
// relative to the next load until a refresh runs.
const feedsKey = "rss_feeds"

// FeedRepo implements repository.FeedRepository on top of a Store.
type FeedRepo struct {
	store *Store
}

// NewFeedRepo creates a FeedRepo backed by the given store.
func NewFeedRepo(store *Store) *FeedRepo {
	return &FeedRepo{store: store}
}

// Load returns the persisted feed list. A missing key yields an empty list;
// an unparseable payload is returned as an error for the caller to recover
// from (the subscription store resets to empty and logs).
func (r *FeedRepo) Load(_ context.Context) ([]entity.Feed, error) {
	data, ok, err := r.store.Get(feedsKey)
	if err != nil {
		return nil, fmt.Errorf("load feeds: %w", err)
	}
	if !ok {
		return []entity.Feed{}, nil
	}

	var feeds []entity.Feed
	if err := json.Unmarshal(data, &feeds); err != nil {
		return nil, fmt.Errorf("parse stored feeds: %w", err)
	}
	if feeds == nil {
		feeds = []entity.Feed{}
	}
	return feeds, nil
}

// Save replaces the persisted feed list wholesale.
func (r *FeedRepo) Save(_ context.Context, feeds []entity.Feed) error {
	if feeds == nil {
		feeds = []entity.Feed{}
	}
	data, err := json.Marshal(feeds)
	if err != nil {
		return fmt.Errorf("encode feeds: %w", err)
	}
	if err := r.store.Set(feedsKey, data); err != nil {
		return fmt.Errorf("save feeds: %w", err)
	}
	return nil
}
