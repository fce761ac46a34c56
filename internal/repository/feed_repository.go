// Package repository defines persistence interfaces consumed by the use case layer.
package repository

import (
	"context"

	"feeddeck/internal/domain/entity"
)

// FeedRepository persists the subscription list. Only feeds are persisted;
// articles are always refetched, never stored.
type FeedRepository interface {
	// Load returns the previously persisted feed list. A missing store yields
	// an empty list, not an error.
	Load(ctx context.Context) ([]entity.Feed, error)

	// Save replaces the persisted feed list wholesale.
	Save(ctx context.Context, feeds []entity.Feed) error
}
