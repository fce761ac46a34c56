// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Feed and Article, along with
// their validation rules and domain-specific errors.
package entity

// Default values applied when a source feed omits a field.
const (
	DefaultFeedTitle    = "Untitled Feed"
	DefaultArticleTitle = "Untitled"
)

// Feed represents a subscribed RSS/Atom source.
// The feed URL is the subscription key and is unique across the subscription list.
type Feed struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`

	// ItemCount is the number of articles attributed to this feed in the most
	// recent cycle that fetched it successfully. It goes stale, not to zero,
	// when a refresh fails for this feed.
	ItemCount int `json:"itemCount"`
}
