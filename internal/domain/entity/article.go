package entity

import "time"

// Article represents a single normalized item originating from one Feed.
// It is the canonical shape independent of source feed format quirks: every
// missing field degrades to a documented default rather than an error.
type Article struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"pubDate"`

	// Image is the resolved thumbnail URL, nil when no candidate was found.
	Image *string `json:"image"`

	// GUID is a best-effort unique token: source guid, else link, else random.
	GUID string `json:"guid"`

	// FeedURL is the URL of the owning feed. Articles are pruned by this key
	// when a feed is removed, so two feeds sharing a display title never
	// orphan each other's articles.
	FeedURL string `json:"feedUrl"`

	// Source is the owning feed's title at fetch time, denormalized for display.
	Source string `json:"source"`
}
