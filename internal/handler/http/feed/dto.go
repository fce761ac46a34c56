// Package feed provides HTTP handlers for the feed proxy and subscription endpoints.
package feed

import (
	"time"

	"feeddeck/internal/domain/entity"
)

// DTO is the wire representation of a subscribed feed.
type DTO struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	ItemCount   int    `json:"itemCount"`
}

// ItemDTO is the wire representation of a normalized article.
// Field names follow the canonical wire shape consumed by the presentation
// layer; PubDate is ISO-8601.
type ItemDTO struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	PubDate     string  `json:"pubDate"`
	Description string  `json:"description"`
	Author      string  `json:"author"`
	Image       *string `json:"image"`
	GUID        string  `json:"guid"`
	FeedURL     string  `json:"feedUrl,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// FetchResponse is the response body of the fetch-feed proxy endpoint.
type FetchResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Items       []ItemDTO `json:"items"`
}

// ToDTO maps a feed entity onto its wire shape.
func ToDTO(f entity.Feed) DTO {
	return DTO{
		URL:         f.URL,
		Title:       f.Title,
		Description: f.Description,
		Link:        f.Link,
		ItemCount:   f.ItemCount,
	}
}

// ToItemDTO maps an article entity onto its wire shape.
func ToItemDTO(a entity.Article) ItemDTO {
	return ItemDTO{
		Title:       a.Title,
		Link:        a.Link,
		PubDate:     a.PublishedAt.UTC().Format(time.RFC3339),
		Description: a.Description,
		Author:      a.Author,
		Image:       a.Image,
		GUID:        a.GUID,
		FeedURL:     a.FeedURL,
		Source:      a.Source,
	}
}
