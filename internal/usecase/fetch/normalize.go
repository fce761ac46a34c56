package fetch

import (
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"feeddeck/internal/domain/entity"
	"feeddeck/internal/utils/text"
)

// Normalize converts a parsed feed document into the canonical Feed plus its
// ordered articles. It never fails: every missing field degrades to a
// documented default. The sourceURL is the subscribed URL and becomes both the
// feed's identity and the fallback for a missing channel link.
func Normalize(doc *gofeed.Feed, sourceURL string, now time.Time) (entity.Feed, []entity.Article) {
	feed := entity.Feed{
		URL:         sourceURL,
		Title:       doc.Title,
		Description: doc.Description,
		Link:        doc.Link,
	}
	if feed.Title == "" {
		feed.Title = entity.DefaultFeedTitle
	}
	if feed.Link == "" {
		feed.Link = sourceURL
	}

	articles := make([]entity.Article, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item == nil {
			continue
		}
		articles = append(articles, normalizeItem(item, feed, now))
	}
	feed.ItemCount = len(articles)

	return feed, articles
}

// normalizeItem maps a single feed item onto the canonical Article shape.
func normalizeItem(item *gofeed.Item, feed entity.Feed, now time.Time) entity.Article {
	article := entity.Article{
		Title:       item.Title,
		Link:        item.Link,
		Description: description(item),
		Author:      author(item),
		PublishedAt: publishedAt(item, now),
		Image:       extractImage(item),
		GUID:        item.GUID,
		FeedURL:     feed.URL,
		Source:      feed.Title,
	}

	if article.Title == "" {
		article.Title = entity.DefaultArticleTitle
	}
	if article.GUID == "" {
		article.GUID = item.Link
	}
	if article.GUID == "" {
		// No stable token anywhere in the item; a random one at least keeps
		// the article addressable for the lifetime of this cycle.
		article.GUID = uuid.NewString()
	}

	return article
}

// description picks the first non-empty of the item's description and content,
// stripped to a plain-text snippet.
func description(item *gofeed.Item) string {
	if s := text.Plain(item.Description); s != "" {
		return s
	}
	return text.Plain(item.Content)
}

// author returns the first author name the parser surfaced, "" when absent.
func author(item *gofeed.Item) string {
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	if item.Author != nil {
		return item.Author.Name
	}
	return ""
}

// publishedAt returns the item's publication time, falling back to the update
// time and finally to the fetch time when the source provides neither.
func publishedAt(item *gofeed.Item, now time.Time) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return now
}
