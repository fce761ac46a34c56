package fetch_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"feeddeck/internal/domain/entity"
	"feeddeck/internal/usecase/fetch"
)

var fetchedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNormalize_feedDefaults(t *testing.T) {
	doc := &gofeed.Feed{}

	feed, articles := fetch.Normalize(doc, "https://example.com/rss", fetchedAt)

	if feed.Title != "Untitled Feed" {
		t.Fatalf("want default title, got %q", feed.Title)
	}
	if feed.Link != "https://example.com/rss" {
		t.Fatalf("want link to fall back to subscribed URL, got %q", feed.Link)
	}
	if feed.URL != "https://example.com/rss" {
		t.Fatalf("want URL to be the subscribed URL, got %q", feed.URL)
	}
	if len(articles) != 0 || feed.ItemCount != 0 {
		t.Fatalf("empty document must normalize to zero articles")
	}
}

func TestNormalize_item(t *testing.T) {
	published := time.Date(2024, 5, 30, 8, 0, 0, 0, time.UTC)
	doc := &gofeed.Feed{
		Title: "Example",
		Link:  "https://example.com",
		Items: []*gofeed.Item{
			{
				Title:           "First post",
				Link:            "https://example.com/posts/1",
				Description:     "<p>A <b>short</b> summary</p>",
				GUID:            "post-1",
				PublishedParsed: &published,
				Authors:         []*gofeed.Person{{Name: "Alice"}},
			},
		},
	}

	_, articles := fetch.Normalize(doc, "https://example.com/rss", fetchedAt)

	want := entity.Article{
		Title:       "First post",
		Link:        "https://example.com/posts/1",
		Description: "A short summary",
		Author:      "Alice",
		PublishedAt: published,
		GUID:        "post-1",
		FeedURL:     "https://example.com/rss",
		Source:      "Example",
	}
	if diff := cmp.Diff(want, articles[0]); diff != "" {
		t.Fatalf("article mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_itemDefaults(t *testing.T) {
	doc := &gofeed.Feed{
		Title: "Example",
		Items: []*gofeed.Item{{}},
	}

	_, articles := fetch.Normalize(doc, "https://example.com/rss", fetchedAt)

	a := articles[0]
	if a.Title != "Untitled" {
		t.Fatalf("want default item title, got %q", a.Title)
	}
	if !a.PublishedAt.Equal(fetchedAt) {
		t.Fatalf("want pubDate to fall back to fetch time, got %v", a.PublishedAt)
	}
	if a.GUID == "" {
		t.Fatalf("want random guid fallback, got empty")
	}
	if a.Image != nil {
		t.Fatalf("want nil image, got %v", *a.Image)
	}
	if a.Link != "" || a.Description != "" || a.Author != "" {
		t.Fatalf("missing fields must default to empty strings: %+v", a)
	}
}

func TestNormalize_guidFallsBackToLink(t *testing.T) {
	doc := &gofeed.Feed{
		Items: []*gofeed.Item{{Link: "https://example.com/posts/2"}},
	}

	_, articles := fetch.Normalize(doc, "https://example.com/rss", fetchedAt)

	if articles[0].GUID != "https://example.com/posts/2" {
		t.Fatalf("want guid to fall back to link, got %q", articles[0].GUID)
	}
}

func TestNormalize_descriptionFallsBackToContent(t *testing.T) {
	doc := &gofeed.Feed{
		Items: []*gofeed.Item{{Content: "<p>full content body</p>"}},
	}

	_, articles := fetch.Normalize(doc, "https://example.com/rss", fetchedAt)

	if articles[0].Description != "full content body" {
		t.Fatalf("want description from content, got %q", articles[0].Description)
	}
}

func TestNormalize_imagePriority(t *testing.T) {
	thumbnail := func() ext.Extensions {
		return ext.Extensions{
			"media": {
				"thumbnail": []ext.Extension{
					{Name: "thumbnail", Attrs: map[string]string{"url": "https://cdn.example.com/thumb.jpg"}},
				},
			},
		}
	}
	mediaContent := func() ext.Extensions {
		return ext.Extensions{
			"media": {
				"content": []ext.Extension{
					{Name: "content", Attrs: map[string]string{"url": "https://cdn.example.com/media.jpg"}},
				},
			},
		}
	}

	tests := []struct {
		name string
		item *gofeed.Item
		want string // "" means nil image
	}{
		{
			name: "thumbnail wins over embedded img",
			item: &gofeed.Item{
				Extensions:  thumbnail(),
				Description: `<img src="https://example.com/inline.png">`,
			},
			want: "https://cdn.example.com/thumb.jpg",
		},
		{
			name: "media content wins over enclosure",
			item: &gofeed.Item{
				Extensions: mediaContent(),
				Enclosures: []*gofeed.Enclosure{{URL: "https://example.com/enclosure.jpg"}},
			},
			want: "https://cdn.example.com/media.jpg",
		},
		{
			name: "enclosure wins over embedded img",
			item: &gofeed.Item{
				Enclosures:  []*gofeed.Enclosure{{URL: "https://example.com/enclosure.jpg"}},
				Description: `<img src="https://example.com/inline.png">`,
			},
			want: "https://example.com/enclosure.jpg",
		},
		{
			name: "embedded img in content as last resort",
			item: &gofeed.Item{
				Content: `<p>text</p><img class="hero" src="https://example.com/hero.png" alt="">`,
			},
			want: "https://example.com/hero.png",
		},
		{
			name: "embedded img in description",
			item: &gofeed.Item{
				Description: `<img src="https://example.com/desc.png">`,
			},
			want: "https://example.com/desc.png",
		},
		{
			name: "no candidates",
			item: &gofeed.Item{Description: "<p>just text</p>"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &gofeed.Feed{Items: []*gofeed.Item{tt.item}}
			_, articles := fetch.Normalize(doc, "https://example.com/rss", fetchedAt)

			got := articles[0].Image
			if tt.want == "" {
				if got != nil {
					t.Fatalf("want nil image, got %q", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("want image %q, got nil", tt.want)
			}
			if *got != tt.want {
				t.Fatalf("want image %q, got %q", tt.want, *got)
			}
		})
	}
}
