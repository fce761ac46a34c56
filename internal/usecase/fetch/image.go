package fetch

import (
	"regexp"

	"github.com/mmcdole/gofeed"
)

// imgTagPattern matches the src attribute of the first <img> tag in an HTML
// fragment. It is a deliberate best-effort scrape: it can pick up unrelated
// inline images (tracking pixels, avatars) and that imprecision is accepted.
var imgTagPattern = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)

// extractImage resolves an item's thumbnail URL by a priority chain.
// Explicit media metadata is trusted over embedded markup, first match wins:
//
//  1. media:thumbnail extension with a url attribute
//  2. media:content extension with a url attribute
//  3. enclosure with a URL
//  4. first <img src="..."> in the item content or description
//
// Returns nil when no candidate is found.
func extractImage(item *gofeed.Item) *string {
	if url := mediaExtensionURL(item, "thumbnail"); url != "" {
		return &url
	}

	if url := mediaExtensionURL(item, "content"); url != "" {
		return &url
	}

	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			url := enc.URL
			return &url
		}
	}

	if url := scrapeImgTag(item.Content); url != "" {
		return &url
	}
	if url := scrapeImgTag(item.Description); url != "" {
		return &url
	}

	return nil
}

// mediaExtensionURL returns the url attribute of the first media:<name>
// extension element on the item, or "" when absent.
func mediaExtensionURL(item *gofeed.Item, name string) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, ext := range media[name] {
		if url := ext.Attrs["url"]; url != "" {
			return url
		}
	}
	return ""
}

// scrapeImgTag returns the src of the first <img> tag in the fragment, or "".
func scrapeImgTag(fragment string) string {
	if fragment == "" {
		return ""
	}
	m := imgTagPattern.FindStringSubmatch(fragment)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
