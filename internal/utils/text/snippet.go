// Package text provides utilities for text processing.
// This package includes reusable functions for turning feed HTML fragments
// into plain-text snippets suitable for display.
package text

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Plain strips HTML markup from the given fragment and collapses whitespace,
// returning the readable text content. Feed descriptions arrive as HTML more
// often than not; the snippet shown to users should never contain tags.
//
// If the fragment cannot be parsed as HTML, the trimmed input is returned as-is.
func Plain(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
