package entity_test

import (
	"errors"
	"strings"
	"testing"

	"feeddeck/internal/domain/entity"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid http", "http://example.com/rss", false},
		{"valid https", "https://example.com/feed.xml", false},
		{"valid with query", "https://example.com/rss?format=xml", false},
		{"empty", "", true},
		{"no scheme", "example.com/rss", true},
		{"ftp scheme", "ftp://example.com/rss", true},
		{"scheme only", "https://", true},
		{"not a url", "://missing-scheme", true},
		{"too long", "https://example.com/" + strings.Repeat("a", 2048), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL_returnsValidationError(t *testing.T) {
	err := entity.ValidateURL("")
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want *ValidationError, got %T", err)
	}
	if vErr.Field != "url" {
		t.Fatalf("want field 'url', got %q", vErr.Field)
	}
}
