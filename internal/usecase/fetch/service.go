package fetch

import (
	"context"
	"encoding/xml"
	"errors"
	"time"

	"github.com/mmcdole/gofeed"

	"feeddeck/internal/domain/entity"
)

// Transport performs the raw network fetch and XML parse of a feed document.
// Implementations live in the infra layer; the use case only sees the parsed
// document or an error.
type Transport interface {
	Fetch(ctx context.Context, url string) (*gofeed.Feed, error)
}

// Service provides the single-feed fetch use case: validate the URL, fetch and
// parse through the transport, normalize, classify failures.
type Service struct {
	Transport Transport

	// Timeout bounds a single fetch. A hanging transport call would otherwise
	// stall a whole refresh barrier indefinitely. Zero disables the bound.
	Timeout time.Duration

	// Now is the clock used for missing-pubDate fallback. Defaults to time.Now.
	Now func() time.Time
}

// FetchFeed retrieves the feed at url and returns its canonical form.
// A syntactically invalid URL fails fast with an invalid-format FetchError
// without any network round trip. Transport and parse failures are classified
// into the FetchError taxonomy.
func (s *Service) FetchFeed(ctx context.Context, url string) (entity.Feed, []entity.Article, error) {
	if err := entity.ValidateURL(url); err != nil {
		return entity.Feed{}, nil, &FetchError{
			Kind:    KindInvalidFormat,
			Message: "invalid feed URL",
			Err:     err,
		}
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	doc, err := s.Transport.Fetch(ctx, url)
	if err != nil {
		return entity.Feed{}, nil, classify(err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	feed, articles := Normalize(doc, url, now())
	return feed, articles, nil
}

// classify maps a raw transport/parse error onto the FetchError taxonomy.
func classify(err error) *FetchError {
	var httpErr gofeed.HTTPError
	if errors.As(err, &httpErr) {
		return &FetchError{
			Kind:    KindNotFound,
			Message: "feed not found or not accessible",
			Err:     err,
		}
	}

	var syntaxErr *xml.SyntaxError
	if errors.Is(err, gofeed.ErrFeedTypeNotDetected) || errors.As(err, &syntaxErr) {
		return &FetchError{
			Kind:    KindInvalidFormat,
			Message: "invalid RSS/Atom feed format",
			Err:     err,
		}
	}

	return &FetchError{
		Kind:    KindUnknown,
		Message: err.Error(),
		Err:     err,
	}
}
