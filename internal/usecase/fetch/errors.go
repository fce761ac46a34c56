// Package fetch provides the use case for fetching a single RSS/Atom feed
// and normalizing it into the canonical Feed/Article shape.
package fetch

import "fmt"

// ErrorKind classifies feed fetch failures for the caller.
type ErrorKind string

const (
	// KindNotFound indicates the remote returned a non-success status code.
	KindNotFound ErrorKind = "not_found"

	// KindInvalidFormat indicates the document is not a well-formed RSS/Atom
	// feed, or the URL itself was syntactically invalid.
	KindInvalidFormat ErrorKind = "invalid_format"

	// KindUnknown covers any other transport or parse failure. The underlying
	// message is passed through for diagnostics.
	KindUnknown ErrorKind = "unknown"
)

// FetchError is the classified failure returned by the feed fetcher.
type FetchError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error returns a formatted error message, implementing the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("feed fetch failed (%s): %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *FetchError) Unwrap() error {
	return e.Err
}
