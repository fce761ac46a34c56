// Package subscription provides the use cases for managing the subscription
// list and the merged article collection derived from it.
package subscription

import (
	"errors"

	"feeddeck/internal/domain/entity"
)

// Sentinel errors for subscription use case operations.
var (
	// ErrDuplicateFeed indicates that a feed with the same URL is already
	// subscribed. Matching is a case-sensitive exact string comparison.
	// A duplicate URL is a validation failure of the url field, so the
	// sentinel is a ValidationError and matches both errors.Is and errors.As.
	ErrDuplicateFeed error = &entity.ValidationError{
		Field:   "url",
		Message: "feed with this URL already exists",
	}

	// ErrFeedNotFound indicates that no subscribed feed has the given URL.
	ErrFeedNotFound = errors.New("feed not found")
)
