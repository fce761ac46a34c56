package feed

import (
	"errors"
	"net/http"

	"feeddeck/internal/domain/entity"
	"feeddeck/internal/handler/http/respond"
	"feeddeck/internal/usecase/fetch"
	"feeddeck/internal/usecase/subscription"
)

// writeError maps use case errors onto the wire protocol's status codes:
// validation problems are 400, an unreachable feed is 404, anything
// unclassified is 500 with a details field for diagnostics.
func writeError(w http.ResponseWriter, err error) {
	// ValidationError covers both malformed input and a duplicate URL.
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	if errors.Is(err, subscription.ErrFeedNotFound) {
		respond.Error(w, http.StatusNotFound, err)
		return
	}

	var fetchErr *fetch.FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case fetch.KindNotFound:
			respond.Error(w, http.StatusNotFound, errors.New(fetchErr.Message))
		case fetch.KindInvalidFormat:
			respond.Error(w, http.StatusBadRequest, errors.New(fetchErr.Message))
		default:
			respond.ErrorWithDetails(w, http.StatusInternalServerError,
				"failed to fetch or parse RSS feed", fetchErr.Message)
		}
		return
	}

	respond.SafeError(w, http.StatusInternalServerError, err)
}
