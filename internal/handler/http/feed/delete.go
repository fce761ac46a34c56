package feed

import (
	"errors"
	"net/http"

	"feeddeck/internal/handler/http/respond"
	"feeddeck/internal/usecase/subscription"
)

// DeleteHandler unsubscribes a feed by its URL (passed as the url query
// parameter: feed URLs contain slashes, so they do not fit a path segment).
type DeleteHandler struct{ Store *subscription.Store }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		respond.Error(w, http.StatusBadRequest, errors.New("url query parameter is required"))
		return
	}

	if err := h.Store.RemoveFeed(r.Context(), url); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
