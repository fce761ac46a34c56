// Package article provides HTTP handlers for the merged article timeline.
package article

import (
	"net/http"

	"feeddeck/internal/handler/http/feed"
	"feeddeck/internal/handler/http/respond"
	"feeddeck/internal/usecase/subscription"
)

// ListHandler returns the merged article collection, most recent first.
type ListHandler struct{ Store *subscription.Store }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles := h.Store.Articles()

	out := make([]feed.ItemDTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, feed.ToItemDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

// Register registers article-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, store *subscription.Store) {
	mux.Handle("GET /articles", ListHandler{store})
}
