package feed

import (
	"encoding/json"
	"errors"
	"net/http"

	"feeddeck/internal/handler/http/respond"
	"feeddeck/internal/usecase/fetch"
)

// FetchHandler is the stateless feed proxy: it fetches and normalizes a single
// feed without touching the subscription list. The presentation layer uses it
// to preview a feed before subscribing.
type FetchHandler struct{ Svc *fetch.Service }

func (h FetchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("feed URL is required"))
		return
	}
	if req.URL == "" {
		respond.Error(w, http.StatusBadRequest, errors.New("feed URL is required"))
		return
	}

	feed, articles, err := h.Svc.FetchFeed(r.Context(), req.URL)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]ItemDTO, 0, len(articles))
	for _, a := range articles {
		item := ToItemDTO(a)
		// The proxy response carries no subscription context.
		item.FeedURL = ""
		item.Source = ""
		items = append(items, item)
	}

	respond.JSON(w, http.StatusOK, FetchResponse{
		Title:       feed.Title,
		Description: feed.Description,
		Link:        feed.Link,
		Items:       items,
	})
}
