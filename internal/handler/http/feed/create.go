package feed

import (
	"encoding/json"
	"errors"
	"net/http"

	"feeddeck/internal/handler/http/respond"
	"feeddeck/internal/usecase/subscription"
)

// CreateHandler subscribes to a new feed.
type CreateHandler struct{ Store *subscription.Store }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("feed URL is required"))
		return
	}

	feed, err := h.Store.AddFeed(r.Context(), req.URL)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ToDTO(feed))
}
