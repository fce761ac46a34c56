package feed

import (
	"net/http"

	"feeddeck/internal/handler/http/respond"
	"feeddeck/internal/usecase/subscription"
)

// ListHandler returns the subscription list in add order.
type ListHandler struct{ Store *subscription.Store }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feeds := h.Store.Feeds()

	out := make([]DTO, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, ToDTO(f))
	}
	respond.JSON(w, http.StatusOK, out)
}
