package feed

import (
	"context"
	"net/http"

	"feeddeck/internal/handler/http/respond"
	"feeddeck/internal/usecase/subscription"
)

// RefreshHandler triggers one refresh cycle over every subscribed feed and
// returns the updated subscription list. Per-feed failures do not fail the
// request; a failed feed simply keeps its previous item count.
//
// The cycle is detached from the request lifetime: a client disconnect or the
// request timeout must not cancel in-flight fetches and turn the whole cycle
// into failures. The per-fetch timeout remains the only bound.
type RefreshHandler struct{ Store *subscription.Store }

func (h RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Store.RefreshAll(context.WithoutCancel(r.Context()))

	feeds := h.Store.Feeds()
	out := make([]DTO, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, ToDTO(f))
	}
	respond.JSON(w, http.StatusOK, out)
}
