package feed

import (
	"net/http"

	"feeddeck/internal/handler/http/middleware"
	"feeddeck/internal/usecase/fetch"
	"feeddeck/internal/usecase/subscription"
)

// Register registers all feed-related HTTP handlers with the given mux.
// Endpoints that trigger outbound fetches are rate limited per client IP.
func Register(mux *http.ServeMux, fetchSvc *fetch.Service, store *subscription.Store, fetchRateLimiter *middleware.RateLimiter) {
	mux.Handle("POST /fetch-feed", fetchRateLimiter.Middleware(FetchHandler{fetchSvc}))

	mux.Handle("GET /feeds", ListHandler{store})
	mux.Handle("POST /feeds", fetchRateLimiter.Middleware(CreateHandler{store}))
	mux.Handle("DELETE /feeds", DeleteHandler{store})
	mux.Handle("POST /feeds/refresh", fetchRateLimiter.Middleware(RefreshHandler{store}))
}
