package http

import (
	"net/http"
	"time"

	"feeddeck/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthHandler handles health check endpoint requests.
// The service holds no external connections to probe; a responsive process is
// a healthy one.
type HealthHandler struct {
	Version string
}

// ServeHTTP returns the application health status.
func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Message:   "feed aggregation API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.Version,
	})
}
