package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestMiddleware_generatesID(t *testing.T) {
	var gotCtxID string
	h := Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotCtxID = FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feeds", nil))

	headerID := rec.Header().Get(RequestIDHeader)
	if headerID == "" {
		t.Fatal("response must carry a request ID header")
	}
	if headerID != gotCtxID {
		t.Fatalf("context ID %q must match header ID %q", gotCtxID, headerID)
	}
	if _, err := uuid.Parse(headerID); err != nil {
		t.Fatalf("generated ID must be a UUID: %v", err)
	}
}

func TestMiddleware_propagatesExistingID(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/feeds", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "client-supplied-id" {
		t.Fatalf("want the client's ID echoed back, got %q", got)
	}
}

func TestFromContext_missing(t *testing.T) {
	if got := FromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()); got != "" {
		t.Fatalf("want empty string, got %q", got)
	}
}
