package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	return body
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, errors.New("feed URL is required"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
	if got := decodeError(t, rec)["error"]; got != "feed URL is required" {
		t.Fatalf("got %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("want JSON content type, got %q", ct)
	}
}

func TestErrorWithDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorWithDetails(rec, http.StatusInternalServerError,
		"failed to fetch or parse RSS feed", "dial tcp: connection refused")

	body := decodeError(t, rec)
	if body["error"] != "failed to fetch or parse RSS feed" {
		t.Fatalf("got %q", body["error"])
	}
	if body["details"] != "dial tcp: connection refused" {
		t.Fatalf("got %q", body["details"])
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name string
		code int
		err  error
		want string
	}{
		{"validation message passes", http.StatusBadRequest, errors.New("url is required"), "url is required"},
		{"not found passes", http.StatusNotFound, errors.New("feed not found"), "feed not found"},
		{"internal detail hidden", http.StatusBadRequest, errors.New("pq: connection refused"), "internal server error"},
		{"5xx always hidden", http.StatusInternalServerError, errors.New("url is required"), "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)
			if got := decodeError(t, rec)["error"]; got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}
