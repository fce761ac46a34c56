package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins. The single entry "*"
	// allows any origin.
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int
}

// DefaultCORSConfig returns a permissive configuration suitable for a
// local-first reader whose presentation layer is served from anywhere.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}
}

// CORS returns an HTTP middleware that handles cross-origin requests.
// Preflight OPTIONS requests are answered with 204; disallowed origins get no
// CORS headers and the browser blocks the response.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	wildcard := slices.Contains(config.AllowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Same-origin request, nothing to do.
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !wildcard && !slices.Contains(config.AllowedOrigins, origin) {
				next.ServeHTTP(w, r)
				return
			}

			if wildcard {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
