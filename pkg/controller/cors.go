package controller

import (
	"net/http"

	"github.com/go-chi/cors"
)

// WithCORS returns a middleware allowing cross-origin calls from the given
// origins. "*" allows every origin. Bearer tokens travel in the Authorization
// header, so credentials (cookies) are never allowed.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Cache-Control", "X-Request-Id"},
		ExposedHeaders: []string{
			"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset",
		},
		MaxAge: 300,
	})
}
