package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"cookbook/pkg/logger"
	"cookbook/pkg/ratelimit"

	"go.uber.org/zap"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Result, error)
}

// KeyFunc extracts the rate limiting key of a request.
type KeyFunc func(r *http.Request) string

// WithRateLimit returns a middleware rejecting requests over budget with 429.
// Requests keyed by keyFn; GetClientIP is used when keyFn is nil. When the
// limiter itself fails the request is let through.
func WithRateLimit(limiter Limiter, keyFn KeyFunc) func(http.Handler) http.Handler {
	if keyFn == nil {
		keyFn = GetClientIP
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := limiter.Allow(r.Context(), keyFn(r))
			if err != nil {
				logger.Warn(r.Context(), "could not check rate limit", zap.Error(err))
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"code":    "RATE_LIMITED",
					"message": "too many requests",
				})

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
