package ports

import (
	"net/http"

	"github.com/Amund211/roster/internal/logging"
	"github.com/Amund211/roster/internal/ratelimiting"
)

type middlewareFunc = func(http.HandlerFunc) http.HandlerFunc

// NewRateLimitMiddleware answers with onLimitExceeded instead of calling the handler once the
// request's key has no tokens left
func NewRateLimitMiddleware(rateLimiter ratelimiting.RequestRateLimiter, onLimitExceeded http.HandlerFunc) middlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !rateLimiter.Consume(r) {
				logging.FromContext(r.Context()).InfoContext(r.Context(), "Rate limit exceeded", "key", rateLimiter.KeyFor(r))
				onLimitExceeded(w, r)
				return
			}

			next(w, r)
		}
	}
}

func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Too many changes, try again shortly", http.StatusTooManyRequests)
}

// ComposeMiddlewares applies the middlewares outermost first
func ComposeMiddlewares(middlewares ...middlewareFunc) middlewareFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}
