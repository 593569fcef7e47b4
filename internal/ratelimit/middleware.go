package ratelimit

import (
	"log/slog"
	"net/http"

	"github.com/Guidoll2/fontaneriabarcelona/internal/httpx"
	"github.com/Guidoll2/fontaneriabarcelona/internal/metrics"
	"github.com/Guidoll2/fontaneriabarcelona/internal/transport"
)

// Middleware rejects callers over the limit with 429. Store failures fail
// open: losing a lead to a broken redis is worse than admitting one extra
// request.
func (l *Limiter) Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := httpx.ClientIP(r) + ":" + r.URL.Path
			allowed, err := l.Allow(r.Context(), key)
			if err != nil {
				log.Warn("rate limit store error, failing open",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				metrics.RateLimited.Inc()
				transport.WriteError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
