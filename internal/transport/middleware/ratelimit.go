package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/advocacy-backend/internal/ratelimit"
	"github.com/heartmarshall/advocacy-backend/pkg/ctxutil"
)

// RateLimit rejects requests over the limiter's budget with 429. Requests
// are keyed by owner when Auth ran first, otherwise by client address.
func RateLimit(limiter ratelimit.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := limiter.Allow(r.Context(), limitKey(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

			if !d.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter(d.ResetAt)))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func limitKey(r *http.Request) string {
	if owner, ok := ctxutil.OwnerIDFromCtx(r.Context()); ok {
		return "owner:" + owner.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// retryAfter rounds up to whole seconds and never returns less than one.
func retryAfter(resetAt time.Time) int {
	secs := int(time.Until(resetAt).Seconds() + 0.999)
	if secs < 1 {
		return 1
	}
	return secs
}
