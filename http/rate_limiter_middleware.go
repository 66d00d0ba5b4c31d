package http

import (
	"net"
	"net/http"
	"strconv"
	"time"
)

// RateLimitMiddleware throttles by client IP. Rejected requests carry a
// Retry-After hint matching the limiter's refill interval.
func RateLimitMiddleware(limiter *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			// RemoteAddr without a port, e.g. behind some proxies.
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			seconds := int(limiter.refillEvery / time.Second)
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
