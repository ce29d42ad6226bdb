package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per client IP. Used on the login route
// to slow down credential guessing.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	requests int
	per      time.Duration
}

func NewRateLimiter(requests int, per time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		requests: requests,
		per:      per,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()
		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)
			r.limiters[ip] = limiter
		}
		r.mu.Unlock()

		if !limiter.Allow() {
			http.Error(w, "Too many login attempts, try again later.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, req)
	})
}
