package middleware

import (
	"net/http"
	"strconv"
	"sync"

	h "eventhub/internal/delivery/http/helpers"

	"golang.org/x/time/rate"
)

// RateLimitObserver is notified of every rejected request.
type RateLimitObserver interface {
	ObserveRateLimited()
}

// RateLimiter keeps one token bucket per API key. Wrap must be mounted behind RequireAPIKey;
// a request that reaches it without an accepted key is answered 401.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	observer RateLimitObserver
}

// NewRateLimiter allows rps requests per second per key with the given burst. observer may be nil.
func NewRateLimiter(rps float64, burst int, observer RateLimitObserver) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		observer: observer,
	}
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = lim
	}
	return lim
}

// Wrap responds 429 rate_limited once the caller's bucket is empty.
func (l *RateLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := APIKeyFromContext(r.Context())
		if !ok {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing api key")
			return
		}
		lim := l.limiter(key)
		if !lim.Allow() {
			if l.observer != nil {
				l.observer.ObserveRateLimited()
			}
			retry := 1
			if l.limit > 0 {
				retry = max(1, int(1/float64(l.limit)))
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeRateLimited, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}
