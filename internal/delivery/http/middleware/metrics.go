package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records finished requests by route pattern.
type RequestObserver interface {
	ObserveRequest(route string, status int, seconds float64)
}

// Metrics reports each request to observer, labelled with the ServeMux pattern that served it.
// It must wrap the mux directly so the pattern set during routing is visible afterwards.
func Metrics(observer RequestObserver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveRequest(route, wrapped.status, time.Since(start).Seconds())
	})
}
