package middleware

import (
	"encoding/json"
	"log"
	"net"
	"net/http"

	"budgetzen-server/src/ratelimit"
)

// RateLimitMiddleware gates every request on the shared sliding-window
// budget before any route logic runs.
func RateLimitMiddleware(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := limiter.Allow(r.Context(), "rl:"+clientIP(r))
			if err != nil {
				// Fail closed: an unreachable counter store must not turn
				// into unlimited admission.
				log.Printf("ERROR: Rate limit check failed for %s: %v", r.RemoteAddr, err)
				writeTooManyRequests(w)
				return
			}
			if !allowed {
				writeTooManyRequests(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeTooManyRequests(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Too many requests, please try again later.",
	})
}
