package middleware

import (
	"log"
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by client
// IP. Single-process only; a multi-instance deployment needs a shared
// store instead.
type RateLimiter struct {
	windows  map[string]*clientWindow
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type clientWindow struct {
	resetAt time.Time
	count   int
}

// NewRateLimiter creates a rate limiter allowing requests per window.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows:  make(map[string]*clientWindow),
		requests: requests,
		window:   window,
	}

	go rl.evictExpired()

	return rl
}

// Middleware returns a rate limiting middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			body := `{"error":"RateLimitExceeded","message":"Rate limit exceeded. Please try again later."}`
			if _, err := w.Write([]byte(body)); err != nil {
				log.Printf("Failed to write rate limit response: %v", err)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()

	win, exists := rl.windows[clientID]
	if !exists || now.After(win.resetAt) {
		rl.windows[clientID] = &clientWindow{
			count:   1,
			resetAt: now.Add(rl.window),
		}
		return true
	}

	if win.count < rl.requests {
		win.count++
		return true
	}

	return false
}

// evictExpired drops stale client windows once per window so the map
// doesn't grow with one entry per IP ever seen.
func (rl *RateLimiter) evictExpired() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for clientID, win := range rl.windows {
			if now.After(win.resetAt) {
				delete(rl.windows, clientID)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP resolves the client identifier, preferring proxy headers.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
