package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// limiterState is the per-instance IP map. Each RateLimiter call gets its own
// state: the global limiter and the login limiter stacked on the same route
// must keep independent counters and must never share an entry mutex, because
// the outer instance holds it across c.Next().
type limiterState struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
}

var (
	limitersMu sync.Mutex
	limiters   []*limiterState
)

// RateLimiter returns a sliding-window rate limiter per IP. Every call creates
// an independent instance with its own counters, so it can be applied globally
// and again on specific routes (e.g. /auth/login) at the same time.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	state := &limiterState{entries: make(map[string]*rateEntry)}

	limitersMu.Lock()
	limiters = append(limiters, state)
	limitersMu.Unlock()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		state.mu.Lock()
		entry, exists := state.entries[ip]
		if !exists {
			entry = &rateEntry{}
			state.entries[ip] = entry
		}
		state.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"estado":    false,
				"mensaje":   "Demasiadas solicitudes. Intente nuevamente en un momento.",
				"timestamp": now.UTC().Format(time.RFC3339),
			})
			return
		}
		c.Next()
	}
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Periodically removes expired entries from every limiter instance to prevent
// the maps from accumulating IPs that never return.

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		limitersMu.Lock()
		states := make([]*limiterState, len(limiters))
		copy(states, limiters)
		limitersMu.Unlock()

		purged, remaining := 0, 0
		for _, state := range states {
			state.mu.Lock()
			for ip, entry := range state.entries {
				entry.mu.Lock()
				if now.After(entry.windowEnd) {
					delete(state.entries, ip)
					purged++
				}
				entry.mu.Unlock()
			}
			remaining += len(state.entries)
			state.mu.Unlock()
		}

		if purged > 0 {
			log.Debug().
				Int("entries_purged", purged).
				Int("entries_remaining", remaining).
				Msg("rate limiter maps purged")
		}
	}
}
