package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"stockplan/internal/apierror"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	apiRateMap   = make(map[string]*rateEntry)
	apiRateMapMu sync.Mutex
)

// RateLimiter returns a general-purpose sliding-window rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		apiRateMapMu.Lock()
		entry, exists := apiRateMap[ip]
		if !exists {
			entry = &rateEntry{}
			apiRateMap[ip] = entry
		}
		apiRateMapMu.Unlock()

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
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, retry shortly"))
			return
		}
		c.Next()
	}
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Periodically removes expired entries to prevent the map growing unbounded
// with IPs that never return.

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		purgeOnce(time.Now())
	}
}

func purgeOnce(now time.Time) {
	apiRateMapMu.Lock()
	purged := 0
	for ip, entry := range apiRateMap {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(apiRateMap, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	// Read while still holding the lock: request handling mutates the map
	// concurrently with the purge ticker.
	remaining := len(apiRateMap)
	apiRateMapMu.Unlock()

	if purged > 0 {
		log.Debug().
			Int("entries_purged", purged).
			Int("entries_remaining", remaining).
			Msg("rate limiter map purged")
	}
}
