package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// One-second windows keyed by unix timestamp.
const rateLimitMax = 20

type rateWindow struct {
	unix  int64
	count int
}

// RateLimit enforces a per-IP fixed-window request limit on the API. Every
// generation call costs real money upstream, so bursts get a 429 before they
// reach a provider. Counters live in process memory; a restart resets them.
func RateLimit() gin.HandlerFunc {
	var (
		mu      sync.Mutex
		windows = make(map[string]*rateWindow)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		now := time.Now().Unix()

		mu.Lock()
		w, ok := windows[ip]
		if !ok || w.unix != now {
			// Reuse the tick of a full rebuild to drop stale entries.
			if len(windows) > 4096 {
				windows = make(map[string]*rateWindow)
			}
			w = &rateWindow{unix: now}
			windows[ip] = w
		}
		w.count++
		count := w.count
		mu.Unlock()

		if count > rateLimitMax {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Slow down.",
			})
			return
		}

		c.Next()
	}
}
