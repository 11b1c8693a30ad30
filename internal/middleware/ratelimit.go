package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"leadharvest/internal/errors"
)

// RateLimiter holds a map of IP-based limiters
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	stop     chan struct{}
}

// NewRateLimiter creates a new rate limiter with specified rate and burst
func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    b,
		stop:     make(chan struct{}),
	}
}

// getLimiter returns or creates a limiter for the given IP
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[ip] = limiter
		rl.mu.Unlock()
	}

	return limiter
}

// RateLimitMiddleware applies rate limiting based on client IP
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := rl.getLimiter(ip)

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"message": errors.MsgRateLimited,
					"code":    errors.ErrCodeRateLimited,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Cleanup removes idle limiters periodically until Stop is called.
func (rl *RateLimiter) Cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, limiter := range rl.limiters {
				// A full bucket means the IP has been quiet for a while.
				if limiter.Tokens() == float64(rl.burst) {
					delete(rl.limiters, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop terminates the Cleanup loop.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}
