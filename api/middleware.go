package api

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTimeout   = 10 * time.Minute
)

// clientLimiter pairs a token bucket with the instant of its last use.
// lastSeen is written by concurrent request goroutines and read by the
// sweep loop, so it lives behind an atomic as unix nanoseconds.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.lastSeen.Store(now.UnixNano())
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, cl.lastSeen.Load()))
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

func RequestSizeLimit() gin.HandlerFunc {
	// Covers imported catalogs and uploaded cover images
	return RequestSizeLimitWithSize(10 * 1024 * 1024)
}

func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// PerClientRateLimit throttles each client IP with its own token
// bucket. Buckets for clients idle past limiterIdleTimeout are swept
// in the background until cleanupStop closes.
func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps int, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go sweepIdleLimiters(rateLimiters, cleanupStop)
	})

	return func(c *gin.Context) {
		cl := limiterFor(rateLimiters, c.ClientIP(), rps, burst)
		cl.touch(time.Now())

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please slow down your requests.",
			})
			return
		}
		c.Next()
	}
}

func limiterFor(rateLimiters *sync.Map, clientIP string, rps, burst int) *clientLimiter {
	if existing, ok := rateLimiters.Load(clientIP); ok {
		return existing.(*clientLimiter)
	}
	fresh := &clientLimiter{
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), burst),
	}
	actual, _ := rateLimiters.LoadOrStore(clientIP, fresh)
	return actual.(*clientLimiter)
}

func sweepIdleLimiters(rateLimiters *sync.Map, stop chan struct{}) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removeIdleLimiters(rateLimiters, time.Now())
		case <-stop:
			return
		}
	}
}

func removeIdleLimiters(rateLimiters *sync.Map, now time.Time) {
	rateLimiters.Range(func(key, value interface{}) bool {
		if value.(*clientLimiter).idleSince(now) > limiterIdleTimeout {
			rateLimiters.Delete(key)
		}
		return true
	})
}
