package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// idleBucketTTL is how long an untouched client bucket is kept
const idleBucketTTL = 10 * time.Minute

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimiter is a per client token bucket
type RateLimiter struct {
	buckets        map[string]*bucket
	mu             sync.Mutex
	rate           float64 // tokens per second
	bucketSize     float64 // maximum tokens
	refillInterval time.Duration
	lastSweep      time.Time
	now            func() time.Time
}

func NewRateLimiter(rate float64, bucketSize float64) *RateLimiter {
	return &RateLimiter{
		buckets:        make(map[string]*bucket),
		rate:           rate,
		bucketSize:     bucketSize,
		refillInterval: time.Second,
		now:            time.Now,
	}
}

// Allow consumes a token for key and reports whether one was available
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	b, exists := rl.buckets[key]
	if !exists {
		b = &bucket{tokens: rl.bucketSize, lastRefill: now}
		rl.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(rl.bucketSize, b.tokens+float64(elapsed)/float64(rl.refillInterval)*rl.rate)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops idle buckets at most once per TTL. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < idleBucketTTL {
		return
	}
	for key, b := range rl.buckets {
		if now.Sub(b.lastRefill) > idleBucketTTL {
			delete(rl.buckets, key)
		}
	}
	rl.lastSweep = now
}

// RateLimit rejects requests from clients that exhausted their bucket.
// onReject, when set, runs for every rejected request.
func (rl *RateLimiter) RateLimit(onReject func(c *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || rl.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		if onReject != nil {
			onReject(c)
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded. Please try again later.",
		})
	}
}
