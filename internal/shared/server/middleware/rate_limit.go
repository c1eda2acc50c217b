package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitRule describes a token bucket: sustained requests per second and
// the burst allowance.
type RateLimitRule struct {
	Rate  float64
	Burst int
}

// RateLimiter keeps one token bucket per principal.
type RateLimiter struct {
	mu      sync.Mutex
	rule    RateLimitRule
	buckets map[string]*rate.Limiter
}

// NewRateLimiter constructs a limiter enforcing the given rule per principal.
func NewRateLimiter(rule RateLimitRule) *RateLimiter {
	return &RateLimiter{
		rule:    rule,
		buckets: make(map[string]*rate.Limiter),
	}
}

func (l *RateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.buckets[key]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.rule.Rate), l.rule.Burst)
		l.buckets[key] = lim
	}
	return lim
}

// Allow reports whether the principal may proceed, and the suggested wait
// before retrying when it may not.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	if l == nil || l.rule.Rate <= 0 || l.rule.Burst <= 0 {
		return true, 0
	}
	lim := l.limiterFor(key)
	res := lim.Reserve()
	if delay := res.Delay(); delay > 0 {
		res.Cancel()
		return false, delay
	}
	return true, 0
}

// RateLimit rejects requests exceeding the limiter's rule, keyed by client IP.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := strings.TrimSpace(c.ClientIP())
		if principal == "" {
			principal = "unknown"
		}
		allowed, retryAfter := limiter.Allow(principal)
		if allowed {
			c.Next()
			return
		}
		retryAfterMs := int(retryAfter / time.Millisecond)
		if retryAfterMs <= 0 {
			retryAfterMs = 1000
		}
		retryAfterSeconds := int(math.Ceil(float64(retryAfterMs) / 1000.0))
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":        "rate_limited",
			"retryAfterMs": retryAfterMs,
		})
		c.Abort()
	}
}
