// Package middleware provides HTTP middleware for the degrees server.
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxClients is the maximum number of tracked IPs to prevent memory exhaustion.
const maxClients = 100_000

// clientIdleTTL is how long an IP may stay silent before its limiter is evicted.
const clientIdleTTL = 10 * time.Minute

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a RateLimiter allowing ratePerSec requests per second
// with the given burst per IP. A background goroutine evicts idle clients
// until ctx is cancelled.
func NewRateLimiter(ctx context.Context, ratePerSec float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(ratePerSec),
		burst:   burst,
	}
	go rl.startCleanup(ctx)

	return rl
}

func (rl *RateLimiter) startCleanup(ctx context.Context) {
	ticker := time.NewTicker(clientIdleTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, cl := range rl.clients {
		if now.Sub(cl.lastSeen) > clientIdleTTL {
			delete(rl.clients, ip)
		}
	}
}

// allow reports whether ip may proceed and whether the client table had room.
func (rl *RateLimiter) allow(ip string, now time.Time) (allowed, tracked bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok {
		if len(rl.clients) >= maxClients {
			return false, false
		}

		cl = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = cl
	}

	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1), true
}

// Handler returns Gin middleware that applies rate limiting per client IP.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Proxy headers are not trusted (SetTrustedProxies(nil)), so this is the peer address.
		allowed, tracked := rl.allow(c.ClientIP(), time.Now())

		switch {
		case !tracked:
			respondError(c, http.StatusTooManyRequests, "rate_limited", "too many clients")
		case !allowed:
			respondError(c, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
		default:
			c.Next()
		}
	}
}
