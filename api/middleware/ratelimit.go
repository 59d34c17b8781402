package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/utils"
)

const (
	DefaultRateLimitRequests = 200
	DefaultRateLimitWindow   = 60 * time.Second

	// clients beyond this count evict the least recently seen ones
	defaultRateLimitMaxClients = 10_000
)

// RateLimiter gives each client ip a token bucket holding up to "requests" tokens, refilled
// at requests/window per second.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

type RateLimiterOption func(*rateLimiterOptions)

type rateLimiterOptions struct {
	maxClients int
}

func WithMaxClients(maxClients int) RateLimiterOption {
	return func(o *rateLimiterOptions) {
		o.maxClients = maxClients
	}
}

func NewRateLimiter(requests int, window time.Duration, opts ...RateLimiterOption) (*RateLimiter, error) {
	o := &rateLimiterOptions{maxClients: defaultRateLimitMaxClients}
	for _, opt := range opts {
		opt(o)
	}
	if requests <= 0 {
		requests = DefaultRateLimitRequests
	}
	if window <= 0 {
		window = DefaultRateLimitWindow
	}

	limiters, err := lru.New[string, *rate.Limiter](o.maxClients)
	if err != nil {
		return nil, errors.Wrap(err, "could not create rate limiter cache")
	}
	return &RateLimiter{
		limiters: limiters,
		limit:    rate.Limit(float64(requests) / window.Seconds()),
		burst:    requests,
	}, nil
}

func (r *RateLimiter) limiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limiter, ok := r.limiters.Get(key); ok {
		return limiter
	}
	limiter := rate.NewLimiter(r.limit, r.burst)
	r.limiters.Add(key, limiter)
	return limiter
}

// Allow consumes a token for the client, and returns how long to wait before retrying when none is left.
func (r *RateLimiter) Allow(key string) (bool, time.Duration) {
	reservation := r.limiter(key).Reserve()
	delay := reservation.Delay()
	if delay == 0 {
		return true, 0
	}
	reservation.Cancel()
	return false, delay
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := r.Allow(c.ClientIP())
		if allowed {
			c.Next()
			return
		}

		utils.MetricRateLimitedRequests.Inc()
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": models.RateLimitedError.Error()})
	}
}
