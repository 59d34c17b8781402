package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter, err := NewRateLimiter(2, time.Hour)
	require.NoError(t, err)

	allowed, _ := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1")
	assert.True(t, allowed)

	allowed, retryAfter := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	allowed, _ = limiter.Allow("10.0.0.2")
	assert.True(t, allowed, "clients have separate buckets")
}

func TestRateLimiter_EvictsOldClients(t *testing.T) {
	limiter, err := NewRateLimiter(1, time.Hour, WithMaxClients(1))
	require.NoError(t, err)

	allowed, _ := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.2")
	assert.True(t, allowed)

	// the first bucket was evicted, a fresh one is created
	allowed, _ = limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	assert.Equal(t, 1, limiter.limiters.Len())
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, err := NewRateLimiter(1, time.Minute)
	require.NoError(t, err)

	r := gin.New()
	r.Use(limiter.Middleware())
	r.GET("/printers", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/printers", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/printers", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"detail": "rate limit exceeded, wait before retrying"}`, second.Body.String())
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
}
