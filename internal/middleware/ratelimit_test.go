package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/stretchr/testify/assert"

	"github.com/zetherabarter/Rec-Backend2/internal/middleware"
)

type stubRateLimiter struct {
	allowed   int
	remaining int
}

func (l stubRateLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return &redis_rate.Result{
		Allowed:    l.allowed,
		Remaining:  l.remaining,
		RetryAfter: time.Second,
	}, nil
}

type stubRateLimitCfg struct{}

func (c stubRateLimitCfg) GetRequestsPerSecond() (int, error) {
	return 5, nil
}

func newRateLimitedEngine(t *testing.T, limiter middleware.RateLimiter) *gin.Engine {

	t.Helper()

	gin.SetMode(gin.TestMode)

	rateLimit, err := middleware.NewRateLimitMiddleware(middleware.RateLimitCfg{
		RateLimiter:  limiter,
		Configurator: stubRateLimitCfg{},
	})

	if err != nil {
		t.Fatalf("failed to create rate limit middleware - %v", err)
	}

	e := gin.New()
	e.Use(gin.HandlerFunc(rateLimit))

	e.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return e
}

func TestRateLimitMiddleware(t *testing.T) {

	t.Run("Allowed requests pass with limit headers", func(t *testing.T) {
		e := newRateLimitedEngine(t, stubRateLimiter{allowed: 1, remaining: 4})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		e.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("Exhausted limit yields 429 with a retry header", func(t *testing.T) {
		e := newRateLimitedEngine(t, stubRateLimiter{allowed: 0})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		e.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Retry"))
	})
}
