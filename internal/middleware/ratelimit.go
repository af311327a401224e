package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	redis "github.com/redis/go-redis/v9"
)

const (
	rateLimitLimit      string = "X-RateLimit-Limit"
	rateLimitRemaining  string = "X-RateLimit-Remaining"
	rateLimitLimitRetry string = "X-RateLimit-Retry"
)

type RateLimitConfigurator interface {
	GetRequestsPerSecond() (int, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type RateLimitCfg struct {
	RateLimiter  RateLimiter
	Configurator RateLimitConfigurator
}

type RateLimitMiddleware gin.HandlerFunc

func NewRateLimitMiddleware(cfg RateLimitCfg) (RateLimitMiddleware, error) {

	perSecond, err := cfg.Configurator.GetRequestsPerSecond()

	if err != nil {
		return nil, err
	}

	limiter := cfg.RateLimiter

	handler := func(c *gin.Context) {

		clientIP := c.ClientIP()

		res, err := limiter.Allow(c.Request.Context(), clientIP, redis_rate.PerSecond(perSecond))

		if err != nil {
			slog.Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			c.Abort()
			return
		}

		if res.Allowed == 0 {
			slog.Info(fmt.Sprintf("Rate limit exceeded for %s", clientIP))
			c.Header(rateLimitLimitRetry, strconv.FormatInt(res.RetryAfter.Nanoseconds()/1e6, 10))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too Many Requests"})
			c.Abort()
			return
		}

		c.Header(rateLimitLimit, strconv.FormatInt(int64(perSecond), 10))
		c.Header(rateLimitRemaining, strconv.FormatInt(int64(res.Remaining), 10))

		c.Next()
	}

	return handler, nil
}

func NewRedisLimiter(client *redis.Client) *redis_rate.Limiter {
	return redis_rate.NewLimiter(client)
}
