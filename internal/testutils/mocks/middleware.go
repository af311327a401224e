package mocks

import (
	"github.com/gin-gonic/gin"

	"github.com/zetherabarter/Rec-Backend2/internal/middleware"
)

func NewTestCacheMiddleware() middleware.CacheMiddleware {
	return func(ctx *gin.Context) {
		ctx.Next()
	}
}

func NewTestRateLimitMiddleware() middleware.RateLimitMiddleware {
	return func(ctx *gin.Context) {
		ctx.Next()
	}
}
