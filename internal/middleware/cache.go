package middleware

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ch "github.com/zetherabarter/Rec-Backend2/internal/cache"
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

type CacheConfigurator interface {
	GetTTL() (time.Duration, error)
}

type CacheCfg struct {
	Cache        ch.Cache
	Configurator CacheConfigurator
}

type CacheMiddleware gin.HandlerFunc

func NewCacheMiddleware(cfg CacheCfg) (CacheMiddleware, error) {

	ttl, err := cfg.Configurator.GetTTL()

	if err != nil {
		return nil, fmt.Errorf("failed to get cache ttl - %w", err)
	}

	cache := cfg.Cache

	handler := func(c *gin.Context) {

		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := ch.GetEndpointKey(c.Request.URL)
		cachedResp, err, ok := cache.Get(c.Request.Context(), key)

		if err != nil {
			slog.Error(err.Error())
			c.Status(http.StatusInternalServerError)
			c.Abort()
			return
		}

		if ok {
			c.Data(http.StatusOK, "application/json", []byte(cachedResp))
			c.Abort()
			return
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}

		c.Writer = w

		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}

		err = cache.Set(c.Request.Context(), key, w.body.String(), ttl)

		if err != nil {
			slog.Error(fmt.Errorf("failed to cache response - %w", err).Error())
		}
	}

	return handler, nil
}
