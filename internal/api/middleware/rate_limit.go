package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"camping-fun/server/pkg/response"
)

// RateLimiter is satisfied by *redis.Client.
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit applies a sliding-window limit per client IP and route to
// requests that change data. Reads are never limited.
// A nil limiter, or a limiter that errors, lets every request through.
func RateLimit(limiter RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s %s", c.ClientIP(), c.Request.Method, c.FullPath())
		allowed, err := limiter.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}

		if !allowed {
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
