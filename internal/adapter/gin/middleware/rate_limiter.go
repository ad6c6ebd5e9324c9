package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"villa-service/internal/adapter/gin/response"
	"villa-service/internal/adapter/ratelimit"
)

// RateLimiter returns a Gin middleware for rate limiting using the shared
// token bucket. Buckets are keyed by method, route and client IP. Redis
// failures let the request through.
func RateLimiter(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Enabled() {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		key := fmt.Sprintf("%s:%s:%s", c.Request.Method, path, c.ClientIP())

		allowed, _ := limiter.Allow(c.Request.Context(), key)
		if !allowed {
			cfg := limiter.Config()
			response.Abort(c, http.StatusTooManyRequests,
				fmt.Sprintf("Rate limit exceeded: %.2f requests/second (burst capacity: %d)", cfg.RequestsPerSecond, cfg.Burst))
			return
		}

		c.Next()
	}
}
