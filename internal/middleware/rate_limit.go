package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
)

// RateCounter counts hits on a key within a fixed window
type RateCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// RateLimiter allows limit requests per client IP, method and route within window.
// When the counter is unavailable requests are let through.
func RateLimiter(counter RateCounter, limit int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, resetAt, err := counter.Hit(c.Request.Context(), key, window)
		if err != nil {
			log.Warn("Rate limit check failed, allowing request",
				zap.Error(err),
				zap.String("key", key))
			c.Next()
			return
		}

		remaining := limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetIn := int(time.Until(resetAt).Seconds())
		if resetIn < 0 {
			resetIn = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if int(count) > limit {
			c.Header("Retry-After", strconv.Itoa(resetIn))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error:   "rate_limited",
				Message: "too many requests, retry in " + strconv.Itoa(resetIn) + "s",
			})
			return
		}

		c.Next()
	}
}
