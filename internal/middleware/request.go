package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/telemetry"
)

const (
	RequestIDHeader = "X-Request-ID"

	// ActorHeader names the user performing a write, recorded in the keyword audit trail
	ActorHeader = "X-Actor"

	anonymousActor = "anonymous"
	requestIDKey   = "request_id"
)

// RequestID returns the id assigned to the request by RequestLogger
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Actor returns the caller named by the X-Actor header, or "anonymous"
func Actor(c *gin.Context) string {
	if actor := strings.TrimSpace(c.GetHeader(ActorHeader)); actor != "" {
		return actor
	}
	return anonymousActor
}

// RequestLogger tags each request with an id, logs it once it completes and records its metrics.
// An incoming X-Request-ID is kept so ids can be traced across services.
func RequestLogger(log *zap.Logger, metrics *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Header(RequestIDHeader, rid)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		metrics.RequestServed(c.Request.Method, route, status, elapsed)

		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			log.Error("Request completed", fields...)
		case status >= 400:
			log.Warn("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}
