package middleware

import (
	"crypto/rand"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// RequestIDHeader carries the request ID in requests and responses.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the context key for the request ID.
const RequestIDKey ContextKey = "request_id"

// RequestLogger assigns a ULID request ID unless the client sent one and
// logs every request once it completes.
func RequestLogger() gin.HandlerFunc {
	entropy := ulid.Monotonic(rand.Reader, 0)
	var mu sync.Mutex

	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			mu.Lock()
			requestID = ulid.MustNew(ulid.Timestamp(start), entropy).String()
			mu.Unlock()
		}
		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if userID, ok := GetUserIDFromContext(c); ok {
			attrs = append(attrs, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			slog.Error("HTTP request", attrs...)
		case status >= 400:
			slog.Warn("HTTP request", attrs...)
		default:
			slog.Info("HTTP request", attrs...)
		}
	}
}

// GetRequestID returns the request ID assigned by RequestLogger.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}
