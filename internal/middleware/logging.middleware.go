package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iamjuaness/mi-boleta/internal/constant"
	"github.com/iamjuaness/mi-boleta/pkg/logger"
	"go.uber.org/zap"
)

// LoggingMiddleware provides request logging functionality
type LoggingMiddleware struct {
	config *MiddlewareConfig
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(config *MiddlewareConfig) *LoggingMiddleware {
	return &LoggingMiddleware{
		config: config,
	}
}

// RequestLogger provides request logging middleware
func (l *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.config.LoggingEnabled {
			c.Next()
			return
		}

		start := time.Now()

		requestID := generateRequestID()
		c.Set("requestId", requestID)

		logger := l.createRequestLogger(c, requestID)

		logger.Info("Request started",
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("referer", c.GetHeader("Referer")))

		// Process request
		c.Next()

		duration := time.Since(start)

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
			zap.String("error", c.Errors.String()),
		}
		if l.config.LogResponseTime {
			fields = append(fields, zap.Duration("duration", duration))
		}
		// The principal only exists after the auth filter ran.
		if principal := PrincipalFromContext(c); principal != nil {
			fields = append(fields, zap.String("subject", principal.Subject))
		}

		logger.Info("Request completed", fields...)

		// Log slow requests
		if duration > 5*time.Second {
			logger.Warn("Slow request detected",
				zap.Duration("duration", duration),
				zap.String("path", c.Request.URL.Path))
		}
	}
}

// createRequestLogger creates a logger with request context, carrying the
// correlation ID placed in the request context upstream.
func (l *LoggingMiddleware) createRequestLogger(c *gin.Context, requestID string) *zap.Logger {
	fields := []zap.Field{
		zap.String("requestId", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	}

	if l.config.LogIPAddress {
		fields = append(fields, zap.String("ip", getClientIP(c)))
	}

	if l.config.LogUserAgent {
		fields = append(fields, zap.String("userAgent", c.GetHeader("User-Agent")))
	}

	return logger.GetLoggerFromContext(c.Request.Context()).With(fields...)
}

// SecurityLogger provides security event logging
func (l *LoggingMiddleware) SecurityLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Log authentication attempts
		if c.Request.Method == http.MethodPost &&
			(c.Request.URL.Path == "/api/auth/login" || c.Request.URL.Path == "/api/auth/refresh") {
			logger.GetLoggerFromContext(c.Request.Context()).Info("Authentication attempt",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", getClientIP(c)),
				zap.String("userAgent", c.GetHeader("User-Agent")))
		}

		c.Next()

		// Log denied requests
		status := c.Writer.Status()
		if status == http.StatusUnauthorized || status == http.StatusForbidden ||
			status == constant.StatusTokenExpired {
			logger.GetLoggerFromContext(c.Request.Context()).Warn("Request denied",
				zap.Int("status", status),
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", getClientIP(c)),
				zap.String("userAgent", c.GetHeader("User-Agent")))
		}
	}
}

// generateRequestID returns a fresh identifier for request-scoped log lines.
func generateRequestID() string {
	return uuid.New().String()
}
