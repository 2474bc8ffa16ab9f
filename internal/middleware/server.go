package middleware

import (
	"log/slog"
	"time"

	"iceai_backend/internal/logger"
	"iceai_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestIDMiddleware tags the request context and response with a fresh id.
// An X-Request-ID sent by a proxy is reused.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		log := logger.FromContext(c.Request.Context())
		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", status),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", time.Since(start)),
			slog.Int("size_bytes", c.Writer.Size()),
		}

		switch {
		case status >= 500:
			log.Error("HTTP Server Error", fields...)
		case status >= 400:
			log.Warn("HTTP Client Error", fields...)
		default:
			log.Info("HTTP Request", fields...)
		}
	}
}

// DBMiddleware makes db available to handlers. A transaction already placed
// on the request context takes precedence.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbKey := string(contextkeys.DBContextKey)
		tx, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)

		if ok && tx != nil {
			c.Set(dbKey, tx.WithContext(c.Request.Context()))
		} else {
			c.Set(dbKey, db.WithContext(c.Request.Context()))
		}

		c.Next()
	}
}
