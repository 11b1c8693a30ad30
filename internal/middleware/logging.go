package middleware

import (
	"time"

	"leadharvest/pkg/logger"

	"github.com/gin-gonic/gin"
)

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Process request
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		requestID, _ := c.Get(RequestIDKey)
		logger.GlobalLogger.Printf("%s %s %d %v request_id=%v", method, path, status, latency, requestID)
	}
}
