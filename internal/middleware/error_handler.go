package middleware

import (
	"leadharvest/internal/errors"
	"leadharvest/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler catches errors attached by handlers and returns standardized
// responses: user-facing message plus stable code, technical detail only in
// the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			appErr := errors.MapError(err)

			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, error=%s",
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				appErr.TechnicalMessage)

			c.JSON(appErr.HTTPStatus, gin.H{
				"error": gin.H{
					"message": appErr.UserMessage,
					"code":    appErr.Code,
				},
			})
		}
	}
}
