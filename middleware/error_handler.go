package middleware

import (
	"fmt"
	"net/http"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware converts panics into a 500 response instead of killing
// the connection, logging the panic value for the operator.
func RecoveryMiddleware(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorWithFields(fmt.Errorf("panic: %v", r), "recovered while handling request", map[string]interface{}{
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
