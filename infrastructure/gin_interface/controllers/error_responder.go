package controllers

import (
	"github.com/abdulwahabthakur/AI-Podcast-Generator/apperrors"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/gin-gonic/gin"
)

// respondError translates an application error into its HTTP status and a
// message safe to expose to the caller. Untyped errors become a generic 500.
func respondError(c *gin.Context, logger outbound.LoggerPort, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= 500 {
		logger.ErrorWithFields(err, "request failed", map[string]interface{}{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	}
	c.AbortWithStatusJSON(status, gin.H{"error": apperrors.SafeMessage(err)})
}
