package middleware

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	"github.com/gin-gonic/gin"
)

// NewRouteRateLimiter returns a per-route limiter keyed by authenticated user,
// falling back to client IP for requests that never passed the auth guard.
// Each route gets its own store so counters never bleed across endpoints.
func NewRouteRateLimiter(limit uint, window time.Duration) gin.HandlerFunc {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  window,
		Limit: limit,
	})
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Try again in " + time.Until(info.ResetTime).String(),
			})
		},
		KeyFunc: func(c *gin.Context) string {
			if value, exists := c.Get(ContextIdentityKey); exists {
				if identity, ok := value.(domain.Identity); ok && identity.ID != "" {
					return identity.ID
				}
			}
			return c.ClientIP()
		},
	})
}
