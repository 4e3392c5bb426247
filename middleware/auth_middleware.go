package middleware

import (
	"net/http"
	"strings"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	"github.com/gin-gonic/gin"
)

const ContextIdentityKey = "identity"

type AuthHandler interface {
	AuthMiddleware() gin.HandlerFunc
}

type authHandler struct {
	logger   outbound.LoggerPort
	verifier outbound.TokenVerifierPort
}

// NewAuthHandler builds the bearer-token guard. The verifier may be nil when
// the identity provider is not configured; protected routes then respond 500
// instead of letting unverified requests through.
func NewAuthHandler(verifier outbound.TokenVerifierPort, logger outbound.LoggerPort) AuthHandler {
	return &authHandler{
		logger:   logger,
		verifier: verifier,
	}
}

func (h *authHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		if h.verifier == nil {
			h.logger.Warn("authentication is not configured, rejecting request")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "authentication is not configured"})
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be a bearer token"})
			return
		}

		identity, err := h.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			h.logger.WarnWithFields("token verification failed", map[string]interface{}{
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller stored by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}
