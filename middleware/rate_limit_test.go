package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(limit uint, identity string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if identity != "" {
			c.Set(ContextIdentityKey, domain.Identity{ID: identity})
		}
	})
	router.POST("/generate", NewRouteRateLimiter(limit, 15*time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimiter_AllowsUpToLimitThenRejects(t *testing.T) {
	router := newRateLimitedRouter(10, "user-1")

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimiter_CountsPerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := NewRouteRateLimiter(1, 15*time.Minute)
	router.POST("/generate", func(c *gin.Context) {
		c.Set(ContextIdentityKey, domain.Identity{ID: c.GetHeader("X-Test-User")})
		limiter(c)
		if !c.IsAborted() {
			c.Status(http.StatusOK)
		}
	})

	send := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("X-Test-User", user)
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("alice"))
	assert.Equal(t, http.StatusTooManyRequests, send("alice"))
	assert.Equal(t, http.StatusOK, send("bob"))
}

func TestRateLimiter_SeparateStoresPerRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextIdentityKey, domain.Identity{ID: "user-1"})
	})
	router.POST("/a", NewRouteRateLimiter(1, 15*time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/b", NewRouteRateLimiter(1, 15*time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	wa := httptest.NewRecorder()
	router.ServeHTTP(wa, httptest.NewRequest(http.MethodPost, "/a", nil))
	assert.Equal(t, http.StatusOK, wa.Code)

	wb := httptest.NewRecorder()
	router.ServeHTTP(wb, httptest.NewRequest(http.MethodPost, "/b", nil))
	assert.Equal(t, http.StatusOK, wb.Code)
}
