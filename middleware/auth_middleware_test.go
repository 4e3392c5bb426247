package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

type stubVerifier struct {
	identity domain.Identity
	err      error
	token    string
}

func (s *stubVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	s.token = token
	if s.err != nil {
		return domain.Identity{}, s.err
	}
	return s.identity, nil
}

func newAuthRouter(handler AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handler.AuthMiddleware())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/scripts", func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": identity.ID})
	})
	return router
}

func TestAuthMiddleware_NilVerifierRejectsWith500(t *testing.T) {
	router := newAuthRouter(NewAuthHandler(nil, nopLogger{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scripts", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthMiddleware_MissingHeaderRejectsWith401(t *testing.T) {
	router := newAuthRouter(NewAuthHandler(&stubVerifier{}, nopLogger{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/scripts", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_NonBearerSchemeRejectsWith401(t *testing.T) {
	router := newAuthRouter(NewAuthHandler(&stubVerifier{}, nopLogger{}))

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer ", "Bearer    "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/scripts", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header=%q", header)
	}
}

func TestAuthMiddleware_InvalidTokenRejectsWith401(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("token expired")}
	router := newAuthRouter(NewAuthHandler(verifier, nopLogger{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scripts", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "expired-token", verifier.token)
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	verifier := &stubVerifier{identity: domain.Identity{ID: "user-1", Email: "user@example.com"}}
	router := newAuthRouter(NewAuthHandler(verifier, nopLogger{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scripts", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Equal(t, "good-token", verifier.token)
}

func TestAuthMiddleware_HealthBypassesAuth(t *testing.T) {
	router := newAuthRouter(NewAuthHandler(nil, nopLogger{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
