package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabaseTokenVerifier_AcceptsValidToken(t *testing.T) {
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-1","email":"user@example.com"}`))
	}))
	defer server.Close()

	verifier := NewSupabaseTokenVerifier(nopLogger{}, &config.SupabaseConfig{Url: server.URL, AnonKey: "anon-key"})

	identity, err := verifier.Verify(context.Background(), "the-token")

	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.ID)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, "anon-key", gotHeaders.Get("apikey"))
	assert.Equal(t, "Bearer the-token", gotHeaders.Get("Authorization"))
}

func TestSupabaseTokenVerifier_RejectsOnNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	verifier := NewSupabaseTokenVerifier(nopLogger{}, &config.SupabaseConfig{Url: server.URL, AnonKey: "anon-key"})

	_, err := verifier.Verify(context.Background(), "expired-token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSupabaseTokenVerifier_RejectsEmptyUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	verifier := NewSupabaseTokenVerifier(nopLogger{}, &config.SupabaseConfig{Url: server.URL, AnonKey: "anon-key"})

	_, err := verifier.Verify(context.Background(), "odd-token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user id")
}
