package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/apperrors"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchScriptGenerator_PostsRequestAndDecodesScript(t *testing.T) {
	var gotReq domain.ResearchRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"speaker":"Host","text":"Welcome.","audioEffect":"fade_in"},{"speaker":"Guest","text":"Hi.","audioEffect":null}]`))
	}))
	defer server.Close()

	generator := NewResearchScriptGenerator(server.URL, NewContentFetcher(nopLogger{}), nopLogger{})

	script, err := generator.GenerateScript(context.Background(), domain.ResearchRequest{
		Topic:           "volcanoes",
		DurationMinutes: 30,
		Style:           "documentary",
	})

	require.NoError(t, err)
	require.Len(t, script, 2)
	assert.Equal(t, domain.HostSpeaker, script[0].Speaker)
	require.NotNil(t, script[0].AudioEffect)
	assert.Equal(t, "fade_in", *script[0].AudioEffect)
	assert.Nil(t, script[1].AudioEffect)
	assert.Equal(t, "volcanoes", gotReq.Topic)
	assert.Equal(t, 30, gotReq.DurationMinutes)
}

func TestResearchScriptGenerator_NonArrayReplyIsAContractViolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer server.Close()

	generator := NewResearchScriptGenerator(server.URL, NewContentFetcher(nopLogger{}), nopLogger{})

	_, err := generator.GenerateScript(context.Background(), domain.ResearchRequest{Topic: "volcanoes", DurationMinutes: 30})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUpstreamContract, apperrors.TypeOf(err))
}

func TestResearchScriptGenerator_InvalidJSONIsAContractViolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer server.Close()

	generator := NewResearchScriptGenerator(server.URL, NewContentFetcher(nopLogger{}), nopLogger{})

	_, err := generator.GenerateScript(context.Background(), domain.ResearchRequest{Topic: "volcanoes", DurationMinutes: 30})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUpstreamContract, apperrors.TypeOf(err))
}

func TestResearchScriptGenerator_UpstreamFailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model overloaded"}`))
	}))
	defer server.Close()

	generator := NewResearchScriptGenerator(server.URL, NewContentFetcher(nopLogger{}), nopLogger{})

	_, err := generator.GenerateScript(context.Background(), domain.ResearchRequest{Topic: "volcanoes", DurationMinutes: 30})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUpstream, apperrors.TypeOf(err))
	assert.Contains(t, err.Error(), "model overloaded")
}
