package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scancare/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssistantConfig(baseURL string) *config.Config {
	return &config.Config{
		Assistant: &config.AssistantConfig{
			BaseURL:     baseURL,
			APIKey:      "test-key",
			Model:       "gpt-4o-mini",
			MaxTokens:   500,
			Temperature: 0.7,
			Timeout:     time.Second,
		},
	}
}

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "Is niacinamide good for oily skin?", req.Messages[0].Content)
		assert.Equal(t, 500, req.MaxTokens)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "Yes."}},
			},
		})
	}))
	defer server.Close()

	svc, err := New(newTestAssistantConfig(server.URL))
	require.NoError(t, err)

	reply, err := svc.Complete(context.Background(), "Is niacinamide good for oily skin?")

	require.NoError(t, err)
	assert.Equal(t, "Yes.", reply)
}

func TestClient_Complete_UpstreamErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc, err := New(newTestAssistantConfig(server.URL))
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), "Hello")

	require.Error(t, err)
	assert.ErrorContains(t, err, "429")
}

func TestClient_Complete_EmptyChoicesFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc, err := New(newTestAssistantConfig(server.URL))
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), "Hello")

	assert.Error(t, err)
}

func TestNew_MissingAPIKeyFails(t *testing.T) {
	_, err := New(&config.Config{Assistant: &config.AssistantConfig{}})
	assert.Error(t, err)
}
