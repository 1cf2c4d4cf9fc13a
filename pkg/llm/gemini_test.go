package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/pkg/config"
)

func newGeminiTestClient(t *testing.T, server *httptest.Server) *GeminiClient {
	t.Helper()
	t.Setenv("TEST_GEMINI_API_KEY", "gem-key")

	client, err := NewGeminiClient(&config.ProviderConfig{
		Model:      "gemini-2.0-flash",
		APIKeyEnv:  "TEST_GEMINI_API_KEY",
		BaseURL:    server.URL,
		Timeout:    5 * time.Second,
		MaxRetries: 1,
	})
	require.NoError(t, err)
	return client
}

func TestGeminiGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "gem-key", r.Header.Get("x-goog-api-key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "systemInstruction")
		assert.Contains(t, req, "contents")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role": "model",
						"parts": []map[string]any{
							{"text": "part one "},
							{"text": "part two"},
						},
					},
				},
			},
		})
	}))
	defer server.Close()

	client := newGeminiTestClient(t, server)

	got, err := client.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "part one part two", got)
}

func TestGeminiGenerate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid model"}}`))
	}))
	defer server.Close()

	client := newGeminiTestClient(t, server)

	_, err := client.Research(context.Background(), "prompt")
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "gemini", provErr.Provider)
}

func TestGeminiGenerate_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	client := newGeminiTestClient(t, server)

	got, err := client.Generate(context.Background(), "s", "u")
	require.NoError(t, err, "empty candidates is a valid empty result")
	assert.Empty(t, got)
}
