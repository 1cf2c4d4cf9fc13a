package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/pkg/config"
)

func openaiTestConfig(baseURL string) *config.ProviderConfig {
	return &config.ProviderConfig{
		Model:                  "gpt-4o",
		APIKeyEnv:              "TEST_OPENAI_API_KEY",
		BaseURL:                baseURL,
		Timeout:                5 * time.Second,
		MaxRetries:             2,
		BackgroundPollInterval: 10 * time.Millisecond,
		BackgroundMaxPolls:     5,
	}
}

func newOpenAITestClient(t *testing.T, server *httptest.Server, background bool) *OpenAIClient {
	t.Helper()
	t.Setenv("TEST_OPENAI_API_KEY", "test-key")

	cfg := openaiTestConfig(server.URL)
	cfg.Background = background

	client, err := NewOpenAIClient(cfg)
	require.NoError(t, err)
	return client
}

func responsesBody(id, status, text string) map[string]any {
	body := map[string]any{"id": id, "status": status}
	if text != "" {
		body["output"] = []map[string]any{
			{
				"type": "message",
				"role": "assistant",
				"content": []map[string]any{
					{"type": "output_text", "text": text},
				},
			},
		}
	}
	return body
}

func TestNewOpenAIClient_MissingKey(t *testing.T) {
	t.Setenv("TEST_OPENAI_API_KEY", "")
	_, err := NewOpenAIClient(openaiTestConfig("http://localhost"))
	assert.ErrorContains(t, err, "TEST_OPENAI_API_KEY")
}

func TestOpenAIGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/responses", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req["model"])

		_ = json.NewEncoder(w).Encode(responsesBody("resp_1", "completed", "the answer"))
	}))
	defer server.Close()

	client := newOpenAITestClient(t, server, false)

	got, err := client.Generate(context.Background(), "system", "user question")
	require.NoError(t, err)
	assert.Equal(t, "the answer", got)
}

func TestOpenAIGenerate_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(responsesBody("resp_1", "completed", "recovered"))
	}))
	defer server.Close()

	client := newOpenAITestClient(t, server, false)

	got, err := client.Generate(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "recovered", got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOpenAIGenerate_NonRetryableFailsFast(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newOpenAITestClient(t, server, false)

	_, err := client.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "401 must not be retried")

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "openai", provErr.Provider)
}

func TestOpenAIResearch_BackgroundPolling(t *testing.T) {
	var polls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, true, req["background"])
			_ = json.NewEncoder(w).Encode(responsesBody("bg_1", "queued", ""))
		case r.Method == http.MethodGet:
			assert.Equal(t, "/v1/responses/bg_1", r.URL.Path)
			if polls.Add(1) < 3 {
				_ = json.NewEncoder(w).Encode(responsesBody("bg_1", "in_progress", ""))
				return
			}
			_ = json.NewEncoder(w).Encode(responsesBody("bg_1", "completed", "deep findings"))
		}
	}))
	defer server.Close()

	client := newOpenAITestClient(t, server, true)

	got, err := client.Research(context.Background(), "big question")
	require.NoError(t, err)
	assert.Equal(t, "deep findings", got)
	assert.Equal(t, int32(3), polls.Load())
}

func TestOpenAIResearch_BackgroundFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = json.NewEncoder(w).Encode(responsesBody("bg_2", "queued", ""))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "bg_2",
			"status": "failed",
			"error":  map[string]any{"message": "model overloaded"},
		})
	}))
	defer server.Close()

	client := newOpenAITestClient(t, server, true)

	_, err := client.Research(context.Background(), "big question")
	require.Error(t, err)
	assert.ErrorContains(t, err, "model overloaded")
}

func TestOpenAIResearch_BackgroundPollExhaustion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = json.NewEncoder(w).Encode(responsesBody("bg_3", "queued", ""))
			return
		}
		_ = json.NewEncoder(w).Encode(responsesBody("bg_3", "in_progress", ""))
	}))
	defer server.Close()

	client := newOpenAITestClient(t, server, true)

	got, err := client.Research(context.Background(), "slow question")
	require.NoError(t, err, "exhausting the poll budget is not an error")
	assert.Contains(t, got, "bg_3", "placeholder names the background job")
}
