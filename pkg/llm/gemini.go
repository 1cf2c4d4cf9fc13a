package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/inquira/inquira/pkg/config"
	"github.com/inquira/inquira/pkg/httpx"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Gemini generateContent REST API.
type GeminiClient struct {
	cfg        *config.ProviderConfig
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGeminiClient builds the adapter from configuration. The API key is
// read from the environment variable named by cfg.APIKeyEnv.
func NewGeminiClient(cfg *config.ProviderConfig) (*GeminiClient, error) {
	apiKey := strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
	if apiKey == "" {
		return nil, fmt.Errorf("missing %s", cfg.APIKeyEnv)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}

	return &GeminiClient{
		cfg:        cfg,
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default().With("provider", "gemini"),
	}, nil
}

// Name implements Provider.
func (c *GeminiClient) Name() string { return "gemini" }

// Research implements Provider.
func (c *GeminiClient) Research(ctx context.Context, prompt string) (string, error) {
	return c.Generate(ctx, ResearchSystemPrompt, prompt)
}

// Generate issues a single generateContent call.
func (c *GeminiClient) Generate(ctx context.Context, system, user string) (string, error) {
	req := generateContentRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: system}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: user}}},
		},
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", c.cfg.Model)

	var resp generateContentResponse
	if err := c.do(ctx, path, req, &resp); err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}

	// An empty candidate list is a valid (empty) result, not an error.
	var out strings.Builder
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			out.WriteString(part.Text)
		}
		break // first candidate only
	}
	return out.String(), nil
}

// ────────────────────────────────────────────────────────────
// Wire types
// ────────────────────────────────────────────────────────────

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason,omitempty"`
	} `json:"candidates"`
}

func (c *GeminiClient) do(ctx context.Context, path string, body, out any) error {
	backoff := 1 * time.Second

	for attempt := 0; ; attempt++ {
		resp, raw, err := c.doOnce(ctx, path, body)
		if err == nil {
			if err := json.Unmarshal(raw, out); err != nil {
				return fmt.Errorf("decoding response: %w", err)
			}
			return nil
		}

		if !httpx.IsRetryableError(err) || attempt >= c.cfg.MaxRetries {
			return err
		}

		sleepFor := httpx.Jitter(httpx.RetryAfterDuration(resp, backoff, 10*time.Second))
		c.logger.Warn("Request retrying",
			"path", path,
			"attempt", attempt+1,
			"max_retries", c.cfg.MaxRetries,
			"sleep", sleepFor.String(),
			"error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleepFor):
		}
		backoff *= 2
	}
}

func (c *GeminiClient) doOnce(ctx context.Context, path string, body any) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, raw, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return resp, raw, nil
}
