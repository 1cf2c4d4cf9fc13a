package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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

const defaultOpenAIBaseURL = "https://api.openai.com"

// OpenAIClient calls the OpenAI Responses API. With Background enabled it
// submits the request as a background job and polls the status endpoint
// until the job reaches a terminal state or the poll budget is exhausted.
type OpenAIClient struct {
	cfg        *config.ProviderConfig
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOpenAIClient builds the adapter from configuration. The API key is
// read from the environment variable named by cfg.APIKeyEnv.
func NewOpenAIClient(cfg *config.ProviderConfig) (*OpenAIClient, error) {
	apiKey := strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
	if apiKey == "" {
		return nil, fmt.Errorf("missing %s", cfg.APIKeyEnv)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	return &OpenAIClient{
		cfg:        cfg,
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default().With("provider", "openai"),
	}, nil
}

// Name implements Provider.
func (c *OpenAIClient) Name() string { return "openai" }

// Research implements Provider.
func (c *OpenAIClient) Research(ctx context.Context, prompt string) (string, error) {
	if c.cfg.Background {
		return c.researchBackground(ctx, prompt)
	}
	return c.Generate(ctx, ResearchSystemPrompt, prompt)
}

// Generate issues a single synchronous completion call.
func (c *OpenAIClient) Generate(ctx context.Context, system, user string) (string, error) {
	req := responsesRequest{
		Model:        c.cfg.Model,
		Instructions: system,
		Input: []responsesMessage{
			{Role: "user", Content: user},
		},
	}

	var resp responsesResponse
	if err := c.do(ctx, http.MethodPost, "/v1/responses", req, &resp); err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}
	if resp.Status == "failed" {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("response failed: %s", resp.errorMessage())}
	}

	// An empty body is a valid (empty) result, not an error.
	return extractOutputText(resp), nil
}

// ────────────────────────────────────────────────────────────
// Background mode: submit → poll → {completed | failed | timed_out}
// ────────────────────────────────────────────────────────────

// researchBackground submits the research request as a background job and
// polls its status at a fixed interval. The loop is bounded by both the
// configured attempt count and a wall-clock ceiling; exhausting either
// returns a best-effort placeholder rather than blocking forever.
func (c *OpenAIClient) researchBackground(ctx context.Context, prompt string) (string, error) {
	req := responsesRequest{
		Model:        c.cfg.Model,
		Instructions: ResearchSystemPrompt,
		Input: []responsesMessage{
			{Role: "user", Content: prompt},
		},
		Background: true,
	}

	var submitted responsesResponse
	if err := c.do(ctx, http.MethodPost, "/v1/responses", req, &submitted); err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("background submit: %w", err)}
	}
	if submitted.ID == "" {
		return "", &ProviderError{Provider: c.Name(), Err: errors.New("background submit returned no response id")}
	}

	log := c.logger.With("response_id", submitted.ID)
	log.Info("Background research submitted", "status", submitted.Status)

	interval := c.cfg.BackgroundPollInterval
	maxPolls := c.cfg.BackgroundMaxPolls
	ceiling := time.Duration(maxPolls+1) * interval

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	deadline := time.NewTimer(ceiling)
	defer deadline.Stop()

	for attempt := 1; attempt <= maxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return "", &ProviderError{Provider: c.Name(), Err: ctx.Err()}
		case <-deadline.C:
			log.Warn("Background research hit wall-clock ceiling", "ceiling", ceiling)
			return backgroundPlaceholder(submitted.ID), nil
		case <-ticker.C:
		}

		var resp responsesResponse
		if err := c.do(ctx, http.MethodGet, "/v1/responses/"+submitted.ID, nil, &resp); err != nil {
			// Poll errors are not terminal; the next tick retries.
			log.Warn("Background status poll failed", "attempt", attempt, "error", err)
			continue
		}

		switch resp.Status {
		case "completed":
			return extractOutputText(resp), nil
		case "failed", "cancelled":
			return "", &ProviderError{Provider: c.Name(),
				Err: fmt.Errorf("background response %s: %s", resp.Status, resp.errorMessage())}
		default:
			// queued / in_progress — keep polling
		}
	}

	log.Warn("Background research poll attempts exhausted", "max_polls", maxPolls)
	return backgroundPlaceholder(submitted.ID), nil
}

// backgroundPlaceholder is returned when the poll budget runs out before
// the remote job finishes. The job may still complete upstream; the
// placeholder keeps the session moving instead of blocking forever.
func backgroundPlaceholder(responseID string) string {
	return fmt.Sprintf("Research is still being processed by the provider "+
		"(background job %s did not finish within the polling window). "+
		"Partial findings were not available at report time.", responseID)
}

// ────────────────────────────────────────────────────────────
// Wire types
// ────────────────────────────────────────────────────────────

type responsesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responsesRequest struct {
	Model        string             `json:"model"`
	Instructions string             `json:"instructions,omitempty"`
	Input        []responsesMessage `json:"input"`
	Background   bool               `json:"background,omitempty"`
}

type responsesResponse struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
	Output []struct {
		Type    string `json:"type"`
		Role    string `json:"role,omitempty"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text,omitempty"`
		} `json:"content,omitempty"`
	} `json:"output"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error,omitempty"`
}

func (r responsesResponse) errorMessage() string {
	if r.Error != nil && r.Error.Message != "" {
		return r.Error.Message
	}
	return "no error detail"
}

func extractOutputText(resp responsesResponse) string {
	var out strings.Builder
	for _, item := range resp.Output {
		if item.Type == "message" && item.Role == "assistant" {
			for _, c := range item.Content {
				if c.Type == "output_text" && c.Text != "" {
					out.WriteString(c.Text)
				}
			}
		}
	}
	return out.String()
}

// ────────────────────────────────────────────────────────────
// HTTP plumbing
// ────────────────────────────────────────────────────────────

// HTTPError carries a non-2xx provider response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	if len(msg) > 2000 {
		msg = msg[:2000] + "..."
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

// HTTPStatusCode implements httpx.HTTPStatusCoder.
func (e *HTTPError) HTTPStatusCode() int { return e.StatusCode }

func (c *OpenAIClient) do(ctx context.Context, method, path string, body, out any) error {
	backoff := 1 * time.Second

	for attempt := 0; ; attempt++ {
		resp, raw, err := c.doOnce(ctx, method, path, body)
		if err == nil {
			if out != nil {
				if err := json.Unmarshal(raw, out); err != nil {
					return fmt.Errorf("decoding response: %w", err)
				}
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

func (c *OpenAIClient) doOnce(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
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
