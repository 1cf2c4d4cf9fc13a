// Package mailer delivers report emails through the SendGrid v3 API.
package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
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

const defaultSendGridBaseURL = "https://api.sendgrid.com"

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename string
	MIMEType string
	Content  []byte
}

// SendRequest is the normalized outgoing email.
type SendRequest struct {
	ToEmail     string
	ToName      string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Client is the SendGrid HTTP client.
type Client struct {
	cfg        *config.MailerConfig
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the SendGrid client from configuration. The API key is
// read from the environment variable named by cfg.APIKeyEnv.
func NewClient(cfg *config.MailerConfig) (*Client, error) {
	apiKey := strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
	if apiKey == "" {
		return nil, fmt.Errorf("missing %s", cfg.APIKeyEnv)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultSendGridBaseURL
	}

	return &Client{
		cfg:        cfg,
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default().With("component", "mailer"),
	}, nil
}

// ────────────────────────────────────────────────────────────
// SendGrid mail send wire types
// ────────────────────────────────────────────────────────────

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgAttachment struct {
	Content     string `json:"content"`
	Type        string `json:"type,omitempty"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition,omitempty"`
}

type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
	Attachments      []sgAttachment    `json:"attachments,omitempty"`
}

// Send delivers one email. Unlike the research providers, delivery errors
// are returned to the caller: a failed send is fatal to the session.
func (c *Client) Send(ctx context.Context, req SendRequest) error {
	if strings.TrimSpace(req.ToEmail) == "" {
		return fmt.Errorf("mailer: recipient address required")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return fmt.Errorf("mailer: subject required")
	}

	var contents []mailContent
	if t := strings.TrimSpace(req.Text); t != "" {
		contents = append(contents, mailContent{Type: "text/plain", Value: t})
	}
	if h := strings.TrimSpace(req.HTML); h != "" {
		contents = append(contents, mailContent{Type: "text/html", Value: h})
	}
	if len(contents) == 0 {
		return fmt.Errorf("mailer: text or HTML content required")
	}

	var atts []sgAttachment
	for _, a := range req.Attachments {
		if a.Filename == "" {
			return fmt.Errorf("mailer: attachment filename required")
		}
		if len(a.Content) == 0 {
			return fmt.Errorf("mailer: attachment %q missing content", a.Filename)
		}
		atts = append(atts, sgAttachment{
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			Type:        a.MIMEType,
			Filename:    a.Filename,
			Disposition: "attachment",
		})
	}

	wire := mailSendRequest{
		Personalizations: []personalization{{To: []emailAddress{{Email: req.ToEmail, Name: req.ToName}}}},
		From:             emailAddress{Email: c.cfg.FromEmail, Name: c.cfg.FromName},
		Subject:          req.Subject,
		Content:          contents,
		Attachments:      atts,
	}

	return c.do(ctx, "/v3/mail/send", wire)
}

// HTTPError carries a non-2xx SendGrid response.
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
	return fmt.Sprintf("sendgrid http %d: %s", e.StatusCode, msg)
}

// HTTPStatusCode implements httpx.HTTPStatusCoder.
func (e *HTTPError) HTTPStatusCode() int { return e.StatusCode }

func (c *Client) do(ctx context.Context, path string, body any) error {
	backoff := 1 * time.Second

	for attempt := 0; ; attempt++ {
		resp, err := c.doOnce(ctx, path, body)
		if err == nil {
			return nil
		}

		if !httpx.IsRetryableError(err) || attempt >= c.cfg.MaxRetries {
			return err
		}

		sleepFor := httpx.Jitter(httpx.RetryAfterDuration(resp, backoff, 10*time.Second))
		c.logger.Warn("Mail send retrying",
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

func (c *Client) doOnce(ctx context.Context, path string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, nil
}
