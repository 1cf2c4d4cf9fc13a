package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/pkg/config"
	"github.com/inquira/inquira/pkg/models"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	t.Setenv("TEST_SENDGRID_API_KEY", "sg-key")

	client, err := NewClient(&config.MailerConfig{
		APIKeyEnv:  "TEST_SENDGRID_API_KEY",
		BaseURL:    server.URL,
		FromEmail:  "reports@inquira.dev",
		FromName:   "Inquira Reports",
		Timeout:    5 * time.Second,
		MaxRetries: 1,
	})
	require.NoError(t, err)
	return client
}

func TestClientSend(t *testing.T) {
	var received mailSendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	err := client.Send(context.Background(), SendRequest{
		ToEmail: "user@example.com",
		Subject: "Your research report is ready",
		Text:    "attached",
		Attachments: []Attachment{{
			Filename: "report.pdf",
			MIMEType: "application/pdf",
			Content:  []byte("%PDF-fake"),
		}},
	})
	require.NoError(t, err)

	require.Len(t, received.Personalizations, 1)
	assert.Equal(t, "user@example.com", received.Personalizations[0].To[0].Email)
	assert.Equal(t, "reports@inquira.dev", received.From.Email)

	require.Len(t, received.Attachments, 1)
	decoded, err := base64.StdEncoding.DecodeString(received.Attachments[0].Content)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(decoded))
	assert.Equal(t, "attachment", received.Attachments[0].Disposition)
}

func TestClientSend_Validation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer server.Close()

	client := newTestClient(t, server)

	err := client.Send(context.Background(), SendRequest{Subject: "hi", Text: "x"})
	assert.ErrorContains(t, err, "recipient")

	err = client.Send(context.Background(), SendRequest{ToEmail: "a@b.c", Subject: "hi"})
	assert.ErrorContains(t, err, "content")
}

func TestClientSend_RetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	err := client.Send(context.Background(), SendRequest{
		ToEmail: "user@example.com",
		Subject: "subject",
		Text:    "body",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

// recordingSender captures the composed message.
type recordingSender struct {
	req SendRequest
	err error
}

func (r *recordingSender) Send(ctx context.Context, req SendRequest) error {
	r.req = req
	return r.err
}

func testSession() *ent.ResearchSession {
	completed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &ent.ResearchSession{
		ID:            "sess-1",
		UserEmail:     "user@example.com",
		InitialPrompt: "How do heat pumps work?",
		RefinementQuestions: []models.RefinementQuestion{
			{ID: "q1", Question: "Residential or industrial?", Answer: "Residential"},
		},
		CompletedAt: &completed,
	}
}

func TestServiceSendReport(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, "https://app.inquira.dev")

	err := svc.SendReport(context.Background(), testSession(), []byte("%PDF-fake"))
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", sender.req.ToEmail)
	assert.Contains(t, sender.req.Text, "How do heat pumps work?")
	assert.Contains(t, sender.req.Text, "Residential or industrial?")
	assert.Contains(t, sender.req.Text, "https://app.inquira.dev/research/sess-1")
	assert.Contains(t, sender.req.HTML, "Residential")

	require.Len(t, sender.req.Attachments, 1)
	assert.Equal(t, "research-report-sess-1.pdf", sender.req.Attachments[0].Filename)
	assert.Equal(t, "application/pdf", sender.req.Attachments[0].MIMEType)
}

func TestServiceSendReport_EmptyPDF(t *testing.T) {
	svc := NewService(&recordingSender{}, "")
	err := svc.SendReport(context.Background(), testSession(), nil)
	assert.Error(t, err)
}
