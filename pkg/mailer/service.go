package mailer

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/inquira/inquira/ent"
)

// Sender delivers a composed email.
type Sender interface {
	Send(ctx context.Context, req SendRequest) error
}

// Service composes and delivers completed-report emails.
type Service struct {
	sender       Sender
	dashboardURL string
	logger       *slog.Logger
}

// NewService builds the report mail service. dashboardURL is optional; when
// set, the email links back to the session view.
func NewService(sender Sender, dashboardURL string) *Service {
	return &Service{
		sender:       sender,
		dashboardURL: strings.TrimRight(strings.TrimSpace(dashboardURL), "/"),
		logger:       slog.Default().With("component", "mailer.service"),
	}
}

// SendReport emails the rendered PDF to the session owner. The PDF rides as
// an attachment; the body summarizes the question and any clarifications.
func (s *Service) SendReport(ctx context.Context, session *ent.ResearchSession, pdf []byte) error {
	if session == nil {
		return fmt.Errorf("mailer: nil session")
	}
	if len(pdf) == 0 {
		return fmt.Errorf("mailer: empty report for session %s", session.ID)
	}

	subject := "Your research report is ready"

	req := SendRequest{
		ToEmail: session.UserEmail,
		Subject: subject,
		Text:    s.textBody(session),
		HTML:    s.htmlBody(session),
		Attachments: []Attachment{{
			Filename: reportFilename(session.ID),
			MIMEType: "application/pdf",
			Content:  pdf,
		}},
	}

	if err := s.sender.Send(ctx, req); err != nil {
		return fmt.Errorf("send report for session %s: %w", session.ID, err)
	}

	s.logger.Info("Report email delivered",
		"session_id", session.ID,
		"recipient", session.UserEmail,
		"pdf_bytes", len(pdf))
	return nil
}

func reportFilename(sessionID string) string {
	return fmt.Sprintf("research-report-%s.pdf", sessionID)
}

func (s *Service) textBody(session *ent.ResearchSession) string {
	var b strings.Builder
	b.WriteString("Your research report is attached.\n\n")
	b.WriteString("Question:\n")
	b.WriteString(session.InitialPrompt)
	b.WriteString("\n")

	if qs := session.RefinementQuestions; len(qs) > 0 {
		b.WriteString("\nClarifications:\n")
		for _, q := range qs {
			fmt.Fprintf(&b, "- %s\n  %s\n", q.Question, q.Answer)
		}
	}

	if session.CompletedAt != nil {
		fmt.Fprintf(&b, "\nCompleted: %s\n", session.CompletedAt.UTC().Format(time.RFC1123))
	}
	if s.dashboardURL != "" {
		fmt.Fprintf(&b, "\nView online: %s/research/%s\n", s.dashboardURL, session.ID)
	}
	return b.String()
}

func (s *Service) htmlBody(session *ent.ResearchSession) string {
	var b strings.Builder
	b.WriteString("<p>Your research report is attached.</p>")
	fmt.Fprintf(&b, "<p><strong>Question:</strong><br>%s</p>", html.EscapeString(session.InitialPrompt))

	if qs := session.RefinementQuestions; len(qs) > 0 {
		b.WriteString("<p><strong>Clarifications:</strong></p><ul>")
		for _, q := range qs {
			fmt.Fprintf(&b, "<li>%s<br><em>%s</em></li>",
				html.EscapeString(q.Question), html.EscapeString(q.Answer))
		}
		b.WriteString("</ul>")
	}

	if session.CompletedAt != nil {
		fmt.Fprintf(&b, "<p>Completed: %s</p>",
			html.EscapeString(session.CompletedAt.UTC().Format(time.RFC1123)))
	}
	if s.dashboardURL != "" {
		fmt.Fprintf(&b, `<p><a href="%s/research/%s">View online</a></p>`, s.dashboardURL, session.ID)
	}
	return b.String()
}
