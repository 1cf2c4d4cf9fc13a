package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/pkg/config"
	"github.com/inquira/inquira/pkg/models"
)

func strPtr(s string) *string { return &s }

func completedSession() *ent.ResearchSession {
	completed := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	return &ent.ResearchSession{
		ID:            "sess-42",
		UserEmail:     "user@example.com",
		InitialPrompt: "What drives aurora borealis activity?",
		RefinementQuestions: []models.RefinementQuestion{
			{ID: "q1", Question: "Scientific or casual tone?", Answer: "Scientific"},
		},
		RefinedPrompt: strPtr("What drives aurora borealis activity?\n\nAdditional context:\nQ: Scientific or casual tone?\nA: Scientific"),
		OpenaiResult:  strPtr("Solar wind interacting with the magnetosphere."),
		GeminiResult:  strPtr("Charged particles funneled along field lines."),
		CompletedAt:   &completed,
	}
}

func TestPDFRendererRender(t *testing.T) {
	renderer := NewPDFRenderer(&config.ReportConfig{
		Title:  "Research Report",
		Author: "Inquira",
	})

	pdf, err := renderer.Render(completedSession())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	// A valid PDF starts with the %PDF- marker.
	assert.Equal(t, "%PDF-", string(pdf[:5]))
}

func TestPDFRendererRender_NoQuestions(t *testing.T) {
	renderer := NewPDFRenderer(&config.ReportConfig{Title: "Research Report"})

	session := completedSession()
	session.RefinementQuestions = nil

	pdf, err := renderer.Render(session)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestPDFRendererRender_NilSession(t *testing.T) {
	renderer := NewPDFRenderer(&config.ReportConfig{Title: "Research Report"})

	_, err := renderer.Render(nil)
	assert.Error(t, err)
}
