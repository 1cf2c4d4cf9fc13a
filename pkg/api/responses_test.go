package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/models"
)

func strPtr(s string) *string { return &s }

func TestToSessionResponse_FailedAfterCompletionKeepsResults(t *testing.T) {
	// A render or delivery failure moves completed → failed but keeps both
	// persisted results; the fetch endpoint must still return them.
	now := time.Now()
	session := &ent.ResearchSession{
		ID:            "sess-1",
		InitialPrompt: "question",
		Status:        researchsession.StatusFailed,
		OpenaiResult:  strPtr("openai findings"),
		GeminiResult:  strPtr("gemini findings"),
		ErrorMessage:  strPtr("deliver report: mail service unavailable"),
		CompletedAt:   &now,
	}

	resp := toSessionResponse(session)

	assert.Equal(t, "failed", resp.Status)
	assert.Equal(t, "openai findings", resp.OpenaiResult)
	assert.Equal(t, "gemini findings", resp.GeminiResult)
	assert.Equal(t, "deliver report: mail service unavailable", resp.ErrorMessage)
	require.NotNil(t, resp.CompletedAt)
}

func TestToSessionResponse_RefiningSessionHasNoResults(t *testing.T) {
	session := &ent.ResearchSession{
		ID:            "sess-2",
		InitialPrompt: "question",
		Status:        researchsession.StatusRefining,
		RefinementQuestions: []models.RefinementQuestion{
			{ID: "q1", Question: "Which region?", Answer: "Europe"},
			{ID: "q2", Question: "What period?"},
		},
	}

	resp := toSessionResponse(session)

	assert.Empty(t, resp.OpenaiResult)
	assert.Empty(t, resp.GeminiResult)
	require.Len(t, resp.RefinementQuestions, 2)
	assert.True(t, resp.RefinementQuestions[0].Answered)
	require.NotNil(t, resp.NextQuestion)
	assert.Equal(t, "q2", resp.NextQuestion.ID)
}
