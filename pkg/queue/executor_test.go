package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/ent/researchsession"
)

// stubProvider is a canned llm.Provider for fan-out tests.
type stubProvider struct {
	name  string
	text  string
	err   error
	calls atomic.Int32
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Research(ctx context.Context, prompt string) (string, error) {
	s.calls.Add(1)
	return s.text, s.err
}

func (s *stubProvider) Generate(ctx context.Context, system, user string) (string, error) {
	return s.Research(ctx, user)
}

func strPtr(s string) *string { return &s }

func processingSession() *ent.ResearchSession {
	return &ent.ResearchSession{
		ID:            "sess-1",
		UserEmail:     "user@example.com",
		InitialPrompt: "question",
		RefinedPrompt: strPtr("refined question"),
		Status:        researchsession.StatusProcessing,
	}
}

func TestExecutorRunProviders_BothQueried(t *testing.T) {
	openai := &stubProvider{name: "openai", text: "A"}
	gemini := &stubProvider{name: "gemini", text: "B"}
	e := NewResearchExecutor(nil, openai, gemini, nil, nil)

	results := e.runProviders(context.Background(), "prompt")
	require.Len(t, results, 2)
	assert.Equal(t, int32(1), openai.calls.Load())
	assert.Equal(t, int32(1), gemini.calls.Load())
}

func TestExecutorExecute_MissingRefinedPrompt(t *testing.T) {
	e := NewResearchExecutor(nil, &stubProvider{name: "openai"}, &stubProvider{name: "gemini"}, nil, nil)

	session := processingSession()
	session.RefinedPrompt = nil

	result := e.Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, researchsession.StatusFailed, result.Status)
	assert.ErrorContains(t, result.Error, "refined prompt")
}

func TestExecutorExecute_SingleProviderFailureFailsSession(t *testing.T) {
	openai := &stubProvider{name: "openai", text: "fine result"}
	gemini := &stubProvider{name: "gemini", err: errors.New("quota exceeded")}
	e := NewResearchExecutor(nil, openai, gemini, nil, nil)

	result := e.Execute(context.Background(), processingSession())
	require.NotNil(t, result)
	assert.Equal(t, researchsession.StatusFailed, result.Status)
	assert.ErrorContains(t, result.Error, "gemini")
	assert.ErrorContains(t, result.Error, "quota exceeded")

	// Both legs still ran; failure is decided after both settle.
	assert.Equal(t, int32(1), openai.calls.Load())
	assert.Equal(t, int32(1), gemini.calls.Load())
}

func TestExecutorExecute_BothProvidersFail(t *testing.T) {
	openai := &stubProvider{name: "openai", err: errors.New("openai down")}
	gemini := &stubProvider{name: "gemini", err: errors.New("gemini down")}
	e := NewResearchExecutor(nil, openai, gemini, nil, nil)

	result := e.Execute(context.Background(), processingSession())
	require.NotNil(t, result)
	assert.Equal(t, researchsession.StatusFailed, result.Status)
	assert.ErrorContains(t, result.Error, "openai down")
	assert.ErrorContains(t, result.Error, "gemini down")
}
