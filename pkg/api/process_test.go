package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/models"
	"github.com/inquira/inquira/pkg/queue"
	"github.com/inquira/inquira/pkg/services"
	testdb "github.com/inquira/inquira/test/database"
)

type staticPlanner struct {
	questions []models.RefinementQuestion
}

func (p staticPlanner) Plan(ctx context.Context, prompt string) []models.RefinementQuestion {
	return p.questions
}

// completingExecutor mimics the real executor's happy path: persist results
// via the conditional update, then report delivery.
type completingExecutor struct {
	sessions *services.SessionService
}

func (e *completingExecutor) Execute(ctx context.Context, session *ent.ResearchSession) *queue.ExecutionResult {
	won, err := e.sessions.CompleteResearch(ctx, session.ID, "openai findings", "gemini findings")
	if err != nil {
		return &queue.ExecutionResult{Status: researchsession.StatusFailed, Error: err}
	}
	if !won {
		return &queue.ExecutionResult{Status: researchsession.StatusCompleted}
	}
	return &queue.ExecutionResult{Status: researchsession.StatusEmailSent}
}

type failingExecutor struct{}

func (failingExecutor) Execute(ctx context.Context, session *ent.ResearchSession) *queue.ExecutionResult {
	return &queue.ExecutionResult{
		Status: researchsession.StatusFailed,
		Error:  errors.New("provider unavailable"),
	}
}

func newProcessTestServer(t *testing.T, planner services.RefinementPlanner) (*services.SessionService, func(executor queue.SessionExecutor) *httptest.Server) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client, planner)

	return svc, func(executor queue.SessionExecutor) *httptest.Server {
		srv := httptest.NewServer(NewServer(nil, svc, nil, executor, "api-pod").Router())
		t.Cleanup(srv.Close)
		return srv
	}
}

func startProcessingSession(t *testing.T, svc *services.SessionService) *ent.ResearchSession {
	t.Helper()
	session, err := svc.StartResearch(context.Background(), models.StartResearchInput{
		UserID:    "alice",
		UserEmail: "alice@example.com",
		Prompt:    "process endpoint test",
	})
	require.NoError(t, err)
	require.Equal(t, researchsession.StatusProcessing, session.Status)
	return session
}

func postProcess(t *testing.T, srv *httptest.Server, sessionID string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/v1/internal/research/"+sessionID+"/process", "application/json", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestProcessSession_RunsExecutorSynchronously(t *testing.T) {
	svc, newSrv := newProcessTestServer(t, staticPlanner{})
	srv := newSrv(&completingExecutor{sessions: svc})

	session := startProcessingSession(t, svc)

	resp := postProcess(t, srv, session.ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := svc.GetSessionByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusEmailSent, got.Status)
	require.NotNil(t, got.OpenaiResult)
	assert.Equal(t, "openai findings", *got.OpenaiResult)
}

func TestProcessSession_ExecutorFailureRecorded(t *testing.T) {
	svc, newSrv := newProcessTestServer(t, staticPlanner{})
	srv := newSrv(failingExecutor{})

	session := startProcessingSession(t, svc)

	resp := postProcess(t, srv, session.ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := svc.GetSessionByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "provider unavailable")
}

func TestProcessSession_Errors(t *testing.T) {
	svc, newSrv := newProcessTestServer(t, staticPlanner{
		questions: []models.RefinementQuestion{{ID: "q1", Question: "Which region?"}},
	})
	srv := newSrv(failingExecutor{})

	resp := postProcess(t, srv, "does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Refining sessions are not resumable.
	session, err := svc.StartResearch(context.Background(), models.StartResearchInput{
		UserID:    "alice",
		UserEmail: "alice@example.com",
		Prompt:    "needs refinement",
	})
	require.NoError(t, err)
	require.Equal(t, researchsession.StatusRefining, session.Status)

	resp = postProcess(t, srv, session.ID)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
