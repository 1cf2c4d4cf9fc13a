package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/config"
	"github.com/inquira/inquira/pkg/mailer"
	"github.com/inquira/inquira/pkg/models"
	"github.com/inquira/inquira/pkg/services"
	testdb "github.com/inquira/inquira/test/database"
)

type directToProcessingPlanner struct{}

func (directToProcessingPlanner) Plan(ctx context.Context, prompt string) []models.RefinementQuestion {
	return nil
}

// createProcessingSession drives a session through StartResearch into the
// processing queue (zero refinement questions).
func createProcessingSession(ctx context.Context, t *testing.T, svc *services.SessionService) *ent.ResearchSession {
	t.Helper()
	session, err := svc.StartResearch(ctx, models.StartResearchInput{
		UserID:    "alice",
		UserEmail: "alice@example.com",
		Prompt:    "integration test question",
	})
	require.NoError(t, err)
	require.Equal(t, researchsession.StatusProcessing, session.Status)
	return session
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentSessions:   10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		SessionTimeout:          30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		HeartbeatInterval:       30 * time.Second,
	}
}

// noopRegistry satisfies SessionRegistry for standalone workers.
type noopRegistry struct{}

func (noopRegistry) RegisterSession(string, context.CancelFunc) {}
func (noopRegistry) UnregisterSession(string)                   {}

// completeAndDeliverExecutor mimics the real executor's happy path: it
// persists both results via the conditional update and reports delivery.
type completeAndDeliverExecutor struct {
	sessions *services.SessionService
}

func (e *completeAndDeliverExecutor) Execute(ctx context.Context, session *ent.ResearchSession) *ExecutionResult {
	won, err := e.sessions.CompleteResearch(ctx, session.ID, "openai findings", "gemini findings")
	if err != nil {
		return &ExecutionResult{Status: researchsession.StatusFailed, Error: err}
	}
	if !won {
		return &ExecutionResult{Status: researchsession.StatusCompleted}
	}
	return &ExecutionResult{Status: researchsession.StatusEmailSent}
}

// failingExecutor always reports a research failure.
type failingExecutor struct{}

func (failingExecutor) Execute(ctx context.Context, session *ent.ResearchSession) *ExecutionResult {
	return &ExecutionResult{
		Status: researchsession.StatusFailed,
		Error:  errors.New("provider unavailable"),
	}
}

func TestWorkerProcessesSessionEndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client, directToProcessingPlanner{})
	ctx := context.Background()

	session := createProcessingSession(ctx, t, svc)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", svc, cfg, &completeAndDeliverExecutor{sessions: svc}, noopRegistry{})

	require.NoError(t, w.pollAndProcess(ctx))

	got, err := svc.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusEmailSent, got.Status)
	require.NotNil(t, got.OpenaiResult)
	assert.Equal(t, "openai findings", *got.OpenaiResult)
	require.NotNil(t, got.GeminiResult)
	assert.Equal(t, "gemini findings", *got.GeminiResult)
	require.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.EmailSentAt)
	assert.False(t, got.EmailSentAt.Before(*got.CompletedAt),
		"email_sent_at must not precede completed_at")

	// Queue drained
	err = w.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrNoSessionsAvailable)
}

func TestWorkerRecordsExecutorFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client, directToProcessingPlanner{})
	ctx := context.Background()

	session := createProcessingSession(ctx, t, svc)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", svc, cfg, failingExecutor{}, noopRegistry{})

	require.NoError(t, w.pollAndProcess(ctx))

	got, err := svc.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "provider unavailable")
}

func TestConcurrentClaimsDifferentSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client, directToProcessingPlanner{})
	ctx := context.Background()

	sessionIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		s := createProcessingSession(ctx, t, svc)
		sessionIDs[s.ID] = struct{}{}
	}

	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			session, err := svc.ClaimNextSession(ctx, fmt.Sprintf("pod-%d", workerID))
			if err != nil {
				errCh <- err
				return
			}
			if session != nil {
				mu.Lock()
				claimed = append(claimed, session.ID)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	// Every session claimed exactly once
	assert.Len(t, claimed, 5)
	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "session %s claimed twice", id)
		seen[id] = struct{}{}
		_, known := sessionIDs[id]
		assert.True(t, known, "claimed unknown session %s", id)
	}
}

// fixedRenderer returns canned PDF bytes.
type fixedRenderer struct{}

func (fixedRenderer) Render(session *ent.ResearchSession) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// countingSender records deliveries.
type countingSender struct {
	sent atomic.Int32
}

func (s *countingSender) Send(ctx context.Context, req mailer.SendRequest) error {
	s.sent.Add(1)
	return nil
}

func TestResumeDeliversPreservedResults(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client, directToProcessingPlanner{})
	ctx := context.Background()

	session := createProcessingSession(ctx, t, svc)

	// Research completed, then delivery failed.
	claimed, err := svc.ClaimNextSession(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	won, err := svc.CompleteResearch(ctx, session.ID, "openai findings", "gemini findings")
	require.NoError(t, err)
	require.True(t, won)
	require.NoError(t, svc.MarkFailed(ctx, session.ID, "deliver report: smtp down"))

	reclaimed, err := svc.ReclaimForResume(ctx, session.ID, "pod-2")
	require.NoError(t, err)

	// The real executor must reuse the persisted results: the providers
	// stay untouched and only rendering and delivery run.
	openai := &stubProvider{name: "openai", err: errors.New("must not be called")}
	gemini := &stubProvider{name: "gemini", err: errors.New("must not be called")}
	sender := &countingSender{}
	executor := NewResearchExecutor(svc, openai, gemini, fixedRenderer{}, mailer.NewService(sender, ""))

	result := executor.Execute(ctx, reclaimed)
	require.NotNil(t, result)
	assert.Equal(t, researchsession.StatusEmailSent, result.Status)
	assert.Equal(t, int32(0), openai.calls.Load())
	assert.Equal(t, int32(0), gemini.calls.Load())
	assert.Equal(t, int32(1), sender.sent.Load())

	require.NoError(t, FinalizeResult(ctx, svc, session.ID, result))

	got, err := svc.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusEmailSent, got.Status)
	assert.Nil(t, got.ErrorMessage)
	require.NotNil(t, got.OpenaiResult)
	assert.Equal(t, "openai findings", *got.OpenaiResult)
	require.NotNil(t, got.GeminiResult)
	assert.Equal(t, "gemini findings", *got.GeminiResult)
}

func TestStartupOrphanCleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client, directToProcessingPlanner{})
	ctx := context.Background()

	mine := createProcessingSession(ctx, t, svc)
	other := createProcessingSession(ctx, t, svc)

	claimed, err := svc.ClaimNextSession(ctx, "this-pod")
	require.NoError(t, err)
	require.Equal(t, mine.ID, claimed.ID)

	claimedOther, err := svc.ClaimNextSession(ctx, "other-pod")
	require.NoError(t, err)
	require.Equal(t, other.ID, claimedOther.ID)

	require.NoError(t, CleanupStartupOrphans(ctx, svc, "this-pod"))

	// Only this pod's session was failed
	got, err := svc.GetSessionByID(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "restarted")

	got, err = svc.GetSessionByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusProcessing, got.Status)
}
