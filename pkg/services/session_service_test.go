package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/models"
	testdb "github.com/inquira/inquira/test/database"
)

// stubPlanner returns a fixed set of questions.
type stubPlanner struct {
	questions []models.RefinementQuestion
}

func (p *stubPlanner) Plan(ctx context.Context, prompt string) []models.RefinementQuestion {
	// Fresh copies so tests don't share answer state through the stub.
	out := make([]models.RefinementQuestion, len(p.questions))
	copy(out, p.questions)
	return out
}

func twoQuestions() []models.RefinementQuestion {
	return []models.RefinementQuestion{
		{ID: "q1", Question: "Which region?"},
		{ID: "q2", Question: "What time period?"},
	}
}

func newTestService(t *testing.T, planner RefinementPlanner) *SessionService {
	client := testdb.NewTestClient(t)
	return NewSessionService(client.Client, planner)
}

func startInput(prompt string) models.StartResearchInput {
	return models.StartResearchInput{
		UserID:    "alice",
		UserEmail: "alice@example.com",
		Prompt:    prompt,
	}
}

func TestStartResearch_WithQuestions(t *testing.T) {
	svc := newTestService(t, &stubPlanner{questions: twoQuestions()})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("Economic history of Europe"))
	require.NoError(t, err)

	assert.Equal(t, researchsession.StatusRefining, session.Status)
	assert.Equal(t, "alice", session.UserID)
	assert.Equal(t, "Economic history of Europe", session.InitialPrompt)
	require.Len(t, session.RefinementQuestions, 2)
	assert.Nil(t, session.RefinedPrompt)
}

func TestStartResearch_NoQuestionsGoesStraightToProcessing(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("A very specific question"))
	require.NoError(t, err)

	assert.Equal(t, researchsession.StatusProcessing, session.Status)
	require.NotNil(t, session.RefinedPrompt)
	assert.Equal(t, "A very specific question", *session.RefinedPrompt,
		"refined prompt equals initial prompt when no refinement happens")
	assert.Nil(t, session.PodID, "session is queued, not yet claimed")
}

func TestStartResearch_Validation(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	_, err := svc.StartResearch(ctx, models.StartResearchInput{
		UserEmail: "a@b.c", Prompt: "p",
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.StartResearch(ctx, models.StartResearchInput{
		UserID: "alice", UserEmail: "not-an-email", Prompt: "p",
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.StartResearch(ctx, startInput("   "))
	assert.True(t, IsValidationError(err))
}

func TestSubmitAnswer_FullRefinementFlow(t *testing.T) {
	svc := newTestService(t, &stubPlanner{questions: twoQuestions()})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("Economic history"))
	require.NoError(t, err)

	// Answer out of order: q2 first.
	session, err = svc.SubmitAnswer(ctx, models.SubmitAnswerInput{
		SessionID: session.ID, UserID: "alice", QuestionID: "q2", Answer: "1990s",
	})
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusRefining, session.Status, "one question still open")

	session, err = svc.SubmitAnswer(ctx, models.SubmitAnswerInput{
		SessionID: session.ID, UserID: "alice", QuestionID: "q1", Answer: "Europe",
	})
	require.NoError(t, err)

	assert.Equal(t, researchsession.StatusProcessing, session.Status)
	require.NotNil(t, session.RefinedPrompt)
	// Composition follows original question order, not answer order.
	assert.Equal(t,
		"Economic history\n\nAdditional context:\nQ: Which region?\nA: Europe\n\nQ: What time period?\nA: 1990s",
		*session.RefinedPrompt)
}

func TestSubmitAnswer_IdempotentReanswer(t *testing.T) {
	svc := newTestService(t, &stubPlanner{questions: twoQuestions()})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, models.SubmitAnswerInput{
		SessionID: session.ID, UserID: "alice", QuestionID: "q1", Answer: "first",
	})
	require.NoError(t, err)

	// Re-answering q1 is ignored: the first answer wins.
	session, err = svc.SubmitAnswer(ctx, models.SubmitAnswerInput{
		SessionID: session.ID, UserID: "alice", QuestionID: "q1", Answer: "second",
	})
	require.NoError(t, err)
	assert.Equal(t, "first", session.RefinementQuestions[0].Answer)
	assert.Equal(t, researchsession.StatusRefining, session.Status)
}

func TestSubmitAnswer_Errors(t *testing.T) {
	svc := newTestService(t, &stubPlanner{questions: twoQuestions()})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, models.SubmitAnswerInput{
		SessionID: session.ID, UserID: "alice", QuestionID: "q99", Answer: "x",
	})
	assert.True(t, IsValidationError(err), "unknown question id")

	_, err = svc.SubmitAnswer(ctx, models.SubmitAnswerInput{
		SessionID: "does-not-exist", UserID: "alice", QuestionID: "q1", Answer: "x",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// Another user cannot answer someone else's session.
	_, err = svc.SubmitAnswer(ctx, models.SubmitAnswerInput{
		SessionID: session.ID, UserID: "mallory", QuestionID: "q1", Answer: "x",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitAnswer_RejectedOutsideRefining(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	// Zero questions: session is already processing.
	session, err := svc.StartResearch(ctx, startInput("specific prompt"))
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, models.SubmitAnswerInput{
		SessionID: session.ID, UserID: "alice", QuestionID: "q1", Answer: "x",
	})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestGetSession_OwnerScoped(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	got, err := svc.GetSession(ctx, session.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = svc.GetSession(ctx, session.ID, "mallory")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSessions_PaginationAndOrdering(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.StartResearch(ctx, startInput(fmt.Sprintf("prompt %d", i)))
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond) // Distinct created_at ordering
	}

	result, err := svc.ListSessions(ctx, models.SessionListParams{
		UserID: "alice", Page: 1, PageSize: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalCount)
	require.Len(t, result.Sessions, 3)
	assert.Equal(t, "prompt 4", result.Sessions[0].InitialPrompt, "newest first")

	result, err = svc.ListSessions(ctx, models.SessionListParams{
		UserID: "alice", Page: 2, PageSize: 3,
	})
	require.NoError(t, err)
	assert.Len(t, result.Sessions, 2)

	// Other users see nothing.
	result, err = svc.ListSessions(ctx, models.SessionListParams{UserID: "bob"})
	require.NoError(t, err)
	assert.Zero(t, result.TotalCount)
}

func TestClaimNextSession(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	claimed, err := svc.ClaimNextSession(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, session.ID, claimed.ID)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-1", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)

	// Nothing left to claim.
	second, err := svc.ClaimNextSession(ctx, "pod-2")
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestCompleteResearch_ConditionalUpdate(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	won, err := svc.CompleteResearch(ctx, session.ID, "openai says", "gemini says")
	require.NoError(t, err)
	assert.True(t, won)

	// Second writer loses: the session already left processing.
	won, err = svc.CompleteResearch(ctx, session.ID, "late", "late")
	require.NoError(t, err)
	assert.False(t, won)

	got, err := svc.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusCompleted, got.Status)
	require.NotNil(t, got.OpenaiResult)
	assert.Equal(t, "openai says", *got.OpenaiResult)
	require.NotNil(t, got.GeminiResult)
	assert.Equal(t, "gemini says", *got.GeminiResult)
	assert.NotNil(t, got.CompletedAt)
}

func TestMarkEmailSentAndTerminalGuards(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	// Not yet completed: email_sent is invalid.
	err = svc.MarkEmailSent(ctx, session.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.CompleteResearch(ctx, session.ID, "a", "b")
	require.NoError(t, err)
	require.NoError(t, svc.MarkEmailSent(ctx, session.ID))

	got, err := svc.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusEmailSent, got.Status)
	assert.NotNil(t, got.EmailSentAt)

	// email_sent is terminal: MarkFailed must not regress it.
	require.NoError(t, svc.MarkFailed(ctx, session.ID, "should be ignored"))
	got, err = svc.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusEmailSent, got.Status)
	assert.Nil(t, got.ErrorMessage)
}

func TestMarkFailed(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	require.NoError(t, svc.MarkFailed(ctx, session.ID, "provider exploded"))

	got, err := svc.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "provider exploded", *got.ErrorMessage)
}

func TestReclaimForResume_TakesOverLostClaim(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	claimed, err := svc.ClaimNextSession(ctx, "dead-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// The resume endpoint takes over the claim from the lost worker.
	reclaimed, err := svc.ReclaimForResume(ctx, session.ID, "this-pod")
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusProcessing, reclaimed.Status)
	require.NotNil(t, reclaimed.PodID)
	assert.Equal(t, "this-pod", *reclaimed.PodID)
}

func TestReclaimForResume_FailedWithResults(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	// Research succeeded, then delivery failed.
	_, err = svc.CompleteResearch(ctx, session.ID, "openai says", "gemini says")
	require.NoError(t, err)
	require.NoError(t, svc.MarkFailed(ctx, session.ID, "deliver report: smtp down"))

	reclaimed, err := svc.ReclaimForResume(ctx, session.ID, "pod-1")
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusProcessing, reclaimed.Status)
	assert.Nil(t, reclaimed.ErrorMessage, "stale error is cleared on resume")
	require.NotNil(t, reclaimed.OpenaiResult)
	assert.Equal(t, "openai says", *reclaimed.OpenaiResult)
	require.NotNil(t, reclaimed.GeminiResult)
	assert.Equal(t, "gemini says", *reclaimed.GeminiResult)
}

func TestReclaimForResume_Errors(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	_, err := svc.ReclaimForResume(ctx, "missing", "pod-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Failed before research produced results: nothing to resume.
	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)
	require.NoError(t, svc.MarkFailed(ctx, session.ID, "provider exploded"))

	_, err = svc.ReclaimForResume(ctx, session.ID, "pod-1")
	assert.ErrorIs(t, err, ErrInvalidState)

	// Terminal success is not resumable either.
	session2, err := svc.StartResearch(ctx, startInput("prompt two"))
	require.NoError(t, err)
	_, err = svc.CompleteResearch(ctx, session2.ID, "a", "b")
	require.NoError(t, err)
	require.NoError(t, svc.MarkEmailSent(ctx, session2.ID))

	_, err = svc.ReclaimForResume(ctx, session2.ID, "pod-1")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestQueueAccounting(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	first, err := svc.StartResearch(ctx, startInput("first"))
	require.NoError(t, err)
	_, err = svc.StartResearch(ctx, startInput("second"))
	require.NoError(t, err)

	depth, err := svc.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	claimed, err := svc.ClaimNextSession(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID, "oldest session claimed first")

	depth, err = svc.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)

	active, err := svc.CountActiveResearch(ctx, "pod-1")
	require.NoError(t, err)
	assert.Equal(t, 1, active)

	active, err = svc.CountActiveResearch(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, active, "empty pod id counts across all pods")

	podSessions, err := svc.FindPodSessions(ctx, "pod-1")
	require.NoError(t, err)
	require.Len(t, podSessions, 1)
	assert.Equal(t, first.ID, podSessions[0].ID)

	before := claimed.LastInteractionAt
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.Heartbeat(ctx, first.ID))

	got, err := svc.GetSessionByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastInteractionAt)
	assert.True(t, got.LastInteractionAt.After(*before))
}

func TestFindOrphanedSessions(t *testing.T) {
	svc := newTestService(t, &stubPlanner{})
	ctx := context.Background()

	session, err := svc.StartResearch(ctx, startInput("prompt"))
	require.NoError(t, err)

	claimed, err := svc.ClaimNextSession(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Fresh heartbeat: not orphaned.
	orphans, err := svc.FindOrphanedSessions(ctx, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// A zero threshold treats any claimed session as stale.
	time.Sleep(10 * time.Millisecond)
	orphans, err = svc.FindOrphanedSessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, session.ID, orphans[0].ID)
}
