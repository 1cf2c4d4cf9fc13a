// Package services implements the business logic on top of the ent client.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/models"
	"github.com/inquira/inquira/pkg/refine"
)

const maxPromptLength = 10000

// RefinementPlanner produces clarifying questions for an initial prompt.
// Implementations are fail-open: an empty slice means "no refinement".
type RefinementPlanner interface {
	Plan(ctx context.Context, prompt string) []models.RefinementQuestion
}

// SessionService manages the research session lifecycle
type SessionService struct {
	client  *ent.Client
	planner RefinementPlanner
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client, planner RefinementPlanner) *SessionService {
	return &SessionService{client: client, planner: planner}
}

// StartResearch creates a session for the user's question and runs the
// refinement planner. With zero questions the session goes straight to
// processing (refined prompt = initial prompt); otherwise it waits in
// refining until every question is answered.
func (s *SessionService) StartResearch(httpCtx context.Context, input models.StartResearchInput) (*ent.ResearchSession, error) {
	// Validate input
	if strings.TrimSpace(input.UserID) == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if !strings.Contains(input.UserEmail, "@") {
		return nil, NewValidationError("user_email", "must be a valid email address")
	}
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}
	if len(prompt) > maxPromptLength {
		return nil, NewValidationError("prompt", fmt.Sprintf("must be at most %d characters", maxPromptLength))
	}

	// Use background context with timeout for the critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.client.ResearchSession.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetUserEmail(input.UserEmail).
		SetInitialPrompt(prompt).
		SetStatus(researchsession.StatusPending).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Planner runs on the request context so a client disconnect cancels
	// the LLM call; the session itself is already persisted.
	questions := s.planner.Plan(httpCtx, prompt)

	update := session.Update().SetLastInteractionAt(time.Now())
	if len(questions) == 0 {
		update = update.
			SetRefinedPrompt(prompt).
			SetStatus(researchsession.StatusProcessing)
	} else {
		update = update.
			SetRefinementQuestions(questions).
			SetStatus(researchsession.StatusRefining)
	}

	session, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record refinement plan: %w", err)
	}

	return session, nil
}

// SubmitAnswer records the answer to one refinement question. Re-answering
// an already-answered question is ignored; questions may be answered in any
// order. When the last answer lands, the refined prompt is composed and the
// session moves to processing.
func (s *SessionService) SubmitAnswer(httpCtx context.Context, input models.SubmitAnswerInput) (*ent.ResearchSession, error) {
	if strings.TrimSpace(input.QuestionID) == "" {
		return nil, NewValidationError("question_id", "required")
	}
	answer := strings.TrimSpace(input.Answer)
	if answer == "" {
		return nil, NewValidationError("answer", "required")
	}

	session, err := s.GetSession(httpCtx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if session.Status != researchsession.StatusRefining {
		return nil, ErrInvalidState
	}

	questions := session.RefinementQuestions
	idx := -1
	for i := range questions {
		if questions[i].ID == input.QuestionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, NewValidationError("question_id", "unknown question")
	}
	if questions[idx].Answered() {
		// Idempotent: first answer wins, duplicates are ignored.
		return session, nil
	}
	questions[idx].Answer = answer

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err = session.Update().
		SetRefinementQuestions(questions).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	if !models.AllAnswered(questions) {
		return session, nil
	}

	// Conditional update: only the request that answers the last question
	// moves the session to processing and sets the refined prompt.
	refined := refine.ComposeRefinedPrompt(session.InitialPrompt, questions)
	_, err = s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(session.ID),
			researchsession.StatusEQ(researchsession.StatusRefining),
		).
		SetRefinedPrompt(refined).
		SetStatus(researchsession.StatusProcessing).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize refinement: %w", err)
	}

	session, err = s.client.ResearchSession.Get(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID, scoped to its owner
func (s *SessionService) GetSession(ctx context.Context, sessionID, userID string) (*ent.ResearchSession, error) {
	session, err := s.client.ResearchSession.Query().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions lists the user's sessions, newest first, with pagination
func (s *SessionService) ListSessions(ctx context.Context, params models.SessionListParams) (*models.SessionListResult, error) {
	page := params.Page
	if page <= 0 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 20 // Default
	}
	if pageSize > 100 {
		pageSize = 100
	}

	query := s.client.ResearchSession.Query().
		Where(researchsession.UserIDEQ(params.UserID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	sessions, err := query.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order(ent.Desc(researchsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summary := models.SessionSummary{
			SessionID:     session.ID,
			InitialPrompt: session.InitialPrompt,
			Status:        string(session.Status),
			CreatedAt:     session.CreatedAt,
			CompletedAt:   session.CompletedAt,
			EmailSentAt:   session.EmailSentAt,
		}
		if session.ErrorMessage != nil {
			summary.ErrorMessage = *session.ErrorMessage
		}
		summaries = append(summaries, summary)
	}

	return &models.SessionListResult{
		Sessions:   summaries,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// ClaimNextSession atomically claims an unclaimed processing session for
// this replica. Returns (nil, nil) when nothing is claimable.
func (s *SessionService) ClaimNextSession(ctx context.Context, podID string) (*ent.ResearchSession, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	session, err := tx.ResearchSession.Query().
		Where(
			researchsession.StatusEQ(researchsession.StatusProcessing),
			researchsession.PodIDIsNil(),
		).
		Order(ent.Asc(researchsession.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // Nothing waiting for research
		}
		return nil, fmt.Errorf("failed to query claimable session: %w", err)
	}

	// Conditional update: only claim if still unclaimed
	count, err := tx.ResearchSession.Update().
		Where(
			researchsession.IDEQ(session.ID),
			researchsession.StatusEQ(researchsession.StatusProcessing),
			researchsession.PodIDIsNil(),
		).
		SetPodID(podID).
		SetStartedAt(time.Now()).
		SetLastInteractionAt(time.Now()).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}
	if count == 0 {
		// Another replica won the claim
		return nil, nil
	}

	session, err = tx.ResearchSession.Get(claimCtx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return session, nil
}

// Heartbeat refreshes the claim on an in-flight session
func (s *SessionService) Heartbeat(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.StatusEQ(researchsession.StatusProcessing),
		).
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat session: %w", err)
	}
	return nil
}

// CompleteResearch persists both provider results and moves the session to
// completed in a single conditional update. Returns false when the session
// was no longer in processing, meaning another writer got there first.
func (s *SessionService) CompleteResearch(ctx context.Context, sessionID, openaiResult, geminiResult string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.StatusEQ(researchsession.StatusProcessing),
		).
		SetOpenaiResult(openaiResult).
		SetGeminiResult(geminiResult).
		SetStatus(researchsession.StatusCompleted).
		SetCompletedAt(time.Now()).
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to complete research: %w", err)
	}
	return count > 0, nil
}

// MarkEmailSent records successful report delivery
func (s *SessionService) MarkEmailSent(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.StatusEQ(researchsession.StatusCompleted),
		).
		SetStatus(researchsession.StatusEmailSent).
		SetEmailSentAt(time.Now()).
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark email sent: %w", err)
	}
	if count == 0 {
		return ErrInvalidState
	}
	return nil
}

// MarkFailed moves a session to the failed terminal state with a diagnostic
// message. Sessions already terminal are left untouched.
func (s *SessionService) MarkFailed(ctx context.Context, sessionID, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.StatusNotIn(
				researchsession.StatusEmailSent,
				researchsession.StatusFailed,
			),
		).
		SetStatus(researchsession.StatusFailed).
		SetErrorMessage(message).
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark session failed: %w", err)
	}
	return nil
}

// ReclaimForResume claims a session for synchronous execution by the
// internal process endpoint. Two states are resumable:
//   - processing: a session whose worker was lost (claim is taken over)
//   - failed with both results persisted: research succeeded but render or
//     delivery failed; the session returns to processing so the executor
//     skips straight to delivery
//
// Research still runs at most once: completion is a conditional update, so
// a racing worker and a resume call cannot both persist results.
func (s *SessionService) ReclaimForResume(ctx context.Context, sessionID, podID string) (*ent.ResearchSession, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.Or(
				researchsession.StatusEQ(researchsession.StatusProcessing),
				researchsession.And(
					researchsession.StatusEQ(researchsession.StatusFailed),
					researchsession.OpenaiResultNotNil(),
					researchsession.GeminiResultNotNil(),
				),
			),
		).
		SetStatus(researchsession.StatusProcessing).
		SetPodID(podID).
		SetStartedAt(time.Now()).
		SetLastInteractionAt(time.Now()).
		ClearErrorMessage().
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to reclaim session: %w", err)
	}
	if count == 0 {
		exists, err := s.client.ResearchSession.Query().
			Where(researchsession.IDEQ(sessionID)).
			Exist(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to check session: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, ErrInvalidState
	}

	session, err := s.client.ResearchSession.Get(writeCtx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch reclaimed session: %w", err)
	}
	return session, nil
}

// GetSessionByID retrieves a session without owner scoping. For internal
// callers only; user-facing reads go through GetSession.
func (s *SessionService) GetSessionByID(ctx context.Context, sessionID string) (*ent.ResearchSession, error) {
	session, err := s.client.ResearchSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// QueueDepth counts processing sessions not yet claimed by any replica
func (s *SessionService) QueueDepth(ctx context.Context) (int, error) {
	count, err := s.client.ResearchSession.Query().
		Where(
			researchsession.StatusEQ(researchsession.StatusProcessing),
			researchsession.PodIDIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queue depth: %w", err)
	}
	return count, nil
}

// CountActiveResearch counts claimed processing sessions. With a non-empty
// podID the count is scoped to that replica.
func (s *SessionService) CountActiveResearch(ctx context.Context, podID string) (int, error) {
	query := s.client.ResearchSession.Query().
		Where(
			researchsession.StatusEQ(researchsession.StatusProcessing),
			researchsession.PodIDNotNil(),
		)
	if podID != "" {
		query = query.Where(researchsession.PodIDEQ(podID))
	}
	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active research: %w", err)
	}
	return count, nil
}

// FindPodSessions finds processing sessions claimed by the given replica
func (s *SessionService) FindPodSessions(ctx context.Context, podID string) ([]*ent.ResearchSession, error) {
	sessions, err := s.client.ResearchSession.Query().
		Where(
			researchsession.StatusEQ(researchsession.StatusProcessing),
			researchsession.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find pod sessions: %w", err)
	}
	return sessions, nil
}

// PurgeOldSessions deletes terminal sessions (email_sent, failed) last touched
// more than retentionDays ago. Returns the number of deleted sessions.
// Idempotent and safe to run from multiple pods.
func (s *SessionService) PurgeOldSessions(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	count, err := s.client.ResearchSession.Delete().
		Where(
			researchsession.StatusIn(researchsession.StatusEmailSent, researchsession.StatusFailed),
			researchsession.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old sessions: %w", err)
	}
	return count, nil
}

// FindOrphanedSessions finds claimed sessions whose heartbeat went stale
func (s *SessionService) FindOrphanedSessions(ctx context.Context, threshold time.Duration) ([]*ent.ResearchSession, error) {
	cutoff := time.Now().Add(-threshold)

	sessions, err := s.client.ResearchSession.Query().
		Where(
			researchsession.StatusEQ(researchsession.StatusProcessing),
			researchsession.PodIDNotNil(),
			researchsession.LastInteractionAtNotNil(),
			researchsession.LastInteractionAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned sessions: %w", err)
	}
	return sessions, nil
}
