package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/models"
	"github.com/inquira/inquira/pkg/queue"
)

// StartResearch handles POST /api/v1/research.
// Returns 202: the session is accepted and progresses in the background.
func (s *Server) StartResearch(c *gin.Context) {
	var req startResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	session, err := s.sessions.StartResearch(c.Request.Context(), models.StartResearchInput{
		UserID:    callerID(c),
		UserEmail: callerEmail(c),
		Prompt:    req.Prompt,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, toSessionResponse(session))
}

// SubmitAnswer handles POST /api/v1/research/:id/answers.
func (s *Server) SubmitAnswer(c *gin.Context) {
	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	session, err := s.sessions.SubmitAnswer(c.Request.Context(), models.SubmitAnswerInput{
		SessionID:  c.Param("id"),
		UserID:     callerID(c),
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// GetSession handles GET /api/v1/research/:id.
func (s *Server) GetSession(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// ListSessions handles GET /api/v1/research.
func (s *Server) ListSessions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := s.sessions.ListSessions(c.Request.Context(), models.SessionListParams{
		UserID:   callerID(c),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ProcessSession handles POST /api/v1/internal/research/:id/process.
// It claims the session for this pod and runs the shared executor
// synchronously: a processing session that lost its worker is taken over,
// and a session that failed after research completed (render or delivery
// error) is resumed with its persisted results. Safe to call repeatedly:
// research runs at most once because completion is a conditional update.
func (s *Server) ProcessSession(c *gin.Context) {
	sessionID := c.Param("id")

	session, err := s.sessions.ReclaimForResume(c.Request.Context(), sessionID, s.podID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	result := s.executor.Execute(c.Request.Context(), session)
	if result == nil {
		result = &queue.ExecutionResult{
			Status: researchsession.StatusFailed,
			Error:  errors.New("executor returned nil result"),
		}
	}

	// Terminal write uses a background context: the outcome must be
	// recorded even if the caller disconnected mid-run.
	if err := queue.FinalizeResult(context.Background(), s.sessions, sessionID, result); err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    result.Status == researchsession.StatusEmailSent,
		"session_id": sessionID,
		"status":     string(result.Status),
	})
}
