package api

import (
	"time"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/pkg/models"
)

// questionResponse is the wire form of one refinement question.
type questionResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Answered bool   `json:"answered"`
}

// sessionResponse is the wire form of a research session.
type sessionResponse struct {
	SessionID           string             `json:"session_id"`
	Status              string             `json:"status"`
	InitialPrompt       string             `json:"initial_prompt"`
	RefinementQuestions []questionResponse `json:"refinement_questions,omitempty"`
	NextQuestion        *questionResponse  `json:"next_question,omitempty"`
	RefinedPrompt       string             `json:"refined_prompt,omitempty"`
	OpenaiResult        string             `json:"openai_result,omitempty"`
	GeminiResult        string             `json:"gemini_result,omitempty"`
	ErrorMessage        string             `json:"error_message,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	CompletedAt         *time.Time         `json:"completed_at,omitempty"`
	EmailSentAt         *time.Time         `json:"email_sent_at,omitempty"`
}

// toSessionResponse projects a session for API consumers. Provider results
// are exposed only once the session reached completed or later.
func toSessionResponse(session *ent.ResearchSession) sessionResponse {
	resp := sessionResponse{
		SessionID:     session.ID,
		Status:        string(session.Status),
		InitialPrompt: session.InitialPrompt,
		CreatedAt:     session.CreatedAt,
		CompletedAt:   session.CompletedAt,
		EmailSentAt:   session.EmailSentAt,
	}

	for _, q := range session.RefinementQuestions {
		resp.RefinementQuestions = append(resp.RefinementQuestions, questionResponse{
			ID:       q.ID,
			Question: q.Question,
			Answer:   q.Answer,
			Answered: q.Answered(),
		})
	}
	if next := models.NextUnanswered(session.RefinementQuestions); next != nil {
		resp.NextQuestion = &questionResponse{
			ID:       next.ID,
			Question: next.Question,
		}
	}

	if session.RefinedPrompt != nil {
		resp.RefinedPrompt = *session.RefinedPrompt
	}
	if session.ErrorMessage != nil {
		resp.ErrorMessage = *session.ErrorMessage
	}

	// Results stay visible once persisted, including on sessions that failed
	// at the render or delivery stage after research completed.
	if session.OpenaiResult != nil {
		resp.OpenaiResult = *session.OpenaiResult
	}
	if session.GeminiResult != nil {
		resp.GeminiResult = *session.GeminiResult
	}

	return resp
}
