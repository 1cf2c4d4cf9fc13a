package models

import "time"

// StartResearchInput is the service-layer input for creating a session.
type StartResearchInput struct {
	UserID    string
	UserEmail string
	Prompt    string
}

// SubmitAnswerInput is the service-layer input for answering a refinement
// question.
type SubmitAnswerInput struct {
	SessionID  string
	UserID     string
	QuestionID string
	Answer     string
}

// SessionListParams controls dashboard history listing.
type SessionListParams struct {
	UserID   string
	Page     int
	PageSize int
}

// SessionListResult is a page of sessions plus pagination metadata.
type SessionListResult struct {
	Sessions   []SessionSummary `json:"sessions"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

// SessionSummary is the dashboard list projection of a session.
type SessionSummary struct {
	SessionID     string     `json:"session_id"`
	InitialPrompt string     `json:"initial_prompt"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	EmailSentAt   *time.Time `json:"email_sent_at,omitempty"`
	ErrorMessage  string     `json:"error_message,omitempty"`
}
