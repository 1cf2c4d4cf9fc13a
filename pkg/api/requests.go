package api

// startResearchRequest is the body of POST /api/v1/research.
type startResearchRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// submitAnswerRequest is the body of POST /api/v1/research/:id/answers.
type submitAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}
