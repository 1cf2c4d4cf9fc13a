// Package models contains shared request/response and domain value types.
package models

// RefinementQuestion is one clarifying question generated before the main
// research call. Questions are appended once at session creation and never
// reordered or removed; only Answer mutates, and it is set at most once.
type RefinementQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// Answered reports whether the question has a non-empty answer.
func (q RefinementQuestion) Answered() bool {
	return q.Answer != ""
}

// AllAnswered reports whether every question in the set has a non-empty
// answer. This is a set predicate, not a sequence predicate: out-of-order
// answering is tolerated.
func AllAnswered(questions []RefinementQuestion) bool {
	for _, q := range questions {
		if !q.Answered() {
			return false
		}
	}
	return true
}

// NextUnanswered returns the first question (in original order) without an
// answer, or nil if all questions are answered.
func NextUnanswered(questions []RefinementQuestion) *RefinementQuestion {
	for i := range questions {
		if !questions[i].Answered() {
			return &questions[i]
		}
	}
	return nil
}
