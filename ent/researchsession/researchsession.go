// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the researchsession type in the database.
	Label = "research_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldUserEmail holds the string denoting the user_email field in the database.
	FieldUserEmail = "user_email"
	// FieldInitialPrompt holds the string denoting the initial_prompt field in the database.
	FieldInitialPrompt = "initial_prompt"
	// FieldRefinementQuestions holds the string denoting the refinement_questions field in the database.
	FieldRefinementQuestions = "refinement_questions"
	// FieldRefinedPrompt holds the string denoting the refined_prompt field in the database.
	FieldRefinedPrompt = "refined_prompt"
	// FieldOpenaiResult holds the string denoting the openai_result field in the database.
	FieldOpenaiResult = "openai_result"
	// FieldGeminiResult holds the string denoting the gemini_result field in the database.
	FieldGeminiResult = "gemini_result"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldEmailSentAt holds the string denoting the email_sent_at field in the database.
	FieldEmailSentAt = "email_sent_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// Table holds the table name of the researchsession in the database.
	Table = "research_sessions"
)

// Columns holds all SQL columns for researchsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldUserEmail,
	FieldInitialPrompt,
	FieldRefinementQuestions,
	FieldRefinedPrompt,
	FieldOpenaiResult,
	FieldGeminiResult,
	FieldStatus,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
	FieldEmailSentAt,
	FieldPodID,
	FieldStartedAt,
	FieldLastInteractionAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusRefining   Status = "refining"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusEmailSent  Status = "email_sent"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRefining, StatusProcessing, StatusCompleted, StatusEmailSent, StatusFailed:
		return nil
	default:
		return fmt.Errorf("researchsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ResearchSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUserEmail orders the results by the user_email field.
func ByUserEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserEmail, opts...).ToFunc()
}

// ByInitialPrompt orders the results by the initial_prompt field.
func ByInitialPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialPrompt, opts...).ToFunc()
}

// ByRefinedPrompt orders the results by the refined_prompt field.
func ByRefinedPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefinedPrompt, opts...).ToFunc()
}

// ByOpenaiResult orders the results by the openai_result field.
func ByOpenaiResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenaiResult, opts...).ToFunc()
}

// ByGeminiResult orders the results by the gemini_result field.
func ByGeminiResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeminiResult, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByEmailSentAt orders the results by the email_sent_at field.
func ByEmailSentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSentAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}
