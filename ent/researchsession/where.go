// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/inquira/inquira/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUserID, v))
}

// UserEmail applies equality check predicate on the "user_email" field. It's identical to UserEmailEQ.
func UserEmail(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUserEmail, v))
}

// InitialPrompt applies equality check predicate on the "initial_prompt" field. It's identical to InitialPromptEQ.
func InitialPrompt(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldInitialPrompt, v))
}

// RefinedPrompt applies equality check predicate on the "refined_prompt" field. It's identical to RefinedPromptEQ.
func RefinedPrompt(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldRefinedPrompt, v))
}

// OpenaiResult applies equality check predicate on the "openai_result" field. It's identical to OpenaiResultEQ.
func OpenaiResult(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldOpenaiResult, v))
}

// GeminiResult applies equality check predicate on the "gemini_result" field. It's identical to GeminiResultEQ.
func GeminiResult(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldGeminiResult, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCompletedAt, v))
}

// EmailSentAt applies equality check predicate on the "email_sent_at" field. It's identical to EmailSentAtEQ.
func EmailSentAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldEmailSentAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldPodID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStartedAt, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldUserID, v))
}

// UserEmailEQ applies the EQ predicate on the "user_email" field.
func UserEmailEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUserEmail, v))
}

// UserEmailNEQ applies the NEQ predicate on the "user_email" field.
func UserEmailNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldUserEmail, v))
}

// UserEmailIn applies the In predicate on the "user_email" field.
func UserEmailIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldUserEmail, vs...))
}

// UserEmailNotIn applies the NotIn predicate on the "user_email" field.
func UserEmailNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldUserEmail, vs...))
}

// UserEmailGT applies the GT predicate on the "user_email" field.
func UserEmailGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldUserEmail, v))
}

// UserEmailGTE applies the GTE predicate on the "user_email" field.
func UserEmailGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldUserEmail, v))
}

// UserEmailLT applies the LT predicate on the "user_email" field.
func UserEmailLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldUserEmail, v))
}

// UserEmailLTE applies the LTE predicate on the "user_email" field.
func UserEmailLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldUserEmail, v))
}

// UserEmailContains applies the Contains predicate on the "user_email" field.
func UserEmailContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldUserEmail, v))
}

// UserEmailHasPrefix applies the HasPrefix predicate on the "user_email" field.
func UserEmailHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldUserEmail, v))
}

// UserEmailHasSuffix applies the HasSuffix predicate on the "user_email" field.
func UserEmailHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldUserEmail, v))
}

// UserEmailEqualFold applies the EqualFold predicate on the "user_email" field.
func UserEmailEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldUserEmail, v))
}

// UserEmailContainsFold applies the ContainsFold predicate on the "user_email" field.
func UserEmailContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldUserEmail, v))
}

// InitialPromptEQ applies the EQ predicate on the "initial_prompt" field.
func InitialPromptEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldInitialPrompt, v))
}

// InitialPromptNEQ applies the NEQ predicate on the "initial_prompt" field.
func InitialPromptNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldInitialPrompt, v))
}

// InitialPromptIn applies the In predicate on the "initial_prompt" field.
func InitialPromptIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldInitialPrompt, vs...))
}

// InitialPromptNotIn applies the NotIn predicate on the "initial_prompt" field.
func InitialPromptNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldInitialPrompt, vs...))
}

// InitialPromptGT applies the GT predicate on the "initial_prompt" field.
func InitialPromptGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldInitialPrompt, v))
}

// InitialPromptGTE applies the GTE predicate on the "initial_prompt" field.
func InitialPromptGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldInitialPrompt, v))
}

// InitialPromptLT applies the LT predicate on the "initial_prompt" field.
func InitialPromptLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldInitialPrompt, v))
}

// InitialPromptLTE applies the LTE predicate on the "initial_prompt" field.
func InitialPromptLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldInitialPrompt, v))
}

// InitialPromptContains applies the Contains predicate on the "initial_prompt" field.
func InitialPromptContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldInitialPrompt, v))
}

// InitialPromptHasPrefix applies the HasPrefix predicate on the "initial_prompt" field.
func InitialPromptHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldInitialPrompt, v))
}

// InitialPromptHasSuffix applies the HasSuffix predicate on the "initial_prompt" field.
func InitialPromptHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldInitialPrompt, v))
}

// InitialPromptEqualFold applies the EqualFold predicate on the "initial_prompt" field.
func InitialPromptEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldInitialPrompt, v))
}

// InitialPromptContainsFold applies the ContainsFold predicate on the "initial_prompt" field.
func InitialPromptContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldInitialPrompt, v))
}

// RefinementQuestionsIsNil applies the IsNil predicate on the "refinement_questions" field.
func RefinementQuestionsIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldRefinementQuestions))
}

// RefinementQuestionsNotNil applies the NotNil predicate on the "refinement_questions" field.
func RefinementQuestionsNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldRefinementQuestions))
}

// RefinedPromptEQ applies the EQ predicate on the "refined_prompt" field.
func RefinedPromptEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldRefinedPrompt, v))
}

// RefinedPromptNEQ applies the NEQ predicate on the "refined_prompt" field.
func RefinedPromptNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldRefinedPrompt, v))
}

// RefinedPromptIn applies the In predicate on the "refined_prompt" field.
func RefinedPromptIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldRefinedPrompt, vs...))
}

// RefinedPromptNotIn applies the NotIn predicate on the "refined_prompt" field.
func RefinedPromptNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldRefinedPrompt, vs...))
}

// RefinedPromptGT applies the GT predicate on the "refined_prompt" field.
func RefinedPromptGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldRefinedPrompt, v))
}

// RefinedPromptGTE applies the GTE predicate on the "refined_prompt" field.
func RefinedPromptGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldRefinedPrompt, v))
}

// RefinedPromptLT applies the LT predicate on the "refined_prompt" field.
func RefinedPromptLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldRefinedPrompt, v))
}

// RefinedPromptLTE applies the LTE predicate on the "refined_prompt" field.
func RefinedPromptLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldRefinedPrompt, v))
}

// RefinedPromptContains applies the Contains predicate on the "refined_prompt" field.
func RefinedPromptContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldRefinedPrompt, v))
}

// RefinedPromptHasPrefix applies the HasPrefix predicate on the "refined_prompt" field.
func RefinedPromptHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldRefinedPrompt, v))
}

// RefinedPromptHasSuffix applies the HasSuffix predicate on the "refined_prompt" field.
func RefinedPromptHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldRefinedPrompt, v))
}

// RefinedPromptIsNil applies the IsNil predicate on the "refined_prompt" field.
func RefinedPromptIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldRefinedPrompt))
}

// RefinedPromptNotNil applies the NotNil predicate on the "refined_prompt" field.
func RefinedPromptNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldRefinedPrompt))
}

// RefinedPromptEqualFold applies the EqualFold predicate on the "refined_prompt" field.
func RefinedPromptEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldRefinedPrompt, v))
}

// RefinedPromptContainsFold applies the ContainsFold predicate on the "refined_prompt" field.
func RefinedPromptContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldRefinedPrompt, v))
}

// OpenaiResultEQ applies the EQ predicate on the "openai_result" field.
func OpenaiResultEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldOpenaiResult, v))
}

// OpenaiResultNEQ applies the NEQ predicate on the "openai_result" field.
func OpenaiResultNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldOpenaiResult, v))
}

// OpenaiResultIn applies the In predicate on the "openai_result" field.
func OpenaiResultIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldOpenaiResult, vs...))
}

// OpenaiResultNotIn applies the NotIn predicate on the "openai_result" field.
func OpenaiResultNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldOpenaiResult, vs...))
}

// OpenaiResultGT applies the GT predicate on the "openai_result" field.
func OpenaiResultGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldOpenaiResult, v))
}

// OpenaiResultGTE applies the GTE predicate on the "openai_result" field.
func OpenaiResultGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldOpenaiResult, v))
}

// OpenaiResultLT applies the LT predicate on the "openai_result" field.
func OpenaiResultLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldOpenaiResult, v))
}

// OpenaiResultLTE applies the LTE predicate on the "openai_result" field.
func OpenaiResultLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldOpenaiResult, v))
}

// OpenaiResultContains applies the Contains predicate on the "openai_result" field.
func OpenaiResultContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldOpenaiResult, v))
}

// OpenaiResultHasPrefix applies the HasPrefix predicate on the "openai_result" field.
func OpenaiResultHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldOpenaiResult, v))
}

// OpenaiResultHasSuffix applies the HasSuffix predicate on the "openai_result" field.
func OpenaiResultHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldOpenaiResult, v))
}

// OpenaiResultIsNil applies the IsNil predicate on the "openai_result" field.
func OpenaiResultIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldOpenaiResult))
}

// OpenaiResultNotNil applies the NotNil predicate on the "openai_result" field.
func OpenaiResultNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldOpenaiResult))
}

// OpenaiResultEqualFold applies the EqualFold predicate on the "openai_result" field.
func OpenaiResultEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldOpenaiResult, v))
}

// OpenaiResultContainsFold applies the ContainsFold predicate on the "openai_result" field.
func OpenaiResultContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldOpenaiResult, v))
}

// GeminiResultEQ applies the EQ predicate on the "gemini_result" field.
func GeminiResultEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldGeminiResult, v))
}

// GeminiResultNEQ applies the NEQ predicate on the "gemini_result" field.
func GeminiResultNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldGeminiResult, v))
}

// GeminiResultIn applies the In predicate on the "gemini_result" field.
func GeminiResultIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldGeminiResult, vs...))
}

// GeminiResultNotIn applies the NotIn predicate on the "gemini_result" field.
func GeminiResultNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldGeminiResult, vs...))
}

// GeminiResultGT applies the GT predicate on the "gemini_result" field.
func GeminiResultGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldGeminiResult, v))
}

// GeminiResultGTE applies the GTE predicate on the "gemini_result" field.
func GeminiResultGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldGeminiResult, v))
}

// GeminiResultLT applies the LT predicate on the "gemini_result" field.
func GeminiResultLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldGeminiResult, v))
}

// GeminiResultLTE applies the LTE predicate on the "gemini_result" field.
func GeminiResultLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldGeminiResult, v))
}

// GeminiResultContains applies the Contains predicate on the "gemini_result" field.
func GeminiResultContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldGeminiResult, v))
}

// GeminiResultHasPrefix applies the HasPrefix predicate on the "gemini_result" field.
func GeminiResultHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldGeminiResult, v))
}

// GeminiResultHasSuffix applies the HasSuffix predicate on the "gemini_result" field.
func GeminiResultHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldGeminiResult, v))
}

// GeminiResultIsNil applies the IsNil predicate on the "gemini_result" field.
func GeminiResultIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldGeminiResult))
}

// GeminiResultNotNil applies the NotNil predicate on the "gemini_result" field.
func GeminiResultNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldGeminiResult))
}

// GeminiResultEqualFold applies the EqualFold predicate on the "gemini_result" field.
func GeminiResultEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldGeminiResult, v))
}

// GeminiResultContainsFold applies the ContainsFold predicate on the "gemini_result" field.
func GeminiResultContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldGeminiResult, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldCompletedAt))
}

// EmailSentAtEQ applies the EQ predicate on the "email_sent_at" field.
func EmailSentAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldEmailSentAt, v))
}

// EmailSentAtNEQ applies the NEQ predicate on the "email_sent_at" field.
func EmailSentAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldEmailSentAt, v))
}

// EmailSentAtIn applies the In predicate on the "email_sent_at" field.
func EmailSentAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldEmailSentAt, vs...))
}

// EmailSentAtNotIn applies the NotIn predicate on the "email_sent_at" field.
func EmailSentAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldEmailSentAt, vs...))
}

// EmailSentAtGT applies the GT predicate on the "email_sent_at" field.
func EmailSentAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldEmailSentAt, v))
}

// EmailSentAtGTE applies the GTE predicate on the "email_sent_at" field.
func EmailSentAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldEmailSentAt, v))
}

// EmailSentAtLT applies the LT predicate on the "email_sent_at" field.
func EmailSentAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldEmailSentAt, v))
}

// EmailSentAtLTE applies the LTE predicate on the "email_sent_at" field.
func EmailSentAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldEmailSentAt, v))
}

// EmailSentAtIsNil applies the IsNil predicate on the "email_sent_at" field.
func EmailSentAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldEmailSentAt))
}

// EmailSentAtNotNil applies the NotNil predicate on the "email_sent_at" field.
func EmailSentAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldEmailSentAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldPodID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldStartedAt))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldLastInteractionAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.NotPredicates(p))
}
