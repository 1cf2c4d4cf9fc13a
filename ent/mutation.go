// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquira/inquira/ent/predicate"
	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeResearchSession = "ResearchSession"
)

// ResearchSessionMutation represents an operation that mutates the ResearchSession nodes in the graph.
type ResearchSessionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	user_id                    *string
	user_email                 *string
	initial_prompt             *string
	refinement_questions       *[]models.RefinementQuestion
	appendrefinement_questions []models.RefinementQuestion
	refined_prompt             *string
	openai_result              *string
	gemini_result              *string
	status                     *researchsession.Status
	error_message              *string
	created_at                 *time.Time
	updated_at                 *time.Time
	completed_at               *time.Time
	email_sent_at              *time.Time
	pod_id                     *string
	started_at                 *time.Time
	last_interaction_at        *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*ResearchSession, error)
	predicates                 []predicate.ResearchSession
}

var _ ent.Mutation = (*ResearchSessionMutation)(nil)

// researchsessionOption allows management of the mutation configuration using functional options.
type researchsessionOption func(*ResearchSessionMutation)

// newResearchSessionMutation creates new mutation for the ResearchSession entity.
func newResearchSessionMutation(c config, op Op, opts ...researchsessionOption) *ResearchSessionMutation {
	m := &ResearchSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchSessionID sets the ID field of the mutation.
func withResearchSessionID(id string) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchSession
		)
		m.oldValue = func(ctx context.Context) (*ResearchSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchSession sets the old ResearchSession of the mutation.
func withResearchSession(node *ResearchSession) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		m.oldValue = func(context.Context) (*ResearchSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchSession entities.
func (m *ResearchSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ResearchSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ResearchSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ResearchSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetUserEmail sets the "user_email" field.
func (m *ResearchSessionMutation) SetUserEmail(s string) {
	m.user_email = &s
}

// UserEmail returns the value of the "user_email" field in the mutation.
func (m *ResearchSessionMutation) UserEmail() (r string, exists bool) {
	v := m.user_email
	if v == nil {
		return
	}
	return *v, true
}

// OldUserEmail returns the old "user_email" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldUserEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserEmail: %w", err)
	}
	return oldValue.UserEmail, nil
}

// ResetUserEmail resets all changes to the "user_email" field.
func (m *ResearchSessionMutation) ResetUserEmail() {
	m.user_email = nil
}

// SetInitialPrompt sets the "initial_prompt" field.
func (m *ResearchSessionMutation) SetInitialPrompt(s string) {
	m.initial_prompt = &s
}

// InitialPrompt returns the value of the "initial_prompt" field in the mutation.
func (m *ResearchSessionMutation) InitialPrompt() (r string, exists bool) {
	v := m.initial_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialPrompt returns the old "initial_prompt" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldInitialPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialPrompt: %w", err)
	}
	return oldValue.InitialPrompt, nil
}

// ResetInitialPrompt resets all changes to the "initial_prompt" field.
func (m *ResearchSessionMutation) ResetInitialPrompt() {
	m.initial_prompt = nil
}

// SetRefinementQuestions sets the "refinement_questions" field.
func (m *ResearchSessionMutation) SetRefinementQuestions(mq []models.RefinementQuestion) {
	m.refinement_questions = &mq
	m.appendrefinement_questions = nil
}

// RefinementQuestions returns the value of the "refinement_questions" field in the mutation.
func (m *ResearchSessionMutation) RefinementQuestions() (r []models.RefinementQuestion, exists bool) {
	v := m.refinement_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldRefinementQuestions returns the old "refinement_questions" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldRefinementQuestions(ctx context.Context) (v []models.RefinementQuestion, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefinementQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefinementQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefinementQuestions: %w", err)
	}
	return oldValue.RefinementQuestions, nil
}

// AppendRefinementQuestions adds mq to the "refinement_questions" field.
func (m *ResearchSessionMutation) AppendRefinementQuestions(mq []models.RefinementQuestion) {
	m.appendrefinement_questions = append(m.appendrefinement_questions, mq...)
}

// AppendedRefinementQuestions returns the list of values that were appended to the "refinement_questions" field in this mutation.
func (m *ResearchSessionMutation) AppendedRefinementQuestions() ([]models.RefinementQuestion, bool) {
	if len(m.appendrefinement_questions) == 0 {
		return nil, false
	}
	return m.appendrefinement_questions, true
}

// ClearRefinementQuestions clears the value of the "refinement_questions" field.
func (m *ResearchSessionMutation) ClearRefinementQuestions() {
	m.refinement_questions = nil
	m.appendrefinement_questions = nil
	m.clearedFields[researchsession.FieldRefinementQuestions] = struct{}{}
}

// RefinementQuestionsCleared returns if the "refinement_questions" field was cleared in this mutation.
func (m *ResearchSessionMutation) RefinementQuestionsCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldRefinementQuestions]
	return ok
}

// ResetRefinementQuestions resets all changes to the "refinement_questions" field.
func (m *ResearchSessionMutation) ResetRefinementQuestions() {
	m.refinement_questions = nil
	m.appendrefinement_questions = nil
	delete(m.clearedFields, researchsession.FieldRefinementQuestions)
}

// SetRefinedPrompt sets the "refined_prompt" field.
func (m *ResearchSessionMutation) SetRefinedPrompt(s string) {
	m.refined_prompt = &s
}

// RefinedPrompt returns the value of the "refined_prompt" field in the mutation.
func (m *ResearchSessionMutation) RefinedPrompt() (r string, exists bool) {
	v := m.refined_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldRefinedPrompt returns the old "refined_prompt" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldRefinedPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefinedPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefinedPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefinedPrompt: %w", err)
	}
	return oldValue.RefinedPrompt, nil
}

// ClearRefinedPrompt clears the value of the "refined_prompt" field.
func (m *ResearchSessionMutation) ClearRefinedPrompt() {
	m.refined_prompt = nil
	m.clearedFields[researchsession.FieldRefinedPrompt] = struct{}{}
}

// RefinedPromptCleared returns if the "refined_prompt" field was cleared in this mutation.
func (m *ResearchSessionMutation) RefinedPromptCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldRefinedPrompt]
	return ok
}

// ResetRefinedPrompt resets all changes to the "refined_prompt" field.
func (m *ResearchSessionMutation) ResetRefinedPrompt() {
	m.refined_prompt = nil
	delete(m.clearedFields, researchsession.FieldRefinedPrompt)
}

// SetOpenaiResult sets the "openai_result" field.
func (m *ResearchSessionMutation) SetOpenaiResult(s string) {
	m.openai_result = &s
}

// OpenaiResult returns the value of the "openai_result" field in the mutation.
func (m *ResearchSessionMutation) OpenaiResult() (r string, exists bool) {
	v := m.openai_result
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenaiResult returns the old "openai_result" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldOpenaiResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenaiResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenaiResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenaiResult: %w", err)
	}
	return oldValue.OpenaiResult, nil
}

// ClearOpenaiResult clears the value of the "openai_result" field.
func (m *ResearchSessionMutation) ClearOpenaiResult() {
	m.openai_result = nil
	m.clearedFields[researchsession.FieldOpenaiResult] = struct{}{}
}

// OpenaiResultCleared returns if the "openai_result" field was cleared in this mutation.
func (m *ResearchSessionMutation) OpenaiResultCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldOpenaiResult]
	return ok
}

// ResetOpenaiResult resets all changes to the "openai_result" field.
func (m *ResearchSessionMutation) ResetOpenaiResult() {
	m.openai_result = nil
	delete(m.clearedFields, researchsession.FieldOpenaiResult)
}

// SetGeminiResult sets the "gemini_result" field.
func (m *ResearchSessionMutation) SetGeminiResult(s string) {
	m.gemini_result = &s
}

// GeminiResult returns the value of the "gemini_result" field in the mutation.
func (m *ResearchSessionMutation) GeminiResult() (r string, exists bool) {
	v := m.gemini_result
	if v == nil {
		return
	}
	return *v, true
}

// OldGeminiResult returns the old "gemini_result" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldGeminiResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeminiResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeminiResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeminiResult: %w", err)
	}
	return oldValue.GeminiResult, nil
}

// ClearGeminiResult clears the value of the "gemini_result" field.
func (m *ResearchSessionMutation) ClearGeminiResult() {
	m.gemini_result = nil
	m.clearedFields[researchsession.FieldGeminiResult] = struct{}{}
}

// GeminiResultCleared returns if the "gemini_result" field was cleared in this mutation.
func (m *ResearchSessionMutation) GeminiResultCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldGeminiResult]
	return ok
}

// ResetGeminiResult resets all changes to the "gemini_result" field.
func (m *ResearchSessionMutation) ResetGeminiResult() {
	m.gemini_result = nil
	delete(m.clearedFields, researchsession.FieldGeminiResult)
}

// SetStatus sets the "status" field.
func (m *ResearchSessionMutation) SetStatus(r researchsession.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResearchSessionMutation) Status() (r researchsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldStatus(ctx context.Context) (v researchsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResearchSessionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ResearchSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ResearchSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ResearchSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[researchsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ResearchSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ResearchSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, researchsession.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ResearchSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ResearchSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ResearchSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ResearchSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ResearchSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ResearchSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[researchsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ResearchSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, researchsession.FieldCompletedAt)
}

// SetEmailSentAt sets the "email_sent_at" field.
func (m *ResearchSessionMutation) SetEmailSentAt(t time.Time) {
	m.email_sent_at = &t
}

// EmailSentAt returns the value of the "email_sent_at" field in the mutation.
func (m *ResearchSessionMutation) EmailSentAt() (r time.Time, exists bool) {
	v := m.email_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSentAt returns the old "email_sent_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldEmailSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSentAt: %w", err)
	}
	return oldValue.EmailSentAt, nil
}

// ClearEmailSentAt clears the value of the "email_sent_at" field.
func (m *ResearchSessionMutation) ClearEmailSentAt() {
	m.email_sent_at = nil
	m.clearedFields[researchsession.FieldEmailSentAt] = struct{}{}
}

// EmailSentAtCleared returns if the "email_sent_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) EmailSentAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldEmailSentAt]
	return ok
}

// ResetEmailSentAt resets all changes to the "email_sent_at" field.
func (m *ResearchSessionMutation) ResetEmailSentAt() {
	m.email_sent_at = nil
	delete(m.clearedFields, researchsession.FieldEmailSentAt)
}

// SetPodID sets the "pod_id" field.
func (m *ResearchSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ResearchSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ResearchSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[researchsession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ResearchSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ResearchSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, researchsession.FieldPodID)
}

// SetStartedAt sets the "started_at" field.
func (m *ResearchSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ResearchSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ResearchSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[researchsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ResearchSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, researchsession.FieldStartedAt)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *ResearchSessionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *ResearchSessionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *ResearchSessionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[researchsession.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *ResearchSessionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, researchsession.FieldLastInteractionAt)
}

// Where appends a list predicates to the ResearchSessionMutation builder.
func (m *ResearchSessionMutation) Where(ps ...predicate.ResearchSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchSession).
func (m *ResearchSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchSessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.user_id != nil {
		fields = append(fields, researchsession.FieldUserID)
	}
	if m.user_email != nil {
		fields = append(fields, researchsession.FieldUserEmail)
	}
	if m.initial_prompt != nil {
		fields = append(fields, researchsession.FieldInitialPrompt)
	}
	if m.refinement_questions != nil {
		fields = append(fields, researchsession.FieldRefinementQuestions)
	}
	if m.refined_prompt != nil {
		fields = append(fields, researchsession.FieldRefinedPrompt)
	}
	if m.openai_result != nil {
		fields = append(fields, researchsession.FieldOpenaiResult)
	}
	if m.gemini_result != nil {
		fields = append(fields, researchsession.FieldGeminiResult)
	}
	if m.status != nil {
		fields = append(fields, researchsession.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, researchsession.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, researchsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, researchsession.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, researchsession.FieldCompletedAt)
	}
	if m.email_sent_at != nil {
		fields = append(fields, researchsession.FieldEmailSentAt)
	}
	if m.pod_id != nil {
		fields = append(fields, researchsession.FieldPodID)
	}
	if m.started_at != nil {
		fields = append(fields, researchsession.FieldStartedAt)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, researchsession.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchsession.FieldUserID:
		return m.UserID()
	case researchsession.FieldUserEmail:
		return m.UserEmail()
	case researchsession.FieldInitialPrompt:
		return m.InitialPrompt()
	case researchsession.FieldRefinementQuestions:
		return m.RefinementQuestions()
	case researchsession.FieldRefinedPrompt:
		return m.RefinedPrompt()
	case researchsession.FieldOpenaiResult:
		return m.OpenaiResult()
	case researchsession.FieldGeminiResult:
		return m.GeminiResult()
	case researchsession.FieldStatus:
		return m.Status()
	case researchsession.FieldErrorMessage:
		return m.ErrorMessage()
	case researchsession.FieldCreatedAt:
		return m.CreatedAt()
	case researchsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case researchsession.FieldCompletedAt:
		return m.CompletedAt()
	case researchsession.FieldEmailSentAt:
		return m.EmailSentAt()
	case researchsession.FieldPodID:
		return m.PodID()
	case researchsession.FieldStartedAt:
		return m.StartedAt()
	case researchsession.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchsession.FieldUserID:
		return m.OldUserID(ctx)
	case researchsession.FieldUserEmail:
		return m.OldUserEmail(ctx)
	case researchsession.FieldInitialPrompt:
		return m.OldInitialPrompt(ctx)
	case researchsession.FieldRefinementQuestions:
		return m.OldRefinementQuestions(ctx)
	case researchsession.FieldRefinedPrompt:
		return m.OldRefinedPrompt(ctx)
	case researchsession.FieldOpenaiResult:
		return m.OldOpenaiResult(ctx)
	case researchsession.FieldGeminiResult:
		return m.OldGeminiResult(ctx)
	case researchsession.FieldStatus:
		return m.OldStatus(ctx)
	case researchsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case researchsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case researchsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case researchsession.FieldEmailSentAt:
		return m.OldEmailSentAt(ctx)
	case researchsession.FieldPodID:
		return m.OldPodID(ctx)
	case researchsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case researchsession.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case researchsession.FieldUserEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserEmail(v)
		return nil
	case researchsession.FieldInitialPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialPrompt(v)
		return nil
	case researchsession.FieldRefinementQuestions:
		v, ok := value.([]models.RefinementQuestion)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefinementQuestions(v)
		return nil
	case researchsession.FieldRefinedPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefinedPrompt(v)
		return nil
	case researchsession.FieldOpenaiResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenaiResult(v)
		return nil
	case researchsession.FieldGeminiResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeminiResult(v)
		return nil
	case researchsession.FieldStatus:
		v, ok := value.(researchsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case researchsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case researchsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case researchsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case researchsession.FieldEmailSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSentAt(v)
		return nil
	case researchsession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case researchsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case researchsession.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResearchSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchsession.FieldRefinementQuestions) {
		fields = append(fields, researchsession.FieldRefinementQuestions)
	}
	if m.FieldCleared(researchsession.FieldRefinedPrompt) {
		fields = append(fields, researchsession.FieldRefinedPrompt)
	}
	if m.FieldCleared(researchsession.FieldOpenaiResult) {
		fields = append(fields, researchsession.FieldOpenaiResult)
	}
	if m.FieldCleared(researchsession.FieldGeminiResult) {
		fields = append(fields, researchsession.FieldGeminiResult)
	}
	if m.FieldCleared(researchsession.FieldErrorMessage) {
		fields = append(fields, researchsession.FieldErrorMessage)
	}
	if m.FieldCleared(researchsession.FieldCompletedAt) {
		fields = append(fields, researchsession.FieldCompletedAt)
	}
	if m.FieldCleared(researchsession.FieldEmailSentAt) {
		fields = append(fields, researchsession.FieldEmailSentAt)
	}
	if m.FieldCleared(researchsession.FieldPodID) {
		fields = append(fields, researchsession.FieldPodID)
	}
	if m.FieldCleared(researchsession.FieldStartedAt) {
		fields = append(fields, researchsession.FieldStartedAt)
	}
	if m.FieldCleared(researchsession.FieldLastInteractionAt) {
		fields = append(fields, researchsession.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ClearField(name string) error {
	switch name {
	case researchsession.FieldRefinementQuestions:
		m.ClearRefinementQuestions()
		return nil
	case researchsession.FieldRefinedPrompt:
		m.ClearRefinedPrompt()
		return nil
	case researchsession.FieldOpenaiResult:
		m.ClearOpenaiResult()
		return nil
	case researchsession.FieldGeminiResult:
		m.ClearGeminiResult()
		return nil
	case researchsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case researchsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case researchsession.FieldEmailSentAt:
		m.ClearEmailSentAt()
		return nil
	case researchsession.FieldPodID:
		m.ClearPodID()
		return nil
	case researchsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case researchsession.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ResetField(name string) error {
	switch name {
	case researchsession.FieldUserID:
		m.ResetUserID()
		return nil
	case researchsession.FieldUserEmail:
		m.ResetUserEmail()
		return nil
	case researchsession.FieldInitialPrompt:
		m.ResetInitialPrompt()
		return nil
	case researchsession.FieldRefinementQuestions:
		m.ResetRefinementQuestions()
		return nil
	case researchsession.FieldRefinedPrompt:
		m.ResetRefinedPrompt()
		return nil
	case researchsession.FieldOpenaiResult:
		m.ResetOpenaiResult()
		return nil
	case researchsession.FieldGeminiResult:
		m.ResetGeminiResult()
		return nil
	case researchsession.FieldStatus:
		m.ResetStatus()
		return nil
	case researchsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case researchsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case researchsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case researchsession.FieldEmailSentAt:
		m.ResetEmailSentAt()
		return nil
	case researchsession.FieldPodID:
		m.ResetPodID()
		return nil
	case researchsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case researchsession.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResearchSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResearchSession edge %s", name)
}
