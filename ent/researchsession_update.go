// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/inquira/inquira/ent/predicate"
	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/models"
)

// ResearchSessionUpdate is the builder for updating ResearchSession entities.
type ResearchSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdate) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRefinementQuestions sets the "refinement_questions" field.
func (_u *ResearchSessionUpdate) SetRefinementQuestions(v []models.RefinementQuestion) *ResearchSessionUpdate {
	_u.mutation.SetRefinementQuestions(v)
	return _u
}

// AppendRefinementQuestions appends value to the "refinement_questions" field.
func (_u *ResearchSessionUpdate) AppendRefinementQuestions(v []models.RefinementQuestion) *ResearchSessionUpdate {
	_u.mutation.AppendRefinementQuestions(v)
	return _u
}

// ClearRefinementQuestions clears the value of the "refinement_questions" field.
func (_u *ResearchSessionUpdate) ClearRefinementQuestions() *ResearchSessionUpdate {
	_u.mutation.ClearRefinementQuestions()
	return _u
}

// SetRefinedPrompt sets the "refined_prompt" field.
func (_u *ResearchSessionUpdate) SetRefinedPrompt(v string) *ResearchSessionUpdate {
	_u.mutation.SetRefinedPrompt(v)
	return _u
}

// SetNillableRefinedPrompt sets the "refined_prompt" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableRefinedPrompt(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetRefinedPrompt(*v)
	}
	return _u
}

// ClearRefinedPrompt clears the value of the "refined_prompt" field.
func (_u *ResearchSessionUpdate) ClearRefinedPrompt() *ResearchSessionUpdate {
	_u.mutation.ClearRefinedPrompt()
	return _u
}

// SetOpenaiResult sets the "openai_result" field.
func (_u *ResearchSessionUpdate) SetOpenaiResult(v string) *ResearchSessionUpdate {
	_u.mutation.SetOpenaiResult(v)
	return _u
}

// SetNillableOpenaiResult sets the "openai_result" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableOpenaiResult(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetOpenaiResult(*v)
	}
	return _u
}

// ClearOpenaiResult clears the value of the "openai_result" field.
func (_u *ResearchSessionUpdate) ClearOpenaiResult() *ResearchSessionUpdate {
	_u.mutation.ClearOpenaiResult()
	return _u
}

// SetGeminiResult sets the "gemini_result" field.
func (_u *ResearchSessionUpdate) SetGeminiResult(v string) *ResearchSessionUpdate {
	_u.mutation.SetGeminiResult(v)
	return _u
}

// SetNillableGeminiResult sets the "gemini_result" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableGeminiResult(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetGeminiResult(*v)
	}
	return _u
}

// ClearGeminiResult clears the value of the "gemini_result" field.
func (_u *ResearchSessionUpdate) ClearGeminiResult() *ResearchSessionUpdate {
	_u.mutation.ClearGeminiResult()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchSessionUpdate) SetStatus(v researchsession.Status) *ResearchSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableStatus(v *researchsession.Status) *ResearchSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchSessionUpdate) SetErrorMessage(v string) *ResearchSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableErrorMessage(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchSessionUpdate) ClearErrorMessage() *ResearchSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchSessionUpdate) SetUpdatedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchSessionUpdate) SetCompletedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableCompletedAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchSessionUpdate) ClearCompletedAt() *ResearchSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetEmailSentAt sets the "email_sent_at" field.
func (_u *ResearchSessionUpdate) SetEmailSentAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetEmailSentAt(v)
	return _u
}

// SetNillableEmailSentAt sets the "email_sent_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableEmailSentAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetEmailSentAt(*v)
	}
	return _u
}

// ClearEmailSentAt clears the value of the "email_sent_at" field.
func (_u *ResearchSessionUpdate) ClearEmailSentAt() *ResearchSessionUpdate {
	_u.mutation.ClearEmailSentAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ResearchSessionUpdate) SetPodID(v string) *ResearchSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillablePodID(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ResearchSessionUpdate) ClearPodID() *ResearchSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchSessionUpdate) SetStartedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableStartedAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchSessionUpdate) ClearStartedAt() *ResearchSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ResearchSessionUpdate) SetLastInteractionAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableLastInteractionAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ResearchSessionUpdate) ClearLastInteractionAt() *ResearchSessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdate) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RefinementQuestions(); ok {
		_spec.SetField(researchsession.FieldRefinementQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRefinementQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchsession.FieldRefinementQuestions, value)
		})
	}
	if _u.mutation.RefinementQuestionsCleared() {
		_spec.ClearField(researchsession.FieldRefinementQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RefinedPrompt(); ok {
		_spec.SetField(researchsession.FieldRefinedPrompt, field.TypeString, value)
	}
	if _u.mutation.RefinedPromptCleared() {
		_spec.ClearField(researchsession.FieldRefinedPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.OpenaiResult(); ok {
		_spec.SetField(researchsession.FieldOpenaiResult, field.TypeString, value)
	}
	if _u.mutation.OpenaiResultCleared() {
		_spec.ClearField(researchsession.FieldOpenaiResult, field.TypeString)
	}
	if value, ok := _u.mutation.GeminiResult(); ok {
		_spec.SetField(researchsession.FieldGeminiResult, field.TypeString, value)
	}
	if _u.mutation.GeminiResultCleared() {
		_spec.ClearField(researchsession.FieldGeminiResult, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EmailSentAt(); ok {
		_spec.SetField(researchsession.FieldEmailSentAt, field.TypeTime, value)
	}
	if _u.mutation.EmailSentAtCleared() {
		_spec.ClearField(researchsession.FieldEmailSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(researchsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(researchsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(researchsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(researchsession.FieldLastInteractionAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchSessionUpdateOne is the builder for updating a single ResearchSession entity.
type ResearchSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// SetRefinementQuestions sets the "refinement_questions" field.
func (_u *ResearchSessionUpdateOne) SetRefinementQuestions(v []models.RefinementQuestion) *ResearchSessionUpdateOne {
	_u.mutation.SetRefinementQuestions(v)
	return _u
}

// AppendRefinementQuestions appends value to the "refinement_questions" field.
func (_u *ResearchSessionUpdateOne) AppendRefinementQuestions(v []models.RefinementQuestion) *ResearchSessionUpdateOne {
	_u.mutation.AppendRefinementQuestions(v)
	return _u
}

// ClearRefinementQuestions clears the value of the "refinement_questions" field.
func (_u *ResearchSessionUpdateOne) ClearRefinementQuestions() *ResearchSessionUpdateOne {
	_u.mutation.ClearRefinementQuestions()
	return _u
}

// SetRefinedPrompt sets the "refined_prompt" field.
func (_u *ResearchSessionUpdateOne) SetRefinedPrompt(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetRefinedPrompt(v)
	return _u
}

// SetNillableRefinedPrompt sets the "refined_prompt" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableRefinedPrompt(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetRefinedPrompt(*v)
	}
	return _u
}

// ClearRefinedPrompt clears the value of the "refined_prompt" field.
func (_u *ResearchSessionUpdateOne) ClearRefinedPrompt() *ResearchSessionUpdateOne {
	_u.mutation.ClearRefinedPrompt()
	return _u
}

// SetOpenaiResult sets the "openai_result" field.
func (_u *ResearchSessionUpdateOne) SetOpenaiResult(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetOpenaiResult(v)
	return _u
}

// SetNillableOpenaiResult sets the "openai_result" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableOpenaiResult(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetOpenaiResult(*v)
	}
	return _u
}

// ClearOpenaiResult clears the value of the "openai_result" field.
func (_u *ResearchSessionUpdateOne) ClearOpenaiResult() *ResearchSessionUpdateOne {
	_u.mutation.ClearOpenaiResult()
	return _u
}

// SetGeminiResult sets the "gemini_result" field.
func (_u *ResearchSessionUpdateOne) SetGeminiResult(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetGeminiResult(v)
	return _u
}

// SetNillableGeminiResult sets the "gemini_result" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableGeminiResult(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetGeminiResult(*v)
	}
	return _u
}

// ClearGeminiResult clears the value of the "gemini_result" field.
func (_u *ResearchSessionUpdateOne) ClearGeminiResult() *ResearchSessionUpdateOne {
	_u.mutation.ClearGeminiResult()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchSessionUpdateOne) SetStatus(v researchsession.Status) *ResearchSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableStatus(v *researchsession.Status) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchSessionUpdateOne) SetErrorMessage(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableErrorMessage(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchSessionUpdateOne) ClearErrorMessage() *ResearchSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchSessionUpdateOne) SetUpdatedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchSessionUpdateOne) SetCompletedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchSessionUpdateOne) ClearCompletedAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetEmailSentAt sets the "email_sent_at" field.
func (_u *ResearchSessionUpdateOne) SetEmailSentAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetEmailSentAt(v)
	return _u
}

// SetNillableEmailSentAt sets the "email_sent_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableEmailSentAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetEmailSentAt(*v)
	}
	return _u
}

// ClearEmailSentAt clears the value of the "email_sent_at" field.
func (_u *ResearchSessionUpdateOne) ClearEmailSentAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearEmailSentAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ResearchSessionUpdateOne) SetPodID(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillablePodID(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ResearchSessionUpdateOne) ClearPodID() *ResearchSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchSessionUpdateOne) SetStartedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableStartedAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchSessionUpdateOne) ClearStartedAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ResearchSessionUpdateOne) SetLastInteractionAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ResearchSessionUpdateOne) ClearLastInteractionAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdateOne) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdateOne) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchSessionUpdateOne) Select(field string, fields ...string) *ResearchSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchSession entity.
func (_u *ResearchSessionUpdateOne) Save(ctx context.Context) (*ResearchSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) SaveX(ctx context.Context) *ResearchSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdateOne) sqlSave(ctx context.Context) (_node *ResearchSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchsession.FieldID)
		for _, f := range fields {
			if !researchsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RefinementQuestions(); ok {
		_spec.SetField(researchsession.FieldRefinementQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRefinementQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchsession.FieldRefinementQuestions, value)
		})
	}
	if _u.mutation.RefinementQuestionsCleared() {
		_spec.ClearField(researchsession.FieldRefinementQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RefinedPrompt(); ok {
		_spec.SetField(researchsession.FieldRefinedPrompt, field.TypeString, value)
	}
	if _u.mutation.RefinedPromptCleared() {
		_spec.ClearField(researchsession.FieldRefinedPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.OpenaiResult(); ok {
		_spec.SetField(researchsession.FieldOpenaiResult, field.TypeString, value)
	}
	if _u.mutation.OpenaiResultCleared() {
		_spec.ClearField(researchsession.FieldOpenaiResult, field.TypeString)
	}
	if value, ok := _u.mutation.GeminiResult(); ok {
		_spec.SetField(researchsession.FieldGeminiResult, field.TypeString, value)
	}
	if _u.mutation.GeminiResultCleared() {
		_spec.ClearField(researchsession.FieldGeminiResult, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EmailSentAt(); ok {
		_spec.SetField(researchsession.FieldEmailSentAt, field.TypeTime, value)
	}
	if _u.mutation.EmailSentAtCleared() {
		_spec.ClearField(researchsession.FieldEmailSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(researchsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(researchsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(researchsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(researchsession.FieldLastInteractionAt, field.TypeTime)
	}
	_node = &ResearchSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
