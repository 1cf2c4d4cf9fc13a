// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/models"
)

// ResearchSessionCreate is the builder for creating a ResearchSession entity.
type ResearchSessionCreate struct {
	config
	mutation *ResearchSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ResearchSessionCreate) SetUserID(v string) *ResearchSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUserEmail sets the "user_email" field.
func (_c *ResearchSessionCreate) SetUserEmail(v string) *ResearchSessionCreate {
	_c.mutation.SetUserEmail(v)
	return _c
}

// SetInitialPrompt sets the "initial_prompt" field.
func (_c *ResearchSessionCreate) SetInitialPrompt(v string) *ResearchSessionCreate {
	_c.mutation.SetInitialPrompt(v)
	return _c
}

// SetRefinementQuestions sets the "refinement_questions" field.
func (_c *ResearchSessionCreate) SetRefinementQuestions(v []models.RefinementQuestion) *ResearchSessionCreate {
	_c.mutation.SetRefinementQuestions(v)
	return _c
}

// SetRefinedPrompt sets the "refined_prompt" field.
func (_c *ResearchSessionCreate) SetRefinedPrompt(v string) *ResearchSessionCreate {
	_c.mutation.SetRefinedPrompt(v)
	return _c
}

// SetNillableRefinedPrompt sets the "refined_prompt" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableRefinedPrompt(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetRefinedPrompt(*v)
	}
	return _c
}

// SetOpenaiResult sets the "openai_result" field.
func (_c *ResearchSessionCreate) SetOpenaiResult(v string) *ResearchSessionCreate {
	_c.mutation.SetOpenaiResult(v)
	return _c
}

// SetNillableOpenaiResult sets the "openai_result" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableOpenaiResult(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetOpenaiResult(*v)
	}
	return _c
}

// SetGeminiResult sets the "gemini_result" field.
func (_c *ResearchSessionCreate) SetGeminiResult(v string) *ResearchSessionCreate {
	_c.mutation.SetGeminiResult(v)
	return _c
}

// SetNillableGeminiResult sets the "gemini_result" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableGeminiResult(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetGeminiResult(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResearchSessionCreate) SetStatus(v researchsession.Status) *ResearchSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableStatus(v *researchsession.Status) *ResearchSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ResearchSessionCreate) SetErrorMessage(v string) *ResearchSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableErrorMessage(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchSessionCreate) SetCreatedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableCreatedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResearchSessionCreate) SetUpdatedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableUpdatedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ResearchSessionCreate) SetCompletedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableCompletedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetEmailSentAt sets the "email_sent_at" field.
func (_c *ResearchSessionCreate) SetEmailSentAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetEmailSentAt(v)
	return _c
}

// SetNillableEmailSentAt sets the "email_sent_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableEmailSentAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetEmailSentAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ResearchSessionCreate) SetPodID(v string) *ResearchSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillablePodID(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ResearchSessionCreate) SetStartedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableStartedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *ResearchSessionCreate) SetLastInteractionAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableLastInteractionAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchSessionCreate) SetID(v string) *ResearchSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_c *ResearchSessionCreate) Mutation() *ResearchSessionMutation {
	return _c.mutation
}

// Save creates the ResearchSession in the database.
func (_c *ResearchSessionCreate) Save(ctx context.Context) (*ResearchSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchSessionCreate) SaveX(ctx context.Context) *ResearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := researchsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := researchsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ResearchSession.user_id"`)}
	}
	if _, ok := _c.mutation.UserEmail(); !ok {
		return &ValidationError{Name: "user_email", err: errors.New(`ent: missing required field "ResearchSession.user_email"`)}
	}
	if _, ok := _c.mutation.InitialPrompt(); !ok {
		return &ValidationError{Name: "initial_prompt", err: errors.New(`ent: missing required field "ResearchSession.initial_prompt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ResearchSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ResearchSession.updated_at"`)}
	}
	return nil
}

func (_c *ResearchSessionCreate) sqlSave(ctx context.Context) (*ResearchSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ResearchSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchSessionCreate) createSpec() (*ResearchSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchsession.Table, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(researchsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.UserEmail(); ok {
		_spec.SetField(researchsession.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = value
	}
	if value, ok := _c.mutation.InitialPrompt(); ok {
		_spec.SetField(researchsession.FieldInitialPrompt, field.TypeString, value)
		_node.InitialPrompt = value
	}
	if value, ok := _c.mutation.RefinementQuestions(); ok {
		_spec.SetField(researchsession.FieldRefinementQuestions, field.TypeJSON, value)
		_node.RefinementQuestions = value
	}
	if value, ok := _c.mutation.RefinedPrompt(); ok {
		_spec.SetField(researchsession.FieldRefinedPrompt, field.TypeString, value)
		_node.RefinedPrompt = &value
	}
	if value, ok := _c.mutation.OpenaiResult(); ok {
		_spec.SetField(researchsession.FieldOpenaiResult, field.TypeString, value)
		_node.OpenaiResult = &value
	}
	if value, ok := _c.mutation.GeminiResult(); ok {
		_spec.SetField(researchsession.FieldGeminiResult, field.TypeString, value)
		_node.GeminiResult = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(researchsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.EmailSentAt(); ok {
		_spec.SetField(researchsession.FieldEmailSentAt, field.TypeTime, value)
		_node.EmailSentAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(researchsession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(researchsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(researchsession.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	return _node, _spec
}

// ResearchSessionCreateBulk is the builder for creating many ResearchSession entities in bulk.
type ResearchSessionCreateBulk struct {
	config
	err      error
	builders []*ResearchSessionCreate
}

// Save creates the ResearchSession entities in the database.
func (_c *ResearchSessionCreateBulk) Save(ctx context.Context) ([]*ResearchSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResearchSessionCreateBulk) SaveX(ctx context.Context) []*ResearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
