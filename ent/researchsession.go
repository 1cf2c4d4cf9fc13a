// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/models"
)

// ResearchSession is the model entity for the ResearchSession schema.
type ResearchSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owner identity from the auth proxy
	UserID string `json:"user_id,omitempty"`
	// Delivery address for the final report
	UserEmail string `json:"user_email,omitempty"`
	// The user's original free-text question
	InitialPrompt string `json:"initial_prompt,omitempty"`
	// Ordered clarifying questions; length fixed at creation, only answers mutate
	RefinementQuestions []models.RefinementQuestion `json:"refinement_questions,omitempty"`
	// Final prompt sent to both providers; set exactly once
	RefinedPrompt *string `json:"refined_prompt,omitempty"`
	// OpenaiResult holds the value of the "openai_result" field.
	OpenaiResult *string `json:"openai_result,omitempty"`
	// GeminiResult holds the value of the "gemini_result" field.
	GeminiResult *string `json:"gemini_result,omitempty"`
	// Status holds the value of the "status" field.
	Status researchsession.Status `json:"status,omitempty"`
	// Set only on transition to failed
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When both provider results were persisted
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// EmailSentAt holds the value of the "email_sent_at" field.
	EmailSentAt *time.Time `json:"email_sent_at,omitempty"`
	// Worker claim owner, for multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// When a worker claimed the session for research
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Heartbeat, for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldRefinementQuestions:
			values[i] = new([]byte)
		case researchsession.FieldID, researchsession.FieldUserID, researchsession.FieldUserEmail, researchsession.FieldInitialPrompt, researchsession.FieldRefinedPrompt, researchsession.FieldOpenaiResult, researchsession.FieldGeminiResult, researchsession.FieldStatus, researchsession.FieldErrorMessage, researchsession.FieldPodID:
			values[i] = new(sql.NullString)
		case researchsession.FieldCreatedAt, researchsession.FieldUpdatedAt, researchsession.FieldCompletedAt, researchsession.FieldEmailSentAt, researchsession.FieldStartedAt, researchsession.FieldLastInteractionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchSession fields.
func (_m *ResearchSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case researchsession.FieldUserEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_email", values[i])
			} else if value.Valid {
				_m.UserEmail = value.String
			}
		case researchsession.FieldInitialPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_prompt", values[i])
			} else if value.Valid {
				_m.InitialPrompt = value.String
			}
		case researchsession.FieldRefinementQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field refinement_questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RefinementQuestions); err != nil {
					return fmt.Errorf("unmarshal field refinement_questions: %w", err)
				}
			}
		case researchsession.FieldRefinedPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field refined_prompt", values[i])
			} else if value.Valid {
				_m.RefinedPrompt = new(string)
				*_m.RefinedPrompt = value.String
			}
		case researchsession.FieldOpenaiResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field openai_result", values[i])
			} else if value.Valid {
				_m.OpenaiResult = new(string)
				*_m.OpenaiResult = value.String
			}
		case researchsession.FieldGeminiResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gemini_result", values[i])
			} else if value.Valid {
				_m.GeminiResult = new(string)
				*_m.GeminiResult = value.String
			}
		case researchsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = researchsession.Status(value.String)
			}
		case researchsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case researchsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case researchsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case researchsession.FieldEmailSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_sent_at", values[i])
			} else if value.Valid {
				_m.EmailSentAt = new(time.Time)
				*_m.EmailSentAt = value.Time
			}
		case researchsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case researchsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case researchsession.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchSession.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResearchSession.
// Note that you need to call ResearchSession.Unwrap() before calling this method if this ResearchSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchSession) Update() *ResearchSessionUpdateOne {
	return NewResearchSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchSession) Unwrap() *ResearchSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchSession) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("user_email=")
	builder.WriteString(_m.UserEmail)
	builder.WriteString(", ")
	builder.WriteString("initial_prompt=")
	builder.WriteString(_m.InitialPrompt)
	builder.WriteString(", ")
	builder.WriteString("refinement_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.RefinementQuestions))
	builder.WriteString(", ")
	if v := _m.RefinedPrompt; v != nil {
		builder.WriteString("refined_prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OpenaiResult; v != nil {
		builder.WriteString("openai_result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GeminiResult; v != nil {
		builder.WriteString("gemini_result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EmailSentAt; v != nil {
		builder.WriteString("email_sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ResearchSessions is a parsable slice of ResearchSession.
type ResearchSessions []*ResearchSession
