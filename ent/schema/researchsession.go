package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/inquira/inquira/pkg/models"
)

// ResearchSession holds the schema definition for the ResearchSession entity.
// It is the aggregate root of the system: one record per end-to-end research
// request, from initial prompt through refinement, parallel provider research,
// and report delivery.
type ResearchSession struct {
	ent.Schema
}

// Fields of the ResearchSession.
func (ResearchSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Owner identity from the auth proxy"),
		field.String("user_email").
			Immutable().
			Comment("Delivery address for the final report"),
		field.Text("initial_prompt").
			Immutable().
			Comment("The user's original free-text question"),
		field.JSON("refinement_questions", []models.RefinementQuestion{}).
			Optional().
			Comment("Ordered clarifying questions; length fixed at creation, only answers mutate"),
		field.Text("refined_prompt").
			Optional().
			Nillable().
			Comment("Final prompt sent to both providers; set exactly once"),
		field.Text("openai_result").
			Optional().
			Nillable(),
		field.Text("gemini_result").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "refining", "processing", "completed", "email_sent", "failed").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Set only on transition to failed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When both provider results were persisted"),
		field.Time("email_sent_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker claim owner, for multi-replica coordination"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the session for research"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat, for orphan detection"),
	}
}

// Indexes of the ResearchSession.
func (ResearchSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id", "created_at"),

		// Worker claim scan: unclaimed processing sessions
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),

		// Partial index for unclaimed queue entries
		index.Fields("pod_id").
			Annotations(entsql.IndexWhere("pod_id IS NULL")),
	}
}
