// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ResearchSessionsColumns holds the columns for the "research_sessions" table.
	ResearchSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "user_email", Type: field.TypeString},
		{Name: "initial_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "refinement_questions", Type: field.TypeJSON, Nullable: true},
		{Name: "refined_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "openai_result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "gemini_result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "refining", "processing", "completed", "email_sent", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "email_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// ResearchSessionsTable holds the schema information for the "research_sessions" table.
	ResearchSessionsTable = &schema.Table{
		Name:       "research_sessions",
		Columns:    ResearchSessionsColumns,
		PrimaryKey: []*schema.Column{ResearchSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchsession_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[8]},
			},
			{
				Name:    "researchsession_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[1], ResearchSessionsColumns[10]},
			},
			{
				Name:    "researchsession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[8], ResearchSessionsColumns[10]},
			},
			{
				Name:    "researchsession_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[8], ResearchSessionsColumns[16]},
			},
			{
				Name:    "researchsession_pod_id",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "pod_id IS NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ResearchSessionsTable,
	}
)

func init() {
}
