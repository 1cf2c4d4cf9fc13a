// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	researchsessionFields := schema.ResearchSession{}.Fields()
	_ = researchsessionFields
	// researchsessionDescCreatedAt is the schema descriptor for created_at field.
	researchsessionDescCreatedAt := researchsessionFields[10].Descriptor()
	// researchsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchsession.DefaultCreatedAt = researchsessionDescCreatedAt.Default.(func() time.Time)
	// researchsessionDescUpdatedAt is the schema descriptor for updated_at field.
	researchsessionDescUpdatedAt := researchsessionFields[11].Descriptor()
	// researchsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	researchsession.DefaultUpdatedAt = researchsessionDescUpdatedAt.Default.(func() time.Time)
	// researchsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	researchsession.UpdateDefaultUpdatedAt = researchsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
