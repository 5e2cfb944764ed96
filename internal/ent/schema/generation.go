package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Generation holds the schema definition for the Generation entity.
// Created in the submission request after the points check; driven to a
// terminal state (completed/failed) only by the worker callback, matched on
// job_id. Exactly one of user_id/session_id is set.
type Generation struct {
	ent.Schema
}

// Fields of the Generation.
func (Generation) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id").
			Unique().
			NotEmpty().
			Comment("External worker's job identifier"),
		field.String("user_id").
			Optional().
			Nillable(),
		field.Int("session_id").
			Optional().
			Nillable(),
		field.String("prompt").
			NotEmpty(),
		field.String("name").
			Optional().
			Default(""),
		field.String("status").
			Default("pending"),
		field.String("image_url").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("model_settings", map[string]any{}).
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.Bool("favorite").
			Default(false),
		field.String("batch_id").
			Optional().
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Generation.
func (Generation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
		index.Fields("status"),
	}
}
