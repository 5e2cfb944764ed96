package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEvent holds the schema definition for the WebhookEvent entity.
// Idempotency log for inbound webhooks: the unique (provider, event_id) pair
// makes at-least-once delivery safe to reprocess.
type WebhookEvent struct {
	ent.Schema
}

// Fields of the WebhookEvent.
func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty(),
		field.String("event_id").
			NotEmpty(),
		field.String("event_type").
			Optional().
			Default(""),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WebhookEvent.
func (WebhookEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "event_id").
			Unique(),
	}
}
