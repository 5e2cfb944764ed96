package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnonymousSession holds the schema definition for the AnonymousSession entity.
// One row per anonymous caller, bound to the IP that first created it. Rows are
// never hard-deleted; a converted session stays around for audit and as the
// re-login signal.
type AnonymousSession struct {
	ent.Schema
}

// Fields of the AnonymousSession.
func (AnonymousSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("token").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Opaque session identifier carried in the anon_session_id cookie"),
		field.String("ip_address").
			NotEmpty(),
		field.Int("points_remaining").
			Default(0).
			NonNegative(),
		field.String("status").
			Default("active"),
		field.String("converted_user_id").
			Optional().
			Nillable(),
		field.Time("last_bonus_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_used_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AnonymousSession.
func (AnonymousSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ip_address", "status"),
	}
}
