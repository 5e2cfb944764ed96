package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// UserLedger holds the schema definition for the UserLedger entity.
// Exactly one row per identity-provider user; this row is the authoritative
// points balance. Subscription fields shadow the billing provider's state and
// are mirrored (best-effort) onto the identity provider's public metadata.
type UserLedger struct {
	ent.Schema
}

// Fields of the UserLedger.
func (UserLedger) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.Int("points_remaining").
			Default(0).
			NonNegative(),
		field.Int("total_points_earned").
			Default(0).
			NonNegative(),
		field.Time("last_bonus_at").
			Optional().
			Nillable(),
		field.String("stripe_customer_id").
			Unique().
			Optional().
			Nillable(),
		field.String("stripe_subscription_id").
			Optional().
			Nillable(),
		field.String("subscription_status").
			Default("none"),
		field.String("subscription_type").
			Optional().
			Default(""),
		field.Time("subscription_period_end").
			Optional().
			Nillable(),
		field.Time("next_points_credit").
			Optional().
			Nillable().
			Comment("When the next mid-term credit is due for yearly plans; nil when none is due"),
		field.Bool("cancel_at_period_end").
			Default(false),
		field.Time("subscription_updated_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the UserLedger.
func (UserLedger) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transactions", PointsTransaction.Type),
	}
}
