package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// PointsTransaction holds the schema definition for the PointsTransaction
// entity: an append-only audit record written in the same transaction as every
// balance credit, so the ledger can be reconstructed from the log.
type PointsTransaction struct {
	ent.Schema
}

// Fields of the PointsTransaction.
func (PointsTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("amount"),
		field.String("reason").
			NotEmpty(),
		field.String("external_ref").
			Optional().
			Default("").
			Comment("Payment intent / subscription id the credit reconciles against"),
		field.Int("balance_after"),
		field.String("description").
			Optional().
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PointsTransaction.
func (PointsTransaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ledger", UserLedger.Type).
			Ref("transactions").
			Unique().
			Required(),
	}
}
