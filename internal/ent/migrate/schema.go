// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnonymousSessionsColumns holds the columns for the "anonymous_sessions" table.
	AnonymousSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "ip_address", Type: field.TypeString},
		{Name: "points_remaining", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "converted_user_id", Type: field.TypeString, Nullable: true},
		{Name: "last_bonus_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime},
	}
	// AnonymousSessionsTable holds the schema information for the "anonymous_sessions" table.
	AnonymousSessionsTable = &schema.Table{
		Name:       "anonymous_sessions",
		Columns:    AnonymousSessionsColumns,
		PrimaryKey: []*schema.Column{AnonymousSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "anonymoussession_ip_address_status",
				Unique:  false,
				Columns: []*schema.Column{AnonymousSessionsColumns[2], AnonymousSessionsColumns[4]},
			},
		},
	}
	// GenerationsColumns holds the columns for the "generations" table.
	GenerationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeInt, Nullable: true},
		{Name: "prompt", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "model_settings", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "favorite", Type: field.TypeBool, Default: false},
		{Name: "batch_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GenerationsTable holds the schema information for the "generations" table.
	GenerationsTable = &schema.Table{
		Name:       "generations",
		Columns:    GenerationsColumns,
		PrimaryKey: []*schema.Column{GenerationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generation_user_id",
				Unique:  false,
				Columns: []*schema.Column{GenerationsColumns[2]},
			},
			{
				Name:    "generation_session_id",
				Unique:  false,
				Columns: []*schema.Column{GenerationsColumns[3]},
			},
			{
				Name:    "generation_status",
				Unique:  false,
				Columns: []*schema.Column{GenerationsColumns[6]},
			},
		},
	}
	// PointsTransactionsColumns holds the columns for the "points_transactions" table.
	PointsTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "amount", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "external_ref", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "balance_after", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_ledger_transactions", Type: field.TypeInt},
	}
	// PointsTransactionsTable holds the schema information for the "points_transactions" table.
	PointsTransactionsTable = &schema.Table{
		Name:       "points_transactions",
		Columns:    PointsTransactionsColumns,
		PrimaryKey: []*schema.Column{PointsTransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "points_transactions_user_ledgers_transactions",
				Columns:    []*schema.Column{PointsTransactionsColumns[7]},
				RefColumns: []*schema.Column{UserLedgersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UserLedgersColumns holds the columns for the "user_ledgers" table.
	UserLedgersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "points_remaining", Type: field.TypeInt, Default: 0},
		{Name: "total_points_earned", Type: field.TypeInt, Default: 0},
		{Name: "last_bonus_at", Type: field.TypeTime, Nullable: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "stripe_subscription_id", Type: field.TypeString, Nullable: true},
		{Name: "subscription_status", Type: field.TypeString, Default: "none"},
		{Name: "subscription_type", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "subscription_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "next_points_credit", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_at_period_end", Type: field.TypeBool, Default: false},
		{Name: "subscription_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserLedgersTable holds the schema information for the "user_ledgers" table.
	UserLedgersTable = &schema.Table{
		Name:       "user_ledgers",
		Columns:    UserLedgersColumns,
		PrimaryKey: []*schema.Column{UserLedgersColumns[0]},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "received_at", Type: field.TypeTime},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_provider_event_id",
				Unique:  true,
				Columns: []*schema.Column{WebhookEventsColumns[1], WebhookEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnonymousSessionsTable,
		GenerationsTable,
		PointsTransactionsTable,
		UserLedgersTable,
		WebhookEventsTable,
	}
)

func init() {
	PointsTransactionsTable.ForeignKeys[0].RefTable = UserLedgersTable
}
