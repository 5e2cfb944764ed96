// Code generated by ent, DO NOT EDIT.

package userledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the userledger type in the database.
	Label = "user_ledger"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPointsRemaining holds the string denoting the points_remaining field in the database.
	FieldPointsRemaining = "points_remaining"
	// FieldTotalPointsEarned holds the string denoting the total_points_earned field in the database.
	FieldTotalPointsEarned = "total_points_earned"
	// FieldLastBonusAt holds the string denoting the last_bonus_at field in the database.
	FieldLastBonusAt = "last_bonus_at"
	// FieldStripeCustomerID holds the string denoting the stripe_customer_id field in the database.
	FieldStripeCustomerID = "stripe_customer_id"
	// FieldStripeSubscriptionID holds the string denoting the stripe_subscription_id field in the database.
	FieldStripeSubscriptionID = "stripe_subscription_id"
	// FieldSubscriptionStatus holds the string denoting the subscription_status field in the database.
	FieldSubscriptionStatus = "subscription_status"
	// FieldSubscriptionType holds the string denoting the subscription_type field in the database.
	FieldSubscriptionType = "subscription_type"
	// FieldSubscriptionPeriodEnd holds the string denoting the subscription_period_end field in the database.
	FieldSubscriptionPeriodEnd = "subscription_period_end"
	// FieldNextPointsCredit holds the string denoting the next_points_credit field in the database.
	FieldNextPointsCredit = "next_points_credit"
	// FieldCancelAtPeriodEnd holds the string denoting the cancel_at_period_end field in the database.
	FieldCancelAtPeriodEnd = "cancel_at_period_end"
	// FieldSubscriptionUpdatedAt holds the string denoting the subscription_updated_at field in the database.
	FieldSubscriptionUpdatedAt = "subscription_updated_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTransactions holds the string denoting the transactions edge name in mutations.
	EdgeTransactions = "transactions"
	// Table holds the table name of the userledger in the database.
	Table = "user_ledgers"
	// TransactionsTable is the table that holds the transactions relation/edge.
	TransactionsTable = "points_transactions"
	// TransactionsInverseTable is the table name for the PointsTransaction entity.
	// It exists in this package in order to avoid circular dependency with the "pointstransaction" package.
	TransactionsInverseTable = "points_transactions"
	// TransactionsColumn is the table column denoting the transactions relation/edge.
	TransactionsColumn = "user_ledger_transactions"
)

// Columns holds all SQL columns for userledger fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPointsRemaining,
	FieldTotalPointsEarned,
	FieldLastBonusAt,
	FieldStripeCustomerID,
	FieldStripeSubscriptionID,
	FieldSubscriptionStatus,
	FieldSubscriptionType,
	FieldSubscriptionPeriodEnd,
	FieldNextPointsCredit,
	FieldCancelAtPeriodEnd,
	FieldSubscriptionUpdatedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultPointsRemaining holds the default value on creation for the "points_remaining" field.
	DefaultPointsRemaining int
	// PointsRemainingValidator is a validator for the "points_remaining" field. It is called by the builders before save.
	PointsRemainingValidator func(int) error
	// DefaultTotalPointsEarned holds the default value on creation for the "total_points_earned" field.
	DefaultTotalPointsEarned int
	// TotalPointsEarnedValidator is a validator for the "total_points_earned" field. It is called by the builders before save.
	TotalPointsEarnedValidator func(int) error
	// DefaultSubscriptionStatus holds the default value on creation for the "subscription_status" field.
	DefaultSubscriptionStatus string
	// DefaultSubscriptionType holds the default value on creation for the "subscription_type" field.
	DefaultSubscriptionType string
	// DefaultCancelAtPeriodEnd holds the default value on creation for the "cancel_at_period_end" field.
	DefaultCancelAtPeriodEnd bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the UserLedger queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPointsRemaining orders the results by the points_remaining field.
func ByPointsRemaining(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsRemaining, opts...).ToFunc()
}

// ByTotalPointsEarned orders the results by the total_points_earned field.
func ByTotalPointsEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPointsEarned, opts...).ToFunc()
}

// ByLastBonusAt orders the results by the last_bonus_at field.
func ByLastBonusAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBonusAt, opts...).ToFunc()
}

// ByStripeCustomerID orders the results by the stripe_customer_id field.
func ByStripeCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeCustomerID, opts...).ToFunc()
}

// ByStripeSubscriptionID orders the results by the stripe_subscription_id field.
func ByStripeSubscriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeSubscriptionID, opts...).ToFunc()
}

// BySubscriptionStatus orders the results by the subscription_status field.
func BySubscriptionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionStatus, opts...).ToFunc()
}

// BySubscriptionType orders the results by the subscription_type field.
func BySubscriptionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionType, opts...).ToFunc()
}

// BySubscriptionPeriodEnd orders the results by the subscription_period_end field.
func BySubscriptionPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionPeriodEnd, opts...).ToFunc()
}

// ByNextPointsCredit orders the results by the next_points_credit field.
func ByNextPointsCredit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextPointsCredit, opts...).ToFunc()
}

// ByCancelAtPeriodEnd orders the results by the cancel_at_period_end field.
func ByCancelAtPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelAtPeriodEnd, opts...).ToFunc()
}

// BySubscriptionUpdatedAt orders the results by the subscription_updated_at field.
func BySubscriptionUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionUpdatedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTransactionsCount orders the results by transactions count.
func ByTransactionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTransactionsStep(), opts...)
	}
}

// ByTransactions orders the results by transactions terms.
func ByTransactions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransactionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTransactionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransactionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
	)
}
