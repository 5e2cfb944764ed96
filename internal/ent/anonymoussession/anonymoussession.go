// Code generated by ent, DO NOT EDIT.

package anonymoussession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the anonymoussession type in the database.
	Label = "anonymous_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldToken holds the string denoting the token field in the database.
	FieldToken = "token"
	// FieldIPAddress holds the string denoting the ip_address field in the database.
	FieldIPAddress = "ip_address"
	// FieldPointsRemaining holds the string denoting the points_remaining field in the database.
	FieldPointsRemaining = "points_remaining"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConvertedUserID holds the string denoting the converted_user_id field in the database.
	FieldConvertedUserID = "converted_user_id"
	// FieldLastBonusAt holds the string denoting the last_bonus_at field in the database.
	FieldLastBonusAt = "last_bonus_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastUsedAt holds the string denoting the last_used_at field in the database.
	FieldLastUsedAt = "last_used_at"
	// Table holds the table name of the anonymoussession in the database.
	Table = "anonymous_sessions"
)

// Columns holds all SQL columns for anonymoussession fields.
var Columns = []string{
	FieldID,
	FieldToken,
	FieldIPAddress,
	FieldPointsRemaining,
	FieldStatus,
	FieldConvertedUserID,
	FieldLastBonusAt,
	FieldCreatedAt,
	FieldLastUsedAt,
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
	// TokenValidator is a validator for the "token" field. It is called by the builders before save.
	TokenValidator func(string) error
	// IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	IPAddressValidator func(string) error
	// DefaultPointsRemaining holds the default value on creation for the "points_remaining" field.
	DefaultPointsRemaining int
	// PointsRemainingValidator is a validator for the "points_remaining" field. It is called by the builders before save.
	PointsRemainingValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastUsedAt holds the default value on creation for the "last_used_at" field.
	DefaultLastUsedAt func() time.Time
	// UpdateDefaultLastUsedAt holds the default value on update for the "last_used_at" field.
	UpdateDefaultLastUsedAt func() time.Time
)

// OrderOption defines the ordering options for the AnonymousSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByToken orders the results by the token field.
func ByToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToken, opts...).ToFunc()
}

// ByIPAddress orders the results by the ip_address field.
func ByIPAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPAddress, opts...).ToFunc()
}

// ByPointsRemaining orders the results by the points_remaining field.
func ByPointsRemaining(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsRemaining, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConvertedUserID orders the results by the converted_user_id field.
func ByConvertedUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConvertedUserID, opts...).ToFunc()
}

// ByLastBonusAt orders the results by the last_bonus_at field.
func ByLastBonusAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBonusAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastUsedAt orders the results by the last_used_at field.
func ByLastUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedAt, opts...).ToFunc()
}
