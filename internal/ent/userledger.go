// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avelar/pixelmint/internal/ent/userledger"
)

// UserLedger is the model entity for the UserLedger schema.
type UserLedger struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PointsRemaining holds the value of the "points_remaining" field.
	PointsRemaining int `json:"points_remaining,omitempty"`
	// TotalPointsEarned holds the value of the "total_points_earned" field.
	TotalPointsEarned int `json:"total_points_earned,omitempty"`
	// LastBonusAt holds the value of the "last_bonus_at" field.
	LastBonusAt *time.Time `json:"last_bonus_at,omitempty"`
	// StripeCustomerID holds the value of the "stripe_customer_id" field.
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
	// StripeSubscriptionID holds the value of the "stripe_subscription_id" field.
	StripeSubscriptionID *string `json:"stripe_subscription_id,omitempty"`
	// SubscriptionStatus holds the value of the "subscription_status" field.
	SubscriptionStatus string `json:"subscription_status,omitempty"`
	// SubscriptionType holds the value of the "subscription_type" field.
	SubscriptionType string `json:"subscription_type,omitempty"`
	// SubscriptionPeriodEnd holds the value of the "subscription_period_end" field.
	SubscriptionPeriodEnd *time.Time `json:"subscription_period_end,omitempty"`
	// When the next mid-term credit is due for yearly plans; nil when none is due
	NextPointsCredit *time.Time `json:"next_points_credit,omitempty"`
	// CancelAtPeriodEnd holds the value of the "cancel_at_period_end" field.
	CancelAtPeriodEnd bool `json:"cancel_at_period_end,omitempty"`
	// SubscriptionUpdatedAt holds the value of the "subscription_updated_at" field.
	SubscriptionUpdatedAt *time.Time `json:"subscription_updated_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserLedgerQuery when eager-loading is set.
	Edges        UserLedgerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserLedgerEdges holds the relations/edges for other nodes in the graph.
type UserLedgerEdges struct {
	// Transactions holds the value of the transactions edge.
	Transactions []*PointsTransaction `json:"transactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e UserLedgerEdges) TransactionsOrErr() ([]*PointsTransaction, error) {
	if e.loadedTypes[0] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserLedger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userledger.FieldCancelAtPeriodEnd:
			values[i] = new(sql.NullBool)
		case userledger.FieldID, userledger.FieldPointsRemaining, userledger.FieldTotalPointsEarned:
			values[i] = new(sql.NullInt64)
		case userledger.FieldUserID, userledger.FieldStripeCustomerID, userledger.FieldStripeSubscriptionID, userledger.FieldSubscriptionStatus, userledger.FieldSubscriptionType:
			values[i] = new(sql.NullString)
		case userledger.FieldLastBonusAt, userledger.FieldSubscriptionPeriodEnd, userledger.FieldNextPointsCredit, userledger.FieldSubscriptionUpdatedAt, userledger.FieldCreatedAt, userledger.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserLedger fields.
func (_m *UserLedger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userledger.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userledger.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userledger.FieldPointsRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_remaining", values[i])
			} else if value.Valid {
				_m.PointsRemaining = int(value.Int64)
			}
		case userledger.FieldTotalPointsEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_points_earned", values[i])
			} else if value.Valid {
				_m.TotalPointsEarned = int(value.Int64)
			}
		case userledger.FieldLastBonusAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_bonus_at", values[i])
			} else if value.Valid {
				_m.LastBonusAt = new(time.Time)
				*_m.LastBonusAt = value.Time
			}
		case userledger.FieldStripeCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_customer_id", values[i])
			} else if value.Valid {
				_m.StripeCustomerID = new(string)
				*_m.StripeCustomerID = value.String
			}
		case userledger.FieldStripeSubscriptionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_subscription_id", values[i])
			} else if value.Valid {
				_m.StripeSubscriptionID = new(string)
				*_m.StripeSubscriptionID = value.String
			}
		case userledger.FieldSubscriptionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_status", values[i])
			} else if value.Valid {
				_m.SubscriptionStatus = value.String
			}
		case userledger.FieldSubscriptionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_type", values[i])
			} else if value.Valid {
				_m.SubscriptionType = value.String
			}
		case userledger.FieldSubscriptionPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_period_end", values[i])
			} else if value.Valid {
				_m.SubscriptionPeriodEnd = new(time.Time)
				*_m.SubscriptionPeriodEnd = value.Time
			}
		case userledger.FieldNextPointsCredit:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_points_credit", values[i])
			} else if value.Valid {
				_m.NextPointsCredit = new(time.Time)
				*_m.NextPointsCredit = value.Time
			}
		case userledger.FieldCancelAtPeriodEnd:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_at_period_end", values[i])
			} else if value.Valid {
				_m.CancelAtPeriodEnd = value.Bool
			}
		case userledger.FieldSubscriptionUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_updated_at", values[i])
			} else if value.Valid {
				_m.SubscriptionUpdatedAt = new(time.Time)
				*_m.SubscriptionUpdatedAt = value.Time
			}
		case userledger.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case userledger.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserLedger.
// This includes values selected through modifiers, order, etc.
func (_m *UserLedger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTransactions queries the "transactions" edge of the UserLedger entity.
func (_m *UserLedger) QueryTransactions() *PointsTransactionQuery {
	return NewUserLedgerClient(_m.config).QueryTransactions(_m)
}

// Update returns a builder for updating this UserLedger.
// Note that you need to call UserLedger.Unwrap() before calling this method if this UserLedger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserLedger) Update() *UserLedgerUpdateOne {
	return NewUserLedgerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserLedger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserLedger) Unwrap() *UserLedger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserLedger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserLedger) String() string {
	var builder strings.Builder
	builder.WriteString("UserLedger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("points_remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsRemaining))
	builder.WriteString(", ")
	builder.WriteString("total_points_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPointsEarned))
	builder.WriteString(", ")
	if v := _m.LastBonusAt; v != nil {
		builder.WriteString("last_bonus_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StripeCustomerID; v != nil {
		builder.WriteString("stripe_customer_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StripeSubscriptionID; v != nil {
		builder.WriteString("stripe_subscription_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("subscription_status=")
	builder.WriteString(_m.SubscriptionStatus)
	builder.WriteString(", ")
	builder.WriteString("subscription_type=")
	builder.WriteString(_m.SubscriptionType)
	builder.WriteString(", ")
	if v := _m.SubscriptionPeriodEnd; v != nil {
		builder.WriteString("subscription_period_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextPointsCredit; v != nil {
		builder.WriteString("next_points_credit=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("cancel_at_period_end=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelAtPeriodEnd))
	builder.WriteString(", ")
	if v := _m.SubscriptionUpdatedAt; v != nil {
		builder.WriteString("subscription_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserLedgers is a parsable slice of UserLedger.
type UserLedgers []*UserLedger
