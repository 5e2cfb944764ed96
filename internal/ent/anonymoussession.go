// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avelar/pixelmint/internal/ent/anonymoussession"
)

// AnonymousSession is the model entity for the AnonymousSession schema.
type AnonymousSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque session identifier carried in the anon_session_id cookie
	Token string `json:"token,omitempty"`
	// IPAddress holds the value of the "ip_address" field.
	IPAddress string `json:"ip_address,omitempty"`
	// PointsRemaining holds the value of the "points_remaining" field.
	PointsRemaining int `json:"points_remaining,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ConvertedUserID holds the value of the "converted_user_id" field.
	ConvertedUserID *string `json:"converted_user_id,omitempty"`
	// LastBonusAt holds the value of the "last_bonus_at" field.
	LastBonusAt *time.Time `json:"last_bonus_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt   time.Time `json:"last_used_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnonymousSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case anonymoussession.FieldID, anonymoussession.FieldPointsRemaining:
			values[i] = new(sql.NullInt64)
		case anonymoussession.FieldToken, anonymoussession.FieldIPAddress, anonymoussession.FieldStatus, anonymoussession.FieldConvertedUserID:
			values[i] = new(sql.NullString)
		case anonymoussession.FieldLastBonusAt, anonymoussession.FieldCreatedAt, anonymoussession.FieldLastUsedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnonymousSession fields.
func (_m *AnonymousSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case anonymoussession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case anonymoussession.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = value.String
			}
		case anonymoussession.FieldIPAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_address", values[i])
			} else if value.Valid {
				_m.IPAddress = value.String
			}
		case anonymoussession.FieldPointsRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_remaining", values[i])
			} else if value.Valid {
				_m.PointsRemaining = int(value.Int64)
			}
		case anonymoussession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case anonymoussession.FieldConvertedUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field converted_user_id", values[i])
			} else if value.Valid {
				_m.ConvertedUserID = new(string)
				*_m.ConvertedUserID = value.String
			}
		case anonymoussession.FieldLastBonusAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_bonus_at", values[i])
			} else if value.Valid {
				_m.LastBonusAt = new(time.Time)
				*_m.LastBonusAt = value.Time
			}
		case anonymoussession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case anonymoussession.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnonymousSession.
// This includes values selected through modifiers, order, etc.
func (_m *AnonymousSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnonymousSession.
// Note that you need to call AnonymousSession.Unwrap() before calling this method if this AnonymousSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnonymousSession) Update() *AnonymousSessionUpdateOne {
	return NewAnonymousSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnonymousSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnonymousSession) Unwrap() *AnonymousSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnonymousSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnonymousSession) String() string {
	var builder strings.Builder
	builder.WriteString("AnonymousSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("token=")
	builder.WriteString(_m.Token)
	builder.WriteString(", ")
	builder.WriteString("ip_address=")
	builder.WriteString(_m.IPAddress)
	builder.WriteString(", ")
	builder.WriteString("points_remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsRemaining))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ConvertedUserID; v != nil {
		builder.WriteString("converted_user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastBonusAt; v != nil {
		builder.WriteString("last_bonus_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_used_at=")
	builder.WriteString(_m.LastUsedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnonymousSessions is a parsable slice of AnonymousSession.
type AnonymousSessions []*AnonymousSession
