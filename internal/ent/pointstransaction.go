// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avelar/pixelmint/internal/ent/pointstransaction"
	"github.com/avelar/pixelmint/internal/ent/userledger"
)

// PointsTransaction is the model entity for the PointsTransaction schema.
type PointsTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount int `json:"amount,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Payment intent / subscription id the credit reconciles against
	ExternalRef string `json:"external_ref,omitempty"`
	// BalanceAfter holds the value of the "balance_after" field.
	BalanceAfter int `json:"balance_after,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PointsTransactionQuery when eager-loading is set.
	Edges                    PointsTransactionEdges `json:"edges"`
	user_ledger_transactions *int
	selectValues             sql.SelectValues
}

// PointsTransactionEdges holds the relations/edges for other nodes in the graph.
type PointsTransactionEdges struct {
	// Ledger holds the value of the ledger edge.
	Ledger *UserLedger `json:"ledger,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LedgerOrErr returns the Ledger value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PointsTransactionEdges) LedgerOrErr() (*UserLedger, error) {
	if e.Ledger != nil {
		return e.Ledger, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: userledger.Label}
	}
	return nil, &NotLoadedError{edge: "ledger"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PointsTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pointstransaction.FieldID, pointstransaction.FieldAmount, pointstransaction.FieldBalanceAfter:
			values[i] = new(sql.NullInt64)
		case pointstransaction.FieldReason, pointstransaction.FieldExternalRef, pointstransaction.FieldDescription:
			values[i] = new(sql.NullString)
		case pointstransaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case pointstransaction.ForeignKeys[0]: // user_ledger_transactions
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PointsTransaction fields.
func (_m *PointsTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pointstransaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pointstransaction.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = int(value.Int64)
			}
		case pointstransaction.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case pointstransaction.FieldExternalRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_ref", values[i])
			} else if value.Valid {
				_m.ExternalRef = value.String
			}
		case pointstransaction.FieldBalanceAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field balance_after", values[i])
			} else if value.Valid {
				_m.BalanceAfter = int(value.Int64)
			}
		case pointstransaction.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case pointstransaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pointstransaction.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field user_ledger_transactions", value)
			} else if value.Valid {
				_m.user_ledger_transactions = new(int)
				*_m.user_ledger_transactions = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PointsTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *PointsTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLedger queries the "ledger" edge of the PointsTransaction entity.
func (_m *PointsTransaction) QueryLedger() *UserLedgerQuery {
	return NewPointsTransactionClient(_m.config).QueryLedger(_m)
}

// Update returns a builder for updating this PointsTransaction.
// Note that you need to call PointsTransaction.Unwrap() before calling this method if this PointsTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PointsTransaction) Update() *PointsTransactionUpdateOne {
	return NewPointsTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PointsTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PointsTransaction) Unwrap() *PointsTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PointsTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PointsTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("PointsTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("external_ref=")
	builder.WriteString(_m.ExternalRef)
	builder.WriteString(", ")
	builder.WriteString("balance_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.BalanceAfter))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PointsTransactions is a parsable slice of PointsTransaction.
type PointsTransactions []*PointsTransaction
