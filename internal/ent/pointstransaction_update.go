// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelar/pixelmint/internal/ent/pointstransaction"
	"github.com/avelar/pixelmint/internal/ent/predicate"
	"github.com/avelar/pixelmint/internal/ent/userledger"
)

// PointsTransactionUpdate is the builder for updating PointsTransaction entities.
type PointsTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *PointsTransactionMutation
}

// Where appends a list predicates to the PointsTransactionUpdate builder.
func (_u *PointsTransactionUpdate) Where(ps ...predicate.PointsTransaction) *PointsTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PointsTransactionUpdate) SetAmount(v int) *PointsTransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PointsTransactionUpdate) SetNillableAmount(v *int) *PointsTransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PointsTransactionUpdate) AddAmount(v int) *PointsTransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *PointsTransactionUpdate) SetReason(v string) *PointsTransactionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PointsTransactionUpdate) SetNillableReason(v *string) *PointsTransactionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *PointsTransactionUpdate) SetExternalRef(v string) *PointsTransactionUpdate {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *PointsTransactionUpdate) SetNillableExternalRef(v *string) *PointsTransactionUpdate {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *PointsTransactionUpdate) ClearExternalRef() *PointsTransactionUpdate {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *PointsTransactionUpdate) SetBalanceAfter(v int) *PointsTransactionUpdate {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *PointsTransactionUpdate) SetNillableBalanceAfter(v *int) *PointsTransactionUpdate {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *PointsTransactionUpdate) AddBalanceAfter(v int) *PointsTransactionUpdate {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *PointsTransactionUpdate) SetDescription(v string) *PointsTransactionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PointsTransactionUpdate) SetNillableDescription(v *string) *PointsTransactionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PointsTransactionUpdate) ClearDescription() *PointsTransactionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLedgerID sets the "ledger" edge to the UserLedger entity by ID.
func (_u *PointsTransactionUpdate) SetLedgerID(id int) *PointsTransactionUpdate {
	_u.mutation.SetLedgerID(id)
	return _u
}

// SetLedger sets the "ledger" edge to the UserLedger entity.
func (_u *PointsTransactionUpdate) SetLedger(v *UserLedger) *PointsTransactionUpdate {
	return _u.SetLedgerID(v.ID)
}

// Mutation returns the PointsTransactionMutation object of the builder.
func (_u *PointsTransactionUpdate) Mutation() *PointsTransactionMutation {
	return _u.mutation
}

// ClearLedger clears the "ledger" edge to the UserLedger entity.
func (_u *PointsTransactionUpdate) ClearLedger() *PointsTransactionUpdate {
	_u.mutation.ClearLedger()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PointsTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointsTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PointsTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointsTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointsTransactionUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := pointstransaction.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PointsTransaction.reason": %w`, err)}
		}
	}
	if _u.mutation.LedgerCleared() && len(_u.mutation.LedgerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PointsTransaction.ledger"`)
	}
	return nil
}

func (_u *PointsTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointstransaction.Table, pointstransaction.Columns, sqlgraph.NewFieldSpec(pointstransaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(pointstransaction.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(pointstransaction.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pointstransaction.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(pointstransaction.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(pointstransaction.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(pointstransaction.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(pointstransaction.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pointstransaction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pointstransaction.FieldDescription, field.TypeString)
	}
	if _u.mutation.LedgerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pointstransaction.LedgerTable,
			Columns: []string{pointstransaction.LedgerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userledger.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LedgerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pointstransaction.LedgerTable,
			Columns: []string{pointstransaction.LedgerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userledger.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointstransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PointsTransactionUpdateOne is the builder for updating a single PointsTransaction entity.
type PointsTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PointsTransactionMutation
}

// SetAmount sets the "amount" field.
func (_u *PointsTransactionUpdateOne) SetAmount(v int) *PointsTransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PointsTransactionUpdateOne) SetNillableAmount(v *int) *PointsTransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PointsTransactionUpdateOne) AddAmount(v int) *PointsTransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *PointsTransactionUpdateOne) SetReason(v string) *PointsTransactionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PointsTransactionUpdateOne) SetNillableReason(v *string) *PointsTransactionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *PointsTransactionUpdateOne) SetExternalRef(v string) *PointsTransactionUpdateOne {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *PointsTransactionUpdateOne) SetNillableExternalRef(v *string) *PointsTransactionUpdateOne {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *PointsTransactionUpdateOne) ClearExternalRef() *PointsTransactionUpdateOne {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *PointsTransactionUpdateOne) SetBalanceAfter(v int) *PointsTransactionUpdateOne {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *PointsTransactionUpdateOne) SetNillableBalanceAfter(v *int) *PointsTransactionUpdateOne {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *PointsTransactionUpdateOne) AddBalanceAfter(v int) *PointsTransactionUpdateOne {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *PointsTransactionUpdateOne) SetDescription(v string) *PointsTransactionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PointsTransactionUpdateOne) SetNillableDescription(v *string) *PointsTransactionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PointsTransactionUpdateOne) ClearDescription() *PointsTransactionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLedgerID sets the "ledger" edge to the UserLedger entity by ID.
func (_u *PointsTransactionUpdateOne) SetLedgerID(id int) *PointsTransactionUpdateOne {
	_u.mutation.SetLedgerID(id)
	return _u
}

// SetLedger sets the "ledger" edge to the UserLedger entity.
func (_u *PointsTransactionUpdateOne) SetLedger(v *UserLedger) *PointsTransactionUpdateOne {
	return _u.SetLedgerID(v.ID)
}

// Mutation returns the PointsTransactionMutation object of the builder.
func (_u *PointsTransactionUpdateOne) Mutation() *PointsTransactionMutation {
	return _u.mutation
}

// ClearLedger clears the "ledger" edge to the UserLedger entity.
func (_u *PointsTransactionUpdateOne) ClearLedger() *PointsTransactionUpdateOne {
	_u.mutation.ClearLedger()
	return _u
}

// Where appends a list predicates to the PointsTransactionUpdate builder.
func (_u *PointsTransactionUpdateOne) Where(ps ...predicate.PointsTransaction) *PointsTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PointsTransactionUpdateOne) Select(field string, fields ...string) *PointsTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PointsTransaction entity.
func (_u *PointsTransactionUpdateOne) Save(ctx context.Context) (*PointsTransaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointsTransactionUpdateOne) SaveX(ctx context.Context) *PointsTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PointsTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointsTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointsTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := pointstransaction.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PointsTransaction.reason": %w`, err)}
		}
	}
	if _u.mutation.LedgerCleared() && len(_u.mutation.LedgerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PointsTransaction.ledger"`)
	}
	return nil
}

func (_u *PointsTransactionUpdateOne) sqlSave(ctx context.Context) (_node *PointsTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointstransaction.Table, pointstransaction.Columns, sqlgraph.NewFieldSpec(pointstransaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PointsTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pointstransaction.FieldID)
		for _, f := range fields {
			if !pointstransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pointstransaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(pointstransaction.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(pointstransaction.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pointstransaction.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(pointstransaction.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(pointstransaction.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(pointstransaction.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(pointstransaction.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pointstransaction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pointstransaction.FieldDescription, field.TypeString)
	}
	if _u.mutation.LedgerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pointstransaction.LedgerTable,
			Columns: []string{pointstransaction.LedgerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userledger.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LedgerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pointstransaction.LedgerTable,
			Columns: []string{pointstransaction.LedgerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userledger.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PointsTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointstransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
