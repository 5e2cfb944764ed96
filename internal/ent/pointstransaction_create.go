// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelar/pixelmint/internal/ent/pointstransaction"
	"github.com/avelar/pixelmint/internal/ent/userledger"
)

// PointsTransactionCreate is the builder for creating a PointsTransaction entity.
type PointsTransactionCreate struct {
	config
	mutation *PointsTransactionMutation
	hooks    []Hook
}

// SetAmount sets the "amount" field.
func (_c *PointsTransactionCreate) SetAmount(v int) *PointsTransactionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *PointsTransactionCreate) SetReason(v string) *PointsTransactionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetExternalRef sets the "external_ref" field.
func (_c *PointsTransactionCreate) SetExternalRef(v string) *PointsTransactionCreate {
	_c.mutation.SetExternalRef(v)
	return _c
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_c *PointsTransactionCreate) SetNillableExternalRef(v *string) *PointsTransactionCreate {
	if v != nil {
		_c.SetExternalRef(*v)
	}
	return _c
}

// SetBalanceAfter sets the "balance_after" field.
func (_c *PointsTransactionCreate) SetBalanceAfter(v int) *PointsTransactionCreate {
	_c.mutation.SetBalanceAfter(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PointsTransactionCreate) SetDescription(v string) *PointsTransactionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PointsTransactionCreate) SetNillableDescription(v *string) *PointsTransactionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PointsTransactionCreate) SetCreatedAt(v time.Time) *PointsTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PointsTransactionCreate) SetNillableCreatedAt(v *time.Time) *PointsTransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLedgerID sets the "ledger" edge to the UserLedger entity by ID.
func (_c *PointsTransactionCreate) SetLedgerID(id int) *PointsTransactionCreate {
	_c.mutation.SetLedgerID(id)
	return _c
}

// SetLedger sets the "ledger" edge to the UserLedger entity.
func (_c *PointsTransactionCreate) SetLedger(v *UserLedger) *PointsTransactionCreate {
	return _c.SetLedgerID(v.ID)
}

// Mutation returns the PointsTransactionMutation object of the builder.
func (_c *PointsTransactionCreate) Mutation() *PointsTransactionMutation {
	return _c.mutation
}

// Save creates the PointsTransaction in the database.
func (_c *PointsTransactionCreate) Save(ctx context.Context) (*PointsTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PointsTransactionCreate) SaveX(ctx context.Context) *PointsTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointsTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointsTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PointsTransactionCreate) defaults() {
	if _, ok := _c.mutation.ExternalRef(); !ok {
		v := pointstransaction.DefaultExternalRef
		_c.mutation.SetExternalRef(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := pointstransaction.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pointstransaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PointsTransactionCreate) check() error {
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "PointsTransaction.amount"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "PointsTransaction.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := pointstransaction.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PointsTransaction.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		return &ValidationError{Name: "balance_after", err: errors.New(`ent: missing required field "PointsTransaction.balance_after"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PointsTransaction.created_at"`)}
	}
	if len(_c.mutation.LedgerIDs()) == 0 {
		return &ValidationError{Name: "ledger", err: errors.New(`ent: missing required edge "PointsTransaction.ledger"`)}
	}
	return nil
}

func (_c *PointsTransactionCreate) sqlSave(ctx context.Context) (*PointsTransaction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PointsTransactionCreate) createSpec() (*PointsTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &PointsTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pointstransaction.Table, sqlgraph.NewFieldSpec(pointstransaction.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(pointstransaction.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(pointstransaction.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.ExternalRef(); ok {
		_spec.SetField(pointstransaction.FieldExternalRef, field.TypeString, value)
		_node.ExternalRef = value
	}
	if value, ok := _c.mutation.BalanceAfter(); ok {
		_spec.SetField(pointstransaction.FieldBalanceAfter, field.TypeInt, value)
		_node.BalanceAfter = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(pointstransaction.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pointstransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LedgerIDs(); len(nodes) > 0 {
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
		_node.user_ledger_transactions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PointsTransactionCreateBulk is the builder for creating many PointsTransaction entities in bulk.
type PointsTransactionCreateBulk struct {
	config
	err      error
	builders []*PointsTransactionCreate
}

// Save creates the PointsTransaction entities in the database.
func (_c *PointsTransactionCreateBulk) Save(ctx context.Context) ([]*PointsTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PointsTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PointsTransactionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PointsTransactionCreateBulk) SaveX(ctx context.Context) []*PointsTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointsTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointsTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
