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

// UserLedgerCreate is the builder for creating a UserLedger entity.
type UserLedgerCreate struct {
	config
	mutation *UserLedgerMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserLedgerCreate) SetUserID(v string) *UserLedgerCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPointsRemaining sets the "points_remaining" field.
func (_c *UserLedgerCreate) SetPointsRemaining(v int) *UserLedgerCreate {
	_c.mutation.SetPointsRemaining(v)
	return _c
}

// SetNillablePointsRemaining sets the "points_remaining" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillablePointsRemaining(v *int) *UserLedgerCreate {
	if v != nil {
		_c.SetPointsRemaining(*v)
	}
	return _c
}

// SetTotalPointsEarned sets the "total_points_earned" field.
func (_c *UserLedgerCreate) SetTotalPointsEarned(v int) *UserLedgerCreate {
	_c.mutation.SetTotalPointsEarned(v)
	return _c
}

// SetNillableTotalPointsEarned sets the "total_points_earned" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableTotalPointsEarned(v *int) *UserLedgerCreate {
	if v != nil {
		_c.SetTotalPointsEarned(*v)
	}
	return _c
}

// SetLastBonusAt sets the "last_bonus_at" field.
func (_c *UserLedgerCreate) SetLastBonusAt(v time.Time) *UserLedgerCreate {
	_c.mutation.SetLastBonusAt(v)
	return _c
}

// SetNillableLastBonusAt sets the "last_bonus_at" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableLastBonusAt(v *time.Time) *UserLedgerCreate {
	if v != nil {
		_c.SetLastBonusAt(*v)
	}
	return _c
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_c *UserLedgerCreate) SetStripeCustomerID(v string) *UserLedgerCreate {
	_c.mutation.SetStripeCustomerID(v)
	return _c
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableStripeCustomerID(v *string) *UserLedgerCreate {
	if v != nil {
		_c.SetStripeCustomerID(*v)
	}
	return _c
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_c *UserLedgerCreate) SetStripeSubscriptionID(v string) *UserLedgerCreate {
	_c.mutation.SetStripeSubscriptionID(v)
	return _c
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableStripeSubscriptionID(v *string) *UserLedgerCreate {
	if v != nil {
		_c.SetStripeSubscriptionID(*v)
	}
	return _c
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (_c *UserLedgerCreate) SetSubscriptionStatus(v string) *UserLedgerCreate {
	_c.mutation.SetSubscriptionStatus(v)
	return _c
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableSubscriptionStatus(v *string) *UserLedgerCreate {
	if v != nil {
		_c.SetSubscriptionStatus(*v)
	}
	return _c
}

// SetSubscriptionType sets the "subscription_type" field.
func (_c *UserLedgerCreate) SetSubscriptionType(v string) *UserLedgerCreate {
	_c.mutation.SetSubscriptionType(v)
	return _c
}

// SetNillableSubscriptionType sets the "subscription_type" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableSubscriptionType(v *string) *UserLedgerCreate {
	if v != nil {
		_c.SetSubscriptionType(*v)
	}
	return _c
}

// SetSubscriptionPeriodEnd sets the "subscription_period_end" field.
func (_c *UserLedgerCreate) SetSubscriptionPeriodEnd(v time.Time) *UserLedgerCreate {
	_c.mutation.SetSubscriptionPeriodEnd(v)
	return _c
}

// SetNillableSubscriptionPeriodEnd sets the "subscription_period_end" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableSubscriptionPeriodEnd(v *time.Time) *UserLedgerCreate {
	if v != nil {
		_c.SetSubscriptionPeriodEnd(*v)
	}
	return _c
}

// SetNextPointsCredit sets the "next_points_credit" field.
func (_c *UserLedgerCreate) SetNextPointsCredit(v time.Time) *UserLedgerCreate {
	_c.mutation.SetNextPointsCredit(v)
	return _c
}

// SetNillableNextPointsCredit sets the "next_points_credit" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableNextPointsCredit(v *time.Time) *UserLedgerCreate {
	if v != nil {
		_c.SetNextPointsCredit(*v)
	}
	return _c
}

// SetCancelAtPeriodEnd sets the "cancel_at_period_end" field.
func (_c *UserLedgerCreate) SetCancelAtPeriodEnd(v bool) *UserLedgerCreate {
	_c.mutation.SetCancelAtPeriodEnd(v)
	return _c
}

// SetNillableCancelAtPeriodEnd sets the "cancel_at_period_end" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableCancelAtPeriodEnd(v *bool) *UserLedgerCreate {
	if v != nil {
		_c.SetCancelAtPeriodEnd(*v)
	}
	return _c
}

// SetSubscriptionUpdatedAt sets the "subscription_updated_at" field.
func (_c *UserLedgerCreate) SetSubscriptionUpdatedAt(v time.Time) *UserLedgerCreate {
	_c.mutation.SetSubscriptionUpdatedAt(v)
	return _c
}

// SetNillableSubscriptionUpdatedAt sets the "subscription_updated_at" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableSubscriptionUpdatedAt(v *time.Time) *UserLedgerCreate {
	if v != nil {
		_c.SetSubscriptionUpdatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserLedgerCreate) SetCreatedAt(v time.Time) *UserLedgerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableCreatedAt(v *time.Time) *UserLedgerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserLedgerCreate) SetUpdatedAt(v time.Time) *UserLedgerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserLedgerCreate) SetNillableUpdatedAt(v *time.Time) *UserLedgerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddTransactionIDs adds the "transactions" edge to the PointsTransaction entity by IDs.
func (_c *UserLedgerCreate) AddTransactionIDs(ids ...int) *UserLedgerCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the PointsTransaction entity.
func (_c *UserLedgerCreate) AddTransactions(v ...*PointsTransaction) *UserLedgerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// Mutation returns the UserLedgerMutation object of the builder.
func (_c *UserLedgerCreate) Mutation() *UserLedgerMutation {
	return _c.mutation
}

// Save creates the UserLedger in the database.
func (_c *UserLedgerCreate) Save(ctx context.Context) (*UserLedger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserLedgerCreate) SaveX(ctx context.Context) *UserLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserLedgerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserLedgerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserLedgerCreate) defaults() {
	if _, ok := _c.mutation.PointsRemaining(); !ok {
		v := userledger.DefaultPointsRemaining
		_c.mutation.SetPointsRemaining(v)
	}
	if _, ok := _c.mutation.TotalPointsEarned(); !ok {
		v := userledger.DefaultTotalPointsEarned
		_c.mutation.SetTotalPointsEarned(v)
	}
	if _, ok := _c.mutation.SubscriptionStatus(); !ok {
		v := userledger.DefaultSubscriptionStatus
		_c.mutation.SetSubscriptionStatus(v)
	}
	if _, ok := _c.mutation.SubscriptionType(); !ok {
		v := userledger.DefaultSubscriptionType
		_c.mutation.SetSubscriptionType(v)
	}
	if _, ok := _c.mutation.CancelAtPeriodEnd(); !ok {
		v := userledger.DefaultCancelAtPeriodEnd
		_c.mutation.SetCancelAtPeriodEnd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userledger.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userledger.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserLedgerCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserLedger.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userledger.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserLedger.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PointsRemaining(); !ok {
		return &ValidationError{Name: "points_remaining", err: errors.New(`ent: missing required field "UserLedger.points_remaining"`)}
	}
	if v, ok := _c.mutation.PointsRemaining(); ok {
		if err := userledger.PointsRemainingValidator(v); err != nil {
			return &ValidationError{Name: "points_remaining", err: fmt.Errorf(`ent: validator failed for field "UserLedger.points_remaining": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPointsEarned(); !ok {
		return &ValidationError{Name: "total_points_earned", err: errors.New(`ent: missing required field "UserLedger.total_points_earned"`)}
	}
	if v, ok := _c.mutation.TotalPointsEarned(); ok {
		if err := userledger.TotalPointsEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_points_earned", err: fmt.Errorf(`ent: validator failed for field "UserLedger.total_points_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubscriptionStatus(); !ok {
		return &ValidationError{Name: "subscription_status", err: errors.New(`ent: missing required field "UserLedger.subscription_status"`)}
	}
	if _, ok := _c.mutation.CancelAtPeriodEnd(); !ok {
		return &ValidationError{Name: "cancel_at_period_end", err: errors.New(`ent: missing required field "UserLedger.cancel_at_period_end"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserLedger.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserLedger.updated_at"`)}
	}
	return nil
}

func (_c *UserLedgerCreate) sqlSave(ctx context.Context) (*UserLedger, error) {
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

func (_c *UserLedgerCreate) createSpec() (*UserLedger, *sqlgraph.CreateSpec) {
	var (
		_node = &UserLedger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userledger.Table, sqlgraph.NewFieldSpec(userledger.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userledger.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PointsRemaining(); ok {
		_spec.SetField(userledger.FieldPointsRemaining, field.TypeInt, value)
		_node.PointsRemaining = value
	}
	if value, ok := _c.mutation.TotalPointsEarned(); ok {
		_spec.SetField(userledger.FieldTotalPointsEarned, field.TypeInt, value)
		_node.TotalPointsEarned = value
	}
	if value, ok := _c.mutation.LastBonusAt(); ok {
		_spec.SetField(userledger.FieldLastBonusAt, field.TypeTime, value)
		_node.LastBonusAt = &value
	}
	if value, ok := _c.mutation.StripeCustomerID(); ok {
		_spec.SetField(userledger.FieldStripeCustomerID, field.TypeString, value)
		_node.StripeCustomerID = &value
	}
	if value, ok := _c.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(userledger.FieldStripeSubscriptionID, field.TypeString, value)
		_node.StripeSubscriptionID = &value
	}
	if value, ok := _c.mutation.SubscriptionStatus(); ok {
		_spec.SetField(userledger.FieldSubscriptionStatus, field.TypeString, value)
		_node.SubscriptionStatus = value
	}
	if value, ok := _c.mutation.SubscriptionType(); ok {
		_spec.SetField(userledger.FieldSubscriptionType, field.TypeString, value)
		_node.SubscriptionType = value
	}
	if value, ok := _c.mutation.SubscriptionPeriodEnd(); ok {
		_spec.SetField(userledger.FieldSubscriptionPeriodEnd, field.TypeTime, value)
		_node.SubscriptionPeriodEnd = &value
	}
	if value, ok := _c.mutation.NextPointsCredit(); ok {
		_spec.SetField(userledger.FieldNextPointsCredit, field.TypeTime, value)
		_node.NextPointsCredit = &value
	}
	if value, ok := _c.mutation.CancelAtPeriodEnd(); ok {
		_spec.SetField(userledger.FieldCancelAtPeriodEnd, field.TypeBool, value)
		_node.CancelAtPeriodEnd = value
	}
	if value, ok := _c.mutation.SubscriptionUpdatedAt(); ok {
		_spec.SetField(userledger.FieldSubscriptionUpdatedAt, field.TypeTime, value)
		_node.SubscriptionUpdatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userledger.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userledger.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   userledger.TransactionsTable,
			Columns: []string{userledger.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pointstransaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserLedgerCreateBulk is the builder for creating many UserLedger entities in bulk.
type UserLedgerCreateBulk struct {
	config
	err      error
	builders []*UserLedgerCreate
}

// Save creates the UserLedger entities in the database.
func (_c *UserLedgerCreateBulk) Save(ctx context.Context) ([]*UserLedger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserLedger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserLedgerMutation)
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
func (_c *UserLedgerCreateBulk) SaveX(ctx context.Context) []*UserLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserLedgerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserLedgerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
