// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelar/pixelmint/internal/ent/pointstransaction"
	"github.com/avelar/pixelmint/internal/ent/predicate"
	"github.com/avelar/pixelmint/internal/ent/userledger"
)

// UserLedgerUpdate is the builder for updating UserLedger entities.
type UserLedgerUpdate struct {
	config
	hooks    []Hook
	mutation *UserLedgerMutation
}

// Where appends a list predicates to the UserLedgerUpdate builder.
func (_u *UserLedgerUpdate) Where(ps ...predicate.UserLedger) *UserLedgerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPointsRemaining sets the "points_remaining" field.
func (_u *UserLedgerUpdate) SetPointsRemaining(v int) *UserLedgerUpdate {
	_u.mutation.ResetPointsRemaining()
	_u.mutation.SetPointsRemaining(v)
	return _u
}

// SetNillablePointsRemaining sets the "points_remaining" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillablePointsRemaining(v *int) *UserLedgerUpdate {
	if v != nil {
		_u.SetPointsRemaining(*v)
	}
	return _u
}

// AddPointsRemaining adds value to the "points_remaining" field.
func (_u *UserLedgerUpdate) AddPointsRemaining(v int) *UserLedgerUpdate {
	_u.mutation.AddPointsRemaining(v)
	return _u
}

// SetTotalPointsEarned sets the "total_points_earned" field.
func (_u *UserLedgerUpdate) SetTotalPointsEarned(v int) *UserLedgerUpdate {
	_u.mutation.ResetTotalPointsEarned()
	_u.mutation.SetTotalPointsEarned(v)
	return _u
}

// SetNillableTotalPointsEarned sets the "total_points_earned" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableTotalPointsEarned(v *int) *UserLedgerUpdate {
	if v != nil {
		_u.SetTotalPointsEarned(*v)
	}
	return _u
}

// AddTotalPointsEarned adds value to the "total_points_earned" field.
func (_u *UserLedgerUpdate) AddTotalPointsEarned(v int) *UserLedgerUpdate {
	_u.mutation.AddTotalPointsEarned(v)
	return _u
}

// SetLastBonusAt sets the "last_bonus_at" field.
func (_u *UserLedgerUpdate) SetLastBonusAt(v time.Time) *UserLedgerUpdate {
	_u.mutation.SetLastBonusAt(v)
	return _u
}

// SetNillableLastBonusAt sets the "last_bonus_at" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableLastBonusAt(v *time.Time) *UserLedgerUpdate {
	if v != nil {
		_u.SetLastBonusAt(*v)
	}
	return _u
}

// ClearLastBonusAt clears the value of the "last_bonus_at" field.
func (_u *UserLedgerUpdate) ClearLastBonusAt() *UserLedgerUpdate {
	_u.mutation.ClearLastBonusAt()
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *UserLedgerUpdate) SetStripeCustomerID(v string) *UserLedgerUpdate {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableStripeCustomerID(v *string) *UserLedgerUpdate {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *UserLedgerUpdate) ClearStripeCustomerID() *UserLedgerUpdate {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *UserLedgerUpdate) SetStripeSubscriptionID(v string) *UserLedgerUpdate {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableStripeSubscriptionID(v *string) *UserLedgerUpdate {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (_u *UserLedgerUpdate) ClearStripeSubscriptionID() *UserLedgerUpdate {
	_u.mutation.ClearStripeSubscriptionID()
	return _u
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (_u *UserLedgerUpdate) SetSubscriptionStatus(v string) *UserLedgerUpdate {
	_u.mutation.SetSubscriptionStatus(v)
	return _u
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableSubscriptionStatus(v *string) *UserLedgerUpdate {
	if v != nil {
		_u.SetSubscriptionStatus(*v)
	}
	return _u
}

// SetSubscriptionType sets the "subscription_type" field.
func (_u *UserLedgerUpdate) SetSubscriptionType(v string) *UserLedgerUpdate {
	_u.mutation.SetSubscriptionType(v)
	return _u
}

// SetNillableSubscriptionType sets the "subscription_type" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableSubscriptionType(v *string) *UserLedgerUpdate {
	if v != nil {
		_u.SetSubscriptionType(*v)
	}
	return _u
}

// ClearSubscriptionType clears the value of the "subscription_type" field.
func (_u *UserLedgerUpdate) ClearSubscriptionType() *UserLedgerUpdate {
	_u.mutation.ClearSubscriptionType()
	return _u
}

// SetSubscriptionPeriodEnd sets the "subscription_period_end" field.
func (_u *UserLedgerUpdate) SetSubscriptionPeriodEnd(v time.Time) *UserLedgerUpdate {
	_u.mutation.SetSubscriptionPeriodEnd(v)
	return _u
}

// SetNillableSubscriptionPeriodEnd sets the "subscription_period_end" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableSubscriptionPeriodEnd(v *time.Time) *UserLedgerUpdate {
	if v != nil {
		_u.SetSubscriptionPeriodEnd(*v)
	}
	return _u
}

// ClearSubscriptionPeriodEnd clears the value of the "subscription_period_end" field.
func (_u *UserLedgerUpdate) ClearSubscriptionPeriodEnd() *UserLedgerUpdate {
	_u.mutation.ClearSubscriptionPeriodEnd()
	return _u
}

// SetNextPointsCredit sets the "next_points_credit" field.
func (_u *UserLedgerUpdate) SetNextPointsCredit(v time.Time) *UserLedgerUpdate {
	_u.mutation.SetNextPointsCredit(v)
	return _u
}

// SetNillableNextPointsCredit sets the "next_points_credit" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableNextPointsCredit(v *time.Time) *UserLedgerUpdate {
	if v != nil {
		_u.SetNextPointsCredit(*v)
	}
	return _u
}

// ClearNextPointsCredit clears the value of the "next_points_credit" field.
func (_u *UserLedgerUpdate) ClearNextPointsCredit() *UserLedgerUpdate {
	_u.mutation.ClearNextPointsCredit()
	return _u
}

// SetCancelAtPeriodEnd sets the "cancel_at_period_end" field.
func (_u *UserLedgerUpdate) SetCancelAtPeriodEnd(v bool) *UserLedgerUpdate {
	_u.mutation.SetCancelAtPeriodEnd(v)
	return _u
}

// SetNillableCancelAtPeriodEnd sets the "cancel_at_period_end" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableCancelAtPeriodEnd(v *bool) *UserLedgerUpdate {
	if v != nil {
		_u.SetCancelAtPeriodEnd(*v)
	}
	return _u
}

// SetSubscriptionUpdatedAt sets the "subscription_updated_at" field.
func (_u *UserLedgerUpdate) SetSubscriptionUpdatedAt(v time.Time) *UserLedgerUpdate {
	_u.mutation.SetSubscriptionUpdatedAt(v)
	return _u
}

// SetNillableSubscriptionUpdatedAt sets the "subscription_updated_at" field if the given value is not nil.
func (_u *UserLedgerUpdate) SetNillableSubscriptionUpdatedAt(v *time.Time) *UserLedgerUpdate {
	if v != nil {
		_u.SetSubscriptionUpdatedAt(*v)
	}
	return _u
}

// ClearSubscriptionUpdatedAt clears the value of the "subscription_updated_at" field.
func (_u *UserLedgerUpdate) ClearSubscriptionUpdatedAt() *UserLedgerUpdate {
	_u.mutation.ClearSubscriptionUpdatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserLedgerUpdate) SetUpdatedAt(v time.Time) *UserLedgerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the PointsTransaction entity by IDs.
func (_u *UserLedgerUpdate) AddTransactionIDs(ids ...int) *UserLedgerUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the PointsTransaction entity.
func (_u *UserLedgerUpdate) AddTransactions(v ...*PointsTransaction) *UserLedgerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the UserLedgerMutation object of the builder.
func (_u *UserLedgerUpdate) Mutation() *UserLedgerMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the PointsTransaction entity.
func (_u *UserLedgerUpdate) ClearTransactions() *UserLedgerUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to PointsTransaction entities by IDs.
func (_u *UserLedgerUpdate) RemoveTransactionIDs(ids ...int) *UserLedgerUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to PointsTransaction entities.
func (_u *UserLedgerUpdate) RemoveTransactions(v ...*PointsTransaction) *UserLedgerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserLedgerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserLedgerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserLedgerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserLedgerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserLedgerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserLedgerUpdate) check() error {
	if v, ok := _u.mutation.PointsRemaining(); ok {
		if err := userledger.PointsRemainingValidator(v); err != nil {
			return &ValidationError{Name: "points_remaining", err: fmt.Errorf(`ent: validator failed for field "UserLedger.points_remaining": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPointsEarned(); ok {
		if err := userledger.TotalPointsEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_points_earned", err: fmt.Errorf(`ent: validator failed for field "UserLedger.total_points_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *UserLedgerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userledger.Table, userledger.Columns, sqlgraph.NewFieldSpec(userledger.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PointsRemaining(); ok {
		_spec.SetField(userledger.FieldPointsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsRemaining(); ok {
		_spec.AddField(userledger.FieldPointsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPointsEarned(); ok {
		_spec.SetField(userledger.FieldTotalPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPointsEarned(); ok {
		_spec.AddField(userledger.FieldTotalPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastBonusAt(); ok {
		_spec.SetField(userledger.FieldLastBonusAt, field.TypeTime, value)
	}
	if _u.mutation.LastBonusAtCleared() {
		_spec.ClearField(userledger.FieldLastBonusAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(userledger.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(userledger.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(userledger.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(userledger.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.SubscriptionStatus(); ok {
		_spec.SetField(userledger.FieldSubscriptionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubscriptionType(); ok {
		_spec.SetField(userledger.FieldSubscriptionType, field.TypeString, value)
	}
	if _u.mutation.SubscriptionTypeCleared() {
		_spec.ClearField(userledger.FieldSubscriptionType, field.TypeString)
	}
	if value, ok := _u.mutation.SubscriptionPeriodEnd(); ok {
		_spec.SetField(userledger.FieldSubscriptionPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionPeriodEndCleared() {
		_spec.ClearField(userledger.FieldSubscriptionPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.NextPointsCredit(); ok {
		_spec.SetField(userledger.FieldNextPointsCredit, field.TypeTime, value)
	}
	if _u.mutation.NextPointsCreditCleared() {
		_spec.ClearField(userledger.FieldNextPointsCredit, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelAtPeriodEnd(); ok {
		_spec.SetField(userledger.FieldCancelAtPeriodEnd, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubscriptionUpdatedAt(); ok {
		_spec.SetField(userledger.FieldSubscriptionUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionUpdatedAtCleared() {
		_spec.ClearField(userledger.FieldSubscriptionUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userledger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserLedgerUpdateOne is the builder for updating a single UserLedger entity.
type UserLedgerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserLedgerMutation
}

// SetPointsRemaining sets the "points_remaining" field.
func (_u *UserLedgerUpdateOne) SetPointsRemaining(v int) *UserLedgerUpdateOne {
	_u.mutation.ResetPointsRemaining()
	_u.mutation.SetPointsRemaining(v)
	return _u
}

// SetNillablePointsRemaining sets the "points_remaining" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillablePointsRemaining(v *int) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetPointsRemaining(*v)
	}
	return _u
}

// AddPointsRemaining adds value to the "points_remaining" field.
func (_u *UserLedgerUpdateOne) AddPointsRemaining(v int) *UserLedgerUpdateOne {
	_u.mutation.AddPointsRemaining(v)
	return _u
}

// SetTotalPointsEarned sets the "total_points_earned" field.
func (_u *UserLedgerUpdateOne) SetTotalPointsEarned(v int) *UserLedgerUpdateOne {
	_u.mutation.ResetTotalPointsEarned()
	_u.mutation.SetTotalPointsEarned(v)
	return _u
}

// SetNillableTotalPointsEarned sets the "total_points_earned" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableTotalPointsEarned(v *int) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetTotalPointsEarned(*v)
	}
	return _u
}

// AddTotalPointsEarned adds value to the "total_points_earned" field.
func (_u *UserLedgerUpdateOne) AddTotalPointsEarned(v int) *UserLedgerUpdateOne {
	_u.mutation.AddTotalPointsEarned(v)
	return _u
}

// SetLastBonusAt sets the "last_bonus_at" field.
func (_u *UserLedgerUpdateOne) SetLastBonusAt(v time.Time) *UserLedgerUpdateOne {
	_u.mutation.SetLastBonusAt(v)
	return _u
}

// SetNillableLastBonusAt sets the "last_bonus_at" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableLastBonusAt(v *time.Time) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetLastBonusAt(*v)
	}
	return _u
}

// ClearLastBonusAt clears the value of the "last_bonus_at" field.
func (_u *UserLedgerUpdateOne) ClearLastBonusAt() *UserLedgerUpdateOne {
	_u.mutation.ClearLastBonusAt()
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *UserLedgerUpdateOne) SetStripeCustomerID(v string) *UserLedgerUpdateOne {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableStripeCustomerID(v *string) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *UserLedgerUpdateOne) ClearStripeCustomerID() *UserLedgerUpdateOne {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *UserLedgerUpdateOne) SetStripeSubscriptionID(v string) *UserLedgerUpdateOne {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableStripeSubscriptionID(v *string) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (_u *UserLedgerUpdateOne) ClearStripeSubscriptionID() *UserLedgerUpdateOne {
	_u.mutation.ClearStripeSubscriptionID()
	return _u
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (_u *UserLedgerUpdateOne) SetSubscriptionStatus(v string) *UserLedgerUpdateOne {
	_u.mutation.SetSubscriptionStatus(v)
	return _u
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableSubscriptionStatus(v *string) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetSubscriptionStatus(*v)
	}
	return _u
}

// SetSubscriptionType sets the "subscription_type" field.
func (_u *UserLedgerUpdateOne) SetSubscriptionType(v string) *UserLedgerUpdateOne {
	_u.mutation.SetSubscriptionType(v)
	return _u
}

// SetNillableSubscriptionType sets the "subscription_type" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableSubscriptionType(v *string) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetSubscriptionType(*v)
	}
	return _u
}

// ClearSubscriptionType clears the value of the "subscription_type" field.
func (_u *UserLedgerUpdateOne) ClearSubscriptionType() *UserLedgerUpdateOne {
	_u.mutation.ClearSubscriptionType()
	return _u
}

// SetSubscriptionPeriodEnd sets the "subscription_period_end" field.
func (_u *UserLedgerUpdateOne) SetSubscriptionPeriodEnd(v time.Time) *UserLedgerUpdateOne {
	_u.mutation.SetSubscriptionPeriodEnd(v)
	return _u
}

// SetNillableSubscriptionPeriodEnd sets the "subscription_period_end" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableSubscriptionPeriodEnd(v *time.Time) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetSubscriptionPeriodEnd(*v)
	}
	return _u
}

// ClearSubscriptionPeriodEnd clears the value of the "subscription_period_end" field.
func (_u *UserLedgerUpdateOne) ClearSubscriptionPeriodEnd() *UserLedgerUpdateOne {
	_u.mutation.ClearSubscriptionPeriodEnd()
	return _u
}

// SetNextPointsCredit sets the "next_points_credit" field.
func (_u *UserLedgerUpdateOne) SetNextPointsCredit(v time.Time) *UserLedgerUpdateOne {
	_u.mutation.SetNextPointsCredit(v)
	return _u
}

// SetNillableNextPointsCredit sets the "next_points_credit" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableNextPointsCredit(v *time.Time) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetNextPointsCredit(*v)
	}
	return _u
}

// ClearNextPointsCredit clears the value of the "next_points_credit" field.
func (_u *UserLedgerUpdateOne) ClearNextPointsCredit() *UserLedgerUpdateOne {
	_u.mutation.ClearNextPointsCredit()
	return _u
}

// SetCancelAtPeriodEnd sets the "cancel_at_period_end" field.
func (_u *UserLedgerUpdateOne) SetCancelAtPeriodEnd(v bool) *UserLedgerUpdateOne {
	_u.mutation.SetCancelAtPeriodEnd(v)
	return _u
}

// SetNillableCancelAtPeriodEnd sets the "cancel_at_period_end" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableCancelAtPeriodEnd(v *bool) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetCancelAtPeriodEnd(*v)
	}
	return _u
}

// SetSubscriptionUpdatedAt sets the "subscription_updated_at" field.
func (_u *UserLedgerUpdateOne) SetSubscriptionUpdatedAt(v time.Time) *UserLedgerUpdateOne {
	_u.mutation.SetSubscriptionUpdatedAt(v)
	return _u
}

// SetNillableSubscriptionUpdatedAt sets the "subscription_updated_at" field if the given value is not nil.
func (_u *UserLedgerUpdateOne) SetNillableSubscriptionUpdatedAt(v *time.Time) *UserLedgerUpdateOne {
	if v != nil {
		_u.SetSubscriptionUpdatedAt(*v)
	}
	return _u
}

// ClearSubscriptionUpdatedAt clears the value of the "subscription_updated_at" field.
func (_u *UserLedgerUpdateOne) ClearSubscriptionUpdatedAt() *UserLedgerUpdateOne {
	_u.mutation.ClearSubscriptionUpdatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserLedgerUpdateOne) SetUpdatedAt(v time.Time) *UserLedgerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the PointsTransaction entity by IDs.
func (_u *UserLedgerUpdateOne) AddTransactionIDs(ids ...int) *UserLedgerUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the PointsTransaction entity.
func (_u *UserLedgerUpdateOne) AddTransactions(v ...*PointsTransaction) *UserLedgerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the UserLedgerMutation object of the builder.
func (_u *UserLedgerUpdateOne) Mutation() *UserLedgerMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the PointsTransaction entity.
func (_u *UserLedgerUpdateOne) ClearTransactions() *UserLedgerUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to PointsTransaction entities by IDs.
func (_u *UserLedgerUpdateOne) RemoveTransactionIDs(ids ...int) *UserLedgerUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to PointsTransaction entities.
func (_u *UserLedgerUpdateOne) RemoveTransactions(v ...*PointsTransaction) *UserLedgerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the UserLedgerUpdate builder.
func (_u *UserLedgerUpdateOne) Where(ps ...predicate.UserLedger) *UserLedgerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserLedgerUpdateOne) Select(field string, fields ...string) *UserLedgerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserLedger entity.
func (_u *UserLedgerUpdateOne) Save(ctx context.Context) (*UserLedger, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserLedgerUpdateOne) SaveX(ctx context.Context) *UserLedger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserLedgerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserLedgerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserLedgerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserLedgerUpdateOne) check() error {
	if v, ok := _u.mutation.PointsRemaining(); ok {
		if err := userledger.PointsRemainingValidator(v); err != nil {
			return &ValidationError{Name: "points_remaining", err: fmt.Errorf(`ent: validator failed for field "UserLedger.points_remaining": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPointsEarned(); ok {
		if err := userledger.TotalPointsEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_points_earned", err: fmt.Errorf(`ent: validator failed for field "UserLedger.total_points_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *UserLedgerUpdateOne) sqlSave(ctx context.Context) (_node *UserLedger, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userledger.Table, userledger.Columns, sqlgraph.NewFieldSpec(userledger.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserLedger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userledger.FieldID)
		for _, f := range fields {
			if !userledger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userledger.FieldID {
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
	if value, ok := _u.mutation.PointsRemaining(); ok {
		_spec.SetField(userledger.FieldPointsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsRemaining(); ok {
		_spec.AddField(userledger.FieldPointsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPointsEarned(); ok {
		_spec.SetField(userledger.FieldTotalPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPointsEarned(); ok {
		_spec.AddField(userledger.FieldTotalPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastBonusAt(); ok {
		_spec.SetField(userledger.FieldLastBonusAt, field.TypeTime, value)
	}
	if _u.mutation.LastBonusAtCleared() {
		_spec.ClearField(userledger.FieldLastBonusAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(userledger.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(userledger.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(userledger.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(userledger.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.SubscriptionStatus(); ok {
		_spec.SetField(userledger.FieldSubscriptionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubscriptionType(); ok {
		_spec.SetField(userledger.FieldSubscriptionType, field.TypeString, value)
	}
	if _u.mutation.SubscriptionTypeCleared() {
		_spec.ClearField(userledger.FieldSubscriptionType, field.TypeString)
	}
	if value, ok := _u.mutation.SubscriptionPeriodEnd(); ok {
		_spec.SetField(userledger.FieldSubscriptionPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionPeriodEndCleared() {
		_spec.ClearField(userledger.FieldSubscriptionPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.NextPointsCredit(); ok {
		_spec.SetField(userledger.FieldNextPointsCredit, field.TypeTime, value)
	}
	if _u.mutation.NextPointsCreditCleared() {
		_spec.ClearField(userledger.FieldNextPointsCredit, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelAtPeriodEnd(); ok {
		_spec.SetField(userledger.FieldCancelAtPeriodEnd, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubscriptionUpdatedAt(); ok {
		_spec.SetField(userledger.FieldSubscriptionUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionUpdatedAtCleared() {
		_spec.ClearField(userledger.FieldSubscriptionUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userledger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UserLedger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
