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
	"github.com/avelar/pixelmint/internal/ent/anonymoussession"
	"github.com/avelar/pixelmint/internal/ent/predicate"
)

// AnonymousSessionUpdate is the builder for updating AnonymousSession entities.
type AnonymousSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AnonymousSessionMutation
}

// Where appends a list predicates to the AnonymousSessionUpdate builder.
func (_u *AnonymousSessionUpdate) Where(ps ...predicate.AnonymousSession) *AnonymousSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *AnonymousSessionUpdate) SetIPAddress(v string) *AnonymousSessionUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *AnonymousSessionUpdate) SetNillableIPAddress(v *string) *AnonymousSessionUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// SetPointsRemaining sets the "points_remaining" field.
func (_u *AnonymousSessionUpdate) SetPointsRemaining(v int) *AnonymousSessionUpdate {
	_u.mutation.ResetPointsRemaining()
	_u.mutation.SetPointsRemaining(v)
	return _u
}

// SetNillablePointsRemaining sets the "points_remaining" field if the given value is not nil.
func (_u *AnonymousSessionUpdate) SetNillablePointsRemaining(v *int) *AnonymousSessionUpdate {
	if v != nil {
		_u.SetPointsRemaining(*v)
	}
	return _u
}

// AddPointsRemaining adds value to the "points_remaining" field.
func (_u *AnonymousSessionUpdate) AddPointsRemaining(v int) *AnonymousSessionUpdate {
	_u.mutation.AddPointsRemaining(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnonymousSessionUpdate) SetStatus(v string) *AnonymousSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnonymousSessionUpdate) SetNillableStatus(v *string) *AnonymousSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConvertedUserID sets the "converted_user_id" field.
func (_u *AnonymousSessionUpdate) SetConvertedUserID(v string) *AnonymousSessionUpdate {
	_u.mutation.SetConvertedUserID(v)
	return _u
}

// SetNillableConvertedUserID sets the "converted_user_id" field if the given value is not nil.
func (_u *AnonymousSessionUpdate) SetNillableConvertedUserID(v *string) *AnonymousSessionUpdate {
	if v != nil {
		_u.SetConvertedUserID(*v)
	}
	return _u
}

// ClearConvertedUserID clears the value of the "converted_user_id" field.
func (_u *AnonymousSessionUpdate) ClearConvertedUserID() *AnonymousSessionUpdate {
	_u.mutation.ClearConvertedUserID()
	return _u
}

// SetLastBonusAt sets the "last_bonus_at" field.
func (_u *AnonymousSessionUpdate) SetLastBonusAt(v time.Time) *AnonymousSessionUpdate {
	_u.mutation.SetLastBonusAt(v)
	return _u
}

// SetNillableLastBonusAt sets the "last_bonus_at" field if the given value is not nil.
func (_u *AnonymousSessionUpdate) SetNillableLastBonusAt(v *time.Time) *AnonymousSessionUpdate {
	if v != nil {
		_u.SetLastBonusAt(*v)
	}
	return _u
}

// ClearLastBonusAt clears the value of the "last_bonus_at" field.
func (_u *AnonymousSessionUpdate) ClearLastBonusAt() *AnonymousSessionUpdate {
	_u.mutation.ClearLastBonusAt()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *AnonymousSessionUpdate) SetLastUsedAt(v time.Time) *AnonymousSessionUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// Mutation returns the AnonymousSessionMutation object of the builder.
func (_u *AnonymousSessionUpdate) Mutation() *AnonymousSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnonymousSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnonymousSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnonymousSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnonymousSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnonymousSessionUpdate) defaults() {
	if _, ok := _u.mutation.LastUsedAt(); !ok {
		v := anonymoussession.UpdateDefaultLastUsedAt()
		_u.mutation.SetLastUsedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnonymousSessionUpdate) check() error {
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := anonymoussession.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "AnonymousSession.ip_address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointsRemaining(); ok {
		if err := anonymoussession.PointsRemainingValidator(v); err != nil {
			return &ValidationError{Name: "points_remaining", err: fmt.Errorf(`ent: validator failed for field "AnonymousSession.points_remaining": %w`, err)}
		}
	}
	return nil
}

func (_u *AnonymousSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anonymoussession.Table, anonymoussession.Columns, sqlgraph.NewFieldSpec(anonymoussession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(anonymoussession.FieldIPAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointsRemaining(); ok {
		_spec.SetField(anonymoussession.FieldPointsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsRemaining(); ok {
		_spec.AddField(anonymoussession.FieldPointsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(anonymoussession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConvertedUserID(); ok {
		_spec.SetField(anonymoussession.FieldConvertedUserID, field.TypeString, value)
	}
	if _u.mutation.ConvertedUserIDCleared() {
		_spec.ClearField(anonymoussession.FieldConvertedUserID, field.TypeString)
	}
	if value, ok := _u.mutation.LastBonusAt(); ok {
		_spec.SetField(anonymoussession.FieldLastBonusAt, field.TypeTime, value)
	}
	if _u.mutation.LastBonusAtCleared() {
		_spec.ClearField(anonymoussession.FieldLastBonusAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(anonymoussession.FieldLastUsedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anonymoussession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnonymousSessionUpdateOne is the builder for updating a single AnonymousSession entity.
type AnonymousSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnonymousSessionMutation
}

// SetIPAddress sets the "ip_address" field.
func (_u *AnonymousSessionUpdateOne) SetIPAddress(v string) *AnonymousSessionUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *AnonymousSessionUpdateOne) SetNillableIPAddress(v *string) *AnonymousSessionUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// SetPointsRemaining sets the "points_remaining" field.
func (_u *AnonymousSessionUpdateOne) SetPointsRemaining(v int) *AnonymousSessionUpdateOne {
	_u.mutation.ResetPointsRemaining()
	_u.mutation.SetPointsRemaining(v)
	return _u
}

// SetNillablePointsRemaining sets the "points_remaining" field if the given value is not nil.
func (_u *AnonymousSessionUpdateOne) SetNillablePointsRemaining(v *int) *AnonymousSessionUpdateOne {
	if v != nil {
		_u.SetPointsRemaining(*v)
	}
	return _u
}

// AddPointsRemaining adds value to the "points_remaining" field.
func (_u *AnonymousSessionUpdateOne) AddPointsRemaining(v int) *AnonymousSessionUpdateOne {
	_u.mutation.AddPointsRemaining(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnonymousSessionUpdateOne) SetStatus(v string) *AnonymousSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnonymousSessionUpdateOne) SetNillableStatus(v *string) *AnonymousSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConvertedUserID sets the "converted_user_id" field.
func (_u *AnonymousSessionUpdateOne) SetConvertedUserID(v string) *AnonymousSessionUpdateOne {
	_u.mutation.SetConvertedUserID(v)
	return _u
}

// SetNillableConvertedUserID sets the "converted_user_id" field if the given value is not nil.
func (_u *AnonymousSessionUpdateOne) SetNillableConvertedUserID(v *string) *AnonymousSessionUpdateOne {
	if v != nil {
		_u.SetConvertedUserID(*v)
	}
	return _u
}

// ClearConvertedUserID clears the value of the "converted_user_id" field.
func (_u *AnonymousSessionUpdateOne) ClearConvertedUserID() *AnonymousSessionUpdateOne {
	_u.mutation.ClearConvertedUserID()
	return _u
}

// SetLastBonusAt sets the "last_bonus_at" field.
func (_u *AnonymousSessionUpdateOne) SetLastBonusAt(v time.Time) *AnonymousSessionUpdateOne {
	_u.mutation.SetLastBonusAt(v)
	return _u
}

// SetNillableLastBonusAt sets the "last_bonus_at" field if the given value is not nil.
func (_u *AnonymousSessionUpdateOne) SetNillableLastBonusAt(v *time.Time) *AnonymousSessionUpdateOne {
	if v != nil {
		_u.SetLastBonusAt(*v)
	}
	return _u
}

// ClearLastBonusAt clears the value of the "last_bonus_at" field.
func (_u *AnonymousSessionUpdateOne) ClearLastBonusAt() *AnonymousSessionUpdateOne {
	_u.mutation.ClearLastBonusAt()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *AnonymousSessionUpdateOne) SetLastUsedAt(v time.Time) *AnonymousSessionUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// Mutation returns the AnonymousSessionMutation object of the builder.
func (_u *AnonymousSessionUpdateOne) Mutation() *AnonymousSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnonymousSessionUpdate builder.
func (_u *AnonymousSessionUpdateOne) Where(ps ...predicate.AnonymousSession) *AnonymousSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnonymousSessionUpdateOne) Select(field string, fields ...string) *AnonymousSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnonymousSession entity.
func (_u *AnonymousSessionUpdateOne) Save(ctx context.Context) (*AnonymousSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnonymousSessionUpdateOne) SaveX(ctx context.Context) *AnonymousSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnonymousSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnonymousSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnonymousSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUsedAt(); !ok {
		v := anonymoussession.UpdateDefaultLastUsedAt()
		_u.mutation.SetLastUsedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnonymousSessionUpdateOne) check() error {
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := anonymoussession.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "AnonymousSession.ip_address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointsRemaining(); ok {
		if err := anonymoussession.PointsRemainingValidator(v); err != nil {
			return &ValidationError{Name: "points_remaining", err: fmt.Errorf(`ent: validator failed for field "AnonymousSession.points_remaining": %w`, err)}
		}
	}
	return nil
}

func (_u *AnonymousSessionUpdateOne) sqlSave(ctx context.Context) (_node *AnonymousSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anonymoussession.Table, anonymoussession.Columns, sqlgraph.NewFieldSpec(anonymoussession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnonymousSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, anonymoussession.FieldID)
		for _, f := range fields {
			if !anonymoussession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != anonymoussession.FieldID {
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
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(anonymoussession.FieldIPAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointsRemaining(); ok {
		_spec.SetField(anonymoussession.FieldPointsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsRemaining(); ok {
		_spec.AddField(anonymoussession.FieldPointsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(anonymoussession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConvertedUserID(); ok {
		_spec.SetField(anonymoussession.FieldConvertedUserID, field.TypeString, value)
	}
	if _u.mutation.ConvertedUserIDCleared() {
		_spec.ClearField(anonymoussession.FieldConvertedUserID, field.TypeString)
	}
	if value, ok := _u.mutation.LastBonusAt(); ok {
		_spec.SetField(anonymoussession.FieldLastBonusAt, field.TypeTime, value)
	}
	if _u.mutation.LastBonusAtCleared() {
		_spec.ClearField(anonymoussession.FieldLastBonusAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(anonymoussession.FieldLastUsedAt, field.TypeTime, value)
	}
	_node = &AnonymousSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anonymoussession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
