// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelar/pixelmint/internal/ent/anonymoussession"
)

// AnonymousSessionCreate is the builder for creating a AnonymousSession entity.
type AnonymousSessionCreate struct {
	config
	mutation *AnonymousSessionMutation
	hooks    []Hook
}

// SetToken sets the "token" field.
func (_c *AnonymousSessionCreate) SetToken(v string) *AnonymousSessionCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *AnonymousSessionCreate) SetIPAddress(v string) *AnonymousSessionCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetPointsRemaining sets the "points_remaining" field.
func (_c *AnonymousSessionCreate) SetPointsRemaining(v int) *AnonymousSessionCreate {
	_c.mutation.SetPointsRemaining(v)
	return _c
}

// SetNillablePointsRemaining sets the "points_remaining" field if the given value is not nil.
func (_c *AnonymousSessionCreate) SetNillablePointsRemaining(v *int) *AnonymousSessionCreate {
	if v != nil {
		_c.SetPointsRemaining(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnonymousSessionCreate) SetStatus(v string) *AnonymousSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnonymousSessionCreate) SetNillableStatus(v *string) *AnonymousSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConvertedUserID sets the "converted_user_id" field.
func (_c *AnonymousSessionCreate) SetConvertedUserID(v string) *AnonymousSessionCreate {
	_c.mutation.SetConvertedUserID(v)
	return _c
}

// SetNillableConvertedUserID sets the "converted_user_id" field if the given value is not nil.
func (_c *AnonymousSessionCreate) SetNillableConvertedUserID(v *string) *AnonymousSessionCreate {
	if v != nil {
		_c.SetConvertedUserID(*v)
	}
	return _c
}

// SetLastBonusAt sets the "last_bonus_at" field.
func (_c *AnonymousSessionCreate) SetLastBonusAt(v time.Time) *AnonymousSessionCreate {
	_c.mutation.SetLastBonusAt(v)
	return _c
}

// SetNillableLastBonusAt sets the "last_bonus_at" field if the given value is not nil.
func (_c *AnonymousSessionCreate) SetNillableLastBonusAt(v *time.Time) *AnonymousSessionCreate {
	if v != nil {
		_c.SetLastBonusAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnonymousSessionCreate) SetCreatedAt(v time.Time) *AnonymousSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnonymousSessionCreate) SetNillableCreatedAt(v *time.Time) *AnonymousSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *AnonymousSessionCreate) SetLastUsedAt(v time.Time) *AnonymousSessionCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *AnonymousSessionCreate) SetNillableLastUsedAt(v *time.Time) *AnonymousSessionCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// Mutation returns the AnonymousSessionMutation object of the builder.
func (_c *AnonymousSessionCreate) Mutation() *AnonymousSessionMutation {
	return _c.mutation
}

// Save creates the AnonymousSession in the database.
func (_c *AnonymousSessionCreate) Save(ctx context.Context) (*AnonymousSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnonymousSessionCreate) SaveX(ctx context.Context) *AnonymousSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnonymousSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnonymousSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnonymousSessionCreate) defaults() {
	if _, ok := _c.mutation.PointsRemaining(); !ok {
		v := anonymoussession.DefaultPointsRemaining
		_c.mutation.SetPointsRemaining(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := anonymoussession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := anonymoussession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		v := anonymoussession.DefaultLastUsedAt()
		_c.mutation.SetLastUsedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnonymousSessionCreate) check() error {
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "AnonymousSession.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := anonymoussession.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "AnonymousSession.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IPAddress(); !ok {
		return &ValidationError{Name: "ip_address", err: errors.New(`ent: missing required field "AnonymousSession.ip_address"`)}
	}
	if v, ok := _c.mutation.IPAddress(); ok {
		if err := anonymoussession.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "AnonymousSession.ip_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PointsRemaining(); !ok {
		return &ValidationError{Name: "points_remaining", err: errors.New(`ent: missing required field "AnonymousSession.points_remaining"`)}
	}
	if v, ok := _c.mutation.PointsRemaining(); ok {
		if err := anonymoussession.PointsRemainingValidator(v); err != nil {
			return &ValidationError{Name: "points_remaining", err: fmt.Errorf(`ent: validator failed for field "AnonymousSession.points_remaining": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnonymousSession.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnonymousSession.created_at"`)}
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		return &ValidationError{Name: "last_used_at", err: errors.New(`ent: missing required field "AnonymousSession.last_used_at"`)}
	}
	return nil
}

func (_c *AnonymousSessionCreate) sqlSave(ctx context.Context) (*AnonymousSession, error) {
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

func (_c *AnonymousSessionCreate) createSpec() (*AnonymousSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AnonymousSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(anonymoussession.Table, sqlgraph.NewFieldSpec(anonymoussession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(anonymoussession.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(anonymoussession.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := _c.mutation.PointsRemaining(); ok {
		_spec.SetField(anonymoussession.FieldPointsRemaining, field.TypeInt, value)
		_node.PointsRemaining = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(anonymoussession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConvertedUserID(); ok {
		_spec.SetField(anonymoussession.FieldConvertedUserID, field.TypeString, value)
		_node.ConvertedUserID = &value
	}
	if value, ok := _c.mutation.LastBonusAt(); ok {
		_spec.SetField(anonymoussession.FieldLastBonusAt, field.TypeTime, value)
		_node.LastBonusAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(anonymoussession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(anonymoussession.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = value
	}
	return _node, _spec
}

// AnonymousSessionCreateBulk is the builder for creating many AnonymousSession entities in bulk.
type AnonymousSessionCreateBulk struct {
	config
	err      error
	builders []*AnonymousSessionCreate
}

// Save creates the AnonymousSession entities in the database.
func (_c *AnonymousSessionCreateBulk) Save(ctx context.Context) ([]*AnonymousSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnonymousSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnonymousSessionMutation)
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
func (_c *AnonymousSessionCreateBulk) SaveX(ctx context.Context) []*AnonymousSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnonymousSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnonymousSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
