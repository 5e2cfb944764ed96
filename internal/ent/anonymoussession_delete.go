// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelar/pixelmint/internal/ent/anonymoussession"
	"github.com/avelar/pixelmint/internal/ent/predicate"
)

// AnonymousSessionDelete is the builder for deleting a AnonymousSession entity.
type AnonymousSessionDelete struct {
	config
	hooks    []Hook
	mutation *AnonymousSessionMutation
}

// Where appends a list predicates to the AnonymousSessionDelete builder.
func (_d *AnonymousSessionDelete) Where(ps ...predicate.AnonymousSession) *AnonymousSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnonymousSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnonymousSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnonymousSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(anonymoussession.Table, sqlgraph.NewFieldSpec(anonymoussession.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnonymousSessionDeleteOne is the builder for deleting a single AnonymousSession entity.
type AnonymousSessionDeleteOne struct {
	_d *AnonymousSessionDelete
}

// Where appends a list predicates to the AnonymousSessionDelete builder.
func (_d *AnonymousSessionDeleteOne) Where(ps ...predicate.AnonymousSession) *AnonymousSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnonymousSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{anonymoussession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnonymousSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
