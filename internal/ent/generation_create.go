// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelar/pixelmint/internal/ent/generation"
)

// GenerationCreate is the builder for creating a Generation entity.
type GenerationCreate struct {
	config
	mutation *GenerationMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *GenerationCreate) SetJobID(v string) *GenerationCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *GenerationCreate) SetUserID(v string) *GenerationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableUserID(v *string) *GenerationCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *GenerationCreate) SetSessionID(v int) *GenerationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableSessionID(v *int) *GenerationCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *GenerationCreate) SetPrompt(v string) *GenerationCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetName sets the "name" field.
func (_c *GenerationCreate) SetName(v string) *GenerationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableName(v *string) *GenerationCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GenerationCreate) SetStatus(v string) *GenerationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableStatus(v *string) *GenerationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *GenerationCreate) SetImageURL(v string) *GenerationCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableImageURL(v *string) *GenerationCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GenerationCreate) SetErrorMessage(v string) *GenerationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableErrorMessage(v *string) *GenerationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetModelSettings sets the "model_settings" field.
func (_c *GenerationCreate) SetModelSettings(v map[string]interface{}) *GenerationCreate {
	_c.mutation.SetModelSettings(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *GenerationCreate) SetTags(v []string) *GenerationCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetFavorite sets the "favorite" field.
func (_c *GenerationCreate) SetFavorite(v bool) *GenerationCreate {
	_c.mutation.SetFavorite(v)
	return _c
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableFavorite(v *bool) *GenerationCreate {
	if v != nil {
		_c.SetFavorite(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *GenerationCreate) SetBatchID(v string) *GenerationCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableBatchID(v *string) *GenerationCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GenerationCreate) SetCreatedAt(v time.Time) *GenerationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableCreatedAt(v *time.Time) *GenerationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GenerationCreate) SetUpdatedAt(v time.Time) *GenerationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GenerationCreate) SetNillableUpdatedAt(v *time.Time) *GenerationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the GenerationMutation object of the builder.
func (_c *GenerationCreate) Mutation() *GenerationMutation {
	return _c.mutation
}

// Save creates the Generation in the database.
func (_c *GenerationCreate) Save(ctx context.Context) (*Generation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationCreate) SaveX(ctx context.Context) *Generation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := generation.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := generation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		v := generation.DefaultFavorite
		_c.mutation.SetFavorite(v)
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		v := generation.DefaultBatchID
		_c.mutation.SetBatchID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := generation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Generation.job_id"`)}
	}
	if v, ok := _c.mutation.JobID(); ok {
		if err := generation.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "Generation.job_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Generation.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := generation.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Generation.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Generation.status"`)}
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		return &ValidationError{Name: "favorite", err: errors.New(`ent: missing required field "Generation.favorite"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Generation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Generation.updated_at"`)}
	}
	return nil
}

func (_c *GenerationCreate) sqlSave(ctx context.Context) (*Generation, error) {
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

func (_c *GenerationCreate) createSpec() (*Generation, *sqlgraph.CreateSpec) {
	var (
		_node = &Generation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generation.Table, sqlgraph.NewFieldSpec(generation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(generation.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(generation.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(generation.FieldSessionID, field.TypeInt, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(generation.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(generation.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generation.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(generation.FieldImageURL, field.TypeString, value)
		_node.ImageURL = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(generation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ModelSettings(); ok {
		_spec.SetField(generation.FieldModelSettings, field.TypeJSON, value)
		_node.ModelSettings = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(generation.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Favorite(); ok {
		_spec.SetField(generation.FieldFavorite, field.TypeBool, value)
		_node.Favorite = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(generation.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(generation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// GenerationCreateBulk is the builder for creating many Generation entities in bulk.
type GenerationCreateBulk struct {
	config
	err      error
	builders []*GenerationCreate
}

// Save creates the Generation entities in the database.
func (_c *GenerationCreateBulk) Save(ctx context.Context) ([]*Generation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Generation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationMutation)
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
func (_c *GenerationCreateBulk) SaveX(ctx context.Context) []*Generation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
