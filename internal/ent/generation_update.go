// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/avelar/pixelmint/internal/ent/generation"
	"github.com/avelar/pixelmint/internal/ent/predicate"
)

// GenerationUpdate is the builder for updating Generation entities.
type GenerationUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationMutation
}

// Where appends a list predicates to the GenerationUpdate builder.
func (_u *GenerationUpdate) Where(ps ...predicate.Generation) *GenerationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *GenerationUpdate) SetJobID(v string) *GenerationUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillableJobID(v *string) *GenerationUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GenerationUpdate) SetUserID(v string) *GenerationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillableUserID(v *string) *GenerationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *GenerationUpdate) ClearUserID() *GenerationUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GenerationUpdate) SetSessionID(v int) *GenerationUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillableSessionID(v *int) *GenerationUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *GenerationUpdate) AddSessionID(v int) *GenerationUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *GenerationUpdate) ClearSessionID() *GenerationUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *GenerationUpdate) SetPrompt(v string) *GenerationUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillablePrompt(v *string) *GenerationUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *GenerationUpdate) SetName(v string) *GenerationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillableName(v *string) *GenerationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *GenerationUpdate) ClearName() *GenerationUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationUpdate) SetStatus(v string) *GenerationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillableStatus(v *string) *GenerationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *GenerationUpdate) SetImageURL(v string) *GenerationUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillableImageURL(v *string) *GenerationUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *GenerationUpdate) ClearImageURL() *GenerationUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationUpdate) SetErrorMessage(v string) *GenerationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillableErrorMessage(v *string) *GenerationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenerationUpdate) ClearErrorMessage() *GenerationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelSettings sets the "model_settings" field.
func (_u *GenerationUpdate) SetModelSettings(v map[string]interface{}) *GenerationUpdate {
	_u.mutation.SetModelSettings(v)
	return _u
}

// ClearModelSettings clears the value of the "model_settings" field.
func (_u *GenerationUpdate) ClearModelSettings() *GenerationUpdate {
	_u.mutation.ClearModelSettings()
	return _u
}

// SetTags sets the "tags" field.
func (_u *GenerationUpdate) SetTags(v []string) *GenerationUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *GenerationUpdate) AppendTags(v []string) *GenerationUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *GenerationUpdate) ClearTags() *GenerationUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *GenerationUpdate) SetFavorite(v bool) *GenerationUpdate {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillableFavorite(v *bool) *GenerationUpdate {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *GenerationUpdate) SetBatchID(v string) *GenerationUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *GenerationUpdate) SetNillableBatchID(v *string) *GenerationUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *GenerationUpdate) ClearBatchID() *GenerationUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GenerationUpdate) SetUpdatedAt(v time.Time) *GenerationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GenerationMutation object of the builder.
func (_u *GenerationUpdate) Mutation() *GenerationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GenerationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationUpdate) check() error {
	if v, ok := _u.mutation.JobID(); ok {
		if err := generation.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "Generation.job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := generation.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Generation.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generation.Table, generation.Columns, sqlgraph.NewFieldSpec(generation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(generation.FieldJobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(generation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(generation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(generation.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(generation.FieldSessionID, field.TypeInt, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(generation.FieldSessionID, field.TypeInt)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(generation.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(generation.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(generation.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(generation.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(generation.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelSettings(); ok {
		_spec.SetField(generation.FieldModelSettings, field.TypeJSON, value)
	}
	if _u.mutation.ModelSettingsCleared() {
		_spec.ClearField(generation.FieldModelSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(generation.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generation.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(generation.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(generation.FieldFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(generation.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(generation.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationUpdateOne is the builder for updating a single Generation entity.
type GenerationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationMutation
}

// SetJobID sets the "job_id" field.
func (_u *GenerationUpdateOne) SetJobID(v string) *GenerationUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillableJobID(v *string) *GenerationUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GenerationUpdateOne) SetUserID(v string) *GenerationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillableUserID(v *string) *GenerationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *GenerationUpdateOne) ClearUserID() *GenerationUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GenerationUpdateOne) SetSessionID(v int) *GenerationUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillableSessionID(v *int) *GenerationUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *GenerationUpdateOne) AddSessionID(v int) *GenerationUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *GenerationUpdateOne) ClearSessionID() *GenerationUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *GenerationUpdateOne) SetPrompt(v string) *GenerationUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillablePrompt(v *string) *GenerationUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *GenerationUpdateOne) SetName(v string) *GenerationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillableName(v *string) *GenerationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *GenerationUpdateOne) ClearName() *GenerationUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationUpdateOne) SetStatus(v string) *GenerationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillableStatus(v *string) *GenerationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *GenerationUpdateOne) SetImageURL(v string) *GenerationUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillableImageURL(v *string) *GenerationUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *GenerationUpdateOne) ClearImageURL() *GenerationUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationUpdateOne) SetErrorMessage(v string) *GenerationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillableErrorMessage(v *string) *GenerationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenerationUpdateOne) ClearErrorMessage() *GenerationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelSettings sets the "model_settings" field.
func (_u *GenerationUpdateOne) SetModelSettings(v map[string]interface{}) *GenerationUpdateOne {
	_u.mutation.SetModelSettings(v)
	return _u
}

// ClearModelSettings clears the value of the "model_settings" field.
func (_u *GenerationUpdateOne) ClearModelSettings() *GenerationUpdateOne {
	_u.mutation.ClearModelSettings()
	return _u
}

// SetTags sets the "tags" field.
func (_u *GenerationUpdateOne) SetTags(v []string) *GenerationUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *GenerationUpdateOne) AppendTags(v []string) *GenerationUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *GenerationUpdateOne) ClearTags() *GenerationUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *GenerationUpdateOne) SetFavorite(v bool) *GenerationUpdateOne {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillableFavorite(v *bool) *GenerationUpdateOne {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *GenerationUpdateOne) SetBatchID(v string) *GenerationUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *GenerationUpdateOne) SetNillableBatchID(v *string) *GenerationUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *GenerationUpdateOne) ClearBatchID() *GenerationUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GenerationUpdateOne) SetUpdatedAt(v time.Time) *GenerationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GenerationMutation object of the builder.
func (_u *GenerationUpdateOne) Mutation() *GenerationMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationUpdate builder.
func (_u *GenerationUpdateOne) Where(ps ...predicate.Generation) *GenerationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationUpdateOne) Select(field string, fields ...string) *GenerationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Generation entity.
func (_u *GenerationUpdateOne) Save(ctx context.Context) (*Generation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationUpdateOne) SaveX(ctx context.Context) *Generation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GenerationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationUpdateOne) check() error {
	if v, ok := _u.mutation.JobID(); ok {
		if err := generation.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "Generation.job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := generation.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Generation.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationUpdateOne) sqlSave(ctx context.Context) (_node *Generation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generation.Table, generation.Columns, sqlgraph.NewFieldSpec(generation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Generation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generation.FieldID)
		for _, f := range fields {
			if !generation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generation.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(generation.FieldJobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(generation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(generation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(generation.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(generation.FieldSessionID, field.TypeInt, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(generation.FieldSessionID, field.TypeInt)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(generation.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(generation.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(generation.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(generation.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(generation.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelSettings(); ok {
		_spec.SetField(generation.FieldModelSettings, field.TypeJSON, value)
	}
	if _u.mutation.ModelSettingsCleared() {
		_spec.ClearField(generation.FieldModelSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(generation.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generation.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(generation.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(generation.FieldFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(generation.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(generation.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Generation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
