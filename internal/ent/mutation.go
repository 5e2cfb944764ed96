// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avelar/pixelmint/internal/ent/anonymoussession"
	"github.com/avelar/pixelmint/internal/ent/generation"
	"github.com/avelar/pixelmint/internal/ent/pointstransaction"
	"github.com/avelar/pixelmint/internal/ent/predicate"
	"github.com/avelar/pixelmint/internal/ent/userledger"
	"github.com/avelar/pixelmint/internal/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnonymousSession  = "AnonymousSession"
	TypeGeneration        = "Generation"
	TypePointsTransaction = "PointsTransaction"
	TypeUserLedger        = "UserLedger"
	TypeWebhookEvent      = "WebhookEvent"
)

// AnonymousSessionMutation represents an operation that mutates the AnonymousSession nodes in the graph.
type AnonymousSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	token               *string
	ip_address          *string
	points_remaining    *int
	addpoints_remaining *int
	status              *string
	converted_user_id   *string
	last_bonus_at       *time.Time
	created_at          *time.Time
	last_used_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AnonymousSession, error)
	predicates          []predicate.AnonymousSession
}

var _ ent.Mutation = (*AnonymousSessionMutation)(nil)

// anonymoussessionOption allows management of the mutation configuration using functional options.
type anonymoussessionOption func(*AnonymousSessionMutation)

// newAnonymousSessionMutation creates new mutation for the AnonymousSession entity.
func newAnonymousSessionMutation(c config, op Op, opts ...anonymoussessionOption) *AnonymousSessionMutation {
	m := &AnonymousSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAnonymousSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnonymousSessionID sets the ID field of the mutation.
func withAnonymousSessionID(id int) anonymoussessionOption {
	return func(m *AnonymousSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AnonymousSession
		)
		m.oldValue = func(ctx context.Context) (*AnonymousSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnonymousSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnonymousSession sets the old AnonymousSession of the mutation.
func withAnonymousSession(node *AnonymousSession) anonymoussessionOption {
	return func(m *AnonymousSessionMutation) {
		m.oldValue = func(context.Context) (*AnonymousSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnonymousSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnonymousSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnonymousSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnonymousSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnonymousSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToken sets the "token" field.
func (m *AnonymousSessionMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *AnonymousSessionMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the AnonymousSession entity.
// If the AnonymousSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousSessionMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *AnonymousSessionMutation) ResetToken() {
	m.token = nil
}

// SetIPAddress sets the "ip_address" field.
func (m *AnonymousSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *AnonymousSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the AnonymousSession entity.
// If the AnonymousSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousSessionMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *AnonymousSessionMutation) ResetIPAddress() {
	m.ip_address = nil
}

// SetPointsRemaining sets the "points_remaining" field.
func (m *AnonymousSessionMutation) SetPointsRemaining(i int) {
	m.points_remaining = &i
	m.addpoints_remaining = nil
}

// PointsRemaining returns the value of the "points_remaining" field in the mutation.
func (m *AnonymousSessionMutation) PointsRemaining() (r int, exists bool) {
	v := m.points_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldPointsRemaining returns the old "points_remaining" field's value of the AnonymousSession entity.
// If the AnonymousSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousSessionMutation) OldPointsRemaining(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointsRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointsRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointsRemaining: %w", err)
	}
	return oldValue.PointsRemaining, nil
}

// AddPointsRemaining adds i to the "points_remaining" field.
func (m *AnonymousSessionMutation) AddPointsRemaining(i int) {
	if m.addpoints_remaining != nil {
		*m.addpoints_remaining += i
	} else {
		m.addpoints_remaining = &i
	}
}

// AddedPointsRemaining returns the value that was added to the "points_remaining" field in this mutation.
func (m *AnonymousSessionMutation) AddedPointsRemaining() (r int, exists bool) {
	v := m.addpoints_remaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetPointsRemaining resets all changes to the "points_remaining" field.
func (m *AnonymousSessionMutation) ResetPointsRemaining() {
	m.points_remaining = nil
	m.addpoints_remaining = nil
}

// SetStatus sets the "status" field.
func (m *AnonymousSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AnonymousSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnonymousSession entity.
// If the AnonymousSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnonymousSessionMutation) ResetStatus() {
	m.status = nil
}

// SetConvertedUserID sets the "converted_user_id" field.
func (m *AnonymousSessionMutation) SetConvertedUserID(s string) {
	m.converted_user_id = &s
}

// ConvertedUserID returns the value of the "converted_user_id" field in the mutation.
func (m *AnonymousSessionMutation) ConvertedUserID() (r string, exists bool) {
	v := m.converted_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConvertedUserID returns the old "converted_user_id" field's value of the AnonymousSession entity.
// If the AnonymousSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousSessionMutation) OldConvertedUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConvertedUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConvertedUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConvertedUserID: %w", err)
	}
	return oldValue.ConvertedUserID, nil
}

// ClearConvertedUserID clears the value of the "converted_user_id" field.
func (m *AnonymousSessionMutation) ClearConvertedUserID() {
	m.converted_user_id = nil
	m.clearedFields[anonymoussession.FieldConvertedUserID] = struct{}{}
}

// ConvertedUserIDCleared returns if the "converted_user_id" field was cleared in this mutation.
func (m *AnonymousSessionMutation) ConvertedUserIDCleared() bool {
	_, ok := m.clearedFields[anonymoussession.FieldConvertedUserID]
	return ok
}

// ResetConvertedUserID resets all changes to the "converted_user_id" field.
func (m *AnonymousSessionMutation) ResetConvertedUserID() {
	m.converted_user_id = nil
	delete(m.clearedFields, anonymoussession.FieldConvertedUserID)
}

// SetLastBonusAt sets the "last_bonus_at" field.
func (m *AnonymousSessionMutation) SetLastBonusAt(t time.Time) {
	m.last_bonus_at = &t
}

// LastBonusAt returns the value of the "last_bonus_at" field in the mutation.
func (m *AnonymousSessionMutation) LastBonusAt() (r time.Time, exists bool) {
	v := m.last_bonus_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBonusAt returns the old "last_bonus_at" field's value of the AnonymousSession entity.
// If the AnonymousSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousSessionMutation) OldLastBonusAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBonusAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBonusAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBonusAt: %w", err)
	}
	return oldValue.LastBonusAt, nil
}

// ClearLastBonusAt clears the value of the "last_bonus_at" field.
func (m *AnonymousSessionMutation) ClearLastBonusAt() {
	m.last_bonus_at = nil
	m.clearedFields[anonymoussession.FieldLastBonusAt] = struct{}{}
}

// LastBonusAtCleared returns if the "last_bonus_at" field was cleared in this mutation.
func (m *AnonymousSessionMutation) LastBonusAtCleared() bool {
	_, ok := m.clearedFields[anonymoussession.FieldLastBonusAt]
	return ok
}

// ResetLastBonusAt resets all changes to the "last_bonus_at" field.
func (m *AnonymousSessionMutation) ResetLastBonusAt() {
	m.last_bonus_at = nil
	delete(m.clearedFields, anonymoussession.FieldLastBonusAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnonymousSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnonymousSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnonymousSession entity.
// If the AnonymousSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnonymousSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *AnonymousSessionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *AnonymousSessionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the AnonymousSession entity.
// If the AnonymousSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousSessionMutation) OldLastUsedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *AnonymousSessionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
}

// Where appends a list predicates to the AnonymousSessionMutation builder.
func (m *AnonymousSessionMutation) Where(ps ...predicate.AnonymousSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnonymousSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnonymousSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnonymousSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnonymousSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnonymousSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnonymousSession).
func (m *AnonymousSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnonymousSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.token != nil {
		fields = append(fields, anonymoussession.FieldToken)
	}
	if m.ip_address != nil {
		fields = append(fields, anonymoussession.FieldIPAddress)
	}
	if m.points_remaining != nil {
		fields = append(fields, anonymoussession.FieldPointsRemaining)
	}
	if m.status != nil {
		fields = append(fields, anonymoussession.FieldStatus)
	}
	if m.converted_user_id != nil {
		fields = append(fields, anonymoussession.FieldConvertedUserID)
	}
	if m.last_bonus_at != nil {
		fields = append(fields, anonymoussession.FieldLastBonusAt)
	}
	if m.created_at != nil {
		fields = append(fields, anonymoussession.FieldCreatedAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, anonymoussession.FieldLastUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnonymousSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case anonymoussession.FieldToken:
		return m.Token()
	case anonymoussession.FieldIPAddress:
		return m.IPAddress()
	case anonymoussession.FieldPointsRemaining:
		return m.PointsRemaining()
	case anonymoussession.FieldStatus:
		return m.Status()
	case anonymoussession.FieldConvertedUserID:
		return m.ConvertedUserID()
	case anonymoussession.FieldLastBonusAt:
		return m.LastBonusAt()
	case anonymoussession.FieldCreatedAt:
		return m.CreatedAt()
	case anonymoussession.FieldLastUsedAt:
		return m.LastUsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnonymousSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case anonymoussession.FieldToken:
		return m.OldToken(ctx)
	case anonymoussession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case anonymoussession.FieldPointsRemaining:
		return m.OldPointsRemaining(ctx)
	case anonymoussession.FieldStatus:
		return m.OldStatus(ctx)
	case anonymoussession.FieldConvertedUserID:
		return m.OldConvertedUserID(ctx)
	case anonymoussession.FieldLastBonusAt:
		return m.OldLastBonusAt(ctx)
	case anonymoussession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case anonymoussession.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnonymousSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnonymousSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case anonymoussession.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case anonymoussession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case anonymoussession.FieldPointsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointsRemaining(v)
		return nil
	case anonymoussession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case anonymoussession.FieldConvertedUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConvertedUserID(v)
		return nil
	case anonymoussession.FieldLastBonusAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBonusAt(v)
		return nil
	case anonymoussession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case anonymoussession.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnonymousSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnonymousSessionMutation) AddedFields() []string {
	var fields []string
	if m.addpoints_remaining != nil {
		fields = append(fields, anonymoussession.FieldPointsRemaining)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnonymousSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case anonymoussession.FieldPointsRemaining:
		return m.AddedPointsRemaining()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnonymousSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case anonymoussession.FieldPointsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPointsRemaining(v)
		return nil
	}
	return fmt.Errorf("unknown AnonymousSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnonymousSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(anonymoussession.FieldConvertedUserID) {
		fields = append(fields, anonymoussession.FieldConvertedUserID)
	}
	if m.FieldCleared(anonymoussession.FieldLastBonusAt) {
		fields = append(fields, anonymoussession.FieldLastBonusAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnonymousSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnonymousSessionMutation) ClearField(name string) error {
	switch name {
	case anonymoussession.FieldConvertedUserID:
		m.ClearConvertedUserID()
		return nil
	case anonymoussession.FieldLastBonusAt:
		m.ClearLastBonusAt()
		return nil
	}
	return fmt.Errorf("unknown AnonymousSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnonymousSessionMutation) ResetField(name string) error {
	switch name {
	case anonymoussession.FieldToken:
		m.ResetToken()
		return nil
	case anonymoussession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case anonymoussession.FieldPointsRemaining:
		m.ResetPointsRemaining()
		return nil
	case anonymoussession.FieldStatus:
		m.ResetStatus()
		return nil
	case anonymoussession.FieldConvertedUserID:
		m.ResetConvertedUserID()
		return nil
	case anonymoussession.FieldLastBonusAt:
		m.ResetLastBonusAt()
		return nil
	case anonymoussession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case anonymoussession.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown AnonymousSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnonymousSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnonymousSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnonymousSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnonymousSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnonymousSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnonymousSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnonymousSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnonymousSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnonymousSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnonymousSession edge %s", name)
}

// GenerationMutation represents an operation that mutates the Generation nodes in the graph.
type GenerationMutation struct {
	config
	op             Op
	typ            string
	id             *int
	job_id         *string
	user_id        *string
	session_id     *int
	addsession_id  *int
	prompt         *string
	name           *string
	status         *string
	image_url      *string
	error_message  *string
	model_settings *map[string]interface{}
	tags           *[]string
	appendtags     []string
	favorite       *bool
	batch_id       *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Generation, error)
	predicates     []predicate.Generation
}

var _ ent.Mutation = (*GenerationMutation)(nil)

// generationOption allows management of the mutation configuration using functional options.
type generationOption func(*GenerationMutation)

// newGenerationMutation creates new mutation for the Generation entity.
func newGenerationMutation(c config, op Op, opts ...generationOption) *GenerationMutation {
	m := &GenerationMutation{
		config:        c,
		op:            op,
		typ:           TypeGeneration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationID sets the ID field of the mutation.
func withGenerationID(id int) generationOption {
	return func(m *GenerationMutation) {
		var (
			err   error
			once  sync.Once
			value *Generation
		)
		m.oldValue = func(ctx context.Context) (*Generation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Generation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeneration sets the old Generation of the mutation.
func withGeneration(node *Generation) generationOption {
	return func(m *GenerationMutation) {
		m.oldValue = func(context.Context) (*Generation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Generation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *GenerationMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *GenerationMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *GenerationMutation) ResetJobID() {
	m.job_id = nil
}

// SetUserID sets the "user_id" field.
func (m *GenerationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *GenerationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *GenerationMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[generation.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *GenerationMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[generation.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *GenerationMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, generation.FieldUserID)
}

// SetSessionID sets the "session_id" field.
func (m *GenerationMutation) SetSessionID(i int) {
	m.session_id = &i
	m.addsession_id = nil
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *GenerationMutation) SessionID() (r int, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldSessionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// AddSessionID adds i to the "session_id" field.
func (m *GenerationMutation) AddSessionID(i int) {
	if m.addsession_id != nil {
		*m.addsession_id += i
	} else {
		m.addsession_id = &i
	}
}

// AddedSessionID returns the value that was added to the "session_id" field in this mutation.
func (m *GenerationMutation) AddedSessionID() (r int, exists bool) {
	v := m.addsession_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSessionID clears the value of the "session_id" field.
func (m *GenerationMutation) ClearSessionID() {
	m.session_id = nil
	m.addsession_id = nil
	m.clearedFields[generation.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *GenerationMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[generation.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *GenerationMutation) ResetSessionID() {
	m.session_id = nil
	m.addsession_id = nil
	delete(m.clearedFields, generation.FieldSessionID)
}

// SetPrompt sets the "prompt" field.
func (m *GenerationMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *GenerationMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *GenerationMutation) ResetPrompt() {
	m.prompt = nil
}

// SetName sets the "name" field.
func (m *GenerationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GenerationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *GenerationMutation) ClearName() {
	m.name = nil
	m.clearedFields[generation.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *GenerationMutation) NameCleared() bool {
	_, ok := m.clearedFields[generation.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *GenerationMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, generation.FieldName)
}

// SetStatus sets the "status" field.
func (m *GenerationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *GenerationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GenerationMutation) ResetStatus() {
	m.status = nil
}

// SetImageURL sets the "image_url" field.
func (m *GenerationMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *GenerationMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *GenerationMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[generation.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *GenerationMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[generation.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *GenerationMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, generation.FieldImageURL)
}

// SetErrorMessage sets the "error_message" field.
func (m *GenerationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GenerationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *GenerationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[generation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *GenerationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[generation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GenerationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, generation.FieldErrorMessage)
}

// SetModelSettings sets the "model_settings" field.
func (m *GenerationMutation) SetModelSettings(value map[string]interface{}) {
	m.model_settings = &value
}

// ModelSettings returns the value of the "model_settings" field in the mutation.
func (m *GenerationMutation) ModelSettings() (r map[string]interface{}, exists bool) {
	v := m.model_settings
	if v == nil {
		return
	}
	return *v, true
}

// OldModelSettings returns the old "model_settings" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldModelSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelSettings: %w", err)
	}
	return oldValue.ModelSettings, nil
}

// ClearModelSettings clears the value of the "model_settings" field.
func (m *GenerationMutation) ClearModelSettings() {
	m.model_settings = nil
	m.clearedFields[generation.FieldModelSettings] = struct{}{}
}

// ModelSettingsCleared returns if the "model_settings" field was cleared in this mutation.
func (m *GenerationMutation) ModelSettingsCleared() bool {
	_, ok := m.clearedFields[generation.FieldModelSettings]
	return ok
}

// ResetModelSettings resets all changes to the "model_settings" field.
func (m *GenerationMutation) ResetModelSettings() {
	m.model_settings = nil
	delete(m.clearedFields, generation.FieldModelSettings)
}

// SetTags sets the "tags" field.
func (m *GenerationMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *GenerationMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *GenerationMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *GenerationMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *GenerationMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[generation.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *GenerationMutation) TagsCleared() bool {
	_, ok := m.clearedFields[generation.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *GenerationMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, generation.FieldTags)
}

// SetFavorite sets the "favorite" field.
func (m *GenerationMutation) SetFavorite(b bool) {
	m.favorite = &b
}

// Favorite returns the value of the "favorite" field in the mutation.
func (m *GenerationMutation) Favorite() (r bool, exists bool) {
	v := m.favorite
	if v == nil {
		return
	}
	return *v, true
}

// OldFavorite returns the old "favorite" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldFavorite(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFavorite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFavorite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFavorite: %w", err)
	}
	return oldValue.Favorite, nil
}

// ResetFavorite resets all changes to the "favorite" field.
func (m *GenerationMutation) ResetFavorite() {
	m.favorite = nil
}

// SetBatchID sets the "batch_id" field.
func (m *GenerationMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *GenerationMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ClearBatchID clears the value of the "batch_id" field.
func (m *GenerationMutation) ClearBatchID() {
	m.batch_id = nil
	m.clearedFields[generation.FieldBatchID] = struct{}{}
}

// BatchIDCleared returns if the "batch_id" field was cleared in this mutation.
func (m *GenerationMutation) BatchIDCleared() bool {
	_, ok := m.clearedFields[generation.FieldBatchID]
	return ok
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *GenerationMutation) ResetBatchID() {
	m.batch_id = nil
	delete(m.clearedFields, generation.FieldBatchID)
}

// SetCreatedAt sets the "created_at" field.
func (m *GenerationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GenerationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GenerationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GenerationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GenerationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GenerationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GenerationMutation builder.
func (m *GenerationMutation) Where(ps ...predicate.Generation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Generation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Generation).
func (m *GenerationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.job_id != nil {
		fields = append(fields, generation.FieldJobID)
	}
	if m.user_id != nil {
		fields = append(fields, generation.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, generation.FieldSessionID)
	}
	if m.prompt != nil {
		fields = append(fields, generation.FieldPrompt)
	}
	if m.name != nil {
		fields = append(fields, generation.FieldName)
	}
	if m.status != nil {
		fields = append(fields, generation.FieldStatus)
	}
	if m.image_url != nil {
		fields = append(fields, generation.FieldImageURL)
	}
	if m.error_message != nil {
		fields = append(fields, generation.FieldErrorMessage)
	}
	if m.model_settings != nil {
		fields = append(fields, generation.FieldModelSettings)
	}
	if m.tags != nil {
		fields = append(fields, generation.FieldTags)
	}
	if m.favorite != nil {
		fields = append(fields, generation.FieldFavorite)
	}
	if m.batch_id != nil {
		fields = append(fields, generation.FieldBatchID)
	}
	if m.created_at != nil {
		fields = append(fields, generation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, generation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generation.FieldJobID:
		return m.JobID()
	case generation.FieldUserID:
		return m.UserID()
	case generation.FieldSessionID:
		return m.SessionID()
	case generation.FieldPrompt:
		return m.Prompt()
	case generation.FieldName:
		return m.Name()
	case generation.FieldStatus:
		return m.Status()
	case generation.FieldImageURL:
		return m.ImageURL()
	case generation.FieldErrorMessage:
		return m.ErrorMessage()
	case generation.FieldModelSettings:
		return m.ModelSettings()
	case generation.FieldTags:
		return m.Tags()
	case generation.FieldFavorite:
		return m.Favorite()
	case generation.FieldBatchID:
		return m.BatchID()
	case generation.FieldCreatedAt:
		return m.CreatedAt()
	case generation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generation.FieldJobID:
		return m.OldJobID(ctx)
	case generation.FieldUserID:
		return m.OldUserID(ctx)
	case generation.FieldSessionID:
		return m.OldSessionID(ctx)
	case generation.FieldPrompt:
		return m.OldPrompt(ctx)
	case generation.FieldName:
		return m.OldName(ctx)
	case generation.FieldStatus:
		return m.OldStatus(ctx)
	case generation.FieldImageURL:
		return m.OldImageURL(ctx)
	case generation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case generation.FieldModelSettings:
		return m.OldModelSettings(ctx)
	case generation.FieldTags:
		return m.OldTags(ctx)
	case generation.FieldFavorite:
		return m.OldFavorite(ctx)
	case generation.FieldBatchID:
		return m.OldBatchID(ctx)
	case generation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case generation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Generation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generation.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case generation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case generation.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case generation.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case generation.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case generation.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case generation.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case generation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case generation.FieldModelSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelSettings(v)
		return nil
	case generation.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case generation.FieldFavorite:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFavorite(v)
		return nil
	case generation.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case generation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case generation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Generation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationMutation) AddedFields() []string {
	var fields []string
	if m.addsession_id != nil {
		fields = append(fields, generation.FieldSessionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generation.FieldSessionID:
		return m.AddedSessionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generation.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown Generation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generation.FieldUserID) {
		fields = append(fields, generation.FieldUserID)
	}
	if m.FieldCleared(generation.FieldSessionID) {
		fields = append(fields, generation.FieldSessionID)
	}
	if m.FieldCleared(generation.FieldName) {
		fields = append(fields, generation.FieldName)
	}
	if m.FieldCleared(generation.FieldImageURL) {
		fields = append(fields, generation.FieldImageURL)
	}
	if m.FieldCleared(generation.FieldErrorMessage) {
		fields = append(fields, generation.FieldErrorMessage)
	}
	if m.FieldCleared(generation.FieldModelSettings) {
		fields = append(fields, generation.FieldModelSettings)
	}
	if m.FieldCleared(generation.FieldTags) {
		fields = append(fields, generation.FieldTags)
	}
	if m.FieldCleared(generation.FieldBatchID) {
		fields = append(fields, generation.FieldBatchID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationMutation) ClearField(name string) error {
	switch name {
	case generation.FieldUserID:
		m.ClearUserID()
		return nil
	case generation.FieldSessionID:
		m.ClearSessionID()
		return nil
	case generation.FieldName:
		m.ClearName()
		return nil
	case generation.FieldImageURL:
		m.ClearImageURL()
		return nil
	case generation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case generation.FieldModelSettings:
		m.ClearModelSettings()
		return nil
	case generation.FieldTags:
		m.ClearTags()
		return nil
	case generation.FieldBatchID:
		m.ClearBatchID()
		return nil
	}
	return fmt.Errorf("unknown Generation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationMutation) ResetField(name string) error {
	switch name {
	case generation.FieldJobID:
		m.ResetJobID()
		return nil
	case generation.FieldUserID:
		m.ResetUserID()
		return nil
	case generation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case generation.FieldPrompt:
		m.ResetPrompt()
		return nil
	case generation.FieldName:
		m.ResetName()
		return nil
	case generation.FieldStatus:
		m.ResetStatus()
		return nil
	case generation.FieldImageURL:
		m.ResetImageURL()
		return nil
	case generation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case generation.FieldModelSettings:
		m.ResetModelSettings()
		return nil
	case generation.FieldTags:
		m.ResetTags()
		return nil
	case generation.FieldFavorite:
		m.ResetFavorite()
		return nil
	case generation.FieldBatchID:
		m.ResetBatchID()
		return nil
	case generation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case generation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Generation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Generation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Generation edge %s", name)
}

// PointsTransactionMutation represents an operation that mutates the PointsTransaction nodes in the graph.
type PointsTransactionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	amount           *int
	addamount        *int
	reason           *string
	external_ref     *string
	balance_after    *int
	addbalance_after *int
	description      *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	ledger           *int
	clearedledger    bool
	done             bool
	oldValue         func(context.Context) (*PointsTransaction, error)
	predicates       []predicate.PointsTransaction
}

var _ ent.Mutation = (*PointsTransactionMutation)(nil)

// pointstransactionOption allows management of the mutation configuration using functional options.
type pointstransactionOption func(*PointsTransactionMutation)

// newPointsTransactionMutation creates new mutation for the PointsTransaction entity.
func newPointsTransactionMutation(c config, op Op, opts ...pointstransactionOption) *PointsTransactionMutation {
	m := &PointsTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypePointsTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPointsTransactionID sets the ID field of the mutation.
func withPointsTransactionID(id int) pointstransactionOption {
	return func(m *PointsTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *PointsTransaction
		)
		m.oldValue = func(ctx context.Context) (*PointsTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PointsTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPointsTransaction sets the old PointsTransaction of the mutation.
func withPointsTransaction(node *PointsTransaction) pointstransactionOption {
	return func(m *PointsTransactionMutation) {
		m.oldValue = func(context.Context) (*PointsTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PointsTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PointsTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PointsTransactionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PointsTransactionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PointsTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAmount sets the "amount" field.
func (m *PointsTransactionMutation) SetAmount(i int) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *PointsTransactionMutation) Amount() (r int, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the PointsTransaction entity.
// If the PointsTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsTransactionMutation) OldAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *PointsTransactionMutation) AddAmount(i int) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *PointsTransactionMutation) AddedAmount() (r int, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *PointsTransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetReason sets the "reason" field.
func (m *PointsTransactionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *PointsTransactionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the PointsTransaction entity.
// If the PointsTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsTransactionMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *PointsTransactionMutation) ResetReason() {
	m.reason = nil
}

// SetExternalRef sets the "external_ref" field.
func (m *PointsTransactionMutation) SetExternalRef(s string) {
	m.external_ref = &s
}

// ExternalRef returns the value of the "external_ref" field in the mutation.
func (m *PointsTransactionMutation) ExternalRef() (r string, exists bool) {
	v := m.external_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalRef returns the old "external_ref" field's value of the PointsTransaction entity.
// If the PointsTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsTransactionMutation) OldExternalRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalRef: %w", err)
	}
	return oldValue.ExternalRef, nil
}

// ClearExternalRef clears the value of the "external_ref" field.
func (m *PointsTransactionMutation) ClearExternalRef() {
	m.external_ref = nil
	m.clearedFields[pointstransaction.FieldExternalRef] = struct{}{}
}

// ExternalRefCleared returns if the "external_ref" field was cleared in this mutation.
func (m *PointsTransactionMutation) ExternalRefCleared() bool {
	_, ok := m.clearedFields[pointstransaction.FieldExternalRef]
	return ok
}

// ResetExternalRef resets all changes to the "external_ref" field.
func (m *PointsTransactionMutation) ResetExternalRef() {
	m.external_ref = nil
	delete(m.clearedFields, pointstransaction.FieldExternalRef)
}

// SetBalanceAfter sets the "balance_after" field.
func (m *PointsTransactionMutation) SetBalanceAfter(i int) {
	m.balance_after = &i
	m.addbalance_after = nil
}

// BalanceAfter returns the value of the "balance_after" field in the mutation.
func (m *PointsTransactionMutation) BalanceAfter() (r int, exists bool) {
	v := m.balance_after
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceAfter returns the old "balance_after" field's value of the PointsTransaction entity.
// If the PointsTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsTransactionMutation) OldBalanceAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceAfter: %w", err)
	}
	return oldValue.BalanceAfter, nil
}

// AddBalanceAfter adds i to the "balance_after" field.
func (m *PointsTransactionMutation) AddBalanceAfter(i int) {
	if m.addbalance_after != nil {
		*m.addbalance_after += i
	} else {
		m.addbalance_after = &i
	}
}

// AddedBalanceAfter returns the value that was added to the "balance_after" field in this mutation.
func (m *PointsTransactionMutation) AddedBalanceAfter() (r int, exists bool) {
	v := m.addbalance_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceAfter resets all changes to the "balance_after" field.
func (m *PointsTransactionMutation) ResetBalanceAfter() {
	m.balance_after = nil
	m.addbalance_after = nil
}

// SetDescription sets the "description" field.
func (m *PointsTransactionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PointsTransactionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PointsTransaction entity.
// If the PointsTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsTransactionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PointsTransactionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[pointstransaction.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PointsTransactionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[pointstransaction.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PointsTransactionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, pointstransaction.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *PointsTransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PointsTransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PointsTransaction entity.
// If the PointsTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsTransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PointsTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLedgerID sets the "ledger" edge to the UserLedger entity by id.
func (m *PointsTransactionMutation) SetLedgerID(id int) {
	m.ledger = &id
}

// ClearLedger clears the "ledger" edge to the UserLedger entity.
func (m *PointsTransactionMutation) ClearLedger() {
	m.clearedledger = true
}

// LedgerCleared reports if the "ledger" edge to the UserLedger entity was cleared.
func (m *PointsTransactionMutation) LedgerCleared() bool {
	return m.clearedledger
}

// LedgerID returns the "ledger" edge ID in the mutation.
func (m *PointsTransactionMutation) LedgerID() (id int, exists bool) {
	if m.ledger != nil {
		return *m.ledger, true
	}
	return
}

// LedgerIDs returns the "ledger" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LedgerID instead. It exists only for internal usage by the builders.
func (m *PointsTransactionMutation) LedgerIDs() (ids []int) {
	if id := m.ledger; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLedger resets all changes to the "ledger" edge.
func (m *PointsTransactionMutation) ResetLedger() {
	m.ledger = nil
	m.clearedledger = false
}

// Where appends a list predicates to the PointsTransactionMutation builder.
func (m *PointsTransactionMutation) Where(ps ...predicate.PointsTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PointsTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PointsTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PointsTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PointsTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PointsTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PointsTransaction).
func (m *PointsTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PointsTransactionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.amount != nil {
		fields = append(fields, pointstransaction.FieldAmount)
	}
	if m.reason != nil {
		fields = append(fields, pointstransaction.FieldReason)
	}
	if m.external_ref != nil {
		fields = append(fields, pointstransaction.FieldExternalRef)
	}
	if m.balance_after != nil {
		fields = append(fields, pointstransaction.FieldBalanceAfter)
	}
	if m.description != nil {
		fields = append(fields, pointstransaction.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, pointstransaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PointsTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pointstransaction.FieldAmount:
		return m.Amount()
	case pointstransaction.FieldReason:
		return m.Reason()
	case pointstransaction.FieldExternalRef:
		return m.ExternalRef()
	case pointstransaction.FieldBalanceAfter:
		return m.BalanceAfter()
	case pointstransaction.FieldDescription:
		return m.Description()
	case pointstransaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PointsTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pointstransaction.FieldAmount:
		return m.OldAmount(ctx)
	case pointstransaction.FieldReason:
		return m.OldReason(ctx)
	case pointstransaction.FieldExternalRef:
		return m.OldExternalRef(ctx)
	case pointstransaction.FieldBalanceAfter:
		return m.OldBalanceAfter(ctx)
	case pointstransaction.FieldDescription:
		return m.OldDescription(ctx)
	case pointstransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PointsTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PointsTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pointstransaction.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case pointstransaction.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case pointstransaction.FieldExternalRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalRef(v)
		return nil
	case pointstransaction.FieldBalanceAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceAfter(v)
		return nil
	case pointstransaction.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case pointstransaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PointsTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PointsTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, pointstransaction.FieldAmount)
	}
	if m.addbalance_after != nil {
		fields = append(fields, pointstransaction.FieldBalanceAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PointsTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pointstransaction.FieldAmount:
		return m.AddedAmount()
	case pointstransaction.FieldBalanceAfter:
		return m.AddedBalanceAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PointsTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pointstransaction.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case pointstransaction.FieldBalanceAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceAfter(v)
		return nil
	}
	return fmt.Errorf("unknown PointsTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PointsTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pointstransaction.FieldExternalRef) {
		fields = append(fields, pointstransaction.FieldExternalRef)
	}
	if m.FieldCleared(pointstransaction.FieldDescription) {
		fields = append(fields, pointstransaction.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PointsTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PointsTransactionMutation) ClearField(name string) error {
	switch name {
	case pointstransaction.FieldExternalRef:
		m.ClearExternalRef()
		return nil
	case pointstransaction.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown PointsTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PointsTransactionMutation) ResetField(name string) error {
	switch name {
	case pointstransaction.FieldAmount:
		m.ResetAmount()
		return nil
	case pointstransaction.FieldReason:
		m.ResetReason()
		return nil
	case pointstransaction.FieldExternalRef:
		m.ResetExternalRef()
		return nil
	case pointstransaction.FieldBalanceAfter:
		m.ResetBalanceAfter()
		return nil
	case pointstransaction.FieldDescription:
		m.ResetDescription()
		return nil
	case pointstransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PointsTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PointsTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ledger != nil {
		edges = append(edges, pointstransaction.EdgeLedger)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PointsTransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pointstransaction.EdgeLedger:
		if id := m.ledger; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PointsTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PointsTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PointsTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedledger {
		edges = append(edges, pointstransaction.EdgeLedger)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PointsTransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case pointstransaction.EdgeLedger:
		return m.clearedledger
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PointsTransactionMutation) ClearEdge(name string) error {
	switch name {
	case pointstransaction.EdgeLedger:
		m.ClearLedger()
		return nil
	}
	return fmt.Errorf("unknown PointsTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PointsTransactionMutation) ResetEdge(name string) error {
	switch name {
	case pointstransaction.EdgeLedger:
		m.ResetLedger()
		return nil
	}
	return fmt.Errorf("unknown PointsTransaction edge %s", name)
}

// UserLedgerMutation represents an operation that mutates the UserLedger nodes in the graph.
type UserLedgerMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	user_id                 *string
	points_remaining        *int
	addpoints_remaining     *int
	total_points_earned     *int
	addtotal_points_earned  *int
	last_bonus_at           *time.Time
	stripe_customer_id      *string
	stripe_subscription_id  *string
	subscription_status     *string
	subscription_type       *string
	subscription_period_end *time.Time
	next_points_credit      *time.Time
	cancel_at_period_end    *bool
	subscription_updated_at *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	transactions            map[int]struct{}
	removedtransactions     map[int]struct{}
	clearedtransactions     bool
	done                    bool
	oldValue                func(context.Context) (*UserLedger, error)
	predicates              []predicate.UserLedger
}

var _ ent.Mutation = (*UserLedgerMutation)(nil)

// userledgerOption allows management of the mutation configuration using functional options.
type userledgerOption func(*UserLedgerMutation)

// newUserLedgerMutation creates new mutation for the UserLedger entity.
func newUserLedgerMutation(c config, op Op, opts ...userledgerOption) *UserLedgerMutation {
	m := &UserLedgerMutation{
		config:        c,
		op:            op,
		typ:           TypeUserLedger,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserLedgerID sets the ID field of the mutation.
func withUserLedgerID(id int) userledgerOption {
	return func(m *UserLedgerMutation) {
		var (
			err   error
			once  sync.Once
			value *UserLedger
		)
		m.oldValue = func(ctx context.Context) (*UserLedger, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserLedger.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserLedger sets the old UserLedger of the mutation.
func withUserLedger(node *UserLedger) userledgerOption {
	return func(m *UserLedgerMutation) {
		m.oldValue = func(context.Context) (*UserLedger, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserLedgerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserLedgerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserLedgerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserLedgerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserLedger.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserLedgerMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserLedgerMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserLedgerMutation) ResetUserID() {
	m.user_id = nil
}

// SetPointsRemaining sets the "points_remaining" field.
func (m *UserLedgerMutation) SetPointsRemaining(i int) {
	m.points_remaining = &i
	m.addpoints_remaining = nil
}

// PointsRemaining returns the value of the "points_remaining" field in the mutation.
func (m *UserLedgerMutation) PointsRemaining() (r int, exists bool) {
	v := m.points_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldPointsRemaining returns the old "points_remaining" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldPointsRemaining(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointsRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointsRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointsRemaining: %w", err)
	}
	return oldValue.PointsRemaining, nil
}

// AddPointsRemaining adds i to the "points_remaining" field.
func (m *UserLedgerMutation) AddPointsRemaining(i int) {
	if m.addpoints_remaining != nil {
		*m.addpoints_remaining += i
	} else {
		m.addpoints_remaining = &i
	}
}

// AddedPointsRemaining returns the value that was added to the "points_remaining" field in this mutation.
func (m *UserLedgerMutation) AddedPointsRemaining() (r int, exists bool) {
	v := m.addpoints_remaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetPointsRemaining resets all changes to the "points_remaining" field.
func (m *UserLedgerMutation) ResetPointsRemaining() {
	m.points_remaining = nil
	m.addpoints_remaining = nil
}

// SetTotalPointsEarned sets the "total_points_earned" field.
func (m *UserLedgerMutation) SetTotalPointsEarned(i int) {
	m.total_points_earned = &i
	m.addtotal_points_earned = nil
}

// TotalPointsEarned returns the value of the "total_points_earned" field in the mutation.
func (m *UserLedgerMutation) TotalPointsEarned() (r int, exists bool) {
	v := m.total_points_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPointsEarned returns the old "total_points_earned" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldTotalPointsEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPointsEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPointsEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPointsEarned: %w", err)
	}
	return oldValue.TotalPointsEarned, nil
}

// AddTotalPointsEarned adds i to the "total_points_earned" field.
func (m *UserLedgerMutation) AddTotalPointsEarned(i int) {
	if m.addtotal_points_earned != nil {
		*m.addtotal_points_earned += i
	} else {
		m.addtotal_points_earned = &i
	}
}

// AddedTotalPointsEarned returns the value that was added to the "total_points_earned" field in this mutation.
func (m *UserLedgerMutation) AddedTotalPointsEarned() (r int, exists bool) {
	v := m.addtotal_points_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPointsEarned resets all changes to the "total_points_earned" field.
func (m *UserLedgerMutation) ResetTotalPointsEarned() {
	m.total_points_earned = nil
	m.addtotal_points_earned = nil
}

// SetLastBonusAt sets the "last_bonus_at" field.
func (m *UserLedgerMutation) SetLastBonusAt(t time.Time) {
	m.last_bonus_at = &t
}

// LastBonusAt returns the value of the "last_bonus_at" field in the mutation.
func (m *UserLedgerMutation) LastBonusAt() (r time.Time, exists bool) {
	v := m.last_bonus_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBonusAt returns the old "last_bonus_at" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldLastBonusAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBonusAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBonusAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBonusAt: %w", err)
	}
	return oldValue.LastBonusAt, nil
}

// ClearLastBonusAt clears the value of the "last_bonus_at" field.
func (m *UserLedgerMutation) ClearLastBonusAt() {
	m.last_bonus_at = nil
	m.clearedFields[userledger.FieldLastBonusAt] = struct{}{}
}

// LastBonusAtCleared returns if the "last_bonus_at" field was cleared in this mutation.
func (m *UserLedgerMutation) LastBonusAtCleared() bool {
	_, ok := m.clearedFields[userledger.FieldLastBonusAt]
	return ok
}

// ResetLastBonusAt resets all changes to the "last_bonus_at" field.
func (m *UserLedgerMutation) ResetLastBonusAt() {
	m.last_bonus_at = nil
	delete(m.clearedFields, userledger.FieldLastBonusAt)
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (m *UserLedgerMutation) SetStripeCustomerID(s string) {
	m.stripe_customer_id = &s
}

// StripeCustomerID returns the value of the "stripe_customer_id" field in the mutation.
func (m *UserLedgerMutation) StripeCustomerID() (r string, exists bool) {
	v := m.stripe_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeCustomerID returns the old "stripe_customer_id" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldStripeCustomerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeCustomerID: %w", err)
	}
	return oldValue.StripeCustomerID, nil
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (m *UserLedgerMutation) ClearStripeCustomerID() {
	m.stripe_customer_id = nil
	m.clearedFields[userledger.FieldStripeCustomerID] = struct{}{}
}

// StripeCustomerIDCleared returns if the "stripe_customer_id" field was cleared in this mutation.
func (m *UserLedgerMutation) StripeCustomerIDCleared() bool {
	_, ok := m.clearedFields[userledger.FieldStripeCustomerID]
	return ok
}

// ResetStripeCustomerID resets all changes to the "stripe_customer_id" field.
func (m *UserLedgerMutation) ResetStripeCustomerID() {
	m.stripe_customer_id = nil
	delete(m.clearedFields, userledger.FieldStripeCustomerID)
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (m *UserLedgerMutation) SetStripeSubscriptionID(s string) {
	m.stripe_subscription_id = &s
}

// StripeSubscriptionID returns the value of the "stripe_subscription_id" field in the mutation.
func (m *UserLedgerMutation) StripeSubscriptionID() (r string, exists bool) {
	v := m.stripe_subscription_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeSubscriptionID returns the old "stripe_subscription_id" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldStripeSubscriptionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeSubscriptionID: %w", err)
	}
	return oldValue.StripeSubscriptionID, nil
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (m *UserLedgerMutation) ClearStripeSubscriptionID() {
	m.stripe_subscription_id = nil
	m.clearedFields[userledger.FieldStripeSubscriptionID] = struct{}{}
}

// StripeSubscriptionIDCleared returns if the "stripe_subscription_id" field was cleared in this mutation.
func (m *UserLedgerMutation) StripeSubscriptionIDCleared() bool {
	_, ok := m.clearedFields[userledger.FieldStripeSubscriptionID]
	return ok
}

// ResetStripeSubscriptionID resets all changes to the "stripe_subscription_id" field.
func (m *UserLedgerMutation) ResetStripeSubscriptionID() {
	m.stripe_subscription_id = nil
	delete(m.clearedFields, userledger.FieldStripeSubscriptionID)
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (m *UserLedgerMutation) SetSubscriptionStatus(s string) {
	m.subscription_status = &s
}

// SubscriptionStatus returns the value of the "subscription_status" field in the mutation.
func (m *UserLedgerMutation) SubscriptionStatus() (r string, exists bool) {
	v := m.subscription_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionStatus returns the old "subscription_status" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldSubscriptionStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionStatus: %w", err)
	}
	return oldValue.SubscriptionStatus, nil
}

// ResetSubscriptionStatus resets all changes to the "subscription_status" field.
func (m *UserLedgerMutation) ResetSubscriptionStatus() {
	m.subscription_status = nil
}

// SetSubscriptionType sets the "subscription_type" field.
func (m *UserLedgerMutation) SetSubscriptionType(s string) {
	m.subscription_type = &s
}

// SubscriptionType returns the value of the "subscription_type" field in the mutation.
func (m *UserLedgerMutation) SubscriptionType() (r string, exists bool) {
	v := m.subscription_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionType returns the old "subscription_type" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldSubscriptionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionType: %w", err)
	}
	return oldValue.SubscriptionType, nil
}

// ClearSubscriptionType clears the value of the "subscription_type" field.
func (m *UserLedgerMutation) ClearSubscriptionType() {
	m.subscription_type = nil
	m.clearedFields[userledger.FieldSubscriptionType] = struct{}{}
}

// SubscriptionTypeCleared returns if the "subscription_type" field was cleared in this mutation.
func (m *UserLedgerMutation) SubscriptionTypeCleared() bool {
	_, ok := m.clearedFields[userledger.FieldSubscriptionType]
	return ok
}

// ResetSubscriptionType resets all changes to the "subscription_type" field.
func (m *UserLedgerMutation) ResetSubscriptionType() {
	m.subscription_type = nil
	delete(m.clearedFields, userledger.FieldSubscriptionType)
}

// SetSubscriptionPeriodEnd sets the "subscription_period_end" field.
func (m *UserLedgerMutation) SetSubscriptionPeriodEnd(t time.Time) {
	m.subscription_period_end = &t
}

// SubscriptionPeriodEnd returns the value of the "subscription_period_end" field in the mutation.
func (m *UserLedgerMutation) SubscriptionPeriodEnd() (r time.Time, exists bool) {
	v := m.subscription_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionPeriodEnd returns the old "subscription_period_end" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldSubscriptionPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionPeriodEnd: %w", err)
	}
	return oldValue.SubscriptionPeriodEnd, nil
}

// ClearSubscriptionPeriodEnd clears the value of the "subscription_period_end" field.
func (m *UserLedgerMutation) ClearSubscriptionPeriodEnd() {
	m.subscription_period_end = nil
	m.clearedFields[userledger.FieldSubscriptionPeriodEnd] = struct{}{}
}

// SubscriptionPeriodEndCleared returns if the "subscription_period_end" field was cleared in this mutation.
func (m *UserLedgerMutation) SubscriptionPeriodEndCleared() bool {
	_, ok := m.clearedFields[userledger.FieldSubscriptionPeriodEnd]
	return ok
}

// ResetSubscriptionPeriodEnd resets all changes to the "subscription_period_end" field.
func (m *UserLedgerMutation) ResetSubscriptionPeriodEnd() {
	m.subscription_period_end = nil
	delete(m.clearedFields, userledger.FieldSubscriptionPeriodEnd)
}

// SetNextPointsCredit sets the "next_points_credit" field.
func (m *UserLedgerMutation) SetNextPointsCredit(t time.Time) {
	m.next_points_credit = &t
}

// NextPointsCredit returns the value of the "next_points_credit" field in the mutation.
func (m *UserLedgerMutation) NextPointsCredit() (r time.Time, exists bool) {
	v := m.next_points_credit
	if v == nil {
		return
	}
	return *v, true
}

// OldNextPointsCredit returns the old "next_points_credit" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldNextPointsCredit(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextPointsCredit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextPointsCredit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextPointsCredit: %w", err)
	}
	return oldValue.NextPointsCredit, nil
}

// ClearNextPointsCredit clears the value of the "next_points_credit" field.
func (m *UserLedgerMutation) ClearNextPointsCredit() {
	m.next_points_credit = nil
	m.clearedFields[userledger.FieldNextPointsCredit] = struct{}{}
}

// NextPointsCreditCleared returns if the "next_points_credit" field was cleared in this mutation.
func (m *UserLedgerMutation) NextPointsCreditCleared() bool {
	_, ok := m.clearedFields[userledger.FieldNextPointsCredit]
	return ok
}

// ResetNextPointsCredit resets all changes to the "next_points_credit" field.
func (m *UserLedgerMutation) ResetNextPointsCredit() {
	m.next_points_credit = nil
	delete(m.clearedFields, userledger.FieldNextPointsCredit)
}

// SetCancelAtPeriodEnd sets the "cancel_at_period_end" field.
func (m *UserLedgerMutation) SetCancelAtPeriodEnd(b bool) {
	m.cancel_at_period_end = &b
}

// CancelAtPeriodEnd returns the value of the "cancel_at_period_end" field in the mutation.
func (m *UserLedgerMutation) CancelAtPeriodEnd() (r bool, exists bool) {
	v := m.cancel_at_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelAtPeriodEnd returns the old "cancel_at_period_end" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldCancelAtPeriodEnd(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelAtPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelAtPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelAtPeriodEnd: %w", err)
	}
	return oldValue.CancelAtPeriodEnd, nil
}

// ResetCancelAtPeriodEnd resets all changes to the "cancel_at_period_end" field.
func (m *UserLedgerMutation) ResetCancelAtPeriodEnd() {
	m.cancel_at_period_end = nil
}

// SetSubscriptionUpdatedAt sets the "subscription_updated_at" field.
func (m *UserLedgerMutation) SetSubscriptionUpdatedAt(t time.Time) {
	m.subscription_updated_at = &t
}

// SubscriptionUpdatedAt returns the value of the "subscription_updated_at" field in the mutation.
func (m *UserLedgerMutation) SubscriptionUpdatedAt() (r time.Time, exists bool) {
	v := m.subscription_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionUpdatedAt returns the old "subscription_updated_at" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldSubscriptionUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionUpdatedAt: %w", err)
	}
	return oldValue.SubscriptionUpdatedAt, nil
}

// ClearSubscriptionUpdatedAt clears the value of the "subscription_updated_at" field.
func (m *UserLedgerMutation) ClearSubscriptionUpdatedAt() {
	m.subscription_updated_at = nil
	m.clearedFields[userledger.FieldSubscriptionUpdatedAt] = struct{}{}
}

// SubscriptionUpdatedAtCleared returns if the "subscription_updated_at" field was cleared in this mutation.
func (m *UserLedgerMutation) SubscriptionUpdatedAtCleared() bool {
	_, ok := m.clearedFields[userledger.FieldSubscriptionUpdatedAt]
	return ok
}

// ResetSubscriptionUpdatedAt resets all changes to the "subscription_updated_at" field.
func (m *UserLedgerMutation) ResetSubscriptionUpdatedAt() {
	m.subscription_updated_at = nil
	delete(m.clearedFields, userledger.FieldSubscriptionUpdatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserLedgerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserLedgerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserLedgerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserLedgerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserLedgerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserLedger entity.
// If the UserLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserLedgerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserLedgerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTransactionIDs adds the "transactions" edge to the PointsTransaction entity by ids.
func (m *UserLedgerMutation) AddTransactionIDs(ids ...int) {
	if m.transactions == nil {
		m.transactions = make(map[int]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the PointsTransaction entity.
func (m *UserLedgerMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the PointsTransaction entity was cleared.
func (m *UserLedgerMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the PointsTransaction entity by IDs.
func (m *UserLedgerMutation) RemoveTransactionIDs(ids ...int) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the PointsTransaction entity.
func (m *UserLedgerMutation) RemovedTransactionsIDs() (ids []int) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *UserLedgerMutation) TransactionsIDs() (ids []int) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *UserLedgerMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// Where appends a list predicates to the UserLedgerMutation builder.
func (m *UserLedgerMutation) Where(ps ...predicate.UserLedger) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserLedgerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserLedgerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserLedger, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserLedgerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserLedgerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserLedger).
func (m *UserLedgerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserLedgerMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.user_id != nil {
		fields = append(fields, userledger.FieldUserID)
	}
	if m.points_remaining != nil {
		fields = append(fields, userledger.FieldPointsRemaining)
	}
	if m.total_points_earned != nil {
		fields = append(fields, userledger.FieldTotalPointsEarned)
	}
	if m.last_bonus_at != nil {
		fields = append(fields, userledger.FieldLastBonusAt)
	}
	if m.stripe_customer_id != nil {
		fields = append(fields, userledger.FieldStripeCustomerID)
	}
	if m.stripe_subscription_id != nil {
		fields = append(fields, userledger.FieldStripeSubscriptionID)
	}
	if m.subscription_status != nil {
		fields = append(fields, userledger.FieldSubscriptionStatus)
	}
	if m.subscription_type != nil {
		fields = append(fields, userledger.FieldSubscriptionType)
	}
	if m.subscription_period_end != nil {
		fields = append(fields, userledger.FieldSubscriptionPeriodEnd)
	}
	if m.next_points_credit != nil {
		fields = append(fields, userledger.FieldNextPointsCredit)
	}
	if m.cancel_at_period_end != nil {
		fields = append(fields, userledger.FieldCancelAtPeriodEnd)
	}
	if m.subscription_updated_at != nil {
		fields = append(fields, userledger.FieldSubscriptionUpdatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, userledger.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userledger.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserLedgerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userledger.FieldUserID:
		return m.UserID()
	case userledger.FieldPointsRemaining:
		return m.PointsRemaining()
	case userledger.FieldTotalPointsEarned:
		return m.TotalPointsEarned()
	case userledger.FieldLastBonusAt:
		return m.LastBonusAt()
	case userledger.FieldStripeCustomerID:
		return m.StripeCustomerID()
	case userledger.FieldStripeSubscriptionID:
		return m.StripeSubscriptionID()
	case userledger.FieldSubscriptionStatus:
		return m.SubscriptionStatus()
	case userledger.FieldSubscriptionType:
		return m.SubscriptionType()
	case userledger.FieldSubscriptionPeriodEnd:
		return m.SubscriptionPeriodEnd()
	case userledger.FieldNextPointsCredit:
		return m.NextPointsCredit()
	case userledger.FieldCancelAtPeriodEnd:
		return m.CancelAtPeriodEnd()
	case userledger.FieldSubscriptionUpdatedAt:
		return m.SubscriptionUpdatedAt()
	case userledger.FieldCreatedAt:
		return m.CreatedAt()
	case userledger.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserLedgerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userledger.FieldUserID:
		return m.OldUserID(ctx)
	case userledger.FieldPointsRemaining:
		return m.OldPointsRemaining(ctx)
	case userledger.FieldTotalPointsEarned:
		return m.OldTotalPointsEarned(ctx)
	case userledger.FieldLastBonusAt:
		return m.OldLastBonusAt(ctx)
	case userledger.FieldStripeCustomerID:
		return m.OldStripeCustomerID(ctx)
	case userledger.FieldStripeSubscriptionID:
		return m.OldStripeSubscriptionID(ctx)
	case userledger.FieldSubscriptionStatus:
		return m.OldSubscriptionStatus(ctx)
	case userledger.FieldSubscriptionType:
		return m.OldSubscriptionType(ctx)
	case userledger.FieldSubscriptionPeriodEnd:
		return m.OldSubscriptionPeriodEnd(ctx)
	case userledger.FieldNextPointsCredit:
		return m.OldNextPointsCredit(ctx)
	case userledger.FieldCancelAtPeriodEnd:
		return m.OldCancelAtPeriodEnd(ctx)
	case userledger.FieldSubscriptionUpdatedAt:
		return m.OldSubscriptionUpdatedAt(ctx)
	case userledger.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userledger.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserLedger field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserLedgerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userledger.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userledger.FieldPointsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointsRemaining(v)
		return nil
	case userledger.FieldTotalPointsEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPointsEarned(v)
		return nil
	case userledger.FieldLastBonusAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBonusAt(v)
		return nil
	case userledger.FieldStripeCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeCustomerID(v)
		return nil
	case userledger.FieldStripeSubscriptionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeSubscriptionID(v)
		return nil
	case userledger.FieldSubscriptionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionStatus(v)
		return nil
	case userledger.FieldSubscriptionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionType(v)
		return nil
	case userledger.FieldSubscriptionPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionPeriodEnd(v)
		return nil
	case userledger.FieldNextPointsCredit:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextPointsCredit(v)
		return nil
	case userledger.FieldCancelAtPeriodEnd:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelAtPeriodEnd(v)
		return nil
	case userledger.FieldSubscriptionUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionUpdatedAt(v)
		return nil
	case userledger.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userledger.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserLedger field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserLedgerMutation) AddedFields() []string {
	var fields []string
	if m.addpoints_remaining != nil {
		fields = append(fields, userledger.FieldPointsRemaining)
	}
	if m.addtotal_points_earned != nil {
		fields = append(fields, userledger.FieldTotalPointsEarned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserLedgerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userledger.FieldPointsRemaining:
		return m.AddedPointsRemaining()
	case userledger.FieldTotalPointsEarned:
		return m.AddedTotalPointsEarned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserLedgerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userledger.FieldPointsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPointsRemaining(v)
		return nil
	case userledger.FieldTotalPointsEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPointsEarned(v)
		return nil
	}
	return fmt.Errorf("unknown UserLedger numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserLedgerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userledger.FieldLastBonusAt) {
		fields = append(fields, userledger.FieldLastBonusAt)
	}
	if m.FieldCleared(userledger.FieldStripeCustomerID) {
		fields = append(fields, userledger.FieldStripeCustomerID)
	}
	if m.FieldCleared(userledger.FieldStripeSubscriptionID) {
		fields = append(fields, userledger.FieldStripeSubscriptionID)
	}
	if m.FieldCleared(userledger.FieldSubscriptionType) {
		fields = append(fields, userledger.FieldSubscriptionType)
	}
	if m.FieldCleared(userledger.FieldSubscriptionPeriodEnd) {
		fields = append(fields, userledger.FieldSubscriptionPeriodEnd)
	}
	if m.FieldCleared(userledger.FieldNextPointsCredit) {
		fields = append(fields, userledger.FieldNextPointsCredit)
	}
	if m.FieldCleared(userledger.FieldSubscriptionUpdatedAt) {
		fields = append(fields, userledger.FieldSubscriptionUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserLedgerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserLedgerMutation) ClearField(name string) error {
	switch name {
	case userledger.FieldLastBonusAt:
		m.ClearLastBonusAt()
		return nil
	case userledger.FieldStripeCustomerID:
		m.ClearStripeCustomerID()
		return nil
	case userledger.FieldStripeSubscriptionID:
		m.ClearStripeSubscriptionID()
		return nil
	case userledger.FieldSubscriptionType:
		m.ClearSubscriptionType()
		return nil
	case userledger.FieldSubscriptionPeriodEnd:
		m.ClearSubscriptionPeriodEnd()
		return nil
	case userledger.FieldNextPointsCredit:
		m.ClearNextPointsCredit()
		return nil
	case userledger.FieldSubscriptionUpdatedAt:
		m.ClearSubscriptionUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserLedger nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserLedgerMutation) ResetField(name string) error {
	switch name {
	case userledger.FieldUserID:
		m.ResetUserID()
		return nil
	case userledger.FieldPointsRemaining:
		m.ResetPointsRemaining()
		return nil
	case userledger.FieldTotalPointsEarned:
		m.ResetTotalPointsEarned()
		return nil
	case userledger.FieldLastBonusAt:
		m.ResetLastBonusAt()
		return nil
	case userledger.FieldStripeCustomerID:
		m.ResetStripeCustomerID()
		return nil
	case userledger.FieldStripeSubscriptionID:
		m.ResetStripeSubscriptionID()
		return nil
	case userledger.FieldSubscriptionStatus:
		m.ResetSubscriptionStatus()
		return nil
	case userledger.FieldSubscriptionType:
		m.ResetSubscriptionType()
		return nil
	case userledger.FieldSubscriptionPeriodEnd:
		m.ResetSubscriptionPeriodEnd()
		return nil
	case userledger.FieldNextPointsCredit:
		m.ResetNextPointsCredit()
		return nil
	case userledger.FieldCancelAtPeriodEnd:
		m.ResetCancelAtPeriodEnd()
		return nil
	case userledger.FieldSubscriptionUpdatedAt:
		m.ResetSubscriptionUpdatedAt()
		return nil
	case userledger.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userledger.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserLedger field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserLedgerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transactions != nil {
		edges = append(edges, userledger.EdgeTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserLedgerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case userledger.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserLedgerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtransactions != nil {
		edges = append(edges, userledger.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserLedgerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case userledger.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserLedgerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtransactions {
		edges = append(edges, userledger.EdgeTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserLedgerMutation) EdgeCleared(name string) bool {
	switch name {
	case userledger.EdgeTransactions:
		return m.clearedtransactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserLedgerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UserLedger unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserLedgerMutation) ResetEdge(name string) error {
	switch name {
	case userledger.EdgeTransactions:
		m.ResetTransactions()
		return nil
	}
	return fmt.Errorf("unknown UserLedger edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	provider      *string
	event_id      *string
	event_type    *string
	received_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WebhookEvent, error)
	predicates    []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id int) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *WebhookEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *WebhookEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *WebhookEventMutation) ResetProvider() {
	m.provider = nil
}

// SetEventID sets the "event_id" field.
func (m *WebhookEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *WebhookEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *WebhookEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetEventType sets the "event_type" field.
func (m *WebhookEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ClearEventType clears the value of the "event_type" field.
func (m *WebhookEventMutation) ClearEventType() {
	m.event_type = nil
	m.clearedFields[webhookevent.FieldEventType] = struct{}{}
}

// EventTypeCleared returns if the "event_type" field was cleared in this mutation.
func (m *WebhookEventMutation) EventTypeCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldEventType]
	return ok
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookEventMutation) ResetEventType() {
	m.event_type = nil
	delete(m.clearedFields, webhookevent.FieldEventType)
}

// SetReceivedAt sets the "received_at" field.
func (m *WebhookEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *WebhookEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *WebhookEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.provider != nil {
		fields = append(fields, webhookevent.FieldProvider)
	}
	if m.event_id != nil {
		fields = append(fields, webhookevent.FieldEventID)
	}
	if m.event_type != nil {
		fields = append(fields, webhookevent.FieldEventType)
	}
	if m.received_at != nil {
		fields = append(fields, webhookevent.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldProvider:
		return m.Provider()
	case webhookevent.FieldEventID:
		return m.EventID()
	case webhookevent.FieldEventType:
		return m.EventType()
	case webhookevent.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldProvider:
		return m.OldProvider(ctx)
	case webhookevent.FieldEventID:
		return m.OldEventID(ctx)
	case webhookevent.FieldEventType:
		return m.OldEventType(ctx)
	case webhookevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case webhookevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case webhookevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookevent.FieldEventType) {
		fields = append(fields, webhookevent.FieldEventType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	switch name {
	case webhookevent.FieldEventType:
		m.ClearEventType()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldProvider:
		m.ResetProvider()
		return nil
	case webhookevent.FieldEventID:
		m.ResetEventID()
		return nil
	case webhookevent.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
