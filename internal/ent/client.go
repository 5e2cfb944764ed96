// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/avelar/pixelmint/internal/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avelar/pixelmint/internal/ent/anonymoussession"
	"github.com/avelar/pixelmint/internal/ent/generation"
	"github.com/avelar/pixelmint/internal/ent/pointstransaction"
	"github.com/avelar/pixelmint/internal/ent/userledger"
	"github.com/avelar/pixelmint/internal/ent/webhookevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnonymousSession is the client for interacting with the AnonymousSession builders.
	AnonymousSession *AnonymousSessionClient
	// Generation is the client for interacting with the Generation builders.
	Generation *GenerationClient
	// PointsTransaction is the client for interacting with the PointsTransaction builders.
	PointsTransaction *PointsTransactionClient
	// UserLedger is the client for interacting with the UserLedger builders.
	UserLedger *UserLedgerClient
	// WebhookEvent is the client for interacting with the WebhookEvent builders.
	WebhookEvent *WebhookEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnonymousSession = NewAnonymousSessionClient(c.config)
	c.Generation = NewGenerationClient(c.config)
	c.PointsTransaction = NewPointsTransactionClient(c.config)
	c.UserLedger = NewUserLedgerClient(c.config)
	c.WebhookEvent = NewWebhookEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AnonymousSession:  NewAnonymousSessionClient(cfg),
		Generation:        NewGenerationClient(cfg),
		PointsTransaction: NewPointsTransactionClient(cfg),
		UserLedger:        NewUserLedgerClient(cfg),
		WebhookEvent:      NewWebhookEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AnonymousSession:  NewAnonymousSessionClient(cfg),
		Generation:        NewGenerationClient(cfg),
		PointsTransaction: NewPointsTransactionClient(cfg),
		UserLedger:        NewUserLedgerClient(cfg),
		WebhookEvent:      NewWebhookEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnonymousSession.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AnonymousSession.Use(hooks...)
	c.Generation.Use(hooks...)
	c.PointsTransaction.Use(hooks...)
	c.UserLedger.Use(hooks...)
	c.WebhookEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnonymousSession.Intercept(interceptors...)
	c.Generation.Intercept(interceptors...)
	c.PointsTransaction.Intercept(interceptors...)
	c.UserLedger.Intercept(interceptors...)
	c.WebhookEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnonymousSessionMutation:
		return c.AnonymousSession.mutate(ctx, m)
	case *GenerationMutation:
		return c.Generation.mutate(ctx, m)
	case *PointsTransactionMutation:
		return c.PointsTransaction.mutate(ctx, m)
	case *UserLedgerMutation:
		return c.UserLedger.mutate(ctx, m)
	case *WebhookEventMutation:
		return c.WebhookEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnonymousSessionClient is a client for the AnonymousSession schema.
type AnonymousSessionClient struct {
	config
}

// NewAnonymousSessionClient returns a client for the AnonymousSession from the given config.
func NewAnonymousSessionClient(c config) *AnonymousSessionClient {
	return &AnonymousSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `anonymoussession.Hooks(f(g(h())))`.
func (c *AnonymousSessionClient) Use(hooks ...Hook) {
	c.hooks.AnonymousSession = append(c.hooks.AnonymousSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `anonymoussession.Intercept(f(g(h())))`.
func (c *AnonymousSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnonymousSession = append(c.inters.AnonymousSession, interceptors...)
}

// Create returns a builder for creating a AnonymousSession entity.
func (c *AnonymousSessionClient) Create() *AnonymousSessionCreate {
	mutation := newAnonymousSessionMutation(c.config, OpCreate)
	return &AnonymousSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnonymousSession entities.
func (c *AnonymousSessionClient) CreateBulk(builders ...*AnonymousSessionCreate) *AnonymousSessionCreateBulk {
	return &AnonymousSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnonymousSessionClient) MapCreateBulk(slice any, setFunc func(*AnonymousSessionCreate, int)) *AnonymousSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnonymousSessionCreateBulk{err: fmt.Errorf("calling to AnonymousSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnonymousSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnonymousSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnonymousSession.
func (c *AnonymousSessionClient) Update() *AnonymousSessionUpdate {
	mutation := newAnonymousSessionMutation(c.config, OpUpdate)
	return &AnonymousSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnonymousSessionClient) UpdateOne(_m *AnonymousSession) *AnonymousSessionUpdateOne {
	mutation := newAnonymousSessionMutation(c.config, OpUpdateOne, withAnonymousSession(_m))
	return &AnonymousSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnonymousSessionClient) UpdateOneID(id int) *AnonymousSessionUpdateOne {
	mutation := newAnonymousSessionMutation(c.config, OpUpdateOne, withAnonymousSessionID(id))
	return &AnonymousSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnonymousSession.
func (c *AnonymousSessionClient) Delete() *AnonymousSessionDelete {
	mutation := newAnonymousSessionMutation(c.config, OpDelete)
	return &AnonymousSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnonymousSessionClient) DeleteOne(_m *AnonymousSession) *AnonymousSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnonymousSessionClient) DeleteOneID(id int) *AnonymousSessionDeleteOne {
	builder := c.Delete().Where(anonymoussession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnonymousSessionDeleteOne{builder}
}

// Query returns a query builder for AnonymousSession.
func (c *AnonymousSessionClient) Query() *AnonymousSessionQuery {
	return &AnonymousSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnonymousSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AnonymousSession entity by its id.
func (c *AnonymousSessionClient) Get(ctx context.Context, id int) (*AnonymousSession, error) {
	return c.Query().Where(anonymoussession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnonymousSessionClient) GetX(ctx context.Context, id int) *AnonymousSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnonymousSessionClient) Hooks() []Hook {
	return c.hooks.AnonymousSession
}

// Interceptors returns the client interceptors.
func (c *AnonymousSessionClient) Interceptors() []Interceptor {
	return c.inters.AnonymousSession
}

func (c *AnonymousSessionClient) mutate(ctx context.Context, m *AnonymousSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnonymousSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnonymousSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnonymousSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnonymousSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnonymousSession mutation op: %q", m.Op())
	}
}

// GenerationClient is a client for the Generation schema.
type GenerationClient struct {
	config
}

// NewGenerationClient returns a client for the Generation from the given config.
func NewGenerationClient(c config) *GenerationClient {
	return &GenerationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generation.Hooks(f(g(h())))`.
func (c *GenerationClient) Use(hooks ...Hook) {
	c.hooks.Generation = append(c.hooks.Generation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generation.Intercept(f(g(h())))`.
func (c *GenerationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Generation = append(c.inters.Generation, interceptors...)
}

// Create returns a builder for creating a Generation entity.
func (c *GenerationClient) Create() *GenerationCreate {
	mutation := newGenerationMutation(c.config, OpCreate)
	return &GenerationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Generation entities.
func (c *GenerationClient) CreateBulk(builders ...*GenerationCreate) *GenerationCreateBulk {
	return &GenerationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationClient) MapCreateBulk(slice any, setFunc func(*GenerationCreate, int)) *GenerationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationCreateBulk{err: fmt.Errorf("calling to GenerationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Generation.
func (c *GenerationClient) Update() *GenerationUpdate {
	mutation := newGenerationMutation(c.config, OpUpdate)
	return &GenerationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationClient) UpdateOne(_m *Generation) *GenerationUpdateOne {
	mutation := newGenerationMutation(c.config, OpUpdateOne, withGeneration(_m))
	return &GenerationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationClient) UpdateOneID(id int) *GenerationUpdateOne {
	mutation := newGenerationMutation(c.config, OpUpdateOne, withGenerationID(id))
	return &GenerationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Generation.
func (c *GenerationClient) Delete() *GenerationDelete {
	mutation := newGenerationMutation(c.config, OpDelete)
	return &GenerationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationClient) DeleteOne(_m *Generation) *GenerationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationClient) DeleteOneID(id int) *GenerationDeleteOne {
	builder := c.Delete().Where(generation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationDeleteOne{builder}
}

// Query returns a query builder for Generation.
func (c *GenerationClient) Query() *GenerationQuery {
	return &GenerationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneration},
		inters: c.Interceptors(),
	}
}

// Get returns a Generation entity by its id.
func (c *GenerationClient) Get(ctx context.Context, id int) (*Generation, error) {
	return c.Query().Where(generation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationClient) GetX(ctx context.Context, id int) *Generation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationClient) Hooks() []Hook {
	return c.hooks.Generation
}

// Interceptors returns the client interceptors.
func (c *GenerationClient) Interceptors() []Interceptor {
	return c.inters.Generation
}

func (c *GenerationClient) mutate(ctx context.Context, m *GenerationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Generation mutation op: %q", m.Op())
	}
}

// PointsTransactionClient is a client for the PointsTransaction schema.
type PointsTransactionClient struct {
	config
}

// NewPointsTransactionClient returns a client for the PointsTransaction from the given config.
func NewPointsTransactionClient(c config) *PointsTransactionClient {
	return &PointsTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pointstransaction.Hooks(f(g(h())))`.
func (c *PointsTransactionClient) Use(hooks ...Hook) {
	c.hooks.PointsTransaction = append(c.hooks.PointsTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pointstransaction.Intercept(f(g(h())))`.
func (c *PointsTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PointsTransaction = append(c.inters.PointsTransaction, interceptors...)
}

// Create returns a builder for creating a PointsTransaction entity.
func (c *PointsTransactionClient) Create() *PointsTransactionCreate {
	mutation := newPointsTransactionMutation(c.config, OpCreate)
	return &PointsTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PointsTransaction entities.
func (c *PointsTransactionClient) CreateBulk(builders ...*PointsTransactionCreate) *PointsTransactionCreateBulk {
	return &PointsTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PointsTransactionClient) MapCreateBulk(slice any, setFunc func(*PointsTransactionCreate, int)) *PointsTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PointsTransactionCreateBulk{err: fmt.Errorf("calling to PointsTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PointsTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PointsTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PointsTransaction.
func (c *PointsTransactionClient) Update() *PointsTransactionUpdate {
	mutation := newPointsTransactionMutation(c.config, OpUpdate)
	return &PointsTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PointsTransactionClient) UpdateOne(_m *PointsTransaction) *PointsTransactionUpdateOne {
	mutation := newPointsTransactionMutation(c.config, OpUpdateOne, withPointsTransaction(_m))
	return &PointsTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PointsTransactionClient) UpdateOneID(id int) *PointsTransactionUpdateOne {
	mutation := newPointsTransactionMutation(c.config, OpUpdateOne, withPointsTransactionID(id))
	return &PointsTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PointsTransaction.
func (c *PointsTransactionClient) Delete() *PointsTransactionDelete {
	mutation := newPointsTransactionMutation(c.config, OpDelete)
	return &PointsTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PointsTransactionClient) DeleteOne(_m *PointsTransaction) *PointsTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PointsTransactionClient) DeleteOneID(id int) *PointsTransactionDeleteOne {
	builder := c.Delete().Where(pointstransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PointsTransactionDeleteOne{builder}
}

// Query returns a query builder for PointsTransaction.
func (c *PointsTransactionClient) Query() *PointsTransactionQuery {
	return &PointsTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePointsTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a PointsTransaction entity by its id.
func (c *PointsTransactionClient) Get(ctx context.Context, id int) (*PointsTransaction, error) {
	return c.Query().Where(pointstransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PointsTransactionClient) GetX(ctx context.Context, id int) *PointsTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLedger queries the ledger edge of a PointsTransaction.
func (c *PointsTransactionClient) QueryLedger(_m *PointsTransaction) *UserLedgerQuery {
	query := (&UserLedgerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pointstransaction.Table, pointstransaction.FieldID, id),
			sqlgraph.To(userledger.Table, userledger.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pointstransaction.LedgerTable, pointstransaction.LedgerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PointsTransactionClient) Hooks() []Hook {
	return c.hooks.PointsTransaction
}

// Interceptors returns the client interceptors.
func (c *PointsTransactionClient) Interceptors() []Interceptor {
	return c.inters.PointsTransaction
}

func (c *PointsTransactionClient) mutate(ctx context.Context, m *PointsTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PointsTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PointsTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PointsTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PointsTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PointsTransaction mutation op: %q", m.Op())
	}
}

// UserLedgerClient is a client for the UserLedger schema.
type UserLedgerClient struct {
	config
}

// NewUserLedgerClient returns a client for the UserLedger from the given config.
func NewUserLedgerClient(c config) *UserLedgerClient {
	return &UserLedgerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userledger.Hooks(f(g(h())))`.
func (c *UserLedgerClient) Use(hooks ...Hook) {
	c.hooks.UserLedger = append(c.hooks.UserLedger, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userledger.Intercept(f(g(h())))`.
func (c *UserLedgerClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserLedger = append(c.inters.UserLedger, interceptors...)
}

// Create returns a builder for creating a UserLedger entity.
func (c *UserLedgerClient) Create() *UserLedgerCreate {
	mutation := newUserLedgerMutation(c.config, OpCreate)
	return &UserLedgerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserLedger entities.
func (c *UserLedgerClient) CreateBulk(builders ...*UserLedgerCreate) *UserLedgerCreateBulk {
	return &UserLedgerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserLedgerClient) MapCreateBulk(slice any, setFunc func(*UserLedgerCreate, int)) *UserLedgerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserLedgerCreateBulk{err: fmt.Errorf("calling to UserLedgerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserLedgerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserLedgerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserLedger.
func (c *UserLedgerClient) Update() *UserLedgerUpdate {
	mutation := newUserLedgerMutation(c.config, OpUpdate)
	return &UserLedgerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserLedgerClient) UpdateOne(_m *UserLedger) *UserLedgerUpdateOne {
	mutation := newUserLedgerMutation(c.config, OpUpdateOne, withUserLedger(_m))
	return &UserLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserLedgerClient) UpdateOneID(id int) *UserLedgerUpdateOne {
	mutation := newUserLedgerMutation(c.config, OpUpdateOne, withUserLedgerID(id))
	return &UserLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserLedger.
func (c *UserLedgerClient) Delete() *UserLedgerDelete {
	mutation := newUserLedgerMutation(c.config, OpDelete)
	return &UserLedgerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserLedgerClient) DeleteOne(_m *UserLedger) *UserLedgerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserLedgerClient) DeleteOneID(id int) *UserLedgerDeleteOne {
	builder := c.Delete().Where(userledger.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserLedgerDeleteOne{builder}
}

// Query returns a query builder for UserLedger.
func (c *UserLedgerClient) Query() *UserLedgerQuery {
	return &UserLedgerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserLedger},
		inters: c.Interceptors(),
	}
}

// Get returns a UserLedger entity by its id.
func (c *UserLedgerClient) Get(ctx context.Context, id int) (*UserLedger, error) {
	return c.Query().Where(userledger.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserLedgerClient) GetX(ctx context.Context, id int) *UserLedger {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTransactions queries the transactions edge of a UserLedger.
func (c *UserLedgerClient) QueryTransactions(_m *UserLedger) *PointsTransactionQuery {
	query := (&PointsTransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(userledger.Table, userledger.FieldID, id),
			sqlgraph.To(pointstransaction.Table, pointstransaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, userledger.TransactionsTable, userledger.TransactionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserLedgerClient) Hooks() []Hook {
	return c.hooks.UserLedger
}

// Interceptors returns the client interceptors.
func (c *UserLedgerClient) Interceptors() []Interceptor {
	return c.inters.UserLedger
}

func (c *UserLedgerClient) mutate(ctx context.Context, m *UserLedgerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserLedgerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserLedgerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserLedgerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserLedger mutation op: %q", m.Op())
	}
}

// WebhookEventClient is a client for the WebhookEvent schema.
type WebhookEventClient struct {
	config
}

// NewWebhookEventClient returns a client for the WebhookEvent from the given config.
func NewWebhookEventClient(c config) *WebhookEventClient {
	return &WebhookEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookevent.Hooks(f(g(h())))`.
func (c *WebhookEventClient) Use(hooks ...Hook) {
	c.hooks.WebhookEvent = append(c.hooks.WebhookEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookevent.Intercept(f(g(h())))`.
func (c *WebhookEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookEvent = append(c.inters.WebhookEvent, interceptors...)
}

// Create returns a builder for creating a WebhookEvent entity.
func (c *WebhookEventClient) Create() *WebhookEventCreate {
	mutation := newWebhookEventMutation(c.config, OpCreate)
	return &WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookEvent entities.
func (c *WebhookEventClient) CreateBulk(builders ...*WebhookEventCreate) *WebhookEventCreateBulk {
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookEventClient) MapCreateBulk(slice any, setFunc func(*WebhookEventCreate, int)) *WebhookEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookEventCreateBulk{err: fmt.Errorf("calling to WebhookEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookEvent.
func (c *WebhookEventClient) Update() *WebhookEventUpdate {
	mutation := newWebhookEventMutation(c.config, OpUpdate)
	return &WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookEventClient) UpdateOne(_m *WebhookEvent) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEvent(_m))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookEventClient) UpdateOneID(id int) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEventID(id))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookEvent.
func (c *WebhookEventClient) Delete() *WebhookEventDelete {
	mutation := newWebhookEventMutation(c.config, OpDelete)
	return &WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookEventClient) DeleteOne(_m *WebhookEvent) *WebhookEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookEventClient) DeleteOneID(id int) *WebhookEventDeleteOne {
	builder := c.Delete().Where(webhookevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookEventDeleteOne{builder}
}

// Query returns a query builder for WebhookEvent.
func (c *WebhookEventClient) Query() *WebhookEventQuery {
	return &WebhookEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookEvent entity by its id.
func (c *WebhookEventClient) Get(ctx context.Context, id int) (*WebhookEvent, error) {
	return c.Query().Where(webhookevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookEventClient) GetX(ctx context.Context, id int) *WebhookEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookEventClient) Hooks() []Hook {
	return c.hooks.WebhookEvent
}

// Interceptors returns the client interceptors.
func (c *WebhookEventClient) Interceptors() []Interceptor {
	return c.inters.WebhookEvent
}

func (c *WebhookEventClient) mutate(ctx context.Context, m *WebhookEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnonymousSession, Generation, PointsTransaction, UserLedger,
		WebhookEvent []ent.Hook
	}
	inters struct {
		AnonymousSession, Generation, PointsTransaction, UserLedger,
		WebhookEvent []ent.Interceptor
	}
)
