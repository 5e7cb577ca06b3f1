// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/marlowhealth/compass_backend/internal/repo/answer"
	"github.com/marlowhealth/compass_backend/internal/repo/flow"
	"github.com/marlowhealth/compass_backend/internal/repo/flowversion"
	"github.com/marlowhealth/compass_backend/internal/repo/instrument"
	"github.com/marlowhealth/compass_backend/internal/repo/instrumentversion"
	"github.com/marlowhealth/compass_backend/internal/repo/screeningsession"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
	"github.com/marlowhealth/compass_backend/internal/repo/triage"
	"github.com/marlowhealth/compass_backend/internal/repo/triagegroup"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Answer is the client for interacting with the Answer builders.
	Answer *AnswerClient
	// Flow is the client for interacting with the Flow builders.
	Flow *FlowClient
	// FlowVersion is the client for interacting with the FlowVersion builders.
	FlowVersion *FlowVersionClient
	// Instrument is the client for interacting with the Instrument builders.
	Instrument *InstrumentClient
	// InstrumentVersion is the client for interacting with the InstrumentVersion builders.
	InstrumentVersion *InstrumentVersionClient
	// ScreeningSession is the client for interacting with the ScreeningSession builders.
	ScreeningSession *ScreeningSessionClient
	// SessionInstrument is the client for interacting with the SessionInstrument builders.
	SessionInstrument *SessionInstrumentClient
	// Triage is the client for interacting with the Triage builders.
	Triage *TriageClient
	// TriageGroup is the client for interacting with the TriageGroup builders.
	TriageGroup *TriageGroupClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Answer = NewAnswerClient(c.config)
	c.Flow = NewFlowClient(c.config)
	c.FlowVersion = NewFlowVersionClient(c.config)
	c.Instrument = NewInstrumentClient(c.config)
	c.InstrumentVersion = NewInstrumentVersionClient(c.config)
	c.ScreeningSession = NewScreeningSessionClient(c.config)
	c.SessionInstrument = NewSessionInstrumentClient(c.config)
	c.Triage = NewTriageClient(c.config)
	c.TriageGroup = NewTriageGroupClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Answer:            NewAnswerClient(cfg),
		Flow:              NewFlowClient(cfg),
		FlowVersion:       NewFlowVersionClient(cfg),
		Instrument:        NewInstrumentClient(cfg),
		InstrumentVersion: NewInstrumentVersionClient(cfg),
		ScreeningSession:  NewScreeningSessionClient(cfg),
		SessionInstrument: NewSessionInstrumentClient(cfg),
		Triage:            NewTriageClient(cfg),
		TriageGroup:       NewTriageGroupClient(cfg),
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
		Answer:            NewAnswerClient(cfg),
		Flow:              NewFlowClient(cfg),
		FlowVersion:       NewFlowVersionClient(cfg),
		Instrument:        NewInstrumentClient(cfg),
		InstrumentVersion: NewInstrumentVersionClient(cfg),
		ScreeningSession:  NewScreeningSessionClient(cfg),
		SessionInstrument: NewSessionInstrumentClient(cfg),
		Triage:            NewTriageClient(cfg),
		TriageGroup:       NewTriageGroupClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Answer.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Answer, c.Flow, c.FlowVersion, c.Instrument, c.InstrumentVersion,
		c.ScreeningSession, c.SessionInstrument, c.Triage, c.TriageGroup,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Answer, c.Flow, c.FlowVersion, c.Instrument, c.InstrumentVersion,
		c.ScreeningSession, c.SessionInstrument, c.Triage, c.TriageGroup,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerMutation:
		return c.Answer.mutate(ctx, m)
	case *FlowMutation:
		return c.Flow.mutate(ctx, m)
	case *FlowVersionMutation:
		return c.FlowVersion.mutate(ctx, m)
	case *InstrumentMutation:
		return c.Instrument.mutate(ctx, m)
	case *InstrumentVersionMutation:
		return c.InstrumentVersion.mutate(ctx, m)
	case *ScreeningSessionMutation:
		return c.ScreeningSession.mutate(ctx, m)
	case *SessionInstrumentMutation:
		return c.SessionInstrument.mutate(ctx, m)
	case *TriageMutation:
		return c.Triage.mutate(ctx, m)
	case *TriageGroupMutation:
		return c.TriageGroup.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AnswerClient is a client for the Answer schema.
type AnswerClient struct {
	config
}

// NewAnswerClient returns a client for the Answer from the given config.
func NewAnswerClient(c config) *AnswerClient {
	return &AnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answer.Hooks(f(g(h())))`.
func (c *AnswerClient) Use(hooks ...Hook) {
	c.hooks.Answer = append(c.hooks.Answer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answer.Intercept(f(g(h())))`.
func (c *AnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Answer = append(c.inters.Answer, interceptors...)
}

// Create returns a builder for creating a Answer entity.
func (c *AnswerClient) Create() *AnswerCreate {
	mutation := newAnswerMutation(c.config, OpCreate)
	return &AnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Answer entities.
func (c *AnswerClient) CreateBulk(builders ...*AnswerCreate) *AnswerCreateBulk {
	return &AnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerClient) MapCreateBulk(slice any, setFunc func(*AnswerCreate, int)) *AnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerCreateBulk{err: fmt.Errorf("calling to AnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Answer.
func (c *AnswerClient) Update() *AnswerUpdate {
	mutation := newAnswerMutation(c.config, OpUpdate)
	return &AnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerClient) UpdateOne(_m *Answer) *AnswerUpdateOne {
	mutation := newAnswerMutation(c.config, OpUpdateOne, withAnswer(_m))
	return &AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerClient) UpdateOneID(id uuid.UUID) *AnswerUpdateOne {
	mutation := newAnswerMutation(c.config, OpUpdateOne, withAnswerID(id))
	return &AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Answer.
func (c *AnswerClient) Delete() *AnswerDelete {
	mutation := newAnswerMutation(c.config, OpDelete)
	return &AnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerClient) DeleteOne(_m *Answer) *AnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerClient) DeleteOneID(id uuid.UUID) *AnswerDeleteOne {
	builder := c.Delete().Where(answer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerDeleteOne{builder}
}

// Query returns a query builder for Answer.
func (c *AnswerClient) Query() *AnswerQuery {
	return &AnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a Answer entity by its id.
func (c *AnswerClient) Get(ctx context.Context, id uuid.UUID) (*Answer, error) {
	return c.Query().Where(answer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerClient) GetX(ctx context.Context, id uuid.UUID) *Answer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessionInstrument queries the session_instrument edge of a Answer.
func (c *AnswerClient) QuerySessionInstrument(_m *Answer) *SessionInstrumentQuery {
	query := (&SessionInstrumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answer.Table, answer.FieldID, id),
			sqlgraph.To(sessioninstrument.Table, sessioninstrument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answer.SessionInstrumentTable, answer.SessionInstrumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnswerClient) Hooks() []Hook {
	return c.hooks.Answer
}

// Interceptors returns the client interceptors.
func (c *AnswerClient) Interceptors() []Interceptor {
	return c.inters.Answer
}

func (c *AnswerClient) mutate(ctx context.Context, m *AnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Answer mutation op: %q", m.Op())
	}
}

// FlowClient is a client for the Flow schema.
type FlowClient struct {
	config
}

// NewFlowClient returns a client for the Flow from the given config.
func NewFlowClient(c config) *FlowClient {
	return &FlowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flow.Hooks(f(g(h())))`.
func (c *FlowClient) Use(hooks ...Hook) {
	c.hooks.Flow = append(c.hooks.Flow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flow.Intercept(f(g(h())))`.
func (c *FlowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Flow = append(c.inters.Flow, interceptors...)
}

// Create returns a builder for creating a Flow entity.
func (c *FlowClient) Create() *FlowCreate {
	mutation := newFlowMutation(c.config, OpCreate)
	return &FlowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Flow entities.
func (c *FlowClient) CreateBulk(builders ...*FlowCreate) *FlowCreateBulk {
	return &FlowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlowClient) MapCreateBulk(slice any, setFunc func(*FlowCreate, int)) *FlowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlowCreateBulk{err: fmt.Errorf("calling to FlowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Flow.
func (c *FlowClient) Update() *FlowUpdate {
	mutation := newFlowMutation(c.config, OpUpdate)
	return &FlowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlowClient) UpdateOne(_m *Flow) *FlowUpdateOne {
	mutation := newFlowMutation(c.config, OpUpdateOne, withFlow(_m))
	return &FlowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlowClient) UpdateOneID(id uuid.UUID) *FlowUpdateOne {
	mutation := newFlowMutation(c.config, OpUpdateOne, withFlowID(id))
	return &FlowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Flow.
func (c *FlowClient) Delete() *FlowDelete {
	mutation := newFlowMutation(c.config, OpDelete)
	return &FlowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlowClient) DeleteOne(_m *Flow) *FlowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlowClient) DeleteOneID(id uuid.UUID) *FlowDeleteOne {
	builder := c.Delete().Where(flow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlowDeleteOne{builder}
}

// Query returns a query builder for Flow.
func (c *FlowClient) Query() *FlowQuery {
	return &FlowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlow},
		inters: c.Interceptors(),
	}
}

// Get returns a Flow entity by its id.
func (c *FlowClient) Get(ctx context.Context, id uuid.UUID) (*Flow, error) {
	return c.Query().Where(flow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlowClient) GetX(ctx context.Context, id uuid.UUID) *Flow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVersions queries the versions edge of a Flow.
func (c *FlowClient) QueryVersions(_m *Flow) *FlowVersionQuery {
	query := (&FlowVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(flow.Table, flow.FieldID, id),
			sqlgraph.To(flowversion.Table, flowversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, flow.VersionsTable, flow.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FlowClient) Hooks() []Hook {
	return c.hooks.Flow
}

// Interceptors returns the client interceptors.
func (c *FlowClient) Interceptors() []Interceptor {
	return c.inters.Flow
}

func (c *FlowClient) mutate(ctx context.Context, m *FlowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Flow mutation op: %q", m.Op())
	}
}

// FlowVersionClient is a client for the FlowVersion schema.
type FlowVersionClient struct {
	config
}

// NewFlowVersionClient returns a client for the FlowVersion from the given config.
func NewFlowVersionClient(c config) *FlowVersionClient {
	return &FlowVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flowversion.Hooks(f(g(h())))`.
func (c *FlowVersionClient) Use(hooks ...Hook) {
	c.hooks.FlowVersion = append(c.hooks.FlowVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flowversion.Intercept(f(g(h())))`.
func (c *FlowVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.FlowVersion = append(c.inters.FlowVersion, interceptors...)
}

// Create returns a builder for creating a FlowVersion entity.
func (c *FlowVersionClient) Create() *FlowVersionCreate {
	mutation := newFlowVersionMutation(c.config, OpCreate)
	return &FlowVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FlowVersion entities.
func (c *FlowVersionClient) CreateBulk(builders ...*FlowVersionCreate) *FlowVersionCreateBulk {
	return &FlowVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlowVersionClient) MapCreateBulk(slice any, setFunc func(*FlowVersionCreate, int)) *FlowVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlowVersionCreateBulk{err: fmt.Errorf("calling to FlowVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlowVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlowVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FlowVersion.
func (c *FlowVersionClient) Update() *FlowVersionUpdate {
	mutation := newFlowVersionMutation(c.config, OpUpdate)
	return &FlowVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlowVersionClient) UpdateOne(_m *FlowVersion) *FlowVersionUpdateOne {
	mutation := newFlowVersionMutation(c.config, OpUpdateOne, withFlowVersion(_m))
	return &FlowVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlowVersionClient) UpdateOneID(id uuid.UUID) *FlowVersionUpdateOne {
	mutation := newFlowVersionMutation(c.config, OpUpdateOne, withFlowVersionID(id))
	return &FlowVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FlowVersion.
func (c *FlowVersionClient) Delete() *FlowVersionDelete {
	mutation := newFlowVersionMutation(c.config, OpDelete)
	return &FlowVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlowVersionClient) DeleteOne(_m *FlowVersion) *FlowVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlowVersionClient) DeleteOneID(id uuid.UUID) *FlowVersionDeleteOne {
	builder := c.Delete().Where(flowversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlowVersionDeleteOne{builder}
}

// Query returns a query builder for FlowVersion.
func (c *FlowVersionClient) Query() *FlowVersionQuery {
	return &FlowVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlowVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a FlowVersion entity by its id.
func (c *FlowVersionClient) Get(ctx context.Context, id uuid.UUID) (*FlowVersion, error) {
	return c.Query().Where(flowversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlowVersionClient) GetX(ctx context.Context, id uuid.UUID) *FlowVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFlow queries the flow edge of a FlowVersion.
func (c *FlowVersionClient) QueryFlow(_m *FlowVersion) *FlowQuery {
	query := (&FlowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(flowversion.Table, flowversion.FieldID, id),
			sqlgraph.To(flow.Table, flow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, flowversion.FlowTable, flowversion.FlowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FlowVersionClient) Hooks() []Hook {
	return c.hooks.FlowVersion
}

// Interceptors returns the client interceptors.
func (c *FlowVersionClient) Interceptors() []Interceptor {
	return c.inters.FlowVersion
}

func (c *FlowVersionClient) mutate(ctx context.Context, m *FlowVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlowVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlowVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlowVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlowVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown FlowVersion mutation op: %q", m.Op())
	}
}

// InstrumentClient is a client for the Instrument schema.
type InstrumentClient struct {
	config
}

// NewInstrumentClient returns a client for the Instrument from the given config.
func NewInstrumentClient(c config) *InstrumentClient {
	return &InstrumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `instrument.Hooks(f(g(h())))`.
func (c *InstrumentClient) Use(hooks ...Hook) {
	c.hooks.Instrument = append(c.hooks.Instrument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `instrument.Intercept(f(g(h())))`.
func (c *InstrumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Instrument = append(c.inters.Instrument, interceptors...)
}

// Create returns a builder for creating a Instrument entity.
func (c *InstrumentClient) Create() *InstrumentCreate {
	mutation := newInstrumentMutation(c.config, OpCreate)
	return &InstrumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Instrument entities.
func (c *InstrumentClient) CreateBulk(builders ...*InstrumentCreate) *InstrumentCreateBulk {
	return &InstrumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstrumentClient) MapCreateBulk(slice any, setFunc func(*InstrumentCreate, int)) *InstrumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstrumentCreateBulk{err: fmt.Errorf("calling to InstrumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstrumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstrumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Instrument.
func (c *InstrumentClient) Update() *InstrumentUpdate {
	mutation := newInstrumentMutation(c.config, OpUpdate)
	return &InstrumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstrumentClient) UpdateOne(_m *Instrument) *InstrumentUpdateOne {
	mutation := newInstrumentMutation(c.config, OpUpdateOne, withInstrument(_m))
	return &InstrumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstrumentClient) UpdateOneID(id uuid.UUID) *InstrumentUpdateOne {
	mutation := newInstrumentMutation(c.config, OpUpdateOne, withInstrumentID(id))
	return &InstrumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Instrument.
func (c *InstrumentClient) Delete() *InstrumentDelete {
	mutation := newInstrumentMutation(c.config, OpDelete)
	return &InstrumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstrumentClient) DeleteOne(_m *Instrument) *InstrumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstrumentClient) DeleteOneID(id uuid.UUID) *InstrumentDeleteOne {
	builder := c.Delete().Where(instrument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstrumentDeleteOne{builder}
}

// Query returns a query builder for Instrument.
func (c *InstrumentClient) Query() *InstrumentQuery {
	return &InstrumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstrument},
		inters: c.Interceptors(),
	}
}

// Get returns a Instrument entity by its id.
func (c *InstrumentClient) Get(ctx context.Context, id uuid.UUID) (*Instrument, error) {
	return c.Query().Where(instrument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstrumentClient) GetX(ctx context.Context, id uuid.UUID) *Instrument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVersions queries the versions edge of a Instrument.
func (c *InstrumentClient) QueryVersions(_m *Instrument) *InstrumentVersionQuery {
	query := (&InstrumentVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instrument.Table, instrument.FieldID, id),
			sqlgraph.To(instrumentversion.Table, instrumentversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, instrument.VersionsTable, instrument.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InstrumentClient) Hooks() []Hook {
	return c.hooks.Instrument
}

// Interceptors returns the client interceptors.
func (c *InstrumentClient) Interceptors() []Interceptor {
	return c.inters.Instrument
}

func (c *InstrumentClient) mutate(ctx context.Context, m *InstrumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstrumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstrumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstrumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstrumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Instrument mutation op: %q", m.Op())
	}
}

// InstrumentVersionClient is a client for the InstrumentVersion schema.
type InstrumentVersionClient struct {
	config
}

// NewInstrumentVersionClient returns a client for the InstrumentVersion from the given config.
func NewInstrumentVersionClient(c config) *InstrumentVersionClient {
	return &InstrumentVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `instrumentversion.Hooks(f(g(h())))`.
func (c *InstrumentVersionClient) Use(hooks ...Hook) {
	c.hooks.InstrumentVersion = append(c.hooks.InstrumentVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `instrumentversion.Intercept(f(g(h())))`.
func (c *InstrumentVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.InstrumentVersion = append(c.inters.InstrumentVersion, interceptors...)
}

// Create returns a builder for creating a InstrumentVersion entity.
func (c *InstrumentVersionClient) Create() *InstrumentVersionCreate {
	mutation := newInstrumentVersionMutation(c.config, OpCreate)
	return &InstrumentVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InstrumentVersion entities.
func (c *InstrumentVersionClient) CreateBulk(builders ...*InstrumentVersionCreate) *InstrumentVersionCreateBulk {
	return &InstrumentVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstrumentVersionClient) MapCreateBulk(slice any, setFunc func(*InstrumentVersionCreate, int)) *InstrumentVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstrumentVersionCreateBulk{err: fmt.Errorf("calling to InstrumentVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstrumentVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstrumentVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InstrumentVersion.
func (c *InstrumentVersionClient) Update() *InstrumentVersionUpdate {
	mutation := newInstrumentVersionMutation(c.config, OpUpdate)
	return &InstrumentVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstrumentVersionClient) UpdateOne(_m *InstrumentVersion) *InstrumentVersionUpdateOne {
	mutation := newInstrumentVersionMutation(c.config, OpUpdateOne, withInstrumentVersion(_m))
	return &InstrumentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstrumentVersionClient) UpdateOneID(id uuid.UUID) *InstrumentVersionUpdateOne {
	mutation := newInstrumentVersionMutation(c.config, OpUpdateOne, withInstrumentVersionID(id))
	return &InstrumentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InstrumentVersion.
func (c *InstrumentVersionClient) Delete() *InstrumentVersionDelete {
	mutation := newInstrumentVersionMutation(c.config, OpDelete)
	return &InstrumentVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstrumentVersionClient) DeleteOne(_m *InstrumentVersion) *InstrumentVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstrumentVersionClient) DeleteOneID(id uuid.UUID) *InstrumentVersionDeleteOne {
	builder := c.Delete().Where(instrumentversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstrumentVersionDeleteOne{builder}
}

// Query returns a query builder for InstrumentVersion.
func (c *InstrumentVersionClient) Query() *InstrumentVersionQuery {
	return &InstrumentVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstrumentVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a InstrumentVersion entity by its id.
func (c *InstrumentVersionClient) Get(ctx context.Context, id uuid.UUID) (*InstrumentVersion, error) {
	return c.Query().Where(instrumentversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstrumentVersionClient) GetX(ctx context.Context, id uuid.UUID) *InstrumentVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstrument queries the instrument edge of a InstrumentVersion.
func (c *InstrumentVersionClient) QueryInstrument(_m *InstrumentVersion) *InstrumentQuery {
	query := (&InstrumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instrumentversion.Table, instrumentversion.FieldID, id),
			sqlgraph.To(instrument.Table, instrument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, instrumentversion.InstrumentTable, instrumentversion.InstrumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InstrumentVersionClient) Hooks() []Hook {
	return c.hooks.InstrumentVersion
}

// Interceptors returns the client interceptors.
func (c *InstrumentVersionClient) Interceptors() []Interceptor {
	return c.inters.InstrumentVersion
}

func (c *InstrumentVersionClient) mutate(ctx context.Context, m *InstrumentVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstrumentVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstrumentVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstrumentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstrumentVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown InstrumentVersion mutation op: %q", m.Op())
	}
}

// ScreeningSessionClient is a client for the ScreeningSession schema.
type ScreeningSessionClient struct {
	config
}

// NewScreeningSessionClient returns a client for the ScreeningSession from the given config.
func NewScreeningSessionClient(c config) *ScreeningSessionClient {
	return &ScreeningSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `screeningsession.Hooks(f(g(h())))`.
func (c *ScreeningSessionClient) Use(hooks ...Hook) {
	c.hooks.ScreeningSession = append(c.hooks.ScreeningSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `screeningsession.Intercept(f(g(h())))`.
func (c *ScreeningSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScreeningSession = append(c.inters.ScreeningSession, interceptors...)
}

// Create returns a builder for creating a ScreeningSession entity.
func (c *ScreeningSessionClient) Create() *ScreeningSessionCreate {
	mutation := newScreeningSessionMutation(c.config, OpCreate)
	return &ScreeningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScreeningSession entities.
func (c *ScreeningSessionClient) CreateBulk(builders ...*ScreeningSessionCreate) *ScreeningSessionCreateBulk {
	return &ScreeningSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScreeningSessionClient) MapCreateBulk(slice any, setFunc func(*ScreeningSessionCreate, int)) *ScreeningSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScreeningSessionCreateBulk{err: fmt.Errorf("calling to ScreeningSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScreeningSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScreeningSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScreeningSession.
func (c *ScreeningSessionClient) Update() *ScreeningSessionUpdate {
	mutation := newScreeningSessionMutation(c.config, OpUpdate)
	return &ScreeningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScreeningSessionClient) UpdateOne(_m *ScreeningSession) *ScreeningSessionUpdateOne {
	mutation := newScreeningSessionMutation(c.config, OpUpdateOne, withScreeningSession(_m))
	return &ScreeningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScreeningSessionClient) UpdateOneID(id uuid.UUID) *ScreeningSessionUpdateOne {
	mutation := newScreeningSessionMutation(c.config, OpUpdateOne, withScreeningSessionID(id))
	return &ScreeningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScreeningSession.
func (c *ScreeningSessionClient) Delete() *ScreeningSessionDelete {
	mutation := newScreeningSessionMutation(c.config, OpDelete)
	return &ScreeningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScreeningSessionClient) DeleteOne(_m *ScreeningSession) *ScreeningSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScreeningSessionClient) DeleteOneID(id uuid.UUID) *ScreeningSessionDeleteOne {
	builder := c.Delete().Where(screeningsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScreeningSessionDeleteOne{builder}
}

// Query returns a query builder for ScreeningSession.
func (c *ScreeningSessionClient) Query() *ScreeningSessionQuery {
	return &ScreeningSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScreeningSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ScreeningSession entity by its id.
func (c *ScreeningSessionClient) Get(ctx context.Context, id uuid.UUID) (*ScreeningSession, error) {
	return c.Query().Where(screeningsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScreeningSessionClient) GetX(ctx context.Context, id uuid.UUID) *ScreeningSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstruments queries the instruments edge of a ScreeningSession.
func (c *ScreeningSessionClient) QueryInstruments(_m *ScreeningSession) *SessionInstrumentQuery {
	query := (&SessionInstrumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningsession.Table, screeningsession.FieldID, id),
			sqlgraph.To(sessioninstrument.Table, sessioninstrument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, screeningsession.InstrumentsTable, screeningsession.InstrumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScreeningSessionClient) Hooks() []Hook {
	return c.hooks.ScreeningSession
}

// Interceptors returns the client interceptors.
func (c *ScreeningSessionClient) Interceptors() []Interceptor {
	return c.inters.ScreeningSession
}

func (c *ScreeningSessionClient) mutate(ctx context.Context, m *ScreeningSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScreeningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScreeningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScreeningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScreeningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ScreeningSession mutation op: %q", m.Op())
	}
}

// SessionInstrumentClient is a client for the SessionInstrument schema.
type SessionInstrumentClient struct {
	config
}

// NewSessionInstrumentClient returns a client for the SessionInstrument from the given config.
func NewSessionInstrumentClient(c config) *SessionInstrumentClient {
	return &SessionInstrumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessioninstrument.Hooks(f(g(h())))`.
func (c *SessionInstrumentClient) Use(hooks ...Hook) {
	c.hooks.SessionInstrument = append(c.hooks.SessionInstrument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessioninstrument.Intercept(f(g(h())))`.
func (c *SessionInstrumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionInstrument = append(c.inters.SessionInstrument, interceptors...)
}

// Create returns a builder for creating a SessionInstrument entity.
func (c *SessionInstrumentClient) Create() *SessionInstrumentCreate {
	mutation := newSessionInstrumentMutation(c.config, OpCreate)
	return &SessionInstrumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionInstrument entities.
func (c *SessionInstrumentClient) CreateBulk(builders ...*SessionInstrumentCreate) *SessionInstrumentCreateBulk {
	return &SessionInstrumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionInstrumentClient) MapCreateBulk(slice any, setFunc func(*SessionInstrumentCreate, int)) *SessionInstrumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionInstrumentCreateBulk{err: fmt.Errorf("calling to SessionInstrumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionInstrumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionInstrumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionInstrument.
func (c *SessionInstrumentClient) Update() *SessionInstrumentUpdate {
	mutation := newSessionInstrumentMutation(c.config, OpUpdate)
	return &SessionInstrumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionInstrumentClient) UpdateOne(_m *SessionInstrument) *SessionInstrumentUpdateOne {
	mutation := newSessionInstrumentMutation(c.config, OpUpdateOne, withSessionInstrument(_m))
	return &SessionInstrumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionInstrumentClient) UpdateOneID(id uuid.UUID) *SessionInstrumentUpdateOne {
	mutation := newSessionInstrumentMutation(c.config, OpUpdateOne, withSessionInstrumentID(id))
	return &SessionInstrumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionInstrument.
func (c *SessionInstrumentClient) Delete() *SessionInstrumentDelete {
	mutation := newSessionInstrumentMutation(c.config, OpDelete)
	return &SessionInstrumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionInstrumentClient) DeleteOne(_m *SessionInstrument) *SessionInstrumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionInstrumentClient) DeleteOneID(id uuid.UUID) *SessionInstrumentDeleteOne {
	builder := c.Delete().Where(sessioninstrument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionInstrumentDeleteOne{builder}
}

// Query returns a query builder for SessionInstrument.
func (c *SessionInstrumentClient) Query() *SessionInstrumentQuery {
	return &SessionInstrumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionInstrument},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionInstrument entity by its id.
func (c *SessionInstrumentClient) Get(ctx context.Context, id uuid.UUID) (*SessionInstrument, error) {
	return c.Query().Where(sessioninstrument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionInstrumentClient) GetX(ctx context.Context, id uuid.UUID) *SessionInstrument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionInstrument.
func (c *SessionInstrumentClient) QuerySession(_m *SessionInstrument) *ScreeningSessionQuery {
	query := (&ScreeningSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessioninstrument.Table, sessioninstrument.FieldID, id),
			sqlgraph.To(screeningsession.Table, screeningsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessioninstrument.SessionTable, sessioninstrument.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnswers queries the answers edge of a SessionInstrument.
func (c *SessionInstrumentClient) QueryAnswers(_m *SessionInstrument) *AnswerQuery {
	query := (&AnswerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessioninstrument.Table, sessioninstrument.FieldID, id),
			sqlgraph.To(answer.Table, answer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sessioninstrument.AnswersTable, sessioninstrument.AnswersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionInstrumentClient) Hooks() []Hook {
	return c.hooks.SessionInstrument
}

// Interceptors returns the client interceptors.
func (c *SessionInstrumentClient) Interceptors() []Interceptor {
	return c.inters.SessionInstrument
}

func (c *SessionInstrumentClient) mutate(ctx context.Context, m *SessionInstrumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionInstrumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionInstrumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionInstrumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionInstrumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SessionInstrument mutation op: %q", m.Op())
	}
}

// TriageClient is a client for the Triage schema.
type TriageClient struct {
	config
}

// NewTriageClient returns a client for the Triage from the given config.
func NewTriageClient(c config) *TriageClient {
	return &TriageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `triage.Hooks(f(g(h())))`.
func (c *TriageClient) Use(hooks ...Hook) {
	c.hooks.Triage = append(c.hooks.Triage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `triage.Intercept(f(g(h())))`.
func (c *TriageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Triage = append(c.inters.Triage, interceptors...)
}

// Create returns a builder for creating a Triage entity.
func (c *TriageClient) Create() *TriageCreate {
	mutation := newTriageMutation(c.config, OpCreate)
	return &TriageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Triage entities.
func (c *TriageClient) CreateBulk(builders ...*TriageCreate) *TriageCreateBulk {
	return &TriageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TriageClient) MapCreateBulk(slice any, setFunc func(*TriageCreate, int)) *TriageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TriageCreateBulk{err: fmt.Errorf("calling to TriageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TriageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TriageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Triage.
func (c *TriageClient) Update() *TriageUpdate {
	mutation := newTriageMutation(c.config, OpUpdate)
	return &TriageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TriageClient) UpdateOne(_m *Triage) *TriageUpdateOne {
	mutation := newTriageMutation(c.config, OpUpdateOne, withTriage(_m))
	return &TriageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TriageClient) UpdateOneID(id uuid.UUID) *TriageUpdateOne {
	mutation := newTriageMutation(c.config, OpUpdateOne, withTriageID(id))
	return &TriageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Triage.
func (c *TriageClient) Delete() *TriageDelete {
	mutation := newTriageMutation(c.config, OpDelete)
	return &TriageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TriageClient) DeleteOne(_m *Triage) *TriageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TriageClient) DeleteOneID(id uuid.UUID) *TriageDeleteOne {
	builder := c.Delete().Where(triage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TriageDeleteOne{builder}
}

// Query returns a query builder for Triage.
func (c *TriageClient) Query() *TriageQuery {
	return &TriageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTriage},
		inters: c.Interceptors(),
	}
}

// Get returns a Triage entity by its id.
func (c *TriageClient) Get(ctx context.Context, id uuid.UUID) (*Triage, error) {
	return c.Query().Where(triage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TriageClient) GetX(ctx context.Context, id uuid.UUID) *Triage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a Triage.
func (c *TriageClient) QueryGroup(_m *Triage) *TriageGroupQuery {
	query := (&TriageGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(triage.Table, triage.FieldID, id),
			sqlgraph.To(triagegroup.Table, triagegroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, triage.GroupTable, triage.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TriageClient) Hooks() []Hook {
	return c.hooks.Triage
}

// Interceptors returns the client interceptors.
func (c *TriageClient) Interceptors() []Interceptor {
	return c.inters.Triage
}

func (c *TriageClient) mutate(ctx context.Context, m *TriageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TriageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TriageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TriageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TriageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Triage mutation op: %q", m.Op())
	}
}

// TriageGroupClient is a client for the TriageGroup schema.
type TriageGroupClient struct {
	config
}

// NewTriageGroupClient returns a client for the TriageGroup from the given config.
func NewTriageGroupClient(c config) *TriageGroupClient {
	return &TriageGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `triagegroup.Hooks(f(g(h())))`.
func (c *TriageGroupClient) Use(hooks ...Hook) {
	c.hooks.TriageGroup = append(c.hooks.TriageGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `triagegroup.Intercept(f(g(h())))`.
func (c *TriageGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.TriageGroup = append(c.inters.TriageGroup, interceptors...)
}

// Create returns a builder for creating a TriageGroup entity.
func (c *TriageGroupClient) Create() *TriageGroupCreate {
	mutation := newTriageGroupMutation(c.config, OpCreate)
	return &TriageGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TriageGroup entities.
func (c *TriageGroupClient) CreateBulk(builders ...*TriageGroupCreate) *TriageGroupCreateBulk {
	return &TriageGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TriageGroupClient) MapCreateBulk(slice any, setFunc func(*TriageGroupCreate, int)) *TriageGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TriageGroupCreateBulk{err: fmt.Errorf("calling to TriageGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TriageGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TriageGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TriageGroup.
func (c *TriageGroupClient) Update() *TriageGroupUpdate {
	mutation := newTriageGroupMutation(c.config, OpUpdate)
	return &TriageGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TriageGroupClient) UpdateOne(_m *TriageGroup) *TriageGroupUpdateOne {
	mutation := newTriageGroupMutation(c.config, OpUpdateOne, withTriageGroup(_m))
	return &TriageGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TriageGroupClient) UpdateOneID(id uuid.UUID) *TriageGroupUpdateOne {
	mutation := newTriageGroupMutation(c.config, OpUpdateOne, withTriageGroupID(id))
	return &TriageGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TriageGroup.
func (c *TriageGroupClient) Delete() *TriageGroupDelete {
	mutation := newTriageGroupMutation(c.config, OpDelete)
	return &TriageGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TriageGroupClient) DeleteOne(_m *TriageGroup) *TriageGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TriageGroupClient) DeleteOneID(id uuid.UUID) *TriageGroupDeleteOne {
	builder := c.Delete().Where(triagegroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TriageGroupDeleteOne{builder}
}

// Query returns a query builder for TriageGroup.
func (c *TriageGroupClient) Query() *TriageGroupQuery {
	return &TriageGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTriageGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a TriageGroup entity by its id.
func (c *TriageGroupClient) Get(ctx context.Context, id uuid.UUID) (*TriageGroup, error) {
	return c.Query().Where(triagegroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TriageGroupClient) GetX(ctx context.Context, id uuid.UUID) *TriageGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTriages queries the triages edge of a TriageGroup.
func (c *TriageGroupClient) QueryTriages(_m *TriageGroup) *TriageQuery {
	query := (&TriageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(triagegroup.Table, triagegroup.FieldID, id),
			sqlgraph.To(triage.Table, triage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, triagegroup.TriagesTable, triagegroup.TriagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TriageGroupClient) Hooks() []Hook {
	return c.hooks.TriageGroup
}

// Interceptors returns the client interceptors.
func (c *TriageGroupClient) Interceptors() []Interceptor {
	return c.inters.TriageGroup
}

func (c *TriageGroupClient) mutate(ctx context.Context, m *TriageGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TriageGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TriageGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TriageGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TriageGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TriageGroup mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Answer, Flow, FlowVersion, Instrument, InstrumentVersion, ScreeningSession,
		SessionInstrument, Triage, TriageGroup []ent.Hook
	}
	inters struct {
		Answer, Flow, FlowVersion, Instrument, InstrumentVersion, ScreeningSession,
		SessionInstrument, Triage, TriageGroup []ent.Interceptor
	}
)
