// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/wenjun-lei/family-health-archive/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wenjun-lei/family-health-archive/gen/ent/familymember"
	"github.com/wenjun-lei/family-health-archive/gen/ent/medicalreport"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FamilyMember is the client for interacting with the FamilyMember builders.
	FamilyMember *FamilyMemberClient
	// MedicalReport is the client for interacting with the MedicalReport builders.
	MedicalReport *MedicalReportClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FamilyMember = NewFamilyMemberClient(c.config)
	c.MedicalReport = NewMedicalReportClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		FamilyMember:  NewFamilyMemberClient(cfg),
		MedicalReport: NewMedicalReportClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		FamilyMember:  NewFamilyMemberClient(cfg),
		MedicalReport: NewMedicalReportClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FamilyMember.
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
	c.FamilyMember.Use(hooks...)
	c.MedicalReport.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.FamilyMember.Intercept(interceptors...)
	c.MedicalReport.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FamilyMemberMutation:
		return c.FamilyMember.mutate(ctx, m)
	case *MedicalReportMutation:
		return c.MedicalReport.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FamilyMemberClient is a client for the FamilyMember schema.
type FamilyMemberClient struct {
	config
}

// NewFamilyMemberClient returns a client for the FamilyMember from the given config.
func NewFamilyMemberClient(c config) *FamilyMemberClient {
	return &FamilyMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `familymember.Hooks(f(g(h())))`.
func (c *FamilyMemberClient) Use(hooks ...Hook) {
	c.hooks.FamilyMember = append(c.hooks.FamilyMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `familymember.Intercept(f(g(h())))`.
func (c *FamilyMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.FamilyMember = append(c.inters.FamilyMember, interceptors...)
}

// Create returns a builder for creating a FamilyMember entity.
func (c *FamilyMemberClient) Create() *FamilyMemberCreate {
	mutation := newFamilyMemberMutation(c.config, OpCreate)
	return &FamilyMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FamilyMember entities.
func (c *FamilyMemberClient) CreateBulk(builders ...*FamilyMemberCreate) *FamilyMemberCreateBulk {
	return &FamilyMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FamilyMemberClient) MapCreateBulk(slice any, setFunc func(*FamilyMemberCreate, int)) *FamilyMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FamilyMemberCreateBulk{err: fmt.Errorf("calling to FamilyMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FamilyMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FamilyMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FamilyMember.
func (c *FamilyMemberClient) Update() *FamilyMemberUpdate {
	mutation := newFamilyMemberMutation(c.config, OpUpdate)
	return &FamilyMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FamilyMemberClient) UpdateOne(_m *FamilyMember) *FamilyMemberUpdateOne {
	mutation := newFamilyMemberMutation(c.config, OpUpdateOne, withFamilyMember(_m))
	return &FamilyMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FamilyMemberClient) UpdateOneID(id uuid.UUID) *FamilyMemberUpdateOne {
	mutation := newFamilyMemberMutation(c.config, OpUpdateOne, withFamilyMemberID(id))
	return &FamilyMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FamilyMember.
func (c *FamilyMemberClient) Delete() *FamilyMemberDelete {
	mutation := newFamilyMemberMutation(c.config, OpDelete)
	return &FamilyMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FamilyMemberClient) DeleteOne(_m *FamilyMember) *FamilyMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FamilyMemberClient) DeleteOneID(id uuid.UUID) *FamilyMemberDeleteOne {
	builder := c.Delete().Where(familymember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FamilyMemberDeleteOne{builder}
}

// Query returns a query builder for FamilyMember.
func (c *FamilyMemberClient) Query() *FamilyMemberQuery {
	return &FamilyMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFamilyMember},
		inters: c.Interceptors(),
	}
}

// Get returns a FamilyMember entity by its id.
func (c *FamilyMemberClient) Get(ctx context.Context, id uuid.UUID) (*FamilyMember, error) {
	return c.Query().Where(familymember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FamilyMemberClient) GetX(ctx context.Context, id uuid.UUID) *FamilyMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReports queries the reports edge of a FamilyMember.
func (c *FamilyMemberClient) QueryReports(_m *FamilyMember) *MedicalReportQuery {
	query := (&MedicalReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(familymember.Table, familymember.FieldID, id),
			sqlgraph.To(medicalreport.Table, medicalreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, familymember.ReportsTable, familymember.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FamilyMemberClient) Hooks() []Hook {
	return c.hooks.FamilyMember
}

// Interceptors returns the client interceptors.
func (c *FamilyMemberClient) Interceptors() []Interceptor {
	return c.inters.FamilyMember
}

func (c *FamilyMemberClient) mutate(ctx context.Context, m *FamilyMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FamilyMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FamilyMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FamilyMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FamilyMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FamilyMember mutation op: %q", m.Op())
	}
}

// MedicalReportClient is a client for the MedicalReport schema.
type MedicalReportClient struct {
	config
}

// NewMedicalReportClient returns a client for the MedicalReport from the given config.
func NewMedicalReportClient(c config) *MedicalReportClient {
	return &MedicalReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicalreport.Hooks(f(g(h())))`.
func (c *MedicalReportClient) Use(hooks ...Hook) {
	c.hooks.MedicalReport = append(c.hooks.MedicalReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicalreport.Intercept(f(g(h())))`.
func (c *MedicalReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.MedicalReport = append(c.inters.MedicalReport, interceptors...)
}

// Create returns a builder for creating a MedicalReport entity.
func (c *MedicalReportClient) Create() *MedicalReportCreate {
	mutation := newMedicalReportMutation(c.config, OpCreate)
	return &MedicalReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MedicalReport entities.
func (c *MedicalReportClient) CreateBulk(builders ...*MedicalReportCreate) *MedicalReportCreateBulk {
	return &MedicalReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicalReportClient) MapCreateBulk(slice any, setFunc func(*MedicalReportCreate, int)) *MedicalReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicalReportCreateBulk{err: fmt.Errorf("calling to MedicalReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicalReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicalReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MedicalReport.
func (c *MedicalReportClient) Update() *MedicalReportUpdate {
	mutation := newMedicalReportMutation(c.config, OpUpdate)
	return &MedicalReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicalReportClient) UpdateOne(_m *MedicalReport) *MedicalReportUpdateOne {
	mutation := newMedicalReportMutation(c.config, OpUpdateOne, withMedicalReport(_m))
	return &MedicalReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicalReportClient) UpdateOneID(id uuid.UUID) *MedicalReportUpdateOne {
	mutation := newMedicalReportMutation(c.config, OpUpdateOne, withMedicalReportID(id))
	return &MedicalReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MedicalReport.
func (c *MedicalReportClient) Delete() *MedicalReportDelete {
	mutation := newMedicalReportMutation(c.config, OpDelete)
	return &MedicalReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicalReportClient) DeleteOne(_m *MedicalReport) *MedicalReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicalReportClient) DeleteOneID(id uuid.UUID) *MedicalReportDeleteOne {
	builder := c.Delete().Where(medicalreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicalReportDeleteOne{builder}
}

// Query returns a query builder for MedicalReport.
func (c *MedicalReportClient) Query() *MedicalReportQuery {
	return &MedicalReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicalReport},
		inters: c.Interceptors(),
	}
}

// Get returns a MedicalReport entity by its id.
func (c *MedicalReportClient) Get(ctx context.Context, id uuid.UUID) (*MedicalReport, error) {
	return c.Query().Where(medicalreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicalReportClient) GetX(ctx context.Context, id uuid.UUID) *MedicalReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMember queries the member edge of a MedicalReport.
func (c *MedicalReportClient) QueryMember(_m *MedicalReport) *FamilyMemberQuery {
	query := (&FamilyMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(medicalreport.Table, medicalreport.FieldID, id),
			sqlgraph.To(familymember.Table, familymember.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, medicalreport.MemberTable, medicalreport.MemberColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MedicalReportClient) Hooks() []Hook {
	return c.hooks.MedicalReport
}

// Interceptors returns the client interceptors.
func (c *MedicalReportClient) Interceptors() []Interceptor {
	return c.inters.MedicalReport
}

func (c *MedicalReportClient) mutate(ctx context.Context, m *MedicalReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicalReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicalReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicalReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicalReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MedicalReport mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FamilyMember, MedicalReport []ent.Hook
	}
	inters struct {
		FamilyMember, MedicalReport []ent.Interceptor
	}
)
