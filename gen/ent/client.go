// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labelcheck/labelcheck/gen/ent/label"
	"github.com/labelcheck/labelcheck/gen/ent/labelimage"
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Label is the client for interacting with the Label builders.
	Label *LabelClient
	// LabelImage is the client for interacting with the LabelImage builders.
	LabelImage *LabelImageClient
	// ValidationItem is the client for interacting with the ValidationItem builders.
	ValidationItem *ValidationItemClient
	// VerificationJob is the client for interacting with the VerificationJob builders.
	VerificationJob *VerificationJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Label = NewLabelClient(c.config)
	c.LabelImage = NewLabelImageClient(c.config)
	c.ValidationItem = NewValidationItemClient(c.config)
	c.VerificationJob = NewVerificationJobClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Label:           NewLabelClient(cfg),
		LabelImage:      NewLabelImageClient(cfg),
		ValidationItem:  NewValidationItemClient(cfg),
		VerificationJob: NewVerificationJobClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Label:           NewLabelClient(cfg),
		LabelImage:      NewLabelImageClient(cfg),
		ValidationItem:  NewValidationItemClient(cfg),
		VerificationJob: NewVerificationJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Label.
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
	c.Label.Use(hooks...)
	c.LabelImage.Use(hooks...)
	c.ValidationItem.Use(hooks...)
	c.VerificationJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Label.Intercept(interceptors...)
	c.LabelImage.Intercept(interceptors...)
	c.ValidationItem.Intercept(interceptors...)
	c.VerificationJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LabelMutation:
		return c.Label.mutate(ctx, m)
	case *LabelImageMutation:
		return c.LabelImage.mutate(ctx, m)
	case *ValidationItemMutation:
		return c.ValidationItem.mutate(ctx, m)
	case *VerificationJobMutation:
		return c.VerificationJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LabelClient is a client for the Label schema.
type LabelClient struct {
	config
}

// NewLabelClient returns a client for the Label from the given config.
func NewLabelClient(c config) *LabelClient {
	return &LabelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `label.Hooks(f(g(h())))`.
func (c *LabelClient) Use(hooks ...Hook) {
	c.hooks.Label = append(c.hooks.Label, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `label.Intercept(f(g(h())))`.
func (c *LabelClient) Intercept(interceptors ...Interceptor) {
	c.inters.Label = append(c.inters.Label, interceptors...)
}

// Create returns a builder for creating a Label entity.
func (c *LabelClient) Create() *LabelCreate {
	mutation := newLabelMutation(c.config, OpCreate)
	return &LabelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Label entities.
func (c *LabelClient) CreateBulk(builders ...*LabelCreate) *LabelCreateBulk {
	return &LabelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabelClient) MapCreateBulk(slice any, setFunc func(*LabelCreate, int)) *LabelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabelCreateBulk{err: fmt.Errorf("calling to LabelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Label.
func (c *LabelClient) Update() *LabelUpdate {
	mutation := newLabelMutation(c.config, OpUpdate)
	return &LabelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabelClient) UpdateOne(_m *Label) *LabelUpdateOne {
	mutation := newLabelMutation(c.config, OpUpdateOne, withLabel(_m))
	return &LabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabelClient) UpdateOneID(id uuid.UUID) *LabelUpdateOne {
	mutation := newLabelMutation(c.config, OpUpdateOne, withLabelID(id))
	return &LabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Label.
func (c *LabelClient) Delete() *LabelDelete {
	mutation := newLabelMutation(c.config, OpDelete)
	return &LabelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabelClient) DeleteOne(_m *Label) *LabelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabelClient) DeleteOneID(id uuid.UUID) *LabelDeleteOne {
	builder := c.Delete().Where(label.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabelDeleteOne{builder}
}

// Query returns a query builder for Label.
func (c *LabelClient) Query() *LabelQuery {
	return &LabelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabel},
		inters: c.Interceptors(),
	}
}

// Get returns a Label entity by its id.
func (c *LabelClient) Get(ctx context.Context, id uuid.UUID) (*Label, error) {
	return c.Query().Where(label.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabelClient) GetX(ctx context.Context, id uuid.UUID) *Label {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImages queries the images edge of a Label.
func (c *LabelClient) QueryImages(_m *Label) *LabelImageQuery {
	query := (&LabelImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(label.Table, label.FieldID, id),
			sqlgraph.To(labelimage.Table, labelimage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, label.ImagesTable, label.ImagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Label.
func (c *LabelClient) QueryJobs(_m *Label) *VerificationJobQuery {
	query := (&VerificationJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(label.Table, label.FieldID, id),
			sqlgraph.To(verificationjob.Table, verificationjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, label.JobsTable, label.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LabelClient) Hooks() []Hook {
	return c.hooks.Label
}

// Interceptors returns the client interceptors.
func (c *LabelClient) Interceptors() []Interceptor {
	return c.inters.Label
}

func (c *LabelClient) mutate(ctx context.Context, m *LabelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Label mutation op: %q", m.Op())
	}
}

// LabelImageClient is a client for the LabelImage schema.
type LabelImageClient struct {
	config
}

// NewLabelImageClient returns a client for the LabelImage from the given config.
func NewLabelImageClient(c config) *LabelImageClient {
	return &LabelImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labelimage.Hooks(f(g(h())))`.
func (c *LabelImageClient) Use(hooks ...Hook) {
	c.hooks.LabelImage = append(c.hooks.LabelImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labelimage.Intercept(f(g(h())))`.
func (c *LabelImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabelImage = append(c.inters.LabelImage, interceptors...)
}

// Create returns a builder for creating a LabelImage entity.
func (c *LabelImageClient) Create() *LabelImageCreate {
	mutation := newLabelImageMutation(c.config, OpCreate)
	return &LabelImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabelImage entities.
func (c *LabelImageClient) CreateBulk(builders ...*LabelImageCreate) *LabelImageCreateBulk {
	return &LabelImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabelImageClient) MapCreateBulk(slice any, setFunc func(*LabelImageCreate, int)) *LabelImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabelImageCreateBulk{err: fmt.Errorf("calling to LabelImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabelImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabelImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabelImage.
func (c *LabelImageClient) Update() *LabelImageUpdate {
	mutation := newLabelImageMutation(c.config, OpUpdate)
	return &LabelImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabelImageClient) UpdateOne(_m *LabelImage) *LabelImageUpdateOne {
	mutation := newLabelImageMutation(c.config, OpUpdateOne, withLabelImage(_m))
	return &LabelImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabelImageClient) UpdateOneID(id uuid.UUID) *LabelImageUpdateOne {
	mutation := newLabelImageMutation(c.config, OpUpdateOne, withLabelImageID(id))
	return &LabelImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabelImage.
func (c *LabelImageClient) Delete() *LabelImageDelete {
	mutation := newLabelImageMutation(c.config, OpDelete)
	return &LabelImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabelImageClient) DeleteOne(_m *LabelImage) *LabelImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabelImageClient) DeleteOneID(id uuid.UUID) *LabelImageDeleteOne {
	builder := c.Delete().Where(labelimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabelImageDeleteOne{builder}
}

// Query returns a query builder for LabelImage.
func (c *LabelImageClient) Query() *LabelImageQuery {
	return &LabelImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabelImage},
		inters: c.Interceptors(),
	}
}

// Get returns a LabelImage entity by its id.
func (c *LabelImageClient) Get(ctx context.Context, id uuid.UUID) (*LabelImage, error) {
	return c.Query().Where(labelimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabelImageClient) GetX(ctx context.Context, id uuid.UUID) *LabelImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLabel queries the label edge of a LabelImage.
func (c *LabelImageClient) QueryLabel(_m *LabelImage) *LabelQuery {
	query := (&LabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(labelimage.Table, labelimage.FieldID, id),
			sqlgraph.To(label.Table, label.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, labelimage.LabelTable, labelimage.LabelColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LabelImageClient) Hooks() []Hook {
	return c.hooks.LabelImage
}

// Interceptors returns the client interceptors.
func (c *LabelImageClient) Interceptors() []Interceptor {
	return c.inters.LabelImage
}

func (c *LabelImageClient) mutate(ctx context.Context, m *LabelImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabelImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabelImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabelImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabelImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LabelImage mutation op: %q", m.Op())
	}
}

// ValidationItemClient is a client for the ValidationItem schema.
type ValidationItemClient struct {
	config
}

// NewValidationItemClient returns a client for the ValidationItem from the given config.
func NewValidationItemClient(c config) *ValidationItemClient {
	return &ValidationItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationitem.Hooks(f(g(h())))`.
func (c *ValidationItemClient) Use(hooks ...Hook) {
	c.hooks.ValidationItem = append(c.hooks.ValidationItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationitem.Intercept(f(g(h())))`.
func (c *ValidationItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationItem = append(c.inters.ValidationItem, interceptors...)
}

// Create returns a builder for creating a ValidationItem entity.
func (c *ValidationItemClient) Create() *ValidationItemCreate {
	mutation := newValidationItemMutation(c.config, OpCreate)
	return &ValidationItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationItem entities.
func (c *ValidationItemClient) CreateBulk(builders ...*ValidationItemCreate) *ValidationItemCreateBulk {
	return &ValidationItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationItemClient) MapCreateBulk(slice any, setFunc func(*ValidationItemCreate, int)) *ValidationItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationItemCreateBulk{err: fmt.Errorf("calling to ValidationItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationItem.
func (c *ValidationItemClient) Update() *ValidationItemUpdate {
	mutation := newValidationItemMutation(c.config, OpUpdate)
	return &ValidationItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationItemClient) UpdateOne(_m *ValidationItem) *ValidationItemUpdateOne {
	mutation := newValidationItemMutation(c.config, OpUpdateOne, withValidationItem(_m))
	return &ValidationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationItemClient) UpdateOneID(id uuid.UUID) *ValidationItemUpdateOne {
	mutation := newValidationItemMutation(c.config, OpUpdateOne, withValidationItemID(id))
	return &ValidationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationItem.
func (c *ValidationItemClient) Delete() *ValidationItemDelete {
	mutation := newValidationItemMutation(c.config, OpDelete)
	return &ValidationItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationItemClient) DeleteOne(_m *ValidationItem) *ValidationItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationItemClient) DeleteOneID(id uuid.UUID) *ValidationItemDeleteOne {
	builder := c.Delete().Where(validationitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationItemDeleteOne{builder}
}

// Query returns a query builder for ValidationItem.
func (c *ValidationItemClient) Query() *ValidationItemQuery {
	return &ValidationItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationItem entity by its id.
func (c *ValidationItemClient) Get(ctx context.Context, id uuid.UUID) (*ValidationItem, error) {
	return c.Query().Where(validationitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationItemClient) GetX(ctx context.Context, id uuid.UUID) *ValidationItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a ValidationItem.
func (c *ValidationItemClient) QueryJob(_m *ValidationItem) *VerificationJobQuery {
	query := (&VerificationJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationitem.Table, validationitem.FieldID, id),
			sqlgraph.To(verificationjob.Table, verificationjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, validationitem.JobTable, validationitem.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ValidationItemClient) Hooks() []Hook {
	return c.hooks.ValidationItem
}

// Interceptors returns the client interceptors.
func (c *ValidationItemClient) Interceptors() []Interceptor {
	return c.inters.ValidationItem
}

func (c *ValidationItemClient) mutate(ctx context.Context, m *ValidationItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationItem mutation op: %q", m.Op())
	}
}

// VerificationJobClient is a client for the VerificationJob schema.
type VerificationJobClient struct {
	config
}

// NewVerificationJobClient returns a client for the VerificationJob from the given config.
func NewVerificationJobClient(c config) *VerificationJobClient {
	return &VerificationJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationjob.Hooks(f(g(h())))`.
func (c *VerificationJobClient) Use(hooks ...Hook) {
	c.hooks.VerificationJob = append(c.hooks.VerificationJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationjob.Intercept(f(g(h())))`.
func (c *VerificationJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationJob = append(c.inters.VerificationJob, interceptors...)
}

// Create returns a builder for creating a VerificationJob entity.
func (c *VerificationJobClient) Create() *VerificationJobCreate {
	mutation := newVerificationJobMutation(c.config, OpCreate)
	return &VerificationJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationJob entities.
func (c *VerificationJobClient) CreateBulk(builders ...*VerificationJobCreate) *VerificationJobCreateBulk {
	return &VerificationJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationJobClient) MapCreateBulk(slice any, setFunc func(*VerificationJobCreate, int)) *VerificationJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationJobCreateBulk{err: fmt.Errorf("calling to VerificationJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationJob.
func (c *VerificationJobClient) Update() *VerificationJobUpdate {
	mutation := newVerificationJobMutation(c.config, OpUpdate)
	return &VerificationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationJobClient) UpdateOne(_m *VerificationJob) *VerificationJobUpdateOne {
	mutation := newVerificationJobMutation(c.config, OpUpdateOne, withVerificationJob(_m))
	return &VerificationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationJobClient) UpdateOneID(id uuid.UUID) *VerificationJobUpdateOne {
	mutation := newVerificationJobMutation(c.config, OpUpdateOne, withVerificationJobID(id))
	return &VerificationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationJob.
func (c *VerificationJobClient) Delete() *VerificationJobDelete {
	mutation := newVerificationJobMutation(c.config, OpDelete)
	return &VerificationJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationJobClient) DeleteOne(_m *VerificationJob) *VerificationJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationJobClient) DeleteOneID(id uuid.UUID) *VerificationJobDeleteOne {
	builder := c.Delete().Where(verificationjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationJobDeleteOne{builder}
}

// Query returns a query builder for VerificationJob.
func (c *VerificationJobClient) Query() *VerificationJobQuery {
	return &VerificationJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationJob},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationJob entity by its id.
func (c *VerificationJobClient) Get(ctx context.Context, id uuid.UUID) (*VerificationJob, error) {
	return c.Query().Where(verificationjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationJobClient) GetX(ctx context.Context, id uuid.UUID) *VerificationJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLabel queries the label edge of a VerificationJob.
func (c *VerificationJobClient) QueryLabel(_m *VerificationJob) *LabelQuery {
	query := (&LabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationjob.Table, verificationjob.FieldID, id),
			sqlgraph.To(label.Table, label.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationjob.LabelTable, verificationjob.LabelColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a VerificationJob.
func (c *VerificationJobClient) QueryItems(_m *VerificationJob) *ValidationItemQuery {
	query := (&ValidationItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationjob.Table, verificationjob.FieldID, id),
			sqlgraph.To(validationitem.Table, validationitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, verificationjob.ItemsTable, verificationjob.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationJobClient) Hooks() []Hook {
	return c.hooks.VerificationJob
}

// Interceptors returns the client interceptors.
func (c *VerificationJobClient) Interceptors() []Interceptor {
	return c.inters.VerificationJob
}

func (c *VerificationJobClient) mutate(ctx context.Context, m *VerificationJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Label, LabelImage, ValidationItem, VerificationJob []ent.Hook
	}
	inters struct {
		Label, LabelImage, ValidationItem, VerificationJob []ent.Interceptor
	}
)
