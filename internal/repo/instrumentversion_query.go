// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/instrument"
	"github.com/marlowhealth/compass_backend/internal/repo/instrumentversion"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// InstrumentVersionQuery is the builder for querying InstrumentVersion entities.
type InstrumentVersionQuery struct {
	config
	ctx            *QueryContext
	order          []instrumentversion.OrderOption
	inters         []Interceptor
	predicates     []predicate.InstrumentVersion
	withInstrument *InstrumentQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InstrumentVersionQuery builder.
func (_q *InstrumentVersionQuery) Where(ps ...predicate.InstrumentVersion) *InstrumentVersionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InstrumentVersionQuery) Limit(limit int) *InstrumentVersionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InstrumentVersionQuery) Offset(offset int) *InstrumentVersionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InstrumentVersionQuery) Unique(unique bool) *InstrumentVersionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InstrumentVersionQuery) Order(o ...instrumentversion.OrderOption) *InstrumentVersionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryInstrument chains the current query on the "instrument" edge.
func (_q *InstrumentVersionQuery) QueryInstrument() *InstrumentQuery {
	query := (&InstrumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(instrumentversion.Table, instrumentversion.FieldID, selector),
			sqlgraph.To(instrument.Table, instrument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, instrumentversion.InstrumentTable, instrumentversion.InstrumentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InstrumentVersion entity from the query.
// Returns a *NotFoundError when no InstrumentVersion was found.
func (_q *InstrumentVersionQuery) First(ctx context.Context) (*InstrumentVersion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{instrumentversion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InstrumentVersionQuery) FirstX(ctx context.Context) *InstrumentVersion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InstrumentVersion ID from the query.
// Returns a *NotFoundError when no InstrumentVersion ID was found.
func (_q *InstrumentVersionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{instrumentversion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InstrumentVersionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InstrumentVersion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InstrumentVersion entity is found.
// Returns a *NotFoundError when no InstrumentVersion entities are found.
func (_q *InstrumentVersionQuery) Only(ctx context.Context) (*InstrumentVersion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{instrumentversion.Label}
	default:
		return nil, &NotSingularError{instrumentversion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InstrumentVersionQuery) OnlyX(ctx context.Context) *InstrumentVersion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InstrumentVersion ID in the query.
// Returns a *NotSingularError when more than one InstrumentVersion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InstrumentVersionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{instrumentversion.Label}
	default:
		err = &NotSingularError{instrumentversion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InstrumentVersionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InstrumentVersions.
func (_q *InstrumentVersionQuery) All(ctx context.Context) ([]*InstrumentVersion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InstrumentVersion, *InstrumentVersionQuery]()
	return withInterceptors[[]*InstrumentVersion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InstrumentVersionQuery) AllX(ctx context.Context) []*InstrumentVersion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InstrumentVersion IDs.
func (_q *InstrumentVersionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(instrumentversion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InstrumentVersionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InstrumentVersionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InstrumentVersionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InstrumentVersionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InstrumentVersionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *InstrumentVersionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InstrumentVersionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InstrumentVersionQuery) Clone() *InstrumentVersionQuery {
	if _q == nil {
		return nil
	}
	return &InstrumentVersionQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]instrumentversion.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.InstrumentVersion{}, _q.predicates...),
		withInstrument: _q.withInstrument.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithInstrument tells the query-builder to eager-load the nodes that are connected to
// the "instrument" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InstrumentVersionQuery) WithInstrument(opts ...func(*InstrumentQuery)) *InstrumentVersionQuery {
	query := (&InstrumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInstrument = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InstrumentVersion.Query().
//		GroupBy(instrumentversion.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *InstrumentVersionQuery) GroupBy(field string, fields ...string) *InstrumentVersionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InstrumentVersionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = instrumentversion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.InstrumentVersion.Query().
//		Select(instrumentversion.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *InstrumentVersionQuery) Select(fields ...string) *InstrumentVersionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InstrumentVersionSelect{InstrumentVersionQuery: _q}
	sbuild.label = instrumentversion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InstrumentVersionSelect configured with the given aggregations.
func (_q *InstrumentVersionQuery) Aggregate(fns ...AggregateFunc) *InstrumentVersionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InstrumentVersionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !instrumentversion.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *InstrumentVersionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InstrumentVersion, error) {
	var (
		nodes       = []*InstrumentVersion{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withInstrument != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InstrumentVersion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InstrumentVersion{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withInstrument; query != nil {
		if err := _q.loadInstrument(ctx, query, nodes, nil,
			func(n *InstrumentVersion, e *Instrument) { n.Edges.Instrument = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InstrumentVersionQuery) loadInstrument(ctx context.Context, query *InstrumentQuery, nodes []*InstrumentVersion, init func(*InstrumentVersion), assign func(*InstrumentVersion, *Instrument)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*InstrumentVersion)
	for i := range nodes {
		fk := nodes[i].InstrumentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(instrument.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "instrument_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *InstrumentVersionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InstrumentVersionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(instrumentversion.Table, instrumentversion.Columns, sqlgraph.NewFieldSpec(instrumentversion.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instrumentversion.FieldID)
		for i := range fields {
			if fields[i] != instrumentversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withInstrument != nil {
			_spec.Node.AddColumnOnce(instrumentversion.FieldInstrumentID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *InstrumentVersionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(instrumentversion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = instrumentversion.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *InstrumentVersionQuery) ForUpdate(opts ...sql.LockOption) *InstrumentVersionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *InstrumentVersionQuery) ForShare(opts ...sql.LockOption) *InstrumentVersionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// InstrumentVersionGroupBy is the group-by builder for InstrumentVersion entities.
type InstrumentVersionGroupBy struct {
	selector
	build *InstrumentVersionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InstrumentVersionGroupBy) Aggregate(fns ...AggregateFunc) *InstrumentVersionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InstrumentVersionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InstrumentVersionQuery, *InstrumentVersionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InstrumentVersionGroupBy) sqlScan(ctx context.Context, root *InstrumentVersionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InstrumentVersionSelect is the builder for selecting fields of InstrumentVersion entities.
type InstrumentVersionSelect struct {
	*InstrumentVersionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InstrumentVersionSelect) Aggregate(fns ...AggregateFunc) *InstrumentVersionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InstrumentVersionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InstrumentVersionQuery, *InstrumentVersionSelect](ctx, _s.InstrumentVersionQuery, _s, _s.inters, v)
}

func (_s *InstrumentVersionSelect) sqlScan(ctx context.Context, root *InstrumentVersionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
