// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/instrument"
	"github.com/marlowhealth/compass_backend/internal/repo/instrumentversion"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// InstrumentVersionCreate is the builder for creating a InstrumentVersion entity.
type InstrumentVersionCreate struct {
	config
	mutation *InstrumentVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InstrumentVersionCreate) SetCreatedAt(v time.Time) *InstrumentVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InstrumentVersionCreate) SetNillableCreatedAt(v *time.Time) *InstrumentVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInstrumentID sets the "instrument_id" field.
func (_c *InstrumentVersionCreate) SetInstrumentID(v uuid.UUID) *InstrumentVersionCreate {
	_c.mutation.SetInstrumentID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *InstrumentVersionCreate) SetVersion(v int) *InstrumentVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *InstrumentVersionCreate) SetContent(v screening.InstrumentContent) *InstrumentVersionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *InstrumentVersionCreate) SetPublishedAt(v time.Time) *InstrumentVersionCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InstrumentVersionCreate) SetID(v uuid.UUID) *InstrumentVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InstrumentVersionCreate) SetNillableID(v *uuid.UUID) *InstrumentVersionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInstrument sets the "instrument" edge to the Instrument entity.
func (_c *InstrumentVersionCreate) SetInstrument(v *Instrument) *InstrumentVersionCreate {
	return _c.SetInstrumentID(v.ID)
}

// Mutation returns the InstrumentVersionMutation object of the builder.
func (_c *InstrumentVersionCreate) Mutation() *InstrumentVersionMutation {
	return _c.mutation
}

// Save creates the InstrumentVersion in the database.
func (_c *InstrumentVersionCreate) Save(ctx context.Context) (*InstrumentVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstrumentVersionCreate) SaveX(ctx context.Context) *InstrumentVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstrumentVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstrumentVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstrumentVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := instrumentversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := instrumentversion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstrumentVersionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InstrumentVersion.created_at"`)}
	}
	if _, ok := _c.mutation.InstrumentID(); !ok {
		return &ValidationError{Name: "instrument_id", err: errors.New(`repo: missing required field "InstrumentVersion.instrument_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`repo: missing required field "InstrumentVersion.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := instrumentversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "InstrumentVersion.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "InstrumentVersion.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "InstrumentVersion.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PublishedAt(); !ok {
		return &ValidationError{Name: "published_at", err: errors.New(`repo: missing required field "InstrumentVersion.published_at"`)}
	}
	if len(_c.mutation.InstrumentIDs()) == 0 {
		return &ValidationError{Name: "instrument", err: errors.New(`repo: missing required edge "InstrumentVersion.instrument"`)}
	}
	return nil
}

func (_c *InstrumentVersionCreate) sqlSave(ctx context.Context) (*InstrumentVersion, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InstrumentVersionCreate) createSpec() (*InstrumentVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &InstrumentVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(instrumentversion.Table, sqlgraph.NewFieldSpec(instrumentversion.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(instrumentversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(instrumentversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(instrumentversion.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(instrumentversion.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = value
	}
	if nodes := _c.mutation.InstrumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   instrumentversion.InstrumentTable,
			Columns: []string{instrumentversion.InstrumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instrument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InstrumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InstrumentVersion.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstrumentVersionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InstrumentVersionCreate) OnConflict(opts ...sql.ConflictOption) *InstrumentVersionUpsertOne {
	_c.conflict = opts
	return &InstrumentVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InstrumentVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstrumentVersionCreate) OnConflictColumns(columns ...string) *InstrumentVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstrumentVersionUpsertOne{
		create: _c,
	}
}

type (
	// InstrumentVersionUpsertOne is the builder for "upsert"-ing
	//  one InstrumentVersion node.
	InstrumentVersionUpsertOne struct {
		create *InstrumentVersionCreate
	}

	// InstrumentVersionUpsert is the "OnConflict" setter.
	InstrumentVersionUpsert struct {
		*sql.UpdateSet
	}
)

// SetInstrumentID sets the "instrument_id" field.
func (u *InstrumentVersionUpsert) SetInstrumentID(v uuid.UUID) *InstrumentVersionUpsert {
	u.Set(instrumentversion.FieldInstrumentID, v)
	return u
}

// UpdateInstrumentID sets the "instrument_id" field to the value that was provided on create.
func (u *InstrumentVersionUpsert) UpdateInstrumentID() *InstrumentVersionUpsert {
	u.SetExcluded(instrumentversion.FieldInstrumentID)
	return u
}

// SetVersion sets the "version" field.
func (u *InstrumentVersionUpsert) SetVersion(v int) *InstrumentVersionUpsert {
	u.Set(instrumentversion.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *InstrumentVersionUpsert) UpdateVersion() *InstrumentVersionUpsert {
	u.SetExcluded(instrumentversion.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *InstrumentVersionUpsert) AddVersion(v int) *InstrumentVersionUpsert {
	u.Add(instrumentversion.FieldVersion, v)
	return u
}

// SetContent sets the "content" field.
func (u *InstrumentVersionUpsert) SetContent(v screening.InstrumentContent) *InstrumentVersionUpsert {
	u.Set(instrumentversion.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *InstrumentVersionUpsert) UpdateContent() *InstrumentVersionUpsert {
	u.SetExcluded(instrumentversion.FieldContent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InstrumentVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(instrumentversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstrumentVersionUpsertOne) UpdateNewValues() *InstrumentVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(instrumentversion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(instrumentversion.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.PublishedAt(); exists {
			s.SetIgnore(instrumentversion.FieldPublishedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InstrumentVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InstrumentVersionUpsertOne) Ignore() *InstrumentVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstrumentVersionUpsertOne) DoNothing() *InstrumentVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstrumentVersionCreate.OnConflict
// documentation for more info.
func (u *InstrumentVersionUpsertOne) Update(set func(*InstrumentVersionUpsert)) *InstrumentVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstrumentVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetInstrumentID sets the "instrument_id" field.
func (u *InstrumentVersionUpsertOne) SetInstrumentID(v uuid.UUID) *InstrumentVersionUpsertOne {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.SetInstrumentID(v)
	})
}

// UpdateInstrumentID sets the "instrument_id" field to the value that was provided on create.
func (u *InstrumentVersionUpsertOne) UpdateInstrumentID() *InstrumentVersionUpsertOne {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.UpdateInstrumentID()
	})
}

// SetVersion sets the "version" field.
func (u *InstrumentVersionUpsertOne) SetVersion(v int) *InstrumentVersionUpsertOne {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *InstrumentVersionUpsertOne) AddVersion(v int) *InstrumentVersionUpsertOne {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *InstrumentVersionUpsertOne) UpdateVersion() *InstrumentVersionUpsertOne {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.UpdateVersion()
	})
}

// SetContent sets the "content" field.
func (u *InstrumentVersionUpsertOne) SetContent(v screening.InstrumentContent) *InstrumentVersionUpsertOne {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *InstrumentVersionUpsertOne) UpdateContent() *InstrumentVersionUpsertOne {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *InstrumentVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InstrumentVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstrumentVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InstrumentVersionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InstrumentVersionUpsertOne.ID is not supported by MySQL driver. Use InstrumentVersionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InstrumentVersionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InstrumentVersionCreateBulk is the builder for creating many InstrumentVersion entities in bulk.
type InstrumentVersionCreateBulk struct {
	config
	err      error
	builders []*InstrumentVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the InstrumentVersion entities in the database.
func (_c *InstrumentVersionCreateBulk) Save(ctx context.Context) ([]*InstrumentVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InstrumentVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstrumentVersionMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *InstrumentVersionCreateBulk) SaveX(ctx context.Context) []*InstrumentVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstrumentVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstrumentVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InstrumentVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstrumentVersionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InstrumentVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *InstrumentVersionUpsertBulk {
	_c.conflict = opts
	return &InstrumentVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InstrumentVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstrumentVersionCreateBulk) OnConflictColumns(columns ...string) *InstrumentVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstrumentVersionUpsertBulk{
		create: _c,
	}
}

// InstrumentVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of InstrumentVersion nodes.
type InstrumentVersionUpsertBulk struct {
	create *InstrumentVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InstrumentVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(instrumentversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstrumentVersionUpsertBulk) UpdateNewValues() *InstrumentVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(instrumentversion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(instrumentversion.FieldCreatedAt)
			}
			if _, exists := b.mutation.PublishedAt(); exists {
				s.SetIgnore(instrumentversion.FieldPublishedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InstrumentVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InstrumentVersionUpsertBulk) Ignore() *InstrumentVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstrumentVersionUpsertBulk) DoNothing() *InstrumentVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstrumentVersionCreateBulk.OnConflict
// documentation for more info.
func (u *InstrumentVersionUpsertBulk) Update(set func(*InstrumentVersionUpsert)) *InstrumentVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstrumentVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetInstrumentID sets the "instrument_id" field.
func (u *InstrumentVersionUpsertBulk) SetInstrumentID(v uuid.UUID) *InstrumentVersionUpsertBulk {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.SetInstrumentID(v)
	})
}

// UpdateInstrumentID sets the "instrument_id" field to the value that was provided on create.
func (u *InstrumentVersionUpsertBulk) UpdateInstrumentID() *InstrumentVersionUpsertBulk {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.UpdateInstrumentID()
	})
}

// SetVersion sets the "version" field.
func (u *InstrumentVersionUpsertBulk) SetVersion(v int) *InstrumentVersionUpsertBulk {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *InstrumentVersionUpsertBulk) AddVersion(v int) *InstrumentVersionUpsertBulk {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *InstrumentVersionUpsertBulk) UpdateVersion() *InstrumentVersionUpsertBulk {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.UpdateVersion()
	})
}

// SetContent sets the "content" field.
func (u *InstrumentVersionUpsertBulk) SetContent(v screening.InstrumentContent) *InstrumentVersionUpsertBulk {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *InstrumentVersionUpsertBulk) UpdateContent() *InstrumentVersionUpsertBulk {
	return u.Update(func(s *InstrumentVersionUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *InstrumentVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InstrumentVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InstrumentVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstrumentVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
