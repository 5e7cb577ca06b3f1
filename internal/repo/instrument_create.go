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
)

// InstrumentCreate is the builder for creating a Instrument entity.
type InstrumentCreate struct {
	config
	mutation *InstrumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InstrumentCreate) SetCreatedAt(v time.Time) *InstrumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InstrumentCreate) SetNillableCreatedAt(v *time.Time) *InstrumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InstrumentCreate) SetUpdatedAt(v time.Time) *InstrumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InstrumentCreate) SetNillableUpdatedAt(v *time.Time) *InstrumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSlug sets the "slug" field.
func (_c *InstrumentCreate) SetSlug(v string) *InstrumentCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *InstrumentCreate) SetName(v string) *InstrumentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InstrumentCreate) SetDescription(v string) *InstrumentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *InstrumentCreate) SetNillableDescription(v *string) *InstrumentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetFocusArea sets the "focus_area" field.
func (_c *InstrumentCreate) SetFocusArea(v string) *InstrumentCreate {
	_c.mutation.SetFocusArea(v)
	return _c
}

// SetCurrentVersionID sets the "current_version_id" field.
func (_c *InstrumentCreate) SetCurrentVersionID(v uuid.UUID) *InstrumentCreate {
	_c.mutation.SetCurrentVersionID(v)
	return _c
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (_c *InstrumentCreate) SetNillableCurrentVersionID(v *uuid.UUID) *InstrumentCreate {
	if v != nil {
		_c.SetCurrentVersionID(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *InstrumentCreate) SetIsActive(v bool) *InstrumentCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *InstrumentCreate) SetNillableIsActive(v *bool) *InstrumentCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InstrumentCreate) SetID(v uuid.UUID) *InstrumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InstrumentCreate) SetNillableID(v *uuid.UUID) *InstrumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVersionIDs adds the "versions" edge to the InstrumentVersion entity by IDs.
func (_c *InstrumentCreate) AddVersionIDs(ids ...uuid.UUID) *InstrumentCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the InstrumentVersion entity.
func (_c *InstrumentCreate) AddVersions(v ...*InstrumentVersion) *InstrumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// Mutation returns the InstrumentMutation object of the builder.
func (_c *InstrumentCreate) Mutation() *InstrumentMutation {
	return _c.mutation
}

// Save creates the Instrument in the database.
func (_c *InstrumentCreate) Save(ctx context.Context) (*Instrument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstrumentCreate) SaveX(ctx context.Context) *Instrument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstrumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstrumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstrumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := instrument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := instrument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := instrument.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := instrument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstrumentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Instrument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Instrument.updated_at"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Instrument.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := instrument.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Instrument.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Instrument.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := instrument.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Instrument.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FocusArea(); !ok {
		return &ValidationError{Name: "focus_area", err: errors.New(`repo: missing required field "Instrument.focus_area"`)}
	}
	if v, ok := _c.mutation.FocusArea(); ok {
		if err := instrument.FocusAreaValidator(v); err != nil {
			return &ValidationError{Name: "focus_area", err: fmt.Errorf(`repo: validator failed for field "Instrument.focus_area": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Instrument.is_active"`)}
	}
	return nil
}

func (_c *InstrumentCreate) sqlSave(ctx context.Context) (*Instrument, error) {
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

func (_c *InstrumentCreate) createSpec() (*Instrument, *sqlgraph.CreateSpec) {
	var (
		_node = &Instrument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(instrument.Table, sqlgraph.NewFieldSpec(instrument.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(instrument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(instrument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(instrument.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(instrument.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(instrument.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.FocusArea(); ok {
		_spec.SetField(instrument.FieldFocusArea, field.TypeString, value)
		_node.FocusArea = value
	}
	if value, ok := _c.mutation.CurrentVersionID(); ok {
		_spec.SetField(instrument.FieldCurrentVersionID, field.TypeUUID, value)
		_node.CurrentVersionID = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(instrument.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instrument.VersionsTable,
			Columns: []string{instrument.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instrumentversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Instrument.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstrumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InstrumentCreate) OnConflict(opts ...sql.ConflictOption) *InstrumentUpsertOne {
	_c.conflict = opts
	return &InstrumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Instrument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstrumentCreate) OnConflictColumns(columns ...string) *InstrumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstrumentUpsertOne{
		create: _c,
	}
}

type (
	// InstrumentUpsertOne is the builder for "upsert"-ing
	//  one Instrument node.
	InstrumentUpsertOne struct {
		create *InstrumentCreate
	}

	// InstrumentUpsert is the "OnConflict" setter.
	InstrumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InstrumentUpsert) SetUpdatedAt(v time.Time) *InstrumentUpsert {
	u.Set(instrument.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InstrumentUpsert) UpdateUpdatedAt() *InstrumentUpsert {
	u.SetExcluded(instrument.FieldUpdatedAt)
	return u
}

// SetSlug sets the "slug" field.
func (u *InstrumentUpsert) SetSlug(v string) *InstrumentUpsert {
	u.Set(instrument.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *InstrumentUpsert) UpdateSlug() *InstrumentUpsert {
	u.SetExcluded(instrument.FieldSlug)
	return u
}

// SetName sets the "name" field.
func (u *InstrumentUpsert) SetName(v string) *InstrumentUpsert {
	u.Set(instrument.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *InstrumentUpsert) UpdateName() *InstrumentUpsert {
	u.SetExcluded(instrument.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *InstrumentUpsert) SetDescription(v string) *InstrumentUpsert {
	u.Set(instrument.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InstrumentUpsert) UpdateDescription() *InstrumentUpsert {
	u.SetExcluded(instrument.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *InstrumentUpsert) ClearDescription() *InstrumentUpsert {
	u.SetNull(instrument.FieldDescription)
	return u
}

// SetFocusArea sets the "focus_area" field.
func (u *InstrumentUpsert) SetFocusArea(v string) *InstrumentUpsert {
	u.Set(instrument.FieldFocusArea, v)
	return u
}

// UpdateFocusArea sets the "focus_area" field to the value that was provided on create.
func (u *InstrumentUpsert) UpdateFocusArea() *InstrumentUpsert {
	u.SetExcluded(instrument.FieldFocusArea)
	return u
}

// SetCurrentVersionID sets the "current_version_id" field.
func (u *InstrumentUpsert) SetCurrentVersionID(v uuid.UUID) *InstrumentUpsert {
	u.Set(instrument.FieldCurrentVersionID, v)
	return u
}

// UpdateCurrentVersionID sets the "current_version_id" field to the value that was provided on create.
func (u *InstrumentUpsert) UpdateCurrentVersionID() *InstrumentUpsert {
	u.SetExcluded(instrument.FieldCurrentVersionID)
	return u
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (u *InstrumentUpsert) ClearCurrentVersionID() *InstrumentUpsert {
	u.SetNull(instrument.FieldCurrentVersionID)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *InstrumentUpsert) SetIsActive(v bool) *InstrumentUpsert {
	u.Set(instrument.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *InstrumentUpsert) UpdateIsActive() *InstrumentUpsert {
	u.SetExcluded(instrument.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Instrument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(instrument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstrumentUpsertOne) UpdateNewValues() *InstrumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(instrument.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(instrument.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Instrument.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InstrumentUpsertOne) Ignore() *InstrumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstrumentUpsertOne) DoNothing() *InstrumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstrumentCreate.OnConflict
// documentation for more info.
func (u *InstrumentUpsertOne) Update(set func(*InstrumentUpsert)) *InstrumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstrumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InstrumentUpsertOne) SetUpdatedAt(v time.Time) *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InstrumentUpsertOne) UpdateUpdatedAt() *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSlug sets the "slug" field.
func (u *InstrumentUpsertOne) SetSlug(v string) *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *InstrumentUpsertOne) UpdateSlug() *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *InstrumentUpsertOne) SetName(v string) *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *InstrumentUpsertOne) UpdateName() *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *InstrumentUpsertOne) SetDescription(v string) *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InstrumentUpsertOne) UpdateDescription() *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InstrumentUpsertOne) ClearDescription() *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.ClearDescription()
	})
}

// SetFocusArea sets the "focus_area" field.
func (u *InstrumentUpsertOne) SetFocusArea(v string) *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetFocusArea(v)
	})
}

// UpdateFocusArea sets the "focus_area" field to the value that was provided on create.
func (u *InstrumentUpsertOne) UpdateFocusArea() *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateFocusArea()
	})
}

// SetCurrentVersionID sets the "current_version_id" field.
func (u *InstrumentUpsertOne) SetCurrentVersionID(v uuid.UUID) *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetCurrentVersionID(v)
	})
}

// UpdateCurrentVersionID sets the "current_version_id" field to the value that was provided on create.
func (u *InstrumentUpsertOne) UpdateCurrentVersionID() *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateCurrentVersionID()
	})
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (u *InstrumentUpsertOne) ClearCurrentVersionID() *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.ClearCurrentVersionID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *InstrumentUpsertOne) SetIsActive(v bool) *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *InstrumentUpsertOne) UpdateIsActive() *InstrumentUpsertOne {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *InstrumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InstrumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstrumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InstrumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InstrumentUpsertOne.ID is not supported by MySQL driver. Use InstrumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InstrumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InstrumentCreateBulk is the builder for creating many Instrument entities in bulk.
type InstrumentCreateBulk struct {
	config
	err      error
	builders []*InstrumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Instrument entities in the database.
func (_c *InstrumentCreateBulk) Save(ctx context.Context) ([]*Instrument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Instrument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstrumentMutation)
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
func (_c *InstrumentCreateBulk) SaveX(ctx context.Context) []*Instrument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstrumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstrumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Instrument.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstrumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InstrumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *InstrumentUpsertBulk {
	_c.conflict = opts
	return &InstrumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Instrument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstrumentCreateBulk) OnConflictColumns(columns ...string) *InstrumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstrumentUpsertBulk{
		create: _c,
	}
}

// InstrumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Instrument nodes.
type InstrumentUpsertBulk struct {
	create *InstrumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Instrument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(instrument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstrumentUpsertBulk) UpdateNewValues() *InstrumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(instrument.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(instrument.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Instrument.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InstrumentUpsertBulk) Ignore() *InstrumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstrumentUpsertBulk) DoNothing() *InstrumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstrumentCreateBulk.OnConflict
// documentation for more info.
func (u *InstrumentUpsertBulk) Update(set func(*InstrumentUpsert)) *InstrumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstrumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InstrumentUpsertBulk) SetUpdatedAt(v time.Time) *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InstrumentUpsertBulk) UpdateUpdatedAt() *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSlug sets the "slug" field.
func (u *InstrumentUpsertBulk) SetSlug(v string) *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *InstrumentUpsertBulk) UpdateSlug() *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *InstrumentUpsertBulk) SetName(v string) *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *InstrumentUpsertBulk) UpdateName() *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *InstrumentUpsertBulk) SetDescription(v string) *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InstrumentUpsertBulk) UpdateDescription() *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InstrumentUpsertBulk) ClearDescription() *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.ClearDescription()
	})
}

// SetFocusArea sets the "focus_area" field.
func (u *InstrumentUpsertBulk) SetFocusArea(v string) *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetFocusArea(v)
	})
}

// UpdateFocusArea sets the "focus_area" field to the value that was provided on create.
func (u *InstrumentUpsertBulk) UpdateFocusArea() *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateFocusArea()
	})
}

// SetCurrentVersionID sets the "current_version_id" field.
func (u *InstrumentUpsertBulk) SetCurrentVersionID(v uuid.UUID) *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetCurrentVersionID(v)
	})
}

// UpdateCurrentVersionID sets the "current_version_id" field to the value that was provided on create.
func (u *InstrumentUpsertBulk) UpdateCurrentVersionID() *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateCurrentVersionID()
	})
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (u *InstrumentUpsertBulk) ClearCurrentVersionID() *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.ClearCurrentVersionID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *InstrumentUpsertBulk) SetIsActive(v bool) *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *InstrumentUpsertBulk) UpdateIsActive() *InstrumentUpsertBulk {
	return u.Update(func(s *InstrumentUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *InstrumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InstrumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InstrumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstrumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
