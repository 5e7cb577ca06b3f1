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
	"github.com/marlowhealth/compass_backend/internal/repo/flow"
	"github.com/marlowhealth/compass_backend/internal/repo/flowversion"
)

// FlowCreate is the builder for creating a Flow entity.
type FlowCreate struct {
	config
	mutation *FlowMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlowCreate) SetCreatedAt(v time.Time) *FlowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlowCreate) SetNillableCreatedAt(v *time.Time) *FlowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FlowCreate) SetUpdatedAt(v time.Time) *FlowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FlowCreate) SetNillableUpdatedAt(v *time.Time) *FlowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSlug sets the "slug" field.
func (_c *FlowCreate) SetSlug(v string) *FlowCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FlowCreate) SetName(v string) *FlowCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *FlowCreate) SetDescription(v string) *FlowCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *FlowCreate) SetNillableDescription(v *string) *FlowCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCurrentVersionID sets the "current_version_id" field.
func (_c *FlowCreate) SetCurrentVersionID(v uuid.UUID) *FlowCreate {
	_c.mutation.SetCurrentVersionID(v)
	return _c
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (_c *FlowCreate) SetNillableCurrentVersionID(v *uuid.UUID) *FlowCreate {
	if v != nil {
		_c.SetCurrentVersionID(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *FlowCreate) SetIsActive(v bool) *FlowCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *FlowCreate) SetNillableIsActive(v *bool) *FlowCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FlowCreate) SetID(v uuid.UUID) *FlowCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FlowCreate) SetNillableID(v *uuid.UUID) *FlowCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVersionIDs adds the "versions" edge to the FlowVersion entity by IDs.
func (_c *FlowCreate) AddVersionIDs(ids ...uuid.UUID) *FlowCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the FlowVersion entity.
func (_c *FlowCreate) AddVersions(v ...*FlowVersion) *FlowCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// Mutation returns the FlowMutation object of the builder.
func (_c *FlowCreate) Mutation() *FlowMutation {
	return _c.mutation
}

// Save creates the Flow in the database.
func (_c *FlowCreate) Save(ctx context.Context) (*Flow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlowCreate) SaveX(ctx context.Context) *Flow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlowCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := flow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := flow.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := flow.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlowCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Flow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Flow.updated_at"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Flow.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := flow.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Flow.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Flow.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := flow.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Flow.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Flow.is_active"`)}
	}
	return nil
}

func (_c *FlowCreate) sqlSave(ctx context.Context) (*Flow, error) {
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

func (_c *FlowCreate) createSpec() (*Flow, *sqlgraph.CreateSpec) {
	var (
		_node = &Flow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flow.Table, sqlgraph.NewFieldSpec(flow.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(flow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(flow.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(flow.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(flow.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.CurrentVersionID(); ok {
		_spec.SetField(flow.FieldCurrentVersionID, field.TypeUUID, value)
		_node.CurrentVersionID = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(flow.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flow.VersionsTable,
			Columns: []string{flow.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flowversion.FieldID, field.TypeUUID),
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
//	client.Flow.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlowUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FlowCreate) OnConflict(opts ...sql.ConflictOption) *FlowUpsertOne {
	_c.conflict = opts
	return &FlowUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Flow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlowCreate) OnConflictColumns(columns ...string) *FlowUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlowUpsertOne{
		create: _c,
	}
}

type (
	// FlowUpsertOne is the builder for "upsert"-ing
	//  one Flow node.
	FlowUpsertOne struct {
		create *FlowCreate
	}

	// FlowUpsert is the "OnConflict" setter.
	FlowUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *FlowUpsert) SetUpdatedAt(v time.Time) *FlowUpsert {
	u.Set(flow.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FlowUpsert) UpdateUpdatedAt() *FlowUpsert {
	u.SetExcluded(flow.FieldUpdatedAt)
	return u
}

// SetSlug sets the "slug" field.
func (u *FlowUpsert) SetSlug(v string) *FlowUpsert {
	u.Set(flow.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *FlowUpsert) UpdateSlug() *FlowUpsert {
	u.SetExcluded(flow.FieldSlug)
	return u
}

// SetName sets the "name" field.
func (u *FlowUpsert) SetName(v string) *FlowUpsert {
	u.Set(flow.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FlowUpsert) UpdateName() *FlowUpsert {
	u.SetExcluded(flow.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *FlowUpsert) SetDescription(v string) *FlowUpsert {
	u.Set(flow.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *FlowUpsert) UpdateDescription() *FlowUpsert {
	u.SetExcluded(flow.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *FlowUpsert) ClearDescription() *FlowUpsert {
	u.SetNull(flow.FieldDescription)
	return u
}

// SetCurrentVersionID sets the "current_version_id" field.
func (u *FlowUpsert) SetCurrentVersionID(v uuid.UUID) *FlowUpsert {
	u.Set(flow.FieldCurrentVersionID, v)
	return u
}

// UpdateCurrentVersionID sets the "current_version_id" field to the value that was provided on create.
func (u *FlowUpsert) UpdateCurrentVersionID() *FlowUpsert {
	u.SetExcluded(flow.FieldCurrentVersionID)
	return u
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (u *FlowUpsert) ClearCurrentVersionID() *FlowUpsert {
	u.SetNull(flow.FieldCurrentVersionID)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *FlowUpsert) SetIsActive(v bool) *FlowUpsert {
	u.Set(flow.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *FlowUpsert) UpdateIsActive() *FlowUpsert {
	u.SetExcluded(flow.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Flow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(flow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FlowUpsertOne) UpdateNewValues() *FlowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(flow.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(flow.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Flow.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FlowUpsertOne) Ignore() *FlowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlowUpsertOne) DoNothing() *FlowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlowCreate.OnConflict
// documentation for more info.
func (u *FlowUpsertOne) Update(set func(*FlowUpsert)) *FlowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlowUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FlowUpsertOne) SetUpdatedAt(v time.Time) *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FlowUpsertOne) UpdateUpdatedAt() *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSlug sets the "slug" field.
func (u *FlowUpsertOne) SetSlug(v string) *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *FlowUpsertOne) UpdateSlug() *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *FlowUpsertOne) SetName(v string) *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FlowUpsertOne) UpdateName() *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *FlowUpsertOne) SetDescription(v string) *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *FlowUpsertOne) UpdateDescription() *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *FlowUpsertOne) ClearDescription() *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.ClearDescription()
	})
}

// SetCurrentVersionID sets the "current_version_id" field.
func (u *FlowUpsertOne) SetCurrentVersionID(v uuid.UUID) *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.SetCurrentVersionID(v)
	})
}

// UpdateCurrentVersionID sets the "current_version_id" field to the value that was provided on create.
func (u *FlowUpsertOne) UpdateCurrentVersionID() *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateCurrentVersionID()
	})
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (u *FlowUpsertOne) ClearCurrentVersionID() *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.ClearCurrentVersionID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *FlowUpsertOne) SetIsActive(v bool) *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *FlowUpsertOne) UpdateIsActive() *FlowUpsertOne {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *FlowUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FlowCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlowUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FlowUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: FlowUpsertOne.ID is not supported by MySQL driver. Use FlowUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FlowUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FlowCreateBulk is the builder for creating many Flow entities in bulk.
type FlowCreateBulk struct {
	config
	err      error
	builders []*FlowCreate
	conflict []sql.ConflictOption
}

// Save creates the Flow entities in the database.
func (_c *FlowCreateBulk) Save(ctx context.Context) ([]*Flow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlowMutation)
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
func (_c *FlowCreateBulk) SaveX(ctx context.Context) []*Flow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Flow.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlowUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FlowCreateBulk) OnConflict(opts ...sql.ConflictOption) *FlowUpsertBulk {
	_c.conflict = opts
	return &FlowUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Flow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlowCreateBulk) OnConflictColumns(columns ...string) *FlowUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlowUpsertBulk{
		create: _c,
	}
}

// FlowUpsertBulk is the builder for "upsert"-ing
// a bulk of Flow nodes.
type FlowUpsertBulk struct {
	create *FlowCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Flow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(flow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FlowUpsertBulk) UpdateNewValues() *FlowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(flow.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(flow.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Flow.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FlowUpsertBulk) Ignore() *FlowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlowUpsertBulk) DoNothing() *FlowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlowCreateBulk.OnConflict
// documentation for more info.
func (u *FlowUpsertBulk) Update(set func(*FlowUpsert)) *FlowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlowUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FlowUpsertBulk) SetUpdatedAt(v time.Time) *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FlowUpsertBulk) UpdateUpdatedAt() *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSlug sets the "slug" field.
func (u *FlowUpsertBulk) SetSlug(v string) *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *FlowUpsertBulk) UpdateSlug() *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *FlowUpsertBulk) SetName(v string) *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FlowUpsertBulk) UpdateName() *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *FlowUpsertBulk) SetDescription(v string) *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *FlowUpsertBulk) UpdateDescription() *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *FlowUpsertBulk) ClearDescription() *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.ClearDescription()
	})
}

// SetCurrentVersionID sets the "current_version_id" field.
func (u *FlowUpsertBulk) SetCurrentVersionID(v uuid.UUID) *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.SetCurrentVersionID(v)
	})
}

// UpdateCurrentVersionID sets the "current_version_id" field to the value that was provided on create.
func (u *FlowUpsertBulk) UpdateCurrentVersionID() *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateCurrentVersionID()
	})
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (u *FlowUpsertBulk) ClearCurrentVersionID() *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.ClearCurrentVersionID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *FlowUpsertBulk) SetIsActive(v bool) *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *FlowUpsertBulk) UpdateIsActive() *FlowUpsertBulk {
	return u.Update(func(s *FlowUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *FlowUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the FlowCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FlowCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlowUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
