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
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// FlowVersionCreate is the builder for creating a FlowVersion entity.
type FlowVersionCreate struct {
	config
	mutation *FlowVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlowVersionCreate) SetCreatedAt(v time.Time) *FlowVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlowVersionCreate) SetNillableCreatedAt(v *time.Time) *FlowVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFlowID sets the "flow_id" field.
func (_c *FlowVersionCreate) SetFlowID(v uuid.UUID) *FlowVersionCreate {
	_c.mutation.SetFlowID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *FlowVersionCreate) SetVersion(v int) *FlowVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetMandatory sets the "mandatory" field.
func (_c *FlowVersionCreate) SetMandatory(v bool) *FlowVersionCreate {
	_c.mutation.SetMandatory(v)
	return _c
}

// SetNillableMandatory sets the "mandatory" field if the given value is not nil.
func (_c *FlowVersionCreate) SetNillableMandatory(v *bool) *FlowVersionCreate {
	if v != nil {
		_c.SetMandatory(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *FlowVersionCreate) SetSteps(v []screening.FlowStep) *FlowVersionCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *FlowVersionCreate) SetPublishedAt(v time.Time) *FlowVersionCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FlowVersionCreate) SetID(v uuid.UUID) *FlowVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FlowVersionCreate) SetNillableID(v *uuid.UUID) *FlowVersionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFlow sets the "flow" edge to the Flow entity.
func (_c *FlowVersionCreate) SetFlow(v *Flow) *FlowVersionCreate {
	return _c.SetFlowID(v.ID)
}

// Mutation returns the FlowVersionMutation object of the builder.
func (_c *FlowVersionCreate) Mutation() *FlowVersionMutation {
	return _c.mutation
}

// Save creates the FlowVersion in the database.
func (_c *FlowVersionCreate) Save(ctx context.Context) (*FlowVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlowVersionCreate) SaveX(ctx context.Context) *FlowVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlowVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flowversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Mandatory(); !ok {
		v := flowversion.DefaultMandatory
		_c.mutation.SetMandatory(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := flowversion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlowVersionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "FlowVersion.created_at"`)}
	}
	if _, ok := _c.mutation.FlowID(); !ok {
		return &ValidationError{Name: "flow_id", err: errors.New(`repo: missing required field "FlowVersion.flow_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`repo: missing required field "FlowVersion.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := flowversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "FlowVersion.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mandatory(); !ok {
		return &ValidationError{Name: "mandatory", err: errors.New(`repo: missing required field "FlowVersion.mandatory"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`repo: missing required field "FlowVersion.steps"`)}
	}
	if _, ok := _c.mutation.PublishedAt(); !ok {
		return &ValidationError{Name: "published_at", err: errors.New(`repo: missing required field "FlowVersion.published_at"`)}
	}
	if len(_c.mutation.FlowIDs()) == 0 {
		return &ValidationError{Name: "flow", err: errors.New(`repo: missing required edge "FlowVersion.flow"`)}
	}
	return nil
}

func (_c *FlowVersionCreate) sqlSave(ctx context.Context) (*FlowVersion, error) {
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

func (_c *FlowVersionCreate) createSpec() (*FlowVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &FlowVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flowversion.Table, sqlgraph.NewFieldSpec(flowversion.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flowversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(flowversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Mandatory(); ok {
		_spec.SetField(flowversion.FieldMandatory, field.TypeBool, value)
		_node.Mandatory = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(flowversion.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(flowversion.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = value
	}
	if nodes := _c.mutation.FlowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flowversion.FlowTable,
			Columns: []string{flowversion.FlowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FlowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FlowVersion.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlowVersionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FlowVersionCreate) OnConflict(opts ...sql.ConflictOption) *FlowVersionUpsertOne {
	_c.conflict = opts
	return &FlowVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FlowVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlowVersionCreate) OnConflictColumns(columns ...string) *FlowVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlowVersionUpsertOne{
		create: _c,
	}
}

type (
	// FlowVersionUpsertOne is the builder for "upsert"-ing
	//  one FlowVersion node.
	FlowVersionUpsertOne struct {
		create *FlowVersionCreate
	}

	// FlowVersionUpsert is the "OnConflict" setter.
	FlowVersionUpsert struct {
		*sql.UpdateSet
	}
)

// SetFlowID sets the "flow_id" field.
func (u *FlowVersionUpsert) SetFlowID(v uuid.UUID) *FlowVersionUpsert {
	u.Set(flowversion.FieldFlowID, v)
	return u
}

// UpdateFlowID sets the "flow_id" field to the value that was provided on create.
func (u *FlowVersionUpsert) UpdateFlowID() *FlowVersionUpsert {
	u.SetExcluded(flowversion.FieldFlowID)
	return u
}

// SetVersion sets the "version" field.
func (u *FlowVersionUpsert) SetVersion(v int) *FlowVersionUpsert {
	u.Set(flowversion.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *FlowVersionUpsert) UpdateVersion() *FlowVersionUpsert {
	u.SetExcluded(flowversion.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *FlowVersionUpsert) AddVersion(v int) *FlowVersionUpsert {
	u.Add(flowversion.FieldVersion, v)
	return u
}

// SetMandatory sets the "mandatory" field.
func (u *FlowVersionUpsert) SetMandatory(v bool) *FlowVersionUpsert {
	u.Set(flowversion.FieldMandatory, v)
	return u
}

// UpdateMandatory sets the "mandatory" field to the value that was provided on create.
func (u *FlowVersionUpsert) UpdateMandatory() *FlowVersionUpsert {
	u.SetExcluded(flowversion.FieldMandatory)
	return u
}

// SetSteps sets the "steps" field.
func (u *FlowVersionUpsert) SetSteps(v []screening.FlowStep) *FlowVersionUpsert {
	u.Set(flowversion.FieldSteps, v)
	return u
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *FlowVersionUpsert) UpdateSteps() *FlowVersionUpsert {
	u.SetExcluded(flowversion.FieldSteps)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FlowVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(flowversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FlowVersionUpsertOne) UpdateNewValues() *FlowVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(flowversion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(flowversion.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.PublishedAt(); exists {
			s.SetIgnore(flowversion.FieldPublishedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FlowVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FlowVersionUpsertOne) Ignore() *FlowVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlowVersionUpsertOne) DoNothing() *FlowVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlowVersionCreate.OnConflict
// documentation for more info.
func (u *FlowVersionUpsertOne) Update(set func(*FlowVersionUpsert)) *FlowVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlowVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetFlowID sets the "flow_id" field.
func (u *FlowVersionUpsertOne) SetFlowID(v uuid.UUID) *FlowVersionUpsertOne {
	return u.Update(func(s *FlowVersionUpsert) {
		s.SetFlowID(v)
	})
}

// UpdateFlowID sets the "flow_id" field to the value that was provided on create.
func (u *FlowVersionUpsertOne) UpdateFlowID() *FlowVersionUpsertOne {
	return u.Update(func(s *FlowVersionUpsert) {
		s.UpdateFlowID()
	})
}

// SetVersion sets the "version" field.
func (u *FlowVersionUpsertOne) SetVersion(v int) *FlowVersionUpsertOne {
	return u.Update(func(s *FlowVersionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *FlowVersionUpsertOne) AddVersion(v int) *FlowVersionUpsertOne {
	return u.Update(func(s *FlowVersionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *FlowVersionUpsertOne) UpdateVersion() *FlowVersionUpsertOne {
	return u.Update(func(s *FlowVersionUpsert) {
		s.UpdateVersion()
	})
}

// SetMandatory sets the "mandatory" field.
func (u *FlowVersionUpsertOne) SetMandatory(v bool) *FlowVersionUpsertOne {
	return u.Update(func(s *FlowVersionUpsert) {
		s.SetMandatory(v)
	})
}

// UpdateMandatory sets the "mandatory" field to the value that was provided on create.
func (u *FlowVersionUpsertOne) UpdateMandatory() *FlowVersionUpsertOne {
	return u.Update(func(s *FlowVersionUpsert) {
		s.UpdateMandatory()
	})
}

// SetSteps sets the "steps" field.
func (u *FlowVersionUpsertOne) SetSteps(v []screening.FlowStep) *FlowVersionUpsertOne {
	return u.Update(func(s *FlowVersionUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *FlowVersionUpsertOne) UpdateSteps() *FlowVersionUpsertOne {
	return u.Update(func(s *FlowVersionUpsert) {
		s.UpdateSteps()
	})
}

// Exec executes the query.
func (u *FlowVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FlowVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlowVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FlowVersionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: FlowVersionUpsertOne.ID is not supported by MySQL driver. Use FlowVersionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FlowVersionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FlowVersionCreateBulk is the builder for creating many FlowVersion entities in bulk.
type FlowVersionCreateBulk struct {
	config
	err      error
	builders []*FlowVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the FlowVersion entities in the database.
func (_c *FlowVersionCreateBulk) Save(ctx context.Context) ([]*FlowVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FlowVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlowVersionMutation)
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
func (_c *FlowVersionCreateBulk) SaveX(ctx context.Context) []*FlowVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FlowVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlowVersionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FlowVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *FlowVersionUpsertBulk {
	_c.conflict = opts
	return &FlowVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FlowVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlowVersionCreateBulk) OnConflictColumns(columns ...string) *FlowVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlowVersionUpsertBulk{
		create: _c,
	}
}

// FlowVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of FlowVersion nodes.
type FlowVersionUpsertBulk struct {
	create *FlowVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FlowVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(flowversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FlowVersionUpsertBulk) UpdateNewValues() *FlowVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(flowversion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(flowversion.FieldCreatedAt)
			}
			if _, exists := b.mutation.PublishedAt(); exists {
				s.SetIgnore(flowversion.FieldPublishedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FlowVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FlowVersionUpsertBulk) Ignore() *FlowVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlowVersionUpsertBulk) DoNothing() *FlowVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlowVersionCreateBulk.OnConflict
// documentation for more info.
func (u *FlowVersionUpsertBulk) Update(set func(*FlowVersionUpsert)) *FlowVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlowVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetFlowID sets the "flow_id" field.
func (u *FlowVersionUpsertBulk) SetFlowID(v uuid.UUID) *FlowVersionUpsertBulk {
	return u.Update(func(s *FlowVersionUpsert) {
		s.SetFlowID(v)
	})
}

// UpdateFlowID sets the "flow_id" field to the value that was provided on create.
func (u *FlowVersionUpsertBulk) UpdateFlowID() *FlowVersionUpsertBulk {
	return u.Update(func(s *FlowVersionUpsert) {
		s.UpdateFlowID()
	})
}

// SetVersion sets the "version" field.
func (u *FlowVersionUpsertBulk) SetVersion(v int) *FlowVersionUpsertBulk {
	return u.Update(func(s *FlowVersionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *FlowVersionUpsertBulk) AddVersion(v int) *FlowVersionUpsertBulk {
	return u.Update(func(s *FlowVersionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *FlowVersionUpsertBulk) UpdateVersion() *FlowVersionUpsertBulk {
	return u.Update(func(s *FlowVersionUpsert) {
		s.UpdateVersion()
	})
}

// SetMandatory sets the "mandatory" field.
func (u *FlowVersionUpsertBulk) SetMandatory(v bool) *FlowVersionUpsertBulk {
	return u.Update(func(s *FlowVersionUpsert) {
		s.SetMandatory(v)
	})
}

// UpdateMandatory sets the "mandatory" field to the value that was provided on create.
func (u *FlowVersionUpsertBulk) UpdateMandatory() *FlowVersionUpsertBulk {
	return u.Update(func(s *FlowVersionUpsert) {
		s.UpdateMandatory()
	})
}

// SetSteps sets the "steps" field.
func (u *FlowVersionUpsertBulk) SetSteps(v []screening.FlowStep) *FlowVersionUpsertBulk {
	return u.Update(func(s *FlowVersionUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *FlowVersionUpsertBulk) UpdateSteps() *FlowVersionUpsertBulk {
	return u.Update(func(s *FlowVersionUpsert) {
		s.UpdateSteps()
	})
}

// Exec executes the query.
func (u *FlowVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the FlowVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FlowVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlowVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
