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
	"github.com/marlowhealth/compass_backend/internal/repo/triage"
	"github.com/marlowhealth/compass_backend/internal/repo/triagegroup"
)

// TriageCreate is the builder for creating a Triage entity.
type TriageCreate struct {
	config
	mutation *TriageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriageCreate) SetCreatedAt(v time.Time) *TriageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriageCreate) SetNillableCreatedAt(v *time.Time) *TriageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTriageGroupID sets the "triage_group_id" field.
func (_c *TriageCreate) SetTriageGroupID(v uuid.UUID) *TriageCreate {
	_c.mutation.SetTriageGroupID(v)
	return _c
}

// SetFocusArea sets the "focus_area" field.
func (_c *TriageCreate) SetFocusArea(v string) *TriageCreate {
	_c.mutation.SetFocusArea(v)
	return _c
}

// SetCareCategory sets the "care_category" field.
func (_c *TriageCreate) SetCareCategory(v triage.CareCategory) *TriageCreate {
	_c.mutation.SetCareCategory(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *TriageCreate) SetReason(v string) *TriageCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *TriageCreate) SetNillableReason(v *string) *TriageCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriageCreate) SetID(v uuid.UUID) *TriageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TriageCreate) SetNillableID(v *uuid.UUID) *TriageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetGroupID sets the "group" edge to the TriageGroup entity by ID.
func (_c *TriageCreate) SetGroupID(id uuid.UUID) *TriageCreate {
	_c.mutation.SetGroupID(id)
	return _c
}

// SetGroup sets the "group" edge to the TriageGroup entity.
func (_c *TriageCreate) SetGroup(v *TriageGroup) *TriageCreate {
	return _c.SetGroupID(v.ID)
}

// Mutation returns the TriageMutation object of the builder.
func (_c *TriageCreate) Mutation() *TriageMutation {
	return _c.mutation
}

// Save creates the Triage in the database.
func (_c *TriageCreate) Save(ctx context.Context) (*Triage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriageCreate) SaveX(ctx context.Context) *Triage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := triage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Triage.created_at"`)}
	}
	if _, ok := _c.mutation.TriageGroupID(); !ok {
		return &ValidationError{Name: "triage_group_id", err: errors.New(`repo: missing required field "Triage.triage_group_id"`)}
	}
	if _, ok := _c.mutation.FocusArea(); !ok {
		return &ValidationError{Name: "focus_area", err: errors.New(`repo: missing required field "Triage.focus_area"`)}
	}
	if v, ok := _c.mutation.FocusArea(); ok {
		if err := triage.FocusAreaValidator(v); err != nil {
			return &ValidationError{Name: "focus_area", err: fmt.Errorf(`repo: validator failed for field "Triage.focus_area": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CareCategory(); !ok {
		return &ValidationError{Name: "care_category", err: errors.New(`repo: missing required field "Triage.care_category"`)}
	}
	if v, ok := _c.mutation.CareCategory(); ok {
		if err := triage.CareCategoryValidator(v); err != nil {
			return &ValidationError{Name: "care_category", err: fmt.Errorf(`repo: validator failed for field "Triage.care_category": %w`, err)}
		}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`repo: missing required edge "Triage.group"`)}
	}
	return nil
}

func (_c *TriageCreate) sqlSave(ctx context.Context) (*Triage, error) {
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

func (_c *TriageCreate) createSpec() (*Triage, *sqlgraph.CreateSpec) {
	var (
		_node = &Triage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triage.Table, sqlgraph.NewFieldSpec(triage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FocusArea(); ok {
		_spec.SetField(triage.FieldFocusArea, field.TypeString, value)
		_node.FocusArea = value
	}
	if value, ok := _c.mutation.CareCategory(); ok {
		_spec.SetField(triage.FieldCareCategory, field.TypeEnum, value)
		_node.CareCategory = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(triage.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   triage.GroupTable,
			Columns: []string{triage.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triagegroup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TriageGroupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Triage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TriageCreate) OnConflict(opts ...sql.ConflictOption) *TriageUpsertOne {
	_c.conflict = opts
	return &TriageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Triage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriageCreate) OnConflictColumns(columns ...string) *TriageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriageUpsertOne{
		create: _c,
	}
}

type (
	// TriageUpsertOne is the builder for "upsert"-ing
	//  one Triage node.
	TriageUpsertOne struct {
		create *TriageCreate
	}

	// TriageUpsert is the "OnConflict" setter.
	TriageUpsert struct {
		*sql.UpdateSet
	}
)

// SetTriageGroupID sets the "triage_group_id" field.
func (u *TriageUpsert) SetTriageGroupID(v uuid.UUID) *TriageUpsert {
	u.Set(triage.FieldTriageGroupID, v)
	return u
}

// UpdateTriageGroupID sets the "triage_group_id" field to the value that was provided on create.
func (u *TriageUpsert) UpdateTriageGroupID() *TriageUpsert {
	u.SetExcluded(triage.FieldTriageGroupID)
	return u
}

// SetFocusArea sets the "focus_area" field.
func (u *TriageUpsert) SetFocusArea(v string) *TriageUpsert {
	u.Set(triage.FieldFocusArea, v)
	return u
}

// UpdateFocusArea sets the "focus_area" field to the value that was provided on create.
func (u *TriageUpsert) UpdateFocusArea() *TriageUpsert {
	u.SetExcluded(triage.FieldFocusArea)
	return u
}

// SetCareCategory sets the "care_category" field.
func (u *TriageUpsert) SetCareCategory(v triage.CareCategory) *TriageUpsert {
	u.Set(triage.FieldCareCategory, v)
	return u
}

// UpdateCareCategory sets the "care_category" field to the value that was provided on create.
func (u *TriageUpsert) UpdateCareCategory() *TriageUpsert {
	u.SetExcluded(triage.FieldCareCategory)
	return u
}

// SetReason sets the "reason" field.
func (u *TriageUpsert) SetReason(v string) *TriageUpsert {
	u.Set(triage.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TriageUpsert) UpdateReason() *TriageUpsert {
	u.SetExcluded(triage.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *TriageUpsert) ClearReason() *TriageUpsert {
	u.SetNull(triage.FieldReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Triage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriageUpsertOne) UpdateNewValues() *TriageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(triage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(triage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Triage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TriageUpsertOne) Ignore() *TriageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriageUpsertOne) DoNothing() *TriageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriageCreate.OnConflict
// documentation for more info.
func (u *TriageUpsertOne) Update(set func(*TriageUpsert)) *TriageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriageUpsert{UpdateSet: update})
	}))
	return u
}

// SetTriageGroupID sets the "triage_group_id" field.
func (u *TriageUpsertOne) SetTriageGroupID(v uuid.UUID) *TriageUpsertOne {
	return u.Update(func(s *TriageUpsert) {
		s.SetTriageGroupID(v)
	})
}

// UpdateTriageGroupID sets the "triage_group_id" field to the value that was provided on create.
func (u *TriageUpsertOne) UpdateTriageGroupID() *TriageUpsertOne {
	return u.Update(func(s *TriageUpsert) {
		s.UpdateTriageGroupID()
	})
}

// SetFocusArea sets the "focus_area" field.
func (u *TriageUpsertOne) SetFocusArea(v string) *TriageUpsertOne {
	return u.Update(func(s *TriageUpsert) {
		s.SetFocusArea(v)
	})
}

// UpdateFocusArea sets the "focus_area" field to the value that was provided on create.
func (u *TriageUpsertOne) UpdateFocusArea() *TriageUpsertOne {
	return u.Update(func(s *TriageUpsert) {
		s.UpdateFocusArea()
	})
}

// SetCareCategory sets the "care_category" field.
func (u *TriageUpsertOne) SetCareCategory(v triage.CareCategory) *TriageUpsertOne {
	return u.Update(func(s *TriageUpsert) {
		s.SetCareCategory(v)
	})
}

// UpdateCareCategory sets the "care_category" field to the value that was provided on create.
func (u *TriageUpsertOne) UpdateCareCategory() *TriageUpsertOne {
	return u.Update(func(s *TriageUpsert) {
		s.UpdateCareCategory()
	})
}

// SetReason sets the "reason" field.
func (u *TriageUpsertOne) SetReason(v string) *TriageUpsertOne {
	return u.Update(func(s *TriageUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TriageUpsertOne) UpdateReason() *TriageUpsertOne {
	return u.Update(func(s *TriageUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *TriageUpsertOne) ClearReason() *TriageUpsertOne {
	return u.Update(func(s *TriageUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *TriageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TriageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TriageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TriageUpsertOne.ID is not supported by MySQL driver. Use TriageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TriageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TriageCreateBulk is the builder for creating many Triage entities in bulk.
type TriageCreateBulk struct {
	config
	err      error
	builders []*TriageCreate
	conflict []sql.ConflictOption
}

// Save creates the Triage entities in the database.
func (_c *TriageCreateBulk) Save(ctx context.Context) ([]*Triage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Triage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriageMutation)
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
func (_c *TriageCreateBulk) SaveX(ctx context.Context) []*Triage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Triage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TriageCreateBulk) OnConflict(opts ...sql.ConflictOption) *TriageUpsertBulk {
	_c.conflict = opts
	return &TriageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Triage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriageCreateBulk) OnConflictColumns(columns ...string) *TriageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriageUpsertBulk{
		create: _c,
	}
}

// TriageUpsertBulk is the builder for "upsert"-ing
// a bulk of Triage nodes.
type TriageUpsertBulk struct {
	create *TriageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Triage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriageUpsertBulk) UpdateNewValues() *TriageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(triage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(triage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Triage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TriageUpsertBulk) Ignore() *TriageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriageUpsertBulk) DoNothing() *TriageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriageCreateBulk.OnConflict
// documentation for more info.
func (u *TriageUpsertBulk) Update(set func(*TriageUpsert)) *TriageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriageUpsert{UpdateSet: update})
	}))
	return u
}

// SetTriageGroupID sets the "triage_group_id" field.
func (u *TriageUpsertBulk) SetTriageGroupID(v uuid.UUID) *TriageUpsertBulk {
	return u.Update(func(s *TriageUpsert) {
		s.SetTriageGroupID(v)
	})
}

// UpdateTriageGroupID sets the "triage_group_id" field to the value that was provided on create.
func (u *TriageUpsertBulk) UpdateTriageGroupID() *TriageUpsertBulk {
	return u.Update(func(s *TriageUpsert) {
		s.UpdateTriageGroupID()
	})
}

// SetFocusArea sets the "focus_area" field.
func (u *TriageUpsertBulk) SetFocusArea(v string) *TriageUpsertBulk {
	return u.Update(func(s *TriageUpsert) {
		s.SetFocusArea(v)
	})
}

// UpdateFocusArea sets the "focus_area" field to the value that was provided on create.
func (u *TriageUpsertBulk) UpdateFocusArea() *TriageUpsertBulk {
	return u.Update(func(s *TriageUpsert) {
		s.UpdateFocusArea()
	})
}

// SetCareCategory sets the "care_category" field.
func (u *TriageUpsertBulk) SetCareCategory(v triage.CareCategory) *TriageUpsertBulk {
	return u.Update(func(s *TriageUpsert) {
		s.SetCareCategory(v)
	})
}

// UpdateCareCategory sets the "care_category" field to the value that was provided on create.
func (u *TriageUpsertBulk) UpdateCareCategory() *TriageUpsertBulk {
	return u.Update(func(s *TriageUpsert) {
		s.UpdateCareCategory()
	})
}

// SetReason sets the "reason" field.
func (u *TriageUpsertBulk) SetReason(v string) *TriageUpsertBulk {
	return u.Update(func(s *TriageUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TriageUpsertBulk) UpdateReason() *TriageUpsertBulk {
	return u.Update(func(s *TriageUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *TriageUpsertBulk) ClearReason() *TriageUpsertBulk {
	return u.Update(func(s *TriageUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *TriageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TriageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TriageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
