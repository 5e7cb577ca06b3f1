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

// TriageGroupCreate is the builder for creating a TriageGroup entity.
type TriageGroupCreate struct {
	config
	mutation *TriageGroupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriageGroupCreate) SetCreatedAt(v time.Time) *TriageGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriageGroupCreate) SetNillableCreatedAt(v *time.Time) *TriageGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientOrderID sets the "patient_order_id" field.
func (_c *TriageGroupCreate) SetPatientOrderID(v uuid.UUID) *TriageGroupCreate {
	_c.mutation.SetPatientOrderID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TriageGroupCreate) SetSessionID(v uuid.UUID) *TriageGroupCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *TriageGroupCreate) SetNillableSessionID(v *uuid.UUID) *TriageGroupCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *TriageGroupCreate) SetSource(v triagegroup.Source) *TriageGroupCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetCareCategory sets the "care_category" field.
func (_c *TriageGroupCreate) SetCareCategory(v triagegroup.CareCategory) *TriageGroupCreate {
	_c.mutation.SetCareCategory(v)
	return _c
}

// SetSafetyPlanningStatus sets the "safety_planning_status" field.
func (_c *TriageGroupCreate) SetSafetyPlanningStatus(v triagegroup.SafetyPlanningStatus) *TriageGroupCreate {
	_c.mutation.SetSafetyPlanningStatus(v)
	return _c
}

// SetNillableSafetyPlanningStatus sets the "safety_planning_status" field if the given value is not nil.
func (_c *TriageGroupCreate) SetNillableSafetyPlanningStatus(v *triagegroup.SafetyPlanningStatus) *TriageGroupCreate {
	if v != nil {
		_c.SetSafetyPlanningStatus(*v)
	}
	return _c
}

// SetOverrideReason sets the "override_reason" field.
func (_c *TriageGroupCreate) SetOverrideReason(v string) *TriageGroupCreate {
	_c.mutation.SetOverrideReason(v)
	return _c
}

// SetNillableOverrideReason sets the "override_reason" field if the given value is not nil.
func (_c *TriageGroupCreate) SetNillableOverrideReason(v *string) *TriageGroupCreate {
	if v != nil {
		_c.SetOverrideReason(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *TriageGroupCreate) SetCreatedBy(v uuid.UUID) *TriageGroupCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TriageGroupCreate) SetID(v uuid.UUID) *TriageGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TriageGroupCreate) SetNillableID(v *uuid.UUID) *TriageGroupCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddTriageIDs adds the "triages" edge to the Triage entity by IDs.
func (_c *TriageGroupCreate) AddTriageIDs(ids ...uuid.UUID) *TriageGroupCreate {
	_c.mutation.AddTriageIDs(ids...)
	return _c
}

// AddTriages adds the "triages" edges to the Triage entity.
func (_c *TriageGroupCreate) AddTriages(v ...*Triage) *TriageGroupCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTriageIDs(ids...)
}

// Mutation returns the TriageGroupMutation object of the builder.
func (_c *TriageGroupCreate) Mutation() *TriageGroupMutation {
	return _c.mutation
}

// Save creates the TriageGroup in the database.
func (_c *TriageGroupCreate) Save(ctx context.Context) (*TriageGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriageGroupCreate) SaveX(ctx context.Context) *TriageGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriageGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriageGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriageGroupCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triagegroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.SafetyPlanningStatus(); !ok {
		v := triagegroup.DefaultSafetyPlanningStatus
		_c.mutation.SetSafetyPlanningStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := triagegroup.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriageGroupCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TriageGroup.created_at"`)}
	}
	if _, ok := _c.mutation.PatientOrderID(); !ok {
		return &ValidationError{Name: "patient_order_id", err: errors.New(`repo: missing required field "TriageGroup.patient_order_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`repo: missing required field "TriageGroup.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := triagegroup.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "TriageGroup.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CareCategory(); !ok {
		return &ValidationError{Name: "care_category", err: errors.New(`repo: missing required field "TriageGroup.care_category"`)}
	}
	if v, ok := _c.mutation.CareCategory(); ok {
		if err := triagegroup.CareCategoryValidator(v); err != nil {
			return &ValidationError{Name: "care_category", err: fmt.Errorf(`repo: validator failed for field "TriageGroup.care_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SafetyPlanningStatus(); !ok {
		return &ValidationError{Name: "safety_planning_status", err: errors.New(`repo: missing required field "TriageGroup.safety_planning_status"`)}
	}
	if v, ok := _c.mutation.SafetyPlanningStatus(); ok {
		if err := triagegroup.SafetyPlanningStatusValidator(v); err != nil {
			return &ValidationError{Name: "safety_planning_status", err: fmt.Errorf(`repo: validator failed for field "TriageGroup.safety_planning_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`repo: missing required field "TriageGroup.created_by"`)}
	}
	return nil
}

func (_c *TriageGroupCreate) sqlSave(ctx context.Context) (*TriageGroup, error) {
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

func (_c *TriageGroupCreate) createSpec() (*TriageGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &TriageGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triagegroup.Table, sqlgraph.NewFieldSpec(triagegroup.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triagegroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientOrderID(); ok {
		_spec.SetField(triagegroup.FieldPatientOrderID, field.TypeUUID, value)
		_node.PatientOrderID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(triagegroup.FieldSessionID, field.TypeUUID, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(triagegroup.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CareCategory(); ok {
		_spec.SetField(triagegroup.FieldCareCategory, field.TypeEnum, value)
		_node.CareCategory = value
	}
	if value, ok := _c.mutation.SafetyPlanningStatus(); ok {
		_spec.SetField(triagegroup.FieldSafetyPlanningStatus, field.TypeEnum, value)
		_node.SafetyPlanningStatus = value
	}
	if value, ok := _c.mutation.OverrideReason(); ok {
		_spec.SetField(triagegroup.FieldOverrideReason, field.TypeString, value)
		_node.OverrideReason = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(triagegroup.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.TriagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   triagegroup.TriagesTable,
			Columns: []string{triagegroup.TriagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triage.FieldID, field.TypeUUID),
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
//	client.TriageGroup.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriageGroupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TriageGroupCreate) OnConflict(opts ...sql.ConflictOption) *TriageGroupUpsertOne {
	_c.conflict = opts
	return &TriageGroupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TriageGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriageGroupCreate) OnConflictColumns(columns ...string) *TriageGroupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriageGroupUpsertOne{
		create: _c,
	}
}

type (
	// TriageGroupUpsertOne is the builder for "upsert"-ing
	//  one TriageGroup node.
	TriageGroupUpsertOne struct {
		create *TriageGroupCreate
	}

	// TriageGroupUpsert is the "OnConflict" setter.
	TriageGroupUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientOrderID sets the "patient_order_id" field.
func (u *TriageGroupUpsert) SetPatientOrderID(v uuid.UUID) *TriageGroupUpsert {
	u.Set(triagegroup.FieldPatientOrderID, v)
	return u
}

// UpdatePatientOrderID sets the "patient_order_id" field to the value that was provided on create.
func (u *TriageGroupUpsert) UpdatePatientOrderID() *TriageGroupUpsert {
	u.SetExcluded(triagegroup.FieldPatientOrderID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TriageGroupUpsert) SetSessionID(v uuid.UUID) *TriageGroupUpsert {
	u.Set(triagegroup.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TriageGroupUpsert) UpdateSessionID() *TriageGroupUpsert {
	u.SetExcluded(triagegroup.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *TriageGroupUpsert) ClearSessionID() *TriageGroupUpsert {
	u.SetNull(triagegroup.FieldSessionID)
	return u
}

// SetSource sets the "source" field.
func (u *TriageGroupUpsert) SetSource(v triagegroup.Source) *TriageGroupUpsert {
	u.Set(triagegroup.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *TriageGroupUpsert) UpdateSource() *TriageGroupUpsert {
	u.SetExcluded(triagegroup.FieldSource)
	return u
}

// SetCareCategory sets the "care_category" field.
func (u *TriageGroupUpsert) SetCareCategory(v triagegroup.CareCategory) *TriageGroupUpsert {
	u.Set(triagegroup.FieldCareCategory, v)
	return u
}

// UpdateCareCategory sets the "care_category" field to the value that was provided on create.
func (u *TriageGroupUpsert) UpdateCareCategory() *TriageGroupUpsert {
	u.SetExcluded(triagegroup.FieldCareCategory)
	return u
}

// SetSafetyPlanningStatus sets the "safety_planning_status" field.
func (u *TriageGroupUpsert) SetSafetyPlanningStatus(v triagegroup.SafetyPlanningStatus) *TriageGroupUpsert {
	u.Set(triagegroup.FieldSafetyPlanningStatus, v)
	return u
}

// UpdateSafetyPlanningStatus sets the "safety_planning_status" field to the value that was provided on create.
func (u *TriageGroupUpsert) UpdateSafetyPlanningStatus() *TriageGroupUpsert {
	u.SetExcluded(triagegroup.FieldSafetyPlanningStatus)
	return u
}

// SetOverrideReason sets the "override_reason" field.
func (u *TriageGroupUpsert) SetOverrideReason(v string) *TriageGroupUpsert {
	u.Set(triagegroup.FieldOverrideReason, v)
	return u
}

// UpdateOverrideReason sets the "override_reason" field to the value that was provided on create.
func (u *TriageGroupUpsert) UpdateOverrideReason() *TriageGroupUpsert {
	u.SetExcluded(triagegroup.FieldOverrideReason)
	return u
}

// ClearOverrideReason clears the value of the "override_reason" field.
func (u *TriageGroupUpsert) ClearOverrideReason() *TriageGroupUpsert {
	u.SetNull(triagegroup.FieldOverrideReason)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *TriageGroupUpsert) SetCreatedBy(v uuid.UUID) *TriageGroupUpsert {
	u.Set(triagegroup.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *TriageGroupUpsert) UpdateCreatedBy() *TriageGroupUpsert {
	u.SetExcluded(triagegroup.FieldCreatedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TriageGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triagegroup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriageGroupUpsertOne) UpdateNewValues() *TriageGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(triagegroup.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(triagegroup.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TriageGroup.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TriageGroupUpsertOne) Ignore() *TriageGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriageGroupUpsertOne) DoNothing() *TriageGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriageGroupCreate.OnConflict
// documentation for more info.
func (u *TriageGroupUpsertOne) Update(set func(*TriageGroupUpsert)) *TriageGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriageGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientOrderID sets the "patient_order_id" field.
func (u *TriageGroupUpsertOne) SetPatientOrderID(v uuid.UUID) *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetPatientOrderID(v)
	})
}

// UpdatePatientOrderID sets the "patient_order_id" field to the value that was provided on create.
func (u *TriageGroupUpsertOne) UpdatePatientOrderID() *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdatePatientOrderID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *TriageGroupUpsertOne) SetSessionID(v uuid.UUID) *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TriageGroupUpsertOne) UpdateSessionID() *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *TriageGroupUpsertOne) ClearSessionID() *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.ClearSessionID()
	})
}

// SetSource sets the "source" field.
func (u *TriageGroupUpsertOne) SetSource(v triagegroup.Source) *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *TriageGroupUpsertOne) UpdateSource() *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateSource()
	})
}

// SetCareCategory sets the "care_category" field.
func (u *TriageGroupUpsertOne) SetCareCategory(v triagegroup.CareCategory) *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetCareCategory(v)
	})
}

// UpdateCareCategory sets the "care_category" field to the value that was provided on create.
func (u *TriageGroupUpsertOne) UpdateCareCategory() *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateCareCategory()
	})
}

// SetSafetyPlanningStatus sets the "safety_planning_status" field.
func (u *TriageGroupUpsertOne) SetSafetyPlanningStatus(v triagegroup.SafetyPlanningStatus) *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetSafetyPlanningStatus(v)
	})
}

// UpdateSafetyPlanningStatus sets the "safety_planning_status" field to the value that was provided on create.
func (u *TriageGroupUpsertOne) UpdateSafetyPlanningStatus() *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateSafetyPlanningStatus()
	})
}

// SetOverrideReason sets the "override_reason" field.
func (u *TriageGroupUpsertOne) SetOverrideReason(v string) *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetOverrideReason(v)
	})
}

// UpdateOverrideReason sets the "override_reason" field to the value that was provided on create.
func (u *TriageGroupUpsertOne) UpdateOverrideReason() *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateOverrideReason()
	})
}

// ClearOverrideReason clears the value of the "override_reason" field.
func (u *TriageGroupUpsertOne) ClearOverrideReason() *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.ClearOverrideReason()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *TriageGroupUpsertOne) SetCreatedBy(v uuid.UUID) *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *TriageGroupUpsertOne) UpdateCreatedBy() *TriageGroupUpsertOne {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateCreatedBy()
	})
}

// Exec executes the query.
func (u *TriageGroupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TriageGroupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriageGroupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TriageGroupUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TriageGroupUpsertOne.ID is not supported by MySQL driver. Use TriageGroupUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TriageGroupUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TriageGroupCreateBulk is the builder for creating many TriageGroup entities in bulk.
type TriageGroupCreateBulk struct {
	config
	err      error
	builders []*TriageGroupCreate
	conflict []sql.ConflictOption
}

// Save creates the TriageGroup entities in the database.
func (_c *TriageGroupCreateBulk) Save(ctx context.Context) ([]*TriageGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriageGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriageGroupMutation)
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
func (_c *TriageGroupCreateBulk) SaveX(ctx context.Context) []*TriageGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriageGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriageGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TriageGroup.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriageGroupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TriageGroupCreateBulk) OnConflict(opts ...sql.ConflictOption) *TriageGroupUpsertBulk {
	_c.conflict = opts
	return &TriageGroupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TriageGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriageGroupCreateBulk) OnConflictColumns(columns ...string) *TriageGroupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriageGroupUpsertBulk{
		create: _c,
	}
}

// TriageGroupUpsertBulk is the builder for "upsert"-ing
// a bulk of TriageGroup nodes.
type TriageGroupUpsertBulk struct {
	create *TriageGroupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TriageGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triagegroup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriageGroupUpsertBulk) UpdateNewValues() *TriageGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(triagegroup.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(triagegroup.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TriageGroup.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TriageGroupUpsertBulk) Ignore() *TriageGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriageGroupUpsertBulk) DoNothing() *TriageGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriageGroupCreateBulk.OnConflict
// documentation for more info.
func (u *TriageGroupUpsertBulk) Update(set func(*TriageGroupUpsert)) *TriageGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriageGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientOrderID sets the "patient_order_id" field.
func (u *TriageGroupUpsertBulk) SetPatientOrderID(v uuid.UUID) *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetPatientOrderID(v)
	})
}

// UpdatePatientOrderID sets the "patient_order_id" field to the value that was provided on create.
func (u *TriageGroupUpsertBulk) UpdatePatientOrderID() *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdatePatientOrderID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *TriageGroupUpsertBulk) SetSessionID(v uuid.UUID) *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TriageGroupUpsertBulk) UpdateSessionID() *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *TriageGroupUpsertBulk) ClearSessionID() *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.ClearSessionID()
	})
}

// SetSource sets the "source" field.
func (u *TriageGroupUpsertBulk) SetSource(v triagegroup.Source) *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *TriageGroupUpsertBulk) UpdateSource() *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateSource()
	})
}

// SetCareCategory sets the "care_category" field.
func (u *TriageGroupUpsertBulk) SetCareCategory(v triagegroup.CareCategory) *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetCareCategory(v)
	})
}

// UpdateCareCategory sets the "care_category" field to the value that was provided on create.
func (u *TriageGroupUpsertBulk) UpdateCareCategory() *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateCareCategory()
	})
}

// SetSafetyPlanningStatus sets the "safety_planning_status" field.
func (u *TriageGroupUpsertBulk) SetSafetyPlanningStatus(v triagegroup.SafetyPlanningStatus) *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetSafetyPlanningStatus(v)
	})
}

// UpdateSafetyPlanningStatus sets the "safety_planning_status" field to the value that was provided on create.
func (u *TriageGroupUpsertBulk) UpdateSafetyPlanningStatus() *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateSafetyPlanningStatus()
	})
}

// SetOverrideReason sets the "override_reason" field.
func (u *TriageGroupUpsertBulk) SetOverrideReason(v string) *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetOverrideReason(v)
	})
}

// UpdateOverrideReason sets the "override_reason" field to the value that was provided on create.
func (u *TriageGroupUpsertBulk) UpdateOverrideReason() *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateOverrideReason()
	})
}

// ClearOverrideReason clears the value of the "override_reason" field.
func (u *TriageGroupUpsertBulk) ClearOverrideReason() *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.ClearOverrideReason()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *TriageGroupUpsertBulk) SetCreatedBy(v uuid.UUID) *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *TriageGroupUpsertBulk) UpdateCreatedBy() *TriageGroupUpsertBulk {
	return u.Update(func(s *TriageGroupUpsert) {
		s.UpdateCreatedBy()
	})
}

// Exec executes the query.
func (u *TriageGroupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TriageGroupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TriageGroupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriageGroupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
