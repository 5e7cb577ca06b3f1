// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
	"github.com/marlowhealth/compass_backend/internal/repo/triage"
	"github.com/marlowhealth/compass_backend/internal/repo/triagegroup"
)

// TriageGroupUpdate is the builder for updating TriageGroup entities.
type TriageGroupUpdate struct {
	config
	hooks    []Hook
	mutation *TriageGroupMutation
}

// Where appends a list predicates to the TriageGroupUpdate builder.
func (_u *TriageGroupUpdate) Where(ps ...predicate.TriageGroup) *TriageGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientOrderID sets the "patient_order_id" field.
func (_u *TriageGroupUpdate) SetPatientOrderID(v uuid.UUID) *TriageGroupUpdate {
	_u.mutation.SetPatientOrderID(v)
	return _u
}

// SetNillablePatientOrderID sets the "patient_order_id" field if the given value is not nil.
func (_u *TriageGroupUpdate) SetNillablePatientOrderID(v *uuid.UUID) *TriageGroupUpdate {
	if v != nil {
		_u.SetPatientOrderID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TriageGroupUpdate) SetSessionID(v uuid.UUID) *TriageGroupUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TriageGroupUpdate) SetNillableSessionID(v *uuid.UUID) *TriageGroupUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TriageGroupUpdate) ClearSessionID() *TriageGroupUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSource sets the "source" field.
func (_u *TriageGroupUpdate) SetSource(v triagegroup.Source) *TriageGroupUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TriageGroupUpdate) SetNillableSource(v *triagegroup.Source) *TriageGroupUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCareCategory sets the "care_category" field.
func (_u *TriageGroupUpdate) SetCareCategory(v triagegroup.CareCategory) *TriageGroupUpdate {
	_u.mutation.SetCareCategory(v)
	return _u
}

// SetNillableCareCategory sets the "care_category" field if the given value is not nil.
func (_u *TriageGroupUpdate) SetNillableCareCategory(v *triagegroup.CareCategory) *TriageGroupUpdate {
	if v != nil {
		_u.SetCareCategory(*v)
	}
	return _u
}

// SetSafetyPlanningStatus sets the "safety_planning_status" field.
func (_u *TriageGroupUpdate) SetSafetyPlanningStatus(v triagegroup.SafetyPlanningStatus) *TriageGroupUpdate {
	_u.mutation.SetSafetyPlanningStatus(v)
	return _u
}

// SetNillableSafetyPlanningStatus sets the "safety_planning_status" field if the given value is not nil.
func (_u *TriageGroupUpdate) SetNillableSafetyPlanningStatus(v *triagegroup.SafetyPlanningStatus) *TriageGroupUpdate {
	if v != nil {
		_u.SetSafetyPlanningStatus(*v)
	}
	return _u
}

// SetOverrideReason sets the "override_reason" field.
func (_u *TriageGroupUpdate) SetOverrideReason(v string) *TriageGroupUpdate {
	_u.mutation.SetOverrideReason(v)
	return _u
}

// SetNillableOverrideReason sets the "override_reason" field if the given value is not nil.
func (_u *TriageGroupUpdate) SetNillableOverrideReason(v *string) *TriageGroupUpdate {
	if v != nil {
		_u.SetOverrideReason(*v)
	}
	return _u
}

// ClearOverrideReason clears the value of the "override_reason" field.
func (_u *TriageGroupUpdate) ClearOverrideReason() *TriageGroupUpdate {
	_u.mutation.ClearOverrideReason()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *TriageGroupUpdate) SetCreatedBy(v uuid.UUID) *TriageGroupUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *TriageGroupUpdate) SetNillableCreatedBy(v *uuid.UUID) *TriageGroupUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddTriageIDs adds the "triages" edge to the Triage entity by IDs.
func (_u *TriageGroupUpdate) AddTriageIDs(ids ...uuid.UUID) *TriageGroupUpdate {
	_u.mutation.AddTriageIDs(ids...)
	return _u
}

// AddTriages adds the "triages" edges to the Triage entity.
func (_u *TriageGroupUpdate) AddTriages(v ...*Triage) *TriageGroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTriageIDs(ids...)
}

// Mutation returns the TriageGroupMutation object of the builder.
func (_u *TriageGroupUpdate) Mutation() *TriageGroupMutation {
	return _u.mutation
}

// ClearTriages clears all "triages" edges to the Triage entity.
func (_u *TriageGroupUpdate) ClearTriages() *TriageGroupUpdate {
	_u.mutation.ClearTriages()
	return _u
}

// RemoveTriageIDs removes the "triages" edge to Triage entities by IDs.
func (_u *TriageGroupUpdate) RemoveTriageIDs(ids ...uuid.UUID) *TriageGroupUpdate {
	_u.mutation.RemoveTriageIDs(ids...)
	return _u
}

// RemoveTriages removes "triages" edges to Triage entities.
func (_u *TriageGroupUpdate) RemoveTriages(v ...*Triage) *TriageGroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTriageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriageGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriageGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageGroupUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := triagegroup.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "TriageGroup.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CareCategory(); ok {
		if err := triagegroup.CareCategoryValidator(v); err != nil {
			return &ValidationError{Name: "care_category", err: fmt.Errorf(`repo: validator failed for field "TriageGroup.care_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SafetyPlanningStatus(); ok {
		if err := triagegroup.SafetyPlanningStatusValidator(v); err != nil {
			return &ValidationError{Name: "safety_planning_status", err: fmt.Errorf(`repo: validator failed for field "TriageGroup.safety_planning_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriageGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triagegroup.Table, triagegroup.Columns, sqlgraph.NewFieldSpec(triagegroup.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientOrderID(); ok {
		_spec.SetField(triagegroup.FieldPatientOrderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(triagegroup.FieldSessionID, field.TypeUUID, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(triagegroup.FieldSessionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(triagegroup.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CareCategory(); ok {
		_spec.SetField(triagegroup.FieldCareCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SafetyPlanningStatus(); ok {
		_spec.SetField(triagegroup.FieldSafetyPlanningStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OverrideReason(); ok {
		_spec.SetField(triagegroup.FieldOverrideReason, field.TypeString, value)
	}
	if _u.mutation.OverrideReasonCleared() {
		_spec.ClearField(triagegroup.FieldOverrideReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(triagegroup.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.TriagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTriagesIDs(); len(nodes) > 0 && !_u.mutation.TriagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TriagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triagegroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriageGroupUpdateOne is the builder for updating a single TriageGroup entity.
type TriageGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriageGroupMutation
}

// SetPatientOrderID sets the "patient_order_id" field.
func (_u *TriageGroupUpdateOne) SetPatientOrderID(v uuid.UUID) *TriageGroupUpdateOne {
	_u.mutation.SetPatientOrderID(v)
	return _u
}

// SetNillablePatientOrderID sets the "patient_order_id" field if the given value is not nil.
func (_u *TriageGroupUpdateOne) SetNillablePatientOrderID(v *uuid.UUID) *TriageGroupUpdateOne {
	if v != nil {
		_u.SetPatientOrderID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TriageGroupUpdateOne) SetSessionID(v uuid.UUID) *TriageGroupUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TriageGroupUpdateOne) SetNillableSessionID(v *uuid.UUID) *TriageGroupUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TriageGroupUpdateOne) ClearSessionID() *TriageGroupUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSource sets the "source" field.
func (_u *TriageGroupUpdateOne) SetSource(v triagegroup.Source) *TriageGroupUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TriageGroupUpdateOne) SetNillableSource(v *triagegroup.Source) *TriageGroupUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCareCategory sets the "care_category" field.
func (_u *TriageGroupUpdateOne) SetCareCategory(v triagegroup.CareCategory) *TriageGroupUpdateOne {
	_u.mutation.SetCareCategory(v)
	return _u
}

// SetNillableCareCategory sets the "care_category" field if the given value is not nil.
func (_u *TriageGroupUpdateOne) SetNillableCareCategory(v *triagegroup.CareCategory) *TriageGroupUpdateOne {
	if v != nil {
		_u.SetCareCategory(*v)
	}
	return _u
}

// SetSafetyPlanningStatus sets the "safety_planning_status" field.
func (_u *TriageGroupUpdateOne) SetSafetyPlanningStatus(v triagegroup.SafetyPlanningStatus) *TriageGroupUpdateOne {
	_u.mutation.SetSafetyPlanningStatus(v)
	return _u
}

// SetNillableSafetyPlanningStatus sets the "safety_planning_status" field if the given value is not nil.
func (_u *TriageGroupUpdateOne) SetNillableSafetyPlanningStatus(v *triagegroup.SafetyPlanningStatus) *TriageGroupUpdateOne {
	if v != nil {
		_u.SetSafetyPlanningStatus(*v)
	}
	return _u
}

// SetOverrideReason sets the "override_reason" field.
func (_u *TriageGroupUpdateOne) SetOverrideReason(v string) *TriageGroupUpdateOne {
	_u.mutation.SetOverrideReason(v)
	return _u
}

// SetNillableOverrideReason sets the "override_reason" field if the given value is not nil.
func (_u *TriageGroupUpdateOne) SetNillableOverrideReason(v *string) *TriageGroupUpdateOne {
	if v != nil {
		_u.SetOverrideReason(*v)
	}
	return _u
}

// ClearOverrideReason clears the value of the "override_reason" field.
func (_u *TriageGroupUpdateOne) ClearOverrideReason() *TriageGroupUpdateOne {
	_u.mutation.ClearOverrideReason()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *TriageGroupUpdateOne) SetCreatedBy(v uuid.UUID) *TriageGroupUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *TriageGroupUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *TriageGroupUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddTriageIDs adds the "triages" edge to the Triage entity by IDs.
func (_u *TriageGroupUpdateOne) AddTriageIDs(ids ...uuid.UUID) *TriageGroupUpdateOne {
	_u.mutation.AddTriageIDs(ids...)
	return _u
}

// AddTriages adds the "triages" edges to the Triage entity.
func (_u *TriageGroupUpdateOne) AddTriages(v ...*Triage) *TriageGroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTriageIDs(ids...)
}

// Mutation returns the TriageGroupMutation object of the builder.
func (_u *TriageGroupUpdateOne) Mutation() *TriageGroupMutation {
	return _u.mutation
}

// ClearTriages clears all "triages" edges to the Triage entity.
func (_u *TriageGroupUpdateOne) ClearTriages() *TriageGroupUpdateOne {
	_u.mutation.ClearTriages()
	return _u
}

// RemoveTriageIDs removes the "triages" edge to Triage entities by IDs.
func (_u *TriageGroupUpdateOne) RemoveTriageIDs(ids ...uuid.UUID) *TriageGroupUpdateOne {
	_u.mutation.RemoveTriageIDs(ids...)
	return _u
}

// RemoveTriages removes "triages" edges to Triage entities.
func (_u *TriageGroupUpdateOne) RemoveTriages(v ...*Triage) *TriageGroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTriageIDs(ids...)
}

// Where appends a list predicates to the TriageGroupUpdate builder.
func (_u *TriageGroupUpdateOne) Where(ps ...predicate.TriageGroup) *TriageGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriageGroupUpdateOne) Select(field string, fields ...string) *TriageGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriageGroup entity.
func (_u *TriageGroupUpdateOne) Save(ctx context.Context) (*TriageGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageGroupUpdateOne) SaveX(ctx context.Context) *TriageGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriageGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := triagegroup.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "TriageGroup.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CareCategory(); ok {
		if err := triagegroup.CareCategoryValidator(v); err != nil {
			return &ValidationError{Name: "care_category", err: fmt.Errorf(`repo: validator failed for field "TriageGroup.care_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SafetyPlanningStatus(); ok {
		if err := triagegroup.SafetyPlanningStatusValidator(v); err != nil {
			return &ValidationError{Name: "safety_planning_status", err: fmt.Errorf(`repo: validator failed for field "TriageGroup.safety_planning_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriageGroupUpdateOne) sqlSave(ctx context.Context) (_node *TriageGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triagegroup.Table, triagegroup.Columns, sqlgraph.NewFieldSpec(triagegroup.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TriageGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triagegroup.FieldID)
		for _, f := range fields {
			if !triagegroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != triagegroup.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientOrderID(); ok {
		_spec.SetField(triagegroup.FieldPatientOrderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(triagegroup.FieldSessionID, field.TypeUUID, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(triagegroup.FieldSessionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(triagegroup.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CareCategory(); ok {
		_spec.SetField(triagegroup.FieldCareCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SafetyPlanningStatus(); ok {
		_spec.SetField(triagegroup.FieldSafetyPlanningStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OverrideReason(); ok {
		_spec.SetField(triagegroup.FieldOverrideReason, field.TypeString, value)
	}
	if _u.mutation.OverrideReasonCleared() {
		_spec.ClearField(triagegroup.FieldOverrideReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(triagegroup.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.TriagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTriagesIDs(); len(nodes) > 0 && !_u.mutation.TriagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TriagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TriageGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triagegroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
