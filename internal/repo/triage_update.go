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

// TriageUpdate is the builder for updating Triage entities.
type TriageUpdate struct {
	config
	hooks    []Hook
	mutation *TriageMutation
}

// Where appends a list predicates to the TriageUpdate builder.
func (_u *TriageUpdate) Where(ps ...predicate.Triage) *TriageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTriageGroupID sets the "triage_group_id" field.
func (_u *TriageUpdate) SetTriageGroupID(v uuid.UUID) *TriageUpdate {
	_u.mutation.SetTriageGroupID(v)
	return _u
}

// SetNillableTriageGroupID sets the "triage_group_id" field if the given value is not nil.
func (_u *TriageUpdate) SetNillableTriageGroupID(v *uuid.UUID) *TriageUpdate {
	if v != nil {
		_u.SetTriageGroupID(*v)
	}
	return _u
}

// SetFocusArea sets the "focus_area" field.
func (_u *TriageUpdate) SetFocusArea(v string) *TriageUpdate {
	_u.mutation.SetFocusArea(v)
	return _u
}

// SetNillableFocusArea sets the "focus_area" field if the given value is not nil.
func (_u *TriageUpdate) SetNillableFocusArea(v *string) *TriageUpdate {
	if v != nil {
		_u.SetFocusArea(*v)
	}
	return _u
}

// SetCareCategory sets the "care_category" field.
func (_u *TriageUpdate) SetCareCategory(v triage.CareCategory) *TriageUpdate {
	_u.mutation.SetCareCategory(v)
	return _u
}

// SetNillableCareCategory sets the "care_category" field if the given value is not nil.
func (_u *TriageUpdate) SetNillableCareCategory(v *triage.CareCategory) *TriageUpdate {
	if v != nil {
		_u.SetCareCategory(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TriageUpdate) SetReason(v string) *TriageUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TriageUpdate) SetNillableReason(v *string) *TriageUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *TriageUpdate) ClearReason() *TriageUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetGroupID sets the "group" edge to the TriageGroup entity by ID.
func (_u *TriageUpdate) SetGroupID(id uuid.UUID) *TriageUpdate {
	_u.mutation.SetGroupID(id)
	return _u
}

// SetGroup sets the "group" edge to the TriageGroup entity.
func (_u *TriageUpdate) SetGroup(v *TriageGroup) *TriageUpdate {
	return _u.SetGroupID(v.ID)
}

// Mutation returns the TriageMutation object of the builder.
func (_u *TriageUpdate) Mutation() *TriageMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the TriageGroup entity.
func (_u *TriageUpdate) ClearGroup() *TriageUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageUpdate) check() error {
	if v, ok := _u.mutation.FocusArea(); ok {
		if err := triage.FocusAreaValidator(v); err != nil {
			return &ValidationError{Name: "focus_area", err: fmt.Errorf(`repo: validator failed for field "Triage.focus_area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CareCategory(); ok {
		if err := triage.CareCategoryValidator(v); err != nil {
			return &ValidationError{Name: "care_category", err: fmt.Errorf(`repo: validator failed for field "Triage.care_category": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Triage.group"`)
	}
	return nil
}

func (_u *TriageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triage.Table, triage.Columns, sqlgraph.NewFieldSpec(triage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FocusArea(); ok {
		_spec.SetField(triage.FieldFocusArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.CareCategory(); ok {
		_spec.SetField(triage.FieldCareCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(triage.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(triage.FieldReason, field.TypeString)
	}
	if _u.mutation.GroupCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriageUpdateOne is the builder for updating a single Triage entity.
type TriageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriageMutation
}

// SetTriageGroupID sets the "triage_group_id" field.
func (_u *TriageUpdateOne) SetTriageGroupID(v uuid.UUID) *TriageUpdateOne {
	_u.mutation.SetTriageGroupID(v)
	return _u
}

// SetNillableTriageGroupID sets the "triage_group_id" field if the given value is not nil.
func (_u *TriageUpdateOne) SetNillableTriageGroupID(v *uuid.UUID) *TriageUpdateOne {
	if v != nil {
		_u.SetTriageGroupID(*v)
	}
	return _u
}

// SetFocusArea sets the "focus_area" field.
func (_u *TriageUpdateOne) SetFocusArea(v string) *TriageUpdateOne {
	_u.mutation.SetFocusArea(v)
	return _u
}

// SetNillableFocusArea sets the "focus_area" field if the given value is not nil.
func (_u *TriageUpdateOne) SetNillableFocusArea(v *string) *TriageUpdateOne {
	if v != nil {
		_u.SetFocusArea(*v)
	}
	return _u
}

// SetCareCategory sets the "care_category" field.
func (_u *TriageUpdateOne) SetCareCategory(v triage.CareCategory) *TriageUpdateOne {
	_u.mutation.SetCareCategory(v)
	return _u
}

// SetNillableCareCategory sets the "care_category" field if the given value is not nil.
func (_u *TriageUpdateOne) SetNillableCareCategory(v *triage.CareCategory) *TriageUpdateOne {
	if v != nil {
		_u.SetCareCategory(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TriageUpdateOne) SetReason(v string) *TriageUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TriageUpdateOne) SetNillableReason(v *string) *TriageUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *TriageUpdateOne) ClearReason() *TriageUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetGroupID sets the "group" edge to the TriageGroup entity by ID.
func (_u *TriageUpdateOne) SetGroupID(id uuid.UUID) *TriageUpdateOne {
	_u.mutation.SetGroupID(id)
	return _u
}

// SetGroup sets the "group" edge to the TriageGroup entity.
func (_u *TriageUpdateOne) SetGroup(v *TriageGroup) *TriageUpdateOne {
	return _u.SetGroupID(v.ID)
}

// Mutation returns the TriageMutation object of the builder.
func (_u *TriageUpdateOne) Mutation() *TriageMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the TriageGroup entity.
func (_u *TriageUpdateOne) ClearGroup() *TriageUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// Where appends a list predicates to the TriageUpdate builder.
func (_u *TriageUpdateOne) Where(ps ...predicate.Triage) *TriageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriageUpdateOne) Select(field string, fields ...string) *TriageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Triage entity.
func (_u *TriageUpdateOne) Save(ctx context.Context) (*Triage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageUpdateOne) SaveX(ctx context.Context) *Triage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageUpdateOne) check() error {
	if v, ok := _u.mutation.FocusArea(); ok {
		if err := triage.FocusAreaValidator(v); err != nil {
			return &ValidationError{Name: "focus_area", err: fmt.Errorf(`repo: validator failed for field "Triage.focus_area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CareCategory(); ok {
		if err := triage.CareCategoryValidator(v); err != nil {
			return &ValidationError{Name: "care_category", err: fmt.Errorf(`repo: validator failed for field "Triage.care_category": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Triage.group"`)
	}
	return nil
}

func (_u *TriageUpdateOne) sqlSave(ctx context.Context) (_node *Triage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triage.Table, triage.Columns, sqlgraph.NewFieldSpec(triage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Triage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triage.FieldID)
		for _, f := range fields {
			if !triage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != triage.FieldID {
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
	if value, ok := _u.mutation.FocusArea(); ok {
		_spec.SetField(triage.FieldFocusArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.CareCategory(); ok {
		_spec.SetField(triage.FieldCareCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(triage.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(triage.FieldReason, field.TypeString)
	}
	if _u.mutation.GroupCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Triage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
