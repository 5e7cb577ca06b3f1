// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/flow"
	"github.com/marlowhealth/compass_backend/internal/repo/flowversion"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// FlowVersionUpdate is the builder for updating FlowVersion entities.
type FlowVersionUpdate struct {
	config
	hooks    []Hook
	mutation *FlowVersionMutation
}

// Where appends a list predicates to the FlowVersionUpdate builder.
func (_u *FlowVersionUpdate) Where(ps ...predicate.FlowVersion) *FlowVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFlowID sets the "flow_id" field.
func (_u *FlowVersionUpdate) SetFlowID(v uuid.UUID) *FlowVersionUpdate {
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *FlowVersionUpdate) SetNillableFlowID(v *uuid.UUID) *FlowVersionUpdate {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *FlowVersionUpdate) SetVersion(v int) *FlowVersionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FlowVersionUpdate) SetNillableVersion(v *int) *FlowVersionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FlowVersionUpdate) AddVersion(v int) *FlowVersionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetMandatory sets the "mandatory" field.
func (_u *FlowVersionUpdate) SetMandatory(v bool) *FlowVersionUpdate {
	_u.mutation.SetMandatory(v)
	return _u
}

// SetNillableMandatory sets the "mandatory" field if the given value is not nil.
func (_u *FlowVersionUpdate) SetNillableMandatory(v *bool) *FlowVersionUpdate {
	if v != nil {
		_u.SetMandatory(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *FlowVersionUpdate) SetSteps(v []screening.FlowStep) *FlowVersionUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *FlowVersionUpdate) AppendSteps(v []screening.FlowStep) *FlowVersionUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetFlow sets the "flow" edge to the Flow entity.
func (_u *FlowVersionUpdate) SetFlow(v *Flow) *FlowVersionUpdate {
	return _u.SetFlowID(v.ID)
}

// Mutation returns the FlowVersionMutation object of the builder.
func (_u *FlowVersionUpdate) Mutation() *FlowVersionMutation {
	return _u.mutation
}

// ClearFlow clears the "flow" edge to the Flow entity.
func (_u *FlowVersionUpdate) ClearFlow() *FlowVersionUpdate {
	_u.mutation.ClearFlow()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlowVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlowVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowVersionUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := flowversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "FlowVersion.version": %w`, err)}
		}
	}
	if _u.mutation.FlowCleared() && len(_u.mutation.FlowIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FlowVersion.flow"`)
	}
	return nil
}

func (_u *FlowVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowversion.Table, flowversion.Columns, sqlgraph.NewFieldSpec(flowversion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(flowversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(flowversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mandatory(); ok {
		_spec.SetField(flowversion.FieldMandatory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(flowversion.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowversion.FieldSteps, value)
		})
	}
	if _u.mutation.FlowCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlowIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlowVersionUpdateOne is the builder for updating a single FlowVersion entity.
type FlowVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlowVersionMutation
}

// SetFlowID sets the "flow_id" field.
func (_u *FlowVersionUpdateOne) SetFlowID(v uuid.UUID) *FlowVersionUpdateOne {
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *FlowVersionUpdateOne) SetNillableFlowID(v *uuid.UUID) *FlowVersionUpdateOne {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *FlowVersionUpdateOne) SetVersion(v int) *FlowVersionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FlowVersionUpdateOne) SetNillableVersion(v *int) *FlowVersionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FlowVersionUpdateOne) AddVersion(v int) *FlowVersionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetMandatory sets the "mandatory" field.
func (_u *FlowVersionUpdateOne) SetMandatory(v bool) *FlowVersionUpdateOne {
	_u.mutation.SetMandatory(v)
	return _u
}

// SetNillableMandatory sets the "mandatory" field if the given value is not nil.
func (_u *FlowVersionUpdateOne) SetNillableMandatory(v *bool) *FlowVersionUpdateOne {
	if v != nil {
		_u.SetMandatory(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *FlowVersionUpdateOne) SetSteps(v []screening.FlowStep) *FlowVersionUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *FlowVersionUpdateOne) AppendSteps(v []screening.FlowStep) *FlowVersionUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetFlow sets the "flow" edge to the Flow entity.
func (_u *FlowVersionUpdateOne) SetFlow(v *Flow) *FlowVersionUpdateOne {
	return _u.SetFlowID(v.ID)
}

// Mutation returns the FlowVersionMutation object of the builder.
func (_u *FlowVersionUpdateOne) Mutation() *FlowVersionMutation {
	return _u.mutation
}

// ClearFlow clears the "flow" edge to the Flow entity.
func (_u *FlowVersionUpdateOne) ClearFlow() *FlowVersionUpdateOne {
	_u.mutation.ClearFlow()
	return _u
}

// Where appends a list predicates to the FlowVersionUpdate builder.
func (_u *FlowVersionUpdateOne) Where(ps ...predicate.FlowVersion) *FlowVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlowVersionUpdateOne) Select(field string, fields ...string) *FlowVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FlowVersion entity.
func (_u *FlowVersionUpdateOne) Save(ctx context.Context) (*FlowVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowVersionUpdateOne) SaveX(ctx context.Context) *FlowVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlowVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowVersionUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := flowversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "FlowVersion.version": %w`, err)}
		}
	}
	if _u.mutation.FlowCleared() && len(_u.mutation.FlowIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FlowVersion.flow"`)
	}
	return nil
}

func (_u *FlowVersionUpdateOne) sqlSave(ctx context.Context) (_node *FlowVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowversion.Table, flowversion.Columns, sqlgraph.NewFieldSpec(flowversion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "FlowVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flowversion.FieldID)
		for _, f := range fields {
			if !flowversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != flowversion.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(flowversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(flowversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mandatory(); ok {
		_spec.SetField(flowversion.FieldMandatory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(flowversion.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowversion.FieldSteps, value)
		})
	}
	if _u.mutation.FlowCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlowIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FlowVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
