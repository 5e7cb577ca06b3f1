// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/flow"
	"github.com/marlowhealth/compass_backend/internal/repo/flowversion"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// FlowUpdate is the builder for updating Flow entities.
type FlowUpdate struct {
	config
	hooks    []Hook
	mutation *FlowMutation
}

// Where appends a list predicates to the FlowUpdate builder.
func (_u *FlowUpdate) Where(ps ...predicate.Flow) *FlowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlowUpdate) SetUpdatedAt(v time.Time) *FlowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *FlowUpdate) SetSlug(v string) *FlowUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *FlowUpdate) SetNillableSlug(v *string) *FlowUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FlowUpdate) SetName(v string) *FlowUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FlowUpdate) SetNillableName(v *string) *FlowUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FlowUpdate) SetDescription(v string) *FlowUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FlowUpdate) SetNillableDescription(v *string) *FlowUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FlowUpdate) ClearDescription() *FlowUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCurrentVersionID sets the "current_version_id" field.
func (_u *FlowUpdate) SetCurrentVersionID(v uuid.UUID) *FlowUpdate {
	_u.mutation.SetCurrentVersionID(v)
	return _u
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (_u *FlowUpdate) SetNillableCurrentVersionID(v *uuid.UUID) *FlowUpdate {
	if v != nil {
		_u.SetCurrentVersionID(*v)
	}
	return _u
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (_u *FlowUpdate) ClearCurrentVersionID() *FlowUpdate {
	_u.mutation.ClearCurrentVersionID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FlowUpdate) SetIsActive(v bool) *FlowUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FlowUpdate) SetNillableIsActive(v *bool) *FlowUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddVersionIDs adds the "versions" edge to the FlowVersion entity by IDs.
func (_u *FlowUpdate) AddVersionIDs(ids ...uuid.UUID) *FlowUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the FlowVersion entity.
func (_u *FlowUpdate) AddVersions(v ...*FlowVersion) *FlowUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the FlowMutation object of the builder.
func (_u *FlowUpdate) Mutation() *FlowMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the FlowVersion entity.
func (_u *FlowUpdate) ClearVersions() *FlowUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to FlowVersion entities by IDs.
func (_u *FlowUpdate) RemoveVersionIDs(ids ...uuid.UUID) *FlowUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to FlowVersion entities.
func (_u *FlowUpdate) RemoveVersions(v ...*FlowVersion) *FlowUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := flow.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Flow.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := flow.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Flow.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FlowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flow.Table, flow.Columns, sqlgraph.NewFieldSpec(flow.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(flow.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(flow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(flow.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(flow.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentVersionID(); ok {
		_spec.SetField(flow.FieldCurrentVersionID, field.TypeUUID, value)
	}
	if _u.mutation.CurrentVersionIDCleared() {
		_spec.ClearField(flow.FieldCurrentVersionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(flow.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlowUpdateOne is the builder for updating a single Flow entity.
type FlowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlowMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlowUpdateOne) SetUpdatedAt(v time.Time) *FlowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *FlowUpdateOne) SetSlug(v string) *FlowUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *FlowUpdateOne) SetNillableSlug(v *string) *FlowUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FlowUpdateOne) SetName(v string) *FlowUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FlowUpdateOne) SetNillableName(v *string) *FlowUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FlowUpdateOne) SetDescription(v string) *FlowUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FlowUpdateOne) SetNillableDescription(v *string) *FlowUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FlowUpdateOne) ClearDescription() *FlowUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCurrentVersionID sets the "current_version_id" field.
func (_u *FlowUpdateOne) SetCurrentVersionID(v uuid.UUID) *FlowUpdateOne {
	_u.mutation.SetCurrentVersionID(v)
	return _u
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (_u *FlowUpdateOne) SetNillableCurrentVersionID(v *uuid.UUID) *FlowUpdateOne {
	if v != nil {
		_u.SetCurrentVersionID(*v)
	}
	return _u
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (_u *FlowUpdateOne) ClearCurrentVersionID() *FlowUpdateOne {
	_u.mutation.ClearCurrentVersionID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FlowUpdateOne) SetIsActive(v bool) *FlowUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FlowUpdateOne) SetNillableIsActive(v *bool) *FlowUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddVersionIDs adds the "versions" edge to the FlowVersion entity by IDs.
func (_u *FlowUpdateOne) AddVersionIDs(ids ...uuid.UUID) *FlowUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the FlowVersion entity.
func (_u *FlowUpdateOne) AddVersions(v ...*FlowVersion) *FlowUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the FlowMutation object of the builder.
func (_u *FlowUpdateOne) Mutation() *FlowMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the FlowVersion entity.
func (_u *FlowUpdateOne) ClearVersions() *FlowUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to FlowVersion entities by IDs.
func (_u *FlowUpdateOne) RemoveVersionIDs(ids ...uuid.UUID) *FlowUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to FlowVersion entities.
func (_u *FlowUpdateOne) RemoveVersions(v ...*FlowVersion) *FlowUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Where appends a list predicates to the FlowUpdate builder.
func (_u *FlowUpdateOne) Where(ps ...predicate.Flow) *FlowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlowUpdateOne) Select(field string, fields ...string) *FlowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Flow entity.
func (_u *FlowUpdateOne) Save(ctx context.Context) (*Flow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowUpdateOne) SaveX(ctx context.Context) *Flow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := flow.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Flow.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := flow.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Flow.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FlowUpdateOne) sqlSave(ctx context.Context) (_node *Flow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flow.Table, flow.Columns, sqlgraph.NewFieldSpec(flow.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Flow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flow.FieldID)
		for _, f := range fields {
			if !flow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != flow.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(flow.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(flow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(flow.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(flow.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentVersionID(); ok {
		_spec.SetField(flow.FieldCurrentVersionID, field.TypeUUID, value)
	}
	if _u.mutation.CurrentVersionIDCleared() {
		_spec.ClearField(flow.FieldCurrentVersionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(flow.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Flow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
