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
	"github.com/marlowhealth/compass_backend/internal/repo/instrument"
	"github.com/marlowhealth/compass_backend/internal/repo/instrumentversion"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// InstrumentUpdate is the builder for updating Instrument entities.
type InstrumentUpdate struct {
	config
	hooks    []Hook
	mutation *InstrumentMutation
}

// Where appends a list predicates to the InstrumentUpdate builder.
func (_u *InstrumentUpdate) Where(ps ...predicate.Instrument) *InstrumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstrumentUpdate) SetUpdatedAt(v time.Time) *InstrumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *InstrumentUpdate) SetSlug(v string) *InstrumentUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *InstrumentUpdate) SetNillableSlug(v *string) *InstrumentUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *InstrumentUpdate) SetName(v string) *InstrumentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InstrumentUpdate) SetNillableName(v *string) *InstrumentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InstrumentUpdate) SetDescription(v string) *InstrumentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InstrumentUpdate) SetNillableDescription(v *string) *InstrumentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InstrumentUpdate) ClearDescription() *InstrumentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFocusArea sets the "focus_area" field.
func (_u *InstrumentUpdate) SetFocusArea(v string) *InstrumentUpdate {
	_u.mutation.SetFocusArea(v)
	return _u
}

// SetNillableFocusArea sets the "focus_area" field if the given value is not nil.
func (_u *InstrumentUpdate) SetNillableFocusArea(v *string) *InstrumentUpdate {
	if v != nil {
		_u.SetFocusArea(*v)
	}
	return _u
}

// SetCurrentVersionID sets the "current_version_id" field.
func (_u *InstrumentUpdate) SetCurrentVersionID(v uuid.UUID) *InstrumentUpdate {
	_u.mutation.SetCurrentVersionID(v)
	return _u
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (_u *InstrumentUpdate) SetNillableCurrentVersionID(v *uuid.UUID) *InstrumentUpdate {
	if v != nil {
		_u.SetCurrentVersionID(*v)
	}
	return _u
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (_u *InstrumentUpdate) ClearCurrentVersionID() *InstrumentUpdate {
	_u.mutation.ClearCurrentVersionID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *InstrumentUpdate) SetIsActive(v bool) *InstrumentUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *InstrumentUpdate) SetNillableIsActive(v *bool) *InstrumentUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddVersionIDs adds the "versions" edge to the InstrumentVersion entity by IDs.
func (_u *InstrumentUpdate) AddVersionIDs(ids ...uuid.UUID) *InstrumentUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the InstrumentVersion entity.
func (_u *InstrumentUpdate) AddVersions(v ...*InstrumentVersion) *InstrumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the InstrumentMutation object of the builder.
func (_u *InstrumentUpdate) Mutation() *InstrumentMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the InstrumentVersion entity.
func (_u *InstrumentUpdate) ClearVersions() *InstrumentUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to InstrumentVersion entities by IDs.
func (_u *InstrumentUpdate) RemoveVersionIDs(ids ...uuid.UUID) *InstrumentUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to InstrumentVersion entities.
func (_u *InstrumentUpdate) RemoveVersions(v ...*InstrumentVersion) *InstrumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstrumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstrumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstrumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstrumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstrumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := instrument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstrumentUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := instrument.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Instrument.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := instrument.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Instrument.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FocusArea(); ok {
		if err := instrument.FocusAreaValidator(v); err != nil {
			return &ValidationError{Name: "focus_area", err: fmt.Errorf(`repo: validator failed for field "Instrument.focus_area": %w`, err)}
		}
	}
	return nil
}

func (_u *InstrumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instrument.Table, instrument.Columns, sqlgraph.NewFieldSpec(instrument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(instrument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(instrument.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(instrument.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(instrument.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(instrument.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FocusArea(); ok {
		_spec.SetField(instrument.FieldFocusArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentVersionID(); ok {
		_spec.SetField(instrument.FieldCurrentVersionID, field.TypeUUID, value)
	}
	if _u.mutation.CurrentVersionIDCleared() {
		_spec.ClearField(instrument.FieldCurrentVersionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(instrument.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instrument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstrumentUpdateOne is the builder for updating a single Instrument entity.
type InstrumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstrumentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstrumentUpdateOne) SetUpdatedAt(v time.Time) *InstrumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *InstrumentUpdateOne) SetSlug(v string) *InstrumentUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *InstrumentUpdateOne) SetNillableSlug(v *string) *InstrumentUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *InstrumentUpdateOne) SetName(v string) *InstrumentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InstrumentUpdateOne) SetNillableName(v *string) *InstrumentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InstrumentUpdateOne) SetDescription(v string) *InstrumentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InstrumentUpdateOne) SetNillableDescription(v *string) *InstrumentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InstrumentUpdateOne) ClearDescription() *InstrumentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFocusArea sets the "focus_area" field.
func (_u *InstrumentUpdateOne) SetFocusArea(v string) *InstrumentUpdateOne {
	_u.mutation.SetFocusArea(v)
	return _u
}

// SetNillableFocusArea sets the "focus_area" field if the given value is not nil.
func (_u *InstrumentUpdateOne) SetNillableFocusArea(v *string) *InstrumentUpdateOne {
	if v != nil {
		_u.SetFocusArea(*v)
	}
	return _u
}

// SetCurrentVersionID sets the "current_version_id" field.
func (_u *InstrumentUpdateOne) SetCurrentVersionID(v uuid.UUID) *InstrumentUpdateOne {
	_u.mutation.SetCurrentVersionID(v)
	return _u
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (_u *InstrumentUpdateOne) SetNillableCurrentVersionID(v *uuid.UUID) *InstrumentUpdateOne {
	if v != nil {
		_u.SetCurrentVersionID(*v)
	}
	return _u
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (_u *InstrumentUpdateOne) ClearCurrentVersionID() *InstrumentUpdateOne {
	_u.mutation.ClearCurrentVersionID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *InstrumentUpdateOne) SetIsActive(v bool) *InstrumentUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *InstrumentUpdateOne) SetNillableIsActive(v *bool) *InstrumentUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddVersionIDs adds the "versions" edge to the InstrumentVersion entity by IDs.
func (_u *InstrumentUpdateOne) AddVersionIDs(ids ...uuid.UUID) *InstrumentUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the InstrumentVersion entity.
func (_u *InstrumentUpdateOne) AddVersions(v ...*InstrumentVersion) *InstrumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the InstrumentMutation object of the builder.
func (_u *InstrumentUpdateOne) Mutation() *InstrumentMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the InstrumentVersion entity.
func (_u *InstrumentUpdateOne) ClearVersions() *InstrumentUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to InstrumentVersion entities by IDs.
func (_u *InstrumentUpdateOne) RemoveVersionIDs(ids ...uuid.UUID) *InstrumentUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to InstrumentVersion entities.
func (_u *InstrumentUpdateOne) RemoveVersions(v ...*InstrumentVersion) *InstrumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Where appends a list predicates to the InstrumentUpdate builder.
func (_u *InstrumentUpdateOne) Where(ps ...predicate.Instrument) *InstrumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstrumentUpdateOne) Select(field string, fields ...string) *InstrumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Instrument entity.
func (_u *InstrumentUpdateOne) Save(ctx context.Context) (*Instrument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstrumentUpdateOne) SaveX(ctx context.Context) *Instrument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstrumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstrumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstrumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := instrument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstrumentUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := instrument.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Instrument.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := instrument.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Instrument.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FocusArea(); ok {
		if err := instrument.FocusAreaValidator(v); err != nil {
			return &ValidationError{Name: "focus_area", err: fmt.Errorf(`repo: validator failed for field "Instrument.focus_area": %w`, err)}
		}
	}
	return nil
}

func (_u *InstrumentUpdateOne) sqlSave(ctx context.Context) (_node *Instrument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instrument.Table, instrument.Columns, sqlgraph.NewFieldSpec(instrument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Instrument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instrument.FieldID)
		for _, f := range fields {
			if !instrument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != instrument.FieldID {
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
		_spec.SetField(instrument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(instrument.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(instrument.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(instrument.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(instrument.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FocusArea(); ok {
		_spec.SetField(instrument.FieldFocusArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentVersionID(); ok {
		_spec.SetField(instrument.FieldCurrentVersionID, field.TypeUUID, value)
	}
	if _u.mutation.CurrentVersionIDCleared() {
		_spec.ClearField(instrument.FieldCurrentVersionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(instrument.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Instrument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instrument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
