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
	"github.com/marlowhealth/compass_backend/internal/repo/instrument"
	"github.com/marlowhealth/compass_backend/internal/repo/instrumentversion"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// InstrumentVersionUpdate is the builder for updating InstrumentVersion entities.
type InstrumentVersionUpdate struct {
	config
	hooks    []Hook
	mutation *InstrumentVersionMutation
}

// Where appends a list predicates to the InstrumentVersionUpdate builder.
func (_u *InstrumentVersionUpdate) Where(ps ...predicate.InstrumentVersion) *InstrumentVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstrumentID sets the "instrument_id" field.
func (_u *InstrumentVersionUpdate) SetInstrumentID(v uuid.UUID) *InstrumentVersionUpdate {
	_u.mutation.SetInstrumentID(v)
	return _u
}

// SetNillableInstrumentID sets the "instrument_id" field if the given value is not nil.
func (_u *InstrumentVersionUpdate) SetNillableInstrumentID(v *uuid.UUID) *InstrumentVersionUpdate {
	if v != nil {
		_u.SetInstrumentID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *InstrumentVersionUpdate) SetVersion(v int) *InstrumentVersionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *InstrumentVersionUpdate) SetNillableVersion(v *int) *InstrumentVersionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *InstrumentVersionUpdate) AddVersion(v int) *InstrumentVersionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *InstrumentVersionUpdate) SetContent(v screening.InstrumentContent) *InstrumentVersionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *InstrumentVersionUpdate) SetNillableContent(v *screening.InstrumentContent) *InstrumentVersionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetInstrument sets the "instrument" edge to the Instrument entity.
func (_u *InstrumentVersionUpdate) SetInstrument(v *Instrument) *InstrumentVersionUpdate {
	return _u.SetInstrumentID(v.ID)
}

// Mutation returns the InstrumentVersionMutation object of the builder.
func (_u *InstrumentVersionUpdate) Mutation() *InstrumentVersionMutation {
	return _u.mutation
}

// ClearInstrument clears the "instrument" edge to the Instrument entity.
func (_u *InstrumentVersionUpdate) ClearInstrument() *InstrumentVersionUpdate {
	_u.mutation.ClearInstrument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstrumentVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstrumentVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstrumentVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstrumentVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstrumentVersionUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := instrumentversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "InstrumentVersion.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "InstrumentVersion.content": %w`, err)}
		}
	}
	if _u.mutation.InstrumentCleared() && len(_u.mutation.InstrumentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InstrumentVersion.instrument"`)
	}
	return nil
}

func (_u *InstrumentVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instrumentversion.Table, instrumentversion.Columns, sqlgraph.NewFieldSpec(instrumentversion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(instrumentversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(instrumentversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(instrumentversion.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.InstrumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   instrumentversion.InstrumentTable,
			Columns: []string{instrumentversion.InstrumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instrument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstrumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   instrumentversion.InstrumentTable,
			Columns: []string{instrumentversion.InstrumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instrument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instrumentversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstrumentVersionUpdateOne is the builder for updating a single InstrumentVersion entity.
type InstrumentVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstrumentVersionMutation
}

// SetInstrumentID sets the "instrument_id" field.
func (_u *InstrumentVersionUpdateOne) SetInstrumentID(v uuid.UUID) *InstrumentVersionUpdateOne {
	_u.mutation.SetInstrumentID(v)
	return _u
}

// SetNillableInstrumentID sets the "instrument_id" field if the given value is not nil.
func (_u *InstrumentVersionUpdateOne) SetNillableInstrumentID(v *uuid.UUID) *InstrumentVersionUpdateOne {
	if v != nil {
		_u.SetInstrumentID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *InstrumentVersionUpdateOne) SetVersion(v int) *InstrumentVersionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *InstrumentVersionUpdateOne) SetNillableVersion(v *int) *InstrumentVersionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *InstrumentVersionUpdateOne) AddVersion(v int) *InstrumentVersionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *InstrumentVersionUpdateOne) SetContent(v screening.InstrumentContent) *InstrumentVersionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *InstrumentVersionUpdateOne) SetNillableContent(v *screening.InstrumentContent) *InstrumentVersionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetInstrument sets the "instrument" edge to the Instrument entity.
func (_u *InstrumentVersionUpdateOne) SetInstrument(v *Instrument) *InstrumentVersionUpdateOne {
	return _u.SetInstrumentID(v.ID)
}

// Mutation returns the InstrumentVersionMutation object of the builder.
func (_u *InstrumentVersionUpdateOne) Mutation() *InstrumentVersionMutation {
	return _u.mutation
}

// ClearInstrument clears the "instrument" edge to the Instrument entity.
func (_u *InstrumentVersionUpdateOne) ClearInstrument() *InstrumentVersionUpdateOne {
	_u.mutation.ClearInstrument()
	return _u
}

// Where appends a list predicates to the InstrumentVersionUpdate builder.
func (_u *InstrumentVersionUpdateOne) Where(ps ...predicate.InstrumentVersion) *InstrumentVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstrumentVersionUpdateOne) Select(field string, fields ...string) *InstrumentVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InstrumentVersion entity.
func (_u *InstrumentVersionUpdateOne) Save(ctx context.Context) (*InstrumentVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstrumentVersionUpdateOne) SaveX(ctx context.Context) *InstrumentVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstrumentVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstrumentVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstrumentVersionUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := instrumentversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "InstrumentVersion.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "InstrumentVersion.content": %w`, err)}
		}
	}
	if _u.mutation.InstrumentCleared() && len(_u.mutation.InstrumentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InstrumentVersion.instrument"`)
	}
	return nil
}

func (_u *InstrumentVersionUpdateOne) sqlSave(ctx context.Context) (_node *InstrumentVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instrumentversion.Table, instrumentversion.Columns, sqlgraph.NewFieldSpec(instrumentversion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InstrumentVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instrumentversion.FieldID)
		for _, f := range fields {
			if !instrumentversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != instrumentversion.FieldID {
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
		_spec.SetField(instrumentversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(instrumentversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(instrumentversion.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.InstrumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   instrumentversion.InstrumentTable,
			Columns: []string{instrumentversion.InstrumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instrument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstrumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   instrumentversion.InstrumentTable,
			Columns: []string{instrumentversion.InstrumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instrument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InstrumentVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instrumentversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
