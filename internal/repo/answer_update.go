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
	"github.com/marlowhealth/compass_backend/internal/repo/answer"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionInstrumentID sets the "session_instrument_id" field.
func (_u *AnswerUpdate) SetSessionInstrumentID(v uuid.UUID) *AnswerUpdate {
	_u.mutation.SetSessionInstrumentID(v)
	return _u
}

// SetNillableSessionInstrumentID sets the "session_instrument_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableSessionInstrumentID(v *uuid.UUID) *AnswerUpdate {
	if v != nil {
		_u.SetSessionInstrumentID(*v)
	}
	return _u
}

// SetQuestionKey sets the "question_key" field.
func (_u *AnswerUpdate) SetQuestionKey(v string) *AnswerUpdate {
	_u.mutation.SetQuestionKey(v)
	return _u
}

// SetNillableQuestionKey sets the "question_key" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableQuestionKey(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetQuestionKey(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *AnswerUpdate) SetFormat(v answer.Format) *AnswerUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableFormat(v *answer.Format) *AnswerUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetOptionKeys sets the "option_keys" field.
func (_u *AnswerUpdate) SetOptionKeys(v []string) *AnswerUpdate {
	_u.mutation.SetOptionKeys(v)
	return _u
}

// AppendOptionKeys appends value to the "option_keys" field.
func (_u *AnswerUpdate) AppendOptionKeys(v []string) *AnswerUpdate {
	_u.mutation.AppendOptionKeys(v)
	return _u
}

// ClearOptionKeys clears the value of the "option_keys" field.
func (_u *AnswerUpdate) ClearOptionKeys() *AnswerUpdate {
	_u.mutation.ClearOptionKeys()
	return _u
}

// SetFreeText sets the "free_text" field.
func (_u *AnswerUpdate) SetFreeText(v string) *AnswerUpdate {
	_u.mutation.SetFreeText(v)
	return _u
}

// SetNillableFreeText sets the "free_text" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableFreeText(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetFreeText(*v)
	}
	return _u
}

// ClearFreeText clears the value of the "free_text" field.
func (_u *AnswerUpdate) ClearFreeText() *AnswerUpdate {
	_u.mutation.ClearFreeText()
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *AnswerUpdate) SetRecordedBy(v uuid.UUID) *AnswerUpdate {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableRecordedBy(v *uuid.UUID) *AnswerUpdate {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// SetSessionInstrument sets the "session_instrument" edge to the SessionInstrument entity.
func (_u *AnswerUpdate) SetSessionInstrument(v *SessionInstrument) *AnswerUpdate {
	return _u.SetSessionInstrumentID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearSessionInstrument clears the "session_instrument" edge to the SessionInstrument entity.
func (_u *AnswerUpdate) ClearSessionInstrument() *AnswerUpdate {
	_u.mutation.ClearSessionInstrument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if v, ok := _u.mutation.QuestionKey(); ok {
		if err := answer.QuestionKeyValidator(v); err != nil {
			return &ValidationError{Name: "question_key", err: fmt.Errorf(`repo: validator failed for field "Answer.question_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := answer.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`repo: validator failed for field "Answer.format": %w`, err)}
		}
	}
	if _u.mutation.SessionInstrumentCleared() && len(_u.mutation.SessionInstrumentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.session_instrument"`)
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionKey(); ok {
		_spec.SetField(answer.FieldQuestionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(answer.FieldFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OptionKeys(); ok {
		_spec.SetField(answer.FieldOptionKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptionKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldOptionKeys, value)
		})
	}
	if _u.mutation.OptionKeysCleared() {
		_spec.ClearField(answer.FieldOptionKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.FreeText(); ok {
		_spec.SetField(answer.FieldFreeText, field.TypeString, value)
	}
	if _u.mutation.FreeTextCleared() {
		_spec.ClearField(answer.FieldFreeText, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(answer.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.SessionInstrumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SessionInstrumentTable,
			Columns: []string{answer.SessionInstrumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionInstrumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SessionInstrumentTable,
			Columns: []string{answer.SessionInstrumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetSessionInstrumentID sets the "session_instrument_id" field.
func (_u *AnswerUpdateOne) SetSessionInstrumentID(v uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetSessionInstrumentID(v)
	return _u
}

// SetNillableSessionInstrumentID sets the "session_instrument_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableSessionInstrumentID(v *uuid.UUID) *AnswerUpdateOne {
	if v != nil {
		_u.SetSessionInstrumentID(*v)
	}
	return _u
}

// SetQuestionKey sets the "question_key" field.
func (_u *AnswerUpdateOne) SetQuestionKey(v string) *AnswerUpdateOne {
	_u.mutation.SetQuestionKey(v)
	return _u
}

// SetNillableQuestionKey sets the "question_key" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableQuestionKey(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetQuestionKey(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *AnswerUpdateOne) SetFormat(v answer.Format) *AnswerUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableFormat(v *answer.Format) *AnswerUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetOptionKeys sets the "option_keys" field.
func (_u *AnswerUpdateOne) SetOptionKeys(v []string) *AnswerUpdateOne {
	_u.mutation.SetOptionKeys(v)
	return _u
}

// AppendOptionKeys appends value to the "option_keys" field.
func (_u *AnswerUpdateOne) AppendOptionKeys(v []string) *AnswerUpdateOne {
	_u.mutation.AppendOptionKeys(v)
	return _u
}

// ClearOptionKeys clears the value of the "option_keys" field.
func (_u *AnswerUpdateOne) ClearOptionKeys() *AnswerUpdateOne {
	_u.mutation.ClearOptionKeys()
	return _u
}

// SetFreeText sets the "free_text" field.
func (_u *AnswerUpdateOne) SetFreeText(v string) *AnswerUpdateOne {
	_u.mutation.SetFreeText(v)
	return _u
}

// SetNillableFreeText sets the "free_text" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableFreeText(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetFreeText(*v)
	}
	return _u
}

// ClearFreeText clears the value of the "free_text" field.
func (_u *AnswerUpdateOne) ClearFreeText() *AnswerUpdateOne {
	_u.mutation.ClearFreeText()
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *AnswerUpdateOne) SetRecordedBy(v uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableRecordedBy(v *uuid.UUID) *AnswerUpdateOne {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// SetSessionInstrument sets the "session_instrument" edge to the SessionInstrument entity.
func (_u *AnswerUpdateOne) SetSessionInstrument(v *SessionInstrument) *AnswerUpdateOne {
	return _u.SetSessionInstrumentID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearSessionInstrument clears the "session_instrument" edge to the SessionInstrument entity.
func (_u *AnswerUpdateOne) ClearSessionInstrument() *AnswerUpdateOne {
	_u.mutation.ClearSessionInstrument()
	return _u
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionKey(); ok {
		if err := answer.QuestionKeyValidator(v); err != nil {
			return &ValidationError{Name: "question_key", err: fmt.Errorf(`repo: validator failed for field "Answer.question_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := answer.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`repo: validator failed for field "Answer.format": %w`, err)}
		}
	}
	if _u.mutation.SessionInstrumentCleared() && len(_u.mutation.SessionInstrumentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.session_instrument"`)
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
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
	if value, ok := _u.mutation.QuestionKey(); ok {
		_spec.SetField(answer.FieldQuestionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(answer.FieldFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OptionKeys(); ok {
		_spec.SetField(answer.FieldOptionKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptionKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldOptionKeys, value)
		})
	}
	if _u.mutation.OptionKeysCleared() {
		_spec.ClearField(answer.FieldOptionKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.FreeText(); ok {
		_spec.SetField(answer.FieldFreeText, field.TypeString, value)
	}
	if _u.mutation.FreeTextCleared() {
		_spec.ClearField(answer.FieldFreeText, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(answer.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.SessionInstrumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SessionInstrumentTable,
			Columns: []string{answer.SessionInstrumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionInstrumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SessionInstrumentTable,
			Columns: []string{answer.SessionInstrumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
