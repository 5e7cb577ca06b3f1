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
	"github.com/marlowhealth/compass_backend/internal/repo/answer"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
	"github.com/marlowhealth/compass_backend/internal/repo/screeningsession"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// SessionInstrumentUpdate is the builder for updating SessionInstrument entities.
type SessionInstrumentUpdate struct {
	config
	hooks    []Hook
	mutation *SessionInstrumentMutation
}

// Where appends a list predicates to the SessionInstrumentUpdate builder.
func (_u *SessionInstrumentUpdate) Where(ps ...predicate.SessionInstrument) *SessionInstrumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionInstrumentUpdate) SetUpdatedAt(v time.Time) *SessionInstrumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionInstrumentUpdate) SetSessionID(v uuid.UUID) *SessionInstrumentUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionInstrumentUpdate) SetNillableSessionID(v *uuid.UUID) *SessionInstrumentUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInstrumentVersionID sets the "instrument_version_id" field.
func (_u *SessionInstrumentUpdate) SetInstrumentVersionID(v uuid.UUID) *SessionInstrumentUpdate {
	_u.mutation.SetInstrumentVersionID(v)
	return _u
}

// SetNillableInstrumentVersionID sets the "instrument_version_id" field if the given value is not nil.
func (_u *SessionInstrumentUpdate) SetNillableInstrumentVersionID(v *uuid.UUID) *SessionInstrumentUpdate {
	if v != nil {
		_u.SetInstrumentVersionID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *SessionInstrumentUpdate) SetPosition(v int) *SessionInstrumentUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SessionInstrumentUpdate) SetNillablePosition(v *int) *SessionInstrumentUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SessionInstrumentUpdate) AddPosition(v int) *SessionInstrumentUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionInstrumentUpdate) SetCompleted(v bool) *SessionInstrumentUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionInstrumentUpdate) SetNillableCompleted(v *bool) *SessionInstrumentUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *SessionInstrumentUpdate) SetSkipped(v bool) *SessionInstrumentUpdate {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *SessionInstrumentUpdate) SetNillableSkipped(v *bool) *SessionInstrumentUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetBelowScoringThreshold sets the "below_scoring_threshold" field.
func (_u *SessionInstrumentUpdate) SetBelowScoringThreshold(v bool) *SessionInstrumentUpdate {
	_u.mutation.SetBelowScoringThreshold(v)
	return _u
}

// SetNillableBelowScoringThreshold sets the "below_scoring_threshold" field if the given value is not nil.
func (_u *SessionInstrumentUpdate) SetNillableBelowScoringThreshold(v *bool) *SessionInstrumentUpdate {
	if v != nil {
		_u.SetBelowScoringThreshold(*v)
	}
	return _u
}

// SetCrisis sets the "crisis" field.
func (_u *SessionInstrumentUpdate) SetCrisis(v bool) *SessionInstrumentUpdate {
	_u.mutation.SetCrisis(v)
	return _u
}

// SetNillableCrisis sets the "crisis" field if the given value is not nil.
func (_u *SessionInstrumentUpdate) SetNillableCrisis(v *bool) *SessionInstrumentUpdate {
	if v != nil {
		_u.SetCrisis(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionInstrumentUpdate) SetScore(v *screening.Score) *SessionInstrumentUpdate {
	_u.mutation.SetScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *SessionInstrumentUpdate) ClearScore() *SessionInstrumentUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionInstrumentUpdate) SetCompletedAt(v time.Time) *SessionInstrumentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionInstrumentUpdate) SetNillableCompletedAt(v *time.Time) *SessionInstrumentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionInstrumentUpdate) ClearCompletedAt() *SessionInstrumentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSession sets the "session" edge to the ScreeningSession entity.
func (_u *SessionInstrumentUpdate) SetSession(v *ScreeningSession) *SessionInstrumentUpdate {
	return _u.SetSessionID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *SessionInstrumentUpdate) AddAnswerIDs(ids ...uuid.UUID) *SessionInstrumentUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *SessionInstrumentUpdate) AddAnswers(v ...*Answer) *SessionInstrumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the SessionInstrumentMutation object of the builder.
func (_u *SessionInstrumentUpdate) Mutation() *SessionInstrumentMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ScreeningSession entity.
func (_u *SessionInstrumentUpdate) ClearSession() *SessionInstrumentUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *SessionInstrumentUpdate) ClearAnswers() *SessionInstrumentUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *SessionInstrumentUpdate) RemoveAnswerIDs(ids ...uuid.UUID) *SessionInstrumentUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *SessionInstrumentUpdate) RemoveAnswers(v ...*Answer) *SessionInstrumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionInstrumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionInstrumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionInstrumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionInstrumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionInstrumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessioninstrument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionInstrumentUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := sessioninstrument.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "SessionInstrument.position": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "SessionInstrument.session"`)
	}
	return nil
}

func (_u *SessionInstrumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessioninstrument.Table, sessioninstrument.Columns, sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessioninstrument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InstrumentVersionID(); ok {
		_spec.SetField(sessioninstrument.FieldInstrumentVersionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(sessioninstrument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(sessioninstrument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessioninstrument.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(sessioninstrument.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BelowScoringThreshold(); ok {
		_spec.SetField(sessioninstrument.FieldBelowScoringThreshold, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Crisis(); ok {
		_spec.SetField(sessioninstrument.FieldCrisis, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessioninstrument.FieldScore, field.TypeJSON, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(sessioninstrument.FieldScore, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessioninstrument.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sessioninstrument.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessioninstrument.SessionTable,
			Columns: []string{sessioninstrument.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessioninstrument.SessionTable,
			Columns: []string{sessioninstrument.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sessioninstrument.AnswersTable,
			Columns: []string{sessioninstrument.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sessioninstrument.AnswersTable,
			Columns: []string{sessioninstrument.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sessioninstrument.AnswersTable,
			Columns: []string{sessioninstrument.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessioninstrument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionInstrumentUpdateOne is the builder for updating a single SessionInstrument entity.
type SessionInstrumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionInstrumentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionInstrumentUpdateOne) SetUpdatedAt(v time.Time) *SessionInstrumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionInstrumentUpdateOne) SetSessionID(v uuid.UUID) *SessionInstrumentUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionInstrumentUpdateOne) SetNillableSessionID(v *uuid.UUID) *SessionInstrumentUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInstrumentVersionID sets the "instrument_version_id" field.
func (_u *SessionInstrumentUpdateOne) SetInstrumentVersionID(v uuid.UUID) *SessionInstrumentUpdateOne {
	_u.mutation.SetInstrumentVersionID(v)
	return _u
}

// SetNillableInstrumentVersionID sets the "instrument_version_id" field if the given value is not nil.
func (_u *SessionInstrumentUpdateOne) SetNillableInstrumentVersionID(v *uuid.UUID) *SessionInstrumentUpdateOne {
	if v != nil {
		_u.SetInstrumentVersionID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *SessionInstrumentUpdateOne) SetPosition(v int) *SessionInstrumentUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SessionInstrumentUpdateOne) SetNillablePosition(v *int) *SessionInstrumentUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SessionInstrumentUpdateOne) AddPosition(v int) *SessionInstrumentUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionInstrumentUpdateOne) SetCompleted(v bool) *SessionInstrumentUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionInstrumentUpdateOne) SetNillableCompleted(v *bool) *SessionInstrumentUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *SessionInstrumentUpdateOne) SetSkipped(v bool) *SessionInstrumentUpdateOne {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *SessionInstrumentUpdateOne) SetNillableSkipped(v *bool) *SessionInstrumentUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetBelowScoringThreshold sets the "below_scoring_threshold" field.
func (_u *SessionInstrumentUpdateOne) SetBelowScoringThreshold(v bool) *SessionInstrumentUpdateOne {
	_u.mutation.SetBelowScoringThreshold(v)
	return _u
}

// SetNillableBelowScoringThreshold sets the "below_scoring_threshold" field if the given value is not nil.
func (_u *SessionInstrumentUpdateOne) SetNillableBelowScoringThreshold(v *bool) *SessionInstrumentUpdateOne {
	if v != nil {
		_u.SetBelowScoringThreshold(*v)
	}
	return _u
}

// SetCrisis sets the "crisis" field.
func (_u *SessionInstrumentUpdateOne) SetCrisis(v bool) *SessionInstrumentUpdateOne {
	_u.mutation.SetCrisis(v)
	return _u
}

// SetNillableCrisis sets the "crisis" field if the given value is not nil.
func (_u *SessionInstrumentUpdateOne) SetNillableCrisis(v *bool) *SessionInstrumentUpdateOne {
	if v != nil {
		_u.SetCrisis(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionInstrumentUpdateOne) SetScore(v *screening.Score) *SessionInstrumentUpdateOne {
	_u.mutation.SetScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *SessionInstrumentUpdateOne) ClearScore() *SessionInstrumentUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionInstrumentUpdateOne) SetCompletedAt(v time.Time) *SessionInstrumentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionInstrumentUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionInstrumentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionInstrumentUpdateOne) ClearCompletedAt() *SessionInstrumentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSession sets the "session" edge to the ScreeningSession entity.
func (_u *SessionInstrumentUpdateOne) SetSession(v *ScreeningSession) *SessionInstrumentUpdateOne {
	return _u.SetSessionID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *SessionInstrumentUpdateOne) AddAnswerIDs(ids ...uuid.UUID) *SessionInstrumentUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *SessionInstrumentUpdateOne) AddAnswers(v ...*Answer) *SessionInstrumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the SessionInstrumentMutation object of the builder.
func (_u *SessionInstrumentUpdateOne) Mutation() *SessionInstrumentMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ScreeningSession entity.
func (_u *SessionInstrumentUpdateOne) ClearSession() *SessionInstrumentUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *SessionInstrumentUpdateOne) ClearAnswers() *SessionInstrumentUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *SessionInstrumentUpdateOne) RemoveAnswerIDs(ids ...uuid.UUID) *SessionInstrumentUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *SessionInstrumentUpdateOne) RemoveAnswers(v ...*Answer) *SessionInstrumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the SessionInstrumentUpdate builder.
func (_u *SessionInstrumentUpdateOne) Where(ps ...predicate.SessionInstrument) *SessionInstrumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionInstrumentUpdateOne) Select(field string, fields ...string) *SessionInstrumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionInstrument entity.
func (_u *SessionInstrumentUpdateOne) Save(ctx context.Context) (*SessionInstrument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionInstrumentUpdateOne) SaveX(ctx context.Context) *SessionInstrument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionInstrumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionInstrumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionInstrumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessioninstrument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionInstrumentUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := sessioninstrument.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "SessionInstrument.position": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "SessionInstrument.session"`)
	}
	return nil
}

func (_u *SessionInstrumentUpdateOne) sqlSave(ctx context.Context) (_node *SessionInstrument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessioninstrument.Table, sessioninstrument.Columns, sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SessionInstrument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessioninstrument.FieldID)
		for _, f := range fields {
			if !sessioninstrument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != sessioninstrument.FieldID {
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
		_spec.SetField(sessioninstrument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InstrumentVersionID(); ok {
		_spec.SetField(sessioninstrument.FieldInstrumentVersionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(sessioninstrument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(sessioninstrument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessioninstrument.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(sessioninstrument.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BelowScoringThreshold(); ok {
		_spec.SetField(sessioninstrument.FieldBelowScoringThreshold, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Crisis(); ok {
		_spec.SetField(sessioninstrument.FieldCrisis, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessioninstrument.FieldScore, field.TypeJSON, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(sessioninstrument.FieldScore, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessioninstrument.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sessioninstrument.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessioninstrument.SessionTable,
			Columns: []string{sessioninstrument.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessioninstrument.SessionTable,
			Columns: []string{sessioninstrument.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sessioninstrument.AnswersTable,
			Columns: []string{sessioninstrument.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sessioninstrument.AnswersTable,
			Columns: []string{sessioninstrument.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sessioninstrument.AnswersTable,
			Columns: []string{sessioninstrument.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SessionInstrument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessioninstrument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
