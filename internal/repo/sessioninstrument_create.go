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
	"github.com/marlowhealth/compass_backend/internal/repo/answer"
	"github.com/marlowhealth/compass_backend/internal/repo/screeningsession"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// SessionInstrumentCreate is the builder for creating a SessionInstrument entity.
type SessionInstrumentCreate struct {
	config
	mutation *SessionInstrumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionInstrumentCreate) SetCreatedAt(v time.Time) *SessionInstrumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionInstrumentCreate) SetNillableCreatedAt(v *time.Time) *SessionInstrumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionInstrumentCreate) SetUpdatedAt(v time.Time) *SessionInstrumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionInstrumentCreate) SetNillableUpdatedAt(v *time.Time) *SessionInstrumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionInstrumentCreate) SetSessionID(v uuid.UUID) *SessionInstrumentCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetInstrumentVersionID sets the "instrument_version_id" field.
func (_c *SessionInstrumentCreate) SetInstrumentVersionID(v uuid.UUID) *SessionInstrumentCreate {
	_c.mutation.SetInstrumentVersionID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *SessionInstrumentCreate) SetPosition(v int) *SessionInstrumentCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *SessionInstrumentCreate) SetCompleted(v bool) *SessionInstrumentCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *SessionInstrumentCreate) SetNillableCompleted(v *bool) *SessionInstrumentCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *SessionInstrumentCreate) SetSkipped(v bool) *SessionInstrumentCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *SessionInstrumentCreate) SetNillableSkipped(v *bool) *SessionInstrumentCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetBelowScoringThreshold sets the "below_scoring_threshold" field.
func (_c *SessionInstrumentCreate) SetBelowScoringThreshold(v bool) *SessionInstrumentCreate {
	_c.mutation.SetBelowScoringThreshold(v)
	return _c
}

// SetNillableBelowScoringThreshold sets the "below_scoring_threshold" field if the given value is not nil.
func (_c *SessionInstrumentCreate) SetNillableBelowScoringThreshold(v *bool) *SessionInstrumentCreate {
	if v != nil {
		_c.SetBelowScoringThreshold(*v)
	}
	return _c
}

// SetCrisis sets the "crisis" field.
func (_c *SessionInstrumentCreate) SetCrisis(v bool) *SessionInstrumentCreate {
	_c.mutation.SetCrisis(v)
	return _c
}

// SetNillableCrisis sets the "crisis" field if the given value is not nil.
func (_c *SessionInstrumentCreate) SetNillableCrisis(v *bool) *SessionInstrumentCreate {
	if v != nil {
		_c.SetCrisis(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *SessionInstrumentCreate) SetScore(v *screening.Score) *SessionInstrumentCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionInstrumentCreate) SetCompletedAt(v time.Time) *SessionInstrumentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionInstrumentCreate) SetNillableCompletedAt(v *time.Time) *SessionInstrumentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionInstrumentCreate) SetID(v uuid.UUID) *SessionInstrumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionInstrumentCreate) SetNillableID(v *uuid.UUID) *SessionInstrumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the ScreeningSession entity.
func (_c *SessionInstrumentCreate) SetSession(v *ScreeningSession) *SessionInstrumentCreate {
	return _c.SetSessionID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_c *SessionInstrumentCreate) AddAnswerIDs(ids ...uuid.UUID) *SessionInstrumentCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_c *SessionInstrumentCreate) AddAnswers(v ...*Answer) *SessionInstrumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the SessionInstrumentMutation object of the builder.
func (_c *SessionInstrumentCreate) Mutation() *SessionInstrumentMutation {
	return _c.mutation
}

// Save creates the SessionInstrument in the database.
func (_c *SessionInstrumentCreate) Save(ctx context.Context) (*SessionInstrument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionInstrumentCreate) SaveX(ctx context.Context) *SessionInstrument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionInstrumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionInstrumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionInstrumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessioninstrument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessioninstrument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := sessioninstrument.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := sessioninstrument.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.BelowScoringThreshold(); !ok {
		v := sessioninstrument.DefaultBelowScoringThreshold
		_c.mutation.SetBelowScoringThreshold(v)
	}
	if _, ok := _c.mutation.Crisis(); !ok {
		v := sessioninstrument.DefaultCrisis
		_c.mutation.SetCrisis(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sessioninstrument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionInstrumentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SessionInstrument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "SessionInstrument.updated_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`repo: missing required field "SessionInstrument.session_id"`)}
	}
	if _, ok := _c.mutation.InstrumentVersionID(); !ok {
		return &ValidationError{Name: "instrument_version_id", err: errors.New(`repo: missing required field "SessionInstrument.instrument_version_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`repo: missing required field "SessionInstrument.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := sessioninstrument.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "SessionInstrument.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`repo: missing required field "SessionInstrument.completed"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`repo: missing required field "SessionInstrument.skipped"`)}
	}
	if _, ok := _c.mutation.BelowScoringThreshold(); !ok {
		return &ValidationError{Name: "below_scoring_threshold", err: errors.New(`repo: missing required field "SessionInstrument.below_scoring_threshold"`)}
	}
	if _, ok := _c.mutation.Crisis(); !ok {
		return &ValidationError{Name: "crisis", err: errors.New(`repo: missing required field "SessionInstrument.crisis"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`repo: missing required edge "SessionInstrument.session"`)}
	}
	return nil
}

func (_c *SessionInstrumentCreate) sqlSave(ctx context.Context) (*SessionInstrument, error) {
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

func (_c *SessionInstrumentCreate) createSpec() (*SessionInstrument, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionInstrument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessioninstrument.Table, sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessioninstrument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessioninstrument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.InstrumentVersionID(); ok {
		_spec.SetField(sessioninstrument.FieldInstrumentVersionID, field.TypeUUID, value)
		_node.InstrumentVersionID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(sessioninstrument.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(sessioninstrument.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(sessioninstrument.FieldSkipped, field.TypeBool, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.BelowScoringThreshold(); ok {
		_spec.SetField(sessioninstrument.FieldBelowScoringThreshold, field.TypeBool, value)
		_node.BelowScoringThreshold = value
	}
	if value, ok := _c.mutation.Crisis(); ok {
		_spec.SetField(sessioninstrument.FieldCrisis, field.TypeBool, value)
		_node.Crisis = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(sessioninstrument.FieldScore, field.TypeJSON, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sessioninstrument.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionInstrument.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionInstrumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionInstrumentCreate) OnConflict(opts ...sql.ConflictOption) *SessionInstrumentUpsertOne {
	_c.conflict = opts
	return &SessionInstrumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionInstrument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionInstrumentCreate) OnConflictColumns(columns ...string) *SessionInstrumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionInstrumentUpsertOne{
		create: _c,
	}
}

type (
	// SessionInstrumentUpsertOne is the builder for "upsert"-ing
	//  one SessionInstrument node.
	SessionInstrumentUpsertOne struct {
		create *SessionInstrumentCreate
	}

	// SessionInstrumentUpsert is the "OnConflict" setter.
	SessionInstrumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionInstrumentUpsert) SetUpdatedAt(v time.Time) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdateUpdatedAt() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldUpdatedAt)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionInstrumentUpsert) SetSessionID(v uuid.UUID) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdateSessionID() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldSessionID)
	return u
}

// SetInstrumentVersionID sets the "instrument_version_id" field.
func (u *SessionInstrumentUpsert) SetInstrumentVersionID(v uuid.UUID) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldInstrumentVersionID, v)
	return u
}

// UpdateInstrumentVersionID sets the "instrument_version_id" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdateInstrumentVersionID() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldInstrumentVersionID)
	return u
}

// SetPosition sets the "position" field.
func (u *SessionInstrumentUpsert) SetPosition(v int) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdatePosition() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *SessionInstrumentUpsert) AddPosition(v int) *SessionInstrumentUpsert {
	u.Add(sessioninstrument.FieldPosition, v)
	return u
}

// SetCompleted sets the "completed" field.
func (u *SessionInstrumentUpsert) SetCompleted(v bool) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldCompleted, v)
	return u
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdateCompleted() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldCompleted)
	return u
}

// SetSkipped sets the "skipped" field.
func (u *SessionInstrumentUpsert) SetSkipped(v bool) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldSkipped, v)
	return u
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdateSkipped() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldSkipped)
	return u
}

// SetBelowScoringThreshold sets the "below_scoring_threshold" field.
func (u *SessionInstrumentUpsert) SetBelowScoringThreshold(v bool) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldBelowScoringThreshold, v)
	return u
}

// UpdateBelowScoringThreshold sets the "below_scoring_threshold" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdateBelowScoringThreshold() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldBelowScoringThreshold)
	return u
}

// SetCrisis sets the "crisis" field.
func (u *SessionInstrumentUpsert) SetCrisis(v bool) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldCrisis, v)
	return u
}

// UpdateCrisis sets the "crisis" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdateCrisis() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldCrisis)
	return u
}

// SetScore sets the "score" field.
func (u *SessionInstrumentUpsert) SetScore(v *screening.Score) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdateScore() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldScore)
	return u
}

// ClearScore clears the value of the "score" field.
func (u *SessionInstrumentUpsert) ClearScore() *SessionInstrumentUpsert {
	u.SetNull(sessioninstrument.FieldScore)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionInstrumentUpsert) SetCompletedAt(v time.Time) *SessionInstrumentUpsert {
	u.Set(sessioninstrument.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionInstrumentUpsert) UpdateCompletedAt() *SessionInstrumentUpsert {
	u.SetExcluded(sessioninstrument.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionInstrumentUpsert) ClearCompletedAt() *SessionInstrumentUpsert {
	u.SetNull(sessioninstrument.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionInstrument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessioninstrument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionInstrumentUpsertOne) UpdateNewValues() *SessionInstrumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessioninstrument.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sessioninstrument.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionInstrument.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionInstrumentUpsertOne) Ignore() *SessionInstrumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionInstrumentUpsertOne) DoNothing() *SessionInstrumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionInstrumentCreate.OnConflict
// documentation for more info.
func (u *SessionInstrumentUpsertOne) Update(set func(*SessionInstrumentUpsert)) *SessionInstrumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionInstrumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionInstrumentUpsertOne) SetUpdatedAt(v time.Time) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdateUpdatedAt() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSessionID sets the "session_id" field.
func (u *SessionInstrumentUpsertOne) SetSessionID(v uuid.UUID) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdateSessionID() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateSessionID()
	})
}

// SetInstrumentVersionID sets the "instrument_version_id" field.
func (u *SessionInstrumentUpsertOne) SetInstrumentVersionID(v uuid.UUID) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetInstrumentVersionID(v)
	})
}

// UpdateInstrumentVersionID sets the "instrument_version_id" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdateInstrumentVersionID() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateInstrumentVersionID()
	})
}

// SetPosition sets the "position" field.
func (u *SessionInstrumentUpsertOne) SetPosition(v int) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *SessionInstrumentUpsertOne) AddPosition(v int) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdatePosition() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdatePosition()
	})
}

// SetCompleted sets the "completed" field.
func (u *SessionInstrumentUpsertOne) SetCompleted(v bool) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdateCompleted() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateCompleted()
	})
}

// SetSkipped sets the "skipped" field.
func (u *SessionInstrumentUpsertOne) SetSkipped(v bool) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetSkipped(v)
	})
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdateSkipped() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateSkipped()
	})
}

// SetBelowScoringThreshold sets the "below_scoring_threshold" field.
func (u *SessionInstrumentUpsertOne) SetBelowScoringThreshold(v bool) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetBelowScoringThreshold(v)
	})
}

// UpdateBelowScoringThreshold sets the "below_scoring_threshold" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdateBelowScoringThreshold() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateBelowScoringThreshold()
	})
}

// SetCrisis sets the "crisis" field.
func (u *SessionInstrumentUpsertOne) SetCrisis(v bool) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetCrisis(v)
	})
}

// UpdateCrisis sets the "crisis" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdateCrisis() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateCrisis()
	})
}

// SetScore sets the "score" field.
func (u *SessionInstrumentUpsertOne) SetScore(v *screening.Score) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdateScore() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *SessionInstrumentUpsertOne) ClearScore() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.ClearScore()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionInstrumentUpsertOne) SetCompletedAt(v time.Time) *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionInstrumentUpsertOne) UpdateCompletedAt() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionInstrumentUpsertOne) ClearCompletedAt() *SessionInstrumentUpsertOne {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SessionInstrumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionInstrumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionInstrumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionInstrumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SessionInstrumentUpsertOne.ID is not supported by MySQL driver. Use SessionInstrumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionInstrumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionInstrumentCreateBulk is the builder for creating many SessionInstrument entities in bulk.
type SessionInstrumentCreateBulk struct {
	config
	err      error
	builders []*SessionInstrumentCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionInstrument entities in the database.
func (_c *SessionInstrumentCreateBulk) Save(ctx context.Context) ([]*SessionInstrument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionInstrument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionInstrumentMutation)
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
func (_c *SessionInstrumentCreateBulk) SaveX(ctx context.Context) []*SessionInstrument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionInstrumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionInstrumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionInstrument.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionInstrumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionInstrumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionInstrumentUpsertBulk {
	_c.conflict = opts
	return &SessionInstrumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionInstrument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionInstrumentCreateBulk) OnConflictColumns(columns ...string) *SessionInstrumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionInstrumentUpsertBulk{
		create: _c,
	}
}

// SessionInstrumentUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionInstrument nodes.
type SessionInstrumentUpsertBulk struct {
	create *SessionInstrumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionInstrument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessioninstrument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionInstrumentUpsertBulk) UpdateNewValues() *SessionInstrumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessioninstrument.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sessioninstrument.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionInstrument.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionInstrumentUpsertBulk) Ignore() *SessionInstrumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionInstrumentUpsertBulk) DoNothing() *SessionInstrumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionInstrumentCreateBulk.OnConflict
// documentation for more info.
func (u *SessionInstrumentUpsertBulk) Update(set func(*SessionInstrumentUpsert)) *SessionInstrumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionInstrumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionInstrumentUpsertBulk) SetUpdatedAt(v time.Time) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdateUpdatedAt() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSessionID sets the "session_id" field.
func (u *SessionInstrumentUpsertBulk) SetSessionID(v uuid.UUID) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdateSessionID() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateSessionID()
	})
}

// SetInstrumentVersionID sets the "instrument_version_id" field.
func (u *SessionInstrumentUpsertBulk) SetInstrumentVersionID(v uuid.UUID) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetInstrumentVersionID(v)
	})
}

// UpdateInstrumentVersionID sets the "instrument_version_id" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdateInstrumentVersionID() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateInstrumentVersionID()
	})
}

// SetPosition sets the "position" field.
func (u *SessionInstrumentUpsertBulk) SetPosition(v int) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *SessionInstrumentUpsertBulk) AddPosition(v int) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdatePosition() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdatePosition()
	})
}

// SetCompleted sets the "completed" field.
func (u *SessionInstrumentUpsertBulk) SetCompleted(v bool) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdateCompleted() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateCompleted()
	})
}

// SetSkipped sets the "skipped" field.
func (u *SessionInstrumentUpsertBulk) SetSkipped(v bool) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetSkipped(v)
	})
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdateSkipped() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateSkipped()
	})
}

// SetBelowScoringThreshold sets the "below_scoring_threshold" field.
func (u *SessionInstrumentUpsertBulk) SetBelowScoringThreshold(v bool) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetBelowScoringThreshold(v)
	})
}

// UpdateBelowScoringThreshold sets the "below_scoring_threshold" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdateBelowScoringThreshold() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateBelowScoringThreshold()
	})
}

// SetCrisis sets the "crisis" field.
func (u *SessionInstrumentUpsertBulk) SetCrisis(v bool) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetCrisis(v)
	})
}

// UpdateCrisis sets the "crisis" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdateCrisis() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateCrisis()
	})
}

// SetScore sets the "score" field.
func (u *SessionInstrumentUpsertBulk) SetScore(v *screening.Score) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdateScore() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *SessionInstrumentUpsertBulk) ClearScore() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.ClearScore()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionInstrumentUpsertBulk) SetCompletedAt(v time.Time) *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionInstrumentUpsertBulk) UpdateCompletedAt() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionInstrumentUpsertBulk) ClearCompletedAt() *SessionInstrumentUpsertBulk {
	return u.Update(func(s *SessionInstrumentUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SessionInstrumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SessionInstrumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionInstrumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionInstrumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
