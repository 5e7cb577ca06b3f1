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
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnswerCreate) SetCreatedAt(v time.Time) *AnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableCreatedAt(v *time.Time) *AnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSessionInstrumentID sets the "session_instrument_id" field.
func (_c *AnswerCreate) SetSessionInstrumentID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetSessionInstrumentID(v)
	return _c
}

// SetQuestionKey sets the "question_key" field.
func (_c *AnswerCreate) SetQuestionKey(v string) *AnswerCreate {
	_c.mutation.SetQuestionKey(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *AnswerCreate) SetFormat(v answer.Format) *AnswerCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetOptionKeys sets the "option_keys" field.
func (_c *AnswerCreate) SetOptionKeys(v []string) *AnswerCreate {
	_c.mutation.SetOptionKeys(v)
	return _c
}

// SetFreeText sets the "free_text" field.
func (_c *AnswerCreate) SetFreeText(v string) *AnswerCreate {
	_c.mutation.SetFreeText(v)
	return _c
}

// SetNillableFreeText sets the "free_text" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableFreeText(v *string) *AnswerCreate {
	if v != nil {
		_c.SetFreeText(*v)
	}
	return _c
}

// SetRecordedBy sets the "recorded_by" field.
func (_c *AnswerCreate) SetRecordedBy(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetRecordedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AnswerCreate) SetID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableID(v *uuid.UUID) *AnswerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSessionInstrument sets the "session_instrument" edge to the SessionInstrument entity.
func (_c *AnswerCreate) SetSessionInstrument(v *SessionInstrument) *AnswerCreate {
	return _c.SetSessionInstrumentID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := answer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := answer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Answer.created_at"`)}
	}
	if _, ok := _c.mutation.SessionInstrumentID(); !ok {
		return &ValidationError{Name: "session_instrument_id", err: errors.New(`repo: missing required field "Answer.session_instrument_id"`)}
	}
	if _, ok := _c.mutation.QuestionKey(); !ok {
		return &ValidationError{Name: "question_key", err: errors.New(`repo: missing required field "Answer.question_key"`)}
	}
	if v, ok := _c.mutation.QuestionKey(); ok {
		if err := answer.QuestionKeyValidator(v); err != nil {
			return &ValidationError{Name: "question_key", err: fmt.Errorf(`repo: validator failed for field "Answer.question_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`repo: missing required field "Answer.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := answer.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`repo: validator failed for field "Answer.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordedBy(); !ok {
		return &ValidationError{Name: "recorded_by", err: errors.New(`repo: missing required field "Answer.recorded_by"`)}
	}
	if len(_c.mutation.SessionInstrumentIDs()) == 0 {
		return &ValidationError{Name: "session_instrument", err: errors.New(`repo: missing required edge "Answer.session_instrument"`)}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
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

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(answer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.QuestionKey(); ok {
		_spec.SetField(answer.FieldQuestionKey, field.TypeString, value)
		_node.QuestionKey = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(answer.FieldFormat, field.TypeEnum, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.OptionKeys(); ok {
		_spec.SetField(answer.FieldOptionKeys, field.TypeJSON, value)
		_node.OptionKeys = value
	}
	if value, ok := _c.mutation.FreeText(); ok {
		_spec.SetField(answer.FieldFreeText, field.TypeString, value)
		_node.FreeText = &value
	}
	if value, ok := _c.mutation.RecordedBy(); ok {
		_spec.SetField(answer.FieldRecordedBy, field.TypeUUID, value)
		_node.RecordedBy = value
	}
	if nodes := _c.mutation.SessionInstrumentIDs(); len(nodes) > 0 {
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
		_node.SessionInstrumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Answer.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerCreate) OnConflict(opts ...sql.ConflictOption) *AnswerUpsertOne {
	_c.conflict = opts
	return &AnswerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerCreate) OnConflictColumns(columns ...string) *AnswerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerUpsertOne{
		create: _c,
	}
}

type (
	// AnswerUpsertOne is the builder for "upsert"-ing
	//  one Answer node.
	AnswerUpsertOne struct {
		create *AnswerCreate
	}

	// AnswerUpsert is the "OnConflict" setter.
	AnswerUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionInstrumentID sets the "session_instrument_id" field.
func (u *AnswerUpsert) SetSessionInstrumentID(v uuid.UUID) *AnswerUpsert {
	u.Set(answer.FieldSessionInstrumentID, v)
	return u
}

// UpdateSessionInstrumentID sets the "session_instrument_id" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateSessionInstrumentID() *AnswerUpsert {
	u.SetExcluded(answer.FieldSessionInstrumentID)
	return u
}

// SetQuestionKey sets the "question_key" field.
func (u *AnswerUpsert) SetQuestionKey(v string) *AnswerUpsert {
	u.Set(answer.FieldQuestionKey, v)
	return u
}

// UpdateQuestionKey sets the "question_key" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateQuestionKey() *AnswerUpsert {
	u.SetExcluded(answer.FieldQuestionKey)
	return u
}

// SetFormat sets the "format" field.
func (u *AnswerUpsert) SetFormat(v answer.Format) *AnswerUpsert {
	u.Set(answer.FieldFormat, v)
	return u
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateFormat() *AnswerUpsert {
	u.SetExcluded(answer.FieldFormat)
	return u
}

// SetOptionKeys sets the "option_keys" field.
func (u *AnswerUpsert) SetOptionKeys(v []string) *AnswerUpsert {
	u.Set(answer.FieldOptionKeys, v)
	return u
}

// UpdateOptionKeys sets the "option_keys" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateOptionKeys() *AnswerUpsert {
	u.SetExcluded(answer.FieldOptionKeys)
	return u
}

// ClearOptionKeys clears the value of the "option_keys" field.
func (u *AnswerUpsert) ClearOptionKeys() *AnswerUpsert {
	u.SetNull(answer.FieldOptionKeys)
	return u
}

// SetFreeText sets the "free_text" field.
func (u *AnswerUpsert) SetFreeText(v string) *AnswerUpsert {
	u.Set(answer.FieldFreeText, v)
	return u
}

// UpdateFreeText sets the "free_text" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateFreeText() *AnswerUpsert {
	u.SetExcluded(answer.FieldFreeText)
	return u
}

// ClearFreeText clears the value of the "free_text" field.
func (u *AnswerUpsert) ClearFreeText() *AnswerUpsert {
	u.SetNull(answer.FieldFreeText)
	return u
}

// SetRecordedBy sets the "recorded_by" field.
func (u *AnswerUpsert) SetRecordedBy(v uuid.UUID) *AnswerUpsert {
	u.Set(answer.FieldRecordedBy, v)
	return u
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateRecordedBy() *AnswerUpsert {
	u.SetExcluded(answer.FieldRecordedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(answer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnswerUpsertOne) UpdateNewValues() *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(answer.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(answer.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Answer.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnswerUpsertOne) Ignore() *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerUpsertOne) DoNothing() *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerCreate.OnConflict
// documentation for more info.
func (u *AnswerUpsertOne) Update(set func(*AnswerUpsert)) *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionInstrumentID sets the "session_instrument_id" field.
func (u *AnswerUpsertOne) SetSessionInstrumentID(v uuid.UUID) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetSessionInstrumentID(v)
	})
}

// UpdateSessionInstrumentID sets the "session_instrument_id" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateSessionInstrumentID() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateSessionInstrumentID()
	})
}

// SetQuestionKey sets the "question_key" field.
func (u *AnswerUpsertOne) SetQuestionKey(v string) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetQuestionKey(v)
	})
}

// UpdateQuestionKey sets the "question_key" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateQuestionKey() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateQuestionKey()
	})
}

// SetFormat sets the "format" field.
func (u *AnswerUpsertOne) SetFormat(v answer.Format) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateFormat() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateFormat()
	})
}

// SetOptionKeys sets the "option_keys" field.
func (u *AnswerUpsertOne) SetOptionKeys(v []string) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetOptionKeys(v)
	})
}

// UpdateOptionKeys sets the "option_keys" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateOptionKeys() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateOptionKeys()
	})
}

// ClearOptionKeys clears the value of the "option_keys" field.
func (u *AnswerUpsertOne) ClearOptionKeys() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearOptionKeys()
	})
}

// SetFreeText sets the "free_text" field.
func (u *AnswerUpsertOne) SetFreeText(v string) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetFreeText(v)
	})
}

// UpdateFreeText sets the "free_text" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateFreeText() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateFreeText()
	})
}

// ClearFreeText clears the value of the "free_text" field.
func (u *AnswerUpsertOne) ClearFreeText() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearFreeText()
	})
}

// SetRecordedBy sets the "recorded_by" field.
func (u *AnswerUpsertOne) SetRecordedBy(v uuid.UUID) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetRecordedBy(v)
	})
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateRecordedBy() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateRecordedBy()
	})
}

// Exec executes the query.
func (u *AnswerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AnswerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnswerUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AnswerUpsertOne.ID is not supported by MySQL driver. Use AnswerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnswerUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
	conflict []sql.ConflictOption
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
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
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Answer.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnswerUpsertBulk {
	_c.conflict = opts
	return &AnswerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerCreateBulk) OnConflictColumns(columns ...string) *AnswerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerUpsertBulk{
		create: _c,
	}
}

// AnswerUpsertBulk is the builder for "upsert"-ing
// a bulk of Answer nodes.
type AnswerUpsertBulk struct {
	create *AnswerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(answer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnswerUpsertBulk) UpdateNewValues() *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(answer.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(answer.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnswerUpsertBulk) Ignore() *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerUpsertBulk) DoNothing() *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerCreateBulk.OnConflict
// documentation for more info.
func (u *AnswerUpsertBulk) Update(set func(*AnswerUpsert)) *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionInstrumentID sets the "session_instrument_id" field.
func (u *AnswerUpsertBulk) SetSessionInstrumentID(v uuid.UUID) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetSessionInstrumentID(v)
	})
}

// UpdateSessionInstrumentID sets the "session_instrument_id" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateSessionInstrumentID() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateSessionInstrumentID()
	})
}

// SetQuestionKey sets the "question_key" field.
func (u *AnswerUpsertBulk) SetQuestionKey(v string) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetQuestionKey(v)
	})
}

// UpdateQuestionKey sets the "question_key" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateQuestionKey() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateQuestionKey()
	})
}

// SetFormat sets the "format" field.
func (u *AnswerUpsertBulk) SetFormat(v answer.Format) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateFormat() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateFormat()
	})
}

// SetOptionKeys sets the "option_keys" field.
func (u *AnswerUpsertBulk) SetOptionKeys(v []string) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetOptionKeys(v)
	})
}

// UpdateOptionKeys sets the "option_keys" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateOptionKeys() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateOptionKeys()
	})
}

// ClearOptionKeys clears the value of the "option_keys" field.
func (u *AnswerUpsertBulk) ClearOptionKeys() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearOptionKeys()
	})
}

// SetFreeText sets the "free_text" field.
func (u *AnswerUpsertBulk) SetFreeText(v string) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetFreeText(v)
	})
}

// UpdateFreeText sets the "free_text" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateFreeText() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateFreeText()
	})
}

// ClearFreeText clears the value of the "free_text" field.
func (u *AnswerUpsertBulk) ClearFreeText() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearFreeText()
	})
}

// SetRecordedBy sets the "recorded_by" field.
func (u *AnswerUpsertBulk) SetRecordedBy(v uuid.UUID) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetRecordedBy(v)
	})
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateRecordedBy() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateRecordedBy()
	})
}

// Exec executes the query.
func (u *AnswerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AnswerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AnswerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
