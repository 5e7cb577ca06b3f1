// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/answer"
	"github.com/marlowhealth/compass_backend/internal/repo/flow"
	"github.com/marlowhealth/compass_backend/internal/repo/flowversion"
	"github.com/marlowhealth/compass_backend/internal/repo/instrument"
	"github.com/marlowhealth/compass_backend/internal/repo/instrumentversion"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
	"github.com/marlowhealth/compass_backend/internal/repo/screeningsession"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
	"github.com/marlowhealth/compass_backend/internal/repo/triage"
	"github.com/marlowhealth/compass_backend/internal/repo/triagegroup"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswer            = "Answer"
	TypeFlow              = "Flow"
	TypeFlowVersion       = "FlowVersion"
	TypeInstrument        = "Instrument"
	TypeInstrumentVersion = "InstrumentVersion"
	TypeScreeningSession  = "ScreeningSession"
	TypeSessionInstrument = "SessionInstrument"
	TypeTriage            = "Triage"
	TypeTriageGroup       = "TriageGroup"
)

// AnswerMutation represents an operation that mutates the Answer nodes in the graph.
type AnswerMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	created_at                *time.Time
	question_key              *string
	format                    *answer.Format
	option_keys               *[]string
	appendoption_keys         []string
	free_text                 *string
	recorded_by               *uuid.UUID
	clearedFields             map[string]struct{}
	session_instrument        *uuid.UUID
	clearedsession_instrument bool
	done                      bool
	oldValue                  func(context.Context) (*Answer, error)
	predicates                []predicate.Answer
}

var _ ent.Mutation = (*AnswerMutation)(nil)

// answerOption allows management of the mutation configuration using functional options.
type answerOption func(*AnswerMutation)

// newAnswerMutation creates new mutation for the Answer entity.
func newAnswerMutation(c config, op Op, opts ...answerOption) *AnswerMutation {
	m := &AnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerID sets the ID field of the mutation.
func withAnswerID(id uuid.UUID) answerOption {
	return func(m *AnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *Answer
		)
		m.oldValue = func(ctx context.Context) (*Answer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Answer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswer sets the old Answer of the mutation.
func withAnswer(node *Answer) answerOption {
	return func(m *AnswerMutation) {
		m.oldValue = func(context.Context) (*Answer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Answer entities.
func (m *AnswerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Answer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSessionInstrumentID sets the "session_instrument_id" field.
func (m *AnswerMutation) SetSessionInstrumentID(u uuid.UUID) {
	m.session_instrument = &u
}

// SessionInstrumentID returns the value of the "session_instrument_id" field in the mutation.
func (m *AnswerMutation) SessionInstrumentID() (r uuid.UUID, exists bool) {
	v := m.session_instrument
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionInstrumentID returns the old "session_instrument_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSessionInstrumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionInstrumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionInstrumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionInstrumentID: %w", err)
	}
	return oldValue.SessionInstrumentID, nil
}

// ResetSessionInstrumentID resets all changes to the "session_instrument_id" field.
func (m *AnswerMutation) ResetSessionInstrumentID() {
	m.session_instrument = nil
}

// SetQuestionKey sets the "question_key" field.
func (m *AnswerMutation) SetQuestionKey(s string) {
	m.question_key = &s
}

// QuestionKey returns the value of the "question_key" field in the mutation.
func (m *AnswerMutation) QuestionKey() (r string, exists bool) {
	v := m.question_key
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionKey returns the old "question_key" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldQuestionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionKey: %w", err)
	}
	return oldValue.QuestionKey, nil
}

// ResetQuestionKey resets all changes to the "question_key" field.
func (m *AnswerMutation) ResetQuestionKey() {
	m.question_key = nil
}

// SetFormat sets the "format" field.
func (m *AnswerMutation) SetFormat(a answer.Format) {
	m.format = &a
}

// Format returns the value of the "format" field in the mutation.
func (m *AnswerMutation) Format() (r answer.Format, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldFormat(ctx context.Context) (v answer.Format, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *AnswerMutation) ResetFormat() {
	m.format = nil
}

// SetOptionKeys sets the "option_keys" field.
func (m *AnswerMutation) SetOptionKeys(s []string) {
	m.option_keys = &s
	m.appendoption_keys = nil
}

// OptionKeys returns the value of the "option_keys" field in the mutation.
func (m *AnswerMutation) OptionKeys() (r []string, exists bool) {
	v := m.option_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionKeys returns the old "option_keys" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldOptionKeys(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionKeys: %w", err)
	}
	return oldValue.OptionKeys, nil
}

// AppendOptionKeys adds s to the "option_keys" field.
func (m *AnswerMutation) AppendOptionKeys(s []string) {
	m.appendoption_keys = append(m.appendoption_keys, s...)
}

// AppendedOptionKeys returns the list of values that were appended to the "option_keys" field in this mutation.
func (m *AnswerMutation) AppendedOptionKeys() ([]string, bool) {
	if len(m.appendoption_keys) == 0 {
		return nil, false
	}
	return m.appendoption_keys, true
}

// ClearOptionKeys clears the value of the "option_keys" field.
func (m *AnswerMutation) ClearOptionKeys() {
	m.option_keys = nil
	m.appendoption_keys = nil
	m.clearedFields[answer.FieldOptionKeys] = struct{}{}
}

// OptionKeysCleared returns if the "option_keys" field was cleared in this mutation.
func (m *AnswerMutation) OptionKeysCleared() bool {
	_, ok := m.clearedFields[answer.FieldOptionKeys]
	return ok
}

// ResetOptionKeys resets all changes to the "option_keys" field.
func (m *AnswerMutation) ResetOptionKeys() {
	m.option_keys = nil
	m.appendoption_keys = nil
	delete(m.clearedFields, answer.FieldOptionKeys)
}

// SetFreeText sets the "free_text" field.
func (m *AnswerMutation) SetFreeText(s string) {
	m.free_text = &s
}

// FreeText returns the value of the "free_text" field in the mutation.
func (m *AnswerMutation) FreeText() (r string, exists bool) {
	v := m.free_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFreeText returns the old "free_text" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldFreeText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreeText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreeText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreeText: %w", err)
	}
	return oldValue.FreeText, nil
}

// ClearFreeText clears the value of the "free_text" field.
func (m *AnswerMutation) ClearFreeText() {
	m.free_text = nil
	m.clearedFields[answer.FieldFreeText] = struct{}{}
}

// FreeTextCleared returns if the "free_text" field was cleared in this mutation.
func (m *AnswerMutation) FreeTextCleared() bool {
	_, ok := m.clearedFields[answer.FieldFreeText]
	return ok
}

// ResetFreeText resets all changes to the "free_text" field.
func (m *AnswerMutation) ResetFreeText() {
	m.free_text = nil
	delete(m.clearedFields, answer.FieldFreeText)
}

// SetRecordedBy sets the "recorded_by" field.
func (m *AnswerMutation) SetRecordedBy(u uuid.UUID) {
	m.recorded_by = &u
}

// RecordedBy returns the value of the "recorded_by" field in the mutation.
func (m *AnswerMutation) RecordedBy() (r uuid.UUID, exists bool) {
	v := m.recorded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedBy returns the old "recorded_by" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldRecordedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedBy: %w", err)
	}
	return oldValue.RecordedBy, nil
}

// ResetRecordedBy resets all changes to the "recorded_by" field.
func (m *AnswerMutation) ResetRecordedBy() {
	m.recorded_by = nil
}

// ClearSessionInstrument clears the "session_instrument" edge to the SessionInstrument entity.
func (m *AnswerMutation) ClearSessionInstrument() {
	m.clearedsession_instrument = true
	m.clearedFields[answer.FieldSessionInstrumentID] = struct{}{}
}

// SessionInstrumentCleared reports if the "session_instrument" edge to the SessionInstrument entity was cleared.
func (m *AnswerMutation) SessionInstrumentCleared() bool {
	return m.clearedsession_instrument
}

// SessionInstrumentIDs returns the "session_instrument" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionInstrumentID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) SessionInstrumentIDs() (ids []uuid.UUID) {
	if id := m.session_instrument; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSessionInstrument resets all changes to the "session_instrument" edge.
func (m *AnswerMutation) ResetSessionInstrument() {
	m.session_instrument = nil
	m.clearedsession_instrument = false
}

// Where appends a list predicates to the AnswerMutation builder.
func (m *AnswerMutation) Where(ps ...predicate.Answer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Answer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Answer).
func (m *AnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, answer.FieldCreatedAt)
	}
	if m.session_instrument != nil {
		fields = append(fields, answer.FieldSessionInstrumentID)
	}
	if m.question_key != nil {
		fields = append(fields, answer.FieldQuestionKey)
	}
	if m.format != nil {
		fields = append(fields, answer.FieldFormat)
	}
	if m.option_keys != nil {
		fields = append(fields, answer.FieldOptionKeys)
	}
	if m.free_text != nil {
		fields = append(fields, answer.FieldFreeText)
	}
	if m.recorded_by != nil {
		fields = append(fields, answer.FieldRecordedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldCreatedAt:
		return m.CreatedAt()
	case answer.FieldSessionInstrumentID:
		return m.SessionInstrumentID()
	case answer.FieldQuestionKey:
		return m.QuestionKey()
	case answer.FieldFormat:
		return m.Format()
	case answer.FieldOptionKeys:
		return m.OptionKeys()
	case answer.FieldFreeText:
		return m.FreeText()
	case answer.FieldRecordedBy:
		return m.RecordedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case answer.FieldSessionInstrumentID:
		return m.OldSessionInstrumentID(ctx)
	case answer.FieldQuestionKey:
		return m.OldQuestionKey(ctx)
	case answer.FieldFormat:
		return m.OldFormat(ctx)
	case answer.FieldOptionKeys:
		return m.OldOptionKeys(ctx)
	case answer.FieldFreeText:
		return m.OldFreeText(ctx)
	case answer.FieldRecordedBy:
		return m.OldRecordedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Answer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case answer.FieldSessionInstrumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionInstrumentID(v)
		return nil
	case answer.FieldQuestionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionKey(v)
		return nil
	case answer.FieldFormat:
		v, ok := value.(answer.Format)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case answer.FieldOptionKeys:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionKeys(v)
		return nil
	case answer.FieldFreeText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreeText(v)
		return nil
	case answer.FieldRecordedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Answer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answer.FieldOptionKeys) {
		fields = append(fields, answer.FieldOptionKeys)
	}
	if m.FieldCleared(answer.FieldFreeText) {
		fields = append(fields, answer.FieldFreeText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerMutation) ClearField(name string) error {
	switch name {
	case answer.FieldOptionKeys:
		m.ClearOptionKeys()
		return nil
	case answer.FieldFreeText:
		m.ClearFreeText()
		return nil
	}
	return fmt.Errorf("unknown Answer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerMutation) ResetField(name string) error {
	switch name {
	case answer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case answer.FieldSessionInstrumentID:
		m.ResetSessionInstrumentID()
		return nil
	case answer.FieldQuestionKey:
		m.ResetQuestionKey()
		return nil
	case answer.FieldFormat:
		m.ResetFormat()
		return nil
	case answer.FieldOptionKeys:
		m.ResetOptionKeys()
		return nil
	case answer.FieldFreeText:
		m.ResetFreeText()
		return nil
	case answer.FieldRecordedBy:
		m.ResetRecordedBy()
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session_instrument != nil {
		edges = append(edges, answer.EdgeSessionInstrument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answer.EdgeSessionInstrument:
		if id := m.session_instrument; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession_instrument {
		edges = append(edges, answer.EdgeSessionInstrument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case answer.EdgeSessionInstrument:
		return m.clearedsession_instrument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerMutation) ClearEdge(name string) error {
	switch name {
	case answer.EdgeSessionInstrument:
		m.ClearSessionInstrument()
		return nil
	}
	return fmt.Errorf("unknown Answer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerMutation) ResetEdge(name string) error {
	switch name {
	case answer.EdgeSessionInstrument:
		m.ResetSessionInstrument()
		return nil
	}
	return fmt.Errorf("unknown Answer edge %s", name)
}

// FlowMutation represents an operation that mutates the Flow nodes in the graph.
type FlowMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	slug               *string
	name               *string
	description        *string
	current_version_id *uuid.UUID
	is_active          *bool
	clearedFields      map[string]struct{}
	versions           map[uuid.UUID]struct{}
	removedversions    map[uuid.UUID]struct{}
	clearedversions    bool
	done               bool
	oldValue           func(context.Context) (*Flow, error)
	predicates         []predicate.Flow
}

var _ ent.Mutation = (*FlowMutation)(nil)

// flowOption allows management of the mutation configuration using functional options.
type flowOption func(*FlowMutation)

// newFlowMutation creates new mutation for the Flow entity.
func newFlowMutation(c config, op Op, opts ...flowOption) *FlowMutation {
	m := &FlowMutation{
		config:        c,
		op:            op,
		typ:           TypeFlow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlowID sets the ID field of the mutation.
func withFlowID(id uuid.UUID) flowOption {
	return func(m *FlowMutation) {
		var (
			err   error
			once  sync.Once
			value *Flow
		)
		m.oldValue = func(ctx context.Context) (*Flow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Flow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlow sets the old Flow of the mutation.
func withFlow(node *Flow) flowOption {
	return func(m *FlowMutation) {
		m.oldValue = func(context.Context) (*Flow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Flow entities.
func (m *FlowMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlowMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlowMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Flow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FlowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FlowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Flow entity.
// If the Flow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FlowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FlowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FlowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Flow entity.
// If the Flow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FlowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSlug sets the "slug" field.
func (m *FlowMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *FlowMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Flow entity.
// If the Flow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *FlowMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *FlowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FlowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Flow entity.
// If the Flow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FlowMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *FlowMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *FlowMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Flow entity.
// If the Flow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *FlowMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[flow.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *FlowMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[flow.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *FlowMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, flow.FieldDescription)
}

// SetCurrentVersionID sets the "current_version_id" field.
func (m *FlowMutation) SetCurrentVersionID(u uuid.UUID) {
	m.current_version_id = &u
}

// CurrentVersionID returns the value of the "current_version_id" field in the mutation.
func (m *FlowMutation) CurrentVersionID() (r uuid.UUID, exists bool) {
	v := m.current_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersionID returns the old "current_version_id" field's value of the Flow entity.
// If the Flow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowMutation) OldCurrentVersionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersionID: %w", err)
	}
	return oldValue.CurrentVersionID, nil
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (m *FlowMutation) ClearCurrentVersionID() {
	m.current_version_id = nil
	m.clearedFields[flow.FieldCurrentVersionID] = struct{}{}
}

// CurrentVersionIDCleared returns if the "current_version_id" field was cleared in this mutation.
func (m *FlowMutation) CurrentVersionIDCleared() bool {
	_, ok := m.clearedFields[flow.FieldCurrentVersionID]
	return ok
}

// ResetCurrentVersionID resets all changes to the "current_version_id" field.
func (m *FlowMutation) ResetCurrentVersionID() {
	m.current_version_id = nil
	delete(m.clearedFields, flow.FieldCurrentVersionID)
}

// SetIsActive sets the "is_active" field.
func (m *FlowMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *FlowMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Flow entity.
// If the Flow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *FlowMutation) ResetIsActive() {
	m.is_active = nil
}

// AddVersionIDs adds the "versions" edge to the FlowVersion entity by ids.
func (m *FlowMutation) AddVersionIDs(ids ...uuid.UUID) {
	if m.versions == nil {
		m.versions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the FlowVersion entity.
func (m *FlowMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the FlowVersion entity was cleared.
func (m *FlowMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the FlowVersion entity by IDs.
func (m *FlowMutation) RemoveVersionIDs(ids ...uuid.UUID) {
	if m.removedversions == nil {
		m.removedversions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the FlowVersion entity.
func (m *FlowMutation) RemovedVersionsIDs() (ids []uuid.UUID) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *FlowMutation) VersionsIDs() (ids []uuid.UUID) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *FlowMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the FlowMutation builder.
func (m *FlowMutation) Where(ps ...predicate.Flow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Flow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Flow).
func (m *FlowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlowMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, flow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, flow.FieldUpdatedAt)
	}
	if m.slug != nil {
		fields = append(fields, flow.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, flow.FieldName)
	}
	if m.description != nil {
		fields = append(fields, flow.FieldDescription)
	}
	if m.current_version_id != nil {
		fields = append(fields, flow.FieldCurrentVersionID)
	}
	if m.is_active != nil {
		fields = append(fields, flow.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flow.FieldCreatedAt:
		return m.CreatedAt()
	case flow.FieldUpdatedAt:
		return m.UpdatedAt()
	case flow.FieldSlug:
		return m.Slug()
	case flow.FieldName:
		return m.Name()
	case flow.FieldDescription:
		return m.Description()
	case flow.FieldCurrentVersionID:
		return m.CurrentVersionID()
	case flow.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case flow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case flow.FieldSlug:
		return m.OldSlug(ctx)
	case flow.FieldName:
		return m.OldName(ctx)
	case flow.FieldDescription:
		return m.OldDescription(ctx)
	case flow.FieldCurrentVersionID:
		return m.OldCurrentVersionID(ctx)
	case flow.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Flow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case flow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case flow.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case flow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case flow.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case flow.FieldCurrentVersionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersionID(v)
		return nil
	case flow.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Flow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlowMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlowMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Flow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(flow.FieldDescription) {
		fields = append(fields, flow.FieldDescription)
	}
	if m.FieldCleared(flow.FieldCurrentVersionID) {
		fields = append(fields, flow.FieldCurrentVersionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlowMutation) ClearField(name string) error {
	switch name {
	case flow.FieldDescription:
		m.ClearDescription()
		return nil
	case flow.FieldCurrentVersionID:
		m.ClearCurrentVersionID()
		return nil
	}
	return fmt.Errorf("unknown Flow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlowMutation) ResetField(name string) error {
	switch name {
	case flow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case flow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case flow.FieldSlug:
		m.ResetSlug()
		return nil
	case flow.FieldName:
		m.ResetName()
		return nil
	case flow.FieldDescription:
		m.ResetDescription()
		return nil
	case flow.FieldCurrentVersionID:
		m.ResetCurrentVersionID()
		return nil
	case flow.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Flow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlowMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.versions != nil {
		edges = append(edges, flow.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case flow.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedversions != nil {
		edges = append(edges, flow.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case flow.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedversions {
		edges = append(edges, flow.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlowMutation) EdgeCleared(name string) bool {
	switch name {
	case flow.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlowMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Flow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlowMutation) ResetEdge(name string) error {
	switch name {
	case flow.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown Flow edge %s", name)
}

// FlowVersionMutation represents an operation that mutates the FlowVersion nodes in the graph.
type FlowVersionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	version       *int
	addversion    *int
	mandatory     *bool
	steps         *[]screening.FlowStep
	appendsteps   []screening.FlowStep
	published_at  *time.Time
	clearedFields map[string]struct{}
	flow          *uuid.UUID
	clearedflow   bool
	done          bool
	oldValue      func(context.Context) (*FlowVersion, error)
	predicates    []predicate.FlowVersion
}

var _ ent.Mutation = (*FlowVersionMutation)(nil)

// flowversionOption allows management of the mutation configuration using functional options.
type flowversionOption func(*FlowVersionMutation)

// newFlowVersionMutation creates new mutation for the FlowVersion entity.
func newFlowVersionMutation(c config, op Op, opts ...flowversionOption) *FlowVersionMutation {
	m := &FlowVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeFlowVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlowVersionID sets the ID field of the mutation.
func withFlowVersionID(id uuid.UUID) flowversionOption {
	return func(m *FlowVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *FlowVersion
		)
		m.oldValue = func(ctx context.Context) (*FlowVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FlowVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlowVersion sets the old FlowVersion of the mutation.
func withFlowVersion(node *FlowVersion) flowversionOption {
	return func(m *FlowVersionMutation) {
		m.oldValue = func(context.Context) (*FlowVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlowVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlowVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FlowVersion entities.
func (m *FlowVersionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlowVersionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlowVersionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FlowVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FlowVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FlowVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FlowVersion entity.
// If the FlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FlowVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFlowID sets the "flow_id" field.
func (m *FlowVersionMutation) SetFlowID(u uuid.UUID) {
	m.flow = &u
}

// FlowID returns the value of the "flow_id" field in the mutation.
func (m *FlowVersionMutation) FlowID() (r uuid.UUID, exists bool) {
	v := m.flow
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowID returns the old "flow_id" field's value of the FlowVersion entity.
// If the FlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowVersionMutation) OldFlowID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowID: %w", err)
	}
	return oldValue.FlowID, nil
}

// ResetFlowID resets all changes to the "flow_id" field.
func (m *FlowVersionMutation) ResetFlowID() {
	m.flow = nil
}

// SetVersion sets the "version" field.
func (m *FlowVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *FlowVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the FlowVersion entity.
// If the FlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *FlowVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *FlowVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *FlowVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetMandatory sets the "mandatory" field.
func (m *FlowVersionMutation) SetMandatory(b bool) {
	m.mandatory = &b
}

// Mandatory returns the value of the "mandatory" field in the mutation.
func (m *FlowVersionMutation) Mandatory() (r bool, exists bool) {
	v := m.mandatory
	if v == nil {
		return
	}
	return *v, true
}

// OldMandatory returns the old "mandatory" field's value of the FlowVersion entity.
// If the FlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowVersionMutation) OldMandatory(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMandatory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMandatory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMandatory: %w", err)
	}
	return oldValue.Mandatory, nil
}

// ResetMandatory resets all changes to the "mandatory" field.
func (m *FlowVersionMutation) ResetMandatory() {
	m.mandatory = nil
}

// SetSteps sets the "steps" field.
func (m *FlowVersionMutation) SetSteps(ss []screening.FlowStep) {
	m.steps = &ss
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *FlowVersionMutation) Steps() (r []screening.FlowStep, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the FlowVersion entity.
// If the FlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowVersionMutation) OldSteps(ctx context.Context) (v []screening.FlowStep, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds ss to the "steps" field.
func (m *FlowVersionMutation) AppendSteps(ss []screening.FlowStep) {
	m.appendsteps = append(m.appendsteps, ss...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *FlowVersionMutation) AppendedSteps() ([]screening.FlowStep, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *FlowVersionMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *FlowVersionMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *FlowVersionMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the FlowVersion entity.
// If the FlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowVersionMutation) OldPublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *FlowVersionMutation) ResetPublishedAt() {
	m.published_at = nil
}

// ClearFlow clears the "flow" edge to the Flow entity.
func (m *FlowVersionMutation) ClearFlow() {
	m.clearedflow = true
	m.clearedFields[flowversion.FieldFlowID] = struct{}{}
}

// FlowCleared reports if the "flow" edge to the Flow entity was cleared.
func (m *FlowVersionMutation) FlowCleared() bool {
	return m.clearedflow
}

// FlowIDs returns the "flow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FlowID instead. It exists only for internal usage by the builders.
func (m *FlowVersionMutation) FlowIDs() (ids []uuid.UUID) {
	if id := m.flow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFlow resets all changes to the "flow" edge.
func (m *FlowVersionMutation) ResetFlow() {
	m.flow = nil
	m.clearedflow = false
}

// Where appends a list predicates to the FlowVersionMutation builder.
func (m *FlowVersionMutation) Where(ps ...predicate.FlowVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlowVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlowVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FlowVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlowVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlowVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FlowVersion).
func (m *FlowVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlowVersionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, flowversion.FieldCreatedAt)
	}
	if m.flow != nil {
		fields = append(fields, flowversion.FieldFlowID)
	}
	if m.version != nil {
		fields = append(fields, flowversion.FieldVersion)
	}
	if m.mandatory != nil {
		fields = append(fields, flowversion.FieldMandatory)
	}
	if m.steps != nil {
		fields = append(fields, flowversion.FieldSteps)
	}
	if m.published_at != nil {
		fields = append(fields, flowversion.FieldPublishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlowVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flowversion.FieldCreatedAt:
		return m.CreatedAt()
	case flowversion.FieldFlowID:
		return m.FlowID()
	case flowversion.FieldVersion:
		return m.Version()
	case flowversion.FieldMandatory:
		return m.Mandatory()
	case flowversion.FieldSteps:
		return m.Steps()
	case flowversion.FieldPublishedAt:
		return m.PublishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlowVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flowversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case flowversion.FieldFlowID:
		return m.OldFlowID(ctx)
	case flowversion.FieldVersion:
		return m.OldVersion(ctx)
	case flowversion.FieldMandatory:
		return m.OldMandatory(ctx)
	case flowversion.FieldSteps:
		return m.OldSteps(ctx)
	case flowversion.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FlowVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flowversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case flowversion.FieldFlowID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowID(v)
		return nil
	case flowversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case flowversion.FieldMandatory:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMandatory(v)
		return nil
	case flowversion.FieldSteps:
		v, ok := value.([]screening.FlowStep)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case flowversion.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FlowVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlowVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, flowversion.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlowVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case flowversion.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case flowversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown FlowVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlowVersionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlowVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlowVersionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FlowVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlowVersionMutation) ResetField(name string) error {
	switch name {
	case flowversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case flowversion.FieldFlowID:
		m.ResetFlowID()
		return nil
	case flowversion.FieldVersion:
		m.ResetVersion()
		return nil
	case flowversion.FieldMandatory:
		m.ResetMandatory()
		return nil
	case flowversion.FieldSteps:
		m.ResetSteps()
		return nil
	case flowversion.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown FlowVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlowVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.flow != nil {
		edges = append(edges, flowversion.EdgeFlow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlowVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case flowversion.EdgeFlow:
		if id := m.flow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlowVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlowVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlowVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedflow {
		edges = append(edges, flowversion.EdgeFlow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlowVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case flowversion.EdgeFlow:
		return m.clearedflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlowVersionMutation) ClearEdge(name string) error {
	switch name {
	case flowversion.EdgeFlow:
		m.ClearFlow()
		return nil
	}
	return fmt.Errorf("unknown FlowVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlowVersionMutation) ResetEdge(name string) error {
	switch name {
	case flowversion.EdgeFlow:
		m.ResetFlow()
		return nil
	}
	return fmt.Errorf("unknown FlowVersion edge %s", name)
}

// InstrumentMutation represents an operation that mutates the Instrument nodes in the graph.
type InstrumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	slug               *string
	name               *string
	description        *string
	focus_area         *string
	current_version_id *uuid.UUID
	is_active          *bool
	clearedFields      map[string]struct{}
	versions           map[uuid.UUID]struct{}
	removedversions    map[uuid.UUID]struct{}
	clearedversions    bool
	done               bool
	oldValue           func(context.Context) (*Instrument, error)
	predicates         []predicate.Instrument
}

var _ ent.Mutation = (*InstrumentMutation)(nil)

// instrumentOption allows management of the mutation configuration using functional options.
type instrumentOption func(*InstrumentMutation)

// newInstrumentMutation creates new mutation for the Instrument entity.
func newInstrumentMutation(c config, op Op, opts ...instrumentOption) *InstrumentMutation {
	m := &InstrumentMutation{
		config:        c,
		op:            op,
		typ:           TypeInstrument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstrumentID sets the ID field of the mutation.
func withInstrumentID(id uuid.UUID) instrumentOption {
	return func(m *InstrumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Instrument
		)
		m.oldValue = func(ctx context.Context) (*Instrument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Instrument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstrument sets the old Instrument of the mutation.
func withInstrument(node *Instrument) instrumentOption {
	return func(m *InstrumentMutation) {
		m.oldValue = func(context.Context) (*Instrument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstrumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstrumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Instrument entities.
func (m *InstrumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstrumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstrumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Instrument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InstrumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstrumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Instrument entity.
// If the Instrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstrumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InstrumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InstrumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Instrument entity.
// If the Instrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InstrumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSlug sets the "slug" field.
func (m *InstrumentMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *InstrumentMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Instrument entity.
// If the Instrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *InstrumentMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *InstrumentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InstrumentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Instrument entity.
// If the Instrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InstrumentMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *InstrumentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InstrumentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Instrument entity.
// If the Instrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *InstrumentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[instrument.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *InstrumentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[instrument.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *InstrumentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, instrument.FieldDescription)
}

// SetFocusArea sets the "focus_area" field.
func (m *InstrumentMutation) SetFocusArea(s string) {
	m.focus_area = &s
}

// FocusArea returns the value of the "focus_area" field in the mutation.
func (m *InstrumentMutation) FocusArea() (r string, exists bool) {
	v := m.focus_area
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusArea returns the old "focus_area" field's value of the Instrument entity.
// If the Instrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentMutation) OldFocusArea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusArea: %w", err)
	}
	return oldValue.FocusArea, nil
}

// ResetFocusArea resets all changes to the "focus_area" field.
func (m *InstrumentMutation) ResetFocusArea() {
	m.focus_area = nil
}

// SetCurrentVersionID sets the "current_version_id" field.
func (m *InstrumentMutation) SetCurrentVersionID(u uuid.UUID) {
	m.current_version_id = &u
}

// CurrentVersionID returns the value of the "current_version_id" field in the mutation.
func (m *InstrumentMutation) CurrentVersionID() (r uuid.UUID, exists bool) {
	v := m.current_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersionID returns the old "current_version_id" field's value of the Instrument entity.
// If the Instrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentMutation) OldCurrentVersionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersionID: %w", err)
	}
	return oldValue.CurrentVersionID, nil
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (m *InstrumentMutation) ClearCurrentVersionID() {
	m.current_version_id = nil
	m.clearedFields[instrument.FieldCurrentVersionID] = struct{}{}
}

// CurrentVersionIDCleared returns if the "current_version_id" field was cleared in this mutation.
func (m *InstrumentMutation) CurrentVersionIDCleared() bool {
	_, ok := m.clearedFields[instrument.FieldCurrentVersionID]
	return ok
}

// ResetCurrentVersionID resets all changes to the "current_version_id" field.
func (m *InstrumentMutation) ResetCurrentVersionID() {
	m.current_version_id = nil
	delete(m.clearedFields, instrument.FieldCurrentVersionID)
}

// SetIsActive sets the "is_active" field.
func (m *InstrumentMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *InstrumentMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Instrument entity.
// If the Instrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *InstrumentMutation) ResetIsActive() {
	m.is_active = nil
}

// AddVersionIDs adds the "versions" edge to the InstrumentVersion entity by ids.
func (m *InstrumentMutation) AddVersionIDs(ids ...uuid.UUID) {
	if m.versions == nil {
		m.versions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the InstrumentVersion entity.
func (m *InstrumentMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the InstrumentVersion entity was cleared.
func (m *InstrumentMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the InstrumentVersion entity by IDs.
func (m *InstrumentMutation) RemoveVersionIDs(ids ...uuid.UUID) {
	if m.removedversions == nil {
		m.removedversions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the InstrumentVersion entity.
func (m *InstrumentMutation) RemovedVersionsIDs() (ids []uuid.UUID) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *InstrumentMutation) VersionsIDs() (ids []uuid.UUID) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *InstrumentMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the InstrumentMutation builder.
func (m *InstrumentMutation) Where(ps ...predicate.Instrument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstrumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstrumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Instrument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstrumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstrumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Instrument).
func (m *InstrumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstrumentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, instrument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, instrument.FieldUpdatedAt)
	}
	if m.slug != nil {
		fields = append(fields, instrument.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, instrument.FieldName)
	}
	if m.description != nil {
		fields = append(fields, instrument.FieldDescription)
	}
	if m.focus_area != nil {
		fields = append(fields, instrument.FieldFocusArea)
	}
	if m.current_version_id != nil {
		fields = append(fields, instrument.FieldCurrentVersionID)
	}
	if m.is_active != nil {
		fields = append(fields, instrument.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstrumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case instrument.FieldCreatedAt:
		return m.CreatedAt()
	case instrument.FieldUpdatedAt:
		return m.UpdatedAt()
	case instrument.FieldSlug:
		return m.Slug()
	case instrument.FieldName:
		return m.Name()
	case instrument.FieldDescription:
		return m.Description()
	case instrument.FieldFocusArea:
		return m.FocusArea()
	case instrument.FieldCurrentVersionID:
		return m.CurrentVersionID()
	case instrument.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstrumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case instrument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case instrument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case instrument.FieldSlug:
		return m.OldSlug(ctx)
	case instrument.FieldName:
		return m.OldName(ctx)
	case instrument.FieldDescription:
		return m.OldDescription(ctx)
	case instrument.FieldFocusArea:
		return m.OldFocusArea(ctx)
	case instrument.FieldCurrentVersionID:
		return m.OldCurrentVersionID(ctx)
	case instrument.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Instrument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstrumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case instrument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case instrument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case instrument.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case instrument.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case instrument.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case instrument.FieldFocusArea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusArea(v)
		return nil
	case instrument.FieldCurrentVersionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersionID(v)
		return nil
	case instrument.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Instrument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstrumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstrumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstrumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Instrument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstrumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(instrument.FieldDescription) {
		fields = append(fields, instrument.FieldDescription)
	}
	if m.FieldCleared(instrument.FieldCurrentVersionID) {
		fields = append(fields, instrument.FieldCurrentVersionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstrumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstrumentMutation) ClearField(name string) error {
	switch name {
	case instrument.FieldDescription:
		m.ClearDescription()
		return nil
	case instrument.FieldCurrentVersionID:
		m.ClearCurrentVersionID()
		return nil
	}
	return fmt.Errorf("unknown Instrument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstrumentMutation) ResetField(name string) error {
	switch name {
	case instrument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case instrument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case instrument.FieldSlug:
		m.ResetSlug()
		return nil
	case instrument.FieldName:
		m.ResetName()
		return nil
	case instrument.FieldDescription:
		m.ResetDescription()
		return nil
	case instrument.FieldFocusArea:
		m.ResetFocusArea()
		return nil
	case instrument.FieldCurrentVersionID:
		m.ResetCurrentVersionID()
		return nil
	case instrument.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Instrument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstrumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.versions != nil {
		edges = append(edges, instrument.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstrumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case instrument.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstrumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedversions != nil {
		edges = append(edges, instrument.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstrumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case instrument.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstrumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedversions {
		edges = append(edges, instrument.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstrumentMutation) EdgeCleared(name string) bool {
	switch name {
	case instrument.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstrumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Instrument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstrumentMutation) ResetEdge(name string) error {
	switch name {
	case instrument.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown Instrument edge %s", name)
}

// InstrumentVersionMutation represents an operation that mutates the InstrumentVersion nodes in the graph.
type InstrumentVersionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	version           *int
	addversion        *int
	content           *screening.InstrumentContent
	published_at      *time.Time
	clearedFields     map[string]struct{}
	instrument        *uuid.UUID
	clearedinstrument bool
	done              bool
	oldValue          func(context.Context) (*InstrumentVersion, error)
	predicates        []predicate.InstrumentVersion
}

var _ ent.Mutation = (*InstrumentVersionMutation)(nil)

// instrumentversionOption allows management of the mutation configuration using functional options.
type instrumentversionOption func(*InstrumentVersionMutation)

// newInstrumentVersionMutation creates new mutation for the InstrumentVersion entity.
func newInstrumentVersionMutation(c config, op Op, opts ...instrumentversionOption) *InstrumentVersionMutation {
	m := &InstrumentVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeInstrumentVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstrumentVersionID sets the ID field of the mutation.
func withInstrumentVersionID(id uuid.UUID) instrumentversionOption {
	return func(m *InstrumentVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *InstrumentVersion
		)
		m.oldValue = func(ctx context.Context) (*InstrumentVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InstrumentVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstrumentVersion sets the old InstrumentVersion of the mutation.
func withInstrumentVersion(node *InstrumentVersion) instrumentversionOption {
	return func(m *InstrumentVersionMutation) {
		m.oldValue = func(context.Context) (*InstrumentVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstrumentVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstrumentVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InstrumentVersion entities.
func (m *InstrumentVersionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstrumentVersionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstrumentVersionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InstrumentVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InstrumentVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstrumentVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InstrumentVersion entity.
// If the InstrumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstrumentVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetInstrumentID sets the "instrument_id" field.
func (m *InstrumentVersionMutation) SetInstrumentID(u uuid.UUID) {
	m.instrument = &u
}

// InstrumentID returns the value of the "instrument_id" field in the mutation.
func (m *InstrumentVersionMutation) InstrumentID() (r uuid.UUID, exists bool) {
	v := m.instrument
	if v == nil {
		return
	}
	return *v, true
}

// OldInstrumentID returns the old "instrument_id" field's value of the InstrumentVersion entity.
// If the InstrumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentVersionMutation) OldInstrumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstrumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstrumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstrumentID: %w", err)
	}
	return oldValue.InstrumentID, nil
}

// ResetInstrumentID resets all changes to the "instrument_id" field.
func (m *InstrumentVersionMutation) ResetInstrumentID() {
	m.instrument = nil
}

// SetVersion sets the "version" field.
func (m *InstrumentVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *InstrumentVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the InstrumentVersion entity.
// If the InstrumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *InstrumentVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *InstrumentVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *InstrumentVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetContent sets the "content" field.
func (m *InstrumentVersionMutation) SetContent(sc screening.InstrumentContent) {
	m.content = &sc
}

// Content returns the value of the "content" field in the mutation.
func (m *InstrumentVersionMutation) Content() (r screening.InstrumentContent, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the InstrumentVersion entity.
// If the InstrumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentVersionMutation) OldContent(ctx context.Context) (v screening.InstrumentContent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *InstrumentVersionMutation) ResetContent() {
	m.content = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *InstrumentVersionMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *InstrumentVersionMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the InstrumentVersion entity.
// If the InstrumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstrumentVersionMutation) OldPublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *InstrumentVersionMutation) ResetPublishedAt() {
	m.published_at = nil
}

// ClearInstrument clears the "instrument" edge to the Instrument entity.
func (m *InstrumentVersionMutation) ClearInstrument() {
	m.clearedinstrument = true
	m.clearedFields[instrumentversion.FieldInstrumentID] = struct{}{}
}

// InstrumentCleared reports if the "instrument" edge to the Instrument entity was cleared.
func (m *InstrumentVersionMutation) InstrumentCleared() bool {
	return m.clearedinstrument
}

// InstrumentIDs returns the "instrument" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstrumentID instead. It exists only for internal usage by the builders.
func (m *InstrumentVersionMutation) InstrumentIDs() (ids []uuid.UUID) {
	if id := m.instrument; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstrument resets all changes to the "instrument" edge.
func (m *InstrumentVersionMutation) ResetInstrument() {
	m.instrument = nil
	m.clearedinstrument = false
}

// Where appends a list predicates to the InstrumentVersionMutation builder.
func (m *InstrumentVersionMutation) Where(ps ...predicate.InstrumentVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstrumentVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstrumentVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InstrumentVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstrumentVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstrumentVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InstrumentVersion).
func (m *InstrumentVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstrumentVersionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, instrumentversion.FieldCreatedAt)
	}
	if m.instrument != nil {
		fields = append(fields, instrumentversion.FieldInstrumentID)
	}
	if m.version != nil {
		fields = append(fields, instrumentversion.FieldVersion)
	}
	if m.content != nil {
		fields = append(fields, instrumentversion.FieldContent)
	}
	if m.published_at != nil {
		fields = append(fields, instrumentversion.FieldPublishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstrumentVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case instrumentversion.FieldCreatedAt:
		return m.CreatedAt()
	case instrumentversion.FieldInstrumentID:
		return m.InstrumentID()
	case instrumentversion.FieldVersion:
		return m.Version()
	case instrumentversion.FieldContent:
		return m.Content()
	case instrumentversion.FieldPublishedAt:
		return m.PublishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstrumentVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case instrumentversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case instrumentversion.FieldInstrumentID:
		return m.OldInstrumentID(ctx)
	case instrumentversion.FieldVersion:
		return m.OldVersion(ctx)
	case instrumentversion.FieldContent:
		return m.OldContent(ctx)
	case instrumentversion.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InstrumentVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstrumentVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case instrumentversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case instrumentversion.FieldInstrumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstrumentID(v)
		return nil
	case instrumentversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case instrumentversion.FieldContent:
		v, ok := value.(screening.InstrumentContent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case instrumentversion.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InstrumentVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstrumentVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, instrumentversion.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstrumentVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case instrumentversion.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstrumentVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case instrumentversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown InstrumentVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstrumentVersionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstrumentVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstrumentVersionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InstrumentVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstrumentVersionMutation) ResetField(name string) error {
	switch name {
	case instrumentversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case instrumentversion.FieldInstrumentID:
		m.ResetInstrumentID()
		return nil
	case instrumentversion.FieldVersion:
		m.ResetVersion()
		return nil
	case instrumentversion.FieldContent:
		m.ResetContent()
		return nil
	case instrumentversion.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown InstrumentVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstrumentVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instrument != nil {
		edges = append(edges, instrumentversion.EdgeInstrument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstrumentVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case instrumentversion.EdgeInstrument:
		if id := m.instrument; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstrumentVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstrumentVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstrumentVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstrument {
		edges = append(edges, instrumentversion.EdgeInstrument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstrumentVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case instrumentversion.EdgeInstrument:
		return m.clearedinstrument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstrumentVersionMutation) ClearEdge(name string) error {
	switch name {
	case instrumentversion.EdgeInstrument:
		m.ClearInstrument()
		return nil
	}
	return fmt.Errorf("unknown InstrumentVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstrumentVersionMutation) ResetEdge(name string) error {
	switch name {
	case instrumentversion.EdgeInstrument:
		m.ResetInstrument()
		return nil
	}
	return fmt.Errorf("unknown InstrumentVersion edge %s", name)
}

// ScreeningSessionMutation represents an operation that mutates the ScreeningSession nodes in the graph.
type ScreeningSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	subject_id         *uuid.UUID
	initiator_id       *uuid.UUID
	flow_version_id    *uuid.UUID
	context_kind       *screeningsession.ContextKind
	patient_order_id   *uuid.UUID
	group_session_id   *uuid.UUID
	course_unit_id     *uuid.UUID
	status             *screeningsession.Status
	skip_reason        *string
	metadata           *map[string]interface{}
	evidence           **screening.EvidenceScores
	destination        **screening.Destination
	crisis             *bool
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	instruments        map[uuid.UUID]struct{}
	removedinstruments map[uuid.UUID]struct{}
	clearedinstruments bool
	done               bool
	oldValue           func(context.Context) (*ScreeningSession, error)
	predicates         []predicate.ScreeningSession
}

var _ ent.Mutation = (*ScreeningSessionMutation)(nil)

// screeningsessionOption allows management of the mutation configuration using functional options.
type screeningsessionOption func(*ScreeningSessionMutation)

// newScreeningSessionMutation creates new mutation for the ScreeningSession entity.
func newScreeningSessionMutation(c config, op Op, opts ...screeningsessionOption) *ScreeningSessionMutation {
	m := &ScreeningSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeScreeningSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScreeningSessionID sets the ID field of the mutation.
func withScreeningSessionID(id uuid.UUID) screeningsessionOption {
	return func(m *ScreeningSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ScreeningSession
		)
		m.oldValue = func(ctx context.Context) (*ScreeningSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScreeningSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScreeningSession sets the old ScreeningSession of the mutation.
func withScreeningSession(node *ScreeningSession) screeningsessionOption {
	return func(m *ScreeningSessionMutation) {
		m.oldValue = func(context.Context) (*ScreeningSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScreeningSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScreeningSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScreeningSession entities.
func (m *ScreeningSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScreeningSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScreeningSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScreeningSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ScreeningSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScreeningSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScreeningSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScreeningSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScreeningSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScreeningSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *ScreeningSessionMutation) SetSubjectID(u uuid.UUID) {
	m.subject_id = &u
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *ScreeningSessionMutation) SubjectID() (r uuid.UUID, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldSubjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *ScreeningSessionMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetInitiatorID sets the "initiator_id" field.
func (m *ScreeningSessionMutation) SetInitiatorID(u uuid.UUID) {
	m.initiator_id = &u
}

// InitiatorID returns the value of the "initiator_id" field in the mutation.
func (m *ScreeningSessionMutation) InitiatorID() (r uuid.UUID, exists bool) {
	v := m.initiator_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInitiatorID returns the old "initiator_id" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldInitiatorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitiatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitiatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitiatorID: %w", err)
	}
	return oldValue.InitiatorID, nil
}

// ResetInitiatorID resets all changes to the "initiator_id" field.
func (m *ScreeningSessionMutation) ResetInitiatorID() {
	m.initiator_id = nil
}

// SetFlowVersionID sets the "flow_version_id" field.
func (m *ScreeningSessionMutation) SetFlowVersionID(u uuid.UUID) {
	m.flow_version_id = &u
}

// FlowVersionID returns the value of the "flow_version_id" field in the mutation.
func (m *ScreeningSessionMutation) FlowVersionID() (r uuid.UUID, exists bool) {
	v := m.flow_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowVersionID returns the old "flow_version_id" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldFlowVersionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowVersionID: %w", err)
	}
	return oldValue.FlowVersionID, nil
}

// ResetFlowVersionID resets all changes to the "flow_version_id" field.
func (m *ScreeningSessionMutation) ResetFlowVersionID() {
	m.flow_version_id = nil
}

// SetContextKind sets the "context_kind" field.
func (m *ScreeningSessionMutation) SetContextKind(sk screeningsession.ContextKind) {
	m.context_kind = &sk
}

// ContextKind returns the value of the "context_kind" field in the mutation.
func (m *ScreeningSessionMutation) ContextKind() (r screeningsession.ContextKind, exists bool) {
	v := m.context_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldContextKind returns the old "context_kind" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldContextKind(ctx context.Context) (v screeningsession.ContextKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextKind: %w", err)
	}
	return oldValue.ContextKind, nil
}

// ResetContextKind resets all changes to the "context_kind" field.
func (m *ScreeningSessionMutation) ResetContextKind() {
	m.context_kind = nil
}

// SetPatientOrderID sets the "patient_order_id" field.
func (m *ScreeningSessionMutation) SetPatientOrderID(u uuid.UUID) {
	m.patient_order_id = &u
}

// PatientOrderID returns the value of the "patient_order_id" field in the mutation.
func (m *ScreeningSessionMutation) PatientOrderID() (r uuid.UUID, exists bool) {
	v := m.patient_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientOrderID returns the old "patient_order_id" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldPatientOrderID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientOrderID: %w", err)
	}
	return oldValue.PatientOrderID, nil
}

// ClearPatientOrderID clears the value of the "patient_order_id" field.
func (m *ScreeningSessionMutation) ClearPatientOrderID() {
	m.patient_order_id = nil
	m.clearedFields[screeningsession.FieldPatientOrderID] = struct{}{}
}

// PatientOrderIDCleared returns if the "patient_order_id" field was cleared in this mutation.
func (m *ScreeningSessionMutation) PatientOrderIDCleared() bool {
	_, ok := m.clearedFields[screeningsession.FieldPatientOrderID]
	return ok
}

// ResetPatientOrderID resets all changes to the "patient_order_id" field.
func (m *ScreeningSessionMutation) ResetPatientOrderID() {
	m.patient_order_id = nil
	delete(m.clearedFields, screeningsession.FieldPatientOrderID)
}

// SetGroupSessionID sets the "group_session_id" field.
func (m *ScreeningSessionMutation) SetGroupSessionID(u uuid.UUID) {
	m.group_session_id = &u
}

// GroupSessionID returns the value of the "group_session_id" field in the mutation.
func (m *ScreeningSessionMutation) GroupSessionID() (r uuid.UUID, exists bool) {
	v := m.group_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupSessionID returns the old "group_session_id" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldGroupSessionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupSessionID: %w", err)
	}
	return oldValue.GroupSessionID, nil
}

// ClearGroupSessionID clears the value of the "group_session_id" field.
func (m *ScreeningSessionMutation) ClearGroupSessionID() {
	m.group_session_id = nil
	m.clearedFields[screeningsession.FieldGroupSessionID] = struct{}{}
}

// GroupSessionIDCleared returns if the "group_session_id" field was cleared in this mutation.
func (m *ScreeningSessionMutation) GroupSessionIDCleared() bool {
	_, ok := m.clearedFields[screeningsession.FieldGroupSessionID]
	return ok
}

// ResetGroupSessionID resets all changes to the "group_session_id" field.
func (m *ScreeningSessionMutation) ResetGroupSessionID() {
	m.group_session_id = nil
	delete(m.clearedFields, screeningsession.FieldGroupSessionID)
}

// SetCourseUnitID sets the "course_unit_id" field.
func (m *ScreeningSessionMutation) SetCourseUnitID(u uuid.UUID) {
	m.course_unit_id = &u
}

// CourseUnitID returns the value of the "course_unit_id" field in the mutation.
func (m *ScreeningSessionMutation) CourseUnitID() (r uuid.UUID, exists bool) {
	v := m.course_unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseUnitID returns the old "course_unit_id" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldCourseUnitID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseUnitID: %w", err)
	}
	return oldValue.CourseUnitID, nil
}

// ClearCourseUnitID clears the value of the "course_unit_id" field.
func (m *ScreeningSessionMutation) ClearCourseUnitID() {
	m.course_unit_id = nil
	m.clearedFields[screeningsession.FieldCourseUnitID] = struct{}{}
}

// CourseUnitIDCleared returns if the "course_unit_id" field was cleared in this mutation.
func (m *ScreeningSessionMutation) CourseUnitIDCleared() bool {
	_, ok := m.clearedFields[screeningsession.FieldCourseUnitID]
	return ok
}

// ResetCourseUnitID resets all changes to the "course_unit_id" field.
func (m *ScreeningSessionMutation) ResetCourseUnitID() {
	m.course_unit_id = nil
	delete(m.clearedFields, screeningsession.FieldCourseUnitID)
}

// SetStatus sets the "status" field.
func (m *ScreeningSessionMutation) SetStatus(s screeningsession.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScreeningSessionMutation) Status() (r screeningsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldStatus(ctx context.Context) (v screeningsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScreeningSessionMutation) ResetStatus() {
	m.status = nil
}

// SetSkipReason sets the "skip_reason" field.
func (m *ScreeningSessionMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *ScreeningSessionMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldSkipReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *ScreeningSessionMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[screeningsession.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *ScreeningSessionMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[screeningsession.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *ScreeningSessionMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, screeningsession.FieldSkipReason)
}

// SetMetadata sets the "metadata" field.
func (m *ScreeningSessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ScreeningSessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ScreeningSessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[screeningsession.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ScreeningSessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[screeningsession.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ScreeningSessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, screeningsession.FieldMetadata)
}

// SetEvidence sets the "evidence" field.
func (m *ScreeningSessionMutation) SetEvidence(ss *screening.EvidenceScores) {
	m.evidence = &ss
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *ScreeningSessionMutation) Evidence() (r *screening.EvidenceScores, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldEvidence(ctx context.Context) (v *screening.EvidenceScores, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *ScreeningSessionMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[screeningsession.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *ScreeningSessionMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[screeningsession.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *ScreeningSessionMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, screeningsession.FieldEvidence)
}

// SetDestination sets the "destination" field.
func (m *ScreeningSessionMutation) SetDestination(s *screening.Destination) {
	m.destination = &s
}

// Destination returns the value of the "destination" field in the mutation.
func (m *ScreeningSessionMutation) Destination() (r *screening.Destination, exists bool) {
	v := m.destination
	if v == nil {
		return
	}
	return *v, true
}

// OldDestination returns the old "destination" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldDestination(ctx context.Context) (v *screening.Destination, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestination: %w", err)
	}
	return oldValue.Destination, nil
}

// ClearDestination clears the value of the "destination" field.
func (m *ScreeningSessionMutation) ClearDestination() {
	m.destination = nil
	m.clearedFields[screeningsession.FieldDestination] = struct{}{}
}

// DestinationCleared returns if the "destination" field was cleared in this mutation.
func (m *ScreeningSessionMutation) DestinationCleared() bool {
	_, ok := m.clearedFields[screeningsession.FieldDestination]
	return ok
}

// ResetDestination resets all changes to the "destination" field.
func (m *ScreeningSessionMutation) ResetDestination() {
	m.destination = nil
	delete(m.clearedFields, screeningsession.FieldDestination)
}

// SetCrisis sets the "crisis" field.
func (m *ScreeningSessionMutation) SetCrisis(b bool) {
	m.crisis = &b
}

// Crisis returns the value of the "crisis" field in the mutation.
func (m *ScreeningSessionMutation) Crisis() (r bool, exists bool) {
	v := m.crisis
	if v == nil {
		return
	}
	return *v, true
}

// OldCrisis returns the old "crisis" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldCrisis(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrisis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrisis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrisis: %w", err)
	}
	return oldValue.Crisis, nil
}

// ResetCrisis resets all changes to the "crisis" field.
func (m *ScreeningSessionMutation) ResetCrisis() {
	m.crisis = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ScreeningSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ScreeningSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ScreeningSession entity.
// If the ScreeningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ScreeningSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[screeningsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ScreeningSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[screeningsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ScreeningSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, screeningsession.FieldCompletedAt)
}

// AddInstrumentIDs adds the "instruments" edge to the SessionInstrument entity by ids.
func (m *ScreeningSessionMutation) AddInstrumentIDs(ids ...uuid.UUID) {
	if m.instruments == nil {
		m.instruments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.instruments[ids[i]] = struct{}{}
	}
}

// ClearInstruments clears the "instruments" edge to the SessionInstrument entity.
func (m *ScreeningSessionMutation) ClearInstruments() {
	m.clearedinstruments = true
}

// InstrumentsCleared reports if the "instruments" edge to the SessionInstrument entity was cleared.
func (m *ScreeningSessionMutation) InstrumentsCleared() bool {
	return m.clearedinstruments
}

// RemoveInstrumentIDs removes the "instruments" edge to the SessionInstrument entity by IDs.
func (m *ScreeningSessionMutation) RemoveInstrumentIDs(ids ...uuid.UUID) {
	if m.removedinstruments == nil {
		m.removedinstruments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.instruments, ids[i])
		m.removedinstruments[ids[i]] = struct{}{}
	}
}

// RemovedInstruments returns the removed IDs of the "instruments" edge to the SessionInstrument entity.
func (m *ScreeningSessionMutation) RemovedInstrumentsIDs() (ids []uuid.UUID) {
	for id := range m.removedinstruments {
		ids = append(ids, id)
	}
	return
}

// InstrumentsIDs returns the "instruments" edge IDs in the mutation.
func (m *ScreeningSessionMutation) InstrumentsIDs() (ids []uuid.UUID) {
	for id := range m.instruments {
		ids = append(ids, id)
	}
	return
}

// ResetInstruments resets all changes to the "instruments" edge.
func (m *ScreeningSessionMutation) ResetInstruments() {
	m.instruments = nil
	m.clearedinstruments = false
	m.removedinstruments = nil
}

// Where appends a list predicates to the ScreeningSessionMutation builder.
func (m *ScreeningSessionMutation) Where(ps ...predicate.ScreeningSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScreeningSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScreeningSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScreeningSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScreeningSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScreeningSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScreeningSession).
func (m *ScreeningSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScreeningSessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, screeningsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, screeningsession.FieldUpdatedAt)
	}
	if m.subject_id != nil {
		fields = append(fields, screeningsession.FieldSubjectID)
	}
	if m.initiator_id != nil {
		fields = append(fields, screeningsession.FieldInitiatorID)
	}
	if m.flow_version_id != nil {
		fields = append(fields, screeningsession.FieldFlowVersionID)
	}
	if m.context_kind != nil {
		fields = append(fields, screeningsession.FieldContextKind)
	}
	if m.patient_order_id != nil {
		fields = append(fields, screeningsession.FieldPatientOrderID)
	}
	if m.group_session_id != nil {
		fields = append(fields, screeningsession.FieldGroupSessionID)
	}
	if m.course_unit_id != nil {
		fields = append(fields, screeningsession.FieldCourseUnitID)
	}
	if m.status != nil {
		fields = append(fields, screeningsession.FieldStatus)
	}
	if m.skip_reason != nil {
		fields = append(fields, screeningsession.FieldSkipReason)
	}
	if m.metadata != nil {
		fields = append(fields, screeningsession.FieldMetadata)
	}
	if m.evidence != nil {
		fields = append(fields, screeningsession.FieldEvidence)
	}
	if m.destination != nil {
		fields = append(fields, screeningsession.FieldDestination)
	}
	if m.crisis != nil {
		fields = append(fields, screeningsession.FieldCrisis)
	}
	if m.completed_at != nil {
		fields = append(fields, screeningsession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScreeningSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case screeningsession.FieldCreatedAt:
		return m.CreatedAt()
	case screeningsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case screeningsession.FieldSubjectID:
		return m.SubjectID()
	case screeningsession.FieldInitiatorID:
		return m.InitiatorID()
	case screeningsession.FieldFlowVersionID:
		return m.FlowVersionID()
	case screeningsession.FieldContextKind:
		return m.ContextKind()
	case screeningsession.FieldPatientOrderID:
		return m.PatientOrderID()
	case screeningsession.FieldGroupSessionID:
		return m.GroupSessionID()
	case screeningsession.FieldCourseUnitID:
		return m.CourseUnitID()
	case screeningsession.FieldStatus:
		return m.Status()
	case screeningsession.FieldSkipReason:
		return m.SkipReason()
	case screeningsession.FieldMetadata:
		return m.Metadata()
	case screeningsession.FieldEvidence:
		return m.Evidence()
	case screeningsession.FieldDestination:
		return m.Destination()
	case screeningsession.FieldCrisis:
		return m.Crisis()
	case screeningsession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScreeningSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case screeningsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case screeningsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case screeningsession.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case screeningsession.FieldInitiatorID:
		return m.OldInitiatorID(ctx)
	case screeningsession.FieldFlowVersionID:
		return m.OldFlowVersionID(ctx)
	case screeningsession.FieldContextKind:
		return m.OldContextKind(ctx)
	case screeningsession.FieldPatientOrderID:
		return m.OldPatientOrderID(ctx)
	case screeningsession.FieldGroupSessionID:
		return m.OldGroupSessionID(ctx)
	case screeningsession.FieldCourseUnitID:
		return m.OldCourseUnitID(ctx)
	case screeningsession.FieldStatus:
		return m.OldStatus(ctx)
	case screeningsession.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case screeningsession.FieldMetadata:
		return m.OldMetadata(ctx)
	case screeningsession.FieldEvidence:
		return m.OldEvidence(ctx)
	case screeningsession.FieldDestination:
		return m.OldDestination(ctx)
	case screeningsession.FieldCrisis:
		return m.OldCrisis(ctx)
	case screeningsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScreeningSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreeningSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case screeningsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case screeningsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case screeningsession.FieldSubjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case screeningsession.FieldInitiatorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitiatorID(v)
		return nil
	case screeningsession.FieldFlowVersionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowVersionID(v)
		return nil
	case screeningsession.FieldContextKind:
		v, ok := value.(screeningsession.ContextKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextKind(v)
		return nil
	case screeningsession.FieldPatientOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientOrderID(v)
		return nil
	case screeningsession.FieldGroupSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupSessionID(v)
		return nil
	case screeningsession.FieldCourseUnitID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseUnitID(v)
		return nil
	case screeningsession.FieldStatus:
		v, ok := value.(screeningsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case screeningsession.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case screeningsession.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case screeningsession.FieldEvidence:
		v, ok := value.(*screening.EvidenceScores)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case screeningsession.FieldDestination:
		v, ok := value.(*screening.Destination)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestination(v)
		return nil
	case screeningsession.FieldCrisis:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrisis(v)
		return nil
	case screeningsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScreeningSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScreeningSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScreeningSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreeningSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScreeningSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScreeningSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(screeningsession.FieldPatientOrderID) {
		fields = append(fields, screeningsession.FieldPatientOrderID)
	}
	if m.FieldCleared(screeningsession.FieldGroupSessionID) {
		fields = append(fields, screeningsession.FieldGroupSessionID)
	}
	if m.FieldCleared(screeningsession.FieldCourseUnitID) {
		fields = append(fields, screeningsession.FieldCourseUnitID)
	}
	if m.FieldCleared(screeningsession.FieldSkipReason) {
		fields = append(fields, screeningsession.FieldSkipReason)
	}
	if m.FieldCleared(screeningsession.FieldMetadata) {
		fields = append(fields, screeningsession.FieldMetadata)
	}
	if m.FieldCleared(screeningsession.FieldEvidence) {
		fields = append(fields, screeningsession.FieldEvidence)
	}
	if m.FieldCleared(screeningsession.FieldDestination) {
		fields = append(fields, screeningsession.FieldDestination)
	}
	if m.FieldCleared(screeningsession.FieldCompletedAt) {
		fields = append(fields, screeningsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScreeningSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScreeningSessionMutation) ClearField(name string) error {
	switch name {
	case screeningsession.FieldPatientOrderID:
		m.ClearPatientOrderID()
		return nil
	case screeningsession.FieldGroupSessionID:
		m.ClearGroupSessionID()
		return nil
	case screeningsession.FieldCourseUnitID:
		m.ClearCourseUnitID()
		return nil
	case screeningsession.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case screeningsession.FieldMetadata:
		m.ClearMetadata()
		return nil
	case screeningsession.FieldEvidence:
		m.ClearEvidence()
		return nil
	case screeningsession.FieldDestination:
		m.ClearDestination()
		return nil
	case screeningsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ScreeningSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScreeningSessionMutation) ResetField(name string) error {
	switch name {
	case screeningsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case screeningsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case screeningsession.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case screeningsession.FieldInitiatorID:
		m.ResetInitiatorID()
		return nil
	case screeningsession.FieldFlowVersionID:
		m.ResetFlowVersionID()
		return nil
	case screeningsession.FieldContextKind:
		m.ResetContextKind()
		return nil
	case screeningsession.FieldPatientOrderID:
		m.ResetPatientOrderID()
		return nil
	case screeningsession.FieldGroupSessionID:
		m.ResetGroupSessionID()
		return nil
	case screeningsession.FieldCourseUnitID:
		m.ResetCourseUnitID()
		return nil
	case screeningsession.FieldStatus:
		m.ResetStatus()
		return nil
	case screeningsession.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case screeningsession.FieldMetadata:
		m.ResetMetadata()
		return nil
	case screeningsession.FieldEvidence:
		m.ResetEvidence()
		return nil
	case screeningsession.FieldDestination:
		m.ResetDestination()
		return nil
	case screeningsession.FieldCrisis:
		m.ResetCrisis()
		return nil
	case screeningsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ScreeningSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScreeningSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instruments != nil {
		edges = append(edges, screeningsession.EdgeInstruments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScreeningSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case screeningsession.EdgeInstruments:
		ids := make([]ent.Value, 0, len(m.instruments))
		for id := range m.instruments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScreeningSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinstruments != nil {
		edges = append(edges, screeningsession.EdgeInstruments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScreeningSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case screeningsession.EdgeInstruments:
		ids := make([]ent.Value, 0, len(m.removedinstruments))
		for id := range m.removedinstruments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScreeningSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstruments {
		edges = append(edges, screeningsession.EdgeInstruments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScreeningSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case screeningsession.EdgeInstruments:
		return m.clearedinstruments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScreeningSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ScreeningSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScreeningSessionMutation) ResetEdge(name string) error {
	switch name {
	case screeningsession.EdgeInstruments:
		m.ResetInstruments()
		return nil
	}
	return fmt.Errorf("unknown ScreeningSession edge %s", name)
}

// SessionInstrumentMutation represents an operation that mutates the SessionInstrument nodes in the graph.
type SessionInstrumentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	instrument_version_id   *uuid.UUID
	position                *int
	addposition             *int
	completed               *bool
	skipped                 *bool
	below_scoring_threshold *bool
	crisis                  *bool
	score                   **screening.Score
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	session                 *uuid.UUID
	clearedsession          bool
	answers                 map[uuid.UUID]struct{}
	removedanswers          map[uuid.UUID]struct{}
	clearedanswers          bool
	done                    bool
	oldValue                func(context.Context) (*SessionInstrument, error)
	predicates              []predicate.SessionInstrument
}

var _ ent.Mutation = (*SessionInstrumentMutation)(nil)

// sessioninstrumentOption allows management of the mutation configuration using functional options.
type sessioninstrumentOption func(*SessionInstrumentMutation)

// newSessionInstrumentMutation creates new mutation for the SessionInstrument entity.
func newSessionInstrumentMutation(c config, op Op, opts ...sessioninstrumentOption) *SessionInstrumentMutation {
	m := &SessionInstrumentMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionInstrument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionInstrumentID sets the ID field of the mutation.
func withSessionInstrumentID(id uuid.UUID) sessioninstrumentOption {
	return func(m *SessionInstrumentMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionInstrument
		)
		m.oldValue = func(ctx context.Context) (*SessionInstrument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionInstrument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionInstrument sets the old SessionInstrument of the mutation.
func withSessionInstrument(node *SessionInstrument) sessioninstrumentOption {
	return func(m *SessionInstrumentMutation) {
		m.oldValue = func(context.Context) (*SessionInstrument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionInstrumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionInstrumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionInstrument entities.
func (m *SessionInstrumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionInstrumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionInstrumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionInstrument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionInstrumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionInstrumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionInstrumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionInstrumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionInstrumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionInstrumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionInstrumentMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionInstrumentMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionInstrumentMutation) ResetSessionID() {
	m.session = nil
}

// SetInstrumentVersionID sets the "instrument_version_id" field.
func (m *SessionInstrumentMutation) SetInstrumentVersionID(u uuid.UUID) {
	m.instrument_version_id = &u
}

// InstrumentVersionID returns the value of the "instrument_version_id" field in the mutation.
func (m *SessionInstrumentMutation) InstrumentVersionID() (r uuid.UUID, exists bool) {
	v := m.instrument_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstrumentVersionID returns the old "instrument_version_id" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldInstrumentVersionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstrumentVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstrumentVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstrumentVersionID: %w", err)
	}
	return oldValue.InstrumentVersionID, nil
}

// ResetInstrumentVersionID resets all changes to the "instrument_version_id" field.
func (m *SessionInstrumentMutation) ResetInstrumentVersionID() {
	m.instrument_version_id = nil
}

// SetPosition sets the "position" field.
func (m *SessionInstrumentMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SessionInstrumentMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *SessionInstrumentMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SessionInstrumentMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *SessionInstrumentMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCompleted sets the "completed" field.
func (m *SessionInstrumentMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *SessionInstrumentMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *SessionInstrumentMutation) ResetCompleted() {
	m.completed = nil
}

// SetSkipped sets the "skipped" field.
func (m *SessionInstrumentMutation) SetSkipped(b bool) {
	m.skipped = &b
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *SessionInstrumentMutation) Skipped() (r bool, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldSkipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *SessionInstrumentMutation) ResetSkipped() {
	m.skipped = nil
}

// SetBelowScoringThreshold sets the "below_scoring_threshold" field.
func (m *SessionInstrumentMutation) SetBelowScoringThreshold(b bool) {
	m.below_scoring_threshold = &b
}

// BelowScoringThreshold returns the value of the "below_scoring_threshold" field in the mutation.
func (m *SessionInstrumentMutation) BelowScoringThreshold() (r bool, exists bool) {
	v := m.below_scoring_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldBelowScoringThreshold returns the old "below_scoring_threshold" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldBelowScoringThreshold(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBelowScoringThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBelowScoringThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBelowScoringThreshold: %w", err)
	}
	return oldValue.BelowScoringThreshold, nil
}

// ResetBelowScoringThreshold resets all changes to the "below_scoring_threshold" field.
func (m *SessionInstrumentMutation) ResetBelowScoringThreshold() {
	m.below_scoring_threshold = nil
}

// SetCrisis sets the "crisis" field.
func (m *SessionInstrumentMutation) SetCrisis(b bool) {
	m.crisis = &b
}

// Crisis returns the value of the "crisis" field in the mutation.
func (m *SessionInstrumentMutation) Crisis() (r bool, exists bool) {
	v := m.crisis
	if v == nil {
		return
	}
	return *v, true
}

// OldCrisis returns the old "crisis" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldCrisis(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrisis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrisis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrisis: %w", err)
	}
	return oldValue.Crisis, nil
}

// ResetCrisis resets all changes to the "crisis" field.
func (m *SessionInstrumentMutation) ResetCrisis() {
	m.crisis = nil
}

// SetScore sets the "score" field.
func (m *SessionInstrumentMutation) SetScore(s *screening.Score) {
	m.score = &s
}

// Score returns the value of the "score" field in the mutation.
func (m *SessionInstrumentMutation) Score() (r *screening.Score, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldScore(ctx context.Context) (v *screening.Score, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// ClearScore clears the value of the "score" field.
func (m *SessionInstrumentMutation) ClearScore() {
	m.score = nil
	m.clearedFields[sessioninstrument.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *SessionInstrumentMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[sessioninstrument.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *SessionInstrumentMutation) ResetScore() {
	m.score = nil
	delete(m.clearedFields, sessioninstrument.FieldScore)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionInstrumentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionInstrumentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SessionInstrument entity.
// If the SessionInstrument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionInstrumentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionInstrumentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[sessioninstrument.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionInstrumentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[sessioninstrument.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionInstrumentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, sessioninstrument.FieldCompletedAt)
}

// ClearSession clears the "session" edge to the ScreeningSession entity.
func (m *SessionInstrumentMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessioninstrument.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ScreeningSession entity was cleared.
func (m *SessionInstrumentMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionInstrumentMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionInstrumentMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *SessionInstrumentMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *SessionInstrumentMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *SessionInstrumentMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *SessionInstrumentMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *SessionInstrumentMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *SessionInstrumentMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *SessionInstrumentMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the SessionInstrumentMutation builder.
func (m *SessionInstrumentMutation) Where(ps ...predicate.SessionInstrument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionInstrumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionInstrumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionInstrument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionInstrumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionInstrumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionInstrument).
func (m *SessionInstrumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionInstrumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, sessioninstrument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessioninstrument.FieldUpdatedAt)
	}
	if m.session != nil {
		fields = append(fields, sessioninstrument.FieldSessionID)
	}
	if m.instrument_version_id != nil {
		fields = append(fields, sessioninstrument.FieldInstrumentVersionID)
	}
	if m.position != nil {
		fields = append(fields, sessioninstrument.FieldPosition)
	}
	if m.completed != nil {
		fields = append(fields, sessioninstrument.FieldCompleted)
	}
	if m.skipped != nil {
		fields = append(fields, sessioninstrument.FieldSkipped)
	}
	if m.below_scoring_threshold != nil {
		fields = append(fields, sessioninstrument.FieldBelowScoringThreshold)
	}
	if m.crisis != nil {
		fields = append(fields, sessioninstrument.FieldCrisis)
	}
	if m.score != nil {
		fields = append(fields, sessioninstrument.FieldScore)
	}
	if m.completed_at != nil {
		fields = append(fields, sessioninstrument.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionInstrumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessioninstrument.FieldCreatedAt:
		return m.CreatedAt()
	case sessioninstrument.FieldUpdatedAt:
		return m.UpdatedAt()
	case sessioninstrument.FieldSessionID:
		return m.SessionID()
	case sessioninstrument.FieldInstrumentVersionID:
		return m.InstrumentVersionID()
	case sessioninstrument.FieldPosition:
		return m.Position()
	case sessioninstrument.FieldCompleted:
		return m.Completed()
	case sessioninstrument.FieldSkipped:
		return m.Skipped()
	case sessioninstrument.FieldBelowScoringThreshold:
		return m.BelowScoringThreshold()
	case sessioninstrument.FieldCrisis:
		return m.Crisis()
	case sessioninstrument.FieldScore:
		return m.Score()
	case sessioninstrument.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionInstrumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessioninstrument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessioninstrument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case sessioninstrument.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessioninstrument.FieldInstrumentVersionID:
		return m.OldInstrumentVersionID(ctx)
	case sessioninstrument.FieldPosition:
		return m.OldPosition(ctx)
	case sessioninstrument.FieldCompleted:
		return m.OldCompleted(ctx)
	case sessioninstrument.FieldSkipped:
		return m.OldSkipped(ctx)
	case sessioninstrument.FieldBelowScoringThreshold:
		return m.OldBelowScoringThreshold(ctx)
	case sessioninstrument.FieldCrisis:
		return m.OldCrisis(ctx)
	case sessioninstrument.FieldScore:
		return m.OldScore(ctx)
	case sessioninstrument.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionInstrument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionInstrumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessioninstrument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessioninstrument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case sessioninstrument.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessioninstrument.FieldInstrumentVersionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstrumentVersionID(v)
		return nil
	case sessioninstrument.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case sessioninstrument.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case sessioninstrument.FieldSkipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case sessioninstrument.FieldBelowScoringThreshold:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBelowScoringThreshold(v)
		return nil
	case sessioninstrument.FieldCrisis:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrisis(v)
		return nil
	case sessioninstrument.FieldScore:
		v, ok := value.(*screening.Score)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case sessioninstrument.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionInstrument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionInstrumentMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, sessioninstrument.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionInstrumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessioninstrument.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionInstrumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessioninstrument.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown SessionInstrument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionInstrumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessioninstrument.FieldScore) {
		fields = append(fields, sessioninstrument.FieldScore)
	}
	if m.FieldCleared(sessioninstrument.FieldCompletedAt) {
		fields = append(fields, sessioninstrument.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionInstrumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionInstrumentMutation) ClearField(name string) error {
	switch name {
	case sessioninstrument.FieldScore:
		m.ClearScore()
		return nil
	case sessioninstrument.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionInstrument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionInstrumentMutation) ResetField(name string) error {
	switch name {
	case sessioninstrument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessioninstrument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case sessioninstrument.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessioninstrument.FieldInstrumentVersionID:
		m.ResetInstrumentVersionID()
		return nil
	case sessioninstrument.FieldPosition:
		m.ResetPosition()
		return nil
	case sessioninstrument.FieldCompleted:
		m.ResetCompleted()
		return nil
	case sessioninstrument.FieldSkipped:
		m.ResetSkipped()
		return nil
	case sessioninstrument.FieldBelowScoringThreshold:
		m.ResetBelowScoringThreshold()
		return nil
	case sessioninstrument.FieldCrisis:
		m.ResetCrisis()
		return nil
	case sessioninstrument.FieldScore:
		m.ResetScore()
		return nil
	case sessioninstrument.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionInstrument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionInstrumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, sessioninstrument.EdgeSession)
	}
	if m.answers != nil {
		edges = append(edges, sessioninstrument.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionInstrumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessioninstrument.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case sessioninstrument.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionInstrumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedanswers != nil {
		edges = append(edges, sessioninstrument.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionInstrumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sessioninstrument.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionInstrumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, sessioninstrument.EdgeSession)
	}
	if m.clearedanswers {
		edges = append(edges, sessioninstrument.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionInstrumentMutation) EdgeCleared(name string) bool {
	switch name {
	case sessioninstrument.EdgeSession:
		return m.clearedsession
	case sessioninstrument.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionInstrumentMutation) ClearEdge(name string) error {
	switch name {
	case sessioninstrument.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionInstrument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionInstrumentMutation) ResetEdge(name string) error {
	switch name {
	case sessioninstrument.EdgeSession:
		m.ResetSession()
		return nil
	case sessioninstrument.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown SessionInstrument edge %s", name)
}

// TriageMutation represents an operation that mutates the Triage nodes in the graph.
type TriageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	focus_area    *string
	care_category *triage.CareCategory
	reason        *string
	clearedFields map[string]struct{}
	group         *uuid.UUID
	clearedgroup  bool
	done          bool
	oldValue      func(context.Context) (*Triage, error)
	predicates    []predicate.Triage
}

var _ ent.Mutation = (*TriageMutation)(nil)

// triageOption allows management of the mutation configuration using functional options.
type triageOption func(*TriageMutation)

// newTriageMutation creates new mutation for the Triage entity.
func newTriageMutation(c config, op Op, opts ...triageOption) *TriageMutation {
	m := &TriageMutation{
		config:        c,
		op:            op,
		typ:           TypeTriage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriageID sets the ID field of the mutation.
func withTriageID(id uuid.UUID) triageOption {
	return func(m *TriageMutation) {
		var (
			err   error
			once  sync.Once
			value *Triage
		)
		m.oldValue = func(ctx context.Context) (*Triage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Triage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriage sets the old Triage of the mutation.
func withTriage(node *Triage) triageOption {
	return func(m *TriageMutation) {
		m.oldValue = func(context.Context) (*Triage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Triage entities.
func (m *TriageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Triage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TriageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Triage entity.
// If the Triage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTriageGroupID sets the "triage_group_id" field.
func (m *TriageMutation) SetTriageGroupID(u uuid.UUID) {
	m.group = &u
}

// TriageGroupID returns the value of the "triage_group_id" field in the mutation.
func (m *TriageMutation) TriageGroupID() (r uuid.UUID, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldTriageGroupID returns the old "triage_group_id" field's value of the Triage entity.
// If the Triage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageMutation) OldTriageGroupID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriageGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriageGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriageGroupID: %w", err)
	}
	return oldValue.TriageGroupID, nil
}

// ResetTriageGroupID resets all changes to the "triage_group_id" field.
func (m *TriageMutation) ResetTriageGroupID() {
	m.group = nil
}

// SetFocusArea sets the "focus_area" field.
func (m *TriageMutation) SetFocusArea(s string) {
	m.focus_area = &s
}

// FocusArea returns the value of the "focus_area" field in the mutation.
func (m *TriageMutation) FocusArea() (r string, exists bool) {
	v := m.focus_area
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusArea returns the old "focus_area" field's value of the Triage entity.
// If the Triage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageMutation) OldFocusArea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusArea: %w", err)
	}
	return oldValue.FocusArea, nil
}

// ResetFocusArea resets all changes to the "focus_area" field.
func (m *TriageMutation) ResetFocusArea() {
	m.focus_area = nil
}

// SetCareCategory sets the "care_category" field.
func (m *TriageMutation) SetCareCategory(tc triage.CareCategory) {
	m.care_category = &tc
}

// CareCategory returns the value of the "care_category" field in the mutation.
func (m *TriageMutation) CareCategory() (r triage.CareCategory, exists bool) {
	v := m.care_category
	if v == nil {
		return
	}
	return *v, true
}

// OldCareCategory returns the old "care_category" field's value of the Triage entity.
// If the Triage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageMutation) OldCareCategory(ctx context.Context) (v triage.CareCategory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCareCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCareCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCareCategory: %w", err)
	}
	return oldValue.CareCategory, nil
}

// ResetCareCategory resets all changes to the "care_category" field.
func (m *TriageMutation) ResetCareCategory() {
	m.care_category = nil
}

// SetReason sets the "reason" field.
func (m *TriageMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *TriageMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Triage entity.
// If the Triage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *TriageMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[triage.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *TriageMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[triage.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *TriageMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, triage.FieldReason)
}

// SetGroupID sets the "group" edge to the TriageGroup entity by id.
func (m *TriageMutation) SetGroupID(id uuid.UUID) {
	m.group = &id
}

// ClearGroup clears the "group" edge to the TriageGroup entity.
func (m *TriageMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[triage.FieldTriageGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the TriageGroup entity was cleared.
func (m *TriageMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupID returns the "group" edge ID in the mutation.
func (m *TriageMutation) GroupID() (id uuid.UUID, exists bool) {
	if m.group != nil {
		return *m.group, true
	}
	return
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *TriageMutation) GroupIDs() (ids []uuid.UUID) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *TriageMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// Where appends a list predicates to the TriageMutation builder.
func (m *TriageMutation) Where(ps ...predicate.Triage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Triage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Triage).
func (m *TriageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, triage.FieldCreatedAt)
	}
	if m.group != nil {
		fields = append(fields, triage.FieldTriageGroupID)
	}
	if m.focus_area != nil {
		fields = append(fields, triage.FieldFocusArea)
	}
	if m.care_category != nil {
		fields = append(fields, triage.FieldCareCategory)
	}
	if m.reason != nil {
		fields = append(fields, triage.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triage.FieldCreatedAt:
		return m.CreatedAt()
	case triage.FieldTriageGroupID:
		return m.TriageGroupID()
	case triage.FieldFocusArea:
		return m.FocusArea()
	case triage.FieldCareCategory:
		return m.CareCategory()
	case triage.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case triage.FieldTriageGroupID:
		return m.OldTriageGroupID(ctx)
	case triage.FieldFocusArea:
		return m.OldFocusArea(ctx)
	case triage.FieldCareCategory:
		return m.OldCareCategory(ctx)
	case triage.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown Triage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case triage.FieldTriageGroupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriageGroupID(v)
		return nil
	case triage.FieldFocusArea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusArea(v)
		return nil
	case triage.FieldCareCategory:
		v, ok := value.(triage.CareCategory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCareCategory(v)
		return nil
	case triage.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown Triage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Triage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triage.FieldReason) {
		fields = append(fields, triage.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriageMutation) ClearField(name string) error {
	switch name {
	case triage.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown Triage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriageMutation) ResetField(name string) error {
	switch name {
	case triage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case triage.FieldTriageGroupID:
		m.ResetTriageGroupID()
		return nil
	case triage.FieldFocusArea:
		m.ResetFocusArea()
		return nil
	case triage.FieldCareCategory:
		m.ResetCareCategory()
		return nil
	case triage.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown Triage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.group != nil {
		edges = append(edges, triage.EdgeGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case triage.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgroup {
		edges = append(edges, triage.EdgeGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriageMutation) EdgeCleared(name string) bool {
	switch name {
	case triage.EdgeGroup:
		return m.clearedgroup
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriageMutation) ClearEdge(name string) error {
	switch name {
	case triage.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown Triage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriageMutation) ResetEdge(name string) error {
	switch name {
	case triage.EdgeGroup:
		m.ResetGroup()
		return nil
	}
	return fmt.Errorf("unknown Triage edge %s", name)
}

// TriageGroupMutation represents an operation that mutates the TriageGroup nodes in the graph.
type TriageGroupMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	patient_order_id       *uuid.UUID
	session_id             *uuid.UUID
	source                 *triagegroup.Source
	care_category          *triagegroup.CareCategory
	safety_planning_status *triagegroup.SafetyPlanningStatus
	override_reason        *string
	created_by             *uuid.UUID
	clearedFields          map[string]struct{}
	triages                map[uuid.UUID]struct{}
	removedtriages         map[uuid.UUID]struct{}
	clearedtriages         bool
	done                   bool
	oldValue               func(context.Context) (*TriageGroup, error)
	predicates             []predicate.TriageGroup
}

var _ ent.Mutation = (*TriageGroupMutation)(nil)

// triagegroupOption allows management of the mutation configuration using functional options.
type triagegroupOption func(*TriageGroupMutation)

// newTriageGroupMutation creates new mutation for the TriageGroup entity.
func newTriageGroupMutation(c config, op Op, opts ...triagegroupOption) *TriageGroupMutation {
	m := &TriageGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeTriageGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriageGroupID sets the ID field of the mutation.
func withTriageGroupID(id uuid.UUID) triagegroupOption {
	return func(m *TriageGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *TriageGroup
		)
		m.oldValue = func(ctx context.Context) (*TriageGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TriageGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriageGroup sets the old TriageGroup of the mutation.
func withTriageGroup(node *TriageGroup) triagegroupOption {
	return func(m *TriageGroupMutation) {
		m.oldValue = func(context.Context) (*TriageGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriageGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriageGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TriageGroup entities.
func (m *TriageGroupMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriageGroupMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriageGroupMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TriageGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TriageGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriageGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TriageGroup entity.
// If the TriageGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriageGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientOrderID sets the "patient_order_id" field.
func (m *TriageGroupMutation) SetPatientOrderID(u uuid.UUID) {
	m.patient_order_id = &u
}

// PatientOrderID returns the value of the "patient_order_id" field in the mutation.
func (m *TriageGroupMutation) PatientOrderID() (r uuid.UUID, exists bool) {
	v := m.patient_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientOrderID returns the old "patient_order_id" field's value of the TriageGroup entity.
// If the TriageGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageGroupMutation) OldPatientOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientOrderID: %w", err)
	}
	return oldValue.PatientOrderID, nil
}

// ResetPatientOrderID resets all changes to the "patient_order_id" field.
func (m *TriageGroupMutation) ResetPatientOrderID() {
	m.patient_order_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *TriageGroupMutation) SetSessionID(u uuid.UUID) {
	m.session_id = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TriageGroupMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TriageGroup entity.
// If the TriageGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageGroupMutation) OldSessionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *TriageGroupMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[triagegroup.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *TriageGroupMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[triagegroup.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TriageGroupMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, triagegroup.FieldSessionID)
}

// SetSource sets the "source" field.
func (m *TriageGroupMutation) SetSource(t triagegroup.Source) {
	m.source = &t
}

// Source returns the value of the "source" field in the mutation.
func (m *TriageGroupMutation) Source() (r triagegroup.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the TriageGroup entity.
// If the TriageGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageGroupMutation) OldSource(ctx context.Context) (v triagegroup.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *TriageGroupMutation) ResetSource() {
	m.source = nil
}

// SetCareCategory sets the "care_category" field.
func (m *TriageGroupMutation) SetCareCategory(tc triagegroup.CareCategory) {
	m.care_category = &tc
}

// CareCategory returns the value of the "care_category" field in the mutation.
func (m *TriageGroupMutation) CareCategory() (r triagegroup.CareCategory, exists bool) {
	v := m.care_category
	if v == nil {
		return
	}
	return *v, true
}

// OldCareCategory returns the old "care_category" field's value of the TriageGroup entity.
// If the TriageGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageGroupMutation) OldCareCategory(ctx context.Context) (v triagegroup.CareCategory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCareCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCareCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCareCategory: %w", err)
	}
	return oldValue.CareCategory, nil
}

// ResetCareCategory resets all changes to the "care_category" field.
func (m *TriageGroupMutation) ResetCareCategory() {
	m.care_category = nil
}

// SetSafetyPlanningStatus sets the "safety_planning_status" field.
func (m *TriageGroupMutation) SetSafetyPlanningStatus(tps triagegroup.SafetyPlanningStatus) {
	m.safety_planning_status = &tps
}

// SafetyPlanningStatus returns the value of the "safety_planning_status" field in the mutation.
func (m *TriageGroupMutation) SafetyPlanningStatus() (r triagegroup.SafetyPlanningStatus, exists bool) {
	v := m.safety_planning_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSafetyPlanningStatus returns the old "safety_planning_status" field's value of the TriageGroup entity.
// If the TriageGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageGroupMutation) OldSafetyPlanningStatus(ctx context.Context) (v triagegroup.SafetyPlanningStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSafetyPlanningStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSafetyPlanningStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSafetyPlanningStatus: %w", err)
	}
	return oldValue.SafetyPlanningStatus, nil
}

// ResetSafetyPlanningStatus resets all changes to the "safety_planning_status" field.
func (m *TriageGroupMutation) ResetSafetyPlanningStatus() {
	m.safety_planning_status = nil
}

// SetOverrideReason sets the "override_reason" field.
func (m *TriageGroupMutation) SetOverrideReason(s string) {
	m.override_reason = &s
}

// OverrideReason returns the value of the "override_reason" field in the mutation.
func (m *TriageGroupMutation) OverrideReason() (r string, exists bool) {
	v := m.override_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldOverrideReason returns the old "override_reason" field's value of the TriageGroup entity.
// If the TriageGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageGroupMutation) OldOverrideReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverrideReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverrideReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverrideReason: %w", err)
	}
	return oldValue.OverrideReason, nil
}

// ClearOverrideReason clears the value of the "override_reason" field.
func (m *TriageGroupMutation) ClearOverrideReason() {
	m.override_reason = nil
	m.clearedFields[triagegroup.FieldOverrideReason] = struct{}{}
}

// OverrideReasonCleared returns if the "override_reason" field was cleared in this mutation.
func (m *TriageGroupMutation) OverrideReasonCleared() bool {
	_, ok := m.clearedFields[triagegroup.FieldOverrideReason]
	return ok
}

// ResetOverrideReason resets all changes to the "override_reason" field.
func (m *TriageGroupMutation) ResetOverrideReason() {
	m.override_reason = nil
	delete(m.clearedFields, triagegroup.FieldOverrideReason)
}

// SetCreatedBy sets the "created_by" field.
func (m *TriageGroupMutation) SetCreatedBy(u uuid.UUID) {
	m.created_by = &u
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *TriageGroupMutation) CreatedBy() (r uuid.UUID, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the TriageGroup entity.
// If the TriageGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageGroupMutation) OldCreatedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *TriageGroupMutation) ResetCreatedBy() {
	m.created_by = nil
}

// AddTriageIDs adds the "triages" edge to the Triage entity by ids.
func (m *TriageGroupMutation) AddTriageIDs(ids ...uuid.UUID) {
	if m.triages == nil {
		m.triages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.triages[ids[i]] = struct{}{}
	}
}

// ClearTriages clears the "triages" edge to the Triage entity.
func (m *TriageGroupMutation) ClearTriages() {
	m.clearedtriages = true
}

// TriagesCleared reports if the "triages" edge to the Triage entity was cleared.
func (m *TriageGroupMutation) TriagesCleared() bool {
	return m.clearedtriages
}

// RemoveTriageIDs removes the "triages" edge to the Triage entity by IDs.
func (m *TriageGroupMutation) RemoveTriageIDs(ids ...uuid.UUID) {
	if m.removedtriages == nil {
		m.removedtriages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.triages, ids[i])
		m.removedtriages[ids[i]] = struct{}{}
	}
}

// RemovedTriages returns the removed IDs of the "triages" edge to the Triage entity.
func (m *TriageGroupMutation) RemovedTriagesIDs() (ids []uuid.UUID) {
	for id := range m.removedtriages {
		ids = append(ids, id)
	}
	return
}

// TriagesIDs returns the "triages" edge IDs in the mutation.
func (m *TriageGroupMutation) TriagesIDs() (ids []uuid.UUID) {
	for id := range m.triages {
		ids = append(ids, id)
	}
	return
}

// ResetTriages resets all changes to the "triages" edge.
func (m *TriageGroupMutation) ResetTriages() {
	m.triages = nil
	m.clearedtriages = false
	m.removedtriages = nil
}

// Where appends a list predicates to the TriageGroupMutation builder.
func (m *TriageGroupMutation) Where(ps ...predicate.TriageGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriageGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriageGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TriageGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriageGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriageGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TriageGroup).
func (m *TriageGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriageGroupMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, triagegroup.FieldCreatedAt)
	}
	if m.patient_order_id != nil {
		fields = append(fields, triagegroup.FieldPatientOrderID)
	}
	if m.session_id != nil {
		fields = append(fields, triagegroup.FieldSessionID)
	}
	if m.source != nil {
		fields = append(fields, triagegroup.FieldSource)
	}
	if m.care_category != nil {
		fields = append(fields, triagegroup.FieldCareCategory)
	}
	if m.safety_planning_status != nil {
		fields = append(fields, triagegroup.FieldSafetyPlanningStatus)
	}
	if m.override_reason != nil {
		fields = append(fields, triagegroup.FieldOverrideReason)
	}
	if m.created_by != nil {
		fields = append(fields, triagegroup.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriageGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triagegroup.FieldCreatedAt:
		return m.CreatedAt()
	case triagegroup.FieldPatientOrderID:
		return m.PatientOrderID()
	case triagegroup.FieldSessionID:
		return m.SessionID()
	case triagegroup.FieldSource:
		return m.Source()
	case triagegroup.FieldCareCategory:
		return m.CareCategory()
	case triagegroup.FieldSafetyPlanningStatus:
		return m.SafetyPlanningStatus()
	case triagegroup.FieldOverrideReason:
		return m.OverrideReason()
	case triagegroup.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriageGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triagegroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case triagegroup.FieldPatientOrderID:
		return m.OldPatientOrderID(ctx)
	case triagegroup.FieldSessionID:
		return m.OldSessionID(ctx)
	case triagegroup.FieldSource:
		return m.OldSource(ctx)
	case triagegroup.FieldCareCategory:
		return m.OldCareCategory(ctx)
	case triagegroup.FieldSafetyPlanningStatus:
		return m.OldSafetyPlanningStatus(ctx)
	case triagegroup.FieldOverrideReason:
		return m.OldOverrideReason(ctx)
	case triagegroup.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown TriageGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriageGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triagegroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case triagegroup.FieldPatientOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientOrderID(v)
		return nil
	case triagegroup.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case triagegroup.FieldSource:
		v, ok := value.(triagegroup.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case triagegroup.FieldCareCategory:
		v, ok := value.(triagegroup.CareCategory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCareCategory(v)
		return nil
	case triagegroup.FieldSafetyPlanningStatus:
		v, ok := value.(triagegroup.SafetyPlanningStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSafetyPlanningStatus(v)
		return nil
	case triagegroup.FieldOverrideReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverrideReason(v)
		return nil
	case triagegroup.FieldCreatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown TriageGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriageGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriageGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriageGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TriageGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriageGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triagegroup.FieldSessionID) {
		fields = append(fields, triagegroup.FieldSessionID)
	}
	if m.FieldCleared(triagegroup.FieldOverrideReason) {
		fields = append(fields, triagegroup.FieldOverrideReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriageGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriageGroupMutation) ClearField(name string) error {
	switch name {
	case triagegroup.FieldSessionID:
		m.ClearSessionID()
		return nil
	case triagegroup.FieldOverrideReason:
		m.ClearOverrideReason()
		return nil
	}
	return fmt.Errorf("unknown TriageGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriageGroupMutation) ResetField(name string) error {
	switch name {
	case triagegroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case triagegroup.FieldPatientOrderID:
		m.ResetPatientOrderID()
		return nil
	case triagegroup.FieldSessionID:
		m.ResetSessionID()
		return nil
	case triagegroup.FieldSource:
		m.ResetSource()
		return nil
	case triagegroup.FieldCareCategory:
		m.ResetCareCategory()
		return nil
	case triagegroup.FieldSafetyPlanningStatus:
		m.ResetSafetyPlanningStatus()
		return nil
	case triagegroup.FieldOverrideReason:
		m.ResetOverrideReason()
		return nil
	case triagegroup.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown TriageGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriageGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.triages != nil {
		edges = append(edges, triagegroup.EdgeTriages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriageGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case triagegroup.EdgeTriages:
		ids := make([]ent.Value, 0, len(m.triages))
		for id := range m.triages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriageGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtriages != nil {
		edges = append(edges, triagegroup.EdgeTriages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriageGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case triagegroup.EdgeTriages:
		ids := make([]ent.Value, 0, len(m.removedtriages))
		for id := range m.removedtriages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriageGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtriages {
		edges = append(edges, triagegroup.EdgeTriages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriageGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case triagegroup.EdgeTriages:
		return m.clearedtriages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriageGroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TriageGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriageGroupMutation) ResetEdge(name string) error {
	switch name {
	case triagegroup.EdgeTriages:
		m.ResetTriages()
		return nil
	}
	return fmt.Errorf("unknown TriageGroup edge %s", name)
}
