// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/answer"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
)

// Answer is the model entity for the Answer schema.
type Answer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → session_instruments.id
	SessionInstrumentID uuid.UUID `json:"session_instrument_id,omitempty"`
	// QuestionKey holds the value of the "question_key" field.
	QuestionKey string `json:"question_key,omitempty"`
	// Format holds the value of the "format" field.
	Format answer.Format `json:"format,omitempty"`
	// Selected option keys for select formats
	OptionKeys []string `json:"option_keys,omitempty"`
	// FreeText holds the value of the "free_text" field.
	FreeText *string `json:"free_text,omitempty"`
	// Account that submitted the answer
	RecordedBy uuid.UUID `json:"recorded_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnswerQuery when eager-loading is set.
	Edges        AnswerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnswerEdges holds the relations/edges for other nodes in the graph.
type AnswerEdges struct {
	// SessionInstrument holds the value of the session_instrument edge.
	SessionInstrument *SessionInstrument `json:"session_instrument,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionInstrumentOrErr returns the SessionInstrument value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerEdges) SessionInstrumentOrErr() (*SessionInstrument, error) {
	if e.SessionInstrument != nil {
		return e.SessionInstrument, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sessioninstrument.Label}
	}
	return nil, &NotLoadedError{edge: "session_instrument"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Answer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answer.FieldOptionKeys:
			values[i] = new([]byte)
		case answer.FieldQuestionKey, answer.FieldFormat, answer.FieldFreeText:
			values[i] = new(sql.NullString)
		case answer.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case answer.FieldID, answer.FieldSessionInstrumentID, answer.FieldRecordedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Answer fields.
func (_m *Answer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case answer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case answer.FieldSessionInstrumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_instrument_id", values[i])
			} else if value != nil {
				_m.SessionInstrumentID = *value
			}
		case answer.FieldQuestionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_key", values[i])
			} else if value.Valid {
				_m.QuestionKey = value.String
			}
		case answer.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = answer.Format(value.String)
			}
		case answer.FieldOptionKeys:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field option_keys", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OptionKeys); err != nil {
					return fmt.Errorf("unmarshal field option_keys: %w", err)
				}
			}
		case answer.FieldFreeText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field free_text", values[i])
			} else if value.Valid {
				_m.FreeText = new(string)
				*_m.FreeText = value.String
			}
		case answer.FieldRecordedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_by", values[i])
			} else if value != nil {
				_m.RecordedBy = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Answer.
// This includes values selected through modifiers, order, etc.
func (_m *Answer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySessionInstrument queries the "session_instrument" edge of the Answer entity.
func (_m *Answer) QuerySessionInstrument() *SessionInstrumentQuery {
	return NewAnswerClient(_m.config).QuerySessionInstrument(_m)
}

// Update returns a builder for updating this Answer.
// Note that you need to call Answer.Unwrap() before calling this method if this Answer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Answer) Update() *AnswerUpdateOne {
	return NewAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Answer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Answer) Unwrap() *Answer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Answer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Answer) String() string {
	var builder strings.Builder
	builder.WriteString("Answer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_instrument_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionInstrumentID))
	builder.WriteString(", ")
	builder.WriteString("question_key=")
	builder.WriteString(_m.QuestionKey)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(fmt.Sprintf("%v", _m.Format))
	builder.WriteString(", ")
	builder.WriteString("option_keys=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptionKeys))
	builder.WriteString(", ")
	if v := _m.FreeText; v != nil {
		builder.WriteString("free_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("recorded_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordedBy))
	builder.WriteByte(')')
	return builder.String()
}

// Answers is a parsable slice of Answer.
type Answers []*Answer
