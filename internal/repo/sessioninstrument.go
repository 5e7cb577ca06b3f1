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
	"github.com/marlowhealth/compass_backend/internal/repo/screeningsession"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// SessionInstrument is the model entity for the SessionInstrument schema.
type SessionInstrument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → screening_sessions.id
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// FK → instrument_versions.id
	InstrumentVersionID uuid.UUID `json:"instrument_version_id,omitempty"`
	// Zero-based step index within the flow
	Position int `json:"position,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Step skipped by its flow predicate
	Skipped bool `json:"skipped,omitempty"`
	// BelowScoringThreshold holds the value of the "below_scoring_threshold" field.
	BelowScoringThreshold bool `json:"below_scoring_threshold,omitempty"`
	// Crisis holds the value of the "crisis" field.
	Crisis bool `json:"crisis,omitempty"`
	// Computed score, set when the instrument completes
	Score *screening.Score `json:"score,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionInstrumentQuery when eager-loading is set.
	Edges        SessionInstrumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionInstrumentEdges holds the relations/edges for other nodes in the graph.
type SessionInstrumentEdges struct {
	// Session holds the value of the session edge.
	Session *ScreeningSession `json:"session,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*Answer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionInstrumentEdges) SessionOrErr() (*ScreeningSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: screeningsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e SessionInstrumentEdges) AnswersOrErr() ([]*Answer, error) {
	if e.loadedTypes[1] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionInstrument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessioninstrument.FieldScore:
			values[i] = new([]byte)
		case sessioninstrument.FieldCompleted, sessioninstrument.FieldSkipped, sessioninstrument.FieldBelowScoringThreshold, sessioninstrument.FieldCrisis:
			values[i] = new(sql.NullBool)
		case sessioninstrument.FieldPosition:
			values[i] = new(sql.NullInt64)
		case sessioninstrument.FieldCreatedAt, sessioninstrument.FieldUpdatedAt, sessioninstrument.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case sessioninstrument.FieldID, sessioninstrument.FieldSessionID, sessioninstrument.FieldInstrumentVersionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionInstrument fields.
func (_m *SessionInstrument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessioninstrument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sessioninstrument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessioninstrument.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sessioninstrument.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case sessioninstrument.FieldInstrumentVersionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field instrument_version_id", values[i])
			} else if value != nil {
				_m.InstrumentVersionID = *value
			}
		case sessioninstrument.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case sessioninstrument.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case sessioninstrument.FieldSkipped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = value.Bool
			}
		case sessioninstrument.FieldBelowScoringThreshold:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field below_scoring_threshold", values[i])
			} else if value.Valid {
				_m.BelowScoringThreshold = value.Bool
			}
		case sessioninstrument.FieldCrisis:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field crisis", values[i])
			} else if value.Valid {
				_m.Crisis = value.Bool
			}
		case sessioninstrument.FieldScore:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Score); err != nil {
					return fmt.Errorf("unmarshal field score: %w", err)
				}
			}
		case sessioninstrument.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionInstrument.
// This includes values selected through modifiers, order, etc.
func (_m *SessionInstrument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionInstrument entity.
func (_m *SessionInstrument) QuerySession() *ScreeningSessionQuery {
	return NewSessionInstrumentClient(_m.config).QuerySession(_m)
}

// QueryAnswers queries the "answers" edge of the SessionInstrument entity.
func (_m *SessionInstrument) QueryAnswers() *AnswerQuery {
	return NewSessionInstrumentClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this SessionInstrument.
// Note that you need to call SessionInstrument.Unwrap() before calling this method if this SessionInstrument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionInstrument) Update() *SessionInstrumentUpdateOne {
	return NewSessionInstrumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionInstrument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionInstrument) Unwrap() *SessionInstrument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SessionInstrument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionInstrument) String() string {
	var builder strings.Builder
	builder.WriteString("SessionInstrument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("instrument_version_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InstrumentVersionID))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("below_scoring_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.BelowScoringThreshold))
	builder.WriteString(", ")
	builder.WriteString("crisis=")
	builder.WriteString(fmt.Sprintf("%v", _m.Crisis))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SessionInstruments is a parsable slice of SessionInstrument.
type SessionInstruments []*SessionInstrument
