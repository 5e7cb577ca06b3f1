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
	"github.com/marlowhealth/compass_backend/internal/repo/instrument"
	"github.com/marlowhealth/compass_backend/internal/repo/instrumentversion"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// InstrumentVersion is the model entity for the InstrumentVersion schema.
type InstrumentVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → instruments.id
	InstrumentID uuid.UUID `json:"instrument_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Questions, options, scoring rule and threshold table
	Content screening.InstrumentContent `json:"content,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt time.Time `json:"published_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InstrumentVersionQuery when eager-loading is set.
	Edges        InstrumentVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InstrumentVersionEdges holds the relations/edges for other nodes in the graph.
type InstrumentVersionEdges struct {
	// Instrument holds the value of the instrument edge.
	Instrument *Instrument `json:"instrument,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstrumentOrErr returns the Instrument value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InstrumentVersionEdges) InstrumentOrErr() (*Instrument, error) {
	if e.Instrument != nil {
		return e.Instrument, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: instrument.Label}
	}
	return nil, &NotLoadedError{edge: "instrument"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InstrumentVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case instrumentversion.FieldContent:
			values[i] = new([]byte)
		case instrumentversion.FieldVersion:
			values[i] = new(sql.NullInt64)
		case instrumentversion.FieldCreatedAt, instrumentversion.FieldPublishedAt:
			values[i] = new(sql.NullTime)
		case instrumentversion.FieldID, instrumentversion.FieldInstrumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InstrumentVersion fields.
func (_m *InstrumentVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case instrumentversion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case instrumentversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case instrumentversion.FieldInstrumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field instrument_id", values[i])
			} else if value != nil {
				_m.InstrumentID = *value
			}
		case instrumentversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case instrumentversion.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case instrumentversion.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InstrumentVersion.
// This includes values selected through modifiers, order, etc.
func (_m *InstrumentVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstrument queries the "instrument" edge of the InstrumentVersion entity.
func (_m *InstrumentVersion) QueryInstrument() *InstrumentQuery {
	return NewInstrumentVersionClient(_m.config).QueryInstrument(_m)
}

// Update returns a builder for updating this InstrumentVersion.
// Note that you need to call InstrumentVersion.Unwrap() before calling this method if this InstrumentVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InstrumentVersion) Update() *InstrumentVersionUpdateOne {
	return NewInstrumentVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InstrumentVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InstrumentVersion) Unwrap() *InstrumentVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InstrumentVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InstrumentVersion) String() string {
	var builder strings.Builder
	builder.WriteString("InstrumentVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("instrument_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InstrumentID))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("published_at=")
	builder.WriteString(_m.PublishedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InstrumentVersions is a parsable slice of InstrumentVersion.
type InstrumentVersions []*InstrumentVersion
