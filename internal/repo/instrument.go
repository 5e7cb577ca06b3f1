// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/instrument"
)

// Instrument is the model entity for the Instrument schema.
type Instrument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Stable machine name, e.g. 'phq-9'
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// e.g. 'depression', 'anxiety', 'burnout'
	FocusArea string `json:"focus_area,omitempty"`
	// FK → instrument_versions.id (latest published version)
	CurrentVersionID *uuid.UUID `json:"current_version_id,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InstrumentQuery when eager-loading is set.
	Edges        InstrumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InstrumentEdges holds the relations/edges for other nodes in the graph.
type InstrumentEdges struct {
	// Versions holds the value of the versions edge.
	Versions []*InstrumentVersion `json:"versions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e InstrumentEdges) VersionsOrErr() ([]*InstrumentVersion, error) {
	if e.loadedTypes[0] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Instrument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case instrument.FieldCurrentVersionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case instrument.FieldIsActive:
			values[i] = new(sql.NullBool)
		case instrument.FieldSlug, instrument.FieldName, instrument.FieldDescription, instrument.FieldFocusArea:
			values[i] = new(sql.NullString)
		case instrument.FieldCreatedAt, instrument.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case instrument.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Instrument fields.
func (_m *Instrument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case instrument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case instrument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case instrument.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case instrument.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case instrument.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case instrument.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case instrument.FieldFocusArea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field focus_area", values[i])
			} else if value.Valid {
				_m.FocusArea = value.String
			}
		case instrument.FieldCurrentVersionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field current_version_id", values[i])
			} else if value.Valid {
				_m.CurrentVersionID = new(uuid.UUID)
				*_m.CurrentVersionID = *value.S.(*uuid.UUID)
			}
		case instrument.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Instrument.
// This includes values selected through modifiers, order, etc.
func (_m *Instrument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVersions queries the "versions" edge of the Instrument entity.
func (_m *Instrument) QueryVersions() *InstrumentVersionQuery {
	return NewInstrumentClient(_m.config).QueryVersions(_m)
}

// Update returns a builder for updating this Instrument.
// Note that you need to call Instrument.Unwrap() before calling this method if this Instrument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Instrument) Update() *InstrumentUpdateOne {
	return NewInstrumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Instrument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Instrument) Unwrap() *Instrument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Instrument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Instrument) String() string {
	var builder strings.Builder
	builder.WriteString("Instrument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("focus_area=")
	builder.WriteString(_m.FocusArea)
	builder.WriteString(", ")
	if v := _m.CurrentVersionID; v != nil {
		builder.WriteString("current_version_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// Instruments is a parsable slice of Instrument.
type Instruments []*Instrument
