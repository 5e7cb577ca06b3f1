// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/triage"
	"github.com/marlowhealth/compass_backend/internal/repo/triagegroup"
)

// Triage is the model entity for the Triage schema.
type Triage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// TriageGroupID holds the value of the "triage_group_id" field.
	TriageGroupID uuid.UUID `json:"triage_group_id,omitempty"`
	// FocusArea holds the value of the "focus_area" field.
	FocusArea string `json:"focus_area,omitempty"`
	// CareCategory holds the value of the "care_category" field.
	CareCategory triage.CareCategory `json:"care_category,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason *string `json:"reason,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriageQuery when eager-loading is set.
	Edges        TriageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriageEdges holds the relations/edges for other nodes in the graph.
type TriageEdges struct {
	// Group holds the value of the group edge.
	Group *TriageGroup `json:"group,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TriageEdges) GroupOrErr() (*TriageGroup, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: triagegroup.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Triage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case triage.FieldFocusArea, triage.FieldCareCategory, triage.FieldReason:
			values[i] = new(sql.NullString)
		case triage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case triage.FieldID, triage.FieldTriageGroupID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Triage fields.
func (_m *Triage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case triage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case triage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case triage.FieldTriageGroupID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field triage_group_id", values[i])
			} else if value != nil {
				_m.TriageGroupID = *value
			}
		case triage.FieldFocusArea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field focus_area", values[i])
			} else if value.Valid {
				_m.FocusArea = value.String
			}
		case triage.FieldCareCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field care_category", values[i])
			} else if value.Valid {
				_m.CareCategory = triage.CareCategory(value.String)
			}
		case triage.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Triage.
// This includes values selected through modifiers, order, etc.
func (_m *Triage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the Triage entity.
func (_m *Triage) QueryGroup() *TriageGroupQuery {
	return NewTriageClient(_m.config).QueryGroup(_m)
}

// Update returns a builder for updating this Triage.
// Note that you need to call Triage.Unwrap() before calling this method if this Triage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Triage) Update() *TriageUpdateOne {
	return NewTriageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Triage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Triage) Unwrap() *Triage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Triage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Triage) String() string {
	var builder strings.Builder
	builder.WriteString("Triage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("triage_group_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriageGroupID))
	builder.WriteString(", ")
	builder.WriteString("focus_area=")
	builder.WriteString(_m.FocusArea)
	builder.WriteString(", ")
	builder.WriteString("care_category=")
	builder.WriteString(fmt.Sprintf("%v", _m.CareCategory))
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Triages is a parsable slice of Triage.
type Triages []*Triage
