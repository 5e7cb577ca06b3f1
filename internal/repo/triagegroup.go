// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/triagegroup"
)

// TriageGroup is the model entity for the TriageGroup schema.
type TriageGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// PatientOrderID holds the value of the "patient_order_id" field.
	PatientOrderID uuid.UUID `json:"patient_order_id,omitempty"`
	// FK → screening_sessions.id (system-computed groups only)
	SessionID *uuid.UUID `json:"session_id,omitempty"`
	// Source holds the value of the "source" field.
	Source triagegroup.Source `json:"source,omitempty"`
	// CareCategory holds the value of the "care_category" field.
	CareCategory triagegroup.CareCategory `json:"care_category,omitempty"`
	// SafetyPlanningStatus holds the value of the "safety_planning_status" field.
	SafetyPlanningStatus triagegroup.SafetyPlanningStatus `json:"safety_planning_status,omitempty"`
	// Required for clinician overrides
	OverrideReason *string `json:"override_reason,omitempty"`
	// Account that produced the group (system actor or clinician)
	CreatedBy uuid.UUID `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriageGroupQuery when eager-loading is set.
	Edges        TriageGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriageGroupEdges holds the relations/edges for other nodes in the graph.
type TriageGroupEdges struct {
	// Triages holds the value of the triages edge.
	Triages []*Triage `json:"triages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TriagesOrErr returns the Triages value or an error if the edge
// was not loaded in eager-loading.
func (e TriageGroupEdges) TriagesOrErr() ([]*Triage, error) {
	if e.loadedTypes[0] {
		return e.Triages, nil
	}
	return nil, &NotLoadedError{edge: "triages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TriageGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case triagegroup.FieldSessionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case triagegroup.FieldSource, triagegroup.FieldCareCategory, triagegroup.FieldSafetyPlanningStatus, triagegroup.FieldOverrideReason:
			values[i] = new(sql.NullString)
		case triagegroup.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case triagegroup.FieldID, triagegroup.FieldPatientOrderID, triagegroup.FieldCreatedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TriageGroup fields.
func (_m *TriageGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case triagegroup.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case triagegroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case triagegroup.FieldPatientOrderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_order_id", values[i])
			} else if value != nil {
				_m.PatientOrderID = *value
			}
		case triagegroup.FieldSessionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(uuid.UUID)
				*_m.SessionID = *value.S.(*uuid.UUID)
			}
		case triagegroup.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = triagegroup.Source(value.String)
			}
		case triagegroup.FieldCareCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field care_category", values[i])
			} else if value.Valid {
				_m.CareCategory = triagegroup.CareCategory(value.String)
			}
		case triagegroup.FieldSafetyPlanningStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field safety_planning_status", values[i])
			} else if value.Valid {
				_m.SafetyPlanningStatus = triagegroup.SafetyPlanningStatus(value.String)
			}
		case triagegroup.FieldOverrideReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field override_reason", values[i])
			} else if value.Valid {
				_m.OverrideReason = new(string)
				*_m.OverrideReason = value.String
			}
		case triagegroup.FieldCreatedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value != nil {
				_m.CreatedBy = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TriageGroup.
// This includes values selected through modifiers, order, etc.
func (_m *TriageGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTriages queries the "triages" edge of the TriageGroup entity.
func (_m *TriageGroup) QueryTriages() *TriageQuery {
	return NewTriageGroupClient(_m.config).QueryTriages(_m)
}

// Update returns a builder for updating this TriageGroup.
// Note that you need to call TriageGroup.Unwrap() before calling this method if this TriageGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TriageGroup) Update() *TriageGroupUpdateOne {
	return NewTriageGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TriageGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TriageGroup) Unwrap() *TriageGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TriageGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TriageGroup) String() string {
	var builder strings.Builder
	builder.WriteString("TriageGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_order_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientOrderID))
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("care_category=")
	builder.WriteString(fmt.Sprintf("%v", _m.CareCategory))
	builder.WriteString(", ")
	builder.WriteString("safety_planning_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.SafetyPlanningStatus))
	builder.WriteString(", ")
	if v := _m.OverrideReason; v != nil {
		builder.WriteString("override_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedBy))
	builder.WriteByte(')')
	return builder.String()
}

// TriageGroups is a parsable slice of TriageGroup.
type TriageGroups []*TriageGroup
