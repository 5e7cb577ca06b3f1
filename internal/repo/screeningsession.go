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
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// ScreeningSession is the model entity for the ScreeningSession schema.
type ScreeningSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Account being screened (identity service id)
	SubjectID uuid.UUID `json:"subject_id,omitempty"`
	// Account that started the session (may equal subject_id)
	InitiatorID uuid.UUID `json:"initiator_id,omitempty"`
	// FK → flow_versions.id (pinned at creation)
	FlowVersionID uuid.UUID `json:"flow_version_id,omitempty"`
	// ContextKind holds the value of the "context_kind" field.
	ContextKind screeningsession.ContextKind `json:"context_kind,omitempty"`
	// PatientOrderID holds the value of the "patient_order_id" field.
	PatientOrderID *uuid.UUID `json:"patient_order_id,omitempty"`
	// GroupSessionID holds the value of the "group_session_id" field.
	GroupSessionID *uuid.UUID `json:"group_session_id,omitempty"`
	// CourseUnitID holds the value of the "course_unit_id" field.
	CourseUnitID *uuid.UUID `json:"course_unit_id,omitempty"`
	// Status holds the value of the "status" field.
	Status screeningsession.Status `json:"status,omitempty"`
	// SkipReason holds the value of the "skip_reason" field.
	SkipReason *string `json:"skip_reason,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Aggregated evidence, persisted at completion
	Evidence *screening.EvidenceScores `json:"evidence,omitempty"`
	// Routed destination, persisted at completion
	Destination *screening.Destination `json:"destination,omitempty"`
	// Crisis holds the value of the "crisis" field.
	Crisis bool `json:"crisis,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScreeningSessionQuery when eager-loading is set.
	Edges        ScreeningSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScreeningSessionEdges holds the relations/edges for other nodes in the graph.
type ScreeningSessionEdges struct {
	// Instruments holds the value of the instruments edge.
	Instruments []*SessionInstrument `json:"instruments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstrumentsOrErr returns the Instruments value or an error if the edge
// was not loaded in eager-loading.
func (e ScreeningSessionEdges) InstrumentsOrErr() ([]*SessionInstrument, error) {
	if e.loadedTypes[0] {
		return e.Instruments, nil
	}
	return nil, &NotLoadedError{edge: "instruments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScreeningSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case screeningsession.FieldPatientOrderID, screeningsession.FieldGroupSessionID, screeningsession.FieldCourseUnitID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case screeningsession.FieldMetadata, screeningsession.FieldEvidence, screeningsession.FieldDestination:
			values[i] = new([]byte)
		case screeningsession.FieldCrisis:
			values[i] = new(sql.NullBool)
		case screeningsession.FieldContextKind, screeningsession.FieldStatus, screeningsession.FieldSkipReason:
			values[i] = new(sql.NullString)
		case screeningsession.FieldCreatedAt, screeningsession.FieldUpdatedAt, screeningsession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case screeningsession.FieldID, screeningsession.FieldSubjectID, screeningsession.FieldInitiatorID, screeningsession.FieldFlowVersionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScreeningSession fields.
func (_m *ScreeningSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case screeningsession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case screeningsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case screeningsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case screeningsession.FieldSubjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value != nil {
				_m.SubjectID = *value
			}
		case screeningsession.FieldInitiatorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field initiator_id", values[i])
			} else if value != nil {
				_m.InitiatorID = *value
			}
		case screeningsession.FieldFlowVersionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field flow_version_id", values[i])
			} else if value != nil {
				_m.FlowVersionID = *value
			}
		case screeningsession.FieldContextKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_kind", values[i])
			} else if value.Valid {
				_m.ContextKind = screeningsession.ContextKind(value.String)
			}
		case screeningsession.FieldPatientOrderID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field patient_order_id", values[i])
			} else if value.Valid {
				_m.PatientOrderID = new(uuid.UUID)
				*_m.PatientOrderID = *value.S.(*uuid.UUID)
			}
		case screeningsession.FieldGroupSessionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field group_session_id", values[i])
			} else if value.Valid {
				_m.GroupSessionID = new(uuid.UUID)
				*_m.GroupSessionID = *value.S.(*uuid.UUID)
			}
		case screeningsession.FieldCourseUnitID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field course_unit_id", values[i])
			} else if value.Valid {
				_m.CourseUnitID = new(uuid.UUID)
				*_m.CourseUnitID = *value.S.(*uuid.UUID)
			}
		case screeningsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = screeningsession.Status(value.String)
			}
		case screeningsession.FieldSkipReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skip_reason", values[i])
			} else if value.Valid {
				_m.SkipReason = new(string)
				*_m.SkipReason = value.String
			}
		case screeningsession.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case screeningsession.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		case screeningsession.FieldDestination:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field destination", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Destination); err != nil {
					return fmt.Errorf("unmarshal field destination: %w", err)
				}
			}
		case screeningsession.FieldCrisis:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field crisis", values[i])
			} else if value.Valid {
				_m.Crisis = value.Bool
			}
		case screeningsession.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ScreeningSession.
// This includes values selected through modifiers, order, etc.
func (_m *ScreeningSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstruments queries the "instruments" edge of the ScreeningSession entity.
func (_m *ScreeningSession) QueryInstruments() *SessionInstrumentQuery {
	return NewScreeningSessionClient(_m.config).QueryInstruments(_m)
}

// Update returns a builder for updating this ScreeningSession.
// Note that you need to call ScreeningSession.Unwrap() before calling this method if this ScreeningSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScreeningSession) Update() *ScreeningSessionUpdateOne {
	return NewScreeningSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScreeningSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScreeningSession) Unwrap() *ScreeningSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ScreeningSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScreeningSession) String() string {
	var builder strings.Builder
	builder.WriteString("ScreeningSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectID))
	builder.WriteString(", ")
	builder.WriteString("initiator_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InitiatorID))
	builder.WriteString(", ")
	builder.WriteString("flow_version_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlowVersionID))
	builder.WriteString(", ")
	builder.WriteString("context_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextKind))
	builder.WriteString(", ")
	if v := _m.PatientOrderID; v != nil {
		builder.WriteString("patient_order_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GroupSessionID; v != nil {
		builder.WriteString("group_session_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CourseUnitID; v != nil {
		builder.WriteString("course_unit_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SkipReason; v != nil {
		builder.WriteString("skip_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteString(", ")
	builder.WriteString("destination=")
	builder.WriteString(fmt.Sprintf("%v", _m.Destination))
	builder.WriteString(", ")
	builder.WriteString("crisis=")
	builder.WriteString(fmt.Sprintf("%v", _m.Crisis))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ScreeningSessions is a parsable slice of ScreeningSession.
type ScreeningSessions []*ScreeningSession
