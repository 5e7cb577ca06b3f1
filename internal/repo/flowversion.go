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
	"github.com/marlowhealth/compass_backend/internal/repo/flow"
	"github.com/marlowhealth/compass_backend/internal/repo/flowversion"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// FlowVersion is the model entity for the FlowVersion schema.
type FlowVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → flows.id
	FlowID uuid.UUID `json:"flow_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Mandatory flows refuse SkipSession without forceSkip
	Mandatory bool `json:"mandatory,omitempty"`
	// Ordered instrument steps with optional skip predicates
	Steps []screening.FlowStep `json:"steps,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt time.Time `json:"published_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FlowVersionQuery when eager-loading is set.
	Edges        FlowVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FlowVersionEdges holds the relations/edges for other nodes in the graph.
type FlowVersionEdges struct {
	// Flow holds the value of the flow edge.
	Flow *Flow `json:"flow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FlowOrErr returns the Flow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FlowVersionEdges) FlowOrErr() (*Flow, error) {
	if e.Flow != nil {
		return e.Flow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: flow.Label}
	}
	return nil, &NotLoadedError{edge: "flow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlowVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flowversion.FieldSteps:
			values[i] = new([]byte)
		case flowversion.FieldMandatory:
			values[i] = new(sql.NullBool)
		case flowversion.FieldVersion:
			values[i] = new(sql.NullInt64)
		case flowversion.FieldCreatedAt, flowversion.FieldPublishedAt:
			values[i] = new(sql.NullTime)
		case flowversion.FieldID, flowversion.FieldFlowID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlowVersion fields.
func (_m *FlowVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flowversion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case flowversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case flowversion.FieldFlowID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field flow_id", values[i])
			} else if value != nil {
				_m.FlowID = *value
			}
		case flowversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case flowversion.FieldMandatory:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mandatory", values[i])
			} else if value.Valid {
				_m.Mandatory = value.Bool
			}
		case flowversion.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case flowversion.FieldPublishedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FlowVersion.
// This includes values selected through modifiers, order, etc.
func (_m *FlowVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFlow queries the "flow" edge of the FlowVersion entity.
func (_m *FlowVersion) QueryFlow() *FlowQuery {
	return NewFlowVersionClient(_m.config).QueryFlow(_m)
}

// Update returns a builder for updating this FlowVersion.
// Note that you need to call FlowVersion.Unwrap() before calling this method if this FlowVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FlowVersion) Update() *FlowVersionUpdateOne {
	return NewFlowVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FlowVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FlowVersion) Unwrap() *FlowVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: FlowVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FlowVersion) String() string {
	var builder strings.Builder
	builder.WriteString("FlowVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("flow_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlowID))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("mandatory=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mandatory))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("published_at=")
	builder.WriteString(_m.PublishedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FlowVersions is a parsable slice of FlowVersion.
type FlowVersions []*FlowVersion
