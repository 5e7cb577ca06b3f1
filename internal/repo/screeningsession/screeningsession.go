// Code generated by ent, DO NOT EDIT.

package screeningsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the screeningsession type in the database.
	Label = "screening_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldInitiatorID holds the string denoting the initiator_id field in the database.
	FieldInitiatorID = "initiator_id"
	// FieldFlowVersionID holds the string denoting the flow_version_id field in the database.
	FieldFlowVersionID = "flow_version_id"
	// FieldContextKind holds the string denoting the context_kind field in the database.
	FieldContextKind = "context_kind"
	// FieldPatientOrderID holds the string denoting the patient_order_id field in the database.
	FieldPatientOrderID = "patient_order_id"
	// FieldGroupSessionID holds the string denoting the group_session_id field in the database.
	FieldGroupSessionID = "group_session_id"
	// FieldCourseUnitID holds the string denoting the course_unit_id field in the database.
	FieldCourseUnitID = "course_unit_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSkipReason holds the string denoting the skip_reason field in the database.
	FieldSkipReason = "skip_reason"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldDestination holds the string denoting the destination field in the database.
	FieldDestination = "destination"
	// FieldCrisis holds the string denoting the crisis field in the database.
	FieldCrisis = "crisis"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeInstruments holds the string denoting the instruments edge name in mutations.
	EdgeInstruments = "instruments"
	// Table holds the table name of the screeningsession in the database.
	Table = "screening_sessions"
	// InstrumentsTable is the table that holds the instruments relation/edge.
	InstrumentsTable = "session_instruments"
	// InstrumentsInverseTable is the table name for the SessionInstrument entity.
	// It exists in this package in order to avoid circular dependency with the "sessioninstrument" package.
	InstrumentsInverseTable = "session_instruments"
	// InstrumentsColumn is the table column denoting the instruments relation/edge.
	InstrumentsColumn = "session_id"
)

// Columns holds all SQL columns for screeningsession fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSubjectID,
	FieldInitiatorID,
	FieldFlowVersionID,
	FieldContextKind,
	FieldPatientOrderID,
	FieldGroupSessionID,
	FieldCourseUnitID,
	FieldStatus,
	FieldSkipReason,
	FieldMetadata,
	FieldEvidence,
	FieldDestination,
	FieldCrisis,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SkipReasonValidator is a validator for the "skip_reason" field. It is called by the builders before save.
	SkipReasonValidator func(string) error
	// DefaultCrisis holds the default value on creation for the "crisis" field.
	DefaultCrisis bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ContextKind defines the type for the "context_kind" enum field.
type ContextKind string

// ContextKindStandalone is the default value of the ContextKind enum.
const DefaultContextKind = ContextKindStandalone

// ContextKind values.
const (
	ContextKindPatientOrder ContextKind = "patient_order"
	ContextKindGroupSession ContextKind = "group_session"
	ContextKindCourseUnit   ContextKind = "course_unit"
	ContextKindStandalone   ContextKind = "standalone"
)

func (ck ContextKind) String() string {
	return string(ck)
}

// ContextKindValidator is a validator for the "context_kind" field enum values. It is called by the builders before save.
func ContextKindValidator(ck ContextKind) error {
	switch ck {
	case ContextKindPatientOrder, ContextKindGroupSession, ContextKindCourseUnit, ContextKindStandalone:
		return nil
	default:
		return fmt.Errorf("screeningsession: invalid enum value for context_kind field: %q", ck)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusCompleted, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("screeningsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScreeningSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByInitiatorID orders the results by the initiator_id field.
func ByInitiatorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitiatorID, opts...).ToFunc()
}

// ByFlowVersionID orders the results by the flow_version_id field.
func ByFlowVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowVersionID, opts...).ToFunc()
}

// ByContextKind orders the results by the context_kind field.
func ByContextKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextKind, opts...).ToFunc()
}

// ByPatientOrderID orders the results by the patient_order_id field.
func ByPatientOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientOrderID, opts...).ToFunc()
}

// ByGroupSessionID orders the results by the group_session_id field.
func ByGroupSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupSessionID, opts...).ToFunc()
}

// ByCourseUnitID orders the results by the course_unit_id field.
func ByCourseUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseUnitID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySkipReason orders the results by the skip_reason field.
func BySkipReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipReason, opts...).ToFunc()
}

// ByCrisis orders the results by the crisis field.
func ByCrisis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrisis, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByInstrumentsCount orders the results by instruments count.
func ByInstrumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInstrumentsStep(), opts...)
	}
}

// ByInstruments orders the results by instruments terms.
func ByInstruments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstrumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInstrumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstrumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InstrumentsTable, InstrumentsColumn),
	)
}
