// Code generated by ent, DO NOT EDIT.

package triagegroup

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the triagegroup type in the database.
	Label = "triage_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientOrderID holds the string denoting the patient_order_id field in the database.
	FieldPatientOrderID = "patient_order_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCareCategory holds the string denoting the care_category field in the database.
	FieldCareCategory = "care_category"
	// FieldSafetyPlanningStatus holds the string denoting the safety_planning_status field in the database.
	FieldSafetyPlanningStatus = "safety_planning_status"
	// FieldOverrideReason holds the string denoting the override_reason field in the database.
	FieldOverrideReason = "override_reason"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeTriages holds the string denoting the triages edge name in mutations.
	EdgeTriages = "triages"
	// Table holds the table name of the triagegroup in the database.
	Table = "triage_groups"
	// TriagesTable is the table that holds the triages relation/edge.
	TriagesTable = "triages"
	// TriagesInverseTable is the table name for the Triage entity.
	// It exists in this package in order to avoid circular dependency with the "triage" package.
	TriagesInverseTable = "triages"
	// TriagesColumn is the table column denoting the triages relation/edge.
	TriagesColumn = "triage_group_id"
)

// Columns holds all SQL columns for triagegroup fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientOrderID,
	FieldSessionID,
	FieldSource,
	FieldCareCategory,
	FieldSafetyPlanningStatus,
	FieldOverrideReason,
	FieldCreatedBy,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceSYSTEM_COMPUTED    Source = "SYSTEM_COMPUTED"
	SourceCLINICIAN_OVERRIDE Source = "CLINICIAN_OVERRIDE"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceSYSTEM_COMPUTED, SourceCLINICIAN_OVERRIDE:
		return nil
	default:
		return fmt.Errorf("triagegroup: invalid enum value for source field: %q", s)
	}
}

// CareCategory defines the type for the "care_category" enum field.
type CareCategory string

// CareCategory values.
const (
	CareCategorySUBCLINICAL   CareCategory = "SUBCLINICAL"
	CareCategoryCOACHING      CareCategory = "COACHING"
	CareCategoryPSYCHOTHERAPY CareCategory = "PSYCHOTHERAPY"
	CareCategoryPSYCHIATRY    CareCategory = "PSYCHIATRY"
	CareCategoryCRISIS_CARE   CareCategory = "CRISIS_CARE"
)

func (cc CareCategory) String() string {
	return string(cc)
}

// CareCategoryValidator is a validator for the "care_category" field enum values. It is called by the builders before save.
func CareCategoryValidator(cc CareCategory) error {
	switch cc {
	case CareCategorySUBCLINICAL, CareCategoryCOACHING, CareCategoryPSYCHOTHERAPY, CareCategoryPSYCHIATRY, CareCategoryCRISIS_CARE:
		return nil
	default:
		return fmt.Errorf("triagegroup: invalid enum value for care_category field: %q", cc)
	}
}

// SafetyPlanningStatus defines the type for the "safety_planning_status" enum field.
type SafetyPlanningStatus string

// SafetyPlanningStatusNOT_INDICATED is the default value of the SafetyPlanningStatus enum.
const DefaultSafetyPlanningStatus = SafetyPlanningStatusNOT_INDICATED

// SafetyPlanningStatus values.
const (
	SafetyPlanningStatusNOT_INDICATED SafetyPlanningStatus = "NOT_INDICATED"
	SafetyPlanningStatusINDICATED     SafetyPlanningStatus = "INDICATED"
)

func (sps SafetyPlanningStatus) String() string {
	return string(sps)
}

// SafetyPlanningStatusValidator is a validator for the "safety_planning_status" field enum values. It is called by the builders before save.
func SafetyPlanningStatusValidator(sps SafetyPlanningStatus) error {
	switch sps {
	case SafetyPlanningStatusNOT_INDICATED, SafetyPlanningStatusINDICATED:
		return nil
	default:
		return fmt.Errorf("triagegroup: invalid enum value for safety_planning_status field: %q", sps)
	}
}

// OrderOption defines the ordering options for the TriageGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPatientOrderID orders the results by the patient_order_id field.
func ByPatientOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientOrderID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCareCategory orders the results by the care_category field.
func ByCareCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCareCategory, opts...).ToFunc()
}

// BySafetyPlanningStatus orders the results by the safety_planning_status field.
func BySafetyPlanningStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSafetyPlanningStatus, opts...).ToFunc()
}

// ByOverrideReason orders the results by the override_reason field.
func ByOverrideReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverrideReason, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByTriagesCount orders the results by triages count.
func ByTriagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTriagesStep(), opts...)
	}
}

// ByTriages orders the results by triages terms.
func ByTriages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTriagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTriagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TriagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TriagesTable, TriagesColumn),
	)
}
