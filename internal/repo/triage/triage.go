// Code generated by ent, DO NOT EDIT.

package triage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the triage type in the database.
	Label = "triage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTriageGroupID holds the string denoting the triage_group_id field in the database.
	FieldTriageGroupID = "triage_group_id"
	// FieldFocusArea holds the string denoting the focus_area field in the database.
	FieldFocusArea = "focus_area"
	// FieldCareCategory holds the string denoting the care_category field in the database.
	FieldCareCategory = "care_category"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// EdgeGroup holds the string denoting the group edge name in mutations.
	EdgeGroup = "group"
	// Table holds the table name of the triage in the database.
	Table = "triages"
	// GroupTable is the table that holds the group relation/edge.
	GroupTable = "triages"
	// GroupInverseTable is the table name for the TriageGroup entity.
	// It exists in this package in order to avoid circular dependency with the "triagegroup" package.
	GroupInverseTable = "triage_groups"
	// GroupColumn is the table column denoting the group relation/edge.
	GroupColumn = "triage_group_id"
)

// Columns holds all SQL columns for triage fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldTriageGroupID,
	FieldFocusArea,
	FieldCareCategory,
	FieldReason,
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
	// FocusAreaValidator is a validator for the "focus_area" field. It is called by the builders before save.
	FocusAreaValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

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
		return fmt.Errorf("triage: invalid enum value for care_category field: %q", cc)
	}
}

// OrderOption defines the ordering options for the Triage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTriageGroupID orders the results by the triage_group_id field.
func ByTriageGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriageGroupID, opts...).ToFunc()
}

// ByFocusArea orders the results by the focus_area field.
func ByFocusArea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusArea, opts...).ToFunc()
}

// ByCareCategory orders the results by the care_category field.
func ByCareCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCareCategory, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByGroupField orders the results by group field.
func ByGroupField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupStep(), sql.OrderByField(field, opts...))
	}
}
func newGroupStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
	)
}
