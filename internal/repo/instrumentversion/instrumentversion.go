// Code generated by ent, DO NOT EDIT.

package instrumentversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the instrumentversion type in the database.
	Label = "instrument_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldInstrumentID holds the string denoting the instrument_id field in the database.
	FieldInstrumentID = "instrument_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// EdgeInstrument holds the string denoting the instrument edge name in mutations.
	EdgeInstrument = "instrument"
	// Table holds the table name of the instrumentversion in the database.
	Table = "instrument_versions"
	// InstrumentTable is the table that holds the instrument relation/edge.
	InstrumentTable = "instrument_versions"
	// InstrumentInverseTable is the table name for the Instrument entity.
	// It exists in this package in order to avoid circular dependency with the "instrument" package.
	InstrumentInverseTable = "instruments"
	// InstrumentColumn is the table column denoting the instrument relation/edge.
	InstrumentColumn = "instrument_id"
)

// Columns holds all SQL columns for instrumentversion fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldInstrumentID,
	FieldVersion,
	FieldContent,
	FieldPublishedAt,
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
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InstrumentVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInstrumentID orders the results by the instrument_id field.
func ByInstrumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstrumentID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByInstrumentField orders the results by instrument field.
func ByInstrumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstrumentStep(), sql.OrderByField(field, opts...))
	}
}
func newInstrumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstrumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InstrumentTable, InstrumentColumn),
	)
}
