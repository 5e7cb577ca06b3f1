// Code generated by ent, DO NOT EDIT.

package answer

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the answer type in the database.
	Label = "answer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSessionInstrumentID holds the string denoting the session_instrument_id field in the database.
	FieldSessionInstrumentID = "session_instrument_id"
	// FieldQuestionKey holds the string denoting the question_key field in the database.
	FieldQuestionKey = "question_key"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldOptionKeys holds the string denoting the option_keys field in the database.
	FieldOptionKeys = "option_keys"
	// FieldFreeText holds the string denoting the free_text field in the database.
	FieldFreeText = "free_text"
	// FieldRecordedBy holds the string denoting the recorded_by field in the database.
	FieldRecordedBy = "recorded_by"
	// EdgeSessionInstrument holds the string denoting the session_instrument edge name in mutations.
	EdgeSessionInstrument = "session_instrument"
	// Table holds the table name of the answer in the database.
	Table = "answers"
	// SessionInstrumentTable is the table that holds the session_instrument relation/edge.
	SessionInstrumentTable = "answers"
	// SessionInstrumentInverseTable is the table name for the SessionInstrument entity.
	// It exists in this package in order to avoid circular dependency with the "sessioninstrument" package.
	SessionInstrumentInverseTable = "session_instruments"
	// SessionInstrumentColumn is the table column denoting the session_instrument relation/edge.
	SessionInstrumentColumn = "session_instrument_id"
)

// Columns holds all SQL columns for answer fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSessionInstrumentID,
	FieldQuestionKey,
	FieldFormat,
	FieldOptionKeys,
	FieldFreeText,
	FieldRecordedBy,
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
	// QuestionKeyValidator is a validator for the "question_key" field. It is called by the builders before save.
	QuestionKeyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Format defines the type for the "format" enum field.
type Format string

// Format values.
const (
	FormatSingleSelect Format = "single_select"
	FormatMultiSelect  Format = "multi_select"
	FormatFreeText     Format = "free_text"
)

func (f Format) String() string {
	return string(f)
}

// FormatValidator is a validator for the "format" field enum values. It is called by the builders before save.
func FormatValidator(f Format) error {
	switch f {
	case FormatSingleSelect, FormatMultiSelect, FormatFreeText:
		return nil
	default:
		return fmt.Errorf("answer: invalid enum value for format field: %q", f)
	}
}

// OrderOption defines the ordering options for the Answer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionInstrumentID orders the results by the session_instrument_id field.
func BySessionInstrumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionInstrumentID, opts...).ToFunc()
}

// ByQuestionKey orders the results by the question_key field.
func ByQuestionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionKey, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByFreeText orders the results by the free_text field.
func ByFreeText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreeText, opts...).ToFunc()
}

// ByRecordedBy orders the results by the recorded_by field.
func ByRecordedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedBy, opts...).ToFunc()
}

// BySessionInstrumentField orders the results by session_instrument field.
func BySessionInstrumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionInstrumentStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionInstrumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInstrumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionInstrumentTable, SessionInstrumentColumn),
	)
}
