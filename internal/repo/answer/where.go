// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionInstrumentID applies equality check predicate on the "session_instrument_id" field. It's identical to SessionInstrumentIDEQ.
func SessionInstrumentID(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSessionInstrumentID, v))
}

// QuestionKey applies equality check predicate on the "question_key" field. It's identical to QuestionKeyEQ.
func QuestionKey(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionKey, v))
}

// FreeText applies equality check predicate on the "free_text" field. It's identical to FreeTextEQ.
func FreeText(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldFreeText, v))
}

// RecordedBy applies equality check predicate on the "recorded_by" field. It's identical to RecordedByEQ.
func RecordedBy(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRecordedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldCreatedAt, v))
}

// SessionInstrumentIDEQ applies the EQ predicate on the "session_instrument_id" field.
func SessionInstrumentIDEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSessionInstrumentID, v))
}

// SessionInstrumentIDNEQ applies the NEQ predicate on the "session_instrument_id" field.
func SessionInstrumentIDNEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSessionInstrumentID, v))
}

// SessionInstrumentIDIn applies the In predicate on the "session_instrument_id" field.
func SessionInstrumentIDIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldSessionInstrumentID, vs...))
}

// SessionInstrumentIDNotIn applies the NotIn predicate on the "session_instrument_id" field.
func SessionInstrumentIDNotIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldSessionInstrumentID, vs...))
}

// QuestionKeyEQ applies the EQ predicate on the "question_key" field.
func QuestionKeyEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionKey, v))
}

// QuestionKeyNEQ applies the NEQ predicate on the "question_key" field.
func QuestionKeyNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldQuestionKey, v))
}

// QuestionKeyIn applies the In predicate on the "question_key" field.
func QuestionKeyIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldQuestionKey, vs...))
}

// QuestionKeyNotIn applies the NotIn predicate on the "question_key" field.
func QuestionKeyNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldQuestionKey, vs...))
}

// QuestionKeyGT applies the GT predicate on the "question_key" field.
func QuestionKeyGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldQuestionKey, v))
}

// QuestionKeyGTE applies the GTE predicate on the "question_key" field.
func QuestionKeyGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldQuestionKey, v))
}

// QuestionKeyLT applies the LT predicate on the "question_key" field.
func QuestionKeyLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldQuestionKey, v))
}

// QuestionKeyLTE applies the LTE predicate on the "question_key" field.
func QuestionKeyLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldQuestionKey, v))
}

// QuestionKeyContains applies the Contains predicate on the "question_key" field.
func QuestionKeyContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldQuestionKey, v))
}

// QuestionKeyHasPrefix applies the HasPrefix predicate on the "question_key" field.
func QuestionKeyHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldQuestionKey, v))
}

// QuestionKeyHasSuffix applies the HasSuffix predicate on the "question_key" field.
func QuestionKeyHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldQuestionKey, v))
}

// QuestionKeyEqualFold applies the EqualFold predicate on the "question_key" field.
func QuestionKeyEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldQuestionKey, v))
}

// QuestionKeyContainsFold applies the ContainsFold predicate on the "question_key" field.
func QuestionKeyContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldQuestionKey, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v Format) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v Format) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...Format) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...Format) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldFormat, vs...))
}

// OptionKeysIsNil applies the IsNil predicate on the "option_keys" field.
func OptionKeysIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldOptionKeys))
}

// OptionKeysNotNil applies the NotNil predicate on the "option_keys" field.
func OptionKeysNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldOptionKeys))
}

// FreeTextEQ applies the EQ predicate on the "free_text" field.
func FreeTextEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldFreeText, v))
}

// FreeTextNEQ applies the NEQ predicate on the "free_text" field.
func FreeTextNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldFreeText, v))
}

// FreeTextIn applies the In predicate on the "free_text" field.
func FreeTextIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldFreeText, vs...))
}

// FreeTextNotIn applies the NotIn predicate on the "free_text" field.
func FreeTextNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldFreeText, vs...))
}

// FreeTextGT applies the GT predicate on the "free_text" field.
func FreeTextGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldFreeText, v))
}

// FreeTextGTE applies the GTE predicate on the "free_text" field.
func FreeTextGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldFreeText, v))
}

// FreeTextLT applies the LT predicate on the "free_text" field.
func FreeTextLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldFreeText, v))
}

// FreeTextLTE applies the LTE predicate on the "free_text" field.
func FreeTextLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldFreeText, v))
}

// FreeTextContains applies the Contains predicate on the "free_text" field.
func FreeTextContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldFreeText, v))
}

// FreeTextHasPrefix applies the HasPrefix predicate on the "free_text" field.
func FreeTextHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldFreeText, v))
}

// FreeTextHasSuffix applies the HasSuffix predicate on the "free_text" field.
func FreeTextHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldFreeText, v))
}

// FreeTextIsNil applies the IsNil predicate on the "free_text" field.
func FreeTextIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldFreeText))
}

// FreeTextNotNil applies the NotNil predicate on the "free_text" field.
func FreeTextNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldFreeText))
}

// FreeTextEqualFold applies the EqualFold predicate on the "free_text" field.
func FreeTextEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldFreeText, v))
}

// FreeTextContainsFold applies the ContainsFold predicate on the "free_text" field.
func FreeTextContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldFreeText, v))
}

// RecordedByEQ applies the EQ predicate on the "recorded_by" field.
func RecordedByEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRecordedBy, v))
}

// RecordedByNEQ applies the NEQ predicate on the "recorded_by" field.
func RecordedByNEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldRecordedBy, v))
}

// RecordedByIn applies the In predicate on the "recorded_by" field.
func RecordedByIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldRecordedBy, vs...))
}

// RecordedByNotIn applies the NotIn predicate on the "recorded_by" field.
func RecordedByNotIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldRecordedBy, vs...))
}

// RecordedByGT applies the GT predicate on the "recorded_by" field.
func RecordedByGT(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldRecordedBy, v))
}

// RecordedByGTE applies the GTE predicate on the "recorded_by" field.
func RecordedByGTE(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldRecordedBy, v))
}

// RecordedByLT applies the LT predicate on the "recorded_by" field.
func RecordedByLT(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldRecordedBy, v))
}

// RecordedByLTE applies the LTE predicate on the "recorded_by" field.
func RecordedByLTE(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldRecordedBy, v))
}

// HasSessionInstrument applies the HasEdge predicate on the "session_instrument" edge.
func HasSessionInstrument() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionInstrumentTable, SessionInstrumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionInstrumentWith applies the HasEdge predicate on the "session_instrument" edge with a given conditions (other predicates).
func HasSessionInstrumentWith(preds ...predicate.SessionInstrument) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newSessionInstrumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
