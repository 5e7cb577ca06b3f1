// Code generated by ent, DO NOT EDIT.

package sessioninstrument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldSessionID, v))
}

// InstrumentVersionID applies equality check predicate on the "instrument_version_id" field. It's identical to InstrumentVersionIDEQ.
func InstrumentVersionID(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldInstrumentVersionID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldPosition, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldCompleted, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldSkipped, v))
}

// BelowScoringThreshold applies equality check predicate on the "below_scoring_threshold" field. It's identical to BelowScoringThresholdEQ.
func BelowScoringThreshold(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldBelowScoringThreshold, v))
}

// Crisis applies equality check predicate on the "crisis" field. It's identical to CrisisEQ.
func Crisis(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldCrisis, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLTE(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNotIn(FieldSessionID, vs...))
}

// InstrumentVersionIDEQ applies the EQ predicate on the "instrument_version_id" field.
func InstrumentVersionIDEQ(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldInstrumentVersionID, v))
}

// InstrumentVersionIDNEQ applies the NEQ predicate on the "instrument_version_id" field.
func InstrumentVersionIDNEQ(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldInstrumentVersionID, v))
}

// InstrumentVersionIDIn applies the In predicate on the "instrument_version_id" field.
func InstrumentVersionIDIn(vs ...uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldIn(FieldInstrumentVersionID, vs...))
}

// InstrumentVersionIDNotIn applies the NotIn predicate on the "instrument_version_id" field.
func InstrumentVersionIDNotIn(vs ...uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNotIn(FieldInstrumentVersionID, vs...))
}

// InstrumentVersionIDGT applies the GT predicate on the "instrument_version_id" field.
func InstrumentVersionIDGT(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGT(FieldInstrumentVersionID, v))
}

// InstrumentVersionIDGTE applies the GTE predicate on the "instrument_version_id" field.
func InstrumentVersionIDGTE(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGTE(FieldInstrumentVersionID, v))
}

// InstrumentVersionIDLT applies the LT predicate on the "instrument_version_id" field.
func InstrumentVersionIDLT(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLT(FieldInstrumentVersionID, v))
}

// InstrumentVersionIDLTE applies the LTE predicate on the "instrument_version_id" field.
func InstrumentVersionIDLTE(v uuid.UUID) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLTE(FieldInstrumentVersionID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLTE(FieldPosition, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldCompleted, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldSkipped, v))
}

// BelowScoringThresholdEQ applies the EQ predicate on the "below_scoring_threshold" field.
func BelowScoringThresholdEQ(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldBelowScoringThreshold, v))
}

// BelowScoringThresholdNEQ applies the NEQ predicate on the "below_scoring_threshold" field.
func BelowScoringThresholdNEQ(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldBelowScoringThreshold, v))
}

// CrisisEQ applies the EQ predicate on the "crisis" field.
func CrisisEQ(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldCrisis, v))
}

// CrisisNEQ applies the NEQ predicate on the "crisis" field.
func CrisisNEQ(v bool) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldCrisis, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNotNull(FieldScore))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.FieldNotNull(FieldCompletedAt))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionInstrument {
	return predicate.SessionInstrument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ScreeningSession) predicate.SessionInstrument {
	return predicate.SessionInstrument(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.SessionInstrument {
	return predicate.SessionInstrument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.SessionInstrument {
	return predicate.SessionInstrument(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionInstrument) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionInstrument) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionInstrument) predicate.SessionInstrument {
	return predicate.SessionInstrument(sql.NotPredicates(p))
}
