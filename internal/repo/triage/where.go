// Code generated by ent, DO NOT EDIT.

package triage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldCreatedAt, v))
}

// TriageGroupID applies equality check predicate on the "triage_group_id" field. It's identical to TriageGroupIDEQ.
func TriageGroupID(v uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldTriageGroupID, v))
}

// FocusArea applies equality check predicate on the "focus_area" field. It's identical to FocusAreaEQ.
func FocusArea(v string) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldFocusArea, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Triage {
	return predicate.Triage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Triage {
	return predicate.Triage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Triage {
	return predicate.Triage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Triage {
	return predicate.Triage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Triage {
	return predicate.Triage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Triage {
	return predicate.Triage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Triage {
	return predicate.Triage(sql.FieldLTE(FieldCreatedAt, v))
}

// TriageGroupIDEQ applies the EQ predicate on the "triage_group_id" field.
func TriageGroupIDEQ(v uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldTriageGroupID, v))
}

// TriageGroupIDNEQ applies the NEQ predicate on the "triage_group_id" field.
func TriageGroupIDNEQ(v uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldNEQ(FieldTriageGroupID, v))
}

// TriageGroupIDIn applies the In predicate on the "triage_group_id" field.
func TriageGroupIDIn(vs ...uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldIn(FieldTriageGroupID, vs...))
}

// TriageGroupIDNotIn applies the NotIn predicate on the "triage_group_id" field.
func TriageGroupIDNotIn(vs ...uuid.UUID) predicate.Triage {
	return predicate.Triage(sql.FieldNotIn(FieldTriageGroupID, vs...))
}

// FocusAreaEQ applies the EQ predicate on the "focus_area" field.
func FocusAreaEQ(v string) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldFocusArea, v))
}

// FocusAreaNEQ applies the NEQ predicate on the "focus_area" field.
func FocusAreaNEQ(v string) predicate.Triage {
	return predicate.Triage(sql.FieldNEQ(FieldFocusArea, v))
}

// FocusAreaIn applies the In predicate on the "focus_area" field.
func FocusAreaIn(vs ...string) predicate.Triage {
	return predicate.Triage(sql.FieldIn(FieldFocusArea, vs...))
}

// FocusAreaNotIn applies the NotIn predicate on the "focus_area" field.
func FocusAreaNotIn(vs ...string) predicate.Triage {
	return predicate.Triage(sql.FieldNotIn(FieldFocusArea, vs...))
}

// FocusAreaGT applies the GT predicate on the "focus_area" field.
func FocusAreaGT(v string) predicate.Triage {
	return predicate.Triage(sql.FieldGT(FieldFocusArea, v))
}

// FocusAreaGTE applies the GTE predicate on the "focus_area" field.
func FocusAreaGTE(v string) predicate.Triage {
	return predicate.Triage(sql.FieldGTE(FieldFocusArea, v))
}

// FocusAreaLT applies the LT predicate on the "focus_area" field.
func FocusAreaLT(v string) predicate.Triage {
	return predicate.Triage(sql.FieldLT(FieldFocusArea, v))
}

// FocusAreaLTE applies the LTE predicate on the "focus_area" field.
func FocusAreaLTE(v string) predicate.Triage {
	return predicate.Triage(sql.FieldLTE(FieldFocusArea, v))
}

// FocusAreaContains applies the Contains predicate on the "focus_area" field.
func FocusAreaContains(v string) predicate.Triage {
	return predicate.Triage(sql.FieldContains(FieldFocusArea, v))
}

// FocusAreaHasPrefix applies the HasPrefix predicate on the "focus_area" field.
func FocusAreaHasPrefix(v string) predicate.Triage {
	return predicate.Triage(sql.FieldHasPrefix(FieldFocusArea, v))
}

// FocusAreaHasSuffix applies the HasSuffix predicate on the "focus_area" field.
func FocusAreaHasSuffix(v string) predicate.Triage {
	return predicate.Triage(sql.FieldHasSuffix(FieldFocusArea, v))
}

// FocusAreaEqualFold applies the EqualFold predicate on the "focus_area" field.
func FocusAreaEqualFold(v string) predicate.Triage {
	return predicate.Triage(sql.FieldEqualFold(FieldFocusArea, v))
}

// FocusAreaContainsFold applies the ContainsFold predicate on the "focus_area" field.
func FocusAreaContainsFold(v string) predicate.Triage {
	return predicate.Triage(sql.FieldContainsFold(FieldFocusArea, v))
}

// CareCategoryEQ applies the EQ predicate on the "care_category" field.
func CareCategoryEQ(v CareCategory) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldCareCategory, v))
}

// CareCategoryNEQ applies the NEQ predicate on the "care_category" field.
func CareCategoryNEQ(v CareCategory) predicate.Triage {
	return predicate.Triage(sql.FieldNEQ(FieldCareCategory, v))
}

// CareCategoryIn applies the In predicate on the "care_category" field.
func CareCategoryIn(vs ...CareCategory) predicate.Triage {
	return predicate.Triage(sql.FieldIn(FieldCareCategory, vs...))
}

// CareCategoryNotIn applies the NotIn predicate on the "care_category" field.
func CareCategoryNotIn(vs ...CareCategory) predicate.Triage {
	return predicate.Triage(sql.FieldNotIn(FieldCareCategory, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Triage {
	return predicate.Triage(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Triage {
	return predicate.Triage(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Triage {
	return predicate.Triage(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Triage {
	return predicate.Triage(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Triage {
	return predicate.Triage(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Triage {
	return predicate.Triage(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Triage {
	return predicate.Triage(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Triage {
	return predicate.Triage(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Triage {
	return predicate.Triage(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Triage {
	return predicate.Triage(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Triage {
	return predicate.Triage(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.Triage {
	return predicate.Triage(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.Triage {
	return predicate.Triage(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Triage {
	return predicate.Triage(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Triage {
	return predicate.Triage(sql.FieldContainsFold(FieldReason, v))
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.Triage {
	return predicate.Triage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.TriageGroup) predicate.Triage {
	return predicate.Triage(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Triage) predicate.Triage {
	return predicate.Triage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Triage) predicate.Triage {
	return predicate.Triage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Triage) predicate.Triage {
	return predicate.Triage(sql.NotPredicates(p))
}
