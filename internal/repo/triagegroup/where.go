// Code generated by ent, DO NOT EDIT.

package triagegroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientOrderID applies equality check predicate on the "patient_order_id" field. It's identical to PatientOrderIDEQ.
func PatientOrderID(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldPatientOrderID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldSessionID, v))
}

// OverrideReason applies equality check predicate on the "override_reason" field. It's identical to OverrideReasonEQ.
func OverrideReason(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldOverrideReason, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientOrderIDEQ applies the EQ predicate on the "patient_order_id" field.
func PatientOrderIDEQ(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldPatientOrderID, v))
}

// PatientOrderIDNEQ applies the NEQ predicate on the "patient_order_id" field.
func PatientOrderIDNEQ(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNEQ(FieldPatientOrderID, v))
}

// PatientOrderIDIn applies the In predicate on the "patient_order_id" field.
func PatientOrderIDIn(vs ...uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIn(FieldPatientOrderID, vs...))
}

// PatientOrderIDNotIn applies the NotIn predicate on the "patient_order_id" field.
func PatientOrderIDNotIn(vs ...uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotIn(FieldPatientOrderID, vs...))
}

// PatientOrderIDGT applies the GT predicate on the "patient_order_id" field.
func PatientOrderIDGT(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGT(FieldPatientOrderID, v))
}

// PatientOrderIDGTE applies the GTE predicate on the "patient_order_id" field.
func PatientOrderIDGTE(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGTE(FieldPatientOrderID, v))
}

// PatientOrderIDLT applies the LT predicate on the "patient_order_id" field.
func PatientOrderIDLT(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLT(FieldPatientOrderID, v))
}

// PatientOrderIDLTE applies the LTE predicate on the "patient_order_id" field.
func PatientOrderIDLTE(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLTE(FieldPatientOrderID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotNull(FieldSessionID))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotIn(FieldSource, vs...))
}

// CareCategoryEQ applies the EQ predicate on the "care_category" field.
func CareCategoryEQ(v CareCategory) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldCareCategory, v))
}

// CareCategoryNEQ applies the NEQ predicate on the "care_category" field.
func CareCategoryNEQ(v CareCategory) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNEQ(FieldCareCategory, v))
}

// CareCategoryIn applies the In predicate on the "care_category" field.
func CareCategoryIn(vs ...CareCategory) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIn(FieldCareCategory, vs...))
}

// CareCategoryNotIn applies the NotIn predicate on the "care_category" field.
func CareCategoryNotIn(vs ...CareCategory) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotIn(FieldCareCategory, vs...))
}

// SafetyPlanningStatusEQ applies the EQ predicate on the "safety_planning_status" field.
func SafetyPlanningStatusEQ(v SafetyPlanningStatus) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldSafetyPlanningStatus, v))
}

// SafetyPlanningStatusNEQ applies the NEQ predicate on the "safety_planning_status" field.
func SafetyPlanningStatusNEQ(v SafetyPlanningStatus) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNEQ(FieldSafetyPlanningStatus, v))
}

// SafetyPlanningStatusIn applies the In predicate on the "safety_planning_status" field.
func SafetyPlanningStatusIn(vs ...SafetyPlanningStatus) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIn(FieldSafetyPlanningStatus, vs...))
}

// SafetyPlanningStatusNotIn applies the NotIn predicate on the "safety_planning_status" field.
func SafetyPlanningStatusNotIn(vs ...SafetyPlanningStatus) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotIn(FieldSafetyPlanningStatus, vs...))
}

// OverrideReasonEQ applies the EQ predicate on the "override_reason" field.
func OverrideReasonEQ(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldOverrideReason, v))
}

// OverrideReasonNEQ applies the NEQ predicate on the "override_reason" field.
func OverrideReasonNEQ(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNEQ(FieldOverrideReason, v))
}

// OverrideReasonIn applies the In predicate on the "override_reason" field.
func OverrideReasonIn(vs ...string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIn(FieldOverrideReason, vs...))
}

// OverrideReasonNotIn applies the NotIn predicate on the "override_reason" field.
func OverrideReasonNotIn(vs ...string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotIn(FieldOverrideReason, vs...))
}

// OverrideReasonGT applies the GT predicate on the "override_reason" field.
func OverrideReasonGT(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGT(FieldOverrideReason, v))
}

// OverrideReasonGTE applies the GTE predicate on the "override_reason" field.
func OverrideReasonGTE(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGTE(FieldOverrideReason, v))
}

// OverrideReasonLT applies the LT predicate on the "override_reason" field.
func OverrideReasonLT(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLT(FieldOverrideReason, v))
}

// OverrideReasonLTE applies the LTE predicate on the "override_reason" field.
func OverrideReasonLTE(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLTE(FieldOverrideReason, v))
}

// OverrideReasonContains applies the Contains predicate on the "override_reason" field.
func OverrideReasonContains(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldContains(FieldOverrideReason, v))
}

// OverrideReasonHasPrefix applies the HasPrefix predicate on the "override_reason" field.
func OverrideReasonHasPrefix(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldHasPrefix(FieldOverrideReason, v))
}

// OverrideReasonHasSuffix applies the HasSuffix predicate on the "override_reason" field.
func OverrideReasonHasSuffix(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldHasSuffix(FieldOverrideReason, v))
}

// OverrideReasonIsNil applies the IsNil predicate on the "override_reason" field.
func OverrideReasonIsNil() predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIsNull(FieldOverrideReason))
}

// OverrideReasonNotNil applies the NotNil predicate on the "override_reason" field.
func OverrideReasonNotNil() predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotNull(FieldOverrideReason))
}

// OverrideReasonEqualFold applies the EqualFold predicate on the "override_reason" field.
func OverrideReasonEqualFold(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEqualFold(FieldOverrideReason, v))
}

// OverrideReasonContainsFold applies the ContainsFold predicate on the "override_reason" field.
func OverrideReasonContainsFold(v string) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldContainsFold(FieldOverrideReason, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v uuid.UUID) predicate.TriageGroup {
	return predicate.TriageGroup(sql.FieldLTE(FieldCreatedBy, v))
}

// HasTriages applies the HasEdge predicate on the "triages" edge.
func HasTriages() predicate.TriageGroup {
	return predicate.TriageGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TriagesTable, TriagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTriagesWith applies the HasEdge predicate on the "triages" edge with a given conditions (other predicates).
func HasTriagesWith(preds ...predicate.Triage) predicate.TriageGroup {
	return predicate.TriageGroup(func(s *sql.Selector) {
		step := newTriagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TriageGroup) predicate.TriageGroup {
	return predicate.TriageGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TriageGroup) predicate.TriageGroup {
	return predicate.TriageGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TriageGroup) predicate.TriageGroup {
	return predicate.TriageGroup(sql.NotPredicates(p))
}
