// Code generated by ent, DO NOT EDIT.

package screeningsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldSubjectID, v))
}

// InitiatorID applies equality check predicate on the "initiator_id" field. It's identical to InitiatorIDEQ.
func InitiatorID(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldInitiatorID, v))
}

// FlowVersionID applies equality check predicate on the "flow_version_id" field. It's identical to FlowVersionIDEQ.
func FlowVersionID(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldFlowVersionID, v))
}

// PatientOrderID applies equality check predicate on the "patient_order_id" field. It's identical to PatientOrderIDEQ.
func PatientOrderID(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldPatientOrderID, v))
}

// GroupSessionID applies equality check predicate on the "group_session_id" field. It's identical to GroupSessionIDEQ.
func GroupSessionID(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldGroupSessionID, v))
}

// CourseUnitID applies equality check predicate on the "course_unit_id" field. It's identical to CourseUnitIDEQ.
func CourseUnitID(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldCourseUnitID, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldSkipReason, v))
}

// Crisis applies equality check predicate on the "crisis" field. It's identical to CrisisEQ.
func Crisis(v bool) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldCrisis, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldSubjectID, v))
}

// InitiatorIDEQ applies the EQ predicate on the "initiator_id" field.
func InitiatorIDEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldInitiatorID, v))
}

// InitiatorIDNEQ applies the NEQ predicate on the "initiator_id" field.
func InitiatorIDNEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldInitiatorID, v))
}

// InitiatorIDIn applies the In predicate on the "initiator_id" field.
func InitiatorIDIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldInitiatorID, vs...))
}

// InitiatorIDNotIn applies the NotIn predicate on the "initiator_id" field.
func InitiatorIDNotIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldInitiatorID, vs...))
}

// InitiatorIDGT applies the GT predicate on the "initiator_id" field.
func InitiatorIDGT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldInitiatorID, v))
}

// InitiatorIDGTE applies the GTE predicate on the "initiator_id" field.
func InitiatorIDGTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldInitiatorID, v))
}

// InitiatorIDLT applies the LT predicate on the "initiator_id" field.
func InitiatorIDLT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldInitiatorID, v))
}

// InitiatorIDLTE applies the LTE predicate on the "initiator_id" field.
func InitiatorIDLTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldInitiatorID, v))
}

// FlowVersionIDEQ applies the EQ predicate on the "flow_version_id" field.
func FlowVersionIDEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldFlowVersionID, v))
}

// FlowVersionIDNEQ applies the NEQ predicate on the "flow_version_id" field.
func FlowVersionIDNEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldFlowVersionID, v))
}

// FlowVersionIDIn applies the In predicate on the "flow_version_id" field.
func FlowVersionIDIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDNotIn applies the NotIn predicate on the "flow_version_id" field.
func FlowVersionIDNotIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDGT applies the GT predicate on the "flow_version_id" field.
func FlowVersionIDGT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldFlowVersionID, v))
}

// FlowVersionIDGTE applies the GTE predicate on the "flow_version_id" field.
func FlowVersionIDGTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldFlowVersionID, v))
}

// FlowVersionIDLT applies the LT predicate on the "flow_version_id" field.
func FlowVersionIDLT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldFlowVersionID, v))
}

// FlowVersionIDLTE applies the LTE predicate on the "flow_version_id" field.
func FlowVersionIDLTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldFlowVersionID, v))
}

// ContextKindEQ applies the EQ predicate on the "context_kind" field.
func ContextKindEQ(v ContextKind) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldContextKind, v))
}

// ContextKindNEQ applies the NEQ predicate on the "context_kind" field.
func ContextKindNEQ(v ContextKind) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldContextKind, v))
}

// ContextKindIn applies the In predicate on the "context_kind" field.
func ContextKindIn(vs ...ContextKind) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldContextKind, vs...))
}

// ContextKindNotIn applies the NotIn predicate on the "context_kind" field.
func ContextKindNotIn(vs ...ContextKind) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldContextKind, vs...))
}

// PatientOrderIDEQ applies the EQ predicate on the "patient_order_id" field.
func PatientOrderIDEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldPatientOrderID, v))
}

// PatientOrderIDNEQ applies the NEQ predicate on the "patient_order_id" field.
func PatientOrderIDNEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldPatientOrderID, v))
}

// PatientOrderIDIn applies the In predicate on the "patient_order_id" field.
func PatientOrderIDIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldPatientOrderID, vs...))
}

// PatientOrderIDNotIn applies the NotIn predicate on the "patient_order_id" field.
func PatientOrderIDNotIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldPatientOrderID, vs...))
}

// PatientOrderIDGT applies the GT predicate on the "patient_order_id" field.
func PatientOrderIDGT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldPatientOrderID, v))
}

// PatientOrderIDGTE applies the GTE predicate on the "patient_order_id" field.
func PatientOrderIDGTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldPatientOrderID, v))
}

// PatientOrderIDLT applies the LT predicate on the "patient_order_id" field.
func PatientOrderIDLT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldPatientOrderID, v))
}

// PatientOrderIDLTE applies the LTE predicate on the "patient_order_id" field.
func PatientOrderIDLTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldPatientOrderID, v))
}

// PatientOrderIDIsNil applies the IsNil predicate on the "patient_order_id" field.
func PatientOrderIDIsNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIsNull(FieldPatientOrderID))
}

// PatientOrderIDNotNil applies the NotNil predicate on the "patient_order_id" field.
func PatientOrderIDNotNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotNull(FieldPatientOrderID))
}

// GroupSessionIDEQ applies the EQ predicate on the "group_session_id" field.
func GroupSessionIDEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldGroupSessionID, v))
}

// GroupSessionIDNEQ applies the NEQ predicate on the "group_session_id" field.
func GroupSessionIDNEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldGroupSessionID, v))
}

// GroupSessionIDIn applies the In predicate on the "group_session_id" field.
func GroupSessionIDIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldGroupSessionID, vs...))
}

// GroupSessionIDNotIn applies the NotIn predicate on the "group_session_id" field.
func GroupSessionIDNotIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldGroupSessionID, vs...))
}

// GroupSessionIDGT applies the GT predicate on the "group_session_id" field.
func GroupSessionIDGT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldGroupSessionID, v))
}

// GroupSessionIDGTE applies the GTE predicate on the "group_session_id" field.
func GroupSessionIDGTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldGroupSessionID, v))
}

// GroupSessionIDLT applies the LT predicate on the "group_session_id" field.
func GroupSessionIDLT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldGroupSessionID, v))
}

// GroupSessionIDLTE applies the LTE predicate on the "group_session_id" field.
func GroupSessionIDLTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldGroupSessionID, v))
}

// GroupSessionIDIsNil applies the IsNil predicate on the "group_session_id" field.
func GroupSessionIDIsNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIsNull(FieldGroupSessionID))
}

// GroupSessionIDNotNil applies the NotNil predicate on the "group_session_id" field.
func GroupSessionIDNotNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotNull(FieldGroupSessionID))
}

// CourseUnitIDEQ applies the EQ predicate on the "course_unit_id" field.
func CourseUnitIDEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldCourseUnitID, v))
}

// CourseUnitIDNEQ applies the NEQ predicate on the "course_unit_id" field.
func CourseUnitIDNEQ(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldCourseUnitID, v))
}

// CourseUnitIDIn applies the In predicate on the "course_unit_id" field.
func CourseUnitIDIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldCourseUnitID, vs...))
}

// CourseUnitIDNotIn applies the NotIn predicate on the "course_unit_id" field.
func CourseUnitIDNotIn(vs ...uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldCourseUnitID, vs...))
}

// CourseUnitIDGT applies the GT predicate on the "course_unit_id" field.
func CourseUnitIDGT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldCourseUnitID, v))
}

// CourseUnitIDGTE applies the GTE predicate on the "course_unit_id" field.
func CourseUnitIDGTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldCourseUnitID, v))
}

// CourseUnitIDLT applies the LT predicate on the "course_unit_id" field.
func CourseUnitIDLT(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldCourseUnitID, v))
}

// CourseUnitIDLTE applies the LTE predicate on the "course_unit_id" field.
func CourseUnitIDLTE(v uuid.UUID) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldCourseUnitID, v))
}

// CourseUnitIDIsNil applies the IsNil predicate on the "course_unit_id" field.
func CourseUnitIDIsNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIsNull(FieldCourseUnitID))
}

// CourseUnitIDNotNil applies the NotNil predicate on the "course_unit_id" field.
func CourseUnitIDNotNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotNull(FieldCourseUnitID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldStatus, vs...))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldContainsFold(FieldSkipReason, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotNull(FieldMetadata))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotNull(FieldEvidence))
}

// DestinationIsNil applies the IsNil predicate on the "destination" field.
func DestinationIsNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIsNull(FieldDestination))
}

// DestinationNotNil applies the NotNil predicate on the "destination" field.
func DestinationNotNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotNull(FieldDestination))
}

// CrisisEQ applies the EQ predicate on the "crisis" field.
func CrisisEQ(v bool) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldCrisis, v))
}

// CrisisNEQ applies the NEQ predicate on the "crisis" field.
func CrisisNEQ(v bool) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldCrisis, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.FieldNotNull(FieldCompletedAt))
}

// HasInstruments applies the HasEdge predicate on the "instruments" edge.
func HasInstruments() predicate.ScreeningSession {
	return predicate.ScreeningSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InstrumentsTable, InstrumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstrumentsWith applies the HasEdge predicate on the "instruments" edge with a given conditions (other predicates).
func HasInstrumentsWith(preds ...predicate.SessionInstrument) predicate.ScreeningSession {
	return predicate.ScreeningSession(func(s *sql.Selector) {
		step := newInstrumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScreeningSession) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScreeningSession) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScreeningSession) predicate.ScreeningSession {
	return predicate.ScreeningSession(sql.NotPredicates(p))
}
