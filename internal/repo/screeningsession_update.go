// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
	"github.com/marlowhealth/compass_backend/internal/repo/screeningsession"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// ScreeningSessionUpdate is the builder for updating ScreeningSession entities.
type ScreeningSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ScreeningSessionMutation
}

// Where appends a list predicates to the ScreeningSessionUpdate builder.
func (_u *ScreeningSessionUpdate) Where(ps ...predicate.ScreeningSession) *ScreeningSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScreeningSessionUpdate) SetUpdatedAt(v time.Time) *ScreeningSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ScreeningSessionUpdate) SetSubjectID(v uuid.UUID) *ScreeningSessionUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableSubjectID(v *uuid.UUID) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetInitiatorID sets the "initiator_id" field.
func (_u *ScreeningSessionUpdate) SetInitiatorID(v uuid.UUID) *ScreeningSessionUpdate {
	_u.mutation.SetInitiatorID(v)
	return _u
}

// SetNillableInitiatorID sets the "initiator_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableInitiatorID(v *uuid.UUID) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetInitiatorID(*v)
	}
	return _u
}

// SetFlowVersionID sets the "flow_version_id" field.
func (_u *ScreeningSessionUpdate) SetFlowVersionID(v uuid.UUID) *ScreeningSessionUpdate {
	_u.mutation.SetFlowVersionID(v)
	return _u
}

// SetNillableFlowVersionID sets the "flow_version_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableFlowVersionID(v *uuid.UUID) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetFlowVersionID(*v)
	}
	return _u
}

// SetContextKind sets the "context_kind" field.
func (_u *ScreeningSessionUpdate) SetContextKind(v screeningsession.ContextKind) *ScreeningSessionUpdate {
	_u.mutation.SetContextKind(v)
	return _u
}

// SetNillableContextKind sets the "context_kind" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableContextKind(v *screeningsession.ContextKind) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetContextKind(*v)
	}
	return _u
}

// SetPatientOrderID sets the "patient_order_id" field.
func (_u *ScreeningSessionUpdate) SetPatientOrderID(v uuid.UUID) *ScreeningSessionUpdate {
	_u.mutation.SetPatientOrderID(v)
	return _u
}

// SetNillablePatientOrderID sets the "patient_order_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillablePatientOrderID(v *uuid.UUID) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetPatientOrderID(*v)
	}
	return _u
}

// ClearPatientOrderID clears the value of the "patient_order_id" field.
func (_u *ScreeningSessionUpdate) ClearPatientOrderID() *ScreeningSessionUpdate {
	_u.mutation.ClearPatientOrderID()
	return _u
}

// SetGroupSessionID sets the "group_session_id" field.
func (_u *ScreeningSessionUpdate) SetGroupSessionID(v uuid.UUID) *ScreeningSessionUpdate {
	_u.mutation.SetGroupSessionID(v)
	return _u
}

// SetNillableGroupSessionID sets the "group_session_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableGroupSessionID(v *uuid.UUID) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetGroupSessionID(*v)
	}
	return _u
}

// ClearGroupSessionID clears the value of the "group_session_id" field.
func (_u *ScreeningSessionUpdate) ClearGroupSessionID() *ScreeningSessionUpdate {
	_u.mutation.ClearGroupSessionID()
	return _u
}

// SetCourseUnitID sets the "course_unit_id" field.
func (_u *ScreeningSessionUpdate) SetCourseUnitID(v uuid.UUID) *ScreeningSessionUpdate {
	_u.mutation.SetCourseUnitID(v)
	return _u
}

// SetNillableCourseUnitID sets the "course_unit_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableCourseUnitID(v *uuid.UUID) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetCourseUnitID(*v)
	}
	return _u
}

// ClearCourseUnitID clears the value of the "course_unit_id" field.
func (_u *ScreeningSessionUpdate) ClearCourseUnitID() *ScreeningSessionUpdate {
	_u.mutation.ClearCourseUnitID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScreeningSessionUpdate) SetStatus(v screeningsession.Status) *ScreeningSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableStatus(v *screeningsession.Status) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *ScreeningSessionUpdate) SetSkipReason(v string) *ScreeningSessionUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableSkipReason(v *string) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *ScreeningSessionUpdate) ClearSkipReason() *ScreeningSessionUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ScreeningSessionUpdate) SetMetadata(v map[string]interface{}) *ScreeningSessionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ScreeningSessionUpdate) ClearMetadata() *ScreeningSessionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ScreeningSessionUpdate) SetEvidence(v *screening.EvidenceScores) *ScreeningSessionUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ScreeningSessionUpdate) ClearEvidence() *ScreeningSessionUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetDestination sets the "destination" field.
func (_u *ScreeningSessionUpdate) SetDestination(v *screening.Destination) *ScreeningSessionUpdate {
	_u.mutation.SetDestination(v)
	return _u
}

// ClearDestination clears the value of the "destination" field.
func (_u *ScreeningSessionUpdate) ClearDestination() *ScreeningSessionUpdate {
	_u.mutation.ClearDestination()
	return _u
}

// SetCrisis sets the "crisis" field.
func (_u *ScreeningSessionUpdate) SetCrisis(v bool) *ScreeningSessionUpdate {
	_u.mutation.SetCrisis(v)
	return _u
}

// SetNillableCrisis sets the "crisis" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableCrisis(v *bool) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetCrisis(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScreeningSessionUpdate) SetCompletedAt(v time.Time) *ScreeningSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScreeningSessionUpdate) SetNillableCompletedAt(v *time.Time) *ScreeningSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScreeningSessionUpdate) ClearCompletedAt() *ScreeningSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddInstrumentIDs adds the "instruments" edge to the SessionInstrument entity by IDs.
func (_u *ScreeningSessionUpdate) AddInstrumentIDs(ids ...uuid.UUID) *ScreeningSessionUpdate {
	_u.mutation.AddInstrumentIDs(ids...)
	return _u
}

// AddInstruments adds the "instruments" edges to the SessionInstrument entity.
func (_u *ScreeningSessionUpdate) AddInstruments(v ...*SessionInstrument) *ScreeningSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstrumentIDs(ids...)
}

// Mutation returns the ScreeningSessionMutation object of the builder.
func (_u *ScreeningSessionUpdate) Mutation() *ScreeningSessionMutation {
	return _u.mutation
}

// ClearInstruments clears all "instruments" edges to the SessionInstrument entity.
func (_u *ScreeningSessionUpdate) ClearInstruments() *ScreeningSessionUpdate {
	_u.mutation.ClearInstruments()
	return _u
}

// RemoveInstrumentIDs removes the "instruments" edge to SessionInstrument entities by IDs.
func (_u *ScreeningSessionUpdate) RemoveInstrumentIDs(ids ...uuid.UUID) *ScreeningSessionUpdate {
	_u.mutation.RemoveInstrumentIDs(ids...)
	return _u
}

// RemoveInstruments removes "instruments" edges to SessionInstrument entities.
func (_u *ScreeningSessionUpdate) RemoveInstruments(v ...*SessionInstrument) *ScreeningSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstrumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScreeningSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreeningSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScreeningSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreeningSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScreeningSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := screeningsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreeningSessionUpdate) check() error {
	if v, ok := _u.mutation.ContextKind(); ok {
		if err := screeningsession.ContextKindValidator(v); err != nil {
			return &ValidationError{Name: "context_kind", err: fmt.Errorf(`repo: validator failed for field "ScreeningSession.context_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := screeningsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ScreeningSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkipReason(); ok {
		if err := screeningsession.SkipReasonValidator(v); err != nil {
			return &ValidationError{Name: "skip_reason", err: fmt.Errorf(`repo: validator failed for field "ScreeningSession.skip_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ScreeningSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screeningsession.Table, screeningsession.Columns, sqlgraph.NewFieldSpec(screeningsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(screeningsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(screeningsession.FieldSubjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.InitiatorID(); ok {
		_spec.SetField(screeningsession.FieldInitiatorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FlowVersionID(); ok {
		_spec.SetField(screeningsession.FieldFlowVersionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContextKind(); ok {
		_spec.SetField(screeningsession.FieldContextKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PatientOrderID(); ok {
		_spec.SetField(screeningsession.FieldPatientOrderID, field.TypeUUID, value)
	}
	if _u.mutation.PatientOrderIDCleared() {
		_spec.ClearField(screeningsession.FieldPatientOrderID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupSessionID(); ok {
		_spec.SetField(screeningsession.FieldGroupSessionID, field.TypeUUID, value)
	}
	if _u.mutation.GroupSessionIDCleared() {
		_spec.ClearField(screeningsession.FieldGroupSessionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CourseUnitID(); ok {
		_spec.SetField(screeningsession.FieldCourseUnitID, field.TypeUUID, value)
	}
	if _u.mutation.CourseUnitIDCleared() {
		_spec.ClearField(screeningsession.FieldCourseUnitID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(screeningsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(screeningsession.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(screeningsession.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(screeningsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(screeningsession.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(screeningsession.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(screeningsession.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(screeningsession.FieldDestination, field.TypeJSON, value)
	}
	if _u.mutation.DestinationCleared() {
		_spec.ClearField(screeningsession.FieldDestination, field.TypeJSON)
	}
	if value, ok := _u.mutation.Crisis(); ok {
		_spec.SetField(screeningsession.FieldCrisis, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(screeningsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(screeningsession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.InstrumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningsession.InstrumentsTable,
			Columns: []string{screeningsession.InstrumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstrumentsIDs(); len(nodes) > 0 && !_u.mutation.InstrumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningsession.InstrumentsTable,
			Columns: []string{screeningsession.InstrumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstrumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningsession.InstrumentsTable,
			Columns: []string{screeningsession.InstrumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screeningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScreeningSessionUpdateOne is the builder for updating a single ScreeningSession entity.
type ScreeningSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScreeningSessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScreeningSessionUpdateOne) SetUpdatedAt(v time.Time) *ScreeningSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ScreeningSessionUpdateOne) SetSubjectID(v uuid.UUID) *ScreeningSessionUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableSubjectID(v *uuid.UUID) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetInitiatorID sets the "initiator_id" field.
func (_u *ScreeningSessionUpdateOne) SetInitiatorID(v uuid.UUID) *ScreeningSessionUpdateOne {
	_u.mutation.SetInitiatorID(v)
	return _u
}

// SetNillableInitiatorID sets the "initiator_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableInitiatorID(v *uuid.UUID) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetInitiatorID(*v)
	}
	return _u
}

// SetFlowVersionID sets the "flow_version_id" field.
func (_u *ScreeningSessionUpdateOne) SetFlowVersionID(v uuid.UUID) *ScreeningSessionUpdateOne {
	_u.mutation.SetFlowVersionID(v)
	return _u
}

// SetNillableFlowVersionID sets the "flow_version_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableFlowVersionID(v *uuid.UUID) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetFlowVersionID(*v)
	}
	return _u
}

// SetContextKind sets the "context_kind" field.
func (_u *ScreeningSessionUpdateOne) SetContextKind(v screeningsession.ContextKind) *ScreeningSessionUpdateOne {
	_u.mutation.SetContextKind(v)
	return _u
}

// SetNillableContextKind sets the "context_kind" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableContextKind(v *screeningsession.ContextKind) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetContextKind(*v)
	}
	return _u
}

// SetPatientOrderID sets the "patient_order_id" field.
func (_u *ScreeningSessionUpdateOne) SetPatientOrderID(v uuid.UUID) *ScreeningSessionUpdateOne {
	_u.mutation.SetPatientOrderID(v)
	return _u
}

// SetNillablePatientOrderID sets the "patient_order_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillablePatientOrderID(v *uuid.UUID) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetPatientOrderID(*v)
	}
	return _u
}

// ClearPatientOrderID clears the value of the "patient_order_id" field.
func (_u *ScreeningSessionUpdateOne) ClearPatientOrderID() *ScreeningSessionUpdateOne {
	_u.mutation.ClearPatientOrderID()
	return _u
}

// SetGroupSessionID sets the "group_session_id" field.
func (_u *ScreeningSessionUpdateOne) SetGroupSessionID(v uuid.UUID) *ScreeningSessionUpdateOne {
	_u.mutation.SetGroupSessionID(v)
	return _u
}

// SetNillableGroupSessionID sets the "group_session_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableGroupSessionID(v *uuid.UUID) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetGroupSessionID(*v)
	}
	return _u
}

// ClearGroupSessionID clears the value of the "group_session_id" field.
func (_u *ScreeningSessionUpdateOne) ClearGroupSessionID() *ScreeningSessionUpdateOne {
	_u.mutation.ClearGroupSessionID()
	return _u
}

// SetCourseUnitID sets the "course_unit_id" field.
func (_u *ScreeningSessionUpdateOne) SetCourseUnitID(v uuid.UUID) *ScreeningSessionUpdateOne {
	_u.mutation.SetCourseUnitID(v)
	return _u
}

// SetNillableCourseUnitID sets the "course_unit_id" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableCourseUnitID(v *uuid.UUID) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetCourseUnitID(*v)
	}
	return _u
}

// ClearCourseUnitID clears the value of the "course_unit_id" field.
func (_u *ScreeningSessionUpdateOne) ClearCourseUnitID() *ScreeningSessionUpdateOne {
	_u.mutation.ClearCourseUnitID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScreeningSessionUpdateOne) SetStatus(v screeningsession.Status) *ScreeningSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableStatus(v *screeningsession.Status) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *ScreeningSessionUpdateOne) SetSkipReason(v string) *ScreeningSessionUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableSkipReason(v *string) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *ScreeningSessionUpdateOne) ClearSkipReason() *ScreeningSessionUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ScreeningSessionUpdateOne) SetMetadata(v map[string]interface{}) *ScreeningSessionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ScreeningSessionUpdateOne) ClearMetadata() *ScreeningSessionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ScreeningSessionUpdateOne) SetEvidence(v *screening.EvidenceScores) *ScreeningSessionUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ScreeningSessionUpdateOne) ClearEvidence() *ScreeningSessionUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetDestination sets the "destination" field.
func (_u *ScreeningSessionUpdateOne) SetDestination(v *screening.Destination) *ScreeningSessionUpdateOne {
	_u.mutation.SetDestination(v)
	return _u
}

// ClearDestination clears the value of the "destination" field.
func (_u *ScreeningSessionUpdateOne) ClearDestination() *ScreeningSessionUpdateOne {
	_u.mutation.ClearDestination()
	return _u
}

// SetCrisis sets the "crisis" field.
func (_u *ScreeningSessionUpdateOne) SetCrisis(v bool) *ScreeningSessionUpdateOne {
	_u.mutation.SetCrisis(v)
	return _u
}

// SetNillableCrisis sets the "crisis" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableCrisis(v *bool) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetCrisis(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScreeningSessionUpdateOne) SetCompletedAt(v time.Time) *ScreeningSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScreeningSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ScreeningSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScreeningSessionUpdateOne) ClearCompletedAt() *ScreeningSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddInstrumentIDs adds the "instruments" edge to the SessionInstrument entity by IDs.
func (_u *ScreeningSessionUpdateOne) AddInstrumentIDs(ids ...uuid.UUID) *ScreeningSessionUpdateOne {
	_u.mutation.AddInstrumentIDs(ids...)
	return _u
}

// AddInstruments adds the "instruments" edges to the SessionInstrument entity.
func (_u *ScreeningSessionUpdateOne) AddInstruments(v ...*SessionInstrument) *ScreeningSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstrumentIDs(ids...)
}

// Mutation returns the ScreeningSessionMutation object of the builder.
func (_u *ScreeningSessionUpdateOne) Mutation() *ScreeningSessionMutation {
	return _u.mutation
}

// ClearInstruments clears all "instruments" edges to the SessionInstrument entity.
func (_u *ScreeningSessionUpdateOne) ClearInstruments() *ScreeningSessionUpdateOne {
	_u.mutation.ClearInstruments()
	return _u
}

// RemoveInstrumentIDs removes the "instruments" edge to SessionInstrument entities by IDs.
func (_u *ScreeningSessionUpdateOne) RemoveInstrumentIDs(ids ...uuid.UUID) *ScreeningSessionUpdateOne {
	_u.mutation.RemoveInstrumentIDs(ids...)
	return _u
}

// RemoveInstruments removes "instruments" edges to SessionInstrument entities.
func (_u *ScreeningSessionUpdateOne) RemoveInstruments(v ...*SessionInstrument) *ScreeningSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstrumentIDs(ids...)
}

// Where appends a list predicates to the ScreeningSessionUpdate builder.
func (_u *ScreeningSessionUpdateOne) Where(ps ...predicate.ScreeningSession) *ScreeningSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScreeningSessionUpdateOne) Select(field string, fields ...string) *ScreeningSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScreeningSession entity.
func (_u *ScreeningSessionUpdateOne) Save(ctx context.Context) (*ScreeningSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreeningSessionUpdateOne) SaveX(ctx context.Context) *ScreeningSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScreeningSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreeningSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScreeningSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := screeningsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreeningSessionUpdateOne) check() error {
	if v, ok := _u.mutation.ContextKind(); ok {
		if err := screeningsession.ContextKindValidator(v); err != nil {
			return &ValidationError{Name: "context_kind", err: fmt.Errorf(`repo: validator failed for field "ScreeningSession.context_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := screeningsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ScreeningSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkipReason(); ok {
		if err := screeningsession.SkipReasonValidator(v); err != nil {
			return &ValidationError{Name: "skip_reason", err: fmt.Errorf(`repo: validator failed for field "ScreeningSession.skip_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ScreeningSessionUpdateOne) sqlSave(ctx context.Context) (_node *ScreeningSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screeningsession.Table, screeningsession.Columns, sqlgraph.NewFieldSpec(screeningsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ScreeningSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, screeningsession.FieldID)
		for _, f := range fields {
			if !screeningsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != screeningsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(screeningsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(screeningsession.FieldSubjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.InitiatorID(); ok {
		_spec.SetField(screeningsession.FieldInitiatorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FlowVersionID(); ok {
		_spec.SetField(screeningsession.FieldFlowVersionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContextKind(); ok {
		_spec.SetField(screeningsession.FieldContextKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PatientOrderID(); ok {
		_spec.SetField(screeningsession.FieldPatientOrderID, field.TypeUUID, value)
	}
	if _u.mutation.PatientOrderIDCleared() {
		_spec.ClearField(screeningsession.FieldPatientOrderID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupSessionID(); ok {
		_spec.SetField(screeningsession.FieldGroupSessionID, field.TypeUUID, value)
	}
	if _u.mutation.GroupSessionIDCleared() {
		_spec.ClearField(screeningsession.FieldGroupSessionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CourseUnitID(); ok {
		_spec.SetField(screeningsession.FieldCourseUnitID, field.TypeUUID, value)
	}
	if _u.mutation.CourseUnitIDCleared() {
		_spec.ClearField(screeningsession.FieldCourseUnitID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(screeningsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(screeningsession.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(screeningsession.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(screeningsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(screeningsession.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(screeningsession.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(screeningsession.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(screeningsession.FieldDestination, field.TypeJSON, value)
	}
	if _u.mutation.DestinationCleared() {
		_spec.ClearField(screeningsession.FieldDestination, field.TypeJSON)
	}
	if value, ok := _u.mutation.Crisis(); ok {
		_spec.SetField(screeningsession.FieldCrisis, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(screeningsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(screeningsession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.InstrumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningsession.InstrumentsTable,
			Columns: []string{screeningsession.InstrumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstrumentsIDs(); len(nodes) > 0 && !_u.mutation.InstrumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningsession.InstrumentsTable,
			Columns: []string{screeningsession.InstrumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstrumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningsession.InstrumentsTable,
			Columns: []string{screeningsession.InstrumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessioninstrument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScreeningSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screeningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
