// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/screeningsession"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// ScreeningSessionCreate is the builder for creating a ScreeningSession entity.
type ScreeningSessionCreate struct {
	config
	mutation *ScreeningSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScreeningSessionCreate) SetCreatedAt(v time.Time) *ScreeningSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableCreatedAt(v *time.Time) *ScreeningSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScreeningSessionCreate) SetUpdatedAt(v time.Time) *ScreeningSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableUpdatedAt(v *time.Time) *ScreeningSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *ScreeningSessionCreate) SetSubjectID(v uuid.UUID) *ScreeningSessionCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetInitiatorID sets the "initiator_id" field.
func (_c *ScreeningSessionCreate) SetInitiatorID(v uuid.UUID) *ScreeningSessionCreate {
	_c.mutation.SetInitiatorID(v)
	return _c
}

// SetFlowVersionID sets the "flow_version_id" field.
func (_c *ScreeningSessionCreate) SetFlowVersionID(v uuid.UUID) *ScreeningSessionCreate {
	_c.mutation.SetFlowVersionID(v)
	return _c
}

// SetContextKind sets the "context_kind" field.
func (_c *ScreeningSessionCreate) SetContextKind(v screeningsession.ContextKind) *ScreeningSessionCreate {
	_c.mutation.SetContextKind(v)
	return _c
}

// SetNillableContextKind sets the "context_kind" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableContextKind(v *screeningsession.ContextKind) *ScreeningSessionCreate {
	if v != nil {
		_c.SetContextKind(*v)
	}
	return _c
}

// SetPatientOrderID sets the "patient_order_id" field.
func (_c *ScreeningSessionCreate) SetPatientOrderID(v uuid.UUID) *ScreeningSessionCreate {
	_c.mutation.SetPatientOrderID(v)
	return _c
}

// SetNillablePatientOrderID sets the "patient_order_id" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillablePatientOrderID(v *uuid.UUID) *ScreeningSessionCreate {
	if v != nil {
		_c.SetPatientOrderID(*v)
	}
	return _c
}

// SetGroupSessionID sets the "group_session_id" field.
func (_c *ScreeningSessionCreate) SetGroupSessionID(v uuid.UUID) *ScreeningSessionCreate {
	_c.mutation.SetGroupSessionID(v)
	return _c
}

// SetNillableGroupSessionID sets the "group_session_id" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableGroupSessionID(v *uuid.UUID) *ScreeningSessionCreate {
	if v != nil {
		_c.SetGroupSessionID(*v)
	}
	return _c
}

// SetCourseUnitID sets the "course_unit_id" field.
func (_c *ScreeningSessionCreate) SetCourseUnitID(v uuid.UUID) *ScreeningSessionCreate {
	_c.mutation.SetCourseUnitID(v)
	return _c
}

// SetNillableCourseUnitID sets the "course_unit_id" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableCourseUnitID(v *uuid.UUID) *ScreeningSessionCreate {
	if v != nil {
		_c.SetCourseUnitID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScreeningSessionCreate) SetStatus(v screeningsession.Status) *ScreeningSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableStatus(v *screeningsession.Status) *ScreeningSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *ScreeningSessionCreate) SetSkipReason(v string) *ScreeningSessionCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableSkipReason(v *string) *ScreeningSessionCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ScreeningSessionCreate) SetMetadata(v map[string]interface{}) *ScreeningSessionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *ScreeningSessionCreate) SetEvidence(v *screening.EvidenceScores) *ScreeningSessionCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetDestination sets the "destination" field.
func (_c *ScreeningSessionCreate) SetDestination(v *screening.Destination) *ScreeningSessionCreate {
	_c.mutation.SetDestination(v)
	return _c
}

// SetCrisis sets the "crisis" field.
func (_c *ScreeningSessionCreate) SetCrisis(v bool) *ScreeningSessionCreate {
	_c.mutation.SetCrisis(v)
	return _c
}

// SetNillableCrisis sets the "crisis" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableCrisis(v *bool) *ScreeningSessionCreate {
	if v != nil {
		_c.SetCrisis(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ScreeningSessionCreate) SetCompletedAt(v time.Time) *ScreeningSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableCompletedAt(v *time.Time) *ScreeningSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScreeningSessionCreate) SetID(v uuid.UUID) *ScreeningSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScreeningSessionCreate) SetNillableID(v *uuid.UUID) *ScreeningSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInstrumentIDs adds the "instruments" edge to the SessionInstrument entity by IDs.
func (_c *ScreeningSessionCreate) AddInstrumentIDs(ids ...uuid.UUID) *ScreeningSessionCreate {
	_c.mutation.AddInstrumentIDs(ids...)
	return _c
}

// AddInstruments adds the "instruments" edges to the SessionInstrument entity.
func (_c *ScreeningSessionCreate) AddInstruments(v ...*SessionInstrument) *ScreeningSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInstrumentIDs(ids...)
}

// Mutation returns the ScreeningSessionMutation object of the builder.
func (_c *ScreeningSessionCreate) Mutation() *ScreeningSessionMutation {
	return _c.mutation
}

// Save creates the ScreeningSession in the database.
func (_c *ScreeningSessionCreate) Save(ctx context.Context) (*ScreeningSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScreeningSessionCreate) SaveX(ctx context.Context) *ScreeningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreeningSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreeningSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScreeningSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := screeningsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := screeningsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ContextKind(); !ok {
		v := screeningsession.DefaultContextKind
		_c.mutation.SetContextKind(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := screeningsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Crisis(); !ok {
		v := screeningsession.DefaultCrisis
		_c.mutation.SetCrisis(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := screeningsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScreeningSessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ScreeningSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ScreeningSession.updated_at"`)}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`repo: missing required field "ScreeningSession.subject_id"`)}
	}
	if _, ok := _c.mutation.InitiatorID(); !ok {
		return &ValidationError{Name: "initiator_id", err: errors.New(`repo: missing required field "ScreeningSession.initiator_id"`)}
	}
	if _, ok := _c.mutation.FlowVersionID(); !ok {
		return &ValidationError{Name: "flow_version_id", err: errors.New(`repo: missing required field "ScreeningSession.flow_version_id"`)}
	}
	if _, ok := _c.mutation.ContextKind(); !ok {
		return &ValidationError{Name: "context_kind", err: errors.New(`repo: missing required field "ScreeningSession.context_kind"`)}
	}
	if v, ok := _c.mutation.ContextKind(); ok {
		if err := screeningsession.ContextKindValidator(v); err != nil {
			return &ValidationError{Name: "context_kind", err: fmt.Errorf(`repo: validator failed for field "ScreeningSession.context_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "ScreeningSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := screeningsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ScreeningSession.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SkipReason(); ok {
		if err := screeningsession.SkipReasonValidator(v); err != nil {
			return &ValidationError{Name: "skip_reason", err: fmt.Errorf(`repo: validator failed for field "ScreeningSession.skip_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Crisis(); !ok {
		return &ValidationError{Name: "crisis", err: errors.New(`repo: missing required field "ScreeningSession.crisis"`)}
	}
	return nil
}

func (_c *ScreeningSessionCreate) sqlSave(ctx context.Context) (*ScreeningSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScreeningSessionCreate) createSpec() (*ScreeningSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ScreeningSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(screeningsession.Table, sqlgraph.NewFieldSpec(screeningsession.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(screeningsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(screeningsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(screeningsession.FieldSubjectID, field.TypeUUID, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.InitiatorID(); ok {
		_spec.SetField(screeningsession.FieldInitiatorID, field.TypeUUID, value)
		_node.InitiatorID = value
	}
	if value, ok := _c.mutation.FlowVersionID(); ok {
		_spec.SetField(screeningsession.FieldFlowVersionID, field.TypeUUID, value)
		_node.FlowVersionID = value
	}
	if value, ok := _c.mutation.ContextKind(); ok {
		_spec.SetField(screeningsession.FieldContextKind, field.TypeEnum, value)
		_node.ContextKind = value
	}
	if value, ok := _c.mutation.PatientOrderID(); ok {
		_spec.SetField(screeningsession.FieldPatientOrderID, field.TypeUUID, value)
		_node.PatientOrderID = &value
	}
	if value, ok := _c.mutation.GroupSessionID(); ok {
		_spec.SetField(screeningsession.FieldGroupSessionID, field.TypeUUID, value)
		_node.GroupSessionID = &value
	}
	if value, ok := _c.mutation.CourseUnitID(); ok {
		_spec.SetField(screeningsession.FieldCourseUnitID, field.TypeUUID, value)
		_node.CourseUnitID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(screeningsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(screeningsession.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(screeningsession.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(screeningsession.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Destination(); ok {
		_spec.SetField(screeningsession.FieldDestination, field.TypeJSON, value)
		_node.Destination = value
	}
	if value, ok := _c.mutation.Crisis(); ok {
		_spec.SetField(screeningsession.FieldCrisis, field.TypeBool, value)
		_node.Crisis = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(screeningsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.InstrumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScreeningSession.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScreeningSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ScreeningSessionCreate) OnConflict(opts ...sql.ConflictOption) *ScreeningSessionUpsertOne {
	_c.conflict = opts
	return &ScreeningSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScreeningSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScreeningSessionCreate) OnConflictColumns(columns ...string) *ScreeningSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScreeningSessionUpsertOne{
		create: _c,
	}
}

type (
	// ScreeningSessionUpsertOne is the builder for "upsert"-ing
	//  one ScreeningSession node.
	ScreeningSessionUpsertOne struct {
		create *ScreeningSessionCreate
	}

	// ScreeningSessionUpsert is the "OnConflict" setter.
	ScreeningSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ScreeningSessionUpsert) SetUpdatedAt(v time.Time) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateUpdatedAt() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldUpdatedAt)
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *ScreeningSessionUpsert) SetSubjectID(v uuid.UUID) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldSubjectID, v)
	return u
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateSubjectID() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldSubjectID)
	return u
}

// SetInitiatorID sets the "initiator_id" field.
func (u *ScreeningSessionUpsert) SetInitiatorID(v uuid.UUID) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldInitiatorID, v)
	return u
}

// UpdateInitiatorID sets the "initiator_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateInitiatorID() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldInitiatorID)
	return u
}

// SetFlowVersionID sets the "flow_version_id" field.
func (u *ScreeningSessionUpsert) SetFlowVersionID(v uuid.UUID) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldFlowVersionID, v)
	return u
}

// UpdateFlowVersionID sets the "flow_version_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateFlowVersionID() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldFlowVersionID)
	return u
}

// SetContextKind sets the "context_kind" field.
func (u *ScreeningSessionUpsert) SetContextKind(v screeningsession.ContextKind) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldContextKind, v)
	return u
}

// UpdateContextKind sets the "context_kind" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateContextKind() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldContextKind)
	return u
}

// SetPatientOrderID sets the "patient_order_id" field.
func (u *ScreeningSessionUpsert) SetPatientOrderID(v uuid.UUID) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldPatientOrderID, v)
	return u
}

// UpdatePatientOrderID sets the "patient_order_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdatePatientOrderID() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldPatientOrderID)
	return u
}

// ClearPatientOrderID clears the value of the "patient_order_id" field.
func (u *ScreeningSessionUpsert) ClearPatientOrderID() *ScreeningSessionUpsert {
	u.SetNull(screeningsession.FieldPatientOrderID)
	return u
}

// SetGroupSessionID sets the "group_session_id" field.
func (u *ScreeningSessionUpsert) SetGroupSessionID(v uuid.UUID) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldGroupSessionID, v)
	return u
}

// UpdateGroupSessionID sets the "group_session_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateGroupSessionID() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldGroupSessionID)
	return u
}

// ClearGroupSessionID clears the value of the "group_session_id" field.
func (u *ScreeningSessionUpsert) ClearGroupSessionID() *ScreeningSessionUpsert {
	u.SetNull(screeningsession.FieldGroupSessionID)
	return u
}

// SetCourseUnitID sets the "course_unit_id" field.
func (u *ScreeningSessionUpsert) SetCourseUnitID(v uuid.UUID) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldCourseUnitID, v)
	return u
}

// UpdateCourseUnitID sets the "course_unit_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateCourseUnitID() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldCourseUnitID)
	return u
}

// ClearCourseUnitID clears the value of the "course_unit_id" field.
func (u *ScreeningSessionUpsert) ClearCourseUnitID() *ScreeningSessionUpsert {
	u.SetNull(screeningsession.FieldCourseUnitID)
	return u
}

// SetStatus sets the "status" field.
func (u *ScreeningSessionUpsert) SetStatus(v screeningsession.Status) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateStatus() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldStatus)
	return u
}

// SetSkipReason sets the "skip_reason" field.
func (u *ScreeningSessionUpsert) SetSkipReason(v string) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldSkipReason, v)
	return u
}

// UpdateSkipReason sets the "skip_reason" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateSkipReason() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldSkipReason)
	return u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (u *ScreeningSessionUpsert) ClearSkipReason() *ScreeningSessionUpsert {
	u.SetNull(screeningsession.FieldSkipReason)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *ScreeningSessionUpsert) SetMetadata(v map[string]interface{}) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateMetadata() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ScreeningSessionUpsert) ClearMetadata() *ScreeningSessionUpsert {
	u.SetNull(screeningsession.FieldMetadata)
	return u
}

// SetEvidence sets the "evidence" field.
func (u *ScreeningSessionUpsert) SetEvidence(v *screening.EvidenceScores) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldEvidence, v)
	return u
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateEvidence() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldEvidence)
	return u
}

// ClearEvidence clears the value of the "evidence" field.
func (u *ScreeningSessionUpsert) ClearEvidence() *ScreeningSessionUpsert {
	u.SetNull(screeningsession.FieldEvidence)
	return u
}

// SetDestination sets the "destination" field.
func (u *ScreeningSessionUpsert) SetDestination(v *screening.Destination) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldDestination, v)
	return u
}

// UpdateDestination sets the "destination" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateDestination() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldDestination)
	return u
}

// ClearDestination clears the value of the "destination" field.
func (u *ScreeningSessionUpsert) ClearDestination() *ScreeningSessionUpsert {
	u.SetNull(screeningsession.FieldDestination)
	return u
}

// SetCrisis sets the "crisis" field.
func (u *ScreeningSessionUpsert) SetCrisis(v bool) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldCrisis, v)
	return u
}

// UpdateCrisis sets the "crisis" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateCrisis() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldCrisis)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ScreeningSessionUpsert) SetCompletedAt(v time.Time) *ScreeningSessionUpsert {
	u.Set(screeningsession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ScreeningSessionUpsert) UpdateCompletedAt() *ScreeningSessionUpsert {
	u.SetExcluded(screeningsession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ScreeningSessionUpsert) ClearCompletedAt() *ScreeningSessionUpsert {
	u.SetNull(screeningsession.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScreeningSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(screeningsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScreeningSessionUpsertOne) UpdateNewValues() *ScreeningSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(screeningsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(screeningsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScreeningSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScreeningSessionUpsertOne) Ignore() *ScreeningSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScreeningSessionUpsertOne) DoNothing() *ScreeningSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScreeningSessionCreate.OnConflict
// documentation for more info.
func (u *ScreeningSessionUpsertOne) Update(set func(*ScreeningSessionUpsert)) *ScreeningSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScreeningSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScreeningSessionUpsertOne) SetUpdatedAt(v time.Time) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateUpdatedAt() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *ScreeningSessionUpsertOne) SetSubjectID(v uuid.UUID) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateSubjectID() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateSubjectID()
	})
}

// SetInitiatorID sets the "initiator_id" field.
func (u *ScreeningSessionUpsertOne) SetInitiatorID(v uuid.UUID) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetInitiatorID(v)
	})
}

// UpdateInitiatorID sets the "initiator_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateInitiatorID() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateInitiatorID()
	})
}

// SetFlowVersionID sets the "flow_version_id" field.
func (u *ScreeningSessionUpsertOne) SetFlowVersionID(v uuid.UUID) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetFlowVersionID(v)
	})
}

// UpdateFlowVersionID sets the "flow_version_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateFlowVersionID() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateFlowVersionID()
	})
}

// SetContextKind sets the "context_kind" field.
func (u *ScreeningSessionUpsertOne) SetContextKind(v screeningsession.ContextKind) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetContextKind(v)
	})
}

// UpdateContextKind sets the "context_kind" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateContextKind() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateContextKind()
	})
}

// SetPatientOrderID sets the "patient_order_id" field.
func (u *ScreeningSessionUpsertOne) SetPatientOrderID(v uuid.UUID) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetPatientOrderID(v)
	})
}

// UpdatePatientOrderID sets the "patient_order_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdatePatientOrderID() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdatePatientOrderID()
	})
}

// ClearPatientOrderID clears the value of the "patient_order_id" field.
func (u *ScreeningSessionUpsertOne) ClearPatientOrderID() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearPatientOrderID()
	})
}

// SetGroupSessionID sets the "group_session_id" field.
func (u *ScreeningSessionUpsertOne) SetGroupSessionID(v uuid.UUID) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetGroupSessionID(v)
	})
}

// UpdateGroupSessionID sets the "group_session_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateGroupSessionID() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateGroupSessionID()
	})
}

// ClearGroupSessionID clears the value of the "group_session_id" field.
func (u *ScreeningSessionUpsertOne) ClearGroupSessionID() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearGroupSessionID()
	})
}

// SetCourseUnitID sets the "course_unit_id" field.
func (u *ScreeningSessionUpsertOne) SetCourseUnitID(v uuid.UUID) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetCourseUnitID(v)
	})
}

// UpdateCourseUnitID sets the "course_unit_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateCourseUnitID() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateCourseUnitID()
	})
}

// ClearCourseUnitID clears the value of the "course_unit_id" field.
func (u *ScreeningSessionUpsertOne) ClearCourseUnitID() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearCourseUnitID()
	})
}

// SetStatus sets the "status" field.
func (u *ScreeningSessionUpsertOne) SetStatus(v screeningsession.Status) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateStatus() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetSkipReason sets the "skip_reason" field.
func (u *ScreeningSessionUpsertOne) SetSkipReason(v string) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetSkipReason(v)
	})
}

// UpdateSkipReason sets the "skip_reason" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateSkipReason() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateSkipReason()
	})
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (u *ScreeningSessionUpsertOne) ClearSkipReason() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearSkipReason()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ScreeningSessionUpsertOne) SetMetadata(v map[string]interface{}) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateMetadata() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ScreeningSessionUpsertOne) ClearMetadata() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearMetadata()
	})
}

// SetEvidence sets the "evidence" field.
func (u *ScreeningSessionUpsertOne) SetEvidence(v *screening.EvidenceScores) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateEvidence() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *ScreeningSessionUpsertOne) ClearEvidence() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearEvidence()
	})
}

// SetDestination sets the "destination" field.
func (u *ScreeningSessionUpsertOne) SetDestination(v *screening.Destination) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetDestination(v)
	})
}

// UpdateDestination sets the "destination" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateDestination() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateDestination()
	})
}

// ClearDestination clears the value of the "destination" field.
func (u *ScreeningSessionUpsertOne) ClearDestination() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearDestination()
	})
}

// SetCrisis sets the "crisis" field.
func (u *ScreeningSessionUpsertOne) SetCrisis(v bool) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetCrisis(v)
	})
}

// UpdateCrisis sets the "crisis" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateCrisis() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateCrisis()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ScreeningSessionUpsertOne) SetCompletedAt(v time.Time) *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ScreeningSessionUpsertOne) UpdateCompletedAt() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ScreeningSessionUpsertOne) ClearCompletedAt() *ScreeningSessionUpsertOne {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ScreeningSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ScreeningSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScreeningSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScreeningSessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ScreeningSessionUpsertOne.ID is not supported by MySQL driver. Use ScreeningSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScreeningSessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScreeningSessionCreateBulk is the builder for creating many ScreeningSession entities in bulk.
type ScreeningSessionCreateBulk struct {
	config
	err      error
	builders []*ScreeningSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the ScreeningSession entities in the database.
func (_c *ScreeningSessionCreateBulk) Save(ctx context.Context) ([]*ScreeningSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScreeningSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScreeningSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScreeningSessionCreateBulk) SaveX(ctx context.Context) []*ScreeningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreeningSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreeningSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScreeningSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScreeningSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ScreeningSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScreeningSessionUpsertBulk {
	_c.conflict = opts
	return &ScreeningSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScreeningSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScreeningSessionCreateBulk) OnConflictColumns(columns ...string) *ScreeningSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScreeningSessionUpsertBulk{
		create: _c,
	}
}

// ScreeningSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of ScreeningSession nodes.
type ScreeningSessionUpsertBulk struct {
	create *ScreeningSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScreeningSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(screeningsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScreeningSessionUpsertBulk) UpdateNewValues() *ScreeningSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(screeningsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(screeningsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScreeningSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScreeningSessionUpsertBulk) Ignore() *ScreeningSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScreeningSessionUpsertBulk) DoNothing() *ScreeningSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScreeningSessionCreateBulk.OnConflict
// documentation for more info.
func (u *ScreeningSessionUpsertBulk) Update(set func(*ScreeningSessionUpsert)) *ScreeningSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScreeningSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScreeningSessionUpsertBulk) SetUpdatedAt(v time.Time) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateUpdatedAt() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *ScreeningSessionUpsertBulk) SetSubjectID(v uuid.UUID) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateSubjectID() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateSubjectID()
	})
}

// SetInitiatorID sets the "initiator_id" field.
func (u *ScreeningSessionUpsertBulk) SetInitiatorID(v uuid.UUID) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetInitiatorID(v)
	})
}

// UpdateInitiatorID sets the "initiator_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateInitiatorID() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateInitiatorID()
	})
}

// SetFlowVersionID sets the "flow_version_id" field.
func (u *ScreeningSessionUpsertBulk) SetFlowVersionID(v uuid.UUID) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetFlowVersionID(v)
	})
}

// UpdateFlowVersionID sets the "flow_version_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateFlowVersionID() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateFlowVersionID()
	})
}

// SetContextKind sets the "context_kind" field.
func (u *ScreeningSessionUpsertBulk) SetContextKind(v screeningsession.ContextKind) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetContextKind(v)
	})
}

// UpdateContextKind sets the "context_kind" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateContextKind() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateContextKind()
	})
}

// SetPatientOrderID sets the "patient_order_id" field.
func (u *ScreeningSessionUpsertBulk) SetPatientOrderID(v uuid.UUID) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetPatientOrderID(v)
	})
}

// UpdatePatientOrderID sets the "patient_order_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdatePatientOrderID() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdatePatientOrderID()
	})
}

// ClearPatientOrderID clears the value of the "patient_order_id" field.
func (u *ScreeningSessionUpsertBulk) ClearPatientOrderID() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearPatientOrderID()
	})
}

// SetGroupSessionID sets the "group_session_id" field.
func (u *ScreeningSessionUpsertBulk) SetGroupSessionID(v uuid.UUID) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetGroupSessionID(v)
	})
}

// UpdateGroupSessionID sets the "group_session_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateGroupSessionID() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateGroupSessionID()
	})
}

// ClearGroupSessionID clears the value of the "group_session_id" field.
func (u *ScreeningSessionUpsertBulk) ClearGroupSessionID() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearGroupSessionID()
	})
}

// SetCourseUnitID sets the "course_unit_id" field.
func (u *ScreeningSessionUpsertBulk) SetCourseUnitID(v uuid.UUID) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetCourseUnitID(v)
	})
}

// UpdateCourseUnitID sets the "course_unit_id" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateCourseUnitID() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateCourseUnitID()
	})
}

// ClearCourseUnitID clears the value of the "course_unit_id" field.
func (u *ScreeningSessionUpsertBulk) ClearCourseUnitID() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearCourseUnitID()
	})
}

// SetStatus sets the "status" field.
func (u *ScreeningSessionUpsertBulk) SetStatus(v screeningsession.Status) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateStatus() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetSkipReason sets the "skip_reason" field.
func (u *ScreeningSessionUpsertBulk) SetSkipReason(v string) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetSkipReason(v)
	})
}

// UpdateSkipReason sets the "skip_reason" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateSkipReason() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateSkipReason()
	})
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (u *ScreeningSessionUpsertBulk) ClearSkipReason() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearSkipReason()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ScreeningSessionUpsertBulk) SetMetadata(v map[string]interface{}) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateMetadata() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ScreeningSessionUpsertBulk) ClearMetadata() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearMetadata()
	})
}

// SetEvidence sets the "evidence" field.
func (u *ScreeningSessionUpsertBulk) SetEvidence(v *screening.EvidenceScores) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateEvidence() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *ScreeningSessionUpsertBulk) ClearEvidence() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearEvidence()
	})
}

// SetDestination sets the "destination" field.
func (u *ScreeningSessionUpsertBulk) SetDestination(v *screening.Destination) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetDestination(v)
	})
}

// UpdateDestination sets the "destination" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateDestination() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateDestination()
	})
}

// ClearDestination clears the value of the "destination" field.
func (u *ScreeningSessionUpsertBulk) ClearDestination() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearDestination()
	})
}

// SetCrisis sets the "crisis" field.
func (u *ScreeningSessionUpsertBulk) SetCrisis(v bool) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetCrisis(v)
	})
}

// UpdateCrisis sets the "crisis" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateCrisis() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateCrisis()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ScreeningSessionUpsertBulk) SetCompletedAt(v time.Time) *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ScreeningSessionUpsertBulk) UpdateCompletedAt() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ScreeningSessionUpsertBulk) ClearCompletedAt() *ScreeningSessionUpsertBulk {
	return u.Update(func(s *ScreeningSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ScreeningSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ScreeningSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ScreeningSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScreeningSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
