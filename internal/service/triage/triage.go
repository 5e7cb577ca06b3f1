// Package triage records care-coordination outcomes for patient orders.
// Triage groups are append-only: every system computation and every
// clinician override inserts a new group, and the most recently created
// group is the order's current triage. History is never rewritten.
package triage

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/marlowhealth/compass_backend/internal/repo"
	entinstr "github.com/marlowhealth/compass_backend/internal/repo/instrument"
	enttriage "github.com/marlowhealth/compass_backend/internal/repo/triage"
	entgroup "github.com/marlowhealth/compass_backend/internal/repo/triagegroup"
	"github.com/marlowhealth/compass_backend/internal/screening"
	"github.com/marlowhealth/compass_backend/pkg/lock"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type EntryInput struct {
	FocusArea    string
	CareCategory screening.CareCategory
	Reason       *string
}

type OverrideRequest struct {
	PatientOrderID uuid.UUID
	CareCategory   screening.CareCategory
	SafetyPlanning screening.SafetyPlanningStatus
	Reason         string
	Entries        []EntryInput
	CreatedBy      uuid.UUID
}

// Group bundles a triage group row with its per-focus-area entries.
type Group struct {
	Group   *repo.TriageGroup
	Entries []*repo.Triage
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// RecordComputed appends a system-computed triage group derived from a
	// completed session's evidence.
	RecordComputed(ctx context.Context, patientOrderID, sessionID uuid.UUID, evidence screening.EvidenceScores, createdBy uuid.UUID) (*Group, error)

	// RecordOverride appends a clinician override group.
	RecordOverride(ctx context.Context, req OverrideRequest) (*Group, error)

	// Current returns the most recently created group for the order.
	Current(ctx context.Context, patientOrderID uuid.UUID) (*Group, error)

	// History returns all groups for the order, newest first.
	History(ctx context.Context, patientOrderID uuid.UUID) ([]*Group, error)

	// HistoryBySession returns the groups a screening session produced,
	// newest first. Only system-computed groups carry a session id, so the
	// result never contains overrides.
	HistoryBySession(ctx context.Context, sessionID uuid.UUID) ([]*Group, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

// Locker serialises writers on one patient order across replicas. Satisfied
// by *lock.Locker.
type Locker interface {
	Acquire(ctx context.Context, name string) (func(), error)
}

type service struct {
	db     *repo.Client
	locker Locker
	nc     *nats.Conn
}

func New(db *repo.Client, locker Locker, nc *nats.Conn) Service {
	return &service{db: db, locker: locker, nc: nc}
}

func (s *service) RecordComputed(ctx context.Context, patientOrderID, sessionID uuid.UUID, evidence screening.EvidenceScores, createdBy uuid.UUID) (*Group, error) {
	category, safety := screening.ComputedTriage(evidence)

	entries := make([]EntryInput, 0, len(evidence.Recommendations))
	for _, rec := range evidence.Recommendations {
		focusArea, err := s.focusAreaForSlug(ctx, rec.Instrument)
		if err != nil {
			return nil, err
		}
		reason := fmt.Sprintf("%s score %d maps to %s", rec.Instrument, rec.Score, rec.Level)
		entries = append(entries, EntryInput{
			FocusArea:    focusArea,
			CareCategory: screening.CareCategoryForLevel(rec.Level),
			Reason:       &reason,
		})
	}

	return s.appendGroup(ctx, appendGroupParams{
		patientOrderID: patientOrderID,
		sessionID:      &sessionID,
		source:         screening.SourceSystemComputed,
		careCategory:   category,
		safetyPlanning: safety,
		entries:        entries,
		createdBy:      createdBy,
	})
}

func (s *service) RecordOverride(ctx context.Context, req OverrideRequest) (*Group, error) {
	if req.Reason == "" {
		return nil, ErrOverrideNeedsReason
	}
	if !req.CareCategory.Valid() {
		return nil, ErrInvalidCareCategory
	}
	for _, e := range req.Entries {
		if !e.CareCategory.Valid() {
			return nil, ErrInvalidCareCategory
		}
	}

	safety := req.SafetyPlanning
	if !safety.Valid() {
		safety = screening.SafetyNotIndicated
	}

	return s.appendGroup(ctx, appendGroupParams{
		patientOrderID: req.PatientOrderID,
		source:         screening.SourceClinicianOverride,
		careCategory:   req.CareCategory,
		safetyPlanning: safety,
		overrideReason: &req.Reason,
		entries:        req.Entries,
		createdBy:      req.CreatedBy,
	})
}

func (s *service) Current(ctx context.Context, patientOrderID uuid.UUID) (*Group, error) {
	g, err := s.db.TriageGroup.Query().
		Where(entgroup.PatientOrderID(patientOrderID)).
		Order(entgroup.ByID(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTriageNotFound
		}
		return nil, fmt.Errorf("current triage: %w", err)
	}
	return s.withEntries(ctx, g)
}

func (s *service) History(ctx context.Context, patientOrderID uuid.UUID) ([]*Group, error) {
	groups, err := s.db.TriageGroup.Query().
		Where(entgroup.PatientOrderID(patientOrderID)).
		Order(entgroup.ByID(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("triage history: %w", err)
	}

	out := make([]*Group, 0, len(groups))
	for _, g := range groups {
		full, err := s.withEntries(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, full)
	}
	return out, nil
}

func (s *service) HistoryBySession(ctx context.Context, sessionID uuid.UUID) ([]*Group, error) {
	groups, err := s.db.TriageGroup.Query().
		Where(entgroup.SessionID(sessionID)).
		Order(entgroup.ByID(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("triage history for session: %w", err)
	}

	out := make([]*Group, 0, len(groups))
	for _, g := range groups {
		full, err := s.withEntries(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, full)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

type appendGroupParams struct {
	patientOrderID uuid.UUID
	sessionID      *uuid.UUID
	source         screening.TriageSource
	careCategory   screening.CareCategory
	safetyPlanning screening.SafetyPlanningStatus
	overrideReason *string
	entries        []EntryInput
	createdBy      uuid.UUID
}

func (s *service) appendGroup(ctx context.Context, p appendGroupParams) (_ *Group, err error) {
	release, err := s.locker.Acquire(ctx, "patient_order:"+p.patientOrderID.String())
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, ErrOrderLocked
		}
		return nil, err
	}
	defer release()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	g, err := tx.TriageGroup.Create().
		SetPatientOrderID(p.patientOrderID).
		SetNillableSessionID(p.sessionID).
		SetSource(entgroup.Source(p.source)).
		SetCareCategory(entgroup.CareCategory(p.careCategory)).
		SetSafetyPlanningStatus(entgroup.SafetyPlanningStatus(p.safetyPlanning)).
		SetNillableOverrideReason(p.overrideReason).
		SetCreatedBy(p.createdBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create triage group: %w", err)
	}

	rows := make([]*repo.Triage, 0, len(p.entries))
	for _, e := range p.entries {
		row, err := tx.Triage.Create().
			SetTriageGroupID(g.ID).
			SetFocusArea(e.FocusArea).
			SetCareCategory(enttriage.CareCategory(e.CareCategory)).
			SetNillableReason(e.Reason).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create triage entry: %w", err)
		}
		rows = append(rows, row)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("compass.triage.updated.%s", p.patientOrderID.String())
		_ = s.nc.Publish(subject, []byte(g.ID.String()))
	}

	return &Group{Group: g, Entries: rows}, nil
}

func (s *service) withEntries(ctx context.Context, g *repo.TriageGroup) (*Group, error) {
	rows, err := s.db.Triage.Query().
		Where(enttriage.TriageGroupID(g.ID)).
		Order(enttriage.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("triage entries: %w", err)
	}
	return &Group{Group: g, Entries: rows}, nil
}

func (s *service) focusAreaForSlug(ctx context.Context, slug string) (string, error) {
	ins, err := s.db.Instrument.Query().
		Where(entinstr.Slug(slug)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Instrument retired after the session completed; keep the
			// slug so the entry is still attributable.
			return slug, nil
		}
		return "", fmt.Errorf("instrument for triage entry: %w", err)
	}
	return ins.FocusArea, nil
}
