// Package catalog manages the published screening content: instruments
// (question sets with scoring rules) and flows (ordered instrument
// programmes). Published versions are immutable; sessions pin the version
// ids they were created against, so a publish never changes in-flight work.
package catalog

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/marlowhealth/compass_backend/internal/repo"
	entflow "github.com/marlowhealth/compass_backend/internal/repo/flow"
	entflowver "github.com/marlowhealth/compass_backend/internal/repo/flowversion"
	entinstr "github.com/marlowhealth/compass_backend/internal/repo/instrument"
	entinstrver "github.com/marlowhealth/compass_backend/internal/repo/instrumentversion"
	"github.com/marlowhealth/compass_backend/internal/screening"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PublishInstrumentRequest struct {
	Slug        string
	Name        string
	Description *string
	FocusArea   string
	Content     screening.InstrumentContent
}

type FlowStepInput struct {
	InstrumentSlug string
	SkipIf         *screening.Predicate
}

type PublishFlowRequest struct {
	Slug        string
	Name        string
	Description *string
	Mandatory   bool
	Steps       []FlowStepInput
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	ListInstruments(ctx context.Context) ([]*repo.Instrument, error)
	GetInstrumentBySlug(ctx context.Context, slug string) (*repo.Instrument, *repo.InstrumentVersion, error)
	InstrumentVersionByID(ctx context.Context, id uuid.UUID) (*repo.InstrumentVersion, error)
	PublishInstrument(ctx context.Context, req PublishInstrumentRequest) (*repo.InstrumentVersion, error)

	ListFlows(ctx context.Context) ([]*repo.Flow, error)
	GetFlowBySlug(ctx context.Context, slug string) (*repo.Flow, *repo.FlowVersion, error)
	FlowVersionByID(ctx context.Context, id uuid.UUID) (*repo.FlowVersion, error)
	CurrentFlowVersion(ctx context.Context, slug string) (*repo.FlowVersion, error)
	PublishFlow(ctx context.Context, req PublishFlowRequest) (*repo.FlowVersion, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &service{db: db}
}

func (s *service) ListInstruments(ctx context.Context) ([]*repo.Instrument, error) {
	return s.db.Instrument.Query().
		Where(entinstr.IsActive(true)).
		Order(entinstr.BySlug()).
		All(ctx)
}

func (s *service) GetInstrumentBySlug(ctx context.Context, slug string) (*repo.Instrument, *repo.InstrumentVersion, error) {
	ins, err := s.db.Instrument.Query().
		Where(entinstr.Slug(slug), entinstr.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil, ErrInstrumentNotFound
		}
		return nil, nil, fmt.Errorf("get instrument: %w", err)
	}

	if ins.CurrentVersionID == nil {
		return ins, nil, ErrNoPublishedVersion
	}

	ver, err := s.InstrumentVersionByID(ctx, *ins.CurrentVersionID)
	if err != nil {
		return nil, nil, err
	}
	return ins, ver, nil
}

func (s *service) InstrumentVersionByID(ctx context.Context, id uuid.UUID) (*repo.InstrumentVersion, error) {
	ver, err := s.db.InstrumentVersion.Query().
		Where(entinstrver.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("get instrument version: %w", err)
	}
	return ver, nil
}

// PublishInstrument creates the instrument on first publish, then appends a
// new immutable version and moves the current-version pointer. Content is
// validated here so scoring can assume a well-formed definition.
func (s *service) PublishInstrument(ctx context.Context, req PublishInstrumentRequest) (_ *repo.InstrumentVersion, err error) {
	if err := req.Content.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	ins, err := tx.Instrument.Query().
		Where(entinstr.Slug(req.Slug)).
		Only(ctx)
	if repo.IsNotFound(err) {
		ins, err = tx.Instrument.Create().
			SetSlug(req.Slug).
			SetName(req.Name).
			SetNillableDescription(req.Description).
			SetFocusArea(req.FocusArea).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert instrument: %w", err)
	}

	last, err := tx.InstrumentVersion.Query().
		Where(entinstrver.InstrumentID(ins.ID)).
		Order(entinstrver.ByVersion(sql.OrderDesc())).
		First(ctx)
	nextVersion := 1
	switch {
	case err == nil:
		nextVersion = last.Version + 1
	case !repo.IsNotFound(err):
		return nil, fmt.Errorf("last instrument version: %w", err)
	}

	ver, err := tx.InstrumentVersion.Create().
		SetInstrumentID(ins.ID).
		SetVersion(nextVersion).
		SetContent(req.Content).
		SetPublishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create instrument version: %w", err)
	}

	_, err = tx.Instrument.UpdateOneID(ins.ID).
		SetCurrentVersionID(ver.ID).
		SetName(req.Name).
		SetNillableDescription(req.Description).
		SetFocusArea(req.FocusArea).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update current version pointer: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return ver, nil
}

func (s *service) ListFlows(ctx context.Context) ([]*repo.Flow, error) {
	return s.db.Flow.Query().
		Where(entflow.IsActive(true)).
		Order(entflow.BySlug()).
		All(ctx)
}

func (s *service) GetFlowBySlug(ctx context.Context, slug string) (*repo.Flow, *repo.FlowVersion, error) {
	f, err := s.db.Flow.Query().
		Where(entflow.Slug(slug), entflow.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil, ErrFlowNotFound
		}
		return nil, nil, fmt.Errorf("get flow: %w", err)
	}

	if f.CurrentVersionID == nil {
		return f, nil, ErrNoPublishedVersion
	}

	ver, err := s.FlowVersionByID(ctx, *f.CurrentVersionID)
	if err != nil {
		return nil, nil, err
	}
	return f, ver, nil
}

func (s *service) FlowVersionByID(ctx context.Context, id uuid.UUID) (*repo.FlowVersion, error) {
	ver, err := s.db.FlowVersion.Query().
		Where(entflowver.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("get flow version: %w", err)
	}
	return ver, nil
}

func (s *service) CurrentFlowVersion(ctx context.Context, slug string) (*repo.FlowVersion, error) {
	_, ver, err := s.GetFlowBySlug(ctx, slug)
	return ver, err
}

// PublishFlow resolves each step's instrument slug to that instrument's
// current published version, so the flow version pins concrete content.
func (s *service) PublishFlow(ctx context.Context, req PublishFlowRequest) (_ *repo.FlowVersion, err error) {
	steps := make([]screening.FlowStep, 0, len(req.Steps))
	for _, in := range req.Steps {
		_, iv, err := s.GetInstrumentBySlug(ctx, in.InstrumentSlug)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", in.InstrumentSlug, err)
		}
		steps = append(steps, screening.FlowStep{
			Instrument:          in.InstrumentSlug,
			InstrumentVersionID: iv.ID,
			SkipIf:              in.SkipIf,
		})
	}
	if err := screening.ValidateSteps(steps); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	f, err := tx.Flow.Query().
		Where(entflow.Slug(req.Slug)).
		Only(ctx)
	if repo.IsNotFound(err) {
		f, err = tx.Flow.Create().
			SetSlug(req.Slug).
			SetName(req.Name).
			SetNillableDescription(req.Description).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert flow: %w", err)
	}

	last, err := tx.FlowVersion.Query().
		Where(entflowver.FlowID(f.ID)).
		Order(entflowver.ByVersion(sql.OrderDesc())).
		First(ctx)
	nextVersion := 1
	switch {
	case err == nil:
		nextVersion = last.Version + 1
	case !repo.IsNotFound(err):
		return nil, fmt.Errorf("last flow version: %w", err)
	}

	ver, err := tx.FlowVersion.Create().
		SetFlowID(f.ID).
		SetVersion(nextVersion).
		SetMandatory(req.Mandatory).
		SetSteps(steps).
		SetPublishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create flow version: %w", err)
	}

	_, err = tx.Flow.UpdateOneID(f.ID).
		SetCurrentVersionID(ver.ID).
		SetName(req.Name).
		SetNillableDescription(req.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update current version pointer: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return ver, nil
}
