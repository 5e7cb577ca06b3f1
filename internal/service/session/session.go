// Package session is the screening orchestrator. It owns the session
// lifecycle: materialising a flow version into per-instrument progress rows,
// serving the next applicable question, recording answers append-only,
// scoring finished instruments, and finalising the session into aggregated
// evidence plus a routed destination.
//
// All mutating operations hold the session's redis lock, so concurrent
// submissions against one session are serialised across replicas.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/marlowhealth/compass_backend/internal/repo"
	entanswer "github.com/marlowhealth/compass_backend/internal/repo/answer"
	entsession "github.com/marlowhealth/compass_backend/internal/repo/screeningsession"
	entsi "github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
	"github.com/marlowhealth/compass_backend/internal/screening"
	"github.com/marlowhealth/compass_backend/internal/service/catalog"
	"github.com/marlowhealth/compass_backend/internal/service/triage"
	"github.com/marlowhealth/compass_backend/pkg/lock"
	"github.com/marlowhealth/compass_backend/pkg/observability"
)

// Locker serialises mutating operations on one aggregate across replicas.
// Satisfied by *lock.Locker.
type Locker interface {
	Acquire(ctx context.Context, name string) (func(), error)
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	SubjectID   uuid.UUID
	InitiatorID uuid.UUID

	FlowSlug string

	ContextKind    screening.ContextKind
	PatientOrderID *uuid.UUID
	GroupSessionID *uuid.UUID
	CourseUnitID   *uuid.UUID

	Metadata map[string]any
}

type SubmitAnswerRequest struct {
	QuestionKey string
	Value       screening.AnswerValue
	RecordedBy  uuid.UUID
}

// NextQuestionResult is the polling contract: either a question to ask, a
// finished instrument waiting for Advance, or a session ready to Complete.
type NextQuestionResult struct {
	SessionID uuid.UUID

	// Done means no applicable instrument remains; call Complete.
	Done bool

	InstrumentSlug string
	Position       int

	// InstrumentComplete means the current instrument has no unanswered
	// applicable question; call Advance.
	InstrumentComplete bool

	Question *screening.Question
}

type AdvanceResult struct {
	SessionID uuid.UUID

	// Completed instrument's outcome.
	InstrumentSlug string
	Score          screening.Score
	Level          screening.RecommendationLevel

	// SessionComplete means every remaining step was consumed; call Complete.
	SessionComplete bool
	NextInstrument  string
}

type CompleteResult struct {
	Session     *repo.ScreeningSession
	Evidence    screening.EvidenceScores
	Destination screening.Destination

	// Replayed is set when the session was already completed and the
	// persisted result was returned instead of recomputing.
	Replayed bool
}

type SkipRequest struct {
	ForceSkip bool
	Reason    string
}

// InstrumentResult is one step of the result tree.
type InstrumentResult struct {
	InstrumentSlug string
	Position       int
	Completed      bool
	Skipped        bool
	Crisis         bool
	Score          *screening.Score
	Answers        map[string]screening.AnswerValue
}

// ResultTree is the full read model of a session: the session row with its
// persisted evidence and destination, plus per-instrument progress, scores
// and effective answers. Valid for sessions in any status.
type ResultTree struct {
	Session     *repo.ScreeningSession
	Instruments []InstrumentResult
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.ScreeningSession, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.ScreeningSession, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*repo.ScreeningSession, error)
	NextQuestion(ctx context.Context, id uuid.UUID) (*NextQuestionResult, error)
	SubmitAnswer(ctx context.Context, id uuid.UUID, req SubmitAnswerRequest) (*NextQuestionResult, error)
	Advance(ctx context.Context, id uuid.UUID) (*AdvanceResult, error)
	Complete(ctx context.Context, id uuid.UUID) (*CompleteResult, error)
	Skip(ctx context.Context, id uuid.UUID, req SkipRequest) (*repo.ScreeningSession, error)
	Result(ctx context.Context, id uuid.UUID) (*ResultTree, error)

	// ReconcileCrisis re-derives the crisis flag straight from the
	// persisted answers and force-sets it when the stored flag diverges.
	// Used by the post-completion reconciliation worker.
	ReconcileCrisis(ctx context.Context, id uuid.UUID) (bool, error)

	// SweepStale marks in-progress sessions idle beyond the cutoff as
	// skipped. Returns the number of sessions swept.
	SweepStale(ctx context.Context, idleCutoff time.Time) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db      *repo.Client
	catalog catalog.Service
	triage  triage.Service
	locker  Locker
	nc      *nats.Conn
	metrics *observability.ScreeningMetrics
	logger  *slog.Logger
}

func New(db *repo.Client, cat catalog.Service, tri triage.Service, locker Locker, nc *nats.Conn, metrics *observability.ScreeningMetrics, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{db: db, catalog: cat, triage: tri, locker: locker, nc: nc, metrics: metrics, logger: logger}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (_ *repo.ScreeningSession, err error) {
	if !req.ContextKind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidContext, req.ContextKind)
	}
	switch req.ContextKind {
	case screening.ContextPatientOrder:
		if req.PatientOrderID == nil {
			return nil, fmt.Errorf("%w: patient_order context requires patientOrderId", ErrInvalidContext)
		}
	case screening.ContextGroupSession:
		if req.GroupSessionID == nil {
			return nil, fmt.Errorf("%w: group_session context requires groupSessionId", ErrInvalidContext)
		}
	case screening.ContextCourseUnit:
		if req.CourseUnitID == nil {
			return nil, fmt.Errorf("%w: course_unit context requires courseUnitId", ErrInvalidContext)
		}
	}

	fv, err := s.catalog.CurrentFlowVersion(ctx, req.FlowSlug)
	if err != nil {
		return nil, err
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

	sess, err := tx.ScreeningSession.Create().
		SetSubjectID(req.SubjectID).
		SetInitiatorID(req.InitiatorID).
		SetFlowVersionID(fv.ID).
		SetContextKind(entsession.ContextKind(req.ContextKind)).
		SetNillablePatientOrderID(req.PatientOrderID).
		SetNillableGroupSessionID(req.GroupSessionID).
		SetNillableCourseUnitID(req.CourseUnitID).
		SetMetadata(req.Metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	for i, step := range fv.Steps {
		_, err = tx.SessionInstrument.Create().
			SetSessionID(sess.ID).
			SetInstrumentVersionID(step.InstrumentVersionID).
			SetPosition(i).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create session instrument %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return sess, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*repo.ScreeningSession, error) {
	sess, err := s.db.ScreeningSession.Query().
		Where(entsession.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *service) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*repo.ScreeningSession, error) {
	return s.db.ScreeningSession.Query().
		Where(entsession.SubjectID(subjectID)).
		Order(entsession.ByCreatedAt()).
		All(ctx)
}

func (s *service) NextQuestion(ctx context.Context, id uuid.UUID) (*NextQuestionResult, error) {
	st, err := s.loadState(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.session.Status == entsession.StatusCompleted {
		return &NextQuestionResult{SessionID: id, Done: true}, nil
	}
	if st.session.Status != entsession.StatusInProgress {
		return nil, ErrSessionNotActive
	}
	return s.nextFromState(st)
}

func (s *service) SubmitAnswer(ctx context.Context, id uuid.UUID, req SubmitAnswerRequest) (_ *NextQuestionResult, err error) {
	release, err := s.lockSession(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.loadState(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.session.Status != entsession.StatusInProgress {
		return nil, ErrSessionNotActive
	}

	cur, err := st.currentInstrument()
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, ErrSessionNotFinished
	}

	q := cur.content.QuestionByKey(req.QuestionKey)
	if q == nil {
		return nil, ErrUnknownQuestion
	}
	if q.AskIf != nil {
		ok, err := q.AskIf.Evaluate(screening.PredicateEnv{Answers: cur.answers})
		if err != nil {
			return nil, fmt.Errorf("evaluate question predicate: %w", err)
		}
		if !ok {
			return nil, ErrQuestionNotApplicable
		}
	}
	if err := screening.ValidateAnswer(*q, req.Value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}

	// Append-only: a resubmission inserts a new row and wins by id order.
	_, err = s.db.Answer.Create().
		SetSessionInstrumentID(cur.row.ID).
		SetQuestionKey(req.QuestionKey).
		SetFormat(entanswer.Format(req.Value.Format)).
		SetOptionKeys(req.Value.OptionKeys).
		SetNillableFreeText(nilIfEmpty(req.Value.Text)).
		SetRecordedBy(req.RecordedBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	cur.answers[req.QuestionKey] = req.Value
	return s.nextFromState(st)
}

// Advance finalises the current instrument: computes and persists its score,
// then consumes any following steps whose skip predicate now holds.
func (s *service) Advance(ctx context.Context, id uuid.UUID) (_ *AdvanceResult, err error) {
	release, err := s.lockSession(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.loadState(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.session.Status != entsession.StatusInProgress {
		return nil, ErrSessionNotActive
	}

	cur, err := st.currentInstrument()
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, ErrNothingToAdvance
	}

	next, err := screening.NextQuestion(cur.content, cur.answers)
	if err != nil {
		return nil, fmt.Errorf("next question: %w", err)
	}
	if next != nil {
		return nil, ErrInstrumentIncomplete
	}

	score, err := screening.ScoreInstrument(cur.content, cur.answers)
	if err != nil {
		return nil, fmt.Errorf("score %s: %w", cur.slug, err)
	}

	below := false
	if len(cur.content.Thresholds) > 0 {
		below = score.Overall < cur.content.Thresholds[0].MinScore
	}

	now := time.Now()
	_, err = s.db.SessionInstrument.UpdateOneID(cur.row.ID).
		SetCompleted(true).
		SetScore(&score).
		SetCrisis(score.Crisis).
		SetBelowScoringThreshold(below).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("finalise instrument: %w", err)
	}

	st.scores[cur.slug] = score
	if score.Crisis {
		st.crisis = true
	}
	st.markCompleted(cur.row.ID)

	res := &AdvanceResult{
		SessionID:      id,
		InstrumentSlug: cur.slug,
		Score:          score,
		Level:          cur.content.Thresholds.MapScore(score.Overall),
	}

	// Walk past steps whose skip predicate holds against the updated
	// scores, persisting the decisions the walk made.
	nxt, err := st.currentInstrument()
	if err != nil {
		return nil, err
	}
	if err := s.persistPendingSkips(ctx, st); err != nil {
		return nil, err
	}
	if nxt == nil {
		res.SessionComplete = true
	} else {
		res.NextInstrument = nxt.slug
	}
	return res, nil
}

// Complete aggregates evidence, routes the destination, records triage for
// patient orders, and freezes the session. Idempotent: completing an
// already-completed session replays the persisted result.
func (s *service) Complete(ctx context.Context, id uuid.UUID) (_ *CompleteResult, err error) {
	release, err := s.lockSession(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.loadState(ctx, id)
	if err != nil {
		return nil, err
	}

	if st.session.Status == entsession.StatusCompleted {
		if st.session.Evidence == nil || st.session.Destination == nil {
			return nil, fmt.Errorf("completed session %s has no persisted result", id)
		}
		return &CompleteResult{
			Session:     st.session,
			Evidence:    *st.session.Evidence,
			Destination: *st.session.Destination,
			Replayed:    true,
		}, nil
	}
	if st.session.Status != entsession.StatusInProgress {
		return nil, ErrSessionNotActive
	}

	cur, err := st.currentInstrument()
	if err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, ErrSessionNotFinished
	}
	if err := s.persistPendingSkips(ctx, st); err != nil {
		return nil, err
	}

	contributors := make([]screening.Contributor, 0, len(st.instruments))
	for _, inst := range st.instruments {
		if !inst.row.Completed || inst.row.Score == nil {
			continue
		}
		contributors = append(contributors, screening.Contributor{
			Instrument:          inst.slug,
			SessionInstrumentID: inst.row.ID,
			Score:               *inst.row.Score,
			Thresholds:          inst.content.Thresholds,
		})
	}

	evidence := screening.Aggregate(contributors)

	dest, err := screening.Route(evidence, screening.ContextKind(st.session.ContextKind))
	if err != nil {
		// Never lose a crisis signal to a routing failure: pin the flag
		// before surfacing the error.
		if evidence.Crisis && !st.session.Crisis {
			if _, uerr := s.db.ScreeningSession.UpdateOneID(id).SetCrisis(true).Save(ctx); uerr != nil {
				s.logger.Error("failed to pin crisis flag", "session_id", id, "error", uerr)
			}
		}
		return nil, fmt.Errorf("route session %s: %w", id, err)
	}

	// Triage is recorded before the session flips to completed, so a
	// completed patient-order session always has a triage group. A crash
	// in between leaves an extra group on retry; groups are append-only
	// and the replay is identical, so the latest one is still correct.
	if st.session.ContextKind == entsession.ContextKindPatientOrder && st.session.PatientOrderID != nil {
		if _, err := s.triage.RecordComputed(ctx, *st.session.PatientOrderID, id, evidence, st.session.InitiatorID); err != nil {
			return nil, fmt.Errorf("record triage: %w", err)
		}
	}

	sess, err := s.db.ScreeningSession.UpdateOneID(id).
		SetStatus(entsession.StatusCompleted).
		SetEvidence(&evidence).
		SetDestination(&dest).
		SetCrisis(evidence.Crisis).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("compass.screening.completed.%s", id.String())
		_ = s.nc.Publish(subject, []byte(id.String()))
	}

	s.metrics.SessionCompleted(ctx, string(sess.ContextKind))
	if evidence.Crisis {
		s.metrics.CrisisFlagRaised(ctx, "scoring")
	}

	return &CompleteResult{Session: sess, Evidence: evidence, Destination: dest}, nil
}

func (s *service) Skip(ctx context.Context, id uuid.UUID, req SkipRequest) (_ *repo.ScreeningSession, err error) {
	release, err := s.lockSession(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.loadState(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.session.Status != entsession.StatusInProgress {
		return nil, ErrSessionNotActive
	}
	if st.flowVersion.Mandatory && !req.ForceSkip {
		return nil, ErrSkipNotAllowed
	}

	reason := req.Reason
	if reason == "" {
		reason = "declined"
	}

	sess, err := s.db.ScreeningSession.UpdateOneID(id).
		SetStatus(entsession.StatusSkipped).
		SetSkipReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("skip session: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("compass.screening.skipped.%s", id.String())
		_ = s.nc.Publish(subject, []byte(id.String()))
	}

	s.metrics.SessionSkipped(ctx, req.ForceSkip)

	return sess, nil
}

// Result is a pure read: no lock, no predicate persistence, works on
// sessions in any status.
func (s *service) Result(ctx context.Context, id uuid.UUID) (*ResultTree, error) {
	st, err := s.loadState(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &ResultTree{
		Session:     st.session,
		Instruments: make([]InstrumentResult, 0, len(st.instruments)),
	}
	for _, inst := range st.instruments {
		out.Instruments = append(out.Instruments, InstrumentResult{
			InstrumentSlug: inst.slug,
			Position:       inst.row.Position,
			Completed:      inst.row.Completed,
			Skipped:        inst.row.Skipped,
			Crisis:         inst.row.Crisis,
			Score:          inst.row.Score,
			Answers:        inst.answers,
		})
	}
	return out, nil
}

// ReconcileCrisis bypasses scoring entirely: any persisted answer whose
// option carries the crisis flag raises the session flag, whatever the
// stored evidence says. The aggregate can fail; the crisis signal cannot.
func (s *service) ReconcileCrisis(ctx context.Context, id uuid.UUID) (bool, error) {
	st, err := s.loadState(ctx, id)
	if err != nil {
		return false, err
	}

	crisis := false
	for _, inst := range st.instruments {
		if screening.CrisisFromAnswers(inst.content, inst.answers) {
			crisis = true
			break
		}
	}

	if crisis == st.session.Crisis {
		return false, nil
	}
	if !crisis {
		// Never lower a raised flag from the background path.
		return false, nil
	}

	if _, err := s.db.ScreeningSession.UpdateOneID(id).SetCrisis(true).Save(ctx); err != nil {
		return false, fmt.Errorf("reconcile crisis: %w", err)
	}
	s.metrics.CrisisFlagRaised(ctx, "reconciliation")
	s.logger.Warn("crisis flag raised by reconciliation", "session_id", id)
	return true, nil
}

func (s *service) SweepStale(ctx context.Context, idleCutoff time.Time) (int, error) {
	stale, err := s.db.ScreeningSession.Query().
		Where(
			entsession.StatusEQ(entsession.StatusInProgress),
			entsession.UpdatedAtLT(idleCutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query stale sessions: %w", err)
	}

	swept := 0
	for _, sess := range stale {
		// Per-session lock still applies: a subject mid-submit wins.
		if _, err := s.Skip(ctx, sess.ID, SkipRequest{ForceSkip: true, Reason: "abandoned"}); err != nil {
			if errors.Is(err, ErrSessionNotActive) || errors.Is(err, ErrSessionLocked) {
				continue
			}
			return swept, err
		}
		swept++
	}
	return swept, nil
}

// ---------------------------------------------------------------------------
// State loading
// ---------------------------------------------------------------------------

type instrumentState struct {
	row     *repo.SessionInstrument
	slug    string
	content screening.InstrumentContent
	answers map[string]screening.AnswerValue

	// skip cache, filled while walking
	skipDecided bool
	skip        bool
}

type sessionState struct {
	session     *repo.ScreeningSession
	flowVersion *repo.FlowVersion
	instruments []*instrumentState

	scores map[string]screening.Score
	crisis bool
}

func (s *service) loadState(ctx context.Context, id uuid.UUID) (*sessionState, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fv, err := s.catalog.FlowVersionByID(ctx, sess.FlowVersionID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.SessionInstrument.Query().
		Where(entsi.SessionID(id)).
		Order(entsi.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("session instruments: %w", err)
	}

	st := &sessionState{
		session:     sess,
		flowVersion: fv,
		scores:      make(map[string]screening.Score),
	}

	for _, row := range rows {
		if row.Position >= len(fv.Steps) {
			return nil, fmt.Errorf("session %s has instrument at position %d beyond flow steps", id, row.Position)
		}
		step := fv.Steps[row.Position]

		iv, err := s.catalog.InstrumentVersionByID(ctx, row.InstrumentVersionID)
		if err != nil {
			return nil, err
		}

		answers, err := s.latestAnswers(ctx, row.ID)
		if err != nil {
			return nil, err
		}

		inst := &instrumentState{
			row:     row,
			slug:    step.Instrument,
			content: iv.Content,
			answers: answers,
		}
		st.instruments = append(st.instruments, inst)

		if row.Completed && row.Score != nil {
			st.scores[step.Instrument] = *row.Score
			if row.Score.Crisis {
				st.crisis = true
			}
		}
	}

	return st, nil
}

// latestAnswers folds the append-only answer log into the effective answer
// per question: rows are read in id order and later rows overwrite earlier
// ones.
func (s *service) latestAnswers(ctx context.Context, sessionInstrumentID uuid.UUID) (map[string]screening.AnswerValue, error) {
	rows, err := s.db.Answer.Query().
		Where(entanswer.SessionInstrumentID(sessionInstrumentID)).
		Order(entanswer.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("answers: %w", err)
	}

	out := make(map[string]screening.AnswerValue, len(rows))
	for _, r := range rows {
		v := screening.AnswerValue{Format: screening.AnswerFormat(r.Format)}
		switch v.Format {
		case screening.FormatFreeText:
			if r.FreeText != nil {
				v.Text = *r.FreeText
			}
		default:
			v.OptionKeys = r.OptionKeys
		}
		out[r.QuestionKey] = v
	}
	return out, nil
}

// currentInstrument walks the steps in order and returns the first that is
// neither completed, persisted-skipped, nor skippable under the current
// scores. Predicate evaluation is cached on the state so mutating operations
// can persist the decisions the walk made.
func (st *sessionState) currentInstrument() (*instrumentState, error) {
	env := screening.PredicateEnv{Scores: st.scores, Crisis: st.crisis}
	for i, inst := range st.instruments {
		if inst.row.Completed || inst.row.Skipped {
			continue
		}
		if !inst.skipDecided {
			step := st.flowVersion.Steps[inst.row.Position]
			if step.SkipIf != nil {
				skip, err := step.SkipIf.Evaluate(env)
				if err != nil {
					return nil, fmt.Errorf("evaluate skip predicate for step %d (%s): %w", i, inst.slug, err)
				}
				inst.skip = skip
			}
			inst.skipDecided = true
		}
		if inst.skip {
			continue
		}
		return inst, nil
	}
	return nil, nil
}

// persistPendingSkips writes the skip decisions currentInstrument cached
// while walking, so a reload sees the same sequence.
func (s *service) persistPendingSkips(ctx context.Context, st *sessionState) error {
	for _, inst := range st.instruments {
		if !inst.skipDecided || !inst.skip || inst.row.Skipped {
			continue
		}
		_, err := s.db.SessionInstrument.UpdateOneID(inst.row.ID).
			SetSkipped(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("skip instrument %s: %w", inst.slug, err)
		}
		inst.row.Skipped = true
	}
	return nil
}

func (st *sessionState) markCompleted(rowID uuid.UUID) {
	for _, inst := range st.instruments {
		if inst.row.ID == rowID {
			inst.row.Completed = true
		}
	}
}

func (s *service) nextFromState(st *sessionState) (*NextQuestionResult, error) {
	cur, err := st.currentInstrument()
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return &NextQuestionResult{SessionID: st.session.ID, Done: true}, nil
	}

	q, err := screening.NextQuestion(cur.content, cur.answers)
	if err != nil {
		return nil, fmt.Errorf("next question: %w", err)
	}

	res := &NextQuestionResult{
		SessionID:      st.session.ID,
		InstrumentSlug: cur.slug,
		Position:       cur.row.Position,
	}
	if q == nil {
		res.InstrumentComplete = true
	} else {
		res.Question = q
	}
	return res, nil
}

func (s *service) lockSession(ctx context.Context, id uuid.UUID) (func(), error) {
	release, err := s.locker.Acquire(ctx, "session:"+id.String())
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, ErrSessionLocked
		}
		return nil, err
	}
	return release, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
