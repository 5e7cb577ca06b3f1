package session_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/marlowhealth/compass_backend/internal/repo"
	"github.com/marlowhealth/compass_backend/internal/repo/enttest"
	"github.com/marlowhealth/compass_backend/internal/screening"
	"github.com/marlowhealth/compass_backend/internal/service/catalog"
	"github.com/marlowhealth/compass_backend/internal/service/session"
	"github.com/marlowhealth/compass_backend/internal/service/triage"
)

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string) (func(), error) { return func() {}, nil }

func newTestStack(t *testing.T) (*repo.Client, triage.Service, session.Service) {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	cat := catalog.New(client)
	tri := triage.New(client, noopLocker{}, nil)
	svc := session.New(client, cat, tri, noopLocker{}, nil, nil, nil)

	seedCatalog(t, cat)
	return client, tri, svc
}

func seedCatalog(t *testing.T, cat catalog.Service) {
	t.Helper()
	ctx := context.Background()

	options := []screening.AnswerOption{
		{Key: "calm", Text: "Calm", Score: 0},
		{Key: "strained", Text: "Strained", Score: 2},
		{Key: "overwhelmed", Text: "Overwhelmed", Score: 3},
	}
	_, err := cat.PublishInstrument(ctx, catalog.PublishInstrumentRequest{
		Slug:      "mood-check",
		Name:      "Mood Check",
		FocusArea: "mood",
		Content: screening.InstrumentContent{
			Questions: []screening.Question{
				{Key: "q1", Text: "How do you feel today?", Format: screening.FormatSingleSelect, Options: options},
				{Key: "q2", Text: "How was the past week?", Format: screening.FormatSingleSelect, Options: options},
			},
			Scoring: screening.ScoringRule{Method: screening.MethodSum},
			Thresholds: screening.ThresholdTable{
				{MinScore: 3, Level: screening.LevelCoach},
				{MinScore: 5, Level: screening.LevelClinician},
			},
		},
	})
	if err != nil {
		t.Fatalf("publish instrument: %v", err)
	}

	_, err = cat.PublishFlow(ctx, catalog.PublishFlowRequest{
		Slug:      "intake",
		Name:      "Intake",
		Mandatory: true,
		Steps:     []catalog.FlowStepInput{{InstrumentSlug: "mood-check"}},
	})
	if err != nil {
		t.Fatalf("publish flow: %v", err)
	}
}

func runToCompletion(t *testing.T, svc session.Service, sessID, subject uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	for _, key := range []string{"q1", "q2"} {
		_, err := svc.SubmitAnswer(ctx, sessID, session.SubmitAnswerRequest{
			QuestionKey: key,
			Value: screening.AnswerValue{
				Format:     screening.FormatSingleSelect,
				OptionKeys: []string{"overwhelmed"},
			},
			RecordedBy: subject,
		})
		if err != nil {
			t.Fatalf("submit %s: %v", key, err)
		}
	}

	adv, err := svc.Advance(ctx, sessID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !adv.SessionComplete {
		t.Fatalf("session not complete after the only instrument")
	}
}

func TestCompleteReplaysPersistedResult(t *testing.T) {
	ctx := context.Background()
	_, tri, svc := newTestStack(t)

	subject := uuid.New()
	orderID := uuid.New()
	sess, err := svc.Create(ctx, session.CreateRequest{
		SubjectID:      subject,
		InitiatorID:    subject,
		FlowSlug:       "intake",
		ContextKind:    screening.ContextPatientOrder,
		PatientOrderID: &orderID,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	runToCompletion(t, svc, sess.ID, subject)

	first, err := svc.Complete(ctx, sess.ID)
	if err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if first.Replayed {
		t.Fatalf("first completion reported as replay")
	}

	second, err := svc.Complete(ctx, sess.ID)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if !second.Replayed {
		t.Errorf("second completion not reported as replay")
	}
	if !reflect.DeepEqual(first.Destination, second.Destination) {
		t.Errorf("destinations differ: %+v vs %+v", first.Destination, second.Destination)
	}
	if !reflect.DeepEqual(first.Evidence, second.Evidence) {
		t.Errorf("evidence differs: %+v vs %+v", first.Evidence, second.Evidence)
	}

	groups, err := tri.History(ctx, orderID)
	if err != nil {
		t.Fatalf("triage history: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("triage groups = %d, want 1", len(groups))
	}
	if groups[0].Group.SessionID == nil || *groups[0].Group.SessionID != sess.ID {
		t.Errorf("triage group not attributed to session %s", sess.ID)
	}
}

func TestOverrideBecomesCurrentTriage(t *testing.T) {
	ctx := context.Background()
	_, tri, svc := newTestStack(t)

	subject := uuid.New()
	orderID := uuid.New()
	sess, err := svc.Create(ctx, session.CreateRequest{
		SubjectID:      subject,
		InitiatorID:    subject,
		FlowSlug:       "intake",
		ContextKind:    screening.ContextPatientOrder,
		PatientOrderID: &orderID,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	runToCompletion(t, svc, sess.ID, subject)
	if _, err := svc.Complete(ctx, sess.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	clinician := uuid.New()
	override, err := tri.RecordOverride(ctx, triage.OverrideRequest{
		PatientOrderID: orderID,
		CareCategory:   screening.CarePsychotherapy,
		SafetyPlanning: screening.SafetyNotIndicated,
		Reason:         "clinical interview contradicts the score",
		CreatedBy:      clinician,
	})
	if err != nil {
		t.Fatalf("record override: %v", err)
	}

	current, err := tri.Current(ctx, orderID)
	if err != nil {
		t.Fatalf("current triage: %v", err)
	}
	if current.Group.ID != override.Group.ID {
		t.Errorf("current group = %s, want the override %s", current.Group.ID, override.Group.ID)
	}

	groups, err := tri.History(ctx, orderID)
	if err != nil {
		t.Fatalf("triage history: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("triage groups = %d, want 2", len(groups))
	}
}
