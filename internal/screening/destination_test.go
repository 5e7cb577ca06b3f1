package screening

import "testing"

func TestValidateRoutingTable(t *testing.T) {
	if err := ValidateRoutingTable(); err != nil {
		t.Fatalf("ValidateRoutingTable() = %v", err)
	}
}

func TestRoute(t *testing.T) {
	rec := func(level RecommendationLevel) EvidenceScores {
		return EvidenceScores{Top: &Recommendation{Instrument: "phq-9", Level: level, Score: 1}}
	}

	tests := []struct {
		name     string
		evidence EvidenceScores
		ctx      ContextKind
		want     DestinationKind
	}{
		{"crisis wins even at score zero", EvidenceScores{Crisis: true, Top: &Recommendation{Level: LevelNone}}, ContextPatientOrder, DestCrisisResources},
		{"crisis with no top", EvidenceScores{Crisis: true}, ContextStandalone, DestCrisisResources},
		{"insufficient evidence escalates for patient orders", EvidenceScores{}, ContextPatientOrder, DestClinicianReview},
		{"insufficient evidence elsewhere gets content", EvidenceScores{}, ContextCourseUnit, DestContentList},
		{"none level patient order", rec(LevelNone), ContextPatientOrder, DestClinicianReview},
		{"none level standalone", rec(LevelNone), ContextStandalone, DestContentList},
		{"self-directed patient order", rec(LevelCoach), ContextPatientOrder, DestClinicalScreening},
		{"self-directed group session", rec(LevelPeer), ContextGroupSession, DestContentList},
		{"clinical patient order", rec(LevelClinician), ContextPatientOrder, DestClinicalScreening},
		{"clinical standalone", rec(LevelPsychiatrist), ContextStandalone, DestProviderList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Route(tt.evidence, tt.ctx)
			if err != nil {
				t.Fatalf("Route() error = %v", err)
			}
			if got.Kind != tt.want {
				t.Errorf("Route() = %v, want %v", got.Kind, tt.want)
			}
		})
	}
}

func TestRouteUnknownContext(t *testing.T) {
	if _, err := Route(EvidenceScores{}, ContextKind("classroom")); err == nil {
		t.Fatal("Route() with unknown context: expected error")
	}
}

func TestRouteDeterministic(t *testing.T) {
	ev := EvidenceScores{Top: &Recommendation{Instrument: "gad-7", Level: LevelCoach, Score: 11}}

	first, err := Route(ev, ContextStandalone)
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Route(ev, ContextStandalone)
		if err != nil {
			t.Fatalf("Route() error = %v", err)
		}
		if again.Kind != first.Kind {
			t.Fatalf("Route() not deterministic: %v vs %v", again.Kind, first.Kind)
		}
	}
}

func TestRoutePayload(t *testing.T) {
	ev := EvidenceScores{Top: &Recommendation{Instrument: "gad-7", Level: LevelCoach, Score: 11}}
	dest, err := Route(ev, ContextStandalone)
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	if dest.Context["level"] != "COACH" || dest.Context["instrument"] != "gad-7" {
		t.Errorf("Context = %v, want level=COACH instrument=gad-7", dest.Context)
	}

	dest, err = Route(EvidenceScores{}, ContextStandalone)
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	if dest.Context["reason"] != "insufficient_evidence" {
		t.Errorf("Context = %v, want reason=insufficient_evidence", dest.Context)
	}
}
