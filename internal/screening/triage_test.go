package screening

import "testing"

func TestCareCategoryForLevel(t *testing.T) {
	tests := []struct {
		level RecommendationLevel
		want  CareCategory
	}{
		{LevelNone, CareSubclinical},
		{LevelPeer, CareCoaching},
		{LevelCoach, CareCoaching},
		{LevelCoachClinician, CarePsychotherapy},
		{LevelClinician, CarePsychotherapy},
		{LevelClinicianPsychiatrist, CarePsychiatry},
		{LevelPsychiatrist, CarePsychiatry},
		{LevelCrisis, CareCrisis},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := CareCategoryForLevel(tt.level); got != tt.want {
				t.Errorf("CareCategoryForLevel(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestComputedTriage(t *testing.T) {
	t.Run("crisis forces crisis care and safety planning", func(t *testing.T) {
		cat, safety := ComputedTriage(EvidenceScores{
			Crisis: true,
			Top:    &Recommendation{Level: LevelPeer},
		})
		if cat != CareCrisis {
			t.Errorf("category = %v, want CRISIS_CARE", cat)
		}
		if safety != SafetyIndicated {
			t.Errorf("safety = %v, want INDICATED", safety)
		}
	})

	t.Run("no evidence is subclinical", func(t *testing.T) {
		cat, safety := ComputedTriage(EvidenceScores{})
		if cat != CareSubclinical {
			t.Errorf("category = %v, want SUBCLINICAL", cat)
		}
		if safety != SafetyNotIndicated {
			t.Errorf("safety = %v, want NOT_INDICATED", safety)
		}
	})

	t.Run("top level drives the category", func(t *testing.T) {
		cat, safety := ComputedTriage(EvidenceScores{
			Top: &Recommendation{Level: LevelClinician},
		})
		if cat != CarePsychotherapy {
			t.Errorf("category = %v, want PSYCHOTHERAPY", cat)
		}
		if safety != SafetyNotIndicated {
			t.Errorf("safety = %v, want NOT_INDICATED", safety)
		}
	})
}
