package screening

import (
	"encoding/json"
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	ordered := []RecommendationLevel{
		LevelNone, LevelPeer, LevelPeerCoach, LevelCoach, LevelCoachClinician,
		LevelClinician, LevelClinicianPsychiatrist, LevelPsychiatrist, LevelCrisis,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v is not below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"NONE", "PEER_COACH", "CLINICIAN_PSYCHIATRIST", "CRISIS"} {
		l, err := ParseLevel(name)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", name, err)
			continue
		}
		if l.String() != name {
			t.Errorf("ParseLevel(%q).String() = %q", name, l.String())
		}
	}

	if _, err := ParseLevel("SHAMAN"); err == nil {
		t.Error("ParseLevel accepted unknown name")
	}
}

func TestLevelJSON(t *testing.T) {
	data, err := json.Marshal(LevelCoachClinician)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"COACH_CLINICIAN"` {
		t.Errorf("Marshal() = %s", data)
	}

	var l RecommendationLevel
	if err := json.Unmarshal([]byte(`"PSYCHIATRIST"`), &l); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if l != LevelPsychiatrist {
		t.Errorf("Unmarshal() = %v, want PSYCHIATRIST", l)
	}

	if err := json.Unmarshal([]byte(`"PSYCHIC"`), &l); err == nil {
		t.Error("Unmarshal accepted unknown level")
	}

	if _, err := json.Marshal(RecommendationLevel(42)); err == nil {
		t.Error("Marshal accepted invalid level")
	}
}
