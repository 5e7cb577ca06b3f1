package screening

import (
	"encoding/json"
	"fmt"
)

// RecommendationLevel is the ranked acuity scale a single instrument score
// maps onto. Levels are ordered; aggregation picks the maximum across
// contributing instruments.
type RecommendationLevel int

const (
	LevelNone RecommendationLevel = iota
	LevelPeer
	LevelPeerCoach
	LevelCoach
	LevelCoachClinician
	LevelClinician
	LevelClinicianPsychiatrist
	LevelPsychiatrist
	LevelCrisis
)

var levelNames = map[RecommendationLevel]string{
	LevelNone:                  "NONE",
	LevelPeer:                  "PEER",
	LevelPeerCoach:             "PEER_COACH",
	LevelCoach:                 "COACH",
	LevelCoachClinician:        "COACH_CLINICIAN",
	LevelClinician:             "CLINICIAN",
	LevelClinicianPsychiatrist: "CLINICIAN_PSYCHIATRIST",
	LevelPsychiatrist:          "PSYCHIATRIST",
	LevelCrisis:                "CRISIS",
}

var levelValues = func() map[string]RecommendationLevel {
	m := make(map[string]RecommendationLevel, len(levelNames))
	for l, n := range levelNames {
		m[n] = l
	}
	return m
}()

func (l RecommendationLevel) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return fmt.Sprintf("RecommendationLevel(%d)", int(l))
}

func (l RecommendationLevel) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

func ParseLevel(s string) (RecommendationLevel, error) {
	if l, ok := levelValues[s]; ok {
		return l, nil
	}
	return LevelNone, fmt.Errorf("unknown recommendation level %q", s)
}

// Levels serialize as their names so catalog content stays readable.

func (l RecommendationLevel) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid recommendation level %d", int(l))
	}
	return json.Marshal(l.String())
}

func (l *RecommendationLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
