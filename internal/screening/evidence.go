package screening

import "github.com/google/uuid"

// Contributor is one completed instrument's input to aggregation: its score,
// crisis flag, and the threshold table declared on its instrument version.
// Contributors must be passed in flow declaration order; that order is the
// documented tie-break.
type Contributor struct {
	Instrument          string
	SessionInstrumentID uuid.UUID
	Score               Score
	Thresholds          ThresholdTable
}

// Recommendation is one instrument's contribution to the session result.
type Recommendation struct {
	Instrument          string              `json:"instrument"`
	SessionInstrumentID uuid.UUID           `json:"sessionInstrumentId"`
	Level               RecommendationLevel `json:"level"`
	Score               int                 `json:"score"`
}

// EvidenceScores is the aggregate computed once per completed session.
// Top is nil when no instrument produced a score; the router treats that as
// insufficient evidence, never as NONE. Crisis is independent of Top: a
// crisis-flagged answer raises it even when every numeric score maps to NONE.
type EvidenceScores struct {
	Recommendations []Recommendation `json:"recommendations"`
	Top             *Recommendation  `json:"top,omitempty"`
	Crisis          bool             `json:"crisis"`
}

// Aggregate maps each contributor's score through its own threshold table and
// derives the top recommendation. Deterministic: the max is taken with a
// strict greater-than, so ties resolve to the earlier-declared contributor.
func Aggregate(contributors []Contributor) EvidenceScores {
	out := EvidenceScores{
		Recommendations: make([]Recommendation, 0, len(contributors)),
	}

	for _, c := range contributors {
		rec := Recommendation{
			Instrument:          c.Instrument,
			SessionInstrumentID: c.SessionInstrumentID,
			Level:               c.Thresholds.MapScore(c.Score.Overall),
			Score:               c.Score.Overall,
		}
		out.Recommendations = append(out.Recommendations, rec)
		if c.Score.Crisis {
			out.Crisis = true
		}
	}

	for i := range out.Recommendations {
		if out.Top == nil || out.Recommendations[i].Level > out.Top.Level {
			out.Top = &out.Recommendations[i]
		}
	}

	return out
}
