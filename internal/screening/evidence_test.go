package screening

import (
	"testing"

	"github.com/google/uuid"
)

func contributor(slug string, overall int, crisis bool, thresholds ThresholdTable) Contributor {
	return Contributor{
		Instrument:          slug,
		SessionInstrumentID: uuid.New(),
		Score:               Score{Overall: overall, Crisis: crisis},
		Thresholds:          thresholds,
	}
}

func TestAggregate(t *testing.T) {
	standard := ThresholdTable{
		{MinScore: 5, Level: LevelPeer},
		{MinScore: 10, Level: LevelCoach},
		{MinScore: 15, Level: LevelClinician},
	}

	t.Run("maps each contributor through its own table", func(t *testing.T) {
		strict := ThresholdTable{{MinScore: 5, Level: LevelPsychiatrist}}
		ev := Aggregate([]Contributor{
			contributor("gad-7", 12, false, standard),
			contributor("phq-9", 6, false, strict),
		})

		if len(ev.Recommendations) != 2 {
			t.Fatalf("got %d recommendations, want 2", len(ev.Recommendations))
		}
		if ev.Recommendations[0].Level != LevelCoach {
			t.Errorf("gad-7 level = %v, want COACH", ev.Recommendations[0].Level)
		}
		if ev.Recommendations[1].Level != LevelPsychiatrist {
			t.Errorf("phq-9 level = %v, want PSYCHIATRIST", ev.Recommendations[1].Level)
		}
		if ev.Top == nil || ev.Top.Instrument != "phq-9" {
			t.Errorf("Top = %v, want phq-9", ev.Top)
		}
	})

	t.Run("ties resolve to the earlier contributor", func(t *testing.T) {
		ev := Aggregate([]Contributor{
			contributor("first", 12, false, standard),
			contributor("second", 14, false, standard), // same COACH level, higher raw score
		})
		if ev.Top == nil || ev.Top.Instrument != "first" {
			t.Errorf("Top = %v, want first", ev.Top)
		}
	})

	t.Run("crisis flag propagates independent of levels", func(t *testing.T) {
		ev := Aggregate([]Contributor{
			contributor("phq-9", 0, true, standard),
		})
		if !ev.Crisis {
			t.Error("Crisis = false, want true")
		}
		if ev.Top == nil || ev.Top.Level != LevelNone {
			t.Errorf("Top level = %v, want NONE", ev.Top)
		}
	})

	t.Run("no contributors means nil Top, not NONE", func(t *testing.T) {
		ev := Aggregate(nil)
		if ev.Top != nil {
			t.Errorf("Top = %v, want nil", ev.Top)
		}
		if ev.Crisis {
			t.Error("Crisis = true, want false")
		}
	})
}
