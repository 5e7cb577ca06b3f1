package screening

import (
	"errors"
	"testing"
)

func moodContent() InstrumentContent {
	return InstrumentContent{
		Questions: []Question{
			{
				Key:    "q1",
				Text:   "Feeling down",
				Format: FormatSingleSelect,
				Options: []AnswerOption{
					{Key: "never", Score: 0},
					{Key: "sometimes", Score: 1},
					{Key: "often", Score: 2},
				},
			},
			{
				Key:    "q2",
				Text:   "Thoughts of self-harm",
				Format: FormatSingleSelect,
				Options: []AnswerOption{
					{Key: "never", Score: 0},
					{Key: "sometimes", Score: 2, TriggersCrisis: true},
				},
			},
			{
				Key:      "q3",
				Text:     "Anything else to add",
				Format:   FormatFreeText,
				Optional: true,
			},
		},
		Scoring: ScoringRule{Method: MethodSum},
		Thresholds: ThresholdTable{
			{MinScore: 2, Level: LevelCoach},
			{MinScore: 4, Level: LevelClinician},
		},
	}
}

func single(key string) AnswerValue {
	return AnswerValue{Format: FormatSingleSelect, OptionKeys: []string{key}}
}

func TestScoreInstrumentSum(t *testing.T) {
	content := moodContent()

	tests := []struct {
		name        string
		answers     map[string]AnswerValue
		wantOverall int
		wantCrisis  bool
	}{
		{
			name: "all zeros",
			answers: map[string]AnswerValue{
				"q1": single("never"),
				"q2": single("never"),
			},
			wantOverall: 0,
		},
		{
			name: "sums option scores",
			answers: map[string]AnswerValue{
				"q1": single("often"),
				"q2": single("never"),
			},
			wantOverall: 2,
		},
		{
			name: "crisis option raises flag independent of total",
			answers: map[string]AnswerValue{
				"q1": single("never"),
				"q2": single("sometimes"),
			},
			wantOverall: 2,
			wantCrisis:  true,
		},
		{
			name: "free text answered but not counted",
			answers: map[string]AnswerValue{
				"q1": single("sometimes"),
				"q2": single("never"),
				"q3": {Format: FormatFreeText, Text: "doing okay"},
			},
			wantOverall: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreInstrument(content, tt.answers)
			if err != nil {
				t.Fatalf("ScoreInstrument() error = %v", err)
			}
			if got.Overall != tt.wantOverall {
				t.Errorf("Overall = %d, want %d", got.Overall, tt.wantOverall)
			}
			if got.Crisis != tt.wantCrisis {
				t.Errorf("Crisis = %v, want %v", got.Crisis, tt.wantCrisis)
			}
		})
	}
}

func TestScoreInstrumentIncomplete(t *testing.T) {
	content := moodContent()

	// q2 is required and unanswered.
	_, err := ScoreInstrument(content, map[string]AnswerValue{"q1": single("never")})
	if !errors.Is(err, ErrIncompleteInstrument) {
		t.Fatalf("ScoreInstrument() error = %v, want ErrIncompleteInstrument", err)
	}

	// q3 is optional; leaving it unanswered is fine.
	_, err = ScoreInstrument(content, map[string]AnswerValue{
		"q1": single("never"),
		"q2": single("never"),
	})
	if err != nil {
		t.Fatalf("ScoreInstrument() with optional unanswered: %v", err)
	}
}

func TestScoreInstrumentMultiSelect(t *testing.T) {
	content := InstrumentContent{
		Questions: []Question{
			{
				Key:    "symptoms",
				Format: FormatMultiSelect,
				Options: []AnswerOption{
					{Key: "sleep", Score: 1},
					{Key: "appetite", Score: 1},
					{Key: "panic", Score: 3},
				},
			},
		},
		Scoring: ScoringRule{Method: MethodSum},
	}

	got, err := ScoreInstrument(content, map[string]AnswerValue{
		"symptoms": {Format: FormatMultiSelect, OptionKeys: []string{"sleep", "panic"}},
	})
	if err != nil {
		t.Fatalf("ScoreInstrument() error = %v", err)
	}
	if got.Overall != 4 {
		t.Errorf("Overall = %d, want 4", got.Overall)
	}
}

func TestScoreInstrumentSubscales(t *testing.T) {
	content := InstrumentContent{
		Questions: []Question{
			{Key: "a1", Format: FormatSingleSelect, Options: []AnswerOption{{Key: "x", Score: 2}}},
			{Key: "a2", Format: FormatSingleSelect, Options: []AnswerOption{{Key: "x", Score: 3}}},
			{Key: "b1", Format: FormatSingleSelect, Options: []AnswerOption{{Key: "x", Score: 4}}},
		},
		Scoring: ScoringRule{
			Method:  MethodSubscales,
			Combine: CombineSumOfSubscales,
			Subscales: []Subscale{
				{Name: "alpha", Questions: []string{"a1", "a2"}},
				{Name: "beta", Questions: []string{"b1"}},
			},
		},
	}
	answers := map[string]AnswerValue{
		"a1": single("x"),
		"a2": single("x"),
		"b1": single("x"),
	}

	got, err := ScoreInstrument(content, answers)
	if err != nil {
		t.Fatalf("ScoreInstrument() error = %v", err)
	}
	if got.Subscales["alpha"] != 5 || got.Subscales["beta"] != 4 {
		t.Errorf("Subscales = %v, want alpha=5 beta=4", got.Subscales)
	}
	if got.Overall != 9 {
		t.Errorf("Overall = %d, want 9", got.Overall)
	}

	// Weighted combine rounds to the nearest integer.
	content.Scoring.Combine = CombineWeighted
	content.Scoring.Subscales[0].Weight = 0.5
	content.Scoring.Subscales[1].Weight = 1.0

	got, err = ScoreInstrument(content, answers)
	if err != nil {
		t.Fatalf("ScoreInstrument() weighted error = %v", err)
	}
	if got.Overall != 7 { // 0.5*5 + 1.0*4 = 6.5, rounds to 7
		t.Errorf("weighted Overall = %d, want 7", got.Overall)
	}
}

func TestScoreInstrumentSkipsInapplicableQuestions(t *testing.T) {
	content := InstrumentContent{
		Questions: []Question{
			{
				Key:    "screener",
				Format: FormatSingleSelect,
				Options: []AnswerOption{
					{Key: "yes", Score: 1},
					{Key: "no", Score: 0},
				},
			},
			{
				Key:    "followup",
				Format: FormatSingleSelect,
				AskIf:  &Predicate{Type: PredOptionSelected, Question: "screener", Option: "yes"},
				Options: []AnswerOption{
					{Key: "mild", Score: 1},
					{Key: "severe", Score: 3},
				},
			},
		},
		Scoring: ScoringRule{Method: MethodSum},
	}

	// The follow-up never became applicable, so it is not required.
	got, err := ScoreInstrument(content, map[string]AnswerValue{"screener": single("no")})
	if err != nil {
		t.Fatalf("ScoreInstrument() error = %v", err)
	}
	if got.Overall != 0 {
		t.Errorf("Overall = %d, want 0", got.Overall)
	}
}

func TestNextQuestion(t *testing.T) {
	content := moodContent()

	q, err := NextQuestion(content, nil)
	if err != nil {
		t.Fatalf("NextQuestion() error = %v", err)
	}
	if q == nil || q.Key != "q1" {
		t.Fatalf("NextQuestion() = %v, want q1", q)
	}

	q, err = NextQuestion(content, map[string]AnswerValue{"q1": single("never")})
	if err != nil {
		t.Fatalf("NextQuestion() error = %v", err)
	}
	if q == nil || q.Key != "q2" {
		t.Fatalf("NextQuestion() = %v, want q2", q)
	}

	q, err = NextQuestion(content, map[string]AnswerValue{
		"q1": single("never"),
		"q2": single("never"),
		"q3": {Format: FormatFreeText, Text: "done"},
	})
	if err != nil {
		t.Fatalf("NextQuestion() error = %v", err)
	}
	if q != nil {
		t.Fatalf("NextQuestion() on complete instrument = %v, want nil", q)
	}
}

func TestCrisisFromAnswers(t *testing.T) {
	content := moodContent()

	if CrisisFromAnswers(content, map[string]AnswerValue{"q2": single("never")}) {
		t.Error("CrisisFromAnswers() = true for non-crisis selection")
	}
	if !CrisisFromAnswers(content, map[string]AnswerValue{"q2": single("sometimes")}) {
		t.Error("CrisisFromAnswers() = false for crisis selection")
	}
	// Works on partial answer sets; unanswered questions are ignored.
	if CrisisFromAnswers(content, nil) {
		t.Error("CrisisFromAnswers() = true with no answers")
	}
}
