package screening

import (
	"testing"

	"github.com/google/uuid"
)

func validContent() InstrumentContent {
	return InstrumentContent{
		Questions: []Question{
			{Key: "q1", Format: FormatSingleSelect, Options: []AnswerOption{{Key: "a", Score: 0}, {Key: "b", Score: 1}}},
			{Key: "q2", Format: FormatFreeText, Optional: true},
		},
		Scoring: ScoringRule{Method: MethodSum},
		Thresholds: ThresholdTable{
			{MinScore: 1, Level: LevelPeer},
			{MinScore: 2, Level: LevelCoach},
		},
	}
}

func TestInstrumentContentValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*InstrumentContent)
		wantErr bool
	}{
		{"valid", func(c *InstrumentContent) {}, false},
		{"no questions", func(c *InstrumentContent) { c.Questions = nil }, true},
		{"duplicate question key", func(c *InstrumentContent) { c.Questions[1].Key = "q1" }, true},
		{"select without options", func(c *InstrumentContent) { c.Questions[0].Options = nil }, true},
		{"duplicate option key", func(c *InstrumentContent) { c.Questions[0].Options[1].Key = "a" }, true},
		{"free text with options", func(c *InstrumentContent) {
			c.Questions[1].Options = []AnswerOption{{Key: "x"}}
		}, true},
		{"unknown format", func(c *InstrumentContent) { c.Questions[0].Format = "slider" }, true},
		{"askIf forward reference", func(c *InstrumentContent) {
			c.Questions[0].AskIf = &Predicate{Type: PredAnswered, Question: "q2"}
		}, true},
		{"askIf backward reference", func(c *InstrumentContent) {
			c.Questions[1].AskIf = &Predicate{Type: PredOptionSelected, Question: "q1", Option: "b"}
		}, false},
		{"thresholds not strictly increasing", func(c *InstrumentContent) {
			c.Thresholds = ThresholdTable{{MinScore: 5, Level: LevelPeer}, {MinScore: 5, Level: LevelCoach}}
		}, true},
		{"threshold with invalid level", func(c *InstrumentContent) {
			c.Thresholds = ThresholdTable{{MinScore: 5, Level: RecommendationLevel(42)}}
		}, true},
		{"sum with subscales declared", func(c *InstrumentContent) {
			c.Scoring.Subscales = []Subscale{{Name: "x", Questions: []string{"q1"}}}
		}, true},
		{"subscale referencing unknown question", func(c *InstrumentContent) {
			c.Scoring = ScoringRule{
				Method:    MethodSubscales,
				Combine:   CombineSumOfSubscales,
				Subscales: []Subscale{{Name: "x", Questions: []string{"missing"}}},
			}
		}, true},
		{"weighted combine without weights", func(c *InstrumentContent) {
			c.Scoring = ScoringRule{
				Method:    MethodSubscales,
				Combine:   CombineWeighted,
				Subscales: []Subscale{{Name: "x", Questions: []string{"q1"}}},
			}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContent()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSteps(t *testing.T) {
	vid := uuid.New()

	tests := []struct {
		name    string
		steps   []FlowStep
		wantErr bool
	}{
		{"valid", []FlowStep{
			{Instrument: "gad-7", InstrumentVersionID: vid},
			{Instrument: "phq-9", InstrumentVersionID: vid, SkipIf: &Predicate{Type: PredScoreBelow, Instrument: "gad-7", Threshold: 5}},
		}, false},
		{"empty", nil, true},
		{"missing slug", []FlowStep{{InstrumentVersionID: vid}}, true},
		{"unbound version", []FlowStep{{Instrument: "gad-7"}}, true},
		{"duplicate instrument", []FlowStep{
			{Instrument: "gad-7", InstrumentVersionID: vid},
			{Instrument: "gad-7", InstrumentVersionID: vid},
		}, true},
		{"skipIf references later instrument", []FlowStep{
			{Instrument: "gad-7", InstrumentVersionID: vid, SkipIf: &Predicate{Type: PredScoreBelow, Instrument: "phq-9", Threshold: 5}},
			{Instrument: "phq-9", InstrumentVersionID: vid},
		}, true},
		{"skipIf references itself", []FlowStep{
			{Instrument: "gad-7", InstrumentVersionID: vid, SkipIf: &Predicate{Type: PredScoreAtLeast, Instrument: "gad-7", Threshold: 5}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSteps(tt.steps)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSteps() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
