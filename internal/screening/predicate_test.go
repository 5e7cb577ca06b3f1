package screening

import (
	"strings"
	"testing"
)

func TestPredicateEvaluate(t *testing.T) {
	env := PredicateEnv{
		Answers: map[string]AnswerValue{
			"q1": {Format: FormatSingleSelect, OptionKeys: []string{"yes"}},
		},
		Scores: map[string]Score{
			"gad-7": {Overall: 8},
		},
		Crisis: true,
	}

	tests := []struct {
		name string
		p    Predicate
		want bool
	}{
		{"option selected", Predicate{Type: PredOptionSelected, Question: "q1", Option: "yes"}, true},
		{"option selected wrong option", Predicate{Type: PredOptionSelected, Question: "q1", Option: "no"}, false},
		{"option selected unanswered question", Predicate{Type: PredOptionSelected, Question: "q9", Option: "yes"}, false},
		{"option not selected", Predicate{Type: PredOptionNotSelected, Question: "q1", Option: "no"}, true},
		{"option not selected but unanswered", Predicate{Type: PredOptionNotSelected, Question: "q9", Option: "no"}, false},
		{"answered", Predicate{Type: PredAnswered, Question: "q1"}, true},
		{"not answered", Predicate{Type: PredAnswered, Question: "q9"}, false},
		{"score below", Predicate{Type: PredScoreBelow, Instrument: "gad-7", Threshold: 10}, true},
		{"score below at boundary", Predicate{Type: PredScoreBelow, Instrument: "gad-7", Threshold: 8}, false},
		{"score at least", Predicate{Type: PredScoreAtLeast, Instrument: "gad-7", Threshold: 8}, true},
		{"crisis", Predicate{Type: PredCrisis}, true},
		{
			"all",
			Predicate{Type: PredAll, Of: []Predicate{
				{Type: PredAnswered, Question: "q1"},
				{Type: PredCrisis},
			}},
			true,
		},
		{
			"all short-circuits false",
			Predicate{Type: PredAll, Of: []Predicate{
				{Type: PredAnswered, Question: "q9"},
				{Type: PredCrisis},
			}},
			false,
		},
		{
			"any",
			Predicate{Type: PredAny, Of: []Predicate{
				{Type: PredAnswered, Question: "q9"},
				{Type: PredCrisis},
			}},
			true,
		},
		{"not", Predicate{Type: PredNot, Of: []Predicate{{Type: PredAnswered, Question: "q9"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.Evaluate(env)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredicateEvaluateErrors(t *testing.T) {
	tests := []struct {
		name    string
		p       Predicate
		wantSub string
	}{
		{"unknown type", Predicate{Type: "sometimes"}, "unknown predicate type"},
		{"unscored instrument", Predicate{Type: PredScoreBelow, Instrument: "missing", Threshold: 5}, "unscored instrument"},
		{"not with two operands", Predicate{Type: PredNot, Of: []Predicate{{Type: PredCrisis}, {Type: PredCrisis}}}, "exactly one operand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.Evaluate(PredicateEnv{})
			if err == nil {
				t.Fatal("Evaluate() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Evaluate() error = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestPredicateScopeValidation(t *testing.T) {
	prior := map[string]struct{}{"q1": {}}

	if err := (Predicate{Type: PredOptionSelected, Question: "q1", Option: "x"}).validateQuestionScope(prior); err != nil {
		t.Errorf("question-scope predicate rejected: %v", err)
	}
	if err := (Predicate{Type: PredOptionSelected, Question: "q2", Option: "x"}).validateQuestionScope(prior); err == nil {
		t.Error("forward question reference accepted")
	}
	if err := (Predicate{Type: PredScoreBelow, Instrument: "gad-7", Threshold: 5}).validateQuestionScope(prior); err == nil {
		t.Error("flow-scope predicate accepted at question scope")
	}

	priorInst := map[string]struct{}{"gad-7": {}}

	if err := (Predicate{Type: PredScoreBelow, Instrument: "gad-7", Threshold: 5}).validateFlowScope(priorInst); err != nil {
		t.Errorf("flow-scope predicate rejected: %v", err)
	}
	if err := (Predicate{Type: PredScoreAtLeast, Instrument: "phq-9", Threshold: 5}).validateFlowScope(priorInst); err == nil {
		t.Error("forward instrument reference accepted")
	}
	if err := (Predicate{Type: PredAnswered, Question: "q1"}).validateFlowScope(priorInst); err == nil {
		t.Error("question-scope predicate accepted at flow scope")
	}
	if err := (Predicate{Type: PredCrisis}).validateFlowScope(priorInst); err != nil {
		t.Errorf("crisis predicate rejected at flow scope: %v", err)
	}
	if err := (Predicate{Type: PredAll}).validateFlowScope(priorInst); err == nil {
		t.Error("combinator with no operands accepted")
	}
}
