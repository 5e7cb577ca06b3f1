package screening

import "fmt"

// PredicateType enumerates the closed declarative vocabulary flow and
// question branching are expressed in. Branching conditions are data on the
// immutable catalog versions; the orchestrator is a generic interpreter.
type PredicateType string

const (
	// Question scope: evaluated over prior answers in the same instrument.
	PredOptionSelected    PredicateType = "option_selected"
	PredOptionNotSelected PredicateType = "option_not_selected"
	PredAnswered          PredicateType = "answered"

	// Flow scope: evaluated over scores of previously completed instruments.
	PredScoreBelow   PredicateType = "score_below"
	PredScoreAtLeast PredicateType = "score_at_least"
	PredCrisis       PredicateType = "crisis"

	// Combinators, valid in either scope.
	PredAll PredicateType = "all"
	PredAny PredicateType = "any"
	PredNot PredicateType = "not"
)

type Predicate struct {
	Type PredicateType `json:"type"`

	// option_selected / option_not_selected / answered
	Question string `json:"question,omitempty"`
	Option   string `json:"option,omitempty"`

	// score_below / score_at_least
	Instrument string `json:"instrument,omitempty"`
	Threshold  int    `json:"threshold,omitempty"`

	// all / any / not
	Of []Predicate `json:"of,omitempty"`
}

// PredicateEnv is the evaluation environment. Question-scope predicates see
// Answers (keyed by question key); flow-scope predicates see Scores (keyed by
// instrument slug) and the running crisis flag.
type PredicateEnv struct {
	Answers map[string]AnswerValue
	Scores  map[string]Score
	Crisis  bool
}

// Evaluate interprets p against env. An unknown predicate type or a reference
// the environment cannot answer is a configuration error, not a false.
func (p Predicate) Evaluate(env PredicateEnv) (bool, error) {
	switch p.Type {
	case PredOptionSelected:
		av, ok := env.Answers[p.Question]
		if !ok {
			return false, nil
		}
		return av.HasOption(p.Option), nil

	case PredOptionNotSelected:
		av, ok := env.Answers[p.Question]
		if !ok {
			return false, nil
		}
		return !av.HasOption(p.Option), nil

	case PredAnswered:
		_, ok := env.Answers[p.Question]
		return ok, nil

	case PredScoreBelow:
		s, ok := env.Scores[p.Instrument]
		if !ok {
			return false, fmt.Errorf("predicate references unscored instrument %q", p.Instrument)
		}
		return s.Overall < p.Threshold, nil

	case PredScoreAtLeast:
		s, ok := env.Scores[p.Instrument]
		if !ok {
			return false, fmt.Errorf("predicate references unscored instrument %q", p.Instrument)
		}
		return s.Overall >= p.Threshold, nil

	case PredCrisis:
		return env.Crisis, nil

	case PredAll:
		for _, sub := range p.Of {
			ok, err := sub.Evaluate(env)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil

	case PredAny:
		for _, sub := range p.Of {
			ok, err := sub.Evaluate(env)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil

	case PredNot:
		if len(p.Of) != 1 {
			return false, fmt.Errorf("not predicate requires exactly one operand, got %d", len(p.Of))
		}
		ok, err := p.Of[0].Evaluate(env)
		return !ok, err

	default:
		return false, fmt.Errorf("unknown predicate type %q", p.Type)
	}
}

// validateQuestionScope checks a question-level predicate at publish time:
// only question-scope types, and only references to questions declared
// earlier in the same instrument.
func (p Predicate) validateQuestionScope(priorQuestions map[string]struct{}) error {
	switch p.Type {
	case PredOptionSelected, PredOptionNotSelected, PredAnswered:
		if _, ok := priorQuestions[p.Question]; !ok {
			return fmt.Errorf("references question %q which is not declared earlier", p.Question)
		}
		return nil
	case PredAll, PredAny, PredNot:
		if p.Type == PredNot && len(p.Of) != 1 {
			return fmt.Errorf("not predicate requires exactly one operand")
		}
		if len(p.Of) == 0 {
			return fmt.Errorf("%s predicate has no operands", p.Type)
		}
		for _, sub := range p.Of {
			if err := sub.validateQuestionScope(priorQuestions); err != nil {
				return err
			}
		}
		return nil
	case PredScoreBelow, PredScoreAtLeast, PredCrisis:
		return fmt.Errorf("%s predicate is not allowed at question scope", p.Type)
	default:
		return fmt.Errorf("unknown predicate type %q", p.Type)
	}
}

// validateFlowScope checks a step-level predicate at publish time: only
// flow-scope types, and only references to instruments that appear earlier
// in the flow.
func (p Predicate) validateFlowScope(priorInstruments map[string]struct{}) error {
	switch p.Type {
	case PredScoreBelow, PredScoreAtLeast:
		if _, ok := priorInstruments[p.Instrument]; !ok {
			return fmt.Errorf("references instrument %q which does not appear earlier in the flow", p.Instrument)
		}
		return nil
	case PredCrisis:
		return nil
	case PredAll, PredAny, PredNot:
		if p.Type == PredNot && len(p.Of) != 1 {
			return fmt.Errorf("not predicate requires exactly one operand")
		}
		if len(p.Of) == 0 {
			return fmt.Errorf("%s predicate has no operands", p.Type)
		}
		for _, sub := range p.Of {
			if err := sub.validateFlowScope(priorInstruments); err != nil {
				return err
			}
		}
		return nil
	case PredOptionSelected, PredOptionNotSelected, PredAnswered:
		return fmt.Errorf("%s predicate is not allowed at flow scope", p.Type)
	default:
		return fmt.Errorf("unknown predicate type %q", p.Type)
	}
}
