package screening

import (
	"errors"
	"fmt"
	"math"
)

// ErrIncompleteInstrument is a programming-contract violation: scoring was
// invoked while a required, applicable question is still unanswered. The
// orchestrator must never reach this path; callers log it loudly and fail the
// operation rather than defaulting a score.
var ErrIncompleteInstrument = errors.New("instrument has unanswered required questions")

// Score is the computed result for one instrument occurrence.
type Score struct {
	Overall   int            `json:"overall"`
	Subscales map[string]int `json:"subscales,omitempty"`

	// Crisis is set when any selected answer option carries the crisis flag,
	// independent of the numeric score.
	Crisis bool `json:"crisis,omitempty"`
}

// ScoreInstrument computes the Score for one completed instrument from its
// definition and the recorded answers (latest answer per question key). It is
// a pure function; the same inputs always yield the same Score.
func ScoreInstrument(content InstrumentContent, answers map[string]AnswerValue) (Score, error) {
	applicable, err := applicableQuestions(content, answers)
	if err != nil {
		return Score{}, err
	}

	perQuestion := make(map[string]int, len(applicable))
	crisis := false
	for _, q := range applicable {
		av, answered := answers[q.Key]
		if !answered {
			if q.Optional {
				continue
			}
			return Score{}, fmt.Errorf("%w: %q", ErrIncompleteInstrument, q.Key)
		}
		if q.Format == FormatFreeText {
			continue // free text carries no score contribution
		}
		sum := 0
		for _, key := range av.OptionKeys {
			opt := q.option(key)
			if opt == nil {
				return Score{}, fmt.Errorf("question %q has no option %q", q.Key, key)
			}
			sum += opt.Score
			if opt.TriggersCrisis {
				crisis = true
			}
		}
		perQuestion[q.Key] = sum
	}

	score := Score{Crisis: crisis}

	switch content.Scoring.Method {
	case MethodSum:
		for _, v := range perQuestion {
			score.Overall += v
		}

	case MethodSubscales:
		score.Subscales = make(map[string]int, len(content.Scoring.Subscales))
		for _, sub := range content.Scoring.Subscales {
			total := 0
			for _, qk := range sub.Questions {
				total += perQuestion[qk]
			}
			score.Subscales[sub.Name] = total
		}
		switch content.Scoring.Combine {
		case CombineSum:
			for _, v := range perQuestion {
				score.Overall += v
			}
		case CombineSumOfSubscales:
			for _, v := range score.Subscales {
				score.Overall += v
			}
		case CombineWeighted:
			weighted := 0.0
			for _, sub := range content.Scoring.Subscales {
				weighted += sub.Weight * float64(score.Subscales[sub.Name])
			}
			score.Overall = int(math.Round(weighted))
		default:
			return Score{}, fmt.Errorf("unknown combine rule %q", content.Scoring.Combine)
		}

	default:
		return Score{}, fmt.Errorf("unknown scoring method %q", content.Scoring.Method)
	}

	return score, nil
}

// NextQuestion returns the next unanswered, applicable question, walking the
// declared order and skipping questions whose askIf predicate evaluates
// false. A nil question means the instrument is complete.
func NextQuestion(content InstrumentContent, answers map[string]AnswerValue) (*Question, error) {
	applicable, err := applicableQuestions(content, answers)
	if err != nil {
		return nil, err
	}
	for i := range applicable {
		if _, answered := answers[applicable[i].Key]; !answered {
			q := applicable[i]
			return &q, nil
		}
	}
	return nil, nil
}

// QuestionByKey looks a question up in the definition; nil when absent.
func (c InstrumentContent) QuestionByKey(key string) *Question {
	for i := range c.Questions {
		if c.Questions[i].Key == key {
			return &c.Questions[i]
		}
	}
	return nil
}

// CrisisFromAnswers re-derives the crisis flag straight from recorded
// answers, bypassing scoring entirely. Reconciliation uses this so a crisis
// selection is detectable even if aggregation failed mid-way.
func CrisisFromAnswers(content InstrumentContent, answers map[string]AnswerValue) bool {
	for _, q := range content.Questions {
		av, ok := answers[q.Key]
		if !ok {
			continue
		}
		for _, key := range av.OptionKeys {
			if opt := q.option(key); opt != nil && opt.TriggersCrisis {
				return true
			}
		}
	}
	return false
}

func applicableQuestions(content InstrumentContent, answers map[string]AnswerValue) ([]Question, error) {
	env := PredicateEnv{Answers: answers}
	out := make([]Question, 0, len(content.Questions))
	for _, q := range content.Questions {
		if q.AskIf != nil {
			ok, err := q.AskIf.Evaluate(env)
			if err != nil {
				return nil, fmt.Errorf("question %q askIf: %w", q.Key, err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, q)
	}
	return out, nil
}
