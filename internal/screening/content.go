package screening

import (
	"fmt"

	"github.com/google/uuid"
)

// InstrumentContent is the full definition of one instrument version:
// questions, answer options, the scoring rule, and the threshold table.
// It is stored as JSON on the immutable InstrumentVersion row; the engine
// never consults anything outside it.
type InstrumentContent struct {
	Questions  []Question     `json:"questions"`
	Scoring    ScoringRule    `json:"scoring"`
	Thresholds ThresholdTable `json:"thresholds"`
}

type AnswerFormat string

const (
	FormatSingleSelect AnswerFormat = "single_select"
	FormatMultiSelect  AnswerFormat = "multi_select"
	FormatFreeText     AnswerFormat = "free_text"
)

type Question struct {
	Key    string       `json:"key"`
	Text   string       `json:"text"`
	Format AnswerFormat `json:"format"`

	// Hint carries display guidance for clients (e.g. "slider", "dropdown").
	Hint string `json:"hint,omitempty"`

	// Optional marks questions that may remain unanswered at scoring time.
	Optional bool `json:"optional,omitempty"`

	// AskIf skips the question when it evaluates false over prior answers
	// in the same instrument. Nil means always asked.
	AskIf *Predicate `json:"askIf,omitempty"`

	Options []AnswerOption `json:"options,omitempty"`
}

type AnswerOption struct {
	Key   string `json:"key"`
	Text  string `json:"text"`
	Score int    `json:"score"`

	// TriggersCrisis raises the session crisis flag when this option is
	// selected, independent of any numeric score.
	TriggersCrisis bool `json:"triggersCrisis,omitempty"`
}

type ScoringMethod string

const (
	MethodSum       ScoringMethod = "sum"
	MethodSubscales ScoringMethod = "subscales"
)

type CombineRule string

const (
	CombineSum            CombineRule = "sum"
	CombineSumOfSubscales CombineRule = "sum_of_subscales"
	CombineWeighted       CombineRule = "weighted"
)

// ScoringRule declares how answers become a Score. The combination rule is
// part of the instrument definition, never hard-coded in the engine.
type ScoringRule struct {
	Method    ScoringMethod `json:"method"`
	Combine   CombineRule   `json:"combine,omitempty"`
	Subscales []Subscale    `json:"subscales,omitempty"`
}

type Subscale struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
	Weight    float64  `json:"weight,omitempty"`
}

// Threshold maps scores at or above MinScore to Level, until the next entry
// takes over. Entries must be declared in strictly increasing MinScore order.
// Scores below the first entry map to NONE.
type Threshold struct {
	MinScore int                 `json:"minScore"`
	Level    RecommendationLevel `json:"level"`
}

type ThresholdTable []Threshold

// MapScore resolves an overall score to its declared level.
func (t ThresholdTable) MapScore(score int) RecommendationLevel {
	level := LevelNone
	for _, th := range t {
		if score >= th.MinScore {
			level = th.Level
		}
	}
	return level
}

// FlowStep is one instrument slot inside a flow version, bound to a concrete
// instrument version at publish time. SkipIf is evaluated over the scores of
// previously completed instruments in the same session.
type FlowStep struct {
	Instrument          string     `json:"instrument"` // catalog slug, referenced by predicates
	InstrumentVersionID uuid.UUID  `json:"instrumentVersionId"`
	SkipIf              *Predicate `json:"skipIf,omitempty"`
}

// Validate checks an instrument definition at publish time. A definition that
// passes here cannot produce configuration errors at scoring time.
func (c InstrumentContent) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("instrument has no questions")
	}

	seen := make(map[string]struct{}, len(c.Questions))
	for i, q := range c.Questions {
		if q.Key == "" {
			return fmt.Errorf("question %d has no key", i)
		}
		if _, dup := seen[q.Key]; dup {
			return fmt.Errorf("duplicate question key %q", q.Key)
		}
		seen[q.Key] = struct{}{}

		switch q.Format {
		case FormatSingleSelect, FormatMultiSelect:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %q has no options", q.Key)
			}
			optSeen := make(map[string]struct{}, len(q.Options))
			for _, o := range q.Options {
				if o.Key == "" {
					return fmt.Errorf("question %q has an option with no key", q.Key)
				}
				if _, dup := optSeen[o.Key]; dup {
					return fmt.Errorf("question %q has duplicate option key %q", q.Key, o.Key)
				}
				optSeen[o.Key] = struct{}{}
			}
		case FormatFreeText:
			if len(q.Options) > 0 {
				return fmt.Errorf("free-text question %q must not declare options", q.Key)
			}
		default:
			return fmt.Errorf("question %q has unknown format %q", q.Key, q.Format)
		}

		if q.AskIf != nil {
			if err := q.AskIf.validateQuestionScope(seen); err != nil {
				return fmt.Errorf("question %q askIf: %w", q.Key, err)
			}
		}
	}

	if err := c.Scoring.validate(seen); err != nil {
		return fmt.Errorf("scoring rule: %w", err)
	}

	prev := -1 << 31
	for i, th := range c.Thresholds {
		if th.MinScore <= prev {
			return fmt.Errorf("threshold %d: minScore %d not strictly increasing", i, th.MinScore)
		}
		if !th.Level.Valid() {
			return fmt.Errorf("threshold %d: invalid level", i)
		}
		prev = th.MinScore
	}

	return nil
}

func (r ScoringRule) validate(questionKeys map[string]struct{}) error {
	switch r.Method {
	case MethodSum:
		if len(r.Subscales) > 0 {
			return fmt.Errorf("sum method must not declare subscales")
		}
		return nil
	case MethodSubscales:
	default:
		return fmt.Errorf("unknown scoring method %q", r.Method)
	}

	if len(r.Subscales) == 0 {
		return fmt.Errorf("subscales method requires at least one subscale")
	}
	names := make(map[string]struct{}, len(r.Subscales))
	for _, s := range r.Subscales {
		if s.Name == "" {
			return fmt.Errorf("subscale with empty name")
		}
		if _, dup := names[s.Name]; dup {
			return fmt.Errorf("duplicate subscale %q", s.Name)
		}
		names[s.Name] = struct{}{}
		if len(s.Questions) == 0 {
			return fmt.Errorf("subscale %q has no questions", s.Name)
		}
		for _, qk := range s.Questions {
			if _, ok := questionKeys[qk]; !ok {
				return fmt.Errorf("subscale %q references unknown question %q", s.Name, qk)
			}
		}
	}

	switch r.Combine {
	case CombineSum, CombineSumOfSubscales:
	case CombineWeighted:
		for _, s := range r.Subscales {
			if s.Weight == 0 {
				return fmt.Errorf("weighted combine requires a weight on subscale %q", s.Name)
			}
		}
	default:
		return fmt.Errorf("unknown combine rule %q", r.Combine)
	}

	return nil
}

// ValidateSteps checks a flow version's steps at publish time.
func ValidateSteps(steps []FlowStep) error {
	if len(steps) == 0 {
		return fmt.Errorf("flow has no steps")
	}
	prior := make(map[string]struct{}, len(steps))
	for i, st := range steps {
		if st.Instrument == "" {
			return fmt.Errorf("step %d has no instrument slug", i)
		}
		if st.InstrumentVersionID == uuid.Nil {
			return fmt.Errorf("step %d (%s) is not bound to an instrument version", i, st.Instrument)
		}
		if _, dup := prior[st.Instrument]; dup {
			return fmt.Errorf("instrument %q appears twice in flow", st.Instrument)
		}
		if st.SkipIf != nil {
			if err := st.SkipIf.validateFlowScope(prior); err != nil {
				return fmt.Errorf("step %d (%s) skipIf: %w", i, st.Instrument, err)
			}
		}
		prior[st.Instrument] = struct{}{}
	}
	return nil
}
