package screening

import (
	"fmt"
	"slices"
	"strings"
)

// AnswerValue is the tagged payload of one recorded answer. The variant in
// use is keyed by the question's declared format and checked at the
// orchestrator boundary before anything is persisted.
type AnswerValue struct {
	Format     AnswerFormat `json:"format"`
	OptionKeys []string     `json:"optionKeys,omitempty"`
	Text       string       `json:"text,omitempty"`
}

func (v AnswerValue) HasOption(key string) bool {
	return slices.Contains(v.OptionKeys, key)
}

// ValidateAnswer checks v against the question's format: cardinality, option
// membership, and payload shape. It never mutates anything; a failed
// validation leaves no trace.
func ValidateAnswer(q Question, v AnswerValue) error {
	if v.Format != q.Format {
		return fmt.Errorf("answer format %q does not match question format %q", v.Format, q.Format)
	}

	switch q.Format {
	case FormatSingleSelect:
		if len(v.OptionKeys) != 1 {
			return fmt.Errorf("single-select question %q requires exactly one option, got %d", q.Key, len(v.OptionKeys))
		}
		if v.Text != "" {
			return fmt.Errorf("single-select question %q must not carry free text", q.Key)
		}

	case FormatMultiSelect:
		if len(v.OptionKeys) == 0 {
			return fmt.Errorf("multi-select question %q requires at least one option", q.Key)
		}
		seen := make(map[string]struct{}, len(v.OptionKeys))
		for _, k := range v.OptionKeys {
			if _, dup := seen[k]; dup {
				return fmt.Errorf("question %q: option %q selected twice", q.Key, k)
			}
			seen[k] = struct{}{}
		}
		if v.Text != "" {
			return fmt.Errorf("multi-select question %q must not carry free text", q.Key)
		}

	case FormatFreeText:
		if len(v.OptionKeys) > 0 {
			return fmt.Errorf("free-text question %q must not carry option keys", q.Key)
		}
		if strings.TrimSpace(v.Text) == "" {
			return fmt.Errorf("free-text question %q requires a non-empty answer", q.Key)
		}
		return nil

	default:
		return fmt.Errorf("question %q has unknown format %q", q.Key, q.Format)
	}

	for _, k := range v.OptionKeys {
		if q.option(k) == nil {
			return fmt.Errorf("question %q has no option %q", q.Key, k)
		}
	}
	return nil
}

func (q Question) option(key string) *AnswerOption {
	for i := range q.Options {
		if q.Options[i].Key == key {
			return &q.Options[i]
		}
	}
	return nil
}
