package screening

import "testing"

func TestValidateAnswer(t *testing.T) {
	selectQ := Question{
		Key:    "mood",
		Format: FormatSingleSelect,
		Options: []AnswerOption{
			{Key: "low", Score: 2},
			{Key: "ok", Score: 0},
		},
	}
	multiQ := Question{
		Key:    "symptoms",
		Format: FormatMultiSelect,
		Options: []AnswerOption{
			{Key: "sleep", Score: 1},
			{Key: "appetite", Score: 1},
		},
	}
	textQ := Question{Key: "notes", Format: FormatFreeText}

	tests := []struct {
		name    string
		q       Question
		v       AnswerValue
		wantErr bool
	}{
		{"valid single select", selectQ, AnswerValue{Format: FormatSingleSelect, OptionKeys: []string{"low"}}, false},
		{"format mismatch", selectQ, AnswerValue{Format: FormatMultiSelect, OptionKeys: []string{"low"}}, true},
		{"single select with two options", selectQ, AnswerValue{Format: FormatSingleSelect, OptionKeys: []string{"low", "ok"}}, true},
		{"single select with no options", selectQ, AnswerValue{Format: FormatSingleSelect}, true},
		{"single select with stray text", selectQ, AnswerValue{Format: FormatSingleSelect, OptionKeys: []string{"low"}, Text: "hi"}, true},
		{"unknown option key", selectQ, AnswerValue{Format: FormatSingleSelect, OptionKeys: []string{"great"}}, true},

		{"valid multi select", multiQ, AnswerValue{Format: FormatMultiSelect, OptionKeys: []string{"sleep", "appetite"}}, false},
		{"multi select empty", multiQ, AnswerValue{Format: FormatMultiSelect}, true},
		{"multi select duplicate option", multiQ, AnswerValue{Format: FormatMultiSelect, OptionKeys: []string{"sleep", "sleep"}}, true},

		{"valid free text", textQ, AnswerValue{Format: FormatFreeText, Text: "sleeping badly"}, false},
		{"free text whitespace only", textQ, AnswerValue{Format: FormatFreeText, Text: "   "}, true},
		{"free text with option keys", textQ, AnswerValue{Format: FormatFreeText, Text: "x", OptionKeys: []string{"a"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswer(tt.q, tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAnswer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
