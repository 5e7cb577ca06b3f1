package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/marlowhealth/compass_backend/config"
	"github.com/marlowhealth/compass_backend/internal/screening"
	"github.com/marlowhealth/compass_backend/internal/service/catalog"
	"github.com/marlowhealth/compass_backend/pkg/database"
)

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Publish the built-in instruments and the standard screening flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			svc := catalog.New(client)

			for _, req := range builtinInstruments() {
				if _, err := svc.PublishInstrument(ctx, req); err != nil {
					return fmt.Errorf("failed to publish instrument %q: %w", req.Slug, err)
				}
				fmt.Printf("Published instrument %s.\n", req.Slug)
			}

			for _, req := range builtinFlows() {
				if _, err := svc.PublishFlow(ctx, req); err != nil {
					return fmt.Errorf("failed to publish flow %q: %w", req.Slug, err)
				}
				fmt.Printf("Published flow %s.\n", req.Slug)
			}

			fmt.Println("Catalog seeded successfully.")
			return nil
		},
	}

	return cmd
}

func frequencyOptions(maxScore int) []screening.AnswerOption {
	labels := []string{
		"Not at all",
		"Several days",
		"More than half the days",
		"Nearly every day",
		"Almost constantly",
		"All of the time",
	}
	keys := []string{"not_at_all", "several_days", "more_than_half", "nearly_every_day", "almost_constantly", "all_the_time"}

	opts := make([]screening.AnswerOption, 0, maxScore+1)
	for i := 0; i <= maxScore; i++ {
		opts = append(opts, screening.AnswerOption{Key: keys[i], Text: labels[i], Score: i})
	}
	return opts
}

func frequencyQuestion(key, text string) screening.Question {
	return screening.Question{
		Key:     key,
		Text:    text,
		Format:  screening.FormatSingleSelect,
		Options: frequencyOptions(3),
	}
}

func builtinInstruments() []catalog.PublishInstrumentRequest {
	strPtr := func(s string) *string { return &s }

	phq9Questions := []screening.Question{
		frequencyQuestion("phq9_1", "Little interest or pleasure in doing things"),
		frequencyQuestion("phq9_2", "Feeling down, depressed, or hopeless"),
		frequencyQuestion("phq9_3", "Trouble falling or staying asleep, or sleeping too much"),
		frequencyQuestion("phq9_4", "Feeling tired or having little energy"),
		frequencyQuestion("phq9_5", "Poor appetite or overeating"),
		frequencyQuestion("phq9_6", "Feeling bad about yourself, or that you are a failure"),
		frequencyQuestion("phq9_7", "Trouble concentrating on things"),
		frequencyQuestion("phq9_8", "Moving or speaking noticeably slowly, or being fidgety or restless"),
		{
			Key:    "phq9_9",
			Text:   "Thoughts that you would be better off dead, or of hurting yourself",
			Format: screening.FormatSingleSelect,
			Options: []screening.AnswerOption{
				{Key: "not_at_all", Text: "Not at all", Score: 0},
				{Key: "several_days", Text: "Several days", Score: 1, TriggersCrisis: true},
				{Key: "more_than_half", Text: "More than half the days", Score: 2, TriggersCrisis: true},
				{Key: "nearly_every_day", Text: "Nearly every day", Score: 3, TriggersCrisis: true},
			},
		},
	}

	gad7Questions := []screening.Question{
		frequencyQuestion("gad7_1", "Feeling nervous, anxious, or on edge"),
		frequencyQuestion("gad7_2", "Not being able to stop or control worrying"),
		frequencyQuestion("gad7_3", "Worrying too much about different things"),
		frequencyQuestion("gad7_4", "Trouble relaxing"),
		frequencyQuestion("gad7_5", "Being so restless that it is hard to sit still"),
		frequencyQuestion("gad7_6", "Becoming easily annoyed or irritable"),
		frequencyQuestion("gad7_7", "Feeling afraid as if something awful might happen"),
	}

	who5Text := []string{
		"I have felt cheerful and in good spirits",
		"I have felt calm and relaxed",
		"I have felt active and vigorous",
		"I woke up feeling fresh and rested",
		"My daily life has been filled with things that interest me",
	}
	who5Questions := make([]screening.Question, 0, len(who5Text))
	for i, text := range who5Text {
		who5Questions = append(who5Questions, screening.Question{
			Key:    fmt.Sprintf("who5_%d", i+1),
			Text:   text,
			Format: screening.FormatSingleSelect,
			Options: []screening.AnswerOption{
				{Key: "at_no_time", Text: "At no time", Score: 5},
				{Key: "some_of_the_time", Text: "Some of the time", Score: 4},
				{Key: "less_than_half", Text: "Less than half of the time", Score: 3},
				{Key: "more_than_half", Text: "More than half of the time", Score: 2},
				{Key: "most_of_the_time", Text: "Most of the time", Score: 1},
				{Key: "all_of_the_time", Text: "All of the time", Score: 0},
			},
		})
	}

	burnoutQuestions := []screening.Question{
		frequencyQuestion("bo_ex_1", "I feel emotionally drained by my work or studies"),
		frequencyQuestion("bo_ex_2", "I feel used up at the end of the day"),
		frequencyQuestion("bo_ex_3", "I feel tired when I get up and have to face another day"),
		frequencyQuestion("bo_dp_1", "I have become less interested in my work or studies"),
		frequencyQuestion("bo_dp_2", "I have become more cynical about whether my work contributes anything"),
		frequencyQuestion("bo_ea_1", "I doubt the significance of what I do"),
		frequencyQuestion("bo_ea_2", "I feel I am not effective at getting things done"),
	}

	return []catalog.PublishInstrumentRequest{
		{
			Slug:        "phq-9",
			Name:        "Patient Health Questionnaire-9",
			Description: strPtr("Nine-item depression severity screen over the last two weeks."),
			FocusArea:   "depression",
			Content: screening.InstrumentContent{
				Questions: phq9Questions,
				Scoring:   screening.ScoringRule{Method: screening.MethodSum},
				Thresholds: screening.ThresholdTable{
					{MinScore: 5, Level: screening.LevelPeer},
					{MinScore: 10, Level: screening.LevelCoach},
					{MinScore: 15, Level: screening.LevelClinician},
					{MinScore: 20, Level: screening.LevelPsychiatrist},
				},
			},
		},
		{
			Slug:        "gad-7",
			Name:        "Generalized Anxiety Disorder-7",
			Description: strPtr("Seven-item anxiety severity screen over the last two weeks."),
			FocusArea:   "anxiety",
			Content: screening.InstrumentContent{
				Questions: gad7Questions,
				Scoring:   screening.ScoringRule{Method: screening.MethodSum},
				Thresholds: screening.ThresholdTable{
					{MinScore: 5, Level: screening.LevelPeer},
					{MinScore: 10, Level: screening.LevelCoach},
					{MinScore: 15, Level: screening.LevelClinician},
				},
			},
		},
		{
			Slug:        "who-5",
			Name:        "WHO-5 Well-Being Index",
			Description: strPtr("Five-item well-being index over the last two weeks, reverse scored so higher means lower well-being."),
			FocusArea:   "wellbeing",
			Content: screening.InstrumentContent{
				Questions: who5Questions,
				Scoring:   screening.ScoringRule{Method: screening.MethodSum},
				Thresholds: screening.ThresholdTable{
					{MinScore: 8, Level: screening.LevelPeer},
					{MinScore: 13, Level: screening.LevelPeerCoach},
					{MinScore: 18, Level: screening.LevelCoach},
				},
			},
		},
		{
			Slug:        "burnout-short",
			Name:        "Burnout Short Form",
			Description: strPtr("Short burnout screen with exhaustion, disengagement, and efficacy subscales."),
			FocusArea:   "burnout",
			Content: screening.InstrumentContent{
				Questions: burnoutQuestions,
				Scoring: screening.ScoringRule{
					Method:  screening.MethodSubscales,
					Combine: screening.CombineSumOfSubscales,
					Subscales: []screening.Subscale{
						{Name: "exhaustion", Questions: []string{"bo_ex_1", "bo_ex_2", "bo_ex_3"}},
						{Name: "disengagement", Questions: []string{"bo_dp_1", "bo_dp_2"}},
						{Name: "efficacy", Questions: []string{"bo_ea_1", "bo_ea_2"}},
					},
				},
				Thresholds: screening.ThresholdTable{
					{MinScore: 6, Level: screening.LevelPeer},
					{MinScore: 11, Level: screening.LevelCoach},
					{MinScore: 16, Level: screening.LevelCoachClinician},
				},
			},
		},
	}
}

func builtinFlows() []catalog.PublishFlowRequest {
	strPtr := func(s string) *string { return &s }

	return []catalog.PublishFlowRequest{
		{
			Slug:        "standard-triage",
			Name:        "Standard Triage",
			Description: strPtr("Anxiety screen first; the depression screen is skipped for low-scoring, non-crisis sessions."),
			Mandatory:   true,
			Steps: []catalog.FlowStepInput{
				{InstrumentSlug: "gad-7"},
				{
					InstrumentSlug: "phq-9",
					SkipIf: &screening.Predicate{
						Type: screening.PredAll,
						Of: []screening.Predicate{
							{Type: screening.PredScoreBelow, Instrument: "gad-7", Threshold: 5},
							{Type: screening.PredNot, Of: []screening.Predicate{{Type: screening.PredCrisis}}},
						},
					},
				},
			},
		},
		{
			Slug:        "wellbeing-check",
			Name:        "Well-Being Check",
			Description: strPtr("Optional well-being and burnout check-in for standalone sessions."),
			Mandatory:   false,
			Steps: []catalog.FlowStepInput{
				{InstrumentSlug: "who-5"},
				{InstrumentSlug: "burnout-short"},
			},
		},
	}
}
