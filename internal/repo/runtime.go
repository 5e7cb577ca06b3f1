// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/answer"
	"github.com/marlowhealth/compass_backend/internal/repo/flow"
	"github.com/marlowhealth/compass_backend/internal/repo/flowversion"
	"github.com/marlowhealth/compass_backend/internal/repo/instrument"
	"github.com/marlowhealth/compass_backend/internal/repo/instrumentversion"
	"github.com/marlowhealth/compass_backend/internal/repo/screeningsession"
	"github.com/marlowhealth/compass_backend/internal/repo/sessioninstrument"
	"github.com/marlowhealth/compass_backend/internal/repo/triage"
	"github.com/marlowhealth/compass_backend/internal/repo/triagegroup"
	"github.com/marlowhealth/compass_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerMixin := schema.Answer{}.Mixin()
	answerMixinFields0 := answerMixin[0].Fields()
	_ = answerMixinFields0
	answerMixinFields1 := answerMixin[1].Fields()
	_ = answerMixinFields1
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerMixinFields1[0].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	// answerDescQuestionKey is the schema descriptor for question_key field.
	answerDescQuestionKey := answerFields[1].Descriptor()
	// answer.QuestionKeyValidator is a validator for the "question_key" field. It is called by the builders before save.
	answer.QuestionKeyValidator = func() func(string) error {
		validators := answerDescQuestionKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(question_key string) error {
			for _, fn := range fns {
				if err := fn(question_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// answerDescID is the schema descriptor for id field.
	answerDescID := answerMixinFields0[0].Descriptor()
	// answer.DefaultID holds the default value on creation for the id field.
	answer.DefaultID = answerDescID.Default.(func() uuid.UUID)
	flowMixin := schema.Flow{}.Mixin()
	flowMixinFields0 := flowMixin[0].Fields()
	_ = flowMixinFields0
	flowMixinFields1 := flowMixin[1].Fields()
	_ = flowMixinFields1
	flowFields := schema.Flow{}.Fields()
	_ = flowFields
	// flowDescCreatedAt is the schema descriptor for created_at field.
	flowDescCreatedAt := flowMixinFields1[0].Descriptor()
	// flow.DefaultCreatedAt holds the default value on creation for the created_at field.
	flow.DefaultCreatedAt = flowDescCreatedAt.Default.(func() time.Time)
	// flowDescUpdatedAt is the schema descriptor for updated_at field.
	flowDescUpdatedAt := flowMixinFields1[1].Descriptor()
	// flow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	flow.DefaultUpdatedAt = flowDescUpdatedAt.Default.(func() time.Time)
	// flow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	flow.UpdateDefaultUpdatedAt = flowDescUpdatedAt.UpdateDefault.(func() time.Time)
	// flowDescSlug is the schema descriptor for slug field.
	flowDescSlug := flowFields[0].Descriptor()
	// flow.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	flow.SlugValidator = func() func(string) error {
		validators := flowDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// flowDescName is the schema descriptor for name field.
	flowDescName := flowFields[1].Descriptor()
	// flow.NameValidator is a validator for the "name" field. It is called by the builders before save.
	flow.NameValidator = func() func(string) error {
		validators := flowDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// flowDescIsActive is the schema descriptor for is_active field.
	flowDescIsActive := flowFields[4].Descriptor()
	// flow.DefaultIsActive holds the default value on creation for the is_active field.
	flow.DefaultIsActive = flowDescIsActive.Default.(bool)
	// flowDescID is the schema descriptor for id field.
	flowDescID := flowMixinFields0[0].Descriptor()
	// flow.DefaultID holds the default value on creation for the id field.
	flow.DefaultID = flowDescID.Default.(func() uuid.UUID)
	flowversionMixin := schema.FlowVersion{}.Mixin()
	flowversionMixinFields0 := flowversionMixin[0].Fields()
	_ = flowversionMixinFields0
	flowversionMixinFields1 := flowversionMixin[1].Fields()
	_ = flowversionMixinFields1
	flowversionFields := schema.FlowVersion{}.Fields()
	_ = flowversionFields
	// flowversionDescCreatedAt is the schema descriptor for created_at field.
	flowversionDescCreatedAt := flowversionMixinFields1[0].Descriptor()
	// flowversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	flowversion.DefaultCreatedAt = flowversionDescCreatedAt.Default.(func() time.Time)
	// flowversionDescVersion is the schema descriptor for version field.
	flowversionDescVersion := flowversionFields[1].Descriptor()
	// flowversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	flowversion.VersionValidator = flowversionDescVersion.Validators[0].(func(int) error)
	// flowversionDescMandatory is the schema descriptor for mandatory field.
	flowversionDescMandatory := flowversionFields[2].Descriptor()
	// flowversion.DefaultMandatory holds the default value on creation for the mandatory field.
	flowversion.DefaultMandatory = flowversionDescMandatory.Default.(bool)
	// flowversionDescID is the schema descriptor for id field.
	flowversionDescID := flowversionMixinFields0[0].Descriptor()
	// flowversion.DefaultID holds the default value on creation for the id field.
	flowversion.DefaultID = flowversionDescID.Default.(func() uuid.UUID)
	instrumentMixin := schema.Instrument{}.Mixin()
	instrumentMixinFields0 := instrumentMixin[0].Fields()
	_ = instrumentMixinFields0
	instrumentMixinFields1 := instrumentMixin[1].Fields()
	_ = instrumentMixinFields1
	instrumentFields := schema.Instrument{}.Fields()
	_ = instrumentFields
	// instrumentDescCreatedAt is the schema descriptor for created_at field.
	instrumentDescCreatedAt := instrumentMixinFields1[0].Descriptor()
	// instrument.DefaultCreatedAt holds the default value on creation for the created_at field.
	instrument.DefaultCreatedAt = instrumentDescCreatedAt.Default.(func() time.Time)
	// instrumentDescUpdatedAt is the schema descriptor for updated_at field.
	instrumentDescUpdatedAt := instrumentMixinFields1[1].Descriptor()
	// instrument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	instrument.DefaultUpdatedAt = instrumentDescUpdatedAt.Default.(func() time.Time)
	// instrument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	instrument.UpdateDefaultUpdatedAt = instrumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// instrumentDescSlug is the schema descriptor for slug field.
	instrumentDescSlug := instrumentFields[0].Descriptor()
	// instrument.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	instrument.SlugValidator = func() func(string) error {
		validators := instrumentDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// instrumentDescName is the schema descriptor for name field.
	instrumentDescName := instrumentFields[1].Descriptor()
	// instrument.NameValidator is a validator for the "name" field. It is called by the builders before save.
	instrument.NameValidator = func() func(string) error {
		validators := instrumentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// instrumentDescFocusArea is the schema descriptor for focus_area field.
	instrumentDescFocusArea := instrumentFields[3].Descriptor()
	// instrument.FocusAreaValidator is a validator for the "focus_area" field. It is called by the builders before save.
	instrument.FocusAreaValidator = func() func(string) error {
		validators := instrumentDescFocusArea.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(focus_area string) error {
			for _, fn := range fns {
				if err := fn(focus_area); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// instrumentDescIsActive is the schema descriptor for is_active field.
	instrumentDescIsActive := instrumentFields[5].Descriptor()
	// instrument.DefaultIsActive holds the default value on creation for the is_active field.
	instrument.DefaultIsActive = instrumentDescIsActive.Default.(bool)
	// instrumentDescID is the schema descriptor for id field.
	instrumentDescID := instrumentMixinFields0[0].Descriptor()
	// instrument.DefaultID holds the default value on creation for the id field.
	instrument.DefaultID = instrumentDescID.Default.(func() uuid.UUID)
	instrumentversionMixin := schema.InstrumentVersion{}.Mixin()
	instrumentversionMixinFields0 := instrumentversionMixin[0].Fields()
	_ = instrumentversionMixinFields0
	instrumentversionMixinFields1 := instrumentversionMixin[1].Fields()
	_ = instrumentversionMixinFields1
	instrumentversionFields := schema.InstrumentVersion{}.Fields()
	_ = instrumentversionFields
	// instrumentversionDescCreatedAt is the schema descriptor for created_at field.
	instrumentversionDescCreatedAt := instrumentversionMixinFields1[0].Descriptor()
	// instrumentversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	instrumentversion.DefaultCreatedAt = instrumentversionDescCreatedAt.Default.(func() time.Time)
	// instrumentversionDescVersion is the schema descriptor for version field.
	instrumentversionDescVersion := instrumentversionFields[1].Descriptor()
	// instrumentversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	instrumentversion.VersionValidator = instrumentversionDescVersion.Validators[0].(func(int) error)
	// instrumentversionDescID is the schema descriptor for id field.
	instrumentversionDescID := instrumentversionMixinFields0[0].Descriptor()
	// instrumentversion.DefaultID holds the default value on creation for the id field.
	instrumentversion.DefaultID = instrumentversionDescID.Default.(func() uuid.UUID)
	screeningsessionMixin := schema.ScreeningSession{}.Mixin()
	screeningsessionMixinFields0 := screeningsessionMixin[0].Fields()
	_ = screeningsessionMixinFields0
	screeningsessionMixinFields1 := screeningsessionMixin[1].Fields()
	_ = screeningsessionMixinFields1
	screeningsessionFields := schema.ScreeningSession{}.Fields()
	_ = screeningsessionFields
	// screeningsessionDescCreatedAt is the schema descriptor for created_at field.
	screeningsessionDescCreatedAt := screeningsessionMixinFields1[0].Descriptor()
	// screeningsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	screeningsession.DefaultCreatedAt = screeningsessionDescCreatedAt.Default.(func() time.Time)
	// screeningsessionDescUpdatedAt is the schema descriptor for updated_at field.
	screeningsessionDescUpdatedAt := screeningsessionMixinFields1[1].Descriptor()
	// screeningsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	screeningsession.DefaultUpdatedAt = screeningsessionDescUpdatedAt.Default.(func() time.Time)
	// screeningsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	screeningsession.UpdateDefaultUpdatedAt = screeningsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// screeningsessionDescSkipReason is the schema descriptor for skip_reason field.
	screeningsessionDescSkipReason := screeningsessionFields[8].Descriptor()
	// screeningsession.SkipReasonValidator is a validator for the "skip_reason" field. It is called by the builders before save.
	screeningsession.SkipReasonValidator = screeningsessionDescSkipReason.Validators[0].(func(string) error)
	// screeningsessionDescCrisis is the schema descriptor for crisis field.
	screeningsessionDescCrisis := screeningsessionFields[12].Descriptor()
	// screeningsession.DefaultCrisis holds the default value on creation for the crisis field.
	screeningsession.DefaultCrisis = screeningsessionDescCrisis.Default.(bool)
	// screeningsessionDescID is the schema descriptor for id field.
	screeningsessionDescID := screeningsessionMixinFields0[0].Descriptor()
	// screeningsession.DefaultID holds the default value on creation for the id field.
	screeningsession.DefaultID = screeningsessionDescID.Default.(func() uuid.UUID)
	sessioninstrumentMixin := schema.SessionInstrument{}.Mixin()
	sessioninstrumentMixinFields0 := sessioninstrumentMixin[0].Fields()
	_ = sessioninstrumentMixinFields0
	sessioninstrumentMixinFields1 := sessioninstrumentMixin[1].Fields()
	_ = sessioninstrumentMixinFields1
	sessioninstrumentFields := schema.SessionInstrument{}.Fields()
	_ = sessioninstrumentFields
	// sessioninstrumentDescCreatedAt is the schema descriptor for created_at field.
	sessioninstrumentDescCreatedAt := sessioninstrumentMixinFields1[0].Descriptor()
	// sessioninstrument.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessioninstrument.DefaultCreatedAt = sessioninstrumentDescCreatedAt.Default.(func() time.Time)
	// sessioninstrumentDescUpdatedAt is the schema descriptor for updated_at field.
	sessioninstrumentDescUpdatedAt := sessioninstrumentMixinFields1[1].Descriptor()
	// sessioninstrument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessioninstrument.DefaultUpdatedAt = sessioninstrumentDescUpdatedAt.Default.(func() time.Time)
	// sessioninstrument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessioninstrument.UpdateDefaultUpdatedAt = sessioninstrumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessioninstrumentDescPosition is the schema descriptor for position field.
	sessioninstrumentDescPosition := sessioninstrumentFields[2].Descriptor()
	// sessioninstrument.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	sessioninstrument.PositionValidator = sessioninstrumentDescPosition.Validators[0].(func(int) error)
	// sessioninstrumentDescCompleted is the schema descriptor for completed field.
	sessioninstrumentDescCompleted := sessioninstrumentFields[3].Descriptor()
	// sessioninstrument.DefaultCompleted holds the default value on creation for the completed field.
	sessioninstrument.DefaultCompleted = sessioninstrumentDescCompleted.Default.(bool)
	// sessioninstrumentDescSkipped is the schema descriptor for skipped field.
	sessioninstrumentDescSkipped := sessioninstrumentFields[4].Descriptor()
	// sessioninstrument.DefaultSkipped holds the default value on creation for the skipped field.
	sessioninstrument.DefaultSkipped = sessioninstrumentDescSkipped.Default.(bool)
	// sessioninstrumentDescBelowScoringThreshold is the schema descriptor for below_scoring_threshold field.
	sessioninstrumentDescBelowScoringThreshold := sessioninstrumentFields[5].Descriptor()
	// sessioninstrument.DefaultBelowScoringThreshold holds the default value on creation for the below_scoring_threshold field.
	sessioninstrument.DefaultBelowScoringThreshold = sessioninstrumentDescBelowScoringThreshold.Default.(bool)
	// sessioninstrumentDescCrisis is the schema descriptor for crisis field.
	sessioninstrumentDescCrisis := sessioninstrumentFields[6].Descriptor()
	// sessioninstrument.DefaultCrisis holds the default value on creation for the crisis field.
	sessioninstrument.DefaultCrisis = sessioninstrumentDescCrisis.Default.(bool)
	// sessioninstrumentDescID is the schema descriptor for id field.
	sessioninstrumentDescID := sessioninstrumentMixinFields0[0].Descriptor()
	// sessioninstrument.DefaultID holds the default value on creation for the id field.
	sessioninstrument.DefaultID = sessioninstrumentDescID.Default.(func() uuid.UUID)
	triageMixin := schema.Triage{}.Mixin()
	triageMixinFields0 := triageMixin[0].Fields()
	_ = triageMixinFields0
	triageMixinFields1 := triageMixin[1].Fields()
	_ = triageMixinFields1
	triageFields := schema.Triage{}.Fields()
	_ = triageFields
	// triageDescCreatedAt is the schema descriptor for created_at field.
	triageDescCreatedAt := triageMixinFields1[0].Descriptor()
	// triage.DefaultCreatedAt holds the default value on creation for the created_at field.
	triage.DefaultCreatedAt = triageDescCreatedAt.Default.(func() time.Time)
	// triageDescFocusArea is the schema descriptor for focus_area field.
	triageDescFocusArea := triageFields[1].Descriptor()
	// triage.FocusAreaValidator is a validator for the "focus_area" field. It is called by the builders before save.
	triage.FocusAreaValidator = func() func(string) error {
		validators := triageDescFocusArea.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(focus_area string) error {
			for _, fn := range fns {
				if err := fn(focus_area); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// triageDescID is the schema descriptor for id field.
	triageDescID := triageMixinFields0[0].Descriptor()
	// triage.DefaultID holds the default value on creation for the id field.
	triage.DefaultID = triageDescID.Default.(func() uuid.UUID)
	triagegroupMixin := schema.TriageGroup{}.Mixin()
	triagegroupMixinFields0 := triagegroupMixin[0].Fields()
	_ = triagegroupMixinFields0
	triagegroupMixinFields1 := triagegroupMixin[1].Fields()
	_ = triagegroupMixinFields1
	triagegroupFields := schema.TriageGroup{}.Fields()
	_ = triagegroupFields
	// triagegroupDescCreatedAt is the schema descriptor for created_at field.
	triagegroupDescCreatedAt := triagegroupMixinFields1[0].Descriptor()
	// triagegroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	triagegroup.DefaultCreatedAt = triagegroupDescCreatedAt.Default.(func() time.Time)
	// triagegroupDescID is the schema descriptor for id field.
	triagegroupDescID := triagegroupMixinFields0[0].Descriptor()
	// triagegroup.DefaultID holds the default value on creation for the id field.
	triagegroup.DefaultID = triagegroupDescID.Default.(func() uuid.UUID)
}
