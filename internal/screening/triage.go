package screening

// CareCategory is the care assignment a triage record places on a patient
// order.
type CareCategory string

const (
	CareSubclinical   CareCategory = "SUBCLINICAL"
	CareCoaching      CareCategory = "COACHING"
	CarePsychotherapy CareCategory = "PSYCHOTHERAPY"
	CarePsychiatry    CareCategory = "PSYCHIATRY"
	CareCrisis        CareCategory = "CRISIS_CARE"
)

func (c CareCategory) Valid() bool {
	switch c {
	case CareSubclinical, CareCoaching, CarePsychotherapy, CarePsychiatry, CareCrisis:
		return true
	}
	return false
}

// SafetyPlanningStatus tracks whether a safety plan is indicated for the
// order after triage.
type SafetyPlanningStatus string

const (
	SafetyNotIndicated SafetyPlanningStatus = "NOT_INDICATED"
	SafetyIndicated    SafetyPlanningStatus = "INDICATED"
)

func (s SafetyPlanningStatus) Valid() bool {
	return s == SafetyNotIndicated || s == SafetyIndicated
}

// TriageSource records provenance: computed from session evidence, or set by
// a clinician override.
type TriageSource string

const (
	SourceSystemComputed    TriageSource = "SYSTEM_COMPUTED"
	SourceClinicianOverride TriageSource = "CLINICIAN_OVERRIDE"
)

// CareCategoryForLevel maps an instrument recommendation level to the care
// category a computed triage entry assigns.
func CareCategoryForLevel(level RecommendationLevel) CareCategory {
	switch {
	case level >= LevelCrisis:
		return CareCrisis
	case level >= LevelClinicianPsychiatrist:
		return CarePsychiatry
	case level >= LevelCoachClinician:
		return CarePsychotherapy
	case level >= LevelPeer:
		return CareCoaching
	default:
		return CareSubclinical
	}
}

// ComputedTriage derives the order-level care assignment from aggregated
// session evidence: the category of the top recommendation (crisis wins), and
// safety planning indicated whenever the crisis flag is raised.
func ComputedTriage(evidence EvidenceScores) (CareCategory, SafetyPlanningStatus) {
	safety := SafetyNotIndicated
	if evidence.Crisis {
		return CareCrisis, SafetyIndicated
	}
	if evidence.Top == nil {
		return CareSubclinical, safety
	}
	return CareCategoryForLevel(evidence.Top.Level), safety
}
