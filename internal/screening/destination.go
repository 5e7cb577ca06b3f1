package screening

import (
	"errors"
	"fmt"
)

// ContextKind discriminates where a session originated. It selects among
// context-appropriate destinations in the routing table.
type ContextKind string

const (
	ContextPatientOrder ContextKind = "patient_order"
	ContextGroupSession ContextKind = "group_session"
	ContextCourseUnit   ContextKind = "course_unit"
	ContextStandalone   ContextKind = "standalone"
)

var allContextKinds = []ContextKind{
	ContextPatientOrder, ContextGroupSession, ContextCourseUnit, ContextStandalone,
}

func (k ContextKind) Valid() bool {
	switch k {
	case ContextPatientOrder, ContextGroupSession, ContextCourseUnit, ContextStandalone:
		return true
	}
	return false
}

// DestinationKind is the closed set of places a completed session can be
// routed to.
type DestinationKind string

const (
	DestCrisisResources   DestinationKind = "CRISIS_RESOURCES"
	DestContentList       DestinationKind = "CONTENT_LIST"
	DestProviderList      DestinationKind = "PROVIDER_LIST"
	DestClinicalScreening DestinationKind = "IC_PATIENT_CLINICAL_SCREENING"
	DestClinicianReview   DestinationKind = "CLINICIAN_REVIEW"
)

// Destination is the terminal routing decision plus a context payload the
// caller uses to render the hand-off (content tag, acuity band, etc.).
type Destination struct {
	Kind    DestinationKind   `json:"kind"`
	Context map[string]string `json:"context,omitempty"`
}

// ErrNoDestinationMapping marks a hole in the routing table. It is a
// configuration error: the table is validated total at startup, so hitting
// this at runtime fails the single session, never the service.
var ErrNoDestinationMapping = errors.New("no destination mapping")

// acuityBand buckets recommendation levels for routing. Crisis is handled
// before banding; insufficient covers sessions with no scored instrument.
type acuityBand string

const (
	bandInsufficient acuityBand = "insufficient"
	bandNone         acuityBand = "none"
	bandSelfDirected acuityBand = "self_directed" // PEER .. COACH
	bandClinical     acuityBand = "clinical"      // COACH_CLINICIAN .. PSYCHIATRIST
	bandCrisis       acuityBand = "crisis"
)

var allBands = []acuityBand{bandInsufficient, bandNone, bandSelfDirected, bandClinical, bandCrisis}

func bandOf(level RecommendationLevel) acuityBand {
	switch {
	case level >= LevelCrisis:
		return bandCrisis
	case level >= LevelCoachClinician:
		return bandClinical
	case level >= LevelPeer:
		return bandSelfDirected
	default:
		return bandNone
	}
}

type routeKey struct {
	band acuityBand
	ctx  ContextKind
}

// routingTable must be total over allBands x allContextKinds; holes are
// caught by ValidateRoutingTable at startup. Crisis rows exist for
// completeness but Route short-circuits to CRISIS_RESOURCES before lookup.
var routingTable = map[routeKey]DestinationKind{
	{bandCrisis, ContextPatientOrder}: DestCrisisResources,
	{bandCrisis, ContextGroupSession}: DestCrisisResources,
	{bandCrisis, ContextCourseUnit}:   DestCrisisResources,
	{bandCrisis, ContextStandalone}:   DestCrisisResources,

	{bandClinical, ContextPatientOrder}: DestClinicalScreening,
	{bandClinical, ContextGroupSession}: DestProviderList,
	{bandClinical, ContextCourseUnit}:   DestProviderList,
	{bandClinical, ContextStandalone}:   DestProviderList,

	{bandSelfDirected, ContextPatientOrder}: DestClinicalScreening,
	{bandSelfDirected, ContextGroupSession}: DestContentList,
	{bandSelfDirected, ContextCourseUnit}:   DestContentList,
	{bandSelfDirected, ContextStandalone}:   DestContentList,

	{bandNone, ContextPatientOrder}: DestClinicianReview,
	{bandNone, ContextGroupSession}: DestContentList,
	{bandNone, ContextCourseUnit}:   DestContentList,
	{bandNone, ContextStandalone}:   DestContentList,

	// No scored instrument: never NONE. Care coordination escalates to a
	// clinician; everyone else gets general content.
	{bandInsufficient, ContextPatientOrder}: DestClinicianReview,
	{bandInsufficient, ContextGroupSession}: DestContentList,
	{bandInsufficient, ContextCourseUnit}:   DestContentList,
	{bandInsufficient, ContextStandalone}:   DestContentList,
}

// ValidateRoutingTable confirms the table is total. Called once at startup;
// a hole here is fatal before any session can reach it.
func ValidateRoutingTable() error {
	for _, b := range allBands {
		for _, c := range allContextKinds {
			if _, ok := routingTable[routeKey{b, c}]; !ok {
				return fmt.Errorf("%w for band %q in context %q", ErrNoDestinationMapping, b, c)
			}
		}
	}
	return nil
}

// Route maps aggregated evidence and session context to a destination. Pure
// and total: same inputs always yield the same destination, and crisis wins
// over everything regardless of the numeric top level.
func Route(evidence EvidenceScores, ctx ContextKind) (Destination, error) {
	if !ctx.Valid() {
		return Destination{}, fmt.Errorf("unknown session context %q", ctx)
	}

	if evidence.Crisis {
		return Destination{
			Kind:    DestCrisisResources,
			Context: map[string]string{"reason": "crisis_indicated"},
		}, nil
	}

	band := bandInsufficient
	payload := map[string]string{}
	if evidence.Top != nil {
		band = bandOf(evidence.Top.Level)
		payload["level"] = evidence.Top.Level.String()
		payload["instrument"] = evidence.Top.Instrument
	} else {
		payload["reason"] = "insufficient_evidence"
	}

	kind, ok := routingTable[routeKey{band, ctx}]
	if !ok {
		return Destination{}, fmt.Errorf("%w for band %q in context %q", ErrNoDestinationMapping, band, ctx)
	}

	return Destination{Kind: kind, Context: payload}, nil
}
