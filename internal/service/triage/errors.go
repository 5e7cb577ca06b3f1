package triage

import "errors"

var (
	ErrTriageNotFound      = errors.New("no triage recorded for this patient order")
	ErrOverrideNeedsReason = errors.New("clinician override requires a reason")
	ErrInvalidCareCategory = errors.New("invalid care category")
	ErrOrderLocked         = errors.New("patient order is being triaged by another writer")
)
