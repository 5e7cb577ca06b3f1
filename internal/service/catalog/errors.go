package catalog

import "errors"

var (
	ErrInstrumentNotFound = errors.New("instrument not found")
	ErrFlowNotFound       = errors.New("screening flow not found")
	ErrVersionNotFound    = errors.New("catalog version not found")
	ErrNoPublishedVersion = errors.New("catalog entry has no published version")
	ErrInvalidContent     = errors.New("invalid catalog content")
)
