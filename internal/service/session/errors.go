package session

import "errors"

var (
	ErrSessionNotFound      = errors.New("screening session not found")
	ErrSessionNotActive     = errors.New("screening session is not in progress")
	ErrSessionLocked        = errors.New("screening session is being modified by another writer")
	ErrUnknownQuestion      = errors.New("question does not belong to the current instrument")
	ErrQuestionNotApplicable = errors.New("question is not applicable given prior answers")
	ErrInvalidAnswer        = errors.New("invalid answer")
	ErrInstrumentIncomplete = errors.New("current instrument still has unanswered questions")
	ErrNothingToAdvance     = errors.New("no instrument in progress")
	ErrSessionNotFinished   = errors.New("session still has applicable instruments")
	ErrSkipNotAllowed       = errors.New("flow is mandatory and cannot be skipped")
	ErrInvalidContext       = errors.New("invalid session context")
)
