package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/marlowhealth/compass_backend/internal/screening"
	"github.com/marlowhealth/compass_backend/internal/service/catalog"
	"github.com/marlowhealth/compass_backend/internal/service/session"
	pasetotoken "github.com/marlowhealth/compass_backend/pkg/paseto"
)

type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// POST /screening-sessions
func (h *SessionHandler) Create(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return fiber.ErrUnauthorized
	}

	var body struct {
		SubjectID      string         `json:"subject_id"`
		FlowSlug       string         `json:"flow_slug"`
		ContextKind    string         `json:"context_kind"`
		PatientOrderID *string        `json:"patient_order_id"`
		GroupSessionID *string        `json:"group_session_id"`
		CourseUnitID   *string        `json:"course_unit_id"`
		Metadata       map[string]any `json:"metadata"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FlowSlug == "" {
		return badRequest(c, "flow_slug is required")
	}

	subjectID := claims.AccountID
	if body.SubjectID != "" {
		parsed, err := uuid.Parse(body.SubjectID)
		if err != nil {
			return badRequest(c, "invalid subject_id")
		}
		subjectID = parsed
	}

	kind := screening.ContextStandalone
	if body.ContextKind != "" {
		kind = screening.ContextKind(body.ContextKind)
	}

	req := session.CreateRequest{
		SubjectID:   subjectID,
		InitiatorID: claims.AccountID,
		FlowSlug:    body.FlowSlug,
		ContextKind: kind,
		Metadata:    body.Metadata,
	}

	var err error
	if req.PatientOrderID, err = parseOptionalUUID(body.PatientOrderID); err != nil {
		return badRequest(c, "invalid patient_order_id")
	}
	if req.GroupSessionID, err = parseOptionalUUID(body.GroupSessionID); err != nil {
		return badRequest(c, "invalid group_session_id")
	}
	if req.CourseUnitID, err = parseOptionalUUID(body.CourseUnitID); err != nil {
		return badRequest(c, "invalid course_unit_id")
	}

	sess, err := h.svc.Create(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidContext):
			return badRequest(c, err.Error())
		case errors.Is(err, catalog.ErrFlowNotFound), errors.Is(err, catalog.ErrNoPublishedVersion):
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return created(c, sess)
}

// GET /screening-sessions/:id
func (h *SessionHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	sess, err := h.svc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, sess)
}

// GET /screening-sessions/:id/result
func (h *SessionHandler) Result(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	res, err := h.svc.Result(c.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, res)
}

// GET /screening-sessions/:id/next-question
func (h *SessionHandler) NextQuestion(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	res, err := h.svc.NextQuestion(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return ok(c, res)
}

// POST /screening-sessions/:id/answers
func (h *SessionHandler) SubmitAnswer(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return fiber.ErrUnauthorized
	}

	var body struct {
		QuestionKey string   `json:"question_key"`
		Format      string   `json:"format"`
		OptionKeys  []string `json:"option_keys"`
		Text        string   `json:"text"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.QuestionKey == "" {
		return badRequest(c, "question_key is required")
	}

	res, err := h.svc.SubmitAnswer(c.Context(), id, session.SubmitAnswerRequest{
		QuestionKey: body.QuestionKey,
		Value: screening.AnswerValue{
			Format:     screening.AnswerFormat(body.Format),
			OptionKeys: body.OptionKeys,
			Text:       body.Text,
		},
		RecordedBy: claims.AccountID,
	})
	if err != nil {
		return h.mapError(c, err)
	}
	return ok(c, res)
}

// POST /screening-sessions/:id/advance
func (h *SessionHandler) Advance(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	res, err := h.svc.Advance(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return ok(c, res)
}

// POST /screening-sessions/:id/complete
func (h *SessionHandler) Complete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	res, err := h.svc.Complete(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return ok(c, res)
}

// POST /screening-sessions/:id/skip
func (h *SessionHandler) Skip(c fiber.Ctx) error {
	return h.skip(c, false)
}

// POST /screening-sessions/:id/force-skip (requires the force_skip action)
func (h *SessionHandler) ForceSkip(c fiber.Ctx) error {
	return h.skip(c, true)
}

func (h *SessionHandler) skip(c fiber.Ctx, force bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	sess, err := h.svc.Skip(c.Context(), id, session.SkipRequest{
		ForceSkip: force,
		Reason:    body.Reason,
	})
	if err != nil {
		if errors.Is(err, session.ErrSkipNotAllowed) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		return h.mapError(c, err)
	}
	return ok(c, sess)
}

// GET /screening-sessions (own sessions)
func (h *SessionHandler) ListMine(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return fiber.ErrUnauthorized
	}

	sessions, err := h.svc.ListBySubject(c.Context(), claims.AccountID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, sessions)
}

func (h *SessionHandler) mapError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrSessionNotActive),
		errors.Is(err, session.ErrInstrumentIncomplete),
		errors.Is(err, session.ErrSessionNotFinished),
		errors.Is(err, session.ErrNothingToAdvance):
		return conflict(c, err.Error())
	case errors.Is(err, session.ErrSessionLocked):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, session.ErrUnknownQuestion),
		errors.Is(err, session.ErrQuestionNotApplicable),
		errors.Is(err, session.ErrInvalidAnswer),
		errors.Is(err, session.ErrInvalidContext):
		return badRequest(c, err.Error())
	}
	return internalError(c)
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
