package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/marlowhealth/compass_backend/internal/api/http/handler"
	"github.com/marlowhealth/compass_backend/internal/api/http/middleware"
	"github.com/marlowhealth/compass_backend/pkg/authorize"
	pasetotoken "github.com/marlowhealth/compass_backend/pkg/paseto"
)

func (r *Router) registerSessionRoutes(
	api fiber.Router,
	h *handler.SessionHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	svc := r.p.SessionSvc

	// Subject of an existing session, looked up by the :id param. Returns ""
	// on any failure so the permission fallback decides.
	sessionSubject := func(c fiber.Ctx) string {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ""
		}
		sess, err := svc.Get(c.Context(), id)
		if err != nil {
			return ""
		}
		return sess.SubjectID.String()
	}

	// Subject a create request targets: the body's subject_id, defaulting to
	// the caller. Creating a session for someone else needs a grant.
	createSubject := func(c fiber.Ctx) string {
		var body struct {
			SubjectID string `json:"subject_id"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return ""
		}
		if body.SubjectID == "" {
			if claims, ok := pasetotoken.ClaimsFromFiber(c); ok {
				return claims.AccountID.String()
			}
		}
		return body.SubjectID
	}

	selfOr := func(subjectOf func(fiber.Ctx) string, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfOrPermission(r.p.Auth, subjectOf, authorize.ResourceSession, act)
	}

	sessions := api.Group("/screening-sessions", authRequired)

	// Subjects drive their own sessions without any role grant; touching
	// someone else's session needs the matching screening_session action.
	sessions.Get("/", h.ListMine)
	sessions.Post("/", selfOr(createSubject, authorize.ActionCreate), h.Create)
	sessions.Get("/:id", selfOr(sessionSubject, authorize.ActionRead), h.Get)
	sessions.Get("/:id/result", selfOr(sessionSubject, authorize.ActionRead), h.Result)
	sessions.Get("/:id/next-question", selfOr(sessionSubject, authorize.ActionRead), h.NextQuestion)
	sessions.Post("/:id/answers", selfOr(sessionSubject, authorize.ActionSubmit), h.SubmitAnswer)
	sessions.Post("/:id/advance", selfOr(sessionSubject, authorize.ActionSubmit), h.Advance)
	sessions.Post("/:id/complete", selfOr(sessionSubject, authorize.ActionComplete), h.Complete)
	sessions.Post("/:id/skip", selfOr(sessionSubject, authorize.ActionSkip), h.Skip)
	sessions.Post("/:id/force-skip", requirePerm(authorize.ResourceSession, authorize.ActionForceSkip), h.ForceSkip)
}
