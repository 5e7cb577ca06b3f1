package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/marlowhealth/compass_backend/internal/api/http/handler"
	"github.com/marlowhealth/compass_backend/pkg/authorize"
)

func (r *Router) registerTriageRoutes(
	api fiber.Router,
	h *handler.TriageHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	orders := api.Group("/patient-orders", authRequired)
	orders.Get("/:id/triage", requirePerm(authorize.ResourceTriage, authorize.ActionRead), h.Current)
	orders.Get("/:id/triage-history", requirePerm(authorize.ResourceTriage, authorize.ActionList), h.History)
	orders.Post("/:id/triage-override", requirePerm(authorize.ResourceTriage, authorize.ActionOverride), h.Override)

	sessions := api.Group("/screening-sessions", authRequired)
	sessions.Get("/:id/triage-history", requirePerm(authorize.ResourceTriage, authorize.ActionList), h.SessionHistory)
}
