package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/marlowhealth/compass_backend/internal/api/http/handler"
	"github.com/marlowhealth/compass_backend/pkg/authorize"
)

func (r *Router) registerCatalogRoutes(
	api fiber.Router,
	h *handler.CatalogHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	instruments := api.Group("/instruments", authRequired)
	instruments.Get("/", h.ListInstruments)
	instruments.Get("/:slug", h.GetInstrument)
	instruments.Post("/", requirePerm(authorize.ResourceInstrument, authorize.ActionPublish), h.PublishInstrument)

	flows := api.Group("/screening-flows", authRequired)
	flows.Get("/", h.ListFlows)
	flows.Get("/:slug", h.GetFlow)
	flows.Post("/", requirePerm(authorize.ResourceFlow, authorize.ActionPublish), h.PublishFlow)
}
