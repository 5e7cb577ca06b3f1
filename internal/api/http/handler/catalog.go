package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/marlowhealth/compass_backend/internal/screening"
	"github.com/marlowhealth/compass_backend/internal/service/catalog"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// GET /instruments
func (h *CatalogHandler) ListInstruments(c fiber.Ctx) error {
	list, err := h.svc.ListInstruments(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, list)
}

// GET /instruments/:slug
func (h *CatalogHandler) GetInstrument(c fiber.Ctx) error {
	ins, ver, err := h.svc.GetInstrumentBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return h.mapError(c, err)
	}
	return ok(c, fiber.Map{"instrument": ins, "current_version": ver})
}

// POST /instruments
func (h *CatalogHandler) PublishInstrument(c fiber.Ctx) error {
	var body struct {
		Slug        string                      `json:"slug"`
		Name        string                      `json:"name"`
		Description *string                     `json:"description"`
		FocusArea   string                      `json:"focus_area"`
		Content     screening.InstrumentContent `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Slug == "" || body.Name == "" || body.FocusArea == "" {
		return badRequest(c, "slug, name and focus_area are required")
	}

	ver, err := h.svc.PublishInstrument(c.Context(), catalog.PublishInstrumentRequest{
		Slug:        body.Slug,
		Name:        body.Name,
		Description: body.Description,
		FocusArea:   body.FocusArea,
		Content:     body.Content,
	})
	if err != nil {
		return h.mapError(c, err)
	}
	return created(c, ver)
}

// GET /screening-flows
func (h *CatalogHandler) ListFlows(c fiber.Ctx) error {
	list, err := h.svc.ListFlows(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, list)
}

// GET /screening-flows/:slug
func (h *CatalogHandler) GetFlow(c fiber.Ctx) error {
	f, ver, err := h.svc.GetFlowBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return h.mapError(c, err)
	}
	return ok(c, fiber.Map{"flow": f, "current_version": ver})
}

// POST /screening-flows
func (h *CatalogHandler) PublishFlow(c fiber.Ctx) error {
	var body struct {
		Slug        string  `json:"slug"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Mandatory   bool    `json:"mandatory"`
		Steps       []struct {
			Instrument string               `json:"instrument"`
			SkipIf     *screening.Predicate `json:"skip_if"`
		} `json:"steps"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Slug == "" || body.Name == "" {
		return badRequest(c, "slug and name are required")
	}

	steps := make([]catalog.FlowStepInput, 0, len(body.Steps))
	for _, s := range body.Steps {
		steps = append(steps, catalog.FlowStepInput{
			InstrumentSlug: s.Instrument,
			SkipIf:         s.SkipIf,
		})
	}

	ver, err := h.svc.PublishFlow(c.Context(), catalog.PublishFlowRequest{
		Slug:        body.Slug,
		Name:        body.Name,
		Description: body.Description,
		Mandatory:   body.Mandatory,
		Steps:       steps,
	})
	if err != nil {
		return h.mapError(c, err)
	}
	return created(c, ver)
}

func (h *CatalogHandler) mapError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrInstrumentNotFound),
		errors.Is(err, catalog.ErrFlowNotFound),
		errors.Is(err, catalog.ErrVersionNotFound),
		errors.Is(err, catalog.ErrNoPublishedVersion):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrInvalidContent):
		return badRequest(c, err.Error())
	}
	return internalError(c)
}
