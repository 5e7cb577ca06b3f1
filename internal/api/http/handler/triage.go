package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/marlowhealth/compass_backend/internal/screening"
	"github.com/marlowhealth/compass_backend/internal/service/triage"
	pasetotoken "github.com/marlowhealth/compass_backend/pkg/paseto"
)

type TriageHandler struct {
	svc triage.Service
}

func NewTriageHandler(svc triage.Service) *TriageHandler {
	return &TriageHandler{svc: svc}
}

// GET /patient-orders/:id/triage
func (h *TriageHandler) Current(c fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient order id")
	}

	g, err := h.svc.Current(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, triage.ErrTriageNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, g)
}

// GET /patient-orders/:id/triage-history
func (h *TriageHandler) History(c fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient order id")
	}

	groups, err := h.svc.History(c.Context(), orderID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, groups)
}

// GET /screening-sessions/:id/triage-history
func (h *TriageHandler) SessionHistory(c fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	groups, err := h.svc.HistoryBySession(c.Context(), sessionID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, groups)
}

// POST /patient-orders/:id/triage-override
func (h *TriageHandler) Override(c fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient order id")
	}
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return fiber.ErrUnauthorized
	}

	var body struct {
		CareCategory   string `json:"care_category"`
		SafetyPlanning string `json:"safety_planning_status"`
		Reason         string `json:"reason"`
		Entries        []struct {
			FocusArea    string  `json:"focus_area"`
			CareCategory string  `json:"care_category"`
			Reason       *string `json:"reason"`
		} `json:"entries"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := triage.OverrideRequest{
		PatientOrderID: orderID,
		CareCategory:   screening.CareCategory(body.CareCategory),
		SafetyPlanning: screening.SafetyPlanningStatus(body.SafetyPlanning),
		Reason:         body.Reason,
		CreatedBy:      claims.AccountID,
	}
	for _, e := range body.Entries {
		req.Entries = append(req.Entries, triage.EntryInput{
			FocusArea:    e.FocusArea,
			CareCategory: screening.CareCategory(e.CareCategory),
			Reason:       e.Reason,
		})
	}

	g, err := h.svc.RecordOverride(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, triage.ErrOverrideNeedsReason),
			errors.Is(err, triage.ErrInvalidCareCategory):
			return badRequest(c, err.Error())
		case errors.Is(err, triage.ErrOrderLocked):
			return conflict(c, err.Error())
		}
		return internalError(c)
	}
	return created(c, g)
}
