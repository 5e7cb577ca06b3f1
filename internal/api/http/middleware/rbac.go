package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/marlowhealth/compass_backend/pkg/authorize"
	pasetotoken "github.com/marlowhealth/compass_backend/pkg/paseto"
)

// RequirePermission checks the authenticated account for a permission in the
// sys domain.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.AccountID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

// RequireSelfOrPermission allows the request when the authenticated account
// is the named subject, otherwise falls back to a sys-domain permission
// check. Used on session routes so subjects can drive their own screening
// without any role grant.
func RequireSelfOrPermission(auth authorize.IAuthorization, subjectOf func(fiber.Ctx) string, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		if sid := subjectOf(c); sid != "" && sid == claims.AccountID.String() {
			return c.Next()
		}

		subject := authorize.GroupSubject(claims.AccountID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
