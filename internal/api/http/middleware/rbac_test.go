package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/marlowhealth/compass_backend/pkg/authorize"
	pasetotoken "github.com/marlowhealth/compass_backend/pkg/paseto"
)

// stubAuth grants or denies everything, so tests can isolate the self-check.
type stubAuth struct {
	allow bool
}

func (s *stubAuth) Enforce(_ context.Context, _ authorize.GroupSubject, _ authorize.Domain, _ authorize.Resource, _ authorize.Action) (bool, error) {
	return s.allow, nil
}

func (s *stubAuth) MustEnforce(_ context.Context, _ authorize.GroupSubject, _ authorize.Domain, _ authorize.Resource, _ authorize.Action) error {
	if s.allow {
		return nil
	}
	return authorize.ErrForbidden
}

func (s *stubAuth) AddRoleForUserInDomain(context.Context, authorize.GroupSubject, authorize.Role, authorize.Domain) (bool, error) {
	return false, nil
}

func (s *stubAuth) RemoveRoleForUserInDomain(context.Context, authorize.GroupSubject, authorize.Role, authorize.Domain) (bool, error) {
	return false, nil
}

func (s *stubAuth) GetRolesForUserInDomain(context.Context, authorize.GroupSubject, authorize.Domain) ([]authorize.Role, error) {
	return nil, nil
}

func (s *stubAuth) AddPermission(context.Context, authorize.Role, authorize.Domain, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return false, nil
}

func (s *stubAuth) RemovePermission(context.Context, authorize.Role, authorize.Domain, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return false, nil
}

func (s *stubAuth) Raw() *casbin.DistributedEnforcer { return nil }

func newGuardedApp(auth authorize.IAuthorization, claims *pasetotoken.Claims, subject string) *fiber.App {
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		if claims != nil {
			c.Locals(pasetotoken.CtxKeyClaims, claims)
		}
		return c.Next()
	})
	subjectOf := func(c fiber.Ctx) string { return subject }
	app.Get("/sessions/:id",
		RequireSelfOrPermission(auth, subjectOf, authorize.ResourceSession, authorize.ActionRead),
		func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequireSelfOrPermission(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	tests := []struct {
		name       string
		claims     *pasetotoken.Claims
		subject    string
		allow      bool
		wantStatus int
	}{
		{
			name:       "own session passes without any grant",
			claims:     &pasetotoken.Claims{AccountID: self},
			subject:    self.String(),
			allow:      false,
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "someone else's session denied without grant",
			claims:     &pasetotoken.Claims{AccountID: self},
			subject:    other.String(),
			allow:      false,
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "someone else's session allowed with grant",
			claims:     &pasetotoken.Claims{AccountID: self},
			subject:    other.String(),
			allow:      true,
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "unresolvable subject falls back to permission check",
			claims:     &pasetotoken.Claims{AccountID: self},
			subject:    "",
			allow:      false,
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "missing claims rejected",
			claims:     nil,
			subject:    self.String(),
			allow:      false,
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGuardedApp(&stubAuth{allow: tt.allow}, tt.claims, tt.subject)

			req := httptest.NewRequest("GET", "/sessions/"+uuid.NewString(), nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
