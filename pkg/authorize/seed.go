package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the screening
// service. Idempotent: already-present rows are skipped.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Platform admin: god mode, including catalog publishing
		{RolePlatformAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Clinician: full screening visibility, may administer a screen on a
		// patient's behalf, force-skip mandatory flows and override system
		// triage. manage does not expand to the domain actions, so
		// submit/complete/skip are granted explicitly.
		{RoleClinician, DomainSys, ResourceSession, ActionManage, EffectAllow},
		{RoleClinician, DomainSys, ResourceSession, ActionSubmit, EffectAllow},
		{RoleClinician, DomainSys, ResourceSession, ActionComplete, EffectAllow},
		{RoleClinician, DomainSys, ResourceSession, ActionSkip, EffectAllow},
		{RoleClinician, DomainSys, ResourceSession, ActionForceSkip, EffectAllow},
		{RoleClinician, DomainSys, ResourceAnswer, ActionRead, EffectAllow},
		{RoleClinician, DomainSys, ResourceTriage, ActionRead, EffectAllow},
		{RoleClinician, DomainSys, ResourceTriage, ActionList, EffectAllow},
		{RoleClinician, DomainSys, ResourceTriage, ActionOverride, EffectAllow},
		{RoleClinician, DomainSys, ResourceInstrument, ActionRead, EffectAllow},
		{RoleClinician, DomainSys, ResourceFlow, ActionRead, EffectAllow},

		// Coach: read screening outcomes for assigned members
		{RoleCoach, DomainSys, ResourceSession, ActionRead, EffectAllow},
		{RoleCoach, DomainSys, ResourceTriage, ActionRead, EffectAllow},

		// Care coordinator: start screenings on behalf of patients,
		// read triage history
		{RoleCareCoordinator, DomainSys, ResourceSession, ActionCreate, EffectAllow},
		{RoleCareCoordinator, DomainSys, ResourceSession, ActionRead, EffectAllow},
		{RoleCareCoordinator, DomainSys, ResourceSession, ActionList, EffectAllow},
		{RoleCareCoordinator, DomainSys, ResourceTriage, ActionRead, EffectAllow},
		{RoleCareCoordinator, DomainSys, ResourceTriage, ActionList, EffectAllow},

		// Service worker: background reconciliation and sweeping
		{RoleServiceWorker, DomainSys, ResourceSession, ActionUpdate, EffectAllow},
		{RoleServiceWorker, DomainSys, ResourceSession, ActionSkip, EffectAllow},
		{RoleServiceWorker, DomainSys, ResourceTriage, ActionCreate, EffectAllow},
	}

	// User-level policies (domain: user:*): subjects act on their own sessions
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceSession, ActionCreate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceSession, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceSession, ActionSubmit, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceSession, ActionComplete, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceSession, ActionSkip, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAnswer, ActionCreate, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the account's private
// domain. Called the first time an account touches the screening service.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, accountID string) error {
	domain := UserDomain(accountID)
	subject := GroupSubject(accountID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignCareRole grants one of the care-team roles in the sys domain.
func AssignCareRole(ctx context.Context, auth IAuthorization, accountID string, role Role) error {
	switch role {
	case RoleClinician, RoleCoach, RoleCareCoordinator:
	default:
		return ErrInvalidArgs
	}

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(accountID), role, DomainSys)
	return err
}
