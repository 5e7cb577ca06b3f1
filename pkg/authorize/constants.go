package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// Screening lifecycle
	ActionSubmit    Action = "submit"     // submit an answer
	ActionComplete  Action = "complete"   // finalise a session
	ActionSkip      Action = "skip"       // skip a non-mandatory session
	ActionForceSkip Action = "force_skip" // skip a mandatory session
	ActionPublish   Action = "publish"    // publish a catalog version

	// Triage
	ActionOverride Action = "override" // clinician triage override

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionSubmit: {}, ActionComplete: {}, ActionSkip: {}, ActionForceSkip: {}, ActionPublish: {},
	ActionOverride: {},
	ActionGrant:    {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Catalog
	ResourceInstrument Resource = "instrument"
	ResourceFlow       Resource = "screening_flow"

	// Screening
	ResourceSession Resource = "screening_session"
	ResourceAnswer  Resource = "answer"

	// Care coordination
	ResourceTriage       Resource = "triage"
	ResourcePatientOrder Resource = "patient_order"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceInstrument: {}, ResourceFlow: {},
	ResourceSession: {}, ResourceAnswer: {},
	ResourceTriage: {}, ResourcePatientOrder: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to accounts via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformAdmin Role = "role:platform:admin"

	// Care team roles (domain = sys)
	RoleClinician       Role = "role:care:clinician"
	RoleCoach           Role = "role:care:coach"
	RoleCareCoordinator Role = "role:care:coordinator"

	// Internal service accounts (domain = sys): workers, schedulers
	RoleServiceWorker Role = "role:service:worker"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformAdmin:   {},
	RoleClinician:       {},
	RoleCoach:           {},
	RoleCareCoordinator: {},
	RoleServiceWorker:   {},
	RoleUserSelf:        {},
}

// Display names for admin tooling
var RoleDisplayNames = map[Role]string{
	RolePlatformAdmin:   "Platform Admin",
	RoleClinician:       "Clinician",
	RoleCoach:           "Coach",
	RoleCareCoordinator: "Care Coordinator",
	RoleServiceWorker:   "Service Worker",
	RoleUserSelf:        "Account Owner",
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// UserDomain scopes a grant to a single account's own data.
func UserDomain(accountID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, accountID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or an account/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (account_id or service_id).
type GroupSubject string

// Grouping rows: g, account_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
