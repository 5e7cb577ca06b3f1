package authorize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// createTestEnforcer creates an in-memory Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	// Create temp directory for test files
	tmpDir := t.TempDir()

	// Write model config
	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = g(r.sub, p.sub, r.dom) && (r.dom == p.dom || p.dom == "*") && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*" || p.act == "manage" && (r.act == "create" || r.act == "read" || r.act == "update" || r.act == "delete" || r.act == "list"))
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	// Write empty policy file
	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	// Create adapter with file
	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		e := createTestEnforcer(t)
		auth, err := NewAuthorization(e)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	// Add test policies
	userID := "user-123"

	// Add role to user
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleClinician, DomainSys)
	if err != nil {
		t.Fatalf("Failed to add role: %v", err)
	}

	// Add permission to role
	_, err = auth.AddPermission(ctx, RoleClinician, DomainSys, ResourceSession, ActionManage, EffectAllow)
	if err != nil {
		t.Fatalf("Failed to add permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "allowed when permission exists",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceSession,
			action:   ActionManage,
			want:     true,
			wantErr:  false,
		},
		{
			name:     "manage expands to read",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceSession,
			action:   ActionRead,
			want:     true,
			wantErr:  false,
		},
		{
			name:     "manage does not expand to force_skip",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceSession,
			action:   ActionForceSkip,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "denied when no permission",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceTriage,
			action:   ActionOverride,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "error for empty subject",
			subject:  "",
			domain:   DomainSys,
			resource: ResourceSession,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for invalid domain",
			subject:  GroupSubject(userID),
			domain:   Domain("invalid"),
			resource: ResourceSession,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown resource",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: Resource("unknown"),
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown action",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceSession,
			action:   Action("unknown"),
			want:     false,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Enforce() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-456"
	subject := GroupSubject(userID)

	auth.AddRoleForUserInDomain(ctx, subject, RoleCareCoordinator, DomainSys)
	auth.AddPermission(ctx, RoleCareCoordinator, DomainSys, ResourceTriage, ActionRead, EffectAllow)

	if err := auth.MustEnforce(ctx, subject, DomainSys, ResourceTriage, ActionRead); err != nil {
		t.Errorf("MustEnforce() for granted permission: %v", err)
	}

	err := auth.MustEnforce(ctx, subject, DomainSys, ResourceTriage, ActionOverride)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("MustEnforce() for missing permission = %v, want ErrForbidden", err)
	}
}

func TestUserSelfScope(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	owner := "550e8400-e29b-41d4-a716-446655440000"
	other := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	auth.AddRoleForUserInDomain(ctx, GroupSubject(owner), RoleUserSelf, UserDomain(owner))
	auth.AddPermission(ctx, RoleUserSelf, WildcardDomain, ResourceSession, ActionCreate, EffectAllow)

	ok, err := auth.Enforce(ctx, GroupSubject(owner), UserDomain(owner), ResourceSession, ActionCreate)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if !ok {
		t.Error("owner denied in own domain")
	}

	// The role grant is scoped to the owner's domain; the same subject has no
	// grant inside another account's domain.
	ok, err = auth.Enforce(ctx, GroupSubject(owner), UserDomain(other), ResourceSession, ActionCreate)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if ok {
		t.Error("owner allowed in another account's domain")
	}
}
