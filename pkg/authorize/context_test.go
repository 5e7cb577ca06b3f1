package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// mockClaimsProvider implements ClaimsProvider for testing
type mockClaimsProvider struct {
	userID uuid.UUID
}

func (m *mockClaimsProvider) GetUserID() uuid.UUID {
	return m.userID
}

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims provider",
			setupCtx: func() context.Context {
				cp := &mockClaimsProvider{userID: validUUID}
				return WithClaimsProvider(context.Background(), cp)
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no claims provider in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid in claims provider",
			setupCtx: func() context.Context {
				cp := &mockClaimsProvider{userID: uuid.Nil}
				return WithClaimsProvider(context.Background(), cp)
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("SubjectFromContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if subject != tt.wantSubject {
				t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
			}
		})
	}
}

func TestDomainFromResource(t *testing.T) {
	userID := uuid.New().String()
	empty := ""

	tests := []struct {
		name   string
		userID *string
		want   Domain
	}{
		{"owned resource", &userID, UserDomain(userID)},
		{"empty owner falls back to sys", &empty, DomainSys},
		{"nil owner falls back to sys", nil, DomainSys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainFromResource(tt.userID); got != tt.want {
				t.Errorf("DomainFromResource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainFromContext(t *testing.T) {
	userID := uuid.New()
	ctx := WithClaimsProvider(context.Background(), &mockClaimsProvider{userID: userID})

	domain, err := DomainFromContext(ctx)
	if err != nil {
		t.Fatalf("DomainFromContext() error = %v", err)
	}
	if domain != UserDomain(userID.String()) {
		t.Errorf("DomainFromContext() = %q, want %q", domain, UserDomain(userID.String()))
	}

	if _, err := DomainFromContext(context.Background()); err == nil {
		t.Error("DomainFromContext() on empty context: expected error")
	}
}
