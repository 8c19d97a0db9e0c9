package domain

import (
	"context"
	"testing"
)

func TestPrincipalContext(t *testing.T) {
	t.Run("PrincipalFromContext returns nil when no principal", func(t *testing.T) {
		ctx := context.Background()
		p := PrincipalFromContext(ctx)
		if p != nil {
			t.Errorf("expected nil principal, got %+v", p)
		}
	})

	t.Run("PrincipalFromContext returns principal when set", func(t *testing.T) {
		ctx := context.Background()
		expected := &Principal{
			Email: "anna@example.com",
			Roles: []string{RoleUser},
		}
		ctx = NewContextWithPrincipal(ctx, expected)

		p := PrincipalFromContext(ctx)
		if p == nil {
			t.Fatal("expected principal, got nil")
		}
		if p.Email != expected.Email {
			t.Errorf("expected Email %q, got %q", expected.Email, p.Email)
		}
	})

	t.Run("MustPrincipal panics when no principal", func(t *testing.T) {
		ctx := context.Background()
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic, got none")
			}
		}()
		MustPrincipal(ctx)
	})

	t.Run("MustPrincipal returns principal when set", func(t *testing.T) {
		ctx := NewContextWithPrincipal(context.Background(), &Principal{Email: "a@b.io"})
		if got := MustPrincipal(ctx); got.Email != "a@b.io" {
			t.Errorf("expected a@b.io, got %q", got.Email)
		}
	})

	t.Run("IsAuthenticated returns false when no principal", func(t *testing.T) {
		if IsAuthenticated(context.Background()) {
			t.Error("expected IsAuthenticated to return false")
		}
	})

	t.Run("IsAuthenticated returns true when principal set", func(t *testing.T) {
		ctx := NewContextWithPrincipal(context.Background(), &Principal{Email: "a@b.io"})
		if !IsAuthenticated(ctx) {
			t.Error("expected IsAuthenticated to return true")
		}
	})
}

func TestPrincipalRoles(t *testing.T) {
	tests := []struct {
		name      string
		roles     []string
		role      string
		wantRole  bool
		wantAdmin bool
	}{
		{"no roles", nil, RoleUser, false, false},
		{"user only", []string{RoleUser}, RoleUser, true, false},
		{"admin only", []string{RoleAdmin}, RoleUser, false, true},
		{"admin and user", []string{RoleAdmin, RoleUser}, RoleUser, true, true},
		{"case sensitive", []string{"user"}, RoleUser, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Principal{Email: "x@y.io", Roles: tt.roles}
			if got := p.HasRole(tt.role); got != tt.wantRole {
				t.Errorf("HasRole(%q) = %v, want %v", tt.role, got, tt.wantRole)
			}
			if got := p.IsAdmin(); got != tt.wantAdmin {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.wantAdmin)
			}
		})
	}
}
