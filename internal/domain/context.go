// Package domain provides the core business types, service contracts and
// context helpers for the wardrobe store.
//
// Context helpers centralize request-scoped data access. Services never read
// the principal from context themselves; handlers pass it explicitly.
package domain

import (
	"context"
	"slices"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	// principalContextKey stores the authenticated principal in context.
	principalContextKey contextKey = iota
)

// Principal is the authenticated caller as established from the access token.
// Email identifies the user; Roles are the role names granted at login.
type Principal struct {
	Email string
	Roles []string
}

// HasRole reports whether the principal holds the named role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// --- Principal Context Helpers ---

// NewContextWithPrincipal returns a new context with the principal attached.
func NewContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext retrieves the principal from context.
// Returns nil if no principal is present.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey).(*Principal)
	return p
}

// MustPrincipal retrieves the principal from context, panicking if not present.
// Use this behind authentication middleware where a principal is guaranteed.
// The panic will be caught by the recovery middleware.
func MustPrincipal(ctx context.Context) *Principal {
	p := PrincipalFromContext(ctx)
	if p == nil {
		panic("principal required in context but not found")
	}
	return p
}

// IsAuthenticated returns true if there is a principal in context.
func IsAuthenticated(ctx context.Context) bool {
	return PrincipalFromContext(ctx) != nil
}
