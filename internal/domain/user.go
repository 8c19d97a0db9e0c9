package domain

import (
	"context"
	"time"
)

// =============================================================================
// USER DOMAIN TYPES
// =============================================================================

// Role names.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Role is a named permission set granted to users.
type Role struct {
	ID   int64
	Name string
}

// Address is the postal address owned by exactly one user.
type Address struct {
	ApartmentNumber int32
	Street          string
	City            string
	Country         string
}

// User is a registered account. Email is immutable after registration.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Enabled      bool
	FirstName    string
	LastName     string
	PhoneNumber  string
	DOB          time.Time
	Roles        []Role
	Address      *Address
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the role names in grant order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// RegisterUserParams carries a validated registration request.
type RegisterUserParams struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	DOB         time.Time
	Address     Address
}

// UpdateUserParams carries a validated self-update request.
// Email, roles, enabled flag, cart and orders are never rewritten.
type UpdateUserParams struct {
	ID          int64
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	DOB         time.Time
	Address     Address
}

// UserService manages accounts and the self-or-admin authorization gate.
type UserService interface {
	// CurrentUser resolves the principal to its user record.
	CurrentUser(ctx context.Context, p Principal) (*User, error)

	// ListUsers returns every user. Callers gate this to ADMIN.
	ListUsers(ctx context.Context) ([]User, error)

	// GetUser returns the user when p is the subject or an admin.
	GetUser(ctx context.Context, p Principal, id int64) (*User, error)

	// Register creates a user with role USER and an empty cart.
	Register(ctx context.Context, params RegisterUserParams) (*User, error)

	// UpdateUser rewrites the caller's own record.
	UpdateUser(ctx context.Context, p Principal, params UpdateUserParams) (*User, error)

	// DeleteUser removes the user with its address, cart and orders.
	DeleteUser(ctx context.Context, p Principal, id int64) error

	// Authenticate checks credentials and returns the enabled user.
	Authenticate(ctx context.Context, email, password string) (*User, error)
}
