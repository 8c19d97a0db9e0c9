package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dukerupert/wardrobe/internal/auth"
	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/transaction"
)

// UserService implements domain.UserService using PostgreSQL.
type UserService struct {
	repo  repository.Querier
	scope transaction.Scope
}

// Compile-time check to ensure UserService implements domain.UserService.
var _ domain.UserService = (*UserService)(nil)

// NewUserService creates a new UserService instance.
func NewUserService(repo repository.Querier, scope transaction.Scope) *UserService {
	return &UserService{
		repo:  repo,
		scope: scope,
	}
}

// =============================================================================
// Identity
// =============================================================================

// CurrentUser resolves the principal to its user with roles and address.
func (s *UserService) CurrentUser(ctx context.Context, p domain.Principal) (*domain.User, error) {
	u, err := resolveUser(ctx, s.repo, p)
	if err != nil {
		return nil, err
	}
	return s.loadUser(ctx, u)
}

func (s *UserService) loadUser(ctx context.Context, u repository.AppUser) (*domain.User, error) {
	roles, err := s.repo.ListUserRoles(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	user := mapRepoUserToDomain(u, roles)

	addr, err := s.repo.GetAddressByUserID(ctx, u.ID)
	switch {
	case err == nil:
		user.Address = &domain.Address{
			ApartmentNumber: addr.ApartmentNumber,
			Street:          addr.Street,
			City:            addr.City,
			Country:         addr.Country,
		}
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	return user, nil
}

// =============================================================================
// Account Operations
// =============================================================================

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := s.loadUser(ctx, row)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

// GetUser returns the user with id when the caller is that user or an admin.
func (s *UserService) GetUser(ctx context.Context, p domain.Principal, id int64) (*domain.User, error) {
	target, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound(id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.authorizeSelfOrAdmin(ctx, p, id); err != nil {
		return nil, err
	}

	return s.loadUser(ctx, target)
}

// Register creates an enabled user holding exactly the USER role, with an
// address and an empty cart.
func (s *UserService) Register(ctx context.Context, params domain.RegisterUserParams) (*domain.User, error) {
	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, domain.Invalid("user.register", "%s", err.Error())
	}

	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (*domain.User, error) {
		_, err := s.repo.GetUserByEmail(ctx, params.Email)
		if err == nil {
			return nil, domain.ErrEmailTaken(params.Email)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}

		created, err := s.repo.CreateUser(ctx, repository.CreateUserParams{
			Email:        params.Email,
			PasswordHash: hash,
			Enabled:      true,
			FirstName:    params.FirstName,
			LastName:     params.LastName,
			PhoneNumber:  params.PhoneNumber,
			Dob:          toPgDate(params.DOB),
		})
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrEmailTaken(params.Email)
			}
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		role, err := s.repo.UpsertRole(ctx, domain.RoleUser)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve role: %w", err)
		}
		if err := s.repo.AddUserRole(ctx, repository.AddUserRoleParams{
			UserID:   created.ID,
			RoleID:   role.ID,
			Position: 0,
		}); err != nil {
			return nil, fmt.Errorf("failed to grant role: %w", err)
		}

		if err := s.upsertAddress(ctx, created.ID, params.Address); err != nil {
			return nil, err
		}

		if _, err := s.repo.CreateCart(ctx, created.ID); err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}

		user := mapRepoUserToDomain(created, []repository.Role{role})
		addr := params.Address
		user.Address = &addr
		return user, nil
	})
}

// UpdateUser rewrites the caller's own personal fields, password and address.
// Email, roles, enabled flag, cart and orders are kept.
func (s *UserService) UpdateUser(ctx context.Context, p domain.Principal, params domain.UpdateUserParams) (*domain.User, error) {
	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, domain.Invalid("user.update", "%s", err.Error())
	}

	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (*domain.User, error) {
		current, err := resolveUser(ctx, s.repo, p)
		if err != nil {
			return nil, err
		}
		if current.ID != params.ID {
			return nil, domain.ErrPermissionDenied
		}

		updated, err := s.repo.UpdateUser(ctx, repository.UpdateUserParams{
			ID:           current.ID,
			PasswordHash: hash,
			FirstName:    params.FirstName,
			LastName:     params.LastName,
			PhoneNumber:  params.PhoneNumber,
			Dob:          toPgDate(params.DOB),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}

		if err := s.upsertAddress(ctx, current.ID, params.Address); err != nil {
			return nil, err
		}

		return s.loadUser(ctx, updated)
	})
}

// DeleteUser removes the user. Address, cart and orders cascade.
func (s *UserService) DeleteUser(ctx context.Context, p domain.Principal, id int64) error {
	return s.scope.Execute(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetUserByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrUserNotFound(id)
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		if err := s.authorizeSelfOrAdmin(ctx, p, id); err != nil {
			return err
		}

		if _, err := s.repo.DeleteUser(ctx, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

// Authenticate verifies credentials. Every failure reads as bad credentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !u.Enabled {
		return nil, domain.ErrBadCredentials
	}

	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	return s.loadUser(ctx, u)
}

// =============================================================================
// Helper Functions
// =============================================================================

// authorizeSelfOrAdmin allows the subject itself or any ADMIN.
func (s *UserService) authorizeSelfOrAdmin(ctx context.Context, p domain.Principal, id int64) error {
	current, err := resolveUser(ctx, s.repo, p)
	if err != nil {
		return err
	}
	if current.ID == id {
		return nil
	}

	roles, err := s.repo.ListUserRoles(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("failed to list roles: %w", err)
	}
	for _, r := range roles {
		if r.Name == domain.RoleAdmin {
			return nil
		}
	}
	return domain.ErrPermissionDenied
}

func (s *UserService) upsertAddress(ctx context.Context, userID int64, a domain.Address) error {
	_, err := s.repo.UpsertAddress(ctx, repository.UpsertAddressParams{
		UserID:          userID,
		ApartmentNumber: a.ApartmentNumber,
		Street:          a.Street,
		City:            a.City,
		Country:         a.Country,
	})
	if err != nil {
		return fmt.Errorf("failed to save address: %w", err)
	}
	return nil
}

// mapRepoUserToDomain converts a repository AppUser to a domain User.
func mapRepoUserToDomain(u repository.AppUser, roles []repository.Role) *domain.User {
	user := &domain.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Enabled:      u.Enabled,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PhoneNumber:  u.PhoneNumber,
		Roles:        make([]domain.Role, 0, len(roles)),
	}
	if u.Dob.Valid {
		user.DOB = u.Dob.Time
	}
	for _, r := range roles {
		user.Roles = append(user.Roles, domain.Role{ID: r.ID, Name: r.Name})
	}
	return user
}

func toPgDate(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: t, Valid: true}
}
