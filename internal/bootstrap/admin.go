// Package bootstrap seeds the rows the API cannot run without: the two roles
// and, when configured, the master admin.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/dukerupert/wardrobe/internal/auth"
	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/transaction"
)

// Admins get a longer minimum than self-registered users.
const minAdminPasswordLength = 12

// AdminConfig describes the master admin created on first start.
type AdminConfig struct {
	Email     string
	Password  string
	FirstName string // "Admin" when empty
	LastName  string // "User" when empty
}

func (c *AdminConfig) Validate() error {
	var errs []error
	if c.Email == "" {
		errs = append(errs, errors.New("admin email is required"))
	}
	switch {
	case c.Password == "":
		errs = append(errs, errors.New("admin password is required"))
	case len(c.Password) < minAdminPasswordLength:
		errs = append(errs, fmt.Errorf("admin password must be at least %d characters", minAdminPasswordLength))
	}
	return errors.Join(errs...)
}

func (c *AdminConfig) configured() bool {
	return c != nil && c.Email != "" && c.Password != ""
}

// EnsureRoles upserts ADMIN and USER, in that order.
func EnsureRoles(ctx context.Context, repo repository.Querier) (admin, user repository.Role, err error) {
	roles := make([]repository.Role, 2)
	for i, name := range []string{domain.RoleAdmin, domain.RoleUser} {
		if roles[i], err = repo.UpsertRole(ctx, name); err != nil {
			return admin, user, fmt.Errorf("ensure role %s: %w", name, err)
		}
	}
	return roles[0], roles[1], nil
}

// EnsureMasterAdmin is safe on every start. With a configured admin it also
// creates that user once, holding ADMIN then USER and an empty cart so it can
// shop like anyone else. The address stays empty until the admin sets one.
func EnsureMasterAdmin(ctx context.Context, repo repository.Querier, scope transaction.Scope, cfg *AdminConfig, logger *slog.Logger) error {
	if !cfg.configured() {
		logger.Warn("bootstrap: no master admin configured",
			"hint", "set WARDROBE_ADMIN_EMAIL and WARDROBE_ADMIN_PASSWORD to create one on first start",
		)
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid admin configuration: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return scope.Execute(ctx, func(ctx context.Context) error {
		adminRole, userRole, err := EnsureRoles(ctx, repo)
		if err != nil {
			return err
		}

		existing, err := repo.GetUserByEmail(ctx, cfg.Email)
		switch {
		case err == nil:
			logger.Info("bootstrap: master admin present", "email", cfg.Email, "user_id", existing.ID)
			return nil
		case !errors.Is(err, pgx.ErrNoRows):
			return fmt.Errorf("look up admin: %w", err)
		}

		admin, err := repo.CreateUser(ctx, repository.CreateUserParams{
			Email:        cfg.Email,
			PasswordHash: hash,
			Enabled:      true,
			FirstName:    orDefault(cfg.FirstName, "Admin"),
			LastName:     orDefault(cfg.LastName, "User"),
		})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		for pos, role := range []repository.Role{adminRole, userRole} {
			err := repo.AddUserRole(ctx, repository.AddUserRoleParams{
				UserID:   admin.ID,
				RoleID:   role.ID,
				Position: int32(pos),
			})
			if err != nil {
				return fmt.Errorf("grant %s to admin: %w", role.Name, err)
			}
		}

		if _, err := repo.CreateCart(ctx, admin.ID); err != nil {
			return fmt.Errorf("create admin cart: %w", err)
		}

		logger.Info("bootstrap: master admin created", "email", cfg.Email, "user_id", admin.ID)
		return nil
	})
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
