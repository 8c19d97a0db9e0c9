package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/repository"
)

// resolveUser maps an authenticated principal to its user row.
func resolveUser(ctx context.Context, repo repository.Querier, p domain.Principal) (repository.AppUser, error) {
	if p.Email == "" {
		return repository.AppUser{}, domain.ErrAuthenticationRequired
	}

	u, err := repo.GetUserByEmail(ctx, p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.AppUser{}, domain.ErrUserEmailNotFound(p.Email)
		}
		return repository.AppUser{}, fmt.Errorf("failed to resolve user: %w", err)
	}
	return u, nil
}

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
