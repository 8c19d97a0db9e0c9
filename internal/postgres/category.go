package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/transaction"
)

// CategoryService implements domain.CategoryService using PostgreSQL.
type CategoryService struct {
	repo  repository.Querier
	scope transaction.Scope
}

var _ domain.CategoryService = (*CategoryService)(nil)

func NewCategoryService(repo repository.Querier, scope transaction.Scope) *CategoryService {
	return &CategoryService{
		repo:  repo,
		scope: scope,
	}
}

// ListCategories returns every category without products.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, domain.Internal(err, "category.list", "failed to list categories")
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapRepoCategoryToDomain(row))
	}
	return categories, nil
}

// GetCategoryByName returns the category with its products.
func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	row, err := s.repo.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNameNotFound(name)
		}
		return nil, domain.Internal(err, "category.get", "failed to get category")
	}

	return s.withProducts(ctx, row)
}

func (s *CategoryService) CreateCategory(ctx context.Context, params domain.CategoryParams) (*domain.Category, error) {
	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (*domain.Category, error) {
		_, err := s.repo.GetCategoryByName(ctx, params.Name)
		if err == nil {
			return nil, domain.ErrCategoryExists(params.Name)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Internal(err, "category.create", "failed to check category name")
		}

		row, err := s.repo.CreateCategory(ctx, repository.CreateCategoryParams{
			Name:          params.Name,
			WeatherSeason: string(seasonOrNone(params.WeatherSeason)),
		})
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrCategoryExists(params.Name)
			}
			return nil, domain.Internal(err, "category.create", "failed to create category")
		}

		c := mapRepoCategoryToDomain(row)
		return &c, nil
	})
}

// UpdateCategory renames or re-tags a category. Product assignments are kept.
func (s *CategoryService) UpdateCategory(ctx context.Context, params domain.CategoryParams) (*domain.Category, error) {
	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (*domain.Category, error) {
		if _, err := s.repo.GetCategoryByID(ctx, params.ID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrCategoryNotFound(params.ID)
			}
			return nil, domain.Internal(err, "category.update", "failed to get category")
		}

		existing, err := s.repo.GetCategoryByName(ctx, params.Name)
		if err == nil && existing.ID != params.ID {
			return nil, domain.ErrCategoryExists(params.Name)
		}
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Internal(err, "category.update", "failed to check category name")
		}

		row, err := s.repo.UpdateCategory(ctx, repository.UpdateCategoryParams{
			ID:            params.ID,
			Name:          params.Name,
			WeatherSeason: string(seasonOrNone(params.WeatherSeason)),
		})
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrCategoryExists(params.Name)
			}
			return nil, domain.Internal(err, "category.update", "failed to update category")
		}

		return s.withProducts(ctx, row)
	})
}

// DeleteCategory removes a category that has no assigned products.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.scope.Execute(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetCategoryByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrCategoryNotFound(id)
			}
			return domain.Internal(err, "category.delete", "failed to get category")
		}

		count, err := s.repo.CountCategoryProducts(ctx, id)
		if err != nil {
			return domain.Internal(err, "category.delete", "failed to count category products")
		}
		if count > 0 {
			return domain.ErrCategoryHasProducts
		}

		if _, err := s.repo.DeleteCategory(ctx, id); err != nil {
			return domain.Internal(err, "category.delete", "failed to delete category")
		}
		return nil
	})
}

func (s *CategoryService) ListCategoryProducts(ctx context.Context, name string) ([]domain.ProductSummary, error) {
	c, err := s.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return c.Products, nil
}

func (s *CategoryService) withProducts(ctx context.Context, row repository.Category) (*domain.Category, error) {
	products, err := s.repo.ListProductsByCategory(ctx, row.ID)
	if err != nil {
		return nil, domain.Internal(err, "category.products", "failed to list category products")
	}

	c := mapRepoCategoryToDomain(row)
	c.Products = make([]domain.ProductSummary, 0, len(products))
	for _, p := range products {
		c.Products = append(c.Products, mapRepoProductToSummary(p))
	}
	return &c, nil
}

func seasonOrNone(s domain.WeatherSeason) domain.WeatherSeason {
	if s == "" {
		return domain.SeasonNone
	}
	return s
}

func mapRepoCategoryToDomain(c repository.Category) domain.Category {
	return domain.Category{
		ID:            c.ID,
		Name:          c.Name,
		WeatherSeason: domain.WeatherSeason(c.WeatherSeason),
	}
}
