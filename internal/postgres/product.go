package postgres

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/storage"
	"github.com/dukerupert/wardrobe/internal/transaction"
)

// ProductService implements domain.ProductService using PostgreSQL.
type ProductService struct {
	repo        repository.Querier
	scope       transaction.Scope
	images      storage.Storage
	thermometer domain.Thermometer
	logger      *slog.Logger
}

var _ domain.ProductService = (*ProductService)(nil)

// NewProductService creates a new ProductService instance.
func NewProductService(
	repo repository.Querier,
	scope transaction.Scope,
	images storage.Storage,
	thermometer domain.Thermometer,
	logger *slog.Logger,
) *ProductService {
	return &ProductService{
		repo:        repo,
		scope:       scope,
		images:      images,
		thermometer: thermometer,
		logger:      logger,
	}
}

// =============================================================================
// Products
// =============================================================================

// ListProducts returns one page of products with categories and no items.
func (s *ProductService) ListProducts(ctx context.Context, page domain.Page) ([]domain.Product, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListProducts(ctx, repository.ListProductsParams{
		Limit:  int32(page.Size),
		Offset: int32(page.Offset()),
	})
	if err != nil {
		return nil, domain.Internal(err, "product.list", "failed to list products")
	}

	return s.withCategories(ctx, rows)
}

// GetProduct returns the product with items and categories.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	row, err := s.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.productDetail(ctx, row)
}

// CreateProduct stores a product assigned to the requested categories. Its
// image URL is derived from the category names.
func (s *ProductService) CreateProduct(ctx context.Context, params domain.ProductParams) (*domain.Product, error) {
	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (*domain.Product, error) {
		categories, err := s.identifyCategories(ctx, params.CategoryIDs)
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(categories))
		for _, c := range categories {
			names = append(names, c.Name)
		}

		row, err := s.repo.CreateProduct(ctx, repository.CreateProductParams{
			Name:        params.Name,
			Price:       params.Price,
			Description: params.Description,
			ImageUrl:    pgtype.Text{String: domain.DefaultImageURL(names), Valid: true},
		})
		if err != nil {
			return nil, domain.Internal(err, "product.create", "failed to create product")
		}

		if err := s.assignCategories(ctx, row.ID, categories); err != nil {
			return nil, err
		}

		p := mapRepoProductToDomain(row)
		p.Categories = categories
		return &p, nil
	})
}

// UpdateProduct rewrites name, price and description and replaces the
// category set. Items and image URL are kept.
func (s *ProductService) UpdateProduct(ctx context.Context, params domain.ProductParams) (*domain.Product, error) {
	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (*domain.Product, error) {
		existing, err := s.getProduct(ctx, params.ID)
		if err != nil {
			return nil, err
		}

		categories, err := s.identifyCategories(ctx, params.CategoryIDs)
		if err != nil {
			return nil, err
		}

		row, err := s.repo.UpdateProduct(ctx, repository.UpdateProductParams{
			ID:          params.ID,
			Name:        params.Name,
			Price:       params.Price,
			Description: params.Description,
		})
		if err != nil {
			return nil, domain.Internal(err, "product.update", "failed to update product")
		}

		if !existing.Price.Equal(row.Price) {
			carts, err := s.repo.ListCartIDsByProduct(ctx, row.ID)
			if err != nil {
				return nil, domain.Internal(err, "product.update", "failed to list carts")
			}
			if err := refreshCartTotals(ctx, s.repo, "product.update", carts); err != nil {
				return nil, err
			}
		}

		if err := s.repo.ClearProductCategories(ctx, row.ID); err != nil {
			return nil, domain.Internal(err, "product.update", "failed to clear categories")
		}
		if err := s.assignCategories(ctx, row.ID, categories); err != nil {
			return nil, err
		}

		return s.productDetail(ctx, row)
	})
}

// DeleteProduct removes the product and its items, dropping them from carts.
// The image file is removed first; a storage failure is logged and retried in
// the background.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.scope.Execute(ctx, func(ctx context.Context) error {
		if _, err := s.getProduct(ctx, id); err != nil {
			return err
		}

		removeImageFile(ctx, s.repo, s.images, s.logger, id)

		carts, err := s.repo.DeleteCartLinesByProduct(ctx, id)
		if err != nil {
			return domain.Internal(err, "product.delete", "failed to remove cart lines")
		}
		if _, err := s.repo.DeleteProduct(ctx, id); err != nil {
			return domain.Internal(err, "product.delete", "failed to delete product")
		}
		return refreshCartTotals(ctx, s.repo, "product.delete", carts)
	})
}

// =============================================================================
// Items
// =============================================================================

// AddItem creates a sized stock unit. Sizes are unique per product.
func (s *ProductService) AddItem(ctx context.Context, productID int64, params domain.ItemParams) (*domain.Item, error) {
	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (*domain.Item, error) {
		if _, err := s.getProduct(ctx, productID); err != nil {
			return nil, err
		}

		if err := s.checkSizeFree(ctx, productID, params.Size); err != nil {
			return nil, err
		}

		row, err := s.repo.CreateItem(ctx, repository.CreateItemParams{
			ProductID: productID,
			Size:      params.Size,
			Quantity:  params.Quantity,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrItemSizeExists(params.Size)
			}
			return nil, domain.Internal(err, "item.create", "failed to create item")
		}

		item := mapRepoItemToDomain(row)
		return &item, nil
	})
}

// UpdateItem changes size and quantity. Renaming to a size another item of
// the same product already has is a conflict.
func (s *ProductService) UpdateItem(ctx context.Context, params domain.ItemParams) (*domain.Item, error) {
	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (*domain.Item, error) {
		existing, err := s.repo.GetItemByID(ctx, params.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrItemNotFound(params.ID)
			}
			return nil, domain.Internal(err, "item.update", "failed to get item")
		}

		if params.Size != existing.Size {
			if err := s.checkSizeFree(ctx, existing.ProductID, params.Size); err != nil {
				return nil, err
			}
		}

		row, err := s.repo.UpdateItem(ctx, repository.UpdateItemParams{
			ID:       params.ID,
			Size:     params.Size,
			Quantity: params.Quantity,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrItemSizeExists(params.Size)
			}
			return nil, domain.Internal(err, "item.update", "failed to update item")
		}

		item := mapRepoItemToDomain(row)
		return &item, nil
	})
}

// DeleteItem removes the item and any cart lines holding it.
func (s *ProductService) DeleteItem(ctx context.Context, id int64) error {
	return s.scope.Execute(ctx, func(ctx context.Context) error {
		carts, err := s.repo.DeleteCartLinesByItem(ctx, id)
		if err != nil {
			return domain.Internal(err, "item.delete", "failed to remove cart lines")
		}
		n, err := s.repo.DeleteItem(ctx, id)
		if err != nil {
			return domain.Internal(err, "item.delete", "failed to delete item")
		}
		if n == 0 {
			return domain.ErrItemNotFound(id)
		}
		return refreshCartTotals(ctx, s.repo, "item.delete", carts)
	})
}

func (s *ProductService) checkSizeFree(ctx context.Context, productID int64, size string) error {
	_, err := s.repo.GetItemByProductAndSize(ctx, repository.GetItemByProductAndSizeParams{
		ProductID: productID,
		Size:      size,
	})
	if err == nil {
		return domain.ErrItemSizeExists(size)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Internal(err, "item.save", "failed to check item size")
	}
	return nil
}

// =============================================================================
// Category assignment
// =============================================================================

func (s *ProductService) AssignToCategory(ctx context.Context, productID, categoryID int64) error {
	return s.scope.Execute(ctx, func(ctx context.Context) error {
		assigned, err := s.assignment(ctx, productID, categoryID)
		if err != nil {
			return err
		}
		if assigned {
			return domain.ErrAlreadyAssigned(productID, categoryID)
		}

		if err := s.repo.AssignProductCategory(ctx, repository.AssignProductCategoryParams{
			ProductID:  productID,
			CategoryID: categoryID,
		}); err != nil {
			return domain.Internal(err, "product.assign", "failed to assign category")
		}
		return nil
	})
}

func (s *ProductService) UnassignFromCategory(ctx context.Context, productID, categoryID int64) error {
	return s.scope.Execute(ctx, func(ctx context.Context) error {
		assigned, err := s.assignment(ctx, productID, categoryID)
		if err != nil {
			return err
		}
		if !assigned {
			return domain.ErrNotAssigned(productID, categoryID)
		}

		if _, err := s.repo.UnassignProductCategory(ctx, repository.UnassignProductCategoryParams{
			ProductID:  productID,
			CategoryID: categoryID,
		}); err != nil {
			return domain.Internal(err, "product.unassign", "failed to unassign category")
		}
		return nil
	})
}

// assignment checks both ends exist and reports whether they are linked.
func (s *ProductService) assignment(ctx context.Context, productID, categoryID int64) (bool, error) {
	if _, err := s.getProduct(ctx, productID); err != nil {
		return false, err
	}
	if _, err := s.getCategory(ctx, categoryID); err != nil {
		return false, err
	}

	exists, err := s.repo.ProductCategoryExists(ctx, repository.ProductCategoryExistsParams{
		ProductID:  productID,
		CategoryID: categoryID,
	})
	if err != nil {
		return false, domain.Internal(err, "product.assignment", "failed to check assignment")
	}
	return exists, nil
}

// =============================================================================
// Weather matching
// =============================================================================

// MatchToWeather buckets the current temperature at city, country into a
// season and pages through the products having a category of that season.
// The candidate list is built in memory, ordered by product id.
func (s *ProductService) MatchToWeather(ctx context.Context, city, country string, page domain.Page) (*domain.WeatherMatch, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}

	celsius, err := s.thermometer.TemperatureCelsius(ctx, city, country)
	if err != nil {
		return nil, err
	}
	season := domain.SeasonForTemperature(celsius)

	categories, err := s.repo.ListCategoriesBySeason(ctx, string(season))
	if err != nil {
		return nil, domain.Internal(err, "product.match", "failed to list categories by season")
	}

	seen := make(map[int64]struct{})
	var matched []repository.Product
	for _, c := range categories {
		products, err := s.repo.ListProductsByCategory(ctx, c.ID)
		if err != nil {
			return nil, domain.Internal(err, "product.match", "failed to list category products")
		}
		for _, p := range products {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			matched = append(matched, p)
		}
	}
	slices.SortFunc(matched, func(a, b repository.Product) int {
		return cmp.Compare(a.ID, b.ID)
	})

	products, err := s.withCategories(ctx, domain.Paginate(matched, page))
	if err != nil {
		return nil, err
	}

	return &domain.WeatherMatch{
		Celsius:  celsius,
		Season:   season,
		Products: products,
	}, nil
}

// =============================================================================
// Helper Functions
// =============================================================================

func (s *ProductService) getProduct(ctx context.Context, id int64) (repository.Product, error) {
	row, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Product{}, domain.ErrProductNotFound(id)
		}
		return repository.Product{}, domain.Internal(err, "product.get", "failed to get product")
	}
	return row, nil
}

func (s *ProductService) getCategory(ctx context.Context, id int64) (repository.Category, error) {
	row, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Category{}, domain.ErrCategoryNotFound(id)
		}
		return repository.Category{}, domain.Internal(err, "category.get", "failed to get category")
	}
	return row, nil
}

// identifyCategories resolves every id in request order, dropping repeats.
func (s *ProductService) identifyCategories(ctx context.Context, ids []int64) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		row, err := s.getCategory(ctx, id)
		if err != nil {
			return nil, err
		}
		categories = append(categories, mapRepoCategoryToDomain(row))
	}
	return categories, nil
}

func (s *ProductService) assignCategories(ctx context.Context, productID int64, categories []domain.Category) error {
	for _, c := range categories {
		if err := s.repo.AssignProductCategory(ctx, repository.AssignProductCategoryParams{
			ProductID:  productID,
			CategoryID: c.ID,
		}); err != nil {
			return domain.Internal(err, "product.assign", "failed to assign category")
		}
	}
	return nil
}

func (s *ProductService) productDetail(ctx context.Context, row repository.Product) (*domain.Product, error) {
	items, err := s.repo.ListItemsByProduct(ctx, row.ID)
	if err != nil {
		return nil, domain.Internal(err, "product.items", "failed to list items")
	}

	products, err := s.withCategories(ctx, []repository.Product{row})
	if err != nil {
		return nil, err
	}

	p := products[0]
	p.Items = make([]domain.Item, 0, len(items))
	for _, it := range items {
		p.Items = append(p.Items, mapRepoItemToDomain(it))
	}
	return &p, nil
}

// withCategories maps rows to products and attaches their categories with
// one query.
func (s *ProductService) withCategories(ctx context.Context, rows []repository.Product) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(rows))
	if len(rows) == 0 {
		return products, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	links, err := s.repo.ListCategoriesForProducts(ctx, ids)
	if err != nil {
		return nil, domain.Internal(err, "product.categories", "failed to list product categories")
	}
	byProduct := make(map[int64][]domain.Category, len(rows))
	for _, l := range links {
		byProduct[l.ProductID] = append(byProduct[l.ProductID], domain.Category{
			ID:            l.ID,
			Name:          l.Name,
			WeatherSeason: domain.WeatherSeason(l.WeatherSeason),
		})
	}

	for _, r := range rows {
		p := mapRepoProductToDomain(r)
		p.Categories = byProduct[r.ID]
		if p.Categories == nil {
			p.Categories = []domain.Category{}
		}
		products = append(products, p)
	}
	return products, nil
}

func validatePage(p domain.Page) error {
	if p.Number < 0 {
		return domain.ErrInvalidParam("page", p.Number)
	}
	if p.Size < 1 {
		return domain.ErrInvalidParam("size", p.Size)
	}
	if !p.Valid() {
		return domain.ErrInvalidParam("page", p.Number)
	}
	return nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func mapRepoProductToDomain(p repository.Product) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    textPtr(p.ImageUrl),
	}
}

func mapRepoProductToSummary(p repository.Product) domain.ProductSummary {
	return domain.ProductSummary{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    textPtr(p.ImageUrl),
	}
}

func mapRepoItemToDomain(i repository.Item) domain.Item {
	return domain.Item{
		ID:        i.ID,
		ProductID: i.ProductID,
		Size:      i.Size,
		Quantity:  i.Quantity,
	}
}
