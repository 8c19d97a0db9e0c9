package postgres

import (
	"context"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/jobs"
	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/storage"
	"github.com/dukerupert/wardrobe/internal/transaction"
)

const imageContentType = "image/png"

// ImageService implements domain.ImageService. Files live in storage under
// "<productId>.png"; the product row records the key as its image URL.
type ImageService struct {
	repo   repository.Querier
	scope  transaction.Scope
	images storage.Storage
	logger *slog.Logger
}

var _ domain.ImageService = (*ImageService)(nil)

func NewImageService(repo repository.Querier, scope transaction.Scope, images storage.Storage, logger *slog.Logger) *ImageService {
	return &ImageService{
		repo:   repo,
		scope:  scope,
		images: images,
		logger: logger,
	}
}

// UploadImage stores the image, replacing any previous one, and points the
// product at it. A storage failure reports false and leaves the product as is.
func (s *ImageService) UploadImage(ctx context.Context, productID int64, r io.Reader) (bool, error) {
	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (bool, error) {
		if err := s.requireProduct(ctx, productID); err != nil {
			return false, err
		}

		key := domain.ImageKey(productID)
		if err := s.images.Put(ctx, key, r, imageContentType); err != nil {
			s.logger.Warn("failed to store product image", "product_id", productID, "error", err)
			return false, nil
		}

		if err := s.repo.UpdateProductImageURL(ctx, repository.UpdateProductImageURLParams{
			ID:       productID,
			ImageUrl: pgtype.Text{String: key, Valid: true},
		}); err != nil {
			return false, domain.Internal(err, "image.upload", "failed to update image url")
		}
		return true, nil
	})
}

// DeleteImage removes the stored file and clears the product's image URL even
// when the removal fails.
func (s *ImageService) DeleteImage(ctx context.Context, productID int64) (bool, error) {
	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (bool, error) {
		if err := s.requireProduct(ctx, productID); err != nil {
			return false, err
		}

		removed := removeImageFile(ctx, s.repo, s.images, s.logger, productID)

		if err := s.repo.UpdateProductImageURL(ctx, repository.UpdateProductImageURLParams{
			ID: productID,
		}); err != nil {
			return false, domain.Internal(err, "image.delete", "failed to clear image url")
		}
		return removed, nil
	})
}

// ReadImage returns the bytes of the product's stored image.
func (s *ImageService) ReadImage(ctx context.Context, productID int64) ([]byte, error) {
	row, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrProductNotFound(productID)
		}
		return nil, domain.Internal(err, "image.read", "failed to get product")
	}

	key := domain.ImageKey(productID)
	if !row.ImageUrl.Valid || row.ImageUrl.String != key {
		return nil, domain.ErrImageNotFound(productID)
	}

	rc, err := s.images.Get(ctx, key)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, domain.ErrImageNotFound(productID)
		}
		return nil, domain.Internal(err, "image.read", "failed to open image")
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, domain.Internal(err, "image.read", "failed to read image")
	}
	return data, nil
}

func (s *ImageService) requireProduct(ctx context.Context, productID int64) error {
	if _, err := s.repo.GetProductByID(ctx, productID); err != nil {
		if isNoRows(err) {
			return domain.ErrProductNotFound(productID)
		}
		return domain.Internal(err, "image.product", "failed to get product")
	}
	return nil
}

// removeImageFile deletes the stored image of a product and reports whether
// a file was removed. A failure other than a missing file enqueues a retry
// job in the caller's transaction.
func removeImageFile(ctx context.Context, repo repository.Querier, images storage.Storage, logger *slog.Logger, productID int64) bool {
	err := images.Delete(ctx, domain.ImageKey(productID))
	if err == nil {
		return true
	}
	if storage.IsNotFound(err) {
		return false
	}

	logger.Warn("failed to delete product image", "product_id", productID, "error", err)
	if err := jobs.EnqueueDeleteImage(ctx, repo, productID); err != nil {
		logger.Error("failed to enqueue image delete", "product_id", productID, "error", err)
	}
	return false
}
