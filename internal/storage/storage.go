// Package storage keeps product images in a local directory or an
// S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dukerupert/wardrobe/internal"
)

// Storage is a flat key/value store for image files. Keys are the file names
// the product service assigns ("<productId>.<ext>").
type Storage interface {
	// Put replaces whatever is stored under key.
	Put(ctx context.Context, key string, content io.Reader, contentType string) error

	// Get opens the object for reading; the caller closes it.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// List returns every stored key.
	List(ctx context.Context) ([]string, error)
}

var ErrR2AccountRequired = errors.New("storage: R2 account id is required")

// NewStorage picks the backend named by cfg.Provider.
func NewStorage(ctx context.Context, cfg internal.StorageConfig) (Storage, error) {
	switch cfg.Provider {
	case "", "local":
		return NewLocalStorage(cfg.ImageDir)
	case "s3":
		return NewBucketStorage(ctx, BucketConfig{
			Endpoint:    cfg.Bucket.Endpoint,
			Region:      cfg.Bucket.Region,
			AccessKeyID: cfg.Bucket.AccessKeyID,
			SecretKey:   cfg.Bucket.SecretKey,
			Bucket:      cfg.Bucket.Name,
			Prefix:      cfg.Bucket.Prefix,
			PathStyle:   cfg.Bucket.PathStyle,
		})
	case "r2":
		if cfg.Bucket.R2AccountID == "" {
			return nil, ErrR2AccountRequired
		}
		return NewBucketStorage(ctx, BucketConfig{
			Endpoint:    R2Endpoint(cfg.Bucket.R2AccountID),
			Region:      "auto",
			AccessKeyID: cfg.Bucket.AccessKeyID,
			SecretKey:   cfg.Bucket.SecretKey,
			Bucket:      cfg.Bucket.Name,
			Prefix:      cfg.Bucket.Prefix,
			PathStyle:   true,
		})
	}
	return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
}
