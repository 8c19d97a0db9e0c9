package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// BucketConfig addresses an S3-compatible bucket. An empty Endpoint means
// AWS itself; R2 and MinIO need theirs set.
type BucketConfig struct {
	Endpoint    string
	Region      string
	AccessKeyID string
	SecretKey   string
	Bucket      string
	Prefix      string // prepended to every key, e.g. "images/"
	PathStyle   bool
}

// R2Endpoint is the S3 API endpoint of a Cloudflare account.
func R2Endpoint(accountID string) string {
	if accountID == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
}

// BucketStorage keeps images as objects in one bucket.
type BucketStorage struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ Storage = (*BucketStorage)(nil)

func NewBucketStorage(ctx context.Context, cfg BucketConfig) (*BucketStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket name is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" || cfg.SecretKey != "" {
		if cfg.AccessKeyID == "" || cfg.SecretKey == "" {
			return nil, errors.New("storage: access key id and secret must be set together")
		}
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	return newBucketStorage(client, cfg.Bucket, cfg.Prefix), nil
}

func newBucketStorage(client *s3.Client, bucket, prefix string) *BucketStorage {
	return &BucketStorage{client: client, bucket: bucket, prefix: prefix}
}

func (s *BucketStorage) object(key string) *string {
	return aws.String(s.prefix + key)
}

func (s *BucketStorage) Put(ctx context.Context, key string, content io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.object(key),
		Body:   content,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *BucketStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.object(key),
	})
	switch {
	case isMissing(err):
		return nil, ErrFileNotFound(key)
	case err != nil:
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return out.Body, nil
}

// Delete answers ErrNotFound for a missing key, which DeleteObject itself
// would silently accept.
func (s *BucketStorage) Delete(ctx context.Context, key string) error {
	ok, err := s.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFileNotFound(key)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.object(key),
	}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *BucketStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.object(key),
	})
	switch {
	case isMissing(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("head %s: %w", key, err)
	}
	return true, nil
}

// List returns keys with the configured prefix stripped.
func (s *BucketStorage) List(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix)
	}

	var keys []string
	pages := s3.NewListObjectsV2Paginator(s.client, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range page.Contents {
			key := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			if key != "" && !strings.Contains(key, "/") {
				keys = append(keys, key)
			}
		}
	}
	return keys, nil
}

func isMissing(err error) bool {
	if err == nil {
		return false
	}
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	return errors.As(err, &noSuchKey) || errors.As(err, &notFound)
}
