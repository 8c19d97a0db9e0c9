package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBucket answers the handful of S3 calls BucketStorage reads with.
func fakeBucket(t *testing.T, objects map[string]string) *BucketStorage {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("list-type") == "2" {
			w.Header().Set("Content-Type", "application/xml")
			var b strings.Builder
			b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/"><Name>wardrobe</Name><IsTruncated>false</IsTruncated>`)
			for key := range objects {
				if strings.HasPrefix(key, r.URL.Query().Get("prefix")) {
					fmt.Fprintf(&b, "<Contents><Key>%s</Key></Contents>", key)
				}
			}
			b.WriteString(`</ListBucketResult>`)
			_, _ = io.WriteString(w, b.String())
			return
		}

		key := strings.TrimPrefix(r.URL.Path, "/wardrobe/")
		body, ok := objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			if r.Method != http.MethodHead {
				_, _ = io.WriteString(w, `<Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)
			}
			return
		}
		switch r.Method {
		case http.MethodHead:
			w.Header().Set("Content-Length", fmt.Sprint(len(body)))
		case http.MethodGet:
			_, _ = io.WriteString(w, body)
		case http.MethodDelete:
			delete(objects, key)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider("key", "secret", ""),
	})
	return newBucketStorage(client, "wardrobe", "images/")
}

func TestBucketStorage_ReadPath(t *testing.T) {
	ctx := context.Background()
	store := fakeBucket(t, map[string]string{
		"images/1.png":     "png-bytes",
		"images/2.jpg":     "jpg-bytes",
		"thumbs/1.png":     "elsewhere",
		"images/old/3.png": "nested",
	})

	ok, err := store.Exists(ctx, "1.png")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "9.png")
	require.NoError(t, err)
	assert.False(t, ok)

	rc, err := store.Get(ctx, "2.jpg")
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "jpg-bytes", string(data))

	_, err = store.Get(ctx, "9.png")
	assert.True(t, IsNotFound(err))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1.png", "2.jpg"}, keys)
}

func TestBucketStorage_Delete(t *testing.T) {
	ctx := context.Background()
	store := fakeBucket(t, map[string]string{"images/1.png": "png-bytes"})

	require.NoError(t, store.Delete(ctx, "1.png"))
	assert.True(t, IsNotFound(store.Delete(ctx, "1.png")))
}

func TestR2Endpoint(t *testing.T) {
	assert.Equal(t, "https://abc123.r2.cloudflarestorage.com", R2Endpoint("abc123"))
	assert.Empty(t, R2Endpoint(""))
}

func TestNewBucketStorage_RequiresBucket(t *testing.T) {
	_, err := NewBucketStorage(context.Background(), BucketConfig{})
	assert.Error(t, err)
}
