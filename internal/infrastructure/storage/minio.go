package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"lostfound-backend/internal/config"
)

// MinIOStorage is the BlobStore driver for deployments that keep uploads in
// an object store instead of the local disk. Relative URLs keep the same
// shape as the local driver; the static route is expected to proxy or the
// public base URL to point at the bucket.
type MinIOStorage struct {
	client    *minio.Client
	bucket    string
	urlPrefix string
}

// NewMinIOStorage connects to MinIO and creates the bucket when missing.
func NewMinIOStorage(cfg config.MinIOConfig, urlPrefix string) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client:    client,
		bucket:    cfg.Bucket,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

func (s *MinIOStorage) Store(ctx context.Context, data []byte, ext string) (string, error) {
	name := uuid.New().String() + normalizeExt(ext)

	contentType := mime.TypeByExtension(normalizeExt(ext))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		name,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

func (s *MinIOStorage) Delete(ctx context.Context, relativeURL string) error {
	name := path.Base(relativeURL)
	if name == "." || name == "/" {
		return nil
	}

	// RemoveObject on a missing key is already a no-op in MinIO.
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", name, err)
	}
	return nil
}
