package store

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// MinIOBlobStore keeps blobs in a MinIO bucket.
type MinIOBlobStore struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinIOBlobStore connects to MinIO and creates the bucket if missing.
func NewMinIOBlobStore(ctx context.Context, cfg config.Blob, log *logger.Logger) (*MinIOBlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info().Str("func", "NewMinIOBlobStore").Str("bucket", cfg.Bucket).Msg("bucket created")
	}

	return &MinIOBlobStore{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

func (s *MinIOBlobStore) Upload(ctx context.Context, p string, data []byte, overwrite bool) error {
	if err := validateBlobPath(p); err != nil {
		return err
	}

	if !overwrite {
		_, err := s.client.StatObject(ctx, s.bucket, p, minio.StatObjectOptions{})
		if err == nil {
			return fmt.Errorf("%w: %s", ErrBlobAlreadyExists, p)
		}
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return fmt.Errorf("failed to stat object: %w", err)
		}
	}

	_, err := s.client.PutObject(ctx, s.bucket, p, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: ContentTypeFor(p),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "MinIOBlobStore.Upload").Str("path", p).Msg("failed to upload object")
		return fmt.Errorf("failed to upload object: %w", err)
	}

	return nil
}

func (s *MinIOBlobStore) CreateSignedURL(ctx context.Context, p string, ttl time.Duration) (string, error) {
	if err := validateBlobPath(p); err != nil {
		return "", err
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, p, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return u.String(), nil
}

// ContentTypeFor returns the MIME type a blob is stored and served with.
// Text payloads, encrypted or not, stay text.
func ContentTypeFor(p string) string {
	if IsTextExtension(Extension(p)) {
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}
