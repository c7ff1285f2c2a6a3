package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// S3BlobStore keeps blobs in an S3 (or S3-compatible) bucket.
type S3BlobStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	logger        *logger.Logger
}

// NewS3BlobStore loads the AWS configuration and checks the bucket.
func NewS3BlobStore(ctx context.Context, cfg config.Blob, log *logger.Logger) (*S3BlobStore, error) {
	var awsOpts []func(*awsconfig.LoadOptions) error
	awsOpts = append(awsOpts, awsconfig.WithRegion(cfg.Region))

	// explicit credentials take precedence over the default chain
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		awsOpts = append(awsOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)

	if _, err = client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(cfg.Bucket)}); err != nil {
		return nil, fmt.Errorf("failed to access bucket %s: %w", cfg.Bucket, err)
	}
	log.Debug().Str("func", "NewS3BlobStore").Str("bucket", cfg.Bucket).Msg("bucket is reachable")

	return &S3BlobStore{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		logger:        log,
	}, nil
}

// Upload without overwrite relies on the conditional write "If-None-Match: *".
func (s *S3BlobStore) Upload(ctx context.Context, p string, data []byte, overwrite bool) error {
	if err := validateBlobPath(p); err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(p),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(ContentTypeFor(p)),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if !overwrite {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed" {
			return fmt.Errorf("%w: %s", ErrBlobAlreadyExists, p)
		}
		logger.FromContext(ctx).Err(err).Str("func", "S3BlobStore.Upload").Str("path", p).Msg("failed to upload object")
		return fmt.Errorf("failed to upload object: %w", err)
	}

	return nil
}

func (s *S3BlobStore) CreateSignedURL(ctx context.Context, p string, ttl time.Duration) (string, error) {
	if err := validateBlobPath(p); err != nil {
		return "", err
	}

	result, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(p),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return result.URL, nil
}
