package blobs

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"Threddit/internal/monitoring"
)

// s3API is the slice of the S3 client this store uses. Narrowing to an
// interface lets tests substitute a fake client.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3Store implements Store on top of an S3 bucket.
type s3Store struct {
	client s3API
	bucket string
	region string
}

// NewS3Store creates a Store backed by the given S3 bucket. Credentials
// are resolved through the SDK's default chain (env vars, shared config,
// instance role).
func NewS3Store(ctx context.Context, bucket, region string) (Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if region == "" {
		return nil, fmt.Errorf("region is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &s3Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Upload writes the blob to the bucket and returns its public link.
func (s *s3Store) Upload(ctx context.Context, key string, data []byte, contentType string) (*BlobRef, error) {
	if key == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("data cannot be empty")
	}
	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("data size %d bytes exceeds maximum of %d bytes (6MB)", len(data), MaxImageSize)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		monitoring.BlobUploads.WithLabelValues("error").Inc()
		return nil, &StoreError{Op: "upload", Err: err}
	}
	monitoring.BlobUploads.WithLabelValues("success").Inc()

	return &BlobRef{
		Link: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		Key:  key,
	}, nil
}

// Delete removes the blob stored under key.
func (s *s3Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return &StoreError{Op: "delete", Err: err}
	}

	return nil
}
