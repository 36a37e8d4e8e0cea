// Package storage issues presigned upload URLs for product and meal images
// kept in an S3 compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/diet-tracker/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrNotConfigured = errors.New("object storage is not configured")

type PresignedUpload struct {
	URL       string
	Key       string
	PublicURL string
	Expires   time.Duration
}

type Storage interface {
	PresignUpload(ctx context.Context, key, contentType string) (*PresignedUpload, error)
}

type presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// seams for tests
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
	newS3PresignClient    = func(c *s3.Client) presigner { return s3.NewPresignClient(c) }
)

type s3Storage struct {
	presigner presigner
	cfg       *config.Storage
}

func NewS3Storage(ctx context.Context, cfg *config.Storage) (Storage, error) {

	if cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}

	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			// MinIO and other self-hosted endpoints do not route virtual-hosted buckets
			o.UsePathStyle = true
		}
	})

	return &s3Storage{presigner: newS3PresignClient(client), cfg: cfg}, nil
}

func (s *s3Storage) PresignUpload(ctx context.Context, key, contentType string) (*PresignedUpload, error) {

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.cfg.PresignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}

	return &PresignedUpload{
		URL:       req.URL,
		Key:       key,
		PublicURL: s.publicURL(key),
		Expires:   s.cfg.PresignExpiry,
	}, nil
}

func (s *s3Storage) publicURL(key string) string {
	if s.cfg.PublicURL != "" {
		return strings.TrimRight(s.cfg.PublicURL, "/") + "/" + key
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
