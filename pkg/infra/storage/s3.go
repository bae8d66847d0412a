package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/config"
)

// PresignedUpload lets the client push media straight to the bucket; the
// server never proxies the bytes for ungated uploads.
type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Path      string `json:"path"`
}

//go:generate mockery --name=MediaStore --dir=. --output=./mocks --filename=media_store_mock.go --case=underscore --with-expecter
type MediaStore interface {
	Upload(ctx context.Context, path, contentType string, body []byte) (string, error)
	PresignUpload(ctx context.Context, path, contentType string) (*PresignedUpload, error)
	Delete(ctx context.Context, path string) error
}

type S3Store struct {
	logger        *logrus.Logger
	client        *s3.Client
	presigner     *s3.PresignClient
	uploader      *manager.Uploader
	bucket        string
	region        string
	presignExpiry time.Duration
}

func NewS3Store(ctx context.Context, cfg config.StorageConfig, logger *logrus.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket must be configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &S3Store{
		logger:        logger,
		client:        client,
		presigner:     s3.NewPresignClient(client),
		uploader:      manager.NewUploader(client),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		presignExpiry: time.Duration(cfg.PresignExpiry) * time.Second,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, path, contentType string, body []byte) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return s.publicURL(path), nil
}

func (s *S3Store) PresignUpload(ctx context.Context, path, contentType string) (*PresignedUpload, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for %s: %w", path, err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		PublicURL: s.publicURL(path),
		Path:      path,
	}, nil
}

// Delete retries transient S3 failures; object deletion is the last step of
// work removal and a stale object is worse than a slower response.
func (s *S3Store) Delete(ctx context.Context, path string) error {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(path),
		})
		if err != nil {
			s.logger.WithError(err).WithField("path", path).Warn("delete attempt failed")
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (s *S3Store) publicURL(path string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, path)
}
