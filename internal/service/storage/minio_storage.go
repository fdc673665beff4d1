package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/config"
)

// ObjectStorage is where export archives are written.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, data io.Reader, size int64) error
	PresignedURL(ctx context.Context, key string) (string, error)
}

type MinIOStorage struct {
	client        *minio.Client
	bucket        string
	region        string
	presignExpiry time.Duration
	logger        zerolog.Logger

	ensureMu      sync.Mutex
	bucketEnsured bool
}

// NewMinIOStorage does not contact the server; the bucket is created on first write.
func NewMinIOStorage(cfg config.StorageConfig, logger zerolog.Logger) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Str("bucket", cfg.Bucket).
		Bool("ssl", cfg.UseSSL).
		Msg("MinIO export storage configured")

	return &MinIOStorage{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		presignExpiry: expiry,
		logger:        logger,
	}, nil
}

func (s *MinIOStorage) ensureBucket(ctx context.Context) error {
	s.ensureMu.Lock()
	defer s.ensureMu.Unlock()
	if s.bucketEnsured {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.Info().Str("bucket", s.bucket).Msg("Created new bucket")
	}

	s.bucketEnsured = true
	return nil
}

func (s *MinIOStorage) Put(ctx context.Context, key, contentType string, data io.Reader, size int64) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}

	s.logger.Debug().
		Str("bucket", s.bucket).
		Str("key", key).
		Str("etag", info.ETag).
		Int64("size", size).
		Msg("Object uploaded to MinIO")

	return nil
}

func (s *MinIOStorage) PresignedURL(ctx context.Context, key string) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.presignExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}
	return url.String(), nil
}
