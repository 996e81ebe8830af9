package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"resumeflow/internal/config"
)

type BlobStorageService interface {
	UploadResume(ctx context.Context, userID int64, localPath string) (string, error)
}

type blobStorageService struct {
	client *minio.Client
	cfg    config.BlobConfig
	logger *zap.Logger
}

func NewBlobStorageService(cfg config.BlobConfig, logger *zap.Logger) (BlobStorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blob storage client: %w", err)
	}

	s := &blobStorageService{
		client: client,
		cfg:    cfg,
		logger: logger,
	}

	if err := s.ensureBucketExists(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *blobStorageService) ensureBucketExists(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.cfg.Bucket, err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.cfg.Bucket, err)
		}
		s.logger.Info("blob bucket created", zap.String("bucket", s.cfg.Bucket))
	}

	return nil
}

// UploadResume stores the PDF under user_{id}_{original filename} and
// returns the durable object URL used as the document reference.
func (s *blobStorageService) UploadResume(ctx context.Context, userID int64, localPath string) (string, error) {
	objectName := fmt.Sprintf("user_%d_%s", userID, filepath.Base(localPath))

	_, err := s.client.FPutObject(ctx, s.cfg.Bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload resume to blob storage: %w", err)
	}

	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, objectName), nil
}
