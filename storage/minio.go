// Package storage holds the optional MinIO client used for uploaded cover
// images. When no endpoint is configured the catalog only accepts cover URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"harmonic/config"
	"harmonic/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	minioClient *minio.Client
	minioCfg    *config.Config
)

// InitMinio initializes the MinIO client and ensures the bucket exists.
// A missing endpoint disables uploads without failing startup.
func InitMinio(cfg *config.Config) error {
	if cfg.MinioEndpoint == "" {
		logger.Info("MinIO not configured, cover uploads disabled")
		return nil
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.MinioBucket, err)
		}
		logger.Info("bucket created", logger.String("bucket", cfg.MinioBucket))
	}

	minioClient = client
	minioCfg = cfg
	logger.Info("MinIO initialized", logger.String("bucket", cfg.MinioBucket))
	return nil
}

// Enabled reports whether cover uploads are available.
func Enabled() bool {
	return minioClient != nil
}

// UploadCover stores a cover image under covers/ and returns its public URL.
func UploadCover(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error) {
	if minioClient == nil {
		return "", fmt.Errorf("MinIO client not available")
	}

	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = filename[idx:]
	}
	objectName := fmt.Sprintf("covers/%s%s", uuid.NewString(), ext)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := minioClient.PutObject(ctx, minioCfg.MinioBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload cover %s: %w", objectName, err)
	}

	base := minioCfg.MinioPublicURL
	if base == "" {
		scheme := "http"
		if minioCfg.MinioUseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, minioCfg.MinioEndpoint, minioCfg.MinioBucket)
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), objectName), nil
}
