// Package upload stores media files in S3-compatible object storage and
// hands back public URLs for use inside content documents.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"folio/api/internal/util"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// allowedExtensions is the closed set of media types a portfolio may embed.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

// Config holds object storage connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	UseSSL    bool
}

// Service uploads media to a MinIO (or any S3-compatible) bucket.
type Service struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewService connects to object storage and ensures the bucket exists.
func NewService(ctx context.Context, cfg Config) (*Service, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &Service{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Store uploads one file under a per-owner prefix and returns its public
// URL. The object name is regenerated on every upload so a re-uploaded
// file never overwrites an older one still referenced by a document.
func (s *Service) Store(ctx context.Context, ownerID, filename string, body io.Reader, size int64) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("%s/%d-%s%s", ownerID, time.Now().Unix(), util.NewID("med"), ext)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.publicURL + "/" + s.bucket + "/" + objectName, nil
}

// Ping checks that the bucket is still reachable.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}
