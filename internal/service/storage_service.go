package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Studynest/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// StorageProvider archives uploaded source files.
type StorageProvider interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}

// ObjectKey returns a fresh key for an upload under prefix, keeping the
// file extension.
func ObjectKey(prefix, ext string) string {
	return prefix + "/" + uuid.NewString() + ext
}

func NewStorageProvider(cfg *config.Config) (StorageProvider, error) {
	if cfg.Storage.Type == "minio" {
		p, err := NewMinioStorageProvider(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return &LocalStorageProvider{root: cfg.Storage.LocalPath}, nil
}

type LocalStorageProvider struct {
	root string
}

func NewLocalStorageProvider(root string) *LocalStorageProvider {
	return &LocalStorageProvider{root: root}
}

func (p *LocalStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	dst := filepath.Join(p.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(p.root, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

type MinioStorageProvider struct {
	client *minio.Client
	bucket string
}

func NewMinioStorageProvider(cfg config.Storage) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("bucket", cfg.MinioBucket).Msg("Could not check MinIO bucket, uploads may fail")
	case !exists:
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			log.Warn().Err(err).Str("bucket", cfg.MinioBucket).Msg("Could not create MinIO bucket")
		}
	}
	return &MinioStorageProvider{client: client, bucket: cfg.MinioBucket}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := p.client.PutObject(ctx, p.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (p *MinioStorageProvider) Delete(ctx context.Context, key string) error {
	return p.client.RemoveObject(ctx, p.bucket, key, minio.RemoveObjectOptions{})
}
