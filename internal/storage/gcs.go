package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"donorhub.app/api/core/config"
)

const uploadTimeout = 2 * time.Minute

type gcsStorage struct {
	client  *storage.Client
	bucket  *storage.BucketHandle
	baseURL string
}

// NewGCS uses Application Default Credentials unless a credentials file is configured.
func NewGCS(ctx context.Context, cfg config.StorageConfig) (ObjectStorage, error) {
	var opts []option.ClientOption
	if cfg.GCSCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentials))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	baseURL := "https://storage.googleapis.com/" + cfg.GCSBucket
	if cfg.PublicBaseURL != "" && strings.HasPrefix(cfg.PublicBaseURL, "https://") {
		baseURL = strings.TrimSuffix(cfg.PublicBaseURL, "/")
	}

	return &gcsStorage{
		client:  client,
		bucket:  client.Bucket(cfg.GCSBucket),
		baseURL: baseURL,
	}, nil
}

func (s *gcsStorage) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := s.bucket.Object(name).NewWriter(ctx)
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		w.ContentType = ct
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("copy to GCS writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload %q: %w", name, err)
	}

	return s.baseURL + "/" + name, nil
}

func (s *gcsStorage) Delete(ctx context.Context, url string) error {
	name, err := objectNameFromURL(s.baseURL, url)
	if err != nil {
		return err
	}
	if err := s.bucket.Object(name).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("delete object %q: %w", name, err)
	}
	return nil
}

func (s *gcsStorage) Close() error {
	return s.client.Close()
}
