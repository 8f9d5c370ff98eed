package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"donorhub.app/api/core/config"
)

// ErrForeignURL is returned by Delete for URLs this storage did not hand out.
var ErrForeignURL = errors.New("url does not belong to this storage")

// ObjectStorage persists uploaded files and hands back a retrievable URL.
type ObjectStorage interface {
	Put(ctx context.Context, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStorage, error) {
	if cfg.UsesGCS() {
		return NewGCS(ctx, cfg)
	}
	return NewLocal(cfg.LocalDir, cfg.PublicBaseURL)
}

// ObjectKey builds a collision-free key for an upload, grouped by prefix and day:
// "transaction/2024/05/01/<uuid>.jpg".
func ObjectKey(prefix, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("%s/%s/%s%s", prefix, time.Now().UTC().Format("2006/01/02"), uuid.New().String(), ext)
}

func objectNameFromURL(baseURL, url string) (string, error) {
	prefix := strings.TrimSuffix(baseURL, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, url)
	}
	name := strings.TrimPrefix(url, prefix)
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, url)
	}
	return name, nil
}
