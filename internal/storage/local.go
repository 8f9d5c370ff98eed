package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// localStorage keeps objects on disk, for development.
type localStorage struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (ObjectStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &localStorage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *localStorage) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	p, err := s.path(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}

	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("create object %q: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(p)
		return "", fmt.Errorf("write object %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close object %q: %w", name, err)
	}

	return s.baseURL + "/" + filepath.ToSlash(name), nil
}

func (s *localStorage) Delete(ctx context.Context, url string) error {
	name, err := objectNameFromURL(s.baseURL, url)
	if err != nil {
		return err
	}
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete object %q: %w", name, err)
	}
	return nil
}

// Dir is served as static files by the router.
func (s *localStorage) Dir() string {
	return s.dir
}

func (s *localStorage) path(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	return filepath.Join(s.dir, clean), nil
}
