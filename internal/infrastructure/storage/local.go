package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage keeps blobs in a flat directory on the local filesystem.
// Files are served back to clients through a static route mapping the URL
// prefix to the directory.
type LocalStorage struct {
	dir       string
	urlPrefix string
}

// NewLocalStorage creates the upload directory if it does not exist yet.
func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &LocalStorage{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

func (s *LocalStorage) Store(_ context.Context, data []byte, ext string) (string, error) {
	name := uuid.New().String() + normalizeExt(ext)

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob %s: %w", name, err)
	}

	return s.urlPrefix + "/" + name, nil
}

func (s *LocalStorage) Delete(_ context.Context, relativeURL string) error {
	// Only the final path element matters; the prefix is routing concern.
	name := path.Base(relativeURL)
	if name == "." || name == "/" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete blob %s: %w", name, err)
	}
	return nil
}

// normalizeExt ensures a leading dot, matching the original filenames
// clients may already hold.
func normalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}
