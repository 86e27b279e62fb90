// Package filestore keeps uploaded files on local disk.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"study-assistant/internal/domain"

	"github.com/google/uuid"
)

// LocalFileStore stores files under a single directory.
type LocalFileStore struct {
	dir string
}

// NewLocalFileStore creates dir if needed.
func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalFileStore{dir: dir}, nil
}

// Save writes content to "<uuid>-<base name>" and returns its path.
func (s *LocalFileStore) Save(ctx context.Context, filename string, content []byte) (string, error) {
	name := uuid.NewString() + "-" + sanitizeFilename(filename)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return path, nil
}

func (s *LocalFileStore) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

func (s *LocalFileStore) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "upload.pdf"
	}
	return base
}

var _ domain.FileStore = (*LocalFileStore)(nil)
