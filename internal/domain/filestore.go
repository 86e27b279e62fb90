package domain

import (
	"context"
	"errors"
)

// ErrFileNotFound is returned by FileStore.Read for a missing path.
var ErrFileNotFound = errors.New("file not found")

// FileStore keeps uploaded file contents.
type FileStore interface {
	// Save stores content under a unique name derived from filename and
	// returns the path to persist.
	Save(ctx context.Context, filename string, content []byte) (string, error)
	Read(ctx context.Context, path string) ([]byte, error)
	// Delete removes the file; a missing file is not an error.
	Delete(ctx context.Context, path string) error
}
