// Package adapter contains the infrastructure adapters used by the loxcheck runner.
package adapter

import (
	"context"
	"os"
	"path/filepath"

	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when discovering and reading test scripts, so the workflow logic can be
// tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root recursively, calling fn for every entry. Entries are
	// reported with Lstat semantics, so symlinks are not followed.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for path, following symlinks.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every entry under root. It stops early when ctx is cancelled.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from discovery over user-supplied roots
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}
