// Package adapter contains UI and infrastructure adapters for the traitpack CLI.
package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	m "traitpack.dev/pkg/traitpack/internal/model"
)

// TraitFSAdapter abstracts the filesystem operations the domain layer relies
// on when scanning a traits directory, so the workflow can be tested with
// injected failures instead of real permission errors.
type TraitFSAdapter interface {
	// ReadDir lists the immediate children of dir, sorted by name.
	ReadDir(ctx context.Context, dir m.Path) ([]fs.DirEntry, error)

	// Walk traverses root recursively in lexical order. A symlinked root is
	// resolved first; symlinks below it are reported but not followed.
	Walk(ctx context.Context, root m.Path, fn fs.WalkDirFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for path, following symlinks.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFile replaces path with content. The file is written to a
	// temporary sibling and renamed, so readers never see a partial file.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalTraitFSAdapter implements TraitFSAdapter on top of the os package.
type LocalTraitFSAdapter struct{}

// NewLocalTraitFSAdapter constructs a LocalTraitFSAdapter instance ready to
// be wired into the workflow.
func NewLocalTraitFSAdapter() *LocalTraitFSAdapter {
	return &LocalTraitFSAdapter{}
}

// ReadDir lists the entries of dir.
func (a *LocalTraitFSAdapter) ReadDir(ctx context.Context, dir m.Path) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadDir(string(dir))
}

// Walk iterates over every entry under root.
func (a *LocalTraitFSAdapter) Walk(ctx context.Context, root m.Path, fn fs.WalkDirFunc) error {
	rootStr := string(root)

	resolved, err := filepath.EvalSymlinks(rootStr)
	if err != nil {
		return fn(rootStr, nil, err)
	}

	return filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if resolved != rootStr {
			rel, relErr := filepath.Rel(resolved, path)
			if relErr != nil {
				return relErr
			}

			path = filepath.Join(rootStr, rel)
		}

		return fn(path, d, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalTraitFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - reading user-selected trait assets is the point of the tool
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalTraitFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// WriteFile writes content through a temporary file in the target directory.
func (a *LocalTraitFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := string(path)

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if committed {
			return
		}

		_ = tmp.Close()

		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			slog.Warn("Failed to remove temp file", "path", tmpName, "error", rmErr)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename %s: %w", target, err)
	}

	committed = true

	return nil
}

// RelPath returns the relative path from base to target.
func (a *LocalTraitFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalTraitFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
