package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"traitpack.dev/pkg/traitpack/internal/adapter"
	m "traitpack.dev/pkg/traitpack/internal/model"
)

// Scanner enumerates the categories of a traits directory.
type Scanner interface {
	Scan(ctx context.Context, root m.Path) ([]m.Category, error)
}

type scanner struct {
	fsAdapter adapter.TraitFSAdapter
}

// NewScanner creates a Scanner backed by fsAdapter.
func NewScanner(fsAdapter adapter.TraitFSAdapter) Scanner {
	return &scanner{fsAdapter: fsAdapter}
}

// Scan returns one category per immediate subdirectory of root, sorted by
// name. Plain files in root are ignored.
func (s *scanner) Scan(ctx context.Context, root m.Path) ([]m.Category, error) {
	entries, err := s.fsAdapter.ReadDir(ctx, root)
	if err != nil {
		slog.Error("Failed to list traits directory", "root", root, "error", err)
		return nil, fmt.Errorf("list traits directory %s: %w", root, err)
	}

	categories := make([]m.Category, 0, len(entries))

	for _, entry := range entries {
		dir := s.fsAdapter.JoinPath(string(root), entry.Name())

		isDir, err := s.isDir(ctx, dir, entry)
		if err != nil {
			return nil, err
		}

		if !isDir {
			continue
		}

		categories = append(categories, m.Category{
			Name:  entry.Name(),
			Dir:   dir,
			Order: CategoryOrder(entry.Name()),
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	slog.Debug("Scanned categories", "root", root, "count", len(categories))

	return categories, nil
}

func (s *scanner) isDir(ctx context.Context, path m.Path, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}

	info, err := s.fsAdapter.FileInfo(ctx, path)
	if err != nil {
		// Dangling links are not categories.
		slog.Debug("Skipping unresolvable symlink", "path", path, "error", err)
		return false, nil
	}

	return info.IsDir(), nil
}
