package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"traitpack.dev/pkg/traitpack/internal/adapter"
	m "traitpack.dev/pkg/traitpack/internal/model"
)

// Processor finds the trait files of a category and turns them into traits.
type Processor interface {
	// Collect walks category.Dir and returns its supported files in
	// traversal order. Paths matching any exclude glob (relative to root,
	// slash separated) are skipped.
	Collect(ctx context.Context, root m.Path, category m.Category, exclude []string) ([]m.TraitFile, error)

	// Build encodes files into traits, keeping the order of files. Up to
	// threads files are read concurrently; the first error aborts the rest.
	Build(ctx context.Context, files []m.TraitFile, format m.ImageFormat, threads int) ([]m.Trait, error)
}

type processor struct {
	fsAdapter adapter.TraitFSAdapter
	encoder   Encoder
}

// NewProcessor creates a Processor that walks through fsAdapter and encodes
// with encoder.
func NewProcessor(fsAdapter adapter.TraitFSAdapter, encoder Encoder) Processor {
	return &processor{
		fsAdapter: fsAdapter,
		encoder:   encoder,
	}
}

// ValidateExcludePatterns rejects malformed exclude globs up front.
func ValidateExcludePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	return nil
}

func (p *processor) Collect(ctx context.Context, root m.Path, category m.Category, exclude []string) ([]m.TraitFile, error) {
	var files []m.TraitFile

	err := p.fsAdapter.Walk(ctx, category.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Error("Failed to walk category", "category", category.Name, "path", path, "error", err)
			return fmt.Errorf("walk %s: %w", path, err)
		}

		excluded, err := p.isExcluded(root, m.Path(path), exclude)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if excluded {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() || excluded {
			return nil
		}

		file, ok, err := p.traitFile(category, path, d)
		if err != nil || !ok {
			return err
		}

		files = append(files, file)

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Collected trait files", "category", category.Name, "count", len(files))

	return files, nil
}

func (p *processor) traitFile(category m.Category, path string, d fs.DirEntry) (m.TraitFile, bool, error) {
	filename := d.Name()

	stem, ext := splitExtension(filename)
	if !IsSupportedExtension(ext) {
		slog.Debug("Skipping unsupported file", "path", path)
		return m.TraitFile{}, false, nil
	}

	info, err := d.Info()
	if err != nil {
		return m.TraitFile{}, false, fmt.Errorf("stat %s: %w", path, err)
	}

	return m.TraitFile{
		Path:      m.Path(path),
		Category:  category.Name,
		Filename:  filename,
		Stem:      stem,
		Extension: ext,
		Order:     category.Order,
		Size:      info.Size(),
	}, true, nil
}

func (p *processor) isExcluded(root, path m.Path, exclude []string) (bool, error) {
	if len(exclude) == 0 {
		return false, nil
	}

	rel, err := p.fsAdapter.RelPath(root, path)
	if err != nil {
		return false, fmt.Errorf("relative path for %s: %w", path, err)
	}

	name := filepath.ToSlash(string(rel))

	for _, pattern := range exclude {
		if doublestar.MatchUnvalidated(pattern, name) {
			return true, nil
		}
	}

	return false, nil
}

func (p *processor) Build(ctx context.Context, files []m.TraitFile, format m.ImageFormat, threads int) ([]m.Trait, error) {
	traits := make([]m.Trait, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			trait, err := p.buildTrait(groupCtx, file, format)
			if err != nil {
				return err
			}

			traits[i] = trait

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return traits, nil
}

func (p *processor) buildTrait(ctx context.Context, file m.TraitFile, format m.ImageFormat) (m.Trait, error) {
	name, rarity := ParseNameAndRarity(file.Stem)

	encoded, err := p.encoder.Encode(ctx, file.Path, file.Extension, format)
	if err != nil {
		return m.Trait{}, err
	}

	slog.Debug("Encoded trait", "category", file.Category, "file", file.Filename, "mimeType", encoded.MimeType)

	return m.Trait{
		Name:     name,
		Filename: file.Filename,
		MimeType: encoded.MimeType,
		Data:     encoded.Data,
		Rarity:   rarity,
		Order:    file.Order,
	}, nil
}
