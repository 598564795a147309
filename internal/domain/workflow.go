// Package domain implements trait discovery, encoding and the export workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"traitpack.dev/pkg/traitpack/internal/adapter"
	"traitpack.dev/pkg/traitpack/internal/controller"
	m "traitpack.dev/pkg/traitpack/internal/model"
)

// ExportArgs contains the arguments for exporting a traits directory.
type ExportArgs struct {
	Root    m.Path
	Output  m.Path
	Format  m.ImageFormat
	Exclude []string
	Threads int
}

// ListArgs contains the arguments for a dry-run listing.
type ListArgs struct {
	Root    m.Path
	Exclude []string
}

// ViewArgs contains the arguments for inspecting an exported document.
type ViewArgs struct {
	Input m.Path
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Export(ctx context.Context, args ExportArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.TraitStore
	controller.UI
	Scanner
	Processor
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	traitStore adapter.TraitStore,
	ui controller.UI,
	scanner Scanner,
	processor Processor,
) Workflow {
	return &workflow{
		TraitStore: traitStore,
		UI:         ui,
		Scanner:    scanner,
		Processor:  processor,
	}
}

// Export scans args.Root, encodes every trait and writes the document to
// args.Output. Nothing is written when any step fails.
func (w *workflow) Export(ctx context.Context, args ExportArgs) error {
	traits, err := w.collectTraits(ctx, args)
	if err != nil {
		return err
	}

	if err := w.SaveTraits(ctx, args.Output, traits); err != nil {
		slog.Error("Failed to save traits", "output", args.Output, "error", err)
		return fmt.Errorf("save traits: %w", err)
	}

	slog.Info("Exported traits", "output", args.Output, "categories", len(traits), "traits", traits.Len())

	if err := w.DisplayExported(ctx, args.Output, SummarizeTraits(traits)); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) collectTraits(ctx context.Context, args ExportArgs) (m.TraitMap, error) {
	if err := ValidateExcludePatterns(args.Exclude); err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	categories, err := w.Scan(ctx, args.Root)
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}

	traits := m.TraitMap{}

	for _, category := range categories {
		files, err := w.Collect(ctx, args.Root, category, args.Exclude)
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", category.Name, err)
		}

		built, err := w.Build(ctx, files, args.Format, threads)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", category.Name, err)
		}

		traits.Append(category.Name, built...)
	}

	return traits, nil
}

// List scans args.Root without encoding anything and displays one summary
// row per category that has at least one supported file.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := ValidateExcludePatterns(args.Exclude); err != nil {
		return err
	}

	categories, err := w.Scan(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("scan categories: %w", err)
	}

	summaries := make([]m.CategorySummary, 0, len(categories))

	for _, category := range categories {
		files, err := w.Collect(ctx, args.Root, category, args.Exclude)
		if err != nil {
			return fmt.Errorf("collect %s: %w", category.Name, err)
		}

		if len(files) == 0 {
			continue
		}

		summary := m.CategorySummary{Name: category.Name, Order: category.Order, Traits: len(files)}
		for _, file := range files {
			summary.Bytes += file.Size
		}

		summaries = append(summaries, summary)
	}

	if err := w.DisplayCategories(ctx, summaries); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View loads a previously exported document and displays its summary.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	traits, err := w.LoadTraits(ctx, args.Input)
	if err != nil {
		slog.Error("Failed to load traits", "input", args.Input, "error", err)
		return fmt.Errorf("load traits: %w", err)
	}

	if err := w.DisplayCategories(ctx, SummarizeTraits(traits)); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// SummarizeTraits returns per-category statistics sorted by category name.
// Bytes counts the embedded data, not the source files.
func SummarizeTraits(traits m.TraitMap) []m.CategorySummary {
	summaries := make([]m.CategorySummary, 0, len(traits))

	for name, list := range traits {
		summary := m.CategorySummary{Name: name, Order: DefaultCategoryOrder, Traits: len(list)}
		if len(list) > 0 {
			summary.Order = list[0].Order
		}

		for _, trait := range list {
			summary.Bytes += int64(len(trait.Data))
		}

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})

	return summaries
}
