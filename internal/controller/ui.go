// Package controller provides output adapters for displaying export results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "traitpack.dev/pkg/traitpack/internal/model"
)

// UI defines how the workflow reports results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayExported confirms a successful export and summarizes it.
	DisplayExported(ctx context.Context, output m.Path, summaries []m.CategorySummary) error
	// DisplayCategories shows per-category statistics.
	DisplayCategories(ctx context.Context, summaries []m.CategorySummary) error
}

// NewUI returns the interactive TUI when stdout is a terminal and the plain
// SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
