package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "traitpack.dev/pkg/traitpack/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayExported prints the summary table followed by the confirmation line.
func (s *SimpleUI) DisplayExported(ctx context.Context, output m.Path, summaries []m.CategorySummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(summaries) > 0 {
		if err := s.printf("%s", renderSummaryTable(summaries)); err != nil {
			return err
		}
	}

	return s.printf(confirmationFormat, output)
}

// DisplayCategories prints the summary table.
func (s *SimpleUI) DisplayCategories(ctx context.Context, summaries []m.CategorySummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(summaries) == 0 {
		return s.printf("No trait categories found\n")
	}

	return s.printf("%s", renderSummaryTable(summaries))
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
