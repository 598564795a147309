package controller

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	m "traitpack.dev/pkg/traitpack/internal/model"
)

const confirmationFormat = "✅ Exported traits to %s\n"

func renderSummaryTable(summaries []m.CategorySummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Order", "Traits", "Size"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	totalTraits, totalBytes := 0, int64(0)

	for _, summary := range summaries {
		table.Append(summaryRow(summary))

		totalTraits += summary.Traits
		totalBytes += summary.Bytes
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Categories %d", len(summaries)),
		"",
		fmt.Sprintf("%d", totalTraits),
		formatBytes(totalBytes),
	})

	table.Render()

	return tableBuffer.String()
}

func summaryRow(summary m.CategorySummary) []string {
	return []string{
		summary.Name,
		fmt.Sprintf("%d", summary.Order),
		fmt.Sprintf("%d", summary.Traits),
		formatBytes(summary.Bytes),
	}
}

func formatBytes(n int64) string {
	if n < 0 {
		n = 0
	}

	return humanize.Bytes(uint64(n))
}
