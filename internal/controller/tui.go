package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "traitpack.dev/pkg/traitpack/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TUI implements UI with lipgloss styling and a Bubble Tea pager for long
// category lists.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayExported prints a styled summary and confirmation line.
func (p *TUI) DisplayExported(ctx context.Context, output m.Path, summaries []m.CategorySummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	if len(summaries) > 0 {
		model := newCategoryModel(summaries)
		model.renderRows(&b, model.summaries)
		b.WriteString("\n")
	}

	b.WriteString(successStyle.Render(strings.TrimSuffix(fmt.Sprintf(confirmationFormat, output), "\n")))
	b.WriteString("\n")

	_, err := fmt.Fprint(p.output, b.String())

	return err
}

// DisplayCategories shows the category list, paging it when it does not fit
// the terminal.
func (p *TUI) DisplayCategories(ctx context.Context, summaries []m.CategorySummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newCategoryModel(summaries)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

type pagerKeyMap struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

func (k pagerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
}

var pagerKeys = pagerKeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	PageDown: key.NewBinding(key.WithKeys("d", "pgdown"), key.WithHelp("d", "page down")),
	PageUp:   key.NewBinding(key.WithKeys("u", "pgup"), key.WithHelp("u", "page up")),
}

// categoryModel is the Bubble Tea model for the category pager.
type categoryModel struct {
	summaries []m.CategorySummary
	help      help.Model
	height    int
	width     int
	offset    int // Current scroll offset
	quitting  bool
}

func newCategoryModel(summaries []m.CategorySummary) categoryModel {
	return categoryModel{
		summaries: summaries,
		help:      help.New(),
	}
}

func (cm categoryModel) Init() tea.Cmd {
	return nil
}

func (cm categoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.height = msg.Height
		cm.width = msg.Width
		cm.offset = clamp(cm.offset, 0, cm.maxOffset())

		return cm, nil

	case tea.KeyMsg:
		return cm.handleKeyPress(msg)
	}

	return cm, nil
}

func (cm categoryModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pagerKeys.Quit):
		cm.quitting = true
		return cm, tea.Quit
	case key.Matches(msg, pagerKeys.Down):
		cm.offset++
	case key.Matches(msg, pagerKeys.Up):
		cm.offset--
	case key.Matches(msg, pagerKeys.Top):
		cm.offset = 0
	case key.Matches(msg, pagerKeys.Bottom):
		cm.offset = cm.maxOffset()
	case key.Matches(msg, pagerKeys.PageDown):
		cm.offset += cm.itemsPerPage()
	case key.Matches(msg, pagerKeys.PageUp):
		cm.offset -= cm.itemsPerPage()
	}

	cm.offset = clamp(cm.offset, 0, cm.maxOffset())

	return cm, nil
}

// itemsPerPage calculates how many rows fit on screen.
func (cm categoryModel) itemsPerPage() int {
	if cm.height == 0 {
		return 10 // Default
	}

	// Title box (3) + blank, column header, blank + total, footer (3), margin.
	reserved := 11

	available := cm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (cm categoryModel) maxOffset() int {
	maxOff := len(cm.summaries) - cm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the list is too large to fit on screen.
func (cm categoryModel) needsPagination() bool {
	if len(cm.summaries) == 0 {
		return false
	}

	return len(cm.summaries) > cm.itemsPerPage() && cm.height > 0
}

func (cm categoryModel) View() string {
	if cm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("traitpack · categories"))
	b.WriteString("\n\n")

	if len(cm.summaries) == 0 {
		b.WriteString("  No trait categories found\n")
		return b.String()
	}

	visible := cm.summaries
	paginated := cm.needsPagination()

	start, end := 0, len(cm.summaries)
	if paginated {
		start = clamp(cm.offset, 0, cm.maxOffset())
		end = min(start+cm.itemsPerPage(), len(cm.summaries))
		visible = cm.summaries[start:end]
	}

	cm.renderRows(&b, visible)

	totalTraits, totalBytes := 0, int64(0)
	for _, summary := range cm.summaries {
		totalTraits += summary.Traits
		totalBytes += summary.Bytes
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  Total: %d trait(s) across %d categories, %s\n", totalTraits, len(cm.summaries), formatBytes(totalBytes))

	if paginated {
		perPage := cm.itemsPerPage()
		currentPage := (start / perPage) + 1
		totalPages := (len(cm.summaries) + perPage - 1) / perPage

		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  Page %d/%d | Showing %d-%d of %d",
			currentPage, totalPages, start+1, end, len(cm.summaries))))
		b.WriteString("\n  ")
		b.WriteString(cm.help.ShortHelpView(pagerKeys.ShortHelp()))
		b.WriteString("\n")
	}

	return b.String()
}

func (cm categoryModel) renderRows(b *strings.Builder, rows []m.CategorySummary) {
	nameWidth := len("CATEGORY")
	for _, summary := range cm.summaries {
		nameWidth = max(nameWidth, lipgloss.Width(summary.Name))
	}

	header := fmt.Sprintf("%-*s  %5s  %6s  %9s", nameWidth, "CATEGORY", "ORDER", "TRAITS", "SIZE")
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for _, summary := range rows {
		padding := strings.Repeat(" ", nameWidth-lipgloss.Width(summary.Name))
		fmt.Fprintf(b, "  %s%s  %5d  %6d  %9s\n", summary.Name, padding, summary.Order, summary.Traits, formatBytes(summary.Bytes))
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
