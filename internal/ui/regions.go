package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/opsboard/internal/render"
)

const previewWidth = 48

// RenderRegionsTable opens an interactive Bubble Tea table to browse the
// classified regions of a document.
func RenderRegionsTable(ctx context.Context, regions []render.RegionInfo, lines []string) error {
	cols := []table.Column{
		{Title: "Lines", Width: 11},
		{Title: "Kind", Width: 9},
		{Title: "Table", Width: 9},
		{Title: "First line", Width: previewWidth},
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(regionRows(regions, lines)),
		table.WithFocused(true),
		table.WithHeight(min(16, max(3, len(regions)+3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	p := tea.NewProgram(model{table: t}, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func regionRows(regions []render.RegionInfo, lines []string) []table.Row {
	rows := make([]table.Row, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, table.Row{
			lineRange(r),
			r.Kind,
			tableCell(r),
			truncate(firstLine(r, lines), previewWidth),
		})
	}
	return rows
}

type model struct{ table table.Model }

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if len(m.table.Rows()) == 0 {
		return "(empty document)\n"
	}
	return m.table.View() + "\n↑/↓ to navigate • enter/q to exit\n"
}

var (
	kindStyles = map[string]lipgloss.Style{
		"plain":     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		"candidate": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"fence":     lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
	tableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// FormatRegions returns a one-region-per-line listing, matching the
// `inspect` output.
func FormatRegions(regions []render.RegionInfo, lines []string) string {
	var b strings.Builder
	for _, r := range regions {
		kind := fmt.Sprintf("%-9s", r.Kind)
		if st, ok := kindStyles[r.Kind]; ok {
			kind = st.Render(kind)
		}
		cell := fmt.Sprintf("%-9s", tableCell(r))
		if r.Table {
			cell = tableStyle.Render(cell)
		}
		fmt.Fprintf(&b, "%-11s %s %s %s\n",
			lineRange(r), kind, cell, dimStyle.Render(truncate(firstLine(r, lines), previewWidth)))
	}
	return b.String()
}

func lineRange(r render.RegionInfo) string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

func tableCell(r render.RegionInfo) string {
	switch {
	case r.Table:
		return fmt.Sprintf("%d rows", r.Rows)
	case r.Kind == "candidate":
		return "no"
	default:
		return ""
	}
}

func firstLine(r render.RegionInfo, lines []string) string {
	if r.Start < 1 || r.Start > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[r.Start-1])
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
