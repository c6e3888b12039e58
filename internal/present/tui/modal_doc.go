package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"

	"github.com/mithrel/opsboard/internal/present/format"
	"github.com/mithrel/opsboard/pkg/api"
)

// docModal shows a glamour-rendered document inside a bordered,
// scrollable viewport, the terminal counterpart of the dashboard's
// documentation dialog.
type docModal struct {
	doc     api.Document
	style   string
	vp      viewport.Model
	width   int
	height  int
	padX    int
	padY    int
	box     lipglossv2.Style
	content string
}

func newDocModal(doc api.Document, style string, termW, termH int) *docModal {
	m := &docModal{doc: doc, style: style, padX: 2, padY: 1}
	m.resizeForTerm(termW, termH)
	return m
}

func (m *docModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	// 80% width, or nearly full width if terminal is small (<80 cols)
	w := int(float64(termW) * 0.8)
	if termW < 80 {
		w = termW - 2
	}
	if w < 32 {
		w = 32
	}
	h := termH - 2
	if h < 8 {
		h = 8
	}
	m.width, m.height = w, h
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(h).
		Padding(m.padY, m.padX).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))

	innerW := w - 2 - m.padX*2 // borders + padding
	innerH := h - 2 - m.padY*2
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 5 {
		innerH = 5
	}
	if m.vp.Width == 0 {
		m.vp = viewport.New(innerW, innerH)
	} else {
		m.vp.Width = innerW
		m.vp.Height = innerH
	}
	// glamour wraps to the inner width, so re-render on resize
	m.render(innerW)
}

func (m *docModal) render(width int) {
	out, err := format.PrettyDocument(m.doc.Content, m.style, width)
	if err != nil {
		out = fmt.Sprintf("Error rendering %s: %v", m.doc.Path, err)
	}
	m.content = out
	m.vp.SetContent(out)
}

func (m *docModal) Init() tea.Cmd { return nil }

func (m *docModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resizeForTerm(x.Width, x.Height)
		return m, nil
	case tea.KeyMsg:
		switch x.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m *docModal) View() string { return m.box.Render(m.vp.View()) }

// ShowDocument runs the modal until the user quits or ctx is cancelled.
func ShowDocument(ctx context.Context, doc api.Document, style string) error {
	p := tea.NewProgram(newDocModal(doc, style, 0, 0), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
