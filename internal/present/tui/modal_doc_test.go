package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/opsboard/pkg/api"
)

func TestDocModalResize(t *testing.T) {
	m := newDocModal(api.Document{Path: "README.md", Content: "# Title\n\nbody"}, "notty", 0, 0)
	assert.Equal(t, 64, m.width)
	assert.Equal(t, 22, m.height)
	assert.Equal(t, 64-2-4, m.vp.Width)
	assert.Contains(t, m.content, "Title")

	_, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Equal(t, 58, m.width)
	assert.Equal(t, 28, m.height)
	assert.Equal(t, 58-2-4, m.vp.Width)
	assert.Equal(t, 28-2-2, m.vp.Height)
}

func TestDocModalQuitKeys(t *testing.T) {
	m := newDocModal(api.Document{Content: "x"}, "notty", 100, 40)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, "key %q", key.String())
		assert.Equal(t, tea.Quit(), cmd(), "key %q", key.String())
	}
}

func TestDocModalRenderError(t *testing.T) {
	m := newDocModal(api.Document{Path: "doc.md", Content: "x"}, "no-such-style", 100, 40)
	assert.True(t, strings.HasPrefix(m.content, "Error rendering doc.md"))
}
