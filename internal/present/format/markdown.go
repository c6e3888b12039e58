package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// WritePrettyDocument renders Markdown for a terminal using glamour.
func WritePrettyDocument(w io.Writer, content, style string, width int) error {
	out, err := PrettyDocument(content, style, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// PrettyDocument returns the glamour rendering of content.
func PrettyDocument(content, style string, width int) (string, error) {
	if style == "" {
		style = "dracula"
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
