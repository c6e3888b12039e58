package present

import (
	"context"
	"io"
	"time"

	"github.com/mithrel/opsboard/internal/present/format"
	"github.com/mithrel/opsboard/internal/present/tui"
	"github.com/mithrel/opsboard/internal/render"
	"github.com/mithrel/opsboard/pkg/api"
)

type Mode int

const (
	ModeHTML Mode = iota
	ModePage
	ModeJSON
	ModePretty
	ModeTUI
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Render     render.Options
	Style      string
	Width      int
}

// ParseMode parses a string like "html", "page", "json", "pretty", "tui".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "html":
		return ModeHTML, true
	case "page":
		return ModePage, true
	case "json":
		return ModeJSON, true
	case "pretty":
		return ModePretty, true
	case "tui":
		return ModeTUI, true
	default:
		return ModeHTML, false
	}
}

// RenderDocument writes doc according to options.
func RenderDocument(ctx context.Context, w io.Writer, doc api.Document, opts Options) error {
	switch opts.Mode {
	case ModePage:
		return format.WriteHTMLPage(w, doc.Path, render.New(opts.Render).Render(doc.Content))
	case ModeJSON:
		resp := api.NewReadmeResponse(doc, time.Now())
		resp.HTML = render.New(opts.Render).Render(doc.Content)
		return format.WriteJSONResponse(w, resp, opts.JSONIndent)
	case ModePretty:
		return format.WritePrettyDocument(w, doc.Content, opts.Style, opts.Width)
	case ModeTUI:
		return tui.ShowDocument(ctx, doc, opts.Style)
	default:
		_, err := io.WriteString(w, render.New(opts.Render).Render(doc.Content)+"\n")
		return err
	}
}
