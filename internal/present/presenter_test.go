package present

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/opsboard/internal/render"
	"github.com/mithrel/opsboard/pkg/api"
)

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{"html": ModeHTML, "page": ModePage, "json": ModeJSON, "pretty": ModePretty, "tui": ModeTUI} {
		got, ok := ParseMode(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
	_, ok := ParseMode("xml")
	assert.False(t, ok)
}

func TestRenderDocumentModes(t *testing.T) {
	doc := api.Document{Path: "README.md", Content: "# T\n\n| a |\n|---|\n| 1 |", LastModified: time.Unix(1700000000, 0)}
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, RenderDocument(ctx, &buf, doc, Options{Mode: ModeHTML, Render: render.DefaultOptions()}))
	assert.Equal(t, render.HTML(doc.Content)+"\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderDocument(ctx, &buf, doc, Options{Mode: ModePage, Render: render.DefaultOptions()}))
	assert.Contains(t, buf.String(), "<title>README.md</title>")
	assert.Contains(t, buf.String(), "<table>")

	buf.Reset()
	require.NoError(t, RenderDocument(ctx, &buf, doc, Options{Mode: ModeJSON, Render: render.DefaultOptions()}))
	var resp api.ReadmeResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, render.HTML(doc.Content), resp.HTML)
	assert.Equal(t, int64(1700000000), resp.LastModified)
	assert.Equal(t, doc.Hash(), resp.Hash)

	buf.Reset()
	require.NoError(t, RenderDocument(ctx, &buf, doc, Options{Mode: ModePretty, Style: "notty", Width: 40}))
	assert.Contains(t, buf.String(), "T")
}
