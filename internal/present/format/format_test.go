package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/opsboard/pkg/api"
)

func TestWriteJSONResponse(t *testing.T) {
	var buf bytes.Buffer
	resp := api.ReadmeResponse{Success: true, HTML: "<div></div>", Timestamp: 42}
	require.NoError(t, WriteJSONResponse(&buf, resp, true))
	assert.Contains(t, buf.String(), "\n  \"success\": true")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "<div></div>", got["html"])
	assert.NotContains(t, got, "content")
	assert.NotContains(t, got, "error")
}

func TestWriteHTMLPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTMLPage(&buf, "A <b> title", `<div class="markdown-content">x</div>`))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>A &lt;b&gt; title</title>")
	assert.Contains(t, out, `<div class="markdown-content">x</div>`)
}

func TestPrettyDocument(t *testing.T) {
	out, err := PrettyDocument("# Hello\n\n| a | b |\n|---|---|\n| 1 | 2 |\n", "notty", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "1")

	_, err = PrettyDocument("x", "no-such-style", 60)
	assert.Error(t, err)
}
