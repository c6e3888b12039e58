package render

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrap(s string) string {
	return `<div class="markdown-content">` + s + `</div>`
}

func TestRenderScenarios(t *testing.T) {
	t.Run("header and bold", func(t *testing.T) {
		out := HTML("# Title\n\nHello **world**")
		assert.Contains(t, out, "<h1>Title</h1>")
		assert.Contains(t, out, "<strong>world</strong>")
		assert.Equal(t, wrap("<h1>Title</h1><br><br>Hello <strong>world</strong>"), out)
	})

	t.Run("simple table", func(t *testing.T) {
		out := HTML("| A | B |\n|---|---|\n| 1 | 2 |")
		assert.Equal(t, wrap("<table><thead><tr><th>A</th><th>B</th></tr></thead>"+
			"<tbody><tr><td>1</td><td>2</td></tr></tbody></table>"), out)
	})

	t.Run("prose with a pipe", func(t *testing.T) {
		out := HTML("a|b is not a table")
		assert.Contains(t, out, "a|b is not a table")
		assert.NotContains(t, out, "<table>")
	})

	t.Run("code span with pipes", func(t *testing.T) {
		out := HTML("`code|with|pipes`")
		assert.Equal(t, wrap("<code>code|with|pipes</code>"), out)
	})

	t.Run("link", func(t *testing.T) {
		out := HTML("[Docs](https://example.com)")
		assert.Contains(t, out, `<a href="https://example.com" target="_blank">Docs</a>`)
	})
}

func TestRenderEmptyInputStillWrapped(t *testing.T) {
	assert.Equal(t, wrap(""), HTML(""))
}

func TestRenderContainerClass(t *testing.T) {
	r := New(Options{ContainerClass: "docs", Tables: true})
	assert.Equal(t, `<div class="docs">hi</div>`, r.Render("hi"))

	// blank class falls back to the default
	r = New(Options{Tables: true})
	assert.Equal(t, wrap("hi"), r.Render("hi"))
}

func TestRenderWithoutPipesMatchesInlineOnly(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"# One\n## Two\n### Three\n#### Four\n##### Five",
		"**bold** and *italic* and `code`\n\n[x](y)",
		"```\nfenced\n  block\n```\nafter",
		"line\r\nwindows\r\n",
		"*unterminated **markers `here [and](",
	}
	tablesOff := New(Options{Tables: false})
	for _, in := range inputs {
		assert.Equal(t, tablesOff.Render(in), HTML(in), "input %q", in)
	}
}

func TestRenderTableRowCounts(t *testing.T) {
	for n := 0; n <= 5; n++ {
		var b strings.Builder
		b.WriteString("| h1 | h2 |\n| --- | :---: |\n")
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "| r%d | v%d |\n", i, i)
		}
		out := HTML(b.String())

		require.Equal(t, 1, strings.Count(out, "<thead>"), "n=%d", n)
		head := out[strings.Index(out, "<thead>"):strings.Index(out, "</thead>")]
		assert.Equal(t, 1, strings.Count(head, "<tr>"))

		body := out[strings.Index(out, "<tbody>"):strings.Index(out, "</tbody>")]
		assert.Equal(t, n, strings.Count(body, "<tr>"), "n=%d", n)
	}
}

func TestRenderBlockWithoutSeparatorPassesThrough(t *testing.T) {
	in := "col a | col b\nval 1 | val 2"
	out := HTML(in)
	assert.NotContains(t, out, "<table>")
	assert.Equal(t, wrap("col a | col b<br>val 1 | val 2"), out)
}

func TestRenderAlignmentOnlySeparator(t *testing.T) {
	out := HTML("| A | B |\n|:|:|\n| 1 | 2 |")
	assert.Equal(t, wrap("<table><thead><tr><th>A</th><th>B</th></tr></thead>"+
		"<tbody><tr><td>1</td><td>2</td></tr></tbody></table>"), out)

	assert.NotContains(t, HTML("| A | B |\n| | |\n| 1 | 2 |"), "<table>")
}

func TestRenderEmptyCellPlaceholder(t *testing.T) {
	out := HTML("| A |  | C |\n|---|---|---|\n| 1 |   | 3 |")
	assert.Contains(t, out, "<th>&nbsp;</th>")
	assert.Contains(t, out, "<td>&nbsp;</td>")
	assert.NotContains(t, out, "<td></td>")
	assert.NotContains(t, out, "<th></th>")
}

func TestRenderTableInsideDocument(t *testing.T) {
	in := strings.Join([]string{
		"## Status codes",
		"",
		"| Code | Meaning |",
		"|:-----|--------:|",
		"| `200` | **ok** |",
		"| 500 | [see](#errors) |",
		"",
		"Done.",
	}, "\n")
	out := HTML(in)

	want := wrap("<h2>Status codes</h2><br>" +
		"\n<table><thead><tr><th>Code</th><th>Meaning</th></tr></thead><tbody>" +
		"<tr><td><code>200</code></td><td><strong>ok</strong></td></tr>" +
		`<tr><td>500</td><td><a href="#errors" target="_blank">see</a></td></tr>` +
		"</tbody></table>\n<br>Done.")
	assert.Equal(t, want, out)
	assert.NotContains(t, out, "<br><table>")
	assert.NotContains(t, out, "</tr><br>")
}

func TestRenderTableInsideFenceStaysCode(t *testing.T) {
	in := "```markdown\n| a | b |\n|---|---|\n| 1 | 2 |\n```"
	out := HTML(in)
	assert.NotContains(t, out, "<table>")
	assert.Equal(t, wrap("<pre><code>| a | b |\n|---|---|\n| 1 | 2 |</code></pre>"), out)
}

func TestRenderEscapeHTMLDoesNotDoubleEscape(t *testing.T) {
	r := New(Options{Tables: true, EscapeHTML: true})

	out := r.Render("a < b && c &amp; d\n\n| x |  |\n|---|---|\n| &lt;y&gt; | 1 |")
	assert.Contains(t, out, "a &lt; b &amp;&amp; c &amp; d")
	assert.Contains(t, out, "<td>&lt;y&gt;</td>")
	assert.Contains(t, out, "<th>&nbsp;</th>")
	assert.NotContains(t, out, "&amp;amp;")
	assert.NotContains(t, out, "&amp;nbsp;")
	assert.NotContains(t, out, "&amp;lt;")
}

func TestRenderRawHTMLPassesThroughByDefault(t *testing.T) {
	assert.Equal(t, wrap("<kbd>Ctrl</kbd>"), HTML("<kbd>Ctrl</kbd>"))
}

func TestRenderIsDeterministicAndConcurrent(t *testing.T) {
	in := "# Doc\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n*done*"
	want := HTML(in)

	r := New(DefaultOptions())
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Render(in)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestInspect(t *testing.T) {
	in := "intro\n| a | b |\n|---|---|\n| 1 | 2 |\nx|y\n\n```\nq|r\n```"
	regions := New(DefaultOptions()).Inspect(in)

	require.Len(t, regions, 4)
	assert.Equal(t, RegionInfo{Kind: "plain", Start: 1, End: 1}, regions[0])
	assert.Equal(t, RegionInfo{Kind: "candidate", Start: 2, End: 5, Table: true, Rows: 2}, regions[1])
	assert.Equal(t, RegionInfo{Kind: "plain", Start: 6, End: 6}, regions[2])
	assert.Equal(t, RegionInfo{Kind: "fence", Start: 7, End: 9}, regions[3])
}

func TestHeadings(t *testing.T) {
	in := "# Intro\ntext\n```\n# not a heading\n```\n## Setup \n##### too deep\n#### Deep"
	got := Headings(in)
	assert.Equal(t, []Heading{
		{Level: 1, Title: "Intro", Line: 0},
		{Level: 2, Title: "Setup", Line: 5},
		{Level: 4, Title: "Deep", Line: 7},
	}, got)
}
