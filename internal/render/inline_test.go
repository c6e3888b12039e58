package render

import "testing"

func TestParseHeader(t *testing.T) {
	cases := []struct {
		in    string
		level int
		text  string
		ok    bool
	}{
		{"# A", 1, "A", true},
		{"## A b", 2, "A b", true},
		{"### A", 3, "A", true},
		{"#### A", 4, "A", true},
		{"##### A", 0, "", false},
		{"#A", 0, "", false},
		{" # A", 0, "", false},
		{"#", 0, "", false},
		{"# ", 1, "", true},
	}
	for _, tc := range cases {
		level, text, ok := parseHeader(tc.in)
		if level != tc.level || text != tc.text || ok != tc.ok {
			t.Errorf("parseHeader(%q)=(%d,%q,%v) want (%d,%q,%v)", tc.in, level, text, ok, tc.level, tc.text, tc.ok)
		}
	}
}

func TestFormatLine(t *testing.T) {
	f := inlineFormatter{}
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"#### Four", "<h4>Four</h4>"},
		{"# **Bold** title", "<h1><strong>Bold</strong> title</h1>"},
		{"**bold**", "<strong>bold</strong>"},
		{"*em*", "<em>em</em>"},
		{"***both***", "<strong><em>both</em></strong>"},
		{"**a *b* c**", "<strong>a <em>b</em> c</strong>"},
		{"*a **b** c*", "<em>a <strong>b</strong> c</em>"},
		{"`**not bold**`", "<code>**not bold**</code>"},
		{"`<div>`", "<code>&lt;div&gt;</code>"},
		{"[a **b**](u)", `<a href="u" target="_blank">a <strong>b</strong></a>`},
		{`[q](say"hi")`, `<a href="say&quot;hi" target="_blank">q</a>`},
		{"[x](a*b*c)", `<a href="a*b*c" target="_blank">x</a>`},
		{"see [a](b) and [c](d)", `see <a href="b" target="_blank">a</a> and <a href="d" target="_blank">c</a>`},
	}
	for _, tc := range cases {
		if got := f.formatLine(tc.in); got != tc.want {
			t.Errorf("formatLine(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatLineUnterminatedMarkersStayLiteral(t *testing.T) {
	f := inlineFormatter{}
	for _, in := range []string{
		"**open bold",
		"*open italic",
		"`open code",
		"[label](open",
		"[label] (url)",
		"[](empty)",
		"2 * 3 * 4",
		"* list item",
		"** spaced **",
		"``",
	} {
		if got := f.formatLine(in); got != in {
			t.Errorf("formatLine(%q)=%q want literal", in, got)
		}
	}
}

func TestFormatCode(t *testing.T) {
	f := inlineFormatter{}
	got := f.formatCode([]string{"```bash", "echo '<hi>' && **x**", "", "```"})
	want := "<pre><code>echo '&lt;hi&gt;' &amp;&amp; **x**\n</code></pre>"
	if got != want {
		t.Fatalf("formatCode=%q want %q", got, want)
	}
	if got := f.formatCode([]string{"```", "```"}); got != "<pre><code></code></pre>" {
		t.Fatalf("empty fence=%q", got)
	}
}

func TestEscapeProse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a<b>c", "a&lt;b&gt;c"},
		{"fish & chips", "fish &amp; chips"},
		{"&amp; &#39; &#x27; &nbsp;", "&amp; &#39; &#x27; &nbsp;"},
		{"&;", "&amp;;"},
		{"&#;", "&amp;#;"},
		{"&#xZZ;", "&amp;#xZZ;"},
		{"trailing &", "trailing &amp;"},
	}
	for _, tc := range cases {
		got := escapeProse(tc.in)
		if got != tc.want {
			t.Errorf("escapeProse(%q)=%q want %q", tc.in, got, tc.want)
		}
		if again := escapeProse(got); again != got {
			t.Errorf("escapeProse not idempotent on %q: %q", got, again)
		}
	}
}
