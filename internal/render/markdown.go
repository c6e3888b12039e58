package render

import "strings"

// DefaultContainerClass is the class of the element wrapping rendered output.
const DefaultContainerClass = "markdown-content"

// Options controls a Renderer. The zero value disables tables; use
// DefaultOptions as a starting point.
type Options struct {
	// ContainerClass is the class attribute of the root <div>.
	ContainerClass string
	// Tables enables pipe table detection.
	Tables bool
	// EscapeHTML escapes markup in prose. Code is always escaped.
	EscapeHTML bool
}

func DefaultOptions() Options {
	return Options{ContainerClass: DefaultContainerClass, Tables: true}
}

// Renderer converts a small Markdown subset to HTML. It holds no mutable
// state and is safe for concurrent use.
type Renderer struct {
	opts   Options
	inline inlineFormatter
}

func New(opts Options) *Renderer {
	if strings.TrimSpace(opts.ContainerClass) == "" {
		opts.ContainerClass = DefaultContainerClass
	}
	return &Renderer{opts: opts, inline: inlineFormatter{escapeHTML: opts.EscapeHTML}}
}

var defaultRenderer = New(DefaultOptions())

// HTML renders src with DefaultOptions.
func HTML(src string) string {
	return defaultRenderer.Render(src)
}

// Render converts src to HTML wrapped in a single <div>. It never fails:
// anything it cannot interpret is passed through as text.
func (r *Renderer) Render(src string) string {
	units := r.assemble(splitLines(src))

	var b strings.Builder
	b.WriteString(`<div class="` + strings.ReplaceAll(r.opts.ContainerClass, `"`, "&quot;") + `">`)
	for i, u := range units {
		if i > 0 {
			if u.table || units[i-1].table {
				b.WriteByte('\n')
			} else {
				b.WriteString("<br>")
			}
		}
		b.WriteString(u.html)
	}
	b.WriteString("</div>")
	return b.String()
}

func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return strings.Split(src, "\n")
}

// unit is one piece of assembled output. Units are joined by <br>, or by a
// bare newline when either neighbour is table markup.
type unit struct {
	html  string
	table bool
}

type scanState int

const (
	stateScanning scanState = iota
	stateInCandidate
	stateEmitTable
	stateEmitPlain
	stateEmitCode
	stateDone
)

// assemble walks the classified regions. Candidate blocks that fail table
// validation fall back to plain lines.
func (r *Renderer) assemble(lines []string) []unit {
	regions := classifyLines(lines, r.opts.Tables)
	units := make([]unit, 0, len(lines))

	var (
		next  int
		cur   region
		table Table
	)
	state := stateScanning
	for state != stateDone {
		switch state {
		case stateScanning:
			if next >= len(regions) {
				state = stateDone
				continue
			}
			cur = regions[next]
			next++
			switch cur.kind {
			case regionCandidate:
				state = stateInCandidate
			case regionFence:
				state = stateEmitCode
			default:
				state = stateEmitPlain
			}

		case stateInCandidate:
			t, ok := parseTable(lines[cur.start:cur.end])
			if ok {
				table = t
				state = stateEmitTable
			} else {
				state = stateEmitPlain
			}

		case stateEmitTable:
			var b strings.Builder
			writeTable(&b, table, func(s string) string { return r.inline.formatSpans(s, allRules) })
			units = append(units, unit{html: b.String(), table: true})
			state = stateScanning

		case stateEmitCode:
			units = append(units, unit{html: r.inline.formatCode(lines[cur.start:cur.end])})
			state = stateScanning

		case stateEmitPlain:
			for _, line := range lines[cur.start:cur.end] {
				units = append(units, unit{html: r.inline.formatLine(line)})
			}
			state = stateScanning
		}
	}
	return units
}

// RegionInfo describes one classified region of a document.
type RegionInfo struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"` // first line, 1-based
	End   int    `json:"end"`   // last line, inclusive
	Table bool   `json:"table,omitempty"`
	Rows  int    `json:"rows,omitempty"`
}

// Inspect reports how r classifies src without rendering it.
func (r *Renderer) Inspect(src string) []RegionInfo {
	lines := splitLines(src)
	regions := classifyLines(lines, r.opts.Tables)
	out := make([]RegionInfo, 0, len(regions))
	for _, reg := range regions {
		info := RegionInfo{Kind: reg.kind.String(), Start: reg.start + 1, End: reg.end}
		if reg.kind == regionCandidate {
			if t, ok := parseTable(lines[reg.start:reg.end]); ok {
				info.Table = true
				info.Rows = len(t.Rows)
			}
		}
		out = append(out, info)
	}
	return out
}

// Heading is a header line found outside fenced code.
type Heading struct {
	Level int
	Title string
	Line  int // 0-based
}

// Headings lists the headers of src in document order.
func Headings(src string) []Heading {
	lines := splitLines(src)
	var out []Heading
	for _, reg := range classifyLines(lines, false) {
		if reg.kind == regionFence {
			continue
		}
		for i := reg.start; i < reg.end; i++ {
			if level, title, ok := parseHeader(lines[i]); ok {
				out = append(out, Heading{Level: level, Title: title, Line: i})
			}
		}
	}
	return out
}
