package render

import "strings"

// Table is a pipe table lifted out of a candidate block.
type Table struct {
	Header []string
	Rows   [][]string
}

const emptyCell = "&nbsp;"

// isSeparatorLine matches header underlines such as |---|:--:|, --- | ---
// or the alignment-only |:|:|. At least one '-' or ':' is required.
func isSeparatorLine(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	marked := false
	for _, r := range t {
		switch r {
		case '-', ':':
			marked = true
		case '|', ' ', '\t':
		default:
			return false
		}
	}
	return marked
}

// hasHeaderedSeparator reports whether some separator line has a non-blank,
// non-separator line somewhere above it.
func hasHeaderedSeparator(lines []string) bool {
	seenHeader := false
	for _, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
		case isSeparatorLine(line):
			if seenHeader {
				return true
			}
		default:
			seenHeader = true
		}
	}
	return false
}

// splitRow splits one table line into trimmed cells. Leading and trailing
// delimiters do not produce cells. A row of only empty cells yields nil.
func splitRow(line string) []string {
	t := strings.TrimSpace(line)
	cells := strings.Split(t, "|")
	if strings.HasPrefix(t, "|") {
		cells = cells[1:]
	}
	if len(cells) > 0 && strings.HasSuffix(t, "|") {
		cells = cells[:len(cells)-1]
	}
	nonEmpty := false
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
		if cells[i] != "" {
			nonEmpty = true
		}
	}
	if !nonEmpty {
		return nil
	}
	return cells
}

// parseTable decides whether a candidate block is a table. When ok is false
// the caller must emit the block's lines untouched.
func parseTable(lines []string) (Table, bool) {
	if !hasHeaderedSeparator(lines) {
		return Table{}, false
	}
	var t Table
	haveHeader := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || isSeparatorLine(line) {
			continue
		}
		cells := splitRow(line)
		if len(cells) == 0 {
			continue
		}
		if !haveHeader {
			t.Header = cells
			haveHeader = true
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	if !haveHeader {
		return Table{}, false
	}
	return t, true
}

// writeTable emits t as HTML. cell formats the text of every non-empty cell.
func writeTable(b *strings.Builder, t Table, cell func(string) string) {
	writeCells := func(tag string, cells []string) {
		b.WriteString("<tr>")
		for _, c := range cells {
			b.WriteString("<" + tag + ">")
			if c == "" {
				b.WriteString(emptyCell)
			} else {
				b.WriteString(cell(c))
			}
			b.WriteString("</" + tag + ">")
		}
		b.WriteString("</tr>")
	}

	b.WriteString("<table><thead>")
	writeCells("th", t.Header)
	b.WriteString("</thead><tbody>")
	for _, row := range t.Rows {
		writeCells("td", row)
	}
	b.WriteString("</tbody></table>")
}

// RenderTable renders t with cell text copied verbatim.
func RenderTable(t Table) string {
	var b strings.Builder
	writeTable(&b, t, func(s string) string { return s })
	return b.String()
}
