package render

import (
	"strconv"
	"strings"
)

// spanRules selects which inline constructs formatSpans recognises.
type spanRules uint8

const (
	ruleBold spanRules = 1 << iota
	ruleItalic
	ruleCode
	ruleLink

	allRules = ruleBold | ruleItalic | ruleCode | ruleLink
)

var codeEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// inlineFormatter applies the text-level substitutions to single lines,
// table cells and fenced code blocks.
type inlineFormatter struct {
	escapeHTML bool
}

// parseHeader matches 1-4 '#' followed by a space at the very start of line.
func parseHeader(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 4 || n >= len(line) || line[n] != ' ' {
		return 0, "", false
	}
	return n, strings.TrimSpace(line[n+1:]), true
}

func (f inlineFormatter) formatLine(line string) string {
	if level, text, ok := parseHeader(line); ok {
		tag := "h" + strconv.Itoa(level)
		return "<" + tag + ">" + f.formatSpans(text, allRules) + "</" + tag + ">"
	}
	return f.formatSpans(line, allRules)
}

// formatCode renders a closed fence region: lines[0] opens it and the last
// line closes it. The info string on the opening line is dropped. The body
// is kept verbatim as displayed text: markers are not interpreted, and
// &, < and > are escaped so the browser shows them instead of parsing them.
func (f inlineFormatter) formatCode(lines []string) string {
	var body string
	if len(lines) > 2 {
		body = strings.Join(lines[1:len(lines)-1], "\n")
	}
	return "<pre><code>" + codeEscaper.Replace(body) + "</code></pre>"
}

func (f inlineFormatter) text(s string) string {
	if f.escapeHTML {
		return escapeProse(s)
	}
	return s
}

// formatSpans scans s left to right. A marker without a matching closer on
// the same string is kept as literal text.
func (f inlineFormatter) formatSpans(s string, rules spanRules) string {
	var b, plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			b.WriteString(f.text(plain.String()))
			plain.Reset()
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '`' && rules&ruleCode != 0:
			if end := strings.IndexByte(s[i+1:], '`'); end > 0 {
				flush()
				b.WriteString("<code>" + codeEscaper.Replace(s[i+1:i+1+end]) + "</code>")
				i += end + 2
				continue
			}

		case c == '*' && i+1 < len(s) && s[i+1] == '*':
			if rules&ruleBold == 0 {
				break
			}
			if end, ok := findBoldClose(s, i+2); ok {
				flush()
				b.WriteString("<strong>" + f.formatSpans(s[i+2:end], rules&^ruleBold) + "</strong>")
				i = end + 2
				continue
			}
			plain.WriteString("**")
			i += 2
			continue

		case c == '*' && rules&ruleItalic != 0:
			if end, ok := findItalicClose(s, i+1); ok {
				flush()
				b.WriteString("<em>" + f.formatSpans(s[i+1:end], rules&^ruleItalic) + "</em>")
				i = end + 1
				continue
			}

		case c == '[' && rules&ruleLink != 0:
			if label, url, n, ok := parseLink(s[i:]); ok {
				flush()
				b.WriteString(`<a href="` + strings.ReplaceAll(url, `"`, "&quot;") + `" target="_blank">`)
				b.WriteString(f.formatSpans(label, rules&^ruleLink))
				b.WriteString("</a>")
				i += n
				continue
			}
		}
		plain.WriteByte(c)
		i++
	}
	flush()
	return b.String()
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// findBoldClose returns the index of the "**" closing a bold span whose
// content starts at from. A closer inside a longer run of stars is pushed to
// the end of the run so "***x***" nests as strong(em(x)).
func findBoldClose(s string, from int) (int, bool) {
	if from >= len(s) || isSpace(s[from]) {
		return 0, false
	}
	for off := from; off < len(s); {
		idx := strings.Index(s[off:], "**")
		if idx < 0 {
			return 0, false
		}
		end := off + idx
		for end+2 < len(s) && s[end+2] == '*' {
			end++
		}
		if end > from && !isSpace(s[end-1]) {
			return end, true
		}
		off = end + 2
	}
	return 0, false
}

// findItalicClose returns the index of a lone '*' closing an italic span
// whose content starts at from. Stars that are part of "**" never close.
func findItalicClose(s string, from int) (int, bool) {
	if from >= len(s) || isSpace(s[from]) || s[from] == '*' {
		return 0, false
	}
	for j := from + 1; j < len(s); j++ {
		if s[j] != '*' {
			continue
		}
		if j+1 < len(s) && s[j+1] == '*' {
			j++
			continue
		}
		if s[j-1] == '*' || isSpace(s[j-1]) {
			continue
		}
		return j, true
	}
	return 0, false
}

// parseLink matches [label](url) at the start of s and returns the number
// of bytes consumed.
func parseLink(s string) (label, url string, n int, ok bool) {
	closeLabel := strings.IndexByte(s, ']')
	if closeLabel < 2 || closeLabel+1 >= len(s) || s[closeLabel+1] != '(' {
		return "", "", 0, false
	}
	label = s[1:closeLabel]
	rest := s[closeLabel+2:]
	closeURL := strings.IndexByte(rest, ')')
	if closeURL < 1 {
		return "", "", 0, false
	}
	url = rest[:closeURL]
	return label, url, closeLabel + 2 + closeURL + 1, true
}

// escapeProse escapes markup characters but leaves existing character
// references alone, so escaping already-escaped text is a no-op.
func escapeProse(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			if entityLen(s[i:]) > 0 {
				b.WriteByte('&')
			} else {
				b.WriteString("&amp;")
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// entityLen returns the length of a character reference such as &amp;,
// &#39; or &#x27; at the start of s, or 0.
func entityLen(s string) int {
	if len(s) < 3 || s[0] != '&' {
		return 0
	}
	i := 1
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }
	isHex := func(c byte) bool { return isDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'f') }
	isAlnum := func(c byte) bool { return isDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'z') }

	valid := isAlnum
	if s[i] == '#' {
		i++
		valid = isDigit
		if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
			i++
			valid = isHex
		}
	}
	start := i
	for i < len(s) && i-start < 32 && valid(s[i]) {
		i++
	}
	if i == start || i >= len(s) || s[i] != ';' {
		return 0
	}
	return i + 1
}
