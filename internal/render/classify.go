package render

import "strings"

type regionKind int

const (
	regionPlain regionKind = iota
	regionCandidate
	regionFence
)

func (k regionKind) String() string {
	switch k {
	case regionCandidate:
		return "candidate"
	case regionFence:
		return "fence"
	default:
		return "plain"
	}
}

// region is a half-open line range [start, end) of the document.
type region struct {
	kind  regionKind
	start int
	end   int
}

// isCandidateLine reports whether a line may belong to a pipe table.
func isCandidateLine(line string) bool {
	t := strings.TrimSpace(line)
	return t != "" && strings.Contains(t, "|")
}

// isFenceLine reports whether the trimmed line opens or closes a fenced code block.
func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// isFenceClose is stricter than isFenceLine: a closing fence carries no info string.
func isFenceClose(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "```") && strings.Trim(t, "`") == ""
}

// findFenceClose returns the index of the line closing the fence opened at
// lines[open], or -1 when the fence is never closed.
func findFenceClose(lines []string, open int) int {
	for i := open + 1; i < len(lines); i++ {
		if isFenceClose(lines[i]) {
			return i
		}
	}
	return -1
}

// classifyLines partitions lines into plain, candidate and fence regions.
// Regions cover every line exactly once and keep document order.
func classifyLines(lines []string, tables bool) []region {
	var out []region
	push := func(kind regionKind, start, end int) {
		if start >= end {
			return
		}
		// merge adjacent plain runs
		if n := len(out); n > 0 && kind == regionPlain && out[n-1].kind == regionPlain && out[n-1].end == start {
			out[n-1].end = end
			return
		}
		out = append(out, region{kind: kind, start: start, end: end})
	}

	plainStart := 0
	i := 0
	for i < len(lines) {
		line := lines[i]
		if isFenceLine(line) {
			if end := findFenceClose(lines, i); end >= 0 {
				push(regionPlain, plainStart, i)
				push(regionFence, i, end+1)
				i = end + 1
				plainStart = i
				continue
			}
		}
		if tables && isCandidateLine(line) {
			j := i + 1
			for j < len(lines) && isCandidateLine(lines[j]) && !isFenceLine(lines[j]) {
				j++
			}
			push(regionPlain, plainStart, i)
			push(regionCandidate, i, j)
			i = j
			plainStart = i
			continue
		}
		i++
	}
	push(regionPlain, plainStart, len(lines))
	return out
}
