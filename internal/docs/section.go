package docs

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mithrel/opsboard/internal/render"
)

// Section is one heading of a document together with its body.
type Section struct {
	Heading  render.Heading
	Markdown string
}

// FindSection returns the section whose heading best matches query. An
// exact (case-insensitive) title wins; otherwise the top fuzzy match does.
// The section runs until the next heading of the same or a higher level.
func FindSection(content, query string) (Section, error) {
	query = strings.TrimSpace(query)
	headings := render.Headings(content)
	if query == "" || len(headings) == 0 {
		return Section{}, fmt.Errorf("%w: %q", ErrNoSection, query)
	}

	best := -1
	for i, h := range headings {
		if strings.EqualFold(h.Title, query) {
			best = i
			break
		}
	}
	if best < 0 {
		matches := fuzzy.Find(query, titles(headings))
		if len(matches) == 0 {
			return Section{}, fmt.Errorf("%w: %q", ErrNoSection, query)
		}
		best = matches[0].Index
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	h := headings[best]
	end := len(lines)
	for _, next := range headings[best+1:] {
		if next.Level <= h.Level {
			end = next.Line
			break
		}
	}
	body := strings.TrimRight(strings.Join(lines[h.Line:end], "\n"), "\n")
	return Section{Heading: h, Markdown: body}, nil
}

// MatchTitles returns up to n heading titles fuzzy-matching input, best
// first. An empty input returns every title.
func MatchTitles(content, input string, n int) []string {
	all := titles(render.Headings(content))
	if input == "" {
		return all
	}
	matches := fuzzy.Find(input, all)
	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}

func titles(hs []render.Heading) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Title
	}
	return out
}
