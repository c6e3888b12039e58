package main

import (
	"bufio"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"strings"
)

// Writes a large deterministic Markdown document mixing every construct the
// renderer knows, for manual checks of `opsboard render` and `inspect`.
func main() {
	sections := flag.Int("sections", 200, "number of ## sections")
	flag.Parse()

	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fmt.Fprintln(w, "# Operations Dashboard")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generated sample. Endpoints accept `GET` only; see [the API](#api).")
	for i := 0; i < *sections; i++ {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "## Section %03d\n\n", i+1)
		switch mr.Intn(4) {
		case 0:
			writeTable(w, mr)
		case 1:
			fmt.Fprintln(w, "```")
			fmt.Fprintln(w, "| not | a | table |")
			fmt.Fprintln(w, "|-----|---|-------|")
			fmt.Fprintln(w, "```")
		case 2:
			fmt.Fprintf(w, "Status is **%s** and *stale* when a|b differ.\n", pick(mr, "green", "amber", "red"))
		default:
			fmt.Fprintf(w, "### Notes %d\n\nRun `opsboard serve --listen :%d` then open [docs](/docs).\n", i, 8000+mr.Intn(1000))
		}
	}
}

func writeTable(w *bufio.Writer, r *mrand.Rand) {
	cols := 2 + r.Intn(3)
	head := make([]string, cols)
	sep := make([]string, cols)
	for c := range head {
		head[c] = fmt.Sprintf("col %d", c+1)
		sep[c] = pick(r, "---", ":---", "---:", ":---:")
	}
	fmt.Fprintf(w, "| %s |\n| %s |\n", strings.Join(head, " | "), strings.Join(sep, " | "))
	for n := r.Intn(6); n > 0; n-- {
		row := make([]string, cols)
		for c := range row {
			row[c] = pick(r, "ok", "`200`", "**down**", "", "[log](#log)")
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
	}
}

func pick(r *mrand.Rand, opts ...string) string {
	return opts[r.Intn(len(opts))]
}
