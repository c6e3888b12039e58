//go:build ignore
// +build ignore

package main

import (
	"log"

	opsboard "github.com/mithrel/opsboard/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := opsboard.NewRootCmd()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "OPSBOARD",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
